package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/stylesam/luxuria/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByLogin(ctx context.Context, login string) (*domain.User, error)
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	// Delete reports whether a row was actually removed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// Friend edges. AddFriend is idempotent; RemoveFriend reports whether an
	// edge was actually removed.
	ListFriendIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	AddFriend(ctx context.Context, userID, friendID uuid.UUID) error
	RemoveFriend(ctx context.Context, userID, friendID uuid.UUID) (bool, error)
}

type ZoneRepository interface {
	Create(ctx context.Context, zone *domain.GeoZone) error
	GetByID(ctx context.Context, userID, zoneID uuid.UUID) (*domain.GeoZone, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.GeoZone, error)
	Update(ctx context.Context, zone *domain.GeoZone) error
	Delete(ctx context.Context, userID, zoneID uuid.UUID) (bool, error)
}
