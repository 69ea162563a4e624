package service_test

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/stylesam/luxuria/internal/domain"
	"github.com/stylesam/luxuria/internal/repository"
)

// memoryUserRepo is an in-memory UserRepository for service tests. Deleting
// a user does not cascade friend edges, which lets tests exercise the
// dangling-reference path directly.
type memoryUserRepo struct {
	users   map[uuid.UUID]*domain.User
	order   []uuid.UUID
	friends map[uuid.UUID][]uuid.UUID

	// vanishOnDelete makes Delete report that the row was already gone.
	vanishOnDelete bool
}

var _ repository.UserRepository = (*memoryUserRepo)(nil)

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{
		users:   make(map[uuid.UUID]*domain.User),
		friends: make(map[uuid.UUID][]uuid.UUID),
	}
}

func (r *memoryUserRepo) Create(_ context.Context, user *domain.User) error {
	u := *user
	r.users[user.ID] = &u
	r.order = append(r.order, user.ID)
	return nil
}

func (r *memoryUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (r *memoryUserRepo) GetByLogin(_ context.Context, login string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Login == login {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepo) GetByPhone(_ context.Context, phone string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Phone == phone {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepo) List(_ context.Context) ([]domain.User, error) {
	var users []domain.User
	for _, id := range r.order {
		if u, ok := r.users[id]; ok {
			users = append(users, *u)
		}
	}
	return users, nil
}

func (r *memoryUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; ok {
		u := *user
		r.users[user.ID] = &u
	}
	return nil
}

func (r *memoryUserRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if r.vanishOnDelete {
		delete(r.users, id)
		return false, nil
	}
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

func (r *memoryUserRepo) ListFriendIDs(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return slices.Clone(r.friends[userID]), nil
}

func (r *memoryUserRepo) AddFriend(_ context.Context, userID, friendID uuid.UUID) error {
	if slices.Contains(r.friends[userID], friendID) {
		return nil
	}
	r.friends[userID] = append(r.friends[userID], friendID)
	return nil
}

func (r *memoryUserRepo) RemoveFriend(_ context.Context, userID, friendID uuid.UUID) (bool, error) {
	before := len(r.friends[userID])
	r.friends[userID] = slices.DeleteFunc(r.friends[userID], func(id uuid.UUID) bool {
		return id == friendID
	})
	return len(r.friends[userID]) < before, nil
}

type memoryZoneRepo struct {
	zones map[uuid.UUID]*domain.GeoZone
	order []uuid.UUID
}

var _ repository.ZoneRepository = (*memoryZoneRepo)(nil)

func newMemoryZoneRepo() *memoryZoneRepo {
	return &memoryZoneRepo{zones: make(map[uuid.UUID]*domain.GeoZone)}
}

func (r *memoryZoneRepo) Create(_ context.Context, zone *domain.GeoZone) error {
	z := *zone
	r.zones[zone.ID] = &z
	r.order = append(r.order, zone.ID)
	return nil
}

func (r *memoryZoneRepo) GetByID(_ context.Context, userID, zoneID uuid.UUID) (*domain.GeoZone, error) {
	z, ok := r.zones[zoneID]
	if !ok || z.UserID != userID {
		return nil, nil
	}
	copied := *z
	return &copied, nil
}

func (r *memoryZoneRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.GeoZone, error) {
	var zones []domain.GeoZone
	for _, id := range r.order {
		if z, ok := r.zones[id]; ok && z.UserID == userID {
			zones = append(zones, *z)
		}
	}
	return zones, nil
}

func (r *memoryZoneRepo) Update(_ context.Context, zone *domain.GeoZone) error {
	if z, ok := r.zones[zone.ID]; ok && z.UserID == zone.UserID {
		copied := *zone
		r.zones[zone.ID] = &copied
	}
	return nil
}

func (r *memoryZoneRepo) Delete(_ context.Context, userID, zoneID uuid.UUID) (bool, error) {
	if z, ok := r.zones[zoneID]; ok && z.UserID == userID {
		delete(r.zones, zoneID)
		return true, nil
	}
	return false, nil
}
