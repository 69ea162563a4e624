package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stylesam/luxuria/internal/apperr"
	"github.com/stylesam/luxuria/internal/domain"
	"github.com/stylesam/luxuria/internal/repository"
)

// ZoneService owns the per-user geo zone sub-resources. Ownership checks
// against the caller happen at the boundary; every lookup here is scoped by
// the owning user id, so a foreign zone id behaves as absent.
type ZoneService struct {
	zones    repository.ZoneRepository
	users    repository.UserRepository
	notifier Notifier
	log      *zap.Logger
}

func NewZoneService(zones repository.ZoneRepository, users repository.UserRepository, log *zap.Logger) *ZoneService {
	return &ZoneService{zones: zones, users: users, log: log}
}

// SetNotifier sets the real-time notifier (optional dependency).
func (s *ZoneService) SetNotifier(n Notifier) {
	s.notifier = n
}

type ZoneInput struct {
	Name    string          `json:"name"`
	Payload json.RawMessage `json:"payload"`
}

// Create assigns the zone a fresh id. Ids are random uuids, so they stay
// unique within an owner across any sequence of creates and deletes.
func (s *ZoneService) Create(ctx context.Context, userID uuid.UUID, input ZoneInput) (*domain.GeoZone, error) {
	owner, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, apperr.NotFound("user with that ID does not exist")
	}

	now := time.Now()
	zone := &domain.GeoZone{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      input.Name,
		Payload:   input.Payload,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.zones.Create(ctx, zone); err != nil {
		return nil, fmt.Errorf("creating zone: %w", err)
	}

	s.log.Info("zone created",
		zap.String("user_id", userID.String()),
		zap.String("zone_id", zone.ID.String()),
	)
	if s.notifier != nil {
		s.notifier.NotifyZoneCreated(zone)
	}
	return zone, nil
}

func (s *ZoneService) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.GeoZone, error) {
	zones, err := s.zones.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if zones == nil {
		zones = []domain.GeoZone{}
	}
	return zones, nil
}

func (s *ZoneService) GetByID(ctx context.Context, userID, zoneID uuid.UUID) (*domain.GeoZone, error) {
	zone, err := s.zones.GetByID(ctx, userID, zoneID)
	if err != nil {
		return nil, err
	}
	if zone == nil {
		return nil, apperr.NotFound("zone with that ID does not exist")
	}
	return zone, nil
}

// UpdateByID overwrites the zone's fields with the input. Overwrite, not
// merge: a caller that wants to keep a field sends it back unchanged.
func (s *ZoneService) UpdateByID(ctx context.Context, userID, zoneID uuid.UUID, input ZoneInput) (*domain.GeoZone, error) {
	zone, err := s.GetByID(ctx, userID, zoneID)
	if err != nil {
		return nil, err
	}

	zone.Name = input.Name
	zone.Payload = input.Payload
	zone.UpdatedAt = time.Now()

	if err := s.zones.Update(ctx, zone); err != nil {
		return nil, fmt.Errorf("updating zone: %w", err)
	}

	if s.notifier != nil {
		s.notifier.NotifyZoneUpdated(zone)
	}
	return zone, nil
}

func (s *ZoneService) DeleteByID(ctx context.Context, userID, zoneID uuid.UUID) (bool, error) {
	if _, err := s.GetByID(ctx, userID, zoneID); err != nil {
		return false, err
	}

	deleted, err := s.zones.Delete(ctx, userID, zoneID)
	if err != nil {
		return false, fmt.Errorf("deleting zone: %w", err)
	}

	if deleted {
		s.log.Info("zone deleted",
			zap.String("user_id", userID.String()),
			zap.String("zone_id", zoneID.String()),
		)
		if s.notifier != nil {
			s.notifier.NotifyZoneDeleted(userID, zoneID)
		}
	}
	return deleted, nil
}
