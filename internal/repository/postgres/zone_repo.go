package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stylesam/luxuria/internal/domain"
)

type ZoneRepo struct {
	pool *pgxpool.Pool
}

func NewZoneRepo(pool *pgxpool.Pool) *ZoneRepo {
	return &ZoneRepo{pool: pool}
}

func (r *ZoneRepo) Create(ctx context.Context, zone *domain.GeoZone) error {
	query := `
		INSERT INTO geo_zones (id, user_id, name, payload, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		zone.ID, zone.UserID, zone.Name, []byte(zone.Payload),
		zone.CreatedAt, zone.UpdatedAt,
	)
	return err
}

// GetByID is scoped by owner: a zone id belonging to a different user is
// indistinguishable from an absent one.
func (r *ZoneRepo) GetByID(ctx context.Context, userID, zoneID uuid.UUID) (*domain.GeoZone, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT id, user_id, name, payload, created_at, updated_at FROM geo_zones WHERE id = $1 AND user_id = $2",
		zoneID, userID,
	)

	z, err := scanZoneRow(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return z, err
}

func (r *ZoneRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.GeoZone, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT id, user_id, name, payload, created_at, updated_at FROM geo_zones WHERE user_id = $1 ORDER BY created_at",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var zones []domain.GeoZone
	for rows.Next() {
		z, err := scanZoneRow(rows)
		if err != nil {
			return nil, err
		}
		zones = append(zones, *z)
	}
	return zones, rows.Err()
}

func (r *ZoneRepo) Update(ctx context.Context, zone *domain.GeoZone) error {
	query := `
		UPDATE geo_zones
		SET name = $3, payload = $4, updated_at = $5
		WHERE id = $1 AND user_id = $2`

	_, err := r.pool.Exec(ctx, query,
		zone.ID, zone.UserID, zone.Name, []byte(zone.Payload), zone.UpdatedAt,
	)
	return err
}

func (r *ZoneRepo) Delete(ctx context.Context, userID, zoneID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM geo_zones WHERE id = $1 AND user_id = $2", zoneID, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanZoneRow(row pgx.Row) (*domain.GeoZone, error) {
	var (
		z       domain.GeoZone
		payload []byte
	)
	err := row.Scan(&z.ID, &z.UserID, &z.Name, &payload, &z.CreatedAt, &z.UpdatedAt)
	if err != nil {
		return nil, err
	}
	z.Payload = payload
	return &z, nil
}
