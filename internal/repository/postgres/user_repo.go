package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stylesam/luxuria/internal/domain"
)

const userColumns = "id, login, password_hash, name, last_name, email, phone, socials, role, avatar, background, created_at, updated_at"

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

func (r *UserRepo) Create(ctx context.Context, user *domain.User) error {
	socials, background, err := marshalProfile(user)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO users (id, login, password_hash, name, last_name, email, phone, socials, role, avatar, background, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err = r.pool.Exec(ctx, query,
		user.ID, user.Login, user.PasswordHash, user.Name, user.LastName,
		user.Email, user.Phone, socials, user.Role, user.Avatar, background,
		user.CreatedAt, user.UpdatedAt,
	)
	return err
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.scanUser(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
}

func (r *UserRepo) GetByLogin(ctx context.Context, login string) (*domain.User, error) {
	return r.scanUser(ctx, "SELECT "+userColumns+" FROM users WHERE login = $1", login)
}

func (r *UserRepo) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	return r.scanUser(ctx, "SELECT "+userColumns+" FROM users WHERE phone = $1", phone)
}

func (r *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx, "SELECT "+userColumns+" FROM users ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUserRow(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

// Update rewrites every mutable field except the credential hash. Two
// concurrent updates to the same row are last-write-wins.
func (r *UserRepo) Update(ctx context.Context, user *domain.User) error {
	socials, background, err := marshalProfile(user)
	if err != nil {
		return err
	}

	query := `
		UPDATE users
		SET name = $2, last_name = $3, email = $4, phone = $5, socials = $6,
		    role = $7, avatar = $8, background = $9, updated_at = $10
		WHERE id = $1`

	_, err = r.pool.Exec(ctx, query,
		user.ID, user.Name, user.LastName, user.Email, user.Phone,
		socials, user.Role, user.Avatar, background, user.UpdatedAt,
	)
	return err
}

func (r *UserRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *UserRepo) ListFriendIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, "SELECT friend_id FROM user_friends WHERE user_id = $1 ORDER BY created_at", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *UserRepo) AddFriend(ctx context.Context, userID, friendID uuid.UUID) error {
	query := `
		INSERT INTO user_friends (user_id, friend_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`

	_, err := r.pool.Exec(ctx, query, userID, friendID)
	return err
}

func (r *UserRepo) RemoveFriend(ctx context.Context, userID, friendID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM user_friends WHERE user_id = $1 AND friend_id = $2", userID, friendID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *UserRepo) scanUser(ctx context.Context, query string, arg any) (*domain.User, error) {
	u, err := scanUserRow(r.pool.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return u, err
}

func scanUserRow(row pgx.Row) (*domain.User, error) {
	var (
		u          domain.User
		socials    []byte
		background []byte
	)
	err := row.Scan(
		&u.ID, &u.Login, &u.PasswordHash, &u.Name, &u.LastName,
		&u.Email, &u.Phone, &socials, &u.Role, &u.Avatar, &background,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(socials, &u.Socials); err != nil {
		return nil, fmt.Errorf("decoding socials: %w", err)
	}
	if len(background) > 0 {
		u.Background = &domain.Background{}
		if err := json.Unmarshal(background, u.Background); err != nil {
			return nil, fmt.Errorf("decoding background: %w", err)
		}
	}
	return &u, nil
}

func marshalProfile(user *domain.User) (socials []byte, background []byte, err error) {
	if user.Socials == nil {
		socials = []byte("[]")
	} else if socials, err = json.Marshal(user.Socials); err != nil {
		return nil, nil, fmt.Errorf("encoding socials: %w", err)
	}

	if user.Background != nil {
		if background, err = json.Marshal(user.Background); err != nil {
			return nil, nil, fmt.Errorf("encoding background: %w", err)
		}
	}
	return socials, background, nil
}
