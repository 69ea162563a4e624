// Package cache provides a Redis read-through layer over the user
// repository. Only GetByID is cached; login/phone lookups stay on the
// primary store because they carry the credential hash.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/stylesam/luxuria/internal/domain"
	"github.com/stylesam/luxuria/internal/repository"
)

type CachedUserRepo struct {
	inner  repository.UserRepository
	client redis.UniversalClient
	ttl    time.Duration
	log    *zap.Logger
}

var _ repository.UserRepository = (*CachedUserRepo)(nil)

func NewCachedUserRepo(inner repository.UserRepository, client redis.UniversalClient, ttl time.Duration, log *zap.Logger) *CachedUserRepo {
	return &CachedUserRepo{inner: inner, client: client, ttl: ttl, log: log}
}

// cachedUser is the cache payload. domain.User hides the credential hash
// from JSON, so the envelope carries every column explicitly.
type cachedUser struct {
	User domain.User `json:"user"`
	Hash string      `json:"hash"`
}

func userKey(id uuid.UUID) string {
	return "user:" + id.String()
}

func (r *CachedUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	raw, err := r.client.Get(ctx, userKey(id)).Bytes()
	if err == nil {
		var entry cachedUser
		if err := json.Unmarshal(raw, &entry); err == nil {
			u := entry.User
			u.PasswordHash = entry.Hash
			return &u, nil
		}
		// Corrupt entry: drop it and fall through to the store.
		r.client.Del(ctx, userKey(id))
	} else if !errors.Is(err, redis.Nil) {
		r.log.Warn("user cache read failed", zap.String("user_id", id.String()), zap.Error(err))
	}

	user, err := r.inner.GetByID(ctx, id)
	if err != nil || user == nil {
		return user, err
	}

	entry := cachedUser{User: *user, Hash: user.PasswordHash}
	if payload, err := json.Marshal(entry); err == nil {
		if err := r.client.Set(ctx, userKey(id), payload, r.ttl).Err(); err != nil {
			r.log.Warn("user cache write failed", zap.String("user_id", id.String()), zap.Error(err))
		}
	}
	return user, nil
}

func (r *CachedUserRepo) Update(ctx context.Context, user *domain.User) error {
	if err := r.inner.Update(ctx, user); err != nil {
		return err
	}
	return r.invalidate(ctx, user.ID)
}

func (r *CachedUserRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := r.inner.Delete(ctx, id)
	if err != nil {
		return deleted, err
	}
	return deleted, r.invalidate(ctx, id)
}

func (r *CachedUserRepo) invalidate(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Del(ctx, userKey(id)).Err(); err != nil {
		return fmt.Errorf("invalidating user cache: %w", err)
	}
	return nil
}

// Remaining operations pass straight through.

func (r *CachedUserRepo) Create(ctx context.Context, user *domain.User) error {
	return r.inner.Create(ctx, user)
}

func (r *CachedUserRepo) GetByLogin(ctx context.Context, login string) (*domain.User, error) {
	return r.inner.GetByLogin(ctx, login)
}

func (r *CachedUserRepo) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	return r.inner.GetByPhone(ctx, phone)
}

func (r *CachedUserRepo) List(ctx context.Context) ([]domain.User, error) {
	return r.inner.List(ctx)
}

func (r *CachedUserRepo) ListFriendIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return r.inner.ListFriendIDs(ctx, userID)
}

func (r *CachedUserRepo) AddFriend(ctx context.Context, userID, friendID uuid.UUID) error {
	return r.inner.AddFriend(ctx, userID, friendID)
}

func (r *CachedUserRepo) RemoveFriend(ctx context.Context, userID, friendID uuid.UUID) (bool, error) {
	return r.inner.RemoveFriend(ctx, userID, friendID)
}
