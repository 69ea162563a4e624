package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stylesam/luxuria/internal/apperr"
	"github.com/stylesam/luxuria/internal/domain"
	"github.com/stylesam/luxuria/internal/permission"
	"github.com/stylesam/luxuria/internal/repository"
)

// UserService owns user records and applies the field-level update policy.
// It takes no locks: two concurrent updates to the same record are
// last-write-wins at the storage row level.
type UserService struct {
	users    repository.UserRepository
	notifier Notifier
	log      *zap.Logger
}

func NewUserService(users repository.UserRepository, log *zap.Logger) *UserService {
	return &UserService{users: users, log: log}
}

// SetNotifier sets the real-time notifier (optional dependency).
func (s *UserService) SetNotifier(n Notifier) {
	s.notifier = n
}

type CreateUserInput struct {
	Login      string             `json:"login"`
	Password   string             `json:"password"`
	Name       string             `json:"name"`
	LastName   string             `json:"last_name"`
	Email      string             `json:"email"`
	Phone      string             `json:"phone"`
	Socials    []domain.Social    `json:"socials"`
	Avatar     *string            `json:"avatar"`
	Background *domain.Background `json:"background"`
}

// UpdateUserInput is a patch: nil fields are left untouched. Socials are
// replaced wholesale when present, never merged.
type UpdateUserInput struct {
	Name       *string            `json:"name"`
	LastName   *string            `json:"last_name"`
	Email      *string            `json:"email"`
	Phone      *string            `json:"phone"`
	Socials    *[]domain.Social   `json:"socials"`
	Avatar     *string            `json:"avatar"`
	Background *domain.Background `json:"background"`
	Role       *domain.Role       `json:"role"`
}

// ChangesRole reports whether the patch asks for a role change. An absent or
// empty role field means "no role change requested".
func (in UpdateUserInput) ChangesRole() bool {
	return in.Role != nil && *in.Role != ""
}

// Create registers a new user. Registration is open: no permission check.
func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	login := strings.ToLower(strings.TrimSpace(input.Login))

	existing, err := s.users.GetByLogin(ctx, login)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("login is already taken")
	}

	existing, err = s.users.GetByPhone(ctx, input.Phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("phone is already registered")
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	socials := input.Socials
	if socials == nil {
		socials = []domain.Social{}
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New(),
		Login:        login,
		PasswordHash: hash,
		Name:         input.Name,
		LastName:     input.LastName,
		Email:        input.Email,
		Phone:        input.Phone,
		Socials:      socials,
		Role:         domain.RoleUser,
		Avatar:       input.Avatar,
		Background:   input.Background,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("user with that ID does not exist")
	}
	return user, nil
}

// UpdateByID applies a patch under the mutation policy. The branch order is
// the contract: a self role change is rejected before any ownership
// shortcut, and a patch aimed at another user must be a role change.
func (s *UserService) UpdateByID(ctx context.Context, id uuid.UUID, input UpdateUserInput, requester domain.Requester) (*domain.User, error) {
	target, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch {
	case requester.UserID == id && input.ChangesRole():
		return nil, apperr.Forbidden("you can not update your own role")

	case requester.UserID == id:
		return s.applyProfilePatch(ctx, target, input)

	default:
		if !input.ChangesRole() {
			return nil, apperr.BadRequest("you are not allowed to update anything other than the role")
		}

		allowed := permission.CanPerform(permission.Input{
			Action:     permission.ActionUpdate,
			Requester:  requester,
			Target:     target,
			RoleChange: true,
		})
		if !allowed {
			return nil, apperr.Forbidden("you are not allowed to update the role for that user")
		}

		// Cross-user edits apply the role and nothing else; any other
		// fields in the payload are ignored.
		target.Role = *input.Role
		target.UpdatedAt = time.Now()
		if err := s.users.Update(ctx, target); err != nil {
			return nil, fmt.Errorf("updating user role: %w", err)
		}

		s.log.Info("user role updated",
			zap.String("user_id", target.ID.String()),
			zap.String("role", string(target.Role)),
			zap.String("requester_id", requester.UserID.String()),
		)

		if s.notifier != nil {
			s.notifier.NotifyUserUpdated(target)
		}
		return target, nil
	}
}

// DeleteByID removes a user. The result is false when the record vanished
// between fetch and delete; repeating the call is a no-op, not an error.
// Zone ownership and friend edges are cleaned up by the storage cascade.
func (s *UserService) DeleteByID(ctx context.Context, id uuid.UUID, requester domain.Requester) (bool, error) {
	target, err := s.GetByID(ctx, id)
	if err != nil {
		return false, err
	}

	allowed := permission.CanPerform(permission.Input{
		Action:    permission.ActionDelete,
		Requester: requester,
		Target:    target,
	})
	if !allowed {
		return false, apperr.Forbidden("you are not allowed to delete that user")
	}

	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("deleting user: %w", err)
	}

	if deleted {
		s.log.Info("user deleted",
			zap.String("user_id", id.String()),
			zap.String("requester_id", requester.UserID.String()),
		)
		if s.notifier != nil {
			s.notifier.NotifyUserDeleted(id)
		}
	}
	return deleted, nil
}

func (s *UserService) applyProfilePatch(ctx context.Context, target *domain.User, input UpdateUserInput) (*domain.User, error) {
	if input.Name != nil {
		target.Name = *input.Name
	}
	if input.LastName != nil {
		target.LastName = *input.LastName
	}
	if input.Email != nil {
		target.Email = *input.Email
	}
	if input.Phone != nil {
		target.Phone = *input.Phone
	}
	if input.Socials != nil {
		target.Socials = *input.Socials
	}
	if input.Avatar != nil {
		target.Avatar = input.Avatar
	}
	if input.Background != nil {
		target.Background = input.Background
	}
	target.UpdatedAt = time.Now()

	if err := s.users.Update(ctx, target); err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	if s.notifier != nil {
		s.notifier.NotifyUserUpdated(target)
	}
	return target, nil
}
