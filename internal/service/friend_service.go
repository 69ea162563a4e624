package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stylesam/luxuria/internal/apperr"
	"github.com/stylesam/luxuria/internal/domain"
	"github.com/stylesam/luxuria/internal/repository"
)

// FriendService maintains the per-user friend list. The relation is
// one-directional: adding B to A's list never touches B's list, and the same
// holds for removal.
type FriendService struct {
	users    repository.UserRepository
	notifier Notifier
	log      *zap.Logger
}

func NewFriendService(users repository.UserRepository, log *zap.Logger) *FriendService {
	return &FriendService{users: users, log: log}
}

// SetNotifier sets the real-time notifier (optional dependency).
func (s *FriendService) SetNotifier(n Notifier) {
	s.notifier = n
}

// ListFriends resolves the stored friend references to full records. A
// reference whose user has since been deleted is skipped, not an error.
func (s *FriendService) ListFriends(ctx context.Context, userID uuid.UUID) ([]domain.User, error) {
	owner, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, apperr.NotFound("user with that ID does not exist")
	}

	ids, err := s.users.ListFriendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	friends := []domain.User{}
	for _, id := range ids {
		friend, err := s.users.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if friend == nil {
			continue
		}
		friends = append(friends, *friend)
	}
	return friends, nil
}

// AddFriend adds candidateID to userID's friend set and returns the updated,
// resolved list. Adding an existing friend is a no-op.
func (s *FriendService) AddFriend(ctx context.Context, userID, candidateID uuid.UUID) ([]domain.User, error) {
	if userID == candidateID {
		return nil, apperr.Conflict("you can not add yourself to friends")
	}

	owner, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, apperr.NotFound("user with that ID does not exist")
	}

	candidate, err := s.users.GetByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, apperr.NotFound("candidate friend with that ID does not exist")
	}

	if err := s.users.AddFriend(ctx, userID, candidateID); err != nil {
		return nil, fmt.Errorf("adding friend: %w", err)
	}

	s.log.Info("friend added",
		zap.String("user_id", userID.String()),
		zap.String("friend_id", candidateID.String()),
	)
	if s.notifier != nil {
		s.notifier.NotifyFriendAdded(userID, candidate)
	}

	return s.ListFriends(ctx, userID)
}

// RemoveFriend removes candidateID from userID's friend set. Removing a pair
// that was never friends is a bad request, mirroring the empty-removal
// contract of the write path.
func (s *FriendService) RemoveFriend(ctx context.Context, userID, candidateID uuid.UUID) (bool, error) {
	if userID == candidateID {
		return false, apperr.BadRequest("ids can not match")
	}

	owner, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	if owner == nil {
		return false, apperr.NotFound("user with that ID does not exist")
	}

	removed, err := s.users.RemoveFriend(ctx, userID, candidateID)
	if err != nil {
		return false, fmt.Errorf("removing friend: %w", err)
	}
	if !removed {
		return false, apperr.BadRequest("no such friendship")
	}

	s.log.Info("friend removed",
		zap.String("user_id", userID.String()),
		zap.String("friend_id", candidateID.String()),
	)
	if s.notifier != nil {
		s.notifier.NotifyFriendRemoved(userID, candidateID)
	}
	return true, nil
}
