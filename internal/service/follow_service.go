package service

import (
	"context"

	"fritter/internal/models"
	"fritter/internal/repository"
)

// FollowService provides follow-graph business logic. Targets are addressed
// by username at this layer; the repositories work in IDs.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewFollowService returns a new FollowService.
func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

func (s *FollowService) resolveTarget(ctx context.Context, username string) (*models.User, error) {
	if username == "" {
		return nil, models.NewValidationError("Username must not be empty")
	}
	target, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, models.NewNotFoundError("There is no user with that username")
	}
	return target, nil
}

// Follow creates an edge from follower to the named user.
func (s *FollowService) Follow(ctx context.Context, followerID uint, username string) (*models.Follow, error) {
	target, err := s.resolveTarget(ctx, username)
	if err != nil {
		return nil, err
	}
	if target.ID == followerID {
		return nil, models.NewConflictError("You cannot follow yourself")
	}

	follow := &models.Follow{FollowerID: followerID, FollowingID: target.ID}
	if err := s.followRepo.Create(ctx, follow); err != nil {
		// A duplicate edge surfaces as not-found on the wire, matching the
		// public contract for this route.
		if models.IsCode(err, "CONFLICT") {
			return nil, models.NewNotFoundError("You are already following this user")
		}
		return nil, err
	}

	follow.Following = *target
	return follow, nil
}

// Unfollow removes the follower's edge to the named user.
func (s *FollowService) Unfollow(ctx context.Context, followerID uint, username string) (*models.User, error) {
	target, err := s.resolveTarget(ctx, username)
	if err != nil {
		return nil, err
	}
	if err := s.followRepo.Delete(ctx, followerID, target.ID); err != nil {
		return nil, err
	}
	return target, nil
}

// RemoveFollower deletes the edge the named user holds toward userID, so
// they stop seeing the account in their following list.
func (s *FollowService) RemoveFollower(ctx context.Context, userID uint, username string) (*models.User, error) {
	target, err := s.resolveTarget(ctx, username)
	if err != nil {
		return nil, err
	}
	if err := s.followRepo.Delete(ctx, target.ID, userID); err != nil {
		if models.IsCode(err, "CONFLICT") {
			return nil, models.NewNotFoundError("This user is not following you")
		}
		return nil, err
	}
	return target, nil
}

// Followers returns the edges pointing at the user.
func (s *FollowService) Followers(ctx context.Context, userID uint) ([]models.Follow, error) {
	return s.followRepo.ListFollowers(ctx, userID)
}

// Following returns the edges the user holds.
func (s *FollowService) Following(ctx context.Context, userID uint) ([]models.Follow, error) {
	return s.followRepo.ListFollowing(ctx, userID)
}
