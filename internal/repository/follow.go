package repository

import (
	"context"
	"errors"

	"fritter/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowRepository defines persistence operations for the follow graph.
type FollowRepository interface {
	Create(ctx context.Context, follow *models.Follow) error
	Get(ctx context.Context, followerID, followingID uint) (*models.Follow, error)
	Delete(ctx context.Context, followerID, followingID uint) error
	ListFollowing(ctx context.Context, followerID uint) ([]models.Follow, error)
	ListFollowers(ctx context.Context, followingID uint) ([]models.Follow, error)
	FollowingIDs(ctx context.Context, followerID uint) ([]uint, error)
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository returns a new FollowRepository implementation.
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// Create inserts the edge. The composite unique index on
// (follower_id, following_id) absorbs concurrent duplicate follows: the
// losing insert affects zero rows and surfaces as a conflict.
func (r *followRepository) Create(ctx context.Context, follow *models.Follow) error {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(follow)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewConflictError("You are already following this user")
	}
	return nil
}

func (r *followRepository) Get(ctx context.Context, followerID, followingID uint) (*models.Follow, error) {
	var follow models.Follow
	if err := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		First(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &follow, nil
}

func (r *followRepository) Delete(ctx context.Context, followerID, followingID uint) error {
	result := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follow{})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewConflictError("You are not following this user")
	}
	return nil
}

func (r *followRepository) ListFollowing(ctx context.Context, followerID uint) ([]models.Follow, error) {
	var follows []models.Follow
	if err := r.db.WithContext(ctx).
		Preload("Following").
		Where("follower_id = ?", followerID).
		Order("created_at DESC").
		Find(&follows).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return follows, nil
}

func (r *followRepository) ListFollowers(ctx context.Context, followingID uint) ([]models.Follow, error) {
	var follows []models.Follow
	if err := r.db.WithContext(ctx).
		Preload("Follower").
		Where("following_id = ?", followingID).
		Order("created_at DESC").
		Find(&follows).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return follows, nil
}

func (r *followRepository) FollowingIDs(ctx context.Context, followerID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ?", followerID).
		Pluck("following_id", &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}
