// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"
	"strings"

	"fritter/internal/cache"
	"fritter/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, limit, offset int) ([]models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	key := cache.UserKey(id)

	err := cache.Aside(ctx, key, &user, cache.UserTTL, func() error {
		if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("User not found")
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Username already taken")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// isUniqueConstraintError checks if a DB error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	// PostgreSQL unique violation SQLSTATE 23505, sqlite reports "UNIQUE constraint failed"
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, user.ID)
	return nil
}

// Delete removes the account and everything hanging off it: the user's
// freets, both directions of their follow edges, their reactions, and their
// verification history. Reactions the user left on other authors' freets
// must also be backed out of those freets' counters.
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	var staleFreetIDs []uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ownFreetIDs []uint
		if err := tx.Model(&models.Freet{}).Where("author_id = ?", id).Pluck("id", &ownFreetIDs).Error; err != nil {
			return err
		}

		// Back out this user's reactions on freets that will survive.
		var foreign []models.Reaction
		q := tx.Where("user_id = ?", id)
		if len(ownFreetIDs) > 0 {
			q = q.Where("freet_id NOT IN ?", ownFreetIDs)
		}
		if err := q.Find(&foreign).Error; err != nil {
			return err
		}
		for _, reaction := range foreign {
			if err := retractReaction(tx, reaction); err != nil {
				return err
			}
			var freet models.Freet
			if err := recomputeConsensus(tx, reaction.FreetID, &freet); err != nil {
				return err
			}
			staleFreetIDs = append(staleFreetIDs, reaction.FreetID)
		}
		staleFreetIDs = append(staleFreetIDs, ownFreetIDs...)

		if len(ownFreetIDs) > 0 {
			if err := tx.Where("freet_id IN ?", ownFreetIDs).Delete(&models.Reaction{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", ownFreetIDs).Delete(&models.Freet{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Reaction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("follower_id = ? OR following_id = ?", id, id).Delete(&models.Follow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Verification{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, id)
	cache.InvalidateFeed(ctx)
	cache.InvalidateAuthorFeed(ctx, id)
	for _, freetID := range staleFreetIDs {
		cache.InvalidateFreet(ctx, freetID)
	}
	return nil
}

func (r *userRepository) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}
