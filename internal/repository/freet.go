package repository

import (
	"context"
	"errors"

	"fritter/internal/cache"
	"fritter/internal/models"

	"gorm.io/gorm"
)

// FreetRepository defines persistence operations for freets.
type FreetRepository interface {
	Create(ctx context.Context, freet *models.Freet) error
	GetByID(ctx context.Context, id uint) (*models.Freet, error)
	ListAll(ctx context.Context) ([]models.Freet, error)
	ListByAuthor(ctx context.Context, authorID uint) ([]models.Freet, error)
	ListByAuthors(ctx context.Context, authorIDs []uint) ([]models.Freet, error)
	UpdateContent(ctx context.Context, id uint, content string) error
	SetAgeRestricted(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
}

type freetRepository struct {
	db *gorm.DB
}

// NewFreetRepository returns a new FreetRepository implementation.
func NewFreetRepository(db *gorm.DB) FreetRepository {
	return &freetRepository{db: db}
}

func (r *freetRepository) Create(ctx context.Context, freet *models.Freet) error {
	if err := r.db.WithContext(ctx).Create(freet).Error; err != nil {
		return models.NewInternalError(err)
	}
	// Reload with the author so responses can show a username.
	if err := r.db.WithContext(ctx).Preload("Author").First(freet, freet.ID).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateFeed(ctx)
	cache.InvalidateAuthorFeed(ctx, freet.AuthorID)
	return nil
}

func (r *freetRepository) GetByID(ctx context.Context, id uint) (*models.Freet, error) {
	var freet models.Freet
	err := cache.Aside(ctx, cache.FreetKey(id), &freet, cache.FreetTTL, func() error {
		if err := r.db.WithContext(ctx).Preload("Author").First(&freet, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Freet not found")
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &freet, nil
}

// ListAll returns every freet newest-modified first. Visibility filtering is
// a policy concern and happens above this layer, which is what lets the feed
// be cached once for all viewers.
func (r *freetRepository) ListAll(ctx context.Context) ([]models.Freet, error) {
	var freets []models.Freet
	err := cache.Aside(ctx, cache.FeedKey(), &freets, cache.FeedTTL, func() error {
		if err := r.db.WithContext(ctx).
			Preload("Author").
			Order("updated_at DESC").
			Find(&freets).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return freets, nil
}

func (r *freetRepository) ListByAuthor(ctx context.Context, authorID uint) ([]models.Freet, error) {
	var freets []models.Freet
	err := cache.Aside(ctx, cache.AuthorFeedKey(authorID), &freets, cache.FeedTTL, func() error {
		if err := r.db.WithContext(ctx).
			Preload("Author").
			Where("author_id = ?", authorID).
			Order("updated_at DESC").
			Find(&freets).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return freets, nil
}

func (r *freetRepository) ListByAuthors(ctx context.Context, authorIDs []uint) ([]models.Freet, error) {
	if len(authorIDs) == 0 {
		return []models.Freet{}, nil
	}
	var freets []models.Freet
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("author_id IN ?", authorIDs).
		Order("updated_at DESC").
		Find(&freets).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return freets, nil
}

// authorID resolves the freet's author for cache invalidation, zero when the
// freet is gone.
func (r *freetRepository) authorID(ctx context.Context, freetID uint) uint {
	var ids []uint
	r.db.WithContext(ctx).Model(&models.Freet{}).Where("id = ?", freetID).Pluck("author_id", &ids)
	if len(ids) == 0 {
		return 0
	}
	return ids[0]
}

// invalidate drops every cached view a freet mutation can go stale through.
func (r *freetRepository) invalidate(ctx context.Context, freetID, authorID uint) {
	cache.InvalidateFreet(ctx, freetID)
	cache.InvalidateFeed(ctx)
	cache.InvalidateAuthorFeed(ctx, authorID)
}

func (r *freetRepository) UpdateContent(ctx context.Context, id uint, content string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Freet{}).
		Where("id = ?", id).
		Update("content", content)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Freet not found")
	}
	r.invalidate(ctx, id, r.authorID(ctx, id))
	return nil
}

// SetAgeRestricted flips the moderation flag on. There is no path that turns
// it back off. UpdateColumn keeps updated_at where it was, so restricting a
// freet does not move it up the feed.
func (r *freetRepository) SetAgeRestricted(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).
		Model(&models.Freet{}).
		Where("id = ?", id).
		UpdateColumn("age_restricted_viewing", true)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Freet not found")
	}
	r.invalidate(ctx, id, r.authorID(ctx, id))
	return nil
}

func (r *freetRepository) Delete(ctx context.Context, id uint) error {
	authorID := r.authorID(ctx, id)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("freet_id = ?", id).Delete(&models.Reaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Freet{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	r.invalidate(ctx, id, authorID)
	return nil
}
