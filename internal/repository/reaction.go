package repository

import (
	"context"
	"errors"

	"fritter/internal/cache"
	"fritter/internal/models"
	"fritter/internal/policy"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReactionRepository defines persistence operations for likes and dislikes.
// Add and Remove keep the reaction row, the freet's counters and the
// consensus flag consistent inside a single transaction.
type ReactionRepository interface {
	GetByUserAndFreet(ctx context.Context, userID, freetID uint) (*models.Reaction, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Reaction, error)
	Add(ctx context.Context, reaction *models.Reaction) (*models.Freet, error)
	Remove(ctx context.Context, userID, freetID uint) (*models.Freet, error)
}

type reactionRepository struct {
	db *gorm.DB
}

// NewReactionRepository returns a new ReactionRepository implementation.
func NewReactionRepository(db *gorm.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

func (r *reactionRepository) GetByUserAndFreet(ctx context.Context, userID, freetID uint) (*models.Reaction, error) {
	var reaction models.Reaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND freet_id = ?", userID, freetID).
		First(&reaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &reaction, nil
}

func (r *reactionRepository) ListByUser(ctx context.Context, userID uint) ([]models.Reaction, error) {
	var reactions []models.Reaction
	if err := r.db.WithContext(ctx).
		Preload("Freet").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reactions).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return reactions, nil
}

// Add inserts the reaction and bumps the matching counter. The composite
// unique index on (user_id, freet_id) makes the insert race-safe: when two
// requests for the same pair interleave, exactly one insert wins and the
// loser gets a conflict error without double counting.
func (r *reactionRepository) Add(ctx context.Context, reaction *models.Reaction) (*models.Freet, error) {
	var updated models.Freet
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var freet models.Freet
		if err := tx.First(&freet, reaction.FreetID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Freet not found")
			}
			return err
		}

		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(reaction)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return models.NewConflictError("You have already reacted to this freet")
		}

		counter := "dislikes"
		if reaction.Liked {
			counter = "likes"
		}
		if err := tx.Model(&models.Freet{}).
			Where("id = ?", reaction.FreetID).
			UpdateColumn(counter, gorm.Expr(counter+" + 1")).Error; err != nil {
			return err
		}

		return recomputeConsensus(tx, reaction.FreetID, &updated)
	})
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, models.NewInternalError(err)
	}
	invalidateCounters(ctx, &updated)
	return &updated, nil
}

// Remove deletes whatever reaction the user left on the freet and backs it
// out of the counters. The freet must exist before the missing-reaction case
// is considered, matching the Add guard. Kind checking against the request is
// the caller's job.
func (r *reactionRepository) Remove(ctx context.Context, userID, freetID uint) (*models.Freet, error) {
	var updated models.Freet
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var freet models.Freet
		if err := tx.First(&freet, freetID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Freet not found")
			}
			return err
		}

		var reaction models.Reaction
		if err := tx.Where("user_id = ? AND freet_id = ?", userID, freetID).
			First(&reaction).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewConflictError("You have not reacted to this freet")
			}
			return err
		}

		if err := retractReaction(tx, reaction); err != nil {
			return err
		}
		return recomputeConsensus(tx, freetID, &updated)
	})
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, models.NewInternalError(err)
	}
	invalidateCounters(ctx, &updated)
	return &updated, nil
}

// invalidateCounters drops the cached freet and the feeds that render its
// like and dislike counts.
func invalidateCounters(ctx context.Context, freet *models.Freet) {
	cache.InvalidateFreet(ctx, freet.ID)
	cache.InvalidateFeed(ctx)
	cache.InvalidateAuthorFeed(ctx, freet.AuthorID)
}

// retractReaction deletes the reaction row and decrements the counter it was
// counted in. Shared with account deletion, which backs reactions out of
// surviving freets.
func retractReaction(tx *gorm.DB, reaction models.Reaction) error {
	if err := tx.Delete(&models.Reaction{}, reaction.ID).Error; err != nil {
		return err
	}
	counter := "dislikes"
	if reaction.Liked {
		counter = "likes"
	}
	return tx.Model(&models.Freet{}).
		Where("id = ? AND "+counter+" > 0", reaction.FreetID).
		UpdateColumn(counter, gorm.Expr(counter+" - 1")).Error
}

// recomputeConsensus re-reads the counters written earlier in the same
// transaction and stores the consensus verdict. Running inside the
// transaction means the row lock taken by the counter update serializes
// concurrent recomputes, so the stored flag always matches the final
// counters.
func recomputeConsensus(tx *gorm.DB, freetID uint, out *models.Freet) error {
	if err := tx.Preload("Author").First(out, freetID).Error; err != nil {
		return err
	}
	filtered := policy.ConsensusFiltered(out.Likes, out.Dislikes)
	if filtered == out.ConsensusFiltered {
		return nil
	}
	if err := tx.Model(&models.Freet{}).
		Where("id = ?", freetID).
		UpdateColumn("consensus_filtered", filtered).Error; err != nil {
		return err
	}
	out.ConsensusFiltered = filtered
	return nil
}
