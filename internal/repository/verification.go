package repository

import (
	"context"

	"fritter/internal/cache"
	"fritter/internal/models"

	"gorm.io/gorm"
)

// VerificationRepository defines persistence operations for identity
// declarations.
type VerificationRepository interface {
	Declare(ctx context.Context, record *models.Verification) error
	Revoke(ctx context.Context, userID uint) error
	History(ctx context.Context, userID uint) ([]models.Verification, error)
}

type verificationRepository struct {
	db *gorm.DB
}

// NewVerificationRepository returns a new VerificationRepository implementation.
func NewVerificationRepository(db *gorm.DB) VerificationRepository {
	return &verificationRepository{db: db}
}

// Declare appends the audit record and projects the declared identity onto
// the user row in one transaction, so the policy engine never reads a
// half-applied declaration.
func (r *verificationRepository) Declare(ctx context.Context, record *models.Verification) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id = ?", record.UserID).
			Updates(map[string]interface{}{
				"verified": record.Verified,
				"name":     record.Name,
				"age":      record.Age,
			}).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, record.UserID)
	return nil
}

// Revoke removes the user's verification records. The projected verified
// flag, name and age on the user row are left untouched.
func (r *verificationRepository) Revoke(ctx context.Context, userID uint) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Verification{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, userID)
	return nil
}

func (r *verificationRepository) History(ctx context.Context, userID uint) ([]models.Verification, error) {
	var records []models.Verification
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return records, nil
}
