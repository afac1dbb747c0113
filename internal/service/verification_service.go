package service

import (
	"context"

	"fritter/internal/models"
	"fritter/internal/repository"
	"fritter/internal/validation"
)

// VerificationService provides the self-declared identity flow.
type VerificationService struct {
	verificationRepo repository.VerificationRepository
	userRepo         repository.UserRepository
}

// NewVerificationService returns a new VerificationService.
func NewVerificationService(verificationRepo repository.VerificationRepository, userRepo repository.UserRepository) *VerificationService {
	return &VerificationService{
		verificationRepo: verificationRepo,
		userRepo:         userRepo,
	}
}

// Declare verifies the user with the given name and age. Verification is
// one-shot: a second declaration conflicts until the records are revoked.
func (s *VerificationService) Declare(ctx context.Context, userID uint, name, age string) (*models.User, error) {
	if !validation.ValidName(name) {
		return nil, models.NewValidationError("Name must be a nonempty alphanumeric string")
	}
	if !validation.ValidAge(age) {
		return nil, models.NewValidationError("Age must be a positive integer")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Verified {
		return nil, models.NewConflictError("You are already verified")
	}

	record := &models.Verification{
		UserID:   userID,
		Verified: true,
		Name:     name,
		Age:      age,
	}
	if err := s.verificationRepo.Declare(ctx, record); err != nil {
		return nil, err
	}

	user.Verified = true
	user.Name = name
	user.Age = age
	return user, nil
}

// StatusByUsername reports the named user's verification state.
func (s *VerificationService) StatusByUsername(ctx context.Context, username string) (*models.User, error) {
	if !validation.ValidUsername(username) {
		return nil, models.NewValidationError("Username must be a nonempty alphanumeric string")
	}
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("There is no user with that username")
	}
	return user, nil
}

// Status reports the authenticated user's own verification state.
func (s *VerificationService) Status(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// Revoke withdraws the user's verification records. The projected identity
// on the user row deliberately stays as declared.
func (s *VerificationService) Revoke(ctx context.Context, userID uint) error {
	return s.verificationRepo.Revoke(ctx, userID)
}

// History returns the user's past declarations, newest first.
func (s *VerificationService) History(ctx context.Context, userID uint) ([]models.Verification, error) {
	return s.verificationRepo.History(ctx, userID)
}
