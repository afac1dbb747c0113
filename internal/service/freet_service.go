// Package service implements the business rules on top of the repositories.
package service

import (
	"context"

	"fritter/internal/middleware"
	"fritter/internal/models"
	"fritter/internal/policy"
	"fritter/internal/repository"
	"fritter/internal/validation"
)

// FreetService provides freet publishing and feed business logic.
type FreetService struct {
	freetRepo  repository.FreetRepository
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
}

// NewFreetService returns a new FreetService.
func NewFreetService(freetRepo repository.FreetRepository, userRepo repository.UserRepository, followRepo repository.FollowRepository) *FreetService {
	return &FreetService{
		freetRepo:  freetRepo,
		userRepo:   userRepo,
		followRepo: followRepo,
	}
}

// Publish validates and stores a new freet.
func (s *FreetService) Publish(ctx context.Context, authorID uint, content string) (*models.Freet, error) {
	if !validation.ValidFreetContent(content) {
		return nil, models.NewValidationError("Freet content must be nonempty and at most 140 characters")
	}

	freet := &models.Freet{
		AuthorID: authorID,
		Content:  content,
	}
	if err := s.freetRepo.Create(ctx, freet); err != nil {
		return nil, err
	}

	middleware.FreetsPublished.Inc()
	return freet, nil
}

// Get returns a freet by ID without applying the visibility predicate;
// callers that act on a freet (delete, restrict) need to see it regardless.
func (s *FreetService) Get(ctx context.Context, freetID uint) (*models.Freet, error) {
	return s.freetRepo.GetByID(ctx, freetID)
}

// Feed returns all freets the viewer may see, newest-modified first.
func (s *FreetService) Feed(ctx context.Context, viewer policy.Viewer) ([]models.Freet, error) {
	freets, err := s.freetRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return filterVisible(viewer, freets), nil
}

// FeedByAuthor returns the named author's freets the viewer may see.
func (s *FreetService) FeedByAuthor(ctx context.Context, username string, viewer policy.Viewer) ([]models.Freet, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, models.NewNotFoundError("Author not found")
	}

	freets, err := s.freetRepo.ListByAuthor(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	return filterVisible(viewer, freets), nil
}

// FollowingFeed returns freets by the accounts the user follows, filtered by
// the same visibility rules as the public feed.
func (s *FreetService) FollowingFeed(ctx context.Context, userID uint, viewer policy.Viewer) ([]models.Freet, error) {
	authorIDs, err := s.followRepo.FollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	freets, err := s.freetRepo.ListByAuthors(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	return filterVisible(viewer, freets), nil
}

// Remove deletes a freet, which only its author may do.
func (s *FreetService) Remove(ctx context.Context, freetID, requesterID uint) error {
	freet, err := s.freetRepo.GetByID(ctx, freetID)
	if err != nil {
		return err
	}
	if freet.AuthorID != requesterID {
		return models.NewUnauthorizedError("You can only delete your own freets")
	}
	return s.freetRepo.Delete(ctx, freetID)
}

// Edit replaces a freet's content, which only its author may do. An edit
// bumps the modification time, so the freet resurfaces in feeds.
func (s *FreetService) Edit(ctx context.Context, freetID, requesterID uint, content string) (*models.Freet, error) {
	if !validation.ValidFreetContent(content) {
		return nil, models.NewValidationError("Freet content must be nonempty and at most 140 characters")
	}

	freet, err := s.freetRepo.GetByID(ctx, freetID)
	if err != nil {
		return nil, err
	}
	if freet.AuthorID != requesterID {
		return nil, models.NewUnauthorizedError("You can only edit your own freets")
	}

	if err := s.freetRepo.UpdateContent(ctx, freetID, content); err != nil {
		return nil, err
	}
	return s.freetRepo.GetByID(ctx, freetID)
}

// RestrictAge marks a freet as age-restricted. The flag is one-way.
func (s *FreetService) RestrictAge(ctx context.Context, freetID uint) (*models.Freet, error) {
	if err := s.freetRepo.SetAgeRestricted(ctx, freetID); err != nil {
		return nil, err
	}
	return s.freetRepo.GetByID(ctx, freetID)
}

// filterVisible applies the visibility predicate, preserving order.
func filterVisible(viewer policy.Viewer, freets []models.Freet) []models.Freet {
	visible := make([]models.Freet, 0, len(freets))
	for i := range freets {
		if policy.CanView(viewer, &freets[i]) {
			visible = append(visible, freets[i])
		}
	}
	return visible
}
