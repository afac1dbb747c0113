package service

import (
	"context"

	"fritter/internal/middleware"
	"fritter/internal/models"
	"fritter/internal/policy"
	"fritter/internal/repository"
)

// ReactionService provides like/dislike business logic.
type ReactionService struct {
	reactionRepo repository.ReactionRepository
	freetRepo    repository.FreetRepository
}

// NewReactionService returns a new ReactionService.
func NewReactionService(reactionRepo repository.ReactionRepository, freetRepo repository.FreetRepository) *ReactionService {
	return &ReactionService{reactionRepo: reactionRepo, freetRepo: freetRepo}
}

func kindLabel(liked bool) string {
	if liked {
		return "like"
	}
	return "dislike"
}

// React records a like or dislike. One reaction of either kind per
// (user, freet) pair; a second attempt conflicts.
func (s *ReactionService) React(ctx context.Context, userID, freetID uint, liked bool) (*models.Reaction, *models.Freet, error) {
	reaction := &models.Reaction{UserID: userID, FreetID: freetID, Liked: liked}
	before, err := s.reactionRepo.GetByUserAndFreet(ctx, userID, freetID)
	if err != nil {
		return nil, nil, err
	}
	if before != nil {
		return nil, nil, models.NewConflictError("You have already reacted to this freet")
	}

	freet, err := s.reactionRepo.Add(ctx, reaction)
	if err != nil {
		return nil, nil, err
	}

	middleware.ReactionsRecorded.WithLabelValues(kindLabel(liked), "add").Inc()
	recordConsensusTransition(freet, -1, liked)
	return reaction, freet, nil
}

// Unreact removes the user's reaction of the given kind. An unknown freet is
// not found before anything else; with the freet known, having no reaction at
// all is a conflict and a reaction of the other kind is treated as the
// requested one not being found.
func (s *ReactionService) Unreact(ctx context.Context, userID, freetID uint, liked bool) (*models.Freet, error) {
	if _, err := s.freetRepo.GetByID(ctx, freetID); err != nil {
		return nil, err
	}

	existing, err := s.reactionRepo.GetByUserAndFreet(ctx, userID, freetID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, models.NewConflictError("You have not reacted to this freet")
	}
	if existing.Liked != liked {
		return nil, models.NewNotFoundError("You have no " + kindLabel(liked) + " on this freet")
	}

	freet, err := s.reactionRepo.Remove(ctx, userID, freetID)
	if err != nil {
		return nil, err
	}

	middleware.ReactionsRecorded.WithLabelValues(kindLabel(liked), "remove").Inc()
	recordConsensusTransition(freet, 1, liked)
	return freet, nil
}

// recordConsensusTransition compares the stored consensus verdict against the
// verdict the counters gave before this mutation (delta undoes it) and counts
// the flips.
func recordConsensusTransition(freet *models.Freet, delta int, liked bool) {
	priorLikes, priorDislikes := freet.Likes, freet.Dislikes
	if liked {
		priorLikes += delta
	} else {
		priorDislikes += delta
	}
	before := policy.ConsensusFiltered(priorLikes, priorDislikes)
	switch {
	case !before && freet.ConsensusFiltered:
		middleware.ConsensusTransitions.WithLabelValues("hidden").Inc()
	case before && !freet.ConsensusFiltered:
		middleware.ConsensusTransitions.WithLabelValues("restored").Inc()
	}
}

// Find returns the user's reaction on the freet, nil when there is none.
func (s *ReactionService) Find(ctx context.Context, userID, freetID uint) (*models.Reaction, error) {
	return s.reactionRepo.GetByUserAndFreet(ctx, userID, freetID)
}

// ListByUser returns all reactions the user has recorded.
func (s *ReactionService) ListByUser(ctx context.Context, userID uint) ([]models.Reaction, error) {
	return s.reactionRepo.ListByUser(ctx, userID)
}
