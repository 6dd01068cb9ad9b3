package membership

import (
	"context"
	"fmt"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/event"
	"github.com/osse101/Foodgram_Go/internal/logger"
	"github.com/osse101/Foodgram_Go/internal/repository"
)

// Service toggles recipes in a user's favorite and shopping cart sets
type Service interface {
	Add(ctx context.Context, kind domain.MembershipKind, userID, recipeID int64) (*domain.RecipeShort, error)
	Remove(ctx context.Context, kind domain.MembershipKind, userID, recipeID int64) error
}

type service struct {
	repo repository.Membership
	bus  event.Bus
}

// NewService creates a membership service
func NewService(repo repository.Membership, bus event.Bus) Service {
	return &service{repo: repo, bus: bus}
}

func (s *service) Add(ctx context.Context, kind domain.MembershipKind, userID, recipeID int64) (*domain.RecipeShort, error) {
	log := logger.FromContext(ctx)

	if err := checkArgs(kind, userID); err != nil {
		return nil, err
	}

	short, err := s.repo.GetRecipeShort(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.MembershipExists(ctx, kind, userID, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if exists {
		return nil, domain.ErrAlreadyExists
	}

	// A concurrent add surfaces here as ErrAlreadyExists
	if err := s.repo.AddMembership(ctx, kind, userID, recipeID); err != nil {
		return nil, err
	}

	log.Info("Recipe added to set", "kind", kind, "recipe_id", recipeID)
	event.PublishBestEffort(ctx, s.bus, event.NewMembershipEvent(event.MembershipAdded, kind, userID, recipeID))
	return short, nil
}

func (s *service) Remove(ctx context.Context, kind domain.MembershipKind, userID, recipeID int64) error {
	log := logger.FromContext(ctx)

	if err := checkArgs(kind, userID); err != nil {
		return err
	}

	if _, err := s.repo.GetRecipeShort(ctx, recipeID); err != nil {
		return err
	}

	removed, err := s.repo.RemoveMembership(ctx, kind, userID, recipeID)
	if err != nil {
		return fmt.Errorf("failed to remove membership: %w", err)
	}
	if !removed {
		return domain.ErrMembershipNotFound
	}

	log.Info("Recipe removed from set", "kind", kind, "recipe_id", recipeID)
	event.PublishBestEffort(ctx, s.bus, event.NewMembershipEvent(event.MembershipRemoved, kind, userID, recipeID))
	return nil
}

func checkArgs(kind domain.MembershipKind, userID int64) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidMembershipKind, kind)
	}
	if userID == 0 {
		return domain.ErrUnauthorized
	}
	return nil
}
