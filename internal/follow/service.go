package follow

import (
	"context"
	"fmt"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/event"
	"github.com/osse101/Foodgram_Go/internal/logger"
	"github.com/osse101/Foodgram_Go/internal/repository"
)

// Service manages subscriptions between users.
// recipesLimit bounds the recipe preview of each author; <= 0 means no limit.
type Service interface {
	Subscribe(ctx context.Context, userID, authorID int64, recipesLimit int) (*domain.Subscription, error)
	Unsubscribe(ctx context.Context, userID, authorID int64) error
	ListSubscriptions(ctx context.Context, userID int64, page domain.Page, recipesLimit int) (*domain.PageResult[domain.Subscription], error)
}

type service struct {
	repo        repository.Follow
	bus         event.Bus
	defaultPage int
}

// NewService creates a follow service
func NewService(repo repository.Follow, bus event.Bus, defaultPageLimit int) Service {
	if defaultPageLimit < 1 {
		defaultPageLimit = domain.DefaultPageLimit
	}
	return &service{repo: repo, bus: bus, defaultPage: defaultPageLimit}
}

func (s *service) Subscribe(ctx context.Context, userID, authorID int64, recipesLimit int) (*domain.Subscription, error) {
	log := logger.FromContext(ctx)

	if userID == 0 {
		return nil, domain.ErrUnauthorized
	}

	author, err := s.repo.GetUserByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if userID == authorID {
		return nil, domain.ErrSelfFollow
	}

	// Duplicate pairs, including concurrent ones, come back as ErrAlreadySubscribed
	if err := s.repo.AddFollow(ctx, userID, authorID); err != nil {
		return nil, err
	}

	log.Info("Subscribed to author", "author_id", authorID)
	event.PublishBestEffort(ctx, s.bus, event.NewFollowEvent(event.FollowCreated, userID, authorID))
	return s.subscription(ctx, *author, recipesLimit)
}

func (s *service) Unsubscribe(ctx context.Context, userID, authorID int64) error {
	log := logger.FromContext(ctx)

	if userID == 0 {
		return domain.ErrUnauthorized
	}

	if _, err := s.repo.GetUserByID(ctx, authorID); err != nil {
		return err
	}
	if _, err := s.repo.GetFollow(ctx, userID, authorID); err != nil {
		return err
	}
	if err := s.repo.DeleteFollow(ctx, userID, authorID); err != nil {
		return err
	}

	log.Info("Unsubscribed from author", "author_id", authorID)
	event.PublishBestEffort(ctx, s.bus, event.NewFollowEvent(event.FollowDeleted, userID, authorID))
	return nil
}

func (s *service) ListSubscriptions(ctx context.Context, userID int64, page domain.Page, recipesLimit int) (*domain.PageResult[domain.Subscription], error) {
	if userID == 0 {
		return nil, domain.ErrUnauthorized
	}
	page = page.Normalize(s.defaultPage)

	authors, total, err := s.repo.ListFollowedAuthors(ctx, userID, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	items := make([]domain.Subscription, 0, len(authors))
	for _, author := range authors {
		sub, err := s.subscription(ctx, author, recipesLimit)
		if err != nil {
			return nil, err
		}
		items = append(items, *sub)
	}
	return &domain.PageResult[domain.Subscription]{Count: total, Items: items}, nil
}

// subscription renders a followed author; is_subscribed is true by construction
func (s *service) subscription(ctx context.Context, author domain.User, recipesLimit int) (*domain.Subscription, error) {
	recipes, err := s.repo.GetAuthorRecipes(ctx, author.ID, recipesLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load author recipes: %w", err)
	}
	count, err := s.repo.CountAuthorRecipes(ctx, author.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count author recipes: %w", err)
	}
	if recipes == nil {
		recipes = []domain.RecipeShort{}
	}
	return &domain.Subscription{
		UserView:     author.View(true),
		Recipes:      recipes,
		RecipesCount: count,
	}, nil
}
