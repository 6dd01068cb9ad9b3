package user

import (
	"context"
	"fmt"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/logger"
	"github.com/osse101/Foodgram_Go/internal/repository"
)

// Service exposes users as seen by a viewer. viewerID 0 is anonymous.
type Service interface {
	List(ctx context.Context, viewerID int64, page domain.Page) (*domain.PageResult[domain.UserView], error)
	Get(ctx context.Context, viewerID, userID int64) (*domain.UserView, error)
	Me(ctx context.Context, viewerID int64) (*domain.UserView, error)
	// Import creates or updates users by email, returning how many were written
	Import(ctx context.Context, users []domain.User) (int, error)
}

type service struct {
	repo        repository.User
	defaultPage int
}

// NewService creates a user service
func NewService(repo repository.User, defaultPageLimit int) Service {
	if defaultPageLimit < 1 {
		defaultPageLimit = domain.DefaultPageLimit
	}
	return &service{repo: repo, defaultPage: defaultPageLimit}
}

func (s *service) List(ctx context.Context, viewerID int64, page domain.Page) (*domain.PageResult[domain.UserView], error) {
	page = page.Normalize(s.defaultPage)

	users, total, err := s.repo.ListUsers(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	ids := make([]int64, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	followed, err := s.followed(ctx, viewerID, ids)
	if err != nil {
		return nil, err
	}

	views := make([]domain.UserView, len(users))
	for i, u := range users {
		views[i] = u.View(followed[u.ID])
	}
	return &domain.PageResult[domain.UserView]{Count: total, Items: views}, nil
}

func (s *service) Get(ctx context.Context, viewerID, userID int64) (*domain.UserView, error) {
	u, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	followed, err := s.followed(ctx, viewerID, []int64{u.ID})
	if err != nil {
		return nil, err
	}
	view := u.View(followed[u.ID])
	return &view, nil
}

func (s *service) Me(ctx context.Context, viewerID int64) (*domain.UserView, error) {
	if viewerID == 0 {
		return nil, domain.ErrUnauthorized
	}
	u, err := s.repo.GetUserByID(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	view := u.View(false)
	return &view, nil
}

func (s *service) Import(ctx context.Context, users []domain.User) (int, error) {
	log := logger.FromContext(ctx)

	written := 0
	for i := range users {
		id, err := s.repo.UpsertUser(ctx, &users[i])
		if err != nil {
			return written, fmt.Errorf("failed to import user %q: %w", users[i].Username, err)
		}
		users[i].ID = id
		written++
	}

	log.Info("Users imported", "count", written)
	return written, nil
}

func (s *service) followed(ctx context.Context, viewerID int64, ids []int64) (map[int64]bool, error) {
	if viewerID == 0 || len(ids) == 0 {
		return map[int64]bool{}, nil
	}
	followed, err := s.repo.FollowedAmong(ctx, viewerID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load subscriptions: %w", err)
	}
	return followed, nil
}
