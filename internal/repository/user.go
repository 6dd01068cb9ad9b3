package repository

import (
	"context"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

// User defines the interface for user persistence
type User interface {
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
	ListUsers(ctx context.Context, page domain.Page) ([]domain.User, int64, error)
	UpsertUser(ctx context.Context, user *domain.User) (int64, error)
	// FollowedAmong returns which of authorIDs the user follows
	FollowedAmong(ctx context.Context, userID int64, authorIDs []int64) (map[int64]bool, error)
}

// Follow defines persistence for subscriptions between users
type Follow interface {
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
	GetFollow(ctx context.Context, userID, authorID int64) (*domain.Follow, error)
	// AddFollow returns domain.ErrAlreadySubscribed when the pair is already stored
	AddFollow(ctx context.Context, userID, authorID int64) error
	DeleteFollow(ctx context.Context, userID, authorID int64) error
	ListFollowedAuthors(ctx context.Context, userID int64, page domain.Page) ([]domain.User, int64, error)
	// GetAuthorRecipes returns the newest recipes of the author; limit <= 0 means all
	GetAuthorRecipes(ctx context.Context, authorID int64, limit int) ([]domain.RecipeShort, error)
	CountAuthorRecipes(ctx context.Context, authorID int64) (int64, error)
}
