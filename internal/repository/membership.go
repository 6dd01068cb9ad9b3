package repository

import (
	"context"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

// Membership defines persistence for the favorite and shopping cart sets
type Membership interface {
	GetRecipeShort(ctx context.Context, recipeID int64) (*domain.RecipeShort, error)
	MembershipExists(ctx context.Context, kind domain.MembershipKind, userID, recipeID int64) (bool, error)
	// AddMembership returns domain.ErrAlreadyExists when the pair is already stored
	AddMembership(ctx context.Context, kind domain.MembershipKind, userID, recipeID int64) error
	// RemoveMembership reports whether a row was deleted
	RemoveMembership(ctx context.Context, kind domain.MembershipKind, userID, recipeID int64) (bool, error)
}

// Shopping defines the read side of the shopping list
type Shopping interface {
	// GetCartRows returns one row per ingredient link of every recipe in the user's cart
	GetCartRows(ctx context.Context, userID int64) ([]domain.ShoppingRow, error)
}
