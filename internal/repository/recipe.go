package repository

import (
	"context"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

// Recipe defines the interface for recipe persistence
type Recipe interface {
	GetRecipeByID(ctx context.Context, id int64) (*domain.Recipe, error)
	// ListRecipes returns one page of recipes (newest first) and the total match count.
	ListRecipes(ctx context.Context, filter domain.RecipeFilter, viewerID int64, page domain.Page) ([]domain.Recipe, int64, error)

	// Joined data for read views, keyed by recipe id
	GetTagsForRecipes(ctx context.Context, recipeIDs []int64) (map[int64][]domain.Tag, error)
	GetIngredientsForRecipes(ctx context.Context, recipeIDs []int64) (map[int64][]domain.RecipeIngredientView, error)
	GetMembershipFlags(ctx context.Context, viewerID int64, recipeIDs []int64) (favorited, inCart map[int64]bool, err error)

	// BeginTx starts a transaction for recipe writes
	BeginTx(ctx context.Context) (RecipeTx, error)
}

// RecipeTx defines the interface for recipe write transactions
type RecipeTx interface {
	Tx
	InsertRecipe(ctx context.Context, recipe *domain.Recipe) (int64, error)
	// GetRecipeForUpdate locks the recipe row until the transaction ends
	GetRecipeForUpdate(ctx context.Context, id int64) (*domain.Recipe, error)
	UpdateRecipe(ctx context.Context, recipe *domain.Recipe) error
	DeleteRecipe(ctx context.Context, id int64) error

	ClearTags(ctx context.Context, recipeID int64) error
	AttachTags(ctx context.Context, recipeID int64, tagIDs []int64) error
	DeleteIngredientLinks(ctx context.Context, recipeID int64) error
	InsertIngredientLinks(ctx context.Context, recipeID int64, ingredients []domain.IngredientAmount) error
	DeleteMemberships(ctx context.Context, recipeID int64) error
}
