package repository

import (
	"context"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

// Catalog defines read access to tags and ingredients plus the fixture import
type Catalog interface {
	ListTags(ctx context.Context) ([]domain.Tag, error)
	GetTagByID(ctx context.Context, id int64) (*domain.Tag, error)
	GetTagsByIDs(ctx context.Context, ids []int64) ([]domain.Tag, error)

	// ListIngredients returns ingredients whose name starts with namePrefix
	// (case-insensitive); an empty prefix lists everything.
	ListIngredients(ctx context.Context, namePrefix string) ([]domain.Ingredient, error)
	GetIngredientByID(ctx context.Context, id int64) (*domain.Ingredient, error)
	GetIngredientsByIDs(ctx context.Context, ids []int64) ([]domain.Ingredient, error)

	// Fixture import operations
	InsertIngredients(ctx context.Context, ingredients []domain.Ingredient) (int, error)
	UpsertTags(ctx context.Context, tags []domain.Tag) (int, error)
}
