package domain

import "time"

// Cooking time bounds in minutes, inclusive
const (
	MinCookingTime = 1
	MaxCookingTime = 1440
)

// Ingredient amount bounds, inclusive. The upper bound is the smallint range.
const (
	MinIngredientAmount = 1
	MaxIngredientAmount = 32767
)

// MaxRecipeNameLength is the longest accepted recipe name, in characters
const MaxRecipeNameLength = 200

// Recipe is the persisted recipe row
type Recipe struct {
	ID          int64     `json:"id"`
	AuthorID    int64     `json:"author_id"`
	Name        string    `json:"name"`
	Image       string    `json:"image"`
	Text        string    `json:"text"`
	CookingTime int       `json:"cooking_time"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// RecipeIngredientLink binds a recipe to an ingredient with an amount.
// (IngredientID, RecipeID) is unique.
type RecipeIngredientLink struct {
	RecipeID     int64 `json:"recipe_id"`
	IngredientID int64 `json:"ingredient_id"`
	Amount       int   `json:"amount"`
}

// IngredientAmount is one ingredient entry of a write payload
type IngredientAmount struct {
	ID     int64 `json:"id"`
	Amount int   `json:"amount"`
}

// RecipeWriteInput is the payload accepted by recipe create and update
type RecipeWriteInput struct {
	Tags        []int64            `json:"tags"`
	Ingredients []IngredientAmount `json:"ingredients"`
	Name        string             `json:"name"`
	Image       string             `json:"image"`
	Text        string             `json:"text"`
	CookingTime int                `json:"cooking_time"`
}

// RecipeIngredientView is an ingredient link expanded with catalog data
type RecipeIngredientView struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

// RecipeReadView is the representation returned by every recipe read and write
type RecipeReadView struct {
	ID               int64                  `json:"id"`
	Tags             []Tag                  `json:"tags"`
	Author           UserView               `json:"author"`
	Ingredients      []RecipeIngredientView `json:"ingredients"`
	IsFavorited      bool                   `json:"is_favorited"`
	IsInShoppingCart bool                   `json:"is_in_shopping_cart"`
	Name             string                 `json:"name"`
	Image            string                 `json:"image"`
	Text             string                 `json:"text"`
	CookingTime      int                    `json:"cooking_time"`
}

// RecipeShort is the compact projection used by favorites, carts and subscriptions
type RecipeShort struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

// Short returns the compact projection of the recipe
func (r Recipe) Short() RecipeShort {
	return RecipeShort{
		ID:          r.ID,
		Name:        r.Name,
		Image:       r.Image,
		CookingTime: r.CookingTime,
	}
}
