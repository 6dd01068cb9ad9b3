package recipe

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

func validInput() domain.RecipeWriteInput {
	return domain.RecipeWriteInput{
		Tags:        []int64{1, 2},
		Ingredients: []domain.IngredientAmount{{ID: 10, Amount: 200}, {ID: 11, Amount: 300}},
		Name:        "Pancakes",
		Image:       "data:image/png;base64,iVBORw0KGgo=",
		Text:        "Mix and fry.",
		CookingTime: 20,
	}
}

func requireFieldError(t *testing.T, err error, field string, want error) {
	t.Helper()
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.True(t, verr.Has(field), "expected failure for field %q, got %v", field, verr)
	assert.ErrorIs(t, verr.Fields[field], want)
}

func TestValidate_Valid(t *testing.T) {
	v := NewValidator(&fakeCatalog{})
	assert.NoError(t, v.Validate(context.Background(), validInput()))
}

func TestValidate_Tags(t *testing.T) {
	tests := []struct {
		name string
		tags []int64
		want error
	}{
		{"empty", nil, domain.ErrEmptyTags},
		{"duplicate", []int64{1, 1}, domain.ErrDuplicateTag},
		{"unknown", []int64{1, 99}, domain.ErrTagNotFound},
		{"duplicate unknown reports duplicate", []int64{99, 99}, domain.ErrDuplicateTag},
	}

	v := NewValidator(&fakeCatalog{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			in.Tags = tt.tags
			err := v.Validate(context.Background(), in)
			requireFieldError(t, err, FieldTags, tt.want)
		})
	}
}

func TestValidate_Ingredients(t *testing.T) {
	tests := []struct {
		name        string
		ingredients []domain.IngredientAmount
		want        error
	}{
		{"empty", []domain.IngredientAmount{}, domain.ErrEmptyIngredients},
		{"duplicate", []domain.IngredientAmount{{ID: 10, Amount: 1}, {ID: 10, Amount: 2}}, domain.ErrDuplicateIngredient},
		{"unknown", []domain.IngredientAmount{{ID: 999, Amount: 1}}, domain.ErrIngredientNotFound},
		{"zero amount", []domain.IngredientAmount{{ID: 10, Amount: 0}}, domain.ErrInvalidAmount},
		{"negative amount", []domain.IngredientAmount{{ID: 10, Amount: -5}}, domain.ErrInvalidAmount},
		{"amount above smallint", []domain.IngredientAmount{{ID: 10, Amount: domain.MaxIngredientAmount + 1}}, domain.ErrInvalidAmount},
		{"amount at int4 limit", []domain.IngredientAmount{{ID: 10, Amount: math.MaxInt32}}, domain.ErrInvalidAmount},
		{"duplicate precedes not found", []domain.IngredientAmount{{ID: 999, Amount: 1}, {ID: 999, Amount: 1}}, domain.ErrDuplicateIngredient},
		{"not found precedes amount", []domain.IngredientAmount{{ID: 10, Amount: 0}, {ID: 999, Amount: 1}}, domain.ErrIngredientNotFound},
	}

	v := NewValidator(&fakeCatalog{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			in.Ingredients = tt.ingredients
			err := v.Validate(context.Background(), in)
			requireFieldError(t, err, FieldIngredients, tt.want)
		})
	}
}

func TestValidate_AmountBoundsAreInclusive(t *testing.T) {
	v := NewValidator(&fakeCatalog{})

	for _, amount := range []int{domain.MinIngredientAmount, domain.MaxIngredientAmount} {
		in := validInput()
		in.Ingredients = []domain.IngredientAmount{{ID: 10, Amount: amount}}
		assert.NoError(t, v.Validate(context.Background(), in), "amount %d", amount)
	}
}

func TestValidate_CookingTimeBounds(t *testing.T) {
	v := NewValidator(&fakeCatalog{})

	for _, minutes := range []int{domain.MinCookingTime, domain.MaxCookingTime} {
		in := validInput()
		in.CookingTime = minutes
		assert.NoError(t, v.Validate(context.Background(), in), "cooking time %d", minutes)
	}

	for _, minutes := range []int{0, -1, domain.MaxCookingTime + 1} {
		in := validInput()
		in.CookingTime = minutes
		err := v.Validate(context.Background(), in)
		requireFieldError(t, err, FieldCookingTime, domain.ErrCookingTimeRange)
	}
}

func TestValidate_ScalarFields(t *testing.T) {
	v := NewValidator(&fakeCatalog{})

	t.Run("name required", func(t *testing.T) {
		in := validInput()
		in.Name = "   "
		requireFieldError(t, v.Validate(context.Background(), in), FieldName, domain.ErrFieldRequired)
	})

	t.Run("name length counts characters", func(t *testing.T) {
		in := validInput()
		in.Name = strings.Repeat("щ", domain.MaxRecipeNameLength)
		assert.NoError(t, v.Validate(context.Background(), in))

		in.Name += "щ"
		requireFieldError(t, v.Validate(context.Background(), in), FieldName, domain.ErrNameTooLong)
	})

	t.Run("text required", func(t *testing.T) {
		in := validInput()
		in.Text = ""
		requireFieldError(t, v.Validate(context.Background(), in), FieldText, domain.ErrFieldRequired)
	})

	t.Run("image required", func(t *testing.T) {
		in := validInput()
		in.Image = ""
		requireFieldError(t, v.Validate(context.Background(), in), FieldImage, domain.ErrFieldRequired)
	})

	t.Run("image reference accepted", func(t *testing.T) {
		in := validInput()
		in.Image = "recipes/images/pancakes.png"
		assert.NoError(t, v.Validate(context.Background(), in))
	})

	t.Run("broken data uri", func(t *testing.T) {
		for _, image := range []string{
			"data:image/png;base64,***",
			"data:image/png,plain",
			"data:image/png;base64,",
		} {
			in := validInput()
			in.Image = image
			requireFieldError(t, v.Validate(context.Background(), in), FieldImage, domain.ErrInvalidImage)
		}
	})
}

func TestValidate_ReportsEveryFailingField(t *testing.T) {
	v := NewValidator(&fakeCatalog{})
	in := domain.RecipeWriteInput{CookingTime: 0}

	err := v.Validate(context.Background(), in)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 6)
	assert.ErrorIs(t, err, domain.ErrEmptyTags)
	assert.ErrorIs(t, err, domain.ErrEmptyIngredients)
	assert.ErrorIs(t, err, domain.ErrCookingTimeRange)
}

func TestValidate_CatalogFailureIsNotValidation(t *testing.T) {
	boom := errors.New("connection refused")
	v := NewValidator(&fakeCatalog{err: boom})

	err := v.Validate(context.Background(), validInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	var verr *domain.ValidationError
	assert.False(t, errors.As(err, &verr))
}
