package recipe

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

// Payload field names used as keys of validation errors
const (
	FieldTags        = "tags"
	FieldIngredients = "ingredients"
	FieldName        = "name"
	FieldImage       = "image"
	FieldText        = "text"
	FieldCookingTime = "cooking_time"
)

const dataURIPrefix = "data:"

// CatalogLookup resolves catalog ids. Lookups are read-only.
type CatalogLookup interface {
	ResolveTags(ctx context.Context, ids []int64) (map[int64]domain.Tag, error)
	ResolveIngredients(ctx context.Context, ids []int64) (map[int64]domain.Ingredient, error)
}

// Validator checks recipe write payloads before any write happens.
// Every field is checked; within a field only the first failure is kept.
type Validator struct {
	catalog CatalogLookup
}

// NewValidator creates a validator resolving references through catalog
func NewValidator(catalog CatalogLookup) *Validator {
	return &Validator{catalog: catalog}
}

// Validate returns a *domain.ValidationError describing the failing fields,
// a wrapped infrastructure error if the catalog could not be read, or nil.
func (v *Validator) Validate(ctx context.Context, in domain.RecipeWriteInput) error {
	verr := domain.NewValidationError()

	if err := v.validateTags(ctx, in.Tags); err != nil {
		if !isFieldError(err) {
			return err
		}
		verr.Add(FieldTags, err)
	}

	if err := v.validateIngredients(ctx, in.Ingredients); err != nil {
		if !isFieldError(err) {
			return err
		}
		verr.Add(FieldIngredients, err)
	}

	if err := validateCookingTime(in.CookingTime); err != nil {
		verr.Add(FieldCookingTime, err)
	}

	if err := validateName(in.Name); err != nil {
		verr.Add(FieldName, err)
	}

	if strings.TrimSpace(in.Text) == "" {
		verr.Add(FieldText, domain.ErrFieldRequired)
	}

	if err := validateImage(in.Image); err != nil {
		verr.Add(FieldImage, err)
	}

	if verr.Empty() {
		return nil
	}
	return verr
}

func (v *Validator) validateTags(ctx context.Context, tags []int64) error {
	if len(tags) == 0 {
		return domain.ErrEmptyTags
	}

	seen := make(map[int64]struct{}, len(tags))
	for _, id := range tags {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %d", domain.ErrDuplicateTag, id)
		}
		seen[id] = struct{}{}
	}

	found, err := v.catalog.ResolveTags(ctx, tags)
	if err != nil {
		return fmt.Errorf("failed to resolve tags: %w", err)
	}
	for _, id := range tags {
		if _, ok := found[id]; !ok {
			return fmt.Errorf("%w: %d", domain.ErrTagNotFound, id)
		}
	}
	return nil
}

func (v *Validator) validateIngredients(ctx context.Context, ingredients []domain.IngredientAmount) error {
	if len(ingredients) == 0 {
		return domain.ErrEmptyIngredients
	}

	ids := make([]int64, 0, len(ingredients))
	seen := make(map[int64]struct{}, len(ingredients))
	for _, ing := range ingredients {
		if _, dup := seen[ing.ID]; dup {
			return fmt.Errorf("%w: %d", domain.ErrDuplicateIngredient, ing.ID)
		}
		seen[ing.ID] = struct{}{}
		ids = append(ids, ing.ID)
	}

	found, err := v.catalog.ResolveIngredients(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to resolve ingredients: %w", err)
	}
	for _, ing := range ingredients {
		if _, ok := found[ing.ID]; !ok {
			return fmt.Errorf("%w: %d", domain.ErrIngredientNotFound, ing.ID)
		}
	}

	for _, ing := range ingredients {
		if ing.Amount < domain.MinIngredientAmount || ing.Amount > domain.MaxIngredientAmount {
			return fmt.Errorf("%w: ingredient %d has %d", domain.ErrInvalidAmount, ing.ID, ing.Amount)
		}
	}
	return nil
}

func validateCookingTime(minutes int) error {
	if minutes < domain.MinCookingTime || minutes > domain.MaxCookingTime {
		return domain.ErrCookingTimeRange
	}
	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return domain.ErrFieldRequired
	}
	if utf8.RuneCountInString(name) > domain.MaxRecipeNameLength {
		return domain.ErrNameTooLong
	}
	return nil
}

// validateImage accepts a stored reference or a base64 data URI
// ("data:image/png;base64,....") whose payload decodes.
func validateImage(image string) error {
	if strings.TrimSpace(image) == "" {
		return domain.ErrFieldRequired
	}
	if !strings.HasPrefix(image, dataURIPrefix) {
		return nil
	}

	header, payload, ok := strings.Cut(image, ",")
	if !ok || !strings.HasSuffix(header, ";base64") || payload == "" {
		return domain.ErrInvalidImage
	}
	if _, err := base64.StdEncoding.DecodeString(payload); err != nil {
		return domain.ErrInvalidImage
	}
	return nil
}

// isFieldError reports whether err is a per-field validation failure rather
// than an infrastructure error
func isFieldError(err error) bool {
	for _, target := range fieldErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

var fieldErrors = []error{
	domain.ErrEmptyTags,
	domain.ErrDuplicateTag,
	domain.ErrTagNotFound,
	domain.ErrEmptyIngredients,
	domain.ErrDuplicateIngredient,
	domain.ErrIngredientNotFound,
	domain.ErrInvalidAmount,
}
