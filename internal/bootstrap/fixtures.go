package bootstrap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/validation"
)

// FixtureImporter is the slice of services the fixture loader writes through
type FixtureImporter interface {
	ImportIngredients(ctx context.Context, ingredients []domain.Ingredient) (int, error)
	ImportTags(ctx context.Context, tags []domain.Tag) (int, error)
}

// UserImporter creates or updates fixture users
type UserImporter interface {
	Import(ctx context.Context, users []domain.User) (int, error)
}

// FixturePaths locates fixture files. An empty path skips that fixture.
type FixturePaths struct {
	Ingredients string
	Tags        string
	Users       string
}

// FixtureResult counts the rows written per fixture
type FixtureResult struct {
	Ingredients int
	Tags        int
	Users       int
}

type ingredientRecord struct {
	Name            string `json:"name" validate:"required,max=200"`
	MeasurementUnit string `json:"measurement_unit" validate:"required,max=200"`
}

type tagRecord struct {
	Name  string `json:"name" validate:"required,max=200"`
	Color string `json:"color" validate:"required,hexcolor"`
	Slug  string `json:"slug" validate:"required,max=200"`
}

type userRecord struct {
	Email     string `json:"email" validate:"required,email"`
	Username  string `json:"username" validate:"required,max=150"`
	FirstName string `json:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" validate:"max=150"`
}

// LoadFixtures reads, validates and imports fixture files. Ingredients are
// inserted as new rows; tags are upserted by slug; users by email.
// Missing files are skipped with a warning.
func LoadFixtures(ctx context.Context, paths FixturePaths, catalog FixtureImporter, users UserImporter) (FixtureResult, error) {
	var result FixtureResult
	schemas := validation.NewSchemaValidator()
	rules := validator.New()

	if paths.Ingredients != "" {
		slog.Info(LogMsgLoadingIngredients, "path", paths.Ingredients)
		records, err := readFixture[ingredientRecord](paths.Ingredients, validation.FixtureIngredients, schemas, rules)
		if err != nil {
			return result, err
		}
		if records != nil {
			ingredients := make([]domain.Ingredient, len(records))
			for i, rec := range records {
				ingredients[i] = domain.Ingredient{Name: rec.Name, MeasurementUnit: rec.MeasurementUnit}
			}
			if result.Ingredients, err = catalog.ImportIngredients(ctx, ingredients); err != nil {
				return result, fmt.Errorf("%s %s: %w", ErrMsgFailedImportFixture, paths.Ingredients, err)
			}
			slog.Info(LogMsgIngredientsLoaded, "count", result.Ingredients)
		}
	}

	if paths.Tags != "" {
		slog.Info(LogMsgLoadingTags, "path", paths.Tags)
		records, err := readFixture[tagRecord](paths.Tags, validation.FixtureTags, schemas, rules)
		if err != nil {
			return result, err
		}
		if records != nil {
			tags := make([]domain.Tag, len(records))
			for i, rec := range records {
				tags[i] = domain.Tag{Name: rec.Name, Color: rec.Color, Slug: rec.Slug}
			}
			if result.Tags, err = catalog.ImportTags(ctx, tags); err != nil {
				return result, fmt.Errorf("%s %s: %w", ErrMsgFailedImportFixture, paths.Tags, err)
			}
			slog.Info(LogMsgTagsLoaded, "count", result.Tags)
		}
	}

	if paths.Users != "" && users != nil {
		slog.Info(LogMsgLoadingUsers, "path", paths.Users)
		records, err := readFixture[userRecord](paths.Users, validation.FixtureUsers, schemas, rules)
		if err != nil {
			return result, err
		}
		if records != nil {
			list := make([]domain.User, len(records))
			for i, rec := range records {
				list[i] = domain.User{
					Email:     rec.Email,
					Username:  rec.Username,
					FirstName: rec.FirstName,
					LastName:  rec.LastName,
				}
			}
			if result.Users, err = users.Import(ctx, list); err != nil {
				return result, fmt.Errorf("%s %s: %w", ErrMsgFailedImportFixture, paths.Users, err)
			}
			slog.Info(LogMsgUsersLoaded, "count", result.Users)
		}
	}

	return result, nil
}

// readFixture returns nil records when the file does not exist
func readFixture[T any](path string, kind validation.Fixture, schemas validation.SchemaValidator, rules *validator.Validate) ([]T, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Warn(LogMsgFixtureMissing, "path", path)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgFailedReadFixture, path, err)
	}

	if err := schemas.Validate(kind, data); err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgInvalidFixture, path, err)
	}

	records := []T{}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgFailedDecodeFixture, path, err)
	}
	for i := range records {
		if err := rules.Struct(records[i]); err != nil {
			return nil, fmt.Errorf("%s %s: record %d: %w", ErrMsgInvalidFixture, path, i, err)
		}
	}
	return records, nil
}
