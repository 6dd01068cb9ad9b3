package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/repository"
)

var _ repository.Catalog = (*CatalogRepository)(nil)

// CatalogRepository implements repository.Catalog
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// ListTags returns every tag ordered by id
func (r *CatalogRepository) ListTags(ctx context.Context) ([]domain.Tag, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, color, slug FROM tags ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListTags, err)
	}
	defer rows.Close()

	return scanTags(rows)
}

// GetTagByID returns the tag or domain.ErrTagNotFound
func (r *CatalogRepository) GetTagByID(ctx context.Context, id int64) (*domain.Tag, error) {
	var tag domain.Tag
	err := r.db.QueryRow(ctx, `SELECT id, name, color, slug FROM tags WHERE id = $1`, id).
		Scan(&tag.ID, &tag.Name, &tag.Color, &tag.Slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTagNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetTag, err)
	}
	return &tag, nil
}

// GetTagsByIDs returns the tags that exist among ids; missing ids are skipped
func (r *CatalogRepository) GetTagsByIDs(ctx context.Context, ids []int64) ([]domain.Tag, error) {
	if len(ids) == 0 {
		return []domain.Tag{}, nil
	}

	rows, err := r.db.Query(ctx, `SELECT id, name, color, slug FROM tags WHERE id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetTagsByIDs, err)
	}
	defer rows.Close()

	return scanTags(rows)
}

// ListIngredients returns ingredients whose name starts with namePrefix
func (r *CatalogRepository) ListIngredients(ctx context.Context, namePrefix string) ([]domain.Ingredient, error) {
	query := `SELECT id, name, measurement_unit FROM ingredients`
	var args []any
	if namePrefix != "" {
		query += ` WHERE lower(name) LIKE $1`
		args = append(args, escapeLike(strings.ToLower(namePrefix))+"%")
	}
	query += ` ORDER BY name, id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListIngredients, err)
	}
	defer rows.Close()

	return scanIngredients(rows)
}

// GetIngredientByID returns the ingredient or domain.ErrIngredientNotFound
func (r *CatalogRepository) GetIngredientByID(ctx context.Context, id int64) (*domain.Ingredient, error) {
	var ing domain.Ingredient
	err := r.db.QueryRow(ctx, `SELECT id, name, measurement_unit FROM ingredients WHERE id = $1`, id).
		Scan(&ing.ID, &ing.Name, &ing.MeasurementUnit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrIngredientNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetIngredient, err)
	}
	return &ing, nil
}

// GetIngredientsByIDs returns the ingredients that exist among ids
func (r *CatalogRepository) GetIngredientsByIDs(ctx context.Context, ids []int64) ([]domain.Ingredient, error) {
	if len(ids) == 0 {
		return []domain.Ingredient{}, nil
	}

	rows, err := r.db.Query(ctx, `SELECT id, name, measurement_unit FROM ingredients WHERE id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetIngredientsByID, err)
	}
	defer rows.Close()

	return scanIngredients(rows)
}

// InsertIngredients adds ingredients that are not already present with the same
// name and unit. Returns the number of inserted rows.
func (r *CatalogRepository) InsertIngredients(ctx context.Context, ingredients []domain.Ingredient) (int, error) {
	if len(ingredients) == 0 {
		return 0, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	query := `
		INSERT INTO ingredients (name, measurement_unit)
		SELECT $1, $2
		WHERE NOT EXISTS (
			SELECT 1 FROM ingredients WHERE name = $1 AND measurement_unit = $2
		)
	`
	inserted := 0
	for _, ing := range ingredients {
		tag, err := tx.Exec(ctx, query, ing.Name, ing.MeasurementUnit)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", ErrMsgFailedToInsertIngredients, err)
		}
		inserted += int(tag.RowsAffected())
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return inserted, nil
}

// UpsertTags inserts tags or updates name and color of existing slugs.
// Returns the number of affected rows.
func (r *CatalogRepository) UpsertTags(ctx context.Context, tags []domain.Tag) (int, error) {
	if len(tags) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, tag := range tags {
		batch.Queue(`
			INSERT INTO tags (name, color, slug)
			VALUES ($1, $2, $3)
			ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name, color = EXCLUDED.color
		`, tag.Name, tag.Color, tag.Slug)
	}

	if err := execBatch(ctx, r.db, batch); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToUpsertTags, err)
	}
	return len(tags), nil
}

func scanTags(rows pgx.Rows) ([]domain.Tag, error) {
	tags := []domain.Tag{}
	for rows.Next() {
		var tag domain.Tag
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.Color, &tag.Slug); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanRow, err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToIterate, err)
	}
	return tags, nil
}

func scanIngredients(rows pgx.Rows) ([]domain.Ingredient, error) {
	ingredients := []domain.Ingredient{}
	for rows.Next() {
		var ing domain.Ingredient
		if err := rows.Scan(&ing.ID, &ing.Name, &ing.MeasurementUnit); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanRow, err)
		}
		ingredients = append(ingredients, ing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToIterate, err)
	}
	return ingredients, nil
}

// escapeLike escapes LIKE wildcards so user input matches literally
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
