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

const recipeColumns = `r.id, r.author_id, r.name, r.image, r.text, r.cooking_time, r.created_at`

var _ repository.Recipe = (*RecipeRepository)(nil)

// RecipeRepository implements repository.Recipe
type RecipeRepository struct {
	db *pgxpool.Pool
}

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *pgxpool.Pool) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// GetRecipeByID returns the recipe or domain.ErrRecipeNotFound
func (r *RecipeRepository) GetRecipeByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	return getRecipe(ctx, r.db, id, false)
}

// ListRecipes returns one page of recipes matching filter, newest first, and the total count
func (r *RecipeRepository) ListRecipes(ctx context.Context, filter domain.RecipeFilter, viewerID int64, page domain.Page) ([]domain.Recipe, int64, error) {
	var where strings.Builder
	where.WriteString(" WHERE 1=1")

	args := []any{}
	argNum := 1

	if filter.AuthorID != nil {
		fmt.Fprintf(&where, " AND r.author_id = $%d", argNum)
		args = append(args, *filter.AuthorID)
		argNum++
	}

	if len(filter.TagSlugs) > 0 {
		fmt.Fprintf(&where, ` AND EXISTS (
			SELECT 1 FROM recipe_tags rt JOIN tags t ON t.id = rt.tag_id
			WHERE rt.recipe_id = r.id AND t.slug = ANY($%d))`, argNum)
		args = append(args, filter.TagSlugs)
		argNum++
	}

	if filter.IsFavorited {
		fmt.Fprintf(&where, " AND EXISTS (SELECT 1 FROM favorites f WHERE f.recipe_id = r.id AND f.user_id = $%d)", argNum)
		args = append(args, viewerID)
		argNum++
	}

	if filter.IsInShoppingCart {
		fmt.Fprintf(&where, " AND EXISTS (SELECT 1 FROM shopping_cart sc WHERE sc.recipe_id = r.id AND sc.user_id = $%d)", argNum)
		args = append(args, viewerID)
		argNum++
	}

	total, err := countQuery(ctx, r.db, "SELECT COUNT(*) FROM recipes r"+where.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountRecipes, err)
	}

	query := "SELECT " + recipeColumns + " FROM recipes r" + where.String() +
		fmt.Sprintf(" ORDER BY r.id DESC LIMIT $%d OFFSET $%d", argNum, argNum+1)
	args = append(args, page.Limit, page.Offset())

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", ErrMsgFailedToListRecipes, err)
	}
	defer rows.Close()

	recipes := []domain.Recipe{}
	for rows.Next() {
		var rec domain.Recipe
		if err := rows.Scan(&rec.ID, &rec.AuthorID, &rec.Name, &rec.Image, &rec.Text, &rec.CookingTime, &rec.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("%s: %w", ErrMsgFailedToScanRow, err)
		}
		recipes = append(recipes, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", ErrMsgFailedToIterate, err)
	}

	return recipes, total, nil
}

// GetTagsForRecipes returns the attached tags of each recipe, ordered by tag id
func (r *RecipeRepository) GetTagsForRecipes(ctx context.Context, recipeIDs []int64) (map[int64][]domain.Tag, error) {
	result := make(map[int64][]domain.Tag, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT rt.recipe_id, t.id, t.name, t.color, t.slug
		FROM recipe_tags rt
		JOIN tags t ON t.id = rt.tag_id
		WHERE rt.recipe_id = ANY($1)
		ORDER BY rt.recipe_id, t.id
	`
	rows, err := r.db.Query(ctx, query, recipeIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRecipeTags, err)
	}
	defer rows.Close()

	for rows.Next() {
		var recipeID int64
		var tag domain.Tag
		if err := rows.Scan(&recipeID, &tag.ID, &tag.Name, &tag.Color, &tag.Slug); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanRow, err)
		}
		result[recipeID] = append(result[recipeID], tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToIterate, err)
	}
	return result, nil
}

// GetIngredientsForRecipes returns the ingredient links of each recipe in insertion order
func (r *RecipeRepository) GetIngredientsForRecipes(ctx context.Context, recipeIDs []int64) (map[int64][]domain.RecipeIngredientView, error) {
	result := make(map[int64][]domain.RecipeIngredientView, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT ri.recipe_id, i.id, i.name, i.measurement_unit, ri.amount
		FROM recipe_ingredients ri
		JOIN ingredients i ON i.id = ri.ingredient_id
		WHERE ri.recipe_id = ANY($1)
		ORDER BY ri.recipe_id, ri.id
	`
	rows, err := r.db.Query(ctx, query, recipeIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRecipeIngredient, err)
	}
	defer rows.Close()

	for rows.Next() {
		var recipeID int64
		var view domain.RecipeIngredientView
		if err := rows.Scan(&recipeID, &view.ID, &view.Name, &view.MeasurementUnit, &view.Amount); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanRow, err)
		}
		result[recipeID] = append(result[recipeID], view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToIterate, err)
	}
	return result, nil
}

// GetMembershipFlags returns which recipes the viewer has favorited or put in the cart
func (r *RecipeRepository) GetMembershipFlags(ctx context.Context, viewerID int64, recipeIDs []int64) (map[int64]bool, map[int64]bool, error) {
	favorited := make(map[int64]bool)
	inCart := make(map[int64]bool)
	if viewerID == 0 || len(recipeIDs) == 0 {
		return favorited, inCart, nil
	}

	query := `
		SELECT 'favorite', recipe_id FROM favorites WHERE user_id = $1 AND recipe_id = ANY($2)
		UNION ALL
		SELECT 'shopping_cart', recipe_id FROM shopping_cart WHERE user_id = $1 AND recipe_id = ANY($2)
	`
	rows, err := r.db.Query(ctx, query, viewerID, recipeIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetMembershipFlags, err)
	}
	defer rows.Close()

	for rows.Next() {
		var kind string
		var recipeID int64
		if err := rows.Scan(&kind, &recipeID); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanRow, err)
		}
		if domain.MembershipKind(kind) == domain.MembershipFavorite {
			favorited[recipeID] = true
		} else {
			inCart[recipeID] = true
		}
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedToIterate, err)
	}
	return favorited, inCart, nil
}

// BeginTx starts a transaction for recipe writes
func (r *RecipeRepository) BeginTx(ctx context.Context) (repository.RecipeTx, error) {
	h, err := beginTx(ctx, r.db)
	if err != nil {
		return nil, err
	}
	return &recipeTx{txHelper: h}, nil
}

// recipeTx implements repository.RecipeTx
type recipeTx struct {
	*txHelper
}

// InsertRecipe inserts the recipe row and returns its id
func (t *recipeTx) InsertRecipe(ctx context.Context, recipe *domain.Recipe) (int64, error) {
	query := `
		INSERT INTO recipes (author_id, name, image, text, cooking_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := t.tx.QueryRow(ctx, query, recipe.AuthorID, recipe.Name, recipe.Image, recipe.Text, recipe.CookingTime).
		Scan(&recipe.ID, &recipe.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, fmt.Errorf("%w: author %d", domain.ErrUserNotFound, recipe.AuthorID)
		}
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToInsertRecipe, err)
	}
	return recipe.ID, nil
}

// GetRecipeForUpdate reads the recipe and locks its row until the transaction ends
func (t *recipeTx) GetRecipeForUpdate(ctx context.Context, id int64) (*domain.Recipe, error) {
	return getRecipe(ctx, t.tx, id, true)
}

// UpdateRecipe overwrites the scalar fields of the recipe. The author never changes.
func (t *recipeTx) UpdateRecipe(ctx context.Context, recipe *domain.Recipe) error {
	query := `
		UPDATE recipes
		SET name = $2, image = $3, text = $4, cooking_time = $5
		WHERE id = $1
	`
	tag, err := t.tx.Exec(ctx, query, recipe.ID, recipe.Name, recipe.Image, recipe.Text, recipe.CookingTime)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateRecipe, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}

// DeleteRecipe removes the recipe row
func (t *recipeTx) DeleteRecipe(ctx context.Context, id int64) error {
	tag, err := t.tx.Exec(ctx, `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteRecipe, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}

// ClearTags detaches every tag from the recipe
func (t *recipeTx) ClearTags(ctx context.Context, recipeID int64) error {
	if _, err := t.tx.Exec(ctx, `DELETE FROM recipe_tags WHERE recipe_id = $1`, recipeID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToClearTags, err)
	}
	return nil
}

// AttachTags attaches tagIDs to the recipe
func (t *recipeTx) AttachTags(ctx context.Context, recipeID int64, tagIDs []int64) error {
	if len(tagIDs) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, tagID := range tagIDs {
		batch.Queue(`INSERT INTO recipe_tags (recipe_id, tag_id) VALUES ($1, $2)`, recipeID, tagID)
	}

	if err := execBatch(ctx, t.tx, batch); err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: %v", domain.ErrTagNotFound, err)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToAttachTags, err)
	}
	return nil
}

// DeleteIngredientLinks removes every ingredient link of the recipe
func (t *recipeTx) DeleteIngredientLinks(ctx context.Context, recipeID int64) error {
	if _, err := t.tx.Exec(ctx, `DELETE FROM recipe_ingredients WHERE recipe_id = $1`, recipeID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteLinks, err)
	}
	return nil
}

// InsertIngredientLinks bulk-inserts the recipe's ingredient links in payload order
func (t *recipeTx) InsertIngredientLinks(ctx context.Context, recipeID int64, ingredients []domain.IngredientAmount) error {
	if len(ingredients) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, ing := range ingredients {
		batch.Queue(`INSERT INTO recipe_ingredients (recipe_id, ingredient_id, amount) VALUES ($1, $2, $3)`,
			recipeID, ing.ID, ing.Amount)
	}

	if err := execBatch(ctx, t.tx, batch); err != nil {
		switch {
		case isUniqueViolation(err) && constraintName(err) == ConstraintUniqueIngredientRecipe:
			return fmt.Errorf("%w: %v", domain.ErrDuplicateLink, err)
		case isForeignKeyViolation(err):
			return fmt.Errorf("%w: %v", domain.ErrIngredientNotFound, err)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertLinks, err)
	}
	return nil
}

// DeleteMemberships removes the recipe from every favorite set and cart
func (t *recipeTx) DeleteMemberships(ctx context.Context, recipeID int64) error {
	batch := &pgx.Batch{}
	batch.Queue(`DELETE FROM favorites WHERE recipe_id = $1`, recipeID)
	batch.Queue(`DELETE FROM shopping_cart WHERE recipe_id = $1`, recipeID)

	if err := execBatch(ctx, t.tx, batch); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteMemberships, err)
	}
	return nil
}

func getRecipe(ctx context.Context, q querier, id int64, forUpdate bool) (*domain.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes r WHERE r.id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var rec domain.Recipe
	err := q.QueryRow(ctx, query, id).
		Scan(&rec.ID, &rec.AuthorID, &rec.Name, &rec.Image, &rec.Text, &rec.CookingTime, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecipeNotFound
		}
		if forUpdate {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLockRecipe, err)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRecipe, err)
	}
	return &rec, nil
}
