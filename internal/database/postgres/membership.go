package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/repository"
)

var (
	_ repository.Membership = (*MembershipRepository)(nil)
	_ repository.Shopping   = (*MembershipRepository)(nil)
)

// MembershipRepository implements repository.Membership and repository.Shopping
type MembershipRepository struct {
	db *pgxpool.Pool
}

// NewMembershipRepository creates a new favorite/cart repository
func NewMembershipRepository(db *pgxpool.Pool) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// GetRecipeShort returns the compact recipe projection or domain.ErrRecipeNotFound
func (r *MembershipRepository) GetRecipeShort(ctx context.Context, recipeID int64) (*domain.RecipeShort, error) {
	var short domain.RecipeShort
	err := r.db.QueryRow(ctx, `SELECT id, name, image, cooking_time FROM recipes WHERE id = $1`, recipeID).
		Scan(&short.ID, &short.Name, &short.Image, &short.CookingTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRecipe, err)
	}
	return &short, nil
}

// MembershipExists reports whether the (user, recipe) pair is in the set
func (r *MembershipRepository) MembershipExists(ctx context.Context, kind domain.MembershipKind, userID, recipeID int64) (bool, error) {
	table, err := membershipTable(kind)
	if err != nil {
		return false, err
	}

	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM ` + table + ` WHERE user_id = $1 AND recipe_id = $2)`
	if err := r.db.QueryRow(ctx, query, userID, recipeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToCheckMembership, err)
	}
	return exists, nil
}

// AddMembership stores the pair; a concurrent duplicate maps to domain.ErrAlreadyExists
func (r *MembershipRepository) AddMembership(ctx context.Context, kind domain.MembershipKind, userID, recipeID int64) error {
	table, err := membershipTable(kind)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `INSERT INTO `+table+` (user_id, recipe_id) VALUES ($1, $2)`, userID, recipeID)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrAlreadyExists
		case isForeignKeyViolation(err):
			return domain.ErrRecipeNotFound
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToAddMembership, err)
	}
	return nil
}

// RemoveMembership deletes the pair and reports whether it existed
func (r *MembershipRepository) RemoveMembership(ctx context.Context, kind domain.MembershipKind, userID, recipeID int64) (bool, error) {
	table, err := membershipTable(kind)
	if err != nil {
		return false, err
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM `+table+` WHERE user_id = $1 AND recipe_id = $2`, userID, recipeID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToRemoveMembership, err)
	}
	return tag.RowsAffected() > 0, nil
}

// GetCartRows returns (name, unit, amount) for every ingredient link of the cart's recipes
func (r *MembershipRepository) GetCartRows(ctx context.Context, userID int64) ([]domain.ShoppingRow, error) {
	query := `
		SELECT i.name, i.measurement_unit, ri.amount
		FROM shopping_cart sc
		JOIN recipe_ingredients ri ON ri.recipe_id = sc.recipe_id
		JOIN ingredients i ON i.id = ri.ingredient_id
		WHERE sc.user_id = $1
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCartRows, err)
	}
	defer rows.Close()

	result := []domain.ShoppingRow{}
	for rows.Next() {
		var row domain.ShoppingRow
		if err := rows.Scan(&row.Name, &row.Unit, &row.Amount); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanRow, err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToIterate, err)
	}
	return result, nil
}

// membershipTable resolves the table of kind; the name never comes from user input
func membershipTable(kind domain.MembershipKind) (string, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidMembershipKind, kind)
	}
	return kind.Table(), nil
}
