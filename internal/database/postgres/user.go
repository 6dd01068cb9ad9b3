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

const userColumns = `u.id, u.email, u.username, u.first_name, u.last_name`

var (
	_ repository.User   = (*UserRepository)(nil)
	_ repository.Follow = (*UserRepository)(nil)
)

// UserRepository implements repository.User and repository.Follow
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// GetUserByID returns the user or domain.ErrUserNotFound
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users u WHERE u.id = $1`, id).
		Scan(&u.ID, &u.Email, &u.Username, &u.FirstName, &u.LastName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUser, err)
	}
	return &u, nil
}

// ListUsers returns one page of users ordered by id and the total count
func (r *UserRepository) ListUsers(ctx context.Context, page domain.Page) ([]domain.User, int64, error) {
	total, err := countQuery(ctx, r.db, `SELECT COUNT(*) FROM users`)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountUsers, err)
	}

	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users u ORDER BY u.id LIMIT $1 OFFSET $2`,
		page.Limit, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", ErrMsgFailedToListUsers, err)
	}
	defer rows.Close()

	users, err := scanUsers(rows)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// UpsertUser inserts the user or updates the names of an existing email
func (r *UserRepository) UpsertUser(ctx context.Context, user *domain.User) (int64, error) {
	query := `
		INSERT INTO users (email, username, first_name, last_name)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE
		SET first_name = EXCLUDED.first_name, last_name = EXCLUDED.last_name
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, user.Email, user.Username, user.FirstName, user.LastName).Scan(&user.ID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToUpsertUser, err)
	}
	return user.ID, nil
}

// FollowedAmong returns which of authorIDs the user follows
func (r *UserRepository) FollowedAmong(ctx context.Context, userID int64, authorIDs []int64) (map[int64]bool, error) {
	result := make(map[int64]bool)
	if userID == 0 || len(authorIDs) == 0 {
		return result, nil
	}

	rows, err := r.db.Query(ctx, `SELECT author_id FROM follows WHERE user_id = $1 AND author_id = ANY($2)`, userID, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetFollows, err)
	}
	defer rows.Close()

	for rows.Next() {
		var authorID int64
		if err := rows.Scan(&authorID); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanRow, err)
		}
		result[authorID] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToIterate, err)
	}
	return result, nil
}

// GetFollow returns the subscription or domain.ErrNotSubscribed
func (r *UserRepository) GetFollow(ctx context.Context, userID, authorID int64) (*domain.Follow, error) {
	var f domain.Follow
	err := r.db.QueryRow(ctx, `SELECT user_id, author_id FROM follows WHERE user_id = $1 AND author_id = $2`, userID, authorID).
		Scan(&f.UserID, &f.AuthorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotSubscribed
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetFollows, err)
	}
	return &f, nil
}

// AddFollow stores the subscription
func (r *UserRepository) AddFollow(ctx context.Context, userID, authorID int64) error {
	_, err := r.db.Exec(ctx, `INSERT INTO follows (user_id, author_id) VALUES ($1, $2)`, userID, authorID)
	if err != nil {
		switch {
		case isUniqueViolation(err) && constraintName(err) == ConstraintUniqueFollow:
			return domain.ErrAlreadySubscribed
		case pgErrorCode(err) == PgErrorCodeCheckViolation && constraintName(err) == ConstraintNoSelfFollow:
			return domain.ErrSelfFollow
		case isForeignKeyViolation(err):
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToAddFollow, err)
	}
	return nil
}

// DeleteFollow removes the subscription
func (r *UserRepository) DeleteFollow(ctx context.Context, userID, authorID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM follows WHERE user_id = $1 AND author_id = $2`, userID, authorID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteFollow, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotSubscribed
	}
	return nil
}

// ListFollowedAuthors returns one page of authors the user follows, ordered by follow time
func (r *UserRepository) ListFollowedAuthors(ctx context.Context, userID int64, page domain.Page) ([]domain.User, int64, error) {
	total, err := countQuery(ctx, r.db, `SELECT COUNT(*) FROM follows WHERE user_id = $1`, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountUsers, err)
	}

	query := `
		SELECT ` + userColumns + `
		FROM follows f
		JOIN users u ON u.id = f.author_id
		WHERE f.user_id = $1
		ORDER BY f.id
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, userID, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", ErrMsgFailedToListFollowed, err)
	}
	defer rows.Close()

	users, err := scanUsers(rows)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// GetAuthorRecipes returns the author's newest recipes; limit <= 0 returns all
func (r *UserRepository) GetAuthorRecipes(ctx context.Context, authorID int64, limit int) ([]domain.RecipeShort, error) {
	query := `SELECT id, name, image, cooking_time FROM recipes WHERE author_id = $1 ORDER BY id DESC`
	args := []any{authorID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAuthorRecip, err)
	}
	defer rows.Close()

	recipes := []domain.RecipeShort{}
	for rows.Next() {
		var s domain.RecipeShort
		if err := rows.Scan(&s.ID, &s.Name, &s.Image, &s.CookingTime); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanRow, err)
		}
		recipes = append(recipes, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToIterate, err)
	}
	return recipes, nil
}

// CountAuthorRecipes returns how many recipes the author has
func (r *UserRepository) CountAuthorRecipes(ctx context.Context, authorID int64) (int64, error) {
	n, err := countQuery(ctx, r.db, `SELECT COUNT(*) FROM recipes WHERE author_id = $1`, authorID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountRecipes, err)
	}
	return n, nil
}

func scanUsers(rows pgx.Rows) ([]domain.User, error) {
	users := []domain.User{}
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Username, &u.FirstName, &u.LastName); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanRow, err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToIterate, err)
	}
	return users, nil
}
