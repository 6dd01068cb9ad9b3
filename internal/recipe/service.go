package recipe

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/event"
	"github.com/osse101/Foodgram_Go/internal/logger"
	"github.com/osse101/Foodgram_Go/internal/repository"
)

// Service defines the recipe write pipeline and read views.
// actorID is the authenticated caller; viewerID is 0 for anonymous reads.
type Service interface {
	Create(ctx context.Context, actorID int64, input domain.RecipeWriteInput) (*domain.RecipeReadView, error)
	Update(ctx context.Context, actorID, recipeID int64, input domain.RecipeWriteInput) (*domain.RecipeReadView, error)
	Delete(ctx context.Context, actorID, recipeID int64) error
	Get(ctx context.Context, viewerID, recipeID int64) (*domain.RecipeReadView, error)
	List(ctx context.Context, viewerID int64, filter domain.RecipeFilter, page domain.Page) (*domain.PageResult[domain.RecipeReadView], error)
}

// Authors is the slice of user persistence needed to render recipe authors
type Authors interface {
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
	FollowedAmong(ctx context.Context, userID int64, authorIDs []int64) (map[int64]bool, error)
}

type service struct {
	repo        repository.Recipe
	authors     Authors
	validator   *Validator
	bus         event.Bus
	defaultPage int
}

// NewService creates a recipe service
func NewService(repo repository.Recipe, authors Authors, validator *Validator, bus event.Bus, defaultPageLimit int) Service {
	if defaultPageLimit < 1 {
		defaultPageLimit = domain.DefaultPageLimit
	}
	return &service{
		repo:        repo,
		authors:     authors,
		validator:   validator,
		bus:         bus,
		defaultPage: defaultPageLimit,
	}
}

func (s *service) Create(ctx context.Context, actorID int64, input domain.RecipeWriteInput) (*domain.RecipeReadView, error) {
	log := logger.FromContext(ctx)

	if actorID == 0 {
		return nil, domain.ErrUnauthorized
	}
	if err := s.validator.Validate(ctx, input); err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	recipe := &domain.Recipe{
		AuthorID:    actorID,
		Name:        input.Name,
		Image:       input.Image,
		Text:        input.Text,
		CookingTime: input.CookingTime,
	}
	id, err := tx.InsertRecipe(ctx, recipe)
	if err != nil {
		return nil, fmt.Errorf("failed to insert recipe: %w", err)
	}
	recipe.ID = id

	if err := writeComposition(ctx, tx, id, input); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitFailed, err)
	}

	log.Info(LogMsgRecipeCreated, "recipe_id", id, "tags", len(input.Tags), "ingredients", len(input.Ingredients))
	event.PublishBestEffort(ctx, s.bus, event.NewRecipeEvent(event.RecipeCreated, id, actorID, len(input.Tags), len(input.Ingredients)))
	return s.Get(ctx, actorID, id)
}

func (s *service) Update(ctx context.Context, actorID, recipeID int64, input domain.RecipeWriteInput) (*domain.RecipeReadView, error) {
	log := logger.FromContext(ctx)

	if actorID == 0 {
		return nil, domain.ErrUnauthorized
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	// Existence and ownership are reported before payload errors
	recipe, err := tx.GetRecipeForUpdate(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if recipe.AuthorID != actorID {
		log.Warn(LogMsgNotAuthor, "recipe_id", recipeID, "author_id", recipe.AuthorID)
		return nil, domain.ErrForbidden
	}
	if err := s.validator.Validate(ctx, input); err != nil {
		return nil, err
	}

	if err := tx.ClearTags(ctx, recipeID); err != nil {
		return nil, fmt.Errorf("failed to clear tags: %w", err)
	}
	if err := tx.DeleteIngredientLinks(ctx, recipeID); err != nil {
		return nil, fmt.Errorf("failed to delete ingredient links: %w", err)
	}
	if err := writeComposition(ctx, tx, recipeID, input); err != nil {
		return nil, err
	}

	recipe.Name = input.Name
	recipe.Image = input.Image
	recipe.Text = input.Text
	recipe.CookingTime = input.CookingTime
	if err := tx.UpdateRecipe(ctx, recipe); err != nil {
		return nil, fmt.Errorf("failed to update recipe: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitFailed, err)
	}

	log.Info(LogMsgRecipeUpdated, "recipe_id", recipeID)
	event.PublishBestEffort(ctx, s.bus, event.NewRecipeEvent(event.RecipeUpdated, recipeID, actorID, len(input.Tags), len(input.Ingredients)))
	return s.Get(ctx, actorID, recipeID)
}

func (s *service) Delete(ctx context.Context, actorID, recipeID int64) error {
	log := logger.FromContext(ctx)

	if actorID == 0 {
		return domain.ErrUnauthorized
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	recipe, err := tx.GetRecipeForUpdate(ctx, recipeID)
	if err != nil {
		return err
	}
	if recipe.AuthorID != actorID {
		log.Warn(LogMsgNotAuthor, "recipe_id", recipeID, "author_id", recipe.AuthorID)
		return domain.ErrForbidden
	}

	if err := tx.ClearTags(ctx, recipeID); err != nil {
		return fmt.Errorf("failed to clear tags: %w", err)
	}
	if err := tx.DeleteIngredientLinks(ctx, recipeID); err != nil {
		return fmt.Errorf("failed to delete ingredient links: %w", err)
	}
	if err := tx.DeleteMemberships(ctx, recipeID); err != nil {
		return fmt.Errorf("failed to delete memberships: %w", err)
	}
	if err := tx.DeleteRecipe(ctx, recipeID); err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommitFailed, err)
	}

	log.Info(LogMsgRecipeDeleted, "recipe_id", recipeID)
	event.PublishBestEffort(ctx, s.bus, event.NewRecipeEvent(event.RecipeDeleted, recipeID, actorID, 0, 0))
	return nil
}

func (s *service) Get(ctx context.Context, viewerID, recipeID int64) (*domain.RecipeReadView, error) {
	recipe, err := s.repo.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	views, err := s.buildViews(ctx, viewerID, []domain.Recipe{*recipe})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *service) List(ctx context.Context, viewerID int64, filter domain.RecipeFilter, page domain.Page) (*domain.PageResult[domain.RecipeReadView], error) {
	page = page.Normalize(s.defaultPage)

	// Membership filters only make sense for a known viewer
	if viewerID == 0 && (filter.IsFavorited || filter.IsInShoppingCart) {
		return &domain.PageResult[domain.RecipeReadView]{Items: []domain.RecipeReadView{}}, nil
	}

	recipes, total, err := s.repo.ListRecipes(ctx, filter, viewerID, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	views, err := s.buildViews(ctx, viewerID, recipes)
	if err != nil {
		return nil, err
	}
	return &domain.PageResult[domain.RecipeReadView]{Count: total, Items: views}, nil
}

// writeComposition attaches tags and inserts ingredient links for a recipe
// whose previous composition (if any) has already been cleared
func writeComposition(ctx context.Context, tx repository.RecipeTx, recipeID int64, input domain.RecipeWriteInput) error {
	if err := tx.AttachTags(ctx, recipeID, input.Tags); err != nil {
		return fmt.Errorf("failed to attach tags: %w", err)
	}
	if err := tx.InsertIngredientLinks(ctx, recipeID, input.Ingredients); err != nil {
		return fmt.Errorf("failed to insert ingredient links: %w", err)
	}
	return nil
}

// buildViews joins tags, ingredients, authors and viewer flags onto recipes,
// preserving input order
func (s *service) buildViews(ctx context.Context, viewerID int64, recipes []domain.Recipe) ([]domain.RecipeReadView, error) {
	views := make([]domain.RecipeReadView, 0, len(recipes))
	if len(recipes) == 0 {
		return views, nil
	}

	ids := make([]int64, len(recipes))
	authorIDs := make([]int64, 0, len(recipes))
	seenAuthor := make(map[int64]bool, len(recipes))
	for i, r := range recipes {
		ids[i] = r.ID
		if !seenAuthor[r.AuthorID] {
			seenAuthor[r.AuthorID] = true
			authorIDs = append(authorIDs, r.AuthorID)
		}
	}

	tags, err := s.repo.GetTagsForRecipes(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe tags: %w", err)
	}
	ingredients, err := s.repo.GetIngredientsForRecipes(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe ingredients: %w", err)
	}

	favorited := map[int64]bool{}
	inCart := map[int64]bool{}
	followed := map[int64]bool{}
	if viewerID != 0 {
		favorited, inCart, err = s.repo.GetMembershipFlags(ctx, viewerID, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to load membership flags: %w", err)
		}
		followed, err = s.authors.FollowedAmong(ctx, viewerID, authorIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load subscriptions: %w", err)
		}
	}

	authors := make(map[int64]domain.UserView, len(authorIDs))
	for _, id := range authorIDs {
		u, err := s.authors.GetUserByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return nil, fmt.Errorf("%w: author %d of recipe", err, id)
			}
			return nil, fmt.Errorf("failed to load author: %w", err)
		}
		authors[id] = u.View(followed[id])
	}

	for _, r := range recipes {
		recipeTags := tags[r.ID]
		if recipeTags == nil {
			recipeTags = []domain.Tag{}
		}
		recipeIngredients := ingredients[r.ID]
		if recipeIngredients == nil {
			recipeIngredients = []domain.RecipeIngredientView{}
		}
		views = append(views, domain.RecipeReadView{
			ID:               r.ID,
			Tags:             recipeTags,
			Author:           authors[r.AuthorID],
			Ingredients:      recipeIngredients,
			IsFavorited:      favorited[r.ID],
			IsInShoppingCart: inCart[r.ID],
			Name:             r.Name,
			Image:            r.Image,
			Text:             r.Text,
			CookingTime:      r.CookingTime,
		})
	}
	return views, nil
}
