package catalog

import (
	"context"
	"fmt"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/logger"
	"github.com/osse101/Foodgram_Go/internal/repository"
)

// Service defines read access to tags and ingredients
type Service interface {
	ListTags(ctx context.Context) ([]domain.Tag, error)
	GetTag(ctx context.Context, id int64) (*domain.Tag, error)
	ListIngredients(ctx context.Context, namePrefix string) ([]domain.Ingredient, error)
	GetIngredient(ctx context.Context, id int64) (*domain.Ingredient, error)

	// ResolveTags returns the existing tags among ids keyed by id
	ResolveTags(ctx context.Context, ids []int64) (map[int64]domain.Tag, error)
	// ResolveIngredients returns the existing ingredients among ids keyed by id
	ResolveIngredients(ctx context.Context, ids []int64) (map[int64]domain.Ingredient, error)

	ImportIngredients(ctx context.Context, ingredients []domain.Ingredient) (int, error)
	ImportTags(ctx context.Context, tags []domain.Tag) (int, error)
}

type service struct {
	repo        repository.Catalog
	tags        *idCache[domain.Tag]
	ingredients *idCache[domain.Ingredient]
}

// NewService creates a catalog service with id caches in front of the repository
func NewService(repo repository.Catalog, cacheCfg CacheConfig) Service {
	return &service{
		repo:        repo,
		tags:        newIDCache[domain.Tag](cacheCfg),
		ingredients: newIDCache[domain.Ingredient](cacheCfg),
	}
}

func (s *service) ListTags(ctx context.Context) ([]domain.Tag, error) {
	tags, err := s.repo.ListTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	for _, tag := range tags {
		s.tags.Set(tag.ID, tag)
	}
	return tags, nil
}

func (s *service) GetTag(ctx context.Context, id int64) (*domain.Tag, error) {
	if tag, ok := s.tags.Get(id); ok {
		return &tag, nil
	}

	tag, err := s.repo.GetTagByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.tags.Set(tag.ID, *tag)
	return tag, nil
}

func (s *service) ListIngredients(ctx context.Context, namePrefix string) ([]domain.Ingredient, error) {
	ingredients, err := s.repo.ListIngredients(ctx, namePrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}
	return ingredients, nil
}

func (s *service) GetIngredient(ctx context.Context, id int64) (*domain.Ingredient, error) {
	if ing, ok := s.ingredients.Get(id); ok {
		return &ing, nil
	}

	ing, err := s.repo.GetIngredientByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.ingredients.Set(ing.ID, *ing)
	return ing, nil
}

func (s *service) ResolveTags(ctx context.Context, ids []int64) (map[int64]domain.Tag, error) {
	return resolve(ctx, ids, s.tags, s.repo.GetTagsByIDs, func(t domain.Tag) int64 { return t.ID })
}

func (s *service) ResolveIngredients(ctx context.Context, ids []int64) (map[int64]domain.Ingredient, error) {
	return resolve(ctx, ids, s.ingredients, s.repo.GetIngredientsByIDs, func(i domain.Ingredient) int64 { return i.ID })
}

func (s *service) ImportIngredients(ctx context.Context, ingredients []domain.Ingredient) (int, error) {
	n, err := s.repo.InsertIngredients(ctx, ingredients)
	if err != nil {
		return 0, fmt.Errorf("failed to import ingredients: %w", err)
	}
	logger.FromContext(ctx).Info("Ingredients imported", "received", len(ingredients), "inserted", n)
	return n, nil
}

func (s *service) ImportTags(ctx context.Context, tags []domain.Tag) (int, error) {
	n, err := s.repo.UpsertTags(ctx, tags)
	if err != nil {
		return 0, fmt.Errorf("failed to import tags: %w", err)
	}
	// Upserts may rename cached tags
	s.tags.Clear()
	logger.FromContext(ctx).Info("Tags imported", "received", len(tags), "upserted", n)
	return n, nil
}

// resolve serves cached ids and fetches the misses in one query
func resolve[T any](
	ctx context.Context,
	ids []int64,
	cache *idCache[T],
	fetch func(context.Context, []int64) ([]T, error),
	idOf func(T) int64,
) (map[int64]T, error) {
	found := make(map[int64]T, len(ids))
	var missing []int64
	for _, id := range ids {
		if _, seen := found[id]; seen {
			continue
		}
		if v, ok := cache.Get(id); ok {
			found[id] = v
			continue
		}
		missing = append(missing, id)
	}

	if len(missing) == 0 {
		return found, nil
	}

	rows, err := fetch(ctx, missing)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve catalog ids: %w", err)
	}
	for _, row := range rows {
		id := idOf(row)
		cache.Set(id, row)
		found[id] = row
	}
	return found, nil
}
