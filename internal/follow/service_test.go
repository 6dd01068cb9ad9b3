package follow

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

type followKey struct{ user, author int64 }

type fakeRepository struct {
	mu      sync.RWMutex
	users   map[int64]domain.User
	follows map[followKey]bool
	recipes map[int64][]domain.RecipeShort
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		users: map[int64]domain.User{
			1: {ID: 1, Username: "reader"},
			2: {ID: 2, Username: "chef"},
			3: {ID: 3, Username: "baker"},
		},
		follows: make(map[followKey]bool),
		recipes: map[int64][]domain.RecipeShort{
			2: {{ID: 30, Name: "Soup"}, {ID: 20, Name: "Stew"}, {ID: 10, Name: "Salad"}},
		},
	}
}

func (f *fakeRepository) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (f *fakeRepository) GetFollow(ctx context.Context, userID, authorID int64) (*domain.Follow, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if !f.follows[followKey{userID, authorID}] {
		return nil, domain.ErrNotSubscribed
	}
	return &domain.Follow{UserID: userID, AuthorID: authorID}, nil
}

func (f *fakeRepository) AddFollow(ctx context.Context, userID, authorID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := followKey{userID, authorID}
	if f.follows[k] {
		return domain.ErrAlreadySubscribed
	}
	f.follows[k] = true
	return nil
}

func (f *fakeRepository) DeleteFollow(ctx context.Context, userID, authorID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := followKey{userID, authorID}
	if !f.follows[k] {
		return domain.ErrNotSubscribed
	}
	delete(f.follows, k)
	return nil
}

func (f *fakeRepository) ListFollowedAuthors(ctx context.Context, userID int64, page domain.Page) ([]domain.User, int64, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []domain.User
	for k := range f.follows {
		if k.user == userID {
			out = append(out, f.users[k.author])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	total := int64(len(out))
	start := page.Offset()
	if start > len(out) {
		start = len(out)
	}
	end := start + page.Limit
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], total, nil
}

func (f *fakeRepository) GetAuthorRecipes(ctx context.Context, authorID int64, limit int) ([]domain.RecipeShort, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	recipes := f.recipes[authorID]
	if limit > 0 && limit < len(recipes) {
		recipes = recipes[:limit]
	}
	return append([]domain.RecipeShort(nil), recipes...), nil
}

func (f *fakeRepository) CountAuthorRecipes(ctx context.Context, authorID int64) (int64, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return int64(len(f.recipes[authorID])), nil
}

func TestSubscribe(t *testing.T) {
	svc := NewService(newFakeRepository(), nil, 10)
	ctx := context.Background()

	sub, err := svc.Subscribe(ctx, 1, 2, 2)
	require.NoError(t, err)

	assert.Equal(t, "chef", sub.Username)
	assert.True(t, sub.IsSubscribed)
	assert.Len(t, sub.Recipes, 2)
	assert.Equal(t, int64(30), sub.Recipes[0].ID)
	assert.Equal(t, int64(3), sub.RecipesCount)

	_, err = svc.Subscribe(ctx, 1, 2, 0)
	assert.ErrorIs(t, err, domain.ErrAlreadySubscribed)
}

func TestSubscribe_Errors(t *testing.T) {
	svc := NewService(newFakeRepository(), nil, 10)
	ctx := context.Background()

	_, err := svc.Subscribe(ctx, 1, 1, 0)
	assert.ErrorIs(t, err, domain.ErrSelfFollow)

	_, err = svc.Subscribe(ctx, 1, 99, 0)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = svc.Subscribe(ctx, 0, 2, 0)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSubscribe_AuthorWithoutRecipes(t *testing.T) {
	svc := NewService(newFakeRepository(), nil, 10)

	sub, err := svc.Subscribe(context.Background(), 1, 3, 0)
	require.NoError(t, err)

	assert.NotNil(t, sub.Recipes)
	assert.Empty(t, sub.Recipes)
	assert.Zero(t, sub.RecipesCount)
}

func TestUnsubscribe(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, nil, 10)
	ctx := context.Background()

	err := svc.Unsubscribe(ctx, 1, 2)
	assert.ErrorIs(t, err, domain.ErrNotSubscribed)

	_, err = svc.Subscribe(ctx, 1, 2, 0)
	require.NoError(t, err)

	require.NoError(t, svc.Unsubscribe(ctx, 1, 2))
	assert.Empty(t, repo.follows)

	err = svc.Unsubscribe(ctx, 1, 99)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestListSubscriptions(t *testing.T) {
	svc := NewService(newFakeRepository(), nil, 10)
	ctx := context.Background()

	_, err := svc.Subscribe(ctx, 1, 2, 0)
	require.NoError(t, err)
	_, err = svc.Subscribe(ctx, 1, 3, 0)
	require.NoError(t, err)

	page := domain.Page{Number: 1, Limit: 1}
	result, err := svc.ListSubscriptions(ctx, 1, page, 1)
	require.NoError(t, err)

	assert.Equal(t, int64(2), result.Count)
	require.Len(t, result.Items, 1)
	assert.Equal(t, int64(2), result.Items[0].ID)
	assert.Len(t, result.Items[0].Recipes, 1)
	assert.Equal(t, int64(3), result.Items[0].RecipesCount)
	assert.True(t, result.HasNext(page))

	empty, err := svc.ListSubscriptions(ctx, 2, domain.Page{}, 0)
	require.NoError(t, err)
	assert.Zero(t, empty.Count)
	assert.Empty(t, empty.Items)
}
