package recipe

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/repository"
)

var (
	testTags = map[int64]domain.Tag{
		1: {ID: 1, Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"},
		2: {ID: 2, Name: "Dinner", Color: "#49B64E", Slug: "dinner"},
		3: {ID: 3, Name: "Dessert", Color: "#8775D2", Slug: "dessert"},
	}
	testIngredients = map[int64]domain.Ingredient{
		10: {ID: 10, Name: "flour", MeasurementUnit: "g"},
		11: {ID: 11, Name: "milk", MeasurementUnit: "ml"},
		12: {ID: 12, Name: "egg", MeasurementUnit: "pcs"},
		13: {ID: 13, Name: "salt", MeasurementUnit: "g"},
	}
)

// fakeCatalog resolves against the fixed test catalog
type fakeCatalog struct {
	err error
}

func (c *fakeCatalog) ResolveTags(ctx context.Context, ids []int64) (map[int64]domain.Tag, error) {
	if c.err != nil {
		return nil, c.err
	}
	out := make(map[int64]domain.Tag)
	for _, id := range ids {
		if t, ok := testTags[id]; ok {
			out[id] = t
		}
	}
	return out, nil
}

func (c *fakeCatalog) ResolveIngredients(ctx context.Context, ids []int64) (map[int64]domain.Ingredient, error) {
	if c.err != nil {
		return nil, c.err
	}
	out := make(map[int64]domain.Ingredient)
	for _, id := range ids {
		if ing, ok := testIngredients[id]; ok {
			out[id] = ing
		}
	}
	return out, nil
}

type pair struct{ user, recipe int64 }

type recipeState struct {
	nextID    int64
	recipes   map[int64]domain.Recipe
	tags      map[int64][]int64
	links     map[int64][]domain.IngredientAmount
	favorites map[pair]bool
	cart      map[pair]bool
}

func (s *recipeState) clone() *recipeState {
	c := &recipeState{
		nextID:    s.nextID,
		recipes:   make(map[int64]domain.Recipe, len(s.recipes)),
		tags:      make(map[int64][]int64, len(s.tags)),
		links:     make(map[int64][]domain.IngredientAmount, len(s.links)),
		favorites: make(map[pair]bool, len(s.favorites)),
		cart:      make(map[pair]bool, len(s.cart)),
	}
	for k, v := range s.recipes {
		c.recipes[k] = v
	}
	for k, v := range s.tags {
		c.tags[k] = append([]int64(nil), v...)
	}
	for k, v := range s.links {
		c.links[k] = append([]domain.IngredientAmount(nil), v...)
	}
	for k, v := range s.favorites {
		c.favorites[k] = v
	}
	for k, v := range s.cart {
		c.cart[k] = v
	}
	return c
}

// fakeRecipeRepository is a thread-safe in-memory recipe store. Transactions
// work on a copy of the state that replaces it on commit.
type fakeRecipeRepository struct {
	mu    sync.Mutex
	state *recipeState

	// failLinks makes InsertIngredientLinks fail inside transactions
	failLinks error
	commits   int
}

func newFakeRecipeRepository() *fakeRecipeRepository {
	return &fakeRecipeRepository{state: (&recipeState{}).clone()}
}

func (f *fakeRecipeRepository) snapshot() *recipeState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.clone()
}

func (f *fakeRecipeRepository) GetRecipeByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.state.recipes[id]
	if !ok {
		return nil, domain.ErrRecipeNotFound
	}
	return &r, nil
}

func (f *fakeRecipeRepository) ListRecipes(ctx context.Context, filter domain.RecipeFilter, viewerID int64, page domain.Page) ([]domain.Recipe, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []domain.Recipe
	for _, r := range f.state.recipes {
		if filter.AuthorID != nil && r.AuthorID != *filter.AuthorID {
			continue
		}
		if filter.IsFavorited && !f.state.favorites[pair{viewerID, r.ID}] {
			continue
		}
		if filter.IsInShoppingCart && !f.state.cart[pair{viewerID, r.ID}] {
			continue
		}
		if len(filter.TagSlugs) > 0 && !hasAnySlug(f.state.tags[r.ID], filter.TagSlugs) {
			continue
		}
		matched = append(matched, r)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })

	total := int64(len(matched))
	start := page.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + page.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func hasAnySlug(tagIDs []int64, slugs []string) bool {
	for _, id := range tagIDs {
		for _, slug := range slugs {
			if testTags[id].Slug == slug {
				return true
			}
		}
	}
	return false
}

func (f *fakeRecipeRepository) GetTagsForRecipes(ctx context.Context, recipeIDs []int64) (map[int64][]domain.Tag, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[int64][]domain.Tag)
	for _, id := range recipeIDs {
		for _, tagID := range f.state.tags[id] {
			out[id] = append(out[id], testTags[tagID])
		}
	}
	return out, nil
}

func (f *fakeRecipeRepository) GetIngredientsForRecipes(ctx context.Context, recipeIDs []int64) (map[int64][]domain.RecipeIngredientView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[int64][]domain.RecipeIngredientView)
	for _, id := range recipeIDs {
		for _, link := range f.state.links[id] {
			ing := testIngredients[link.ID]
			out[id] = append(out[id], domain.RecipeIngredientView{
				ID:              ing.ID,
				Name:            ing.Name,
				MeasurementUnit: ing.MeasurementUnit,
				Amount:          link.Amount,
			})
		}
	}
	return out, nil
}

func (f *fakeRecipeRepository) GetMembershipFlags(ctx context.Context, viewerID int64, recipeIDs []int64) (map[int64]bool, map[int64]bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	favorited := make(map[int64]bool)
	inCart := make(map[int64]bool)
	for _, id := range recipeIDs {
		if f.state.favorites[pair{viewerID, id}] {
			favorited[id] = true
		}
		if f.state.cart[pair{viewerID, id}] {
			inCart[id] = true
		}
	}
	return favorited, inCart, nil
}

func (f *fakeRecipeRepository) BeginTx(ctx context.Context) (repository.RecipeTx, error) {
	return &fakeRecipeTx{repo: f, state: f.snapshot()}, nil
}

type fakeRecipeTx struct {
	repo   *fakeRecipeRepository
	state  *recipeState
	closed bool
}

func (t *fakeRecipeTx) Commit(ctx context.Context) error {
	if t.closed {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.closed = true
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	t.repo.state = t.state
	t.repo.commits++
	return nil
}

func (t *fakeRecipeTx) Rollback(ctx context.Context) error {
	if t.closed {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.closed = true
	return nil
}

func (t *fakeRecipeTx) InsertRecipe(ctx context.Context, recipe *domain.Recipe) (int64, error) {
	t.state.nextID++
	r := *recipe
	r.ID = t.state.nextID
	t.state.recipes[r.ID] = r
	return r.ID, nil
}

func (t *fakeRecipeTx) GetRecipeForUpdate(ctx context.Context, id int64) (*domain.Recipe, error) {
	r, ok := t.state.recipes[id]
	if !ok {
		return nil, domain.ErrRecipeNotFound
	}
	return &r, nil
}

func (t *fakeRecipeTx) UpdateRecipe(ctx context.Context, recipe *domain.Recipe) error {
	if _, ok := t.state.recipes[recipe.ID]; !ok {
		return domain.ErrRecipeNotFound
	}
	t.state.recipes[recipe.ID] = *recipe
	return nil
}

func (t *fakeRecipeTx) DeleteRecipe(ctx context.Context, id int64) error {
	delete(t.state.recipes, id)
	return nil
}

func (t *fakeRecipeTx) ClearTags(ctx context.Context, recipeID int64) error {
	delete(t.state.tags, recipeID)
	return nil
}

func (t *fakeRecipeTx) AttachTags(ctx context.Context, recipeID int64, tagIDs []int64) error {
	t.state.tags[recipeID] = append(t.state.tags[recipeID], tagIDs...)
	return nil
}

func (t *fakeRecipeTx) DeleteIngredientLinks(ctx context.Context, recipeID int64) error {
	delete(t.state.links, recipeID)
	return nil
}

func (t *fakeRecipeTx) InsertIngredientLinks(ctx context.Context, recipeID int64, ingredients []domain.IngredientAmount) error {
	if t.repo.failLinks != nil {
		return t.repo.failLinks
	}
	for _, ing := range ingredients {
		for _, existing := range t.state.links[recipeID] {
			if existing.ID == ing.ID {
				return domain.ErrDuplicateLink
			}
		}
		t.state.links[recipeID] = append(t.state.links[recipeID], ing)
	}
	return nil
}

func (t *fakeRecipeTx) DeleteMemberships(ctx context.Context, recipeID int64) error {
	for p := range t.state.favorites {
		if p.recipe == recipeID {
			delete(t.state.favorites, p)
		}
	}
	for p := range t.state.cart {
		if p.recipe == recipeID {
			delete(t.state.cart, p)
		}
	}
	return nil
}

// fakeAuthors serves users and follows
type fakeAuthors struct {
	mu      sync.RWMutex
	users   map[int64]domain.User
	follows map[pair]bool
}

func newFakeAuthors() *fakeAuthors {
	return &fakeAuthors{
		users: map[int64]domain.User{
			1: {ID: 1, Email: "chef@example.com", Username: "chef", FirstName: "Julia", LastName: "Child"},
			2: {ID: 2, Email: "cook@example.com", Username: "cook", FirstName: "Ivan", LastName: "Petrov"},
		},
		follows: make(map[pair]bool),
	}
}

func (a *fakeAuthors) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	u, ok := a.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (a *fakeAuthors) FollowedAmong(ctx context.Context, userID int64, authorIDs []int64) (map[int64]bool, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make(map[int64]bool)
	for _, id := range authorIDs {
		if a.follows[pair{userID, id}] {
			out[id] = true
		}
	}
	return out, nil
}
