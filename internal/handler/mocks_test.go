package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/event"
	"github.com/osse101/Foodgram_Go/internal/eventlog"
	"github.com/osse101/Foodgram_Go/internal/middleware"
)

// MockCatalogService mocks the catalog.Service interface
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListTags(ctx context.Context) ([]domain.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tag), args.Error(1)
}

func (m *MockCatalogService) GetTag(ctx context.Context, id int64) (*domain.Tag, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tag), args.Error(1)
}

func (m *MockCatalogService) ListIngredients(ctx context.Context, namePrefix string) ([]domain.Ingredient, error) {
	args := m.Called(ctx, namePrefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ingredient), args.Error(1)
}

func (m *MockCatalogService) GetIngredient(ctx context.Context, id int64) (*domain.Ingredient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ingredient), args.Error(1)
}

func (m *MockCatalogService) ResolveTags(ctx context.Context, ids []int64) (map[int64]domain.Tag, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.Tag), args.Error(1)
}

func (m *MockCatalogService) ResolveIngredients(ctx context.Context, ids []int64) (map[int64]domain.Ingredient, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.Ingredient), args.Error(1)
}

func (m *MockCatalogService) ImportIngredients(ctx context.Context, ingredients []domain.Ingredient) (int, error) {
	args := m.Called(ctx, ingredients)
	return args.Int(0), args.Error(1)
}

func (m *MockCatalogService) ImportTags(ctx context.Context, tags []domain.Tag) (int, error) {
	args := m.Called(ctx, tags)
	return args.Int(0), args.Error(1)
}

// MockRecipeService mocks the recipe.Service interface
type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) Create(ctx context.Context, actorID int64, input domain.RecipeWriteInput) (*domain.RecipeReadView, error) {
	args := m.Called(ctx, actorID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecipeReadView), args.Error(1)
}

func (m *MockRecipeService) Update(ctx context.Context, actorID, recipeID int64, input domain.RecipeWriteInput) (*domain.RecipeReadView, error) {
	args := m.Called(ctx, actorID, recipeID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecipeReadView), args.Error(1)
}

func (m *MockRecipeService) Delete(ctx context.Context, actorID, recipeID int64) error {
	args := m.Called(ctx, actorID, recipeID)
	return args.Error(0)
}

func (m *MockRecipeService) Get(ctx context.Context, viewerID, recipeID int64) (*domain.RecipeReadView, error) {
	args := m.Called(ctx, viewerID, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecipeReadView), args.Error(1)
}

func (m *MockRecipeService) List(ctx context.Context, viewerID int64, filter domain.RecipeFilter, page domain.Page) (*domain.PageResult[domain.RecipeReadView], error) {
	args := m.Called(ctx, viewerID, filter, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PageResult[domain.RecipeReadView]), args.Error(1)
}

// MockMembershipService mocks the membership.Service interface
type MockMembershipService struct {
	mock.Mock
}

func (m *MockMembershipService) Add(ctx context.Context, kind domain.MembershipKind, userID, recipeID int64) (*domain.RecipeShort, error) {
	args := m.Called(ctx, kind, userID, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecipeShort), args.Error(1)
}

func (m *MockMembershipService) Remove(ctx context.Context, kind domain.MembershipKind, userID, recipeID int64) error {
	args := m.Called(ctx, kind, userID, recipeID)
	return args.Error(0)
}

// MockShoppingService mocks the shopping.Service interface
type MockShoppingService struct {
	mock.Mock
}

func (m *MockShoppingService) GetList(ctx context.Context, userID int64) (domain.ShoppingList, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.ShoppingList), args.Error(1)
}

func (m *MockShoppingService) Download(ctx context.Context, userID int64) ([]byte, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockUserService mocks the user.Service interface
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) List(ctx context.Context, viewerID int64, page domain.Page) (*domain.PageResult[domain.UserView], error) {
	args := m.Called(ctx, viewerID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PageResult[domain.UserView]), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, viewerID, userID int64) (*domain.UserView, error) {
	args := m.Called(ctx, viewerID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserView), args.Error(1)
}

func (m *MockUserService) Me(ctx context.Context, viewerID int64) (*domain.UserView, error) {
	args := m.Called(ctx, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserView), args.Error(1)
}

func (m *MockUserService) Import(ctx context.Context, users []domain.User) (int, error) {
	args := m.Called(ctx, users)
	return args.Int(0), args.Error(1)
}

// MockFollowService mocks the follow.Service interface
type MockFollowService struct {
	mock.Mock
}

func (m *MockFollowService) Subscribe(ctx context.Context, userID, authorID int64, recipesLimit int) (*domain.Subscription, error) {
	args := m.Called(ctx, userID, authorID, recipesLimit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subscription), args.Error(1)
}

func (m *MockFollowService) Unsubscribe(ctx context.Context, userID, authorID int64) error {
	args := m.Called(ctx, userID, authorID)
	return args.Error(0)
}

func (m *MockFollowService) ListSubscriptions(ctx context.Context, userID int64, page domain.Page, recipesLimit int) (*domain.PageResult[domain.Subscription], error) {
	args := m.Called(ctx, userID, page, recipesLimit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PageResult[domain.Subscription]), args.Error(1)
}

// withRequest attaches the caller identity and the {id} URL parameter
func withRequest(r *http.Request, userID int64, id string) *http.Request {
	ctx := middleware.WithUserID(r.Context(), userID)
	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add(URLParamID, id)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return r.WithContext(ctx)
}

// MockEventLogService mocks the eventlog.Service interface
type MockEventLogService struct {
	mock.Mock
}

func (m *MockEventLogService) Subscribe(bus event.Bus) error {
	return m.Called(bus).Error(0)
}

func (m *MockEventLogService) Recent(ctx context.Context, userID int64, eventType string, limit int) ([]eventlog.Event, error) {
	args := m.Called(ctx, userID, eventType, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]eventlog.Event), args.Error(1)
}

func (m *MockEventLogService) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	args := m.Called(ctx, retentionDays)
	return args.Get(0).(int64), args.Error(1)
}
