package handler

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

const validRecipeBody = `{
	"ingredients": [{"id": 10, "amount": 200}, {"id": 11, "amount": 300}],
	"tags": [1, 2],
	"image": "data:image/png;base64,aGVsbG8=",
	"name": "Pancakes",
	"text": "Mix and fry.",
	"cooking_time": 20
}`

func newTestRecipeHandler() (*RecipeHandler, *MockRecipeService, *MockMembershipService, *MockShoppingService) {
	recipes := &MockRecipeService{}
	memberships := &MockMembershipService{}
	shopping := &MockShoppingService{}
	return NewRecipeHandler(recipes, memberships, shopping, 6), recipes, memberships, shopping
}

func sampleView(id int64) *domain.RecipeReadView {
	return &domain.RecipeReadView{
		ID:          id,
		Tags:        []domain.Tag{},
		Author:      domain.UserView{ID: 1, Username: "chef"},
		Ingredients: []domain.RecipeIngredientView{},
		Name:        "Pancakes",
		CookingTime: 20,
	}
}

func TestRecipeRequest_ToInput(t *testing.T) {
	req := RecipeRequest{
		Ingredients: []IngredientAmountRequest{{ID: 10, Amount: 2}},
		Tags:        []int64{3},
		Image:       "img",
		Name:        "Soup",
		Text:        "Boil",
		CookingTime: 15,
	}

	assert.Equal(t, domain.RecipeWriteInput{
		Tags:        []int64{3},
		Ingredients: []domain.IngredientAmount{{ID: 10, Amount: 2}},
		Name:        "Soup",
		Image:       "img",
		Text:        "Boil",
		CookingTime: 15,
	}, req.ToInput())
}

func TestRecipeHandler_Create(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		userID         int64
		body           string
		setupMock      func(*MockRecipeService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Created",
			userID: 1,
			body:   validRecipeBody,
			setupMock: func(m *MockRecipeService) {
				m.On("Create", mock.Anything, int64(1), mock.MatchedBy(func(in domain.RecipeWriteInput) bool {
					return in.Name == "Pancakes" && len(in.Ingredients) == 2 && in.Ingredients[1].Amount == 300
				})).Return(sampleView(7), nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"id":7`,
		},
		{
			name:           "Malformed JSON",
			userID:         1,
			body:           `{"name":`,
			setupMock:      func(m *MockRecipeService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name:           "Unknown field",
			userID:         1,
			body:           `{"name":"x","calories":100}`,
			setupMock:      func(m *MockRecipeService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name:   "Validation failure keyed by field",
			userID: 1,
			body:   validRecipeBody,
			setupMock: func(m *MockRecipeService) {
				verr := domain.NewValidationError()
				verr.Add("tags", domain.ErrTagNotFound)
				verr.Add("cooking_time", domain.ErrCookingTimeRange)
				m.On("Create", mock.Anything, int64(1), mock.Anything).Return(nil, verr)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"cooking_time":"` + domain.ErrMsgCookingTimeRange + `"`,
		},
		{
			name:   "Anonymous caller",
			userID: 0,
			body:   validRecipeBody,
			setupMock: func(m *MockRecipeService) {
				m.On("Create", mock.Anything, int64(0), mock.Anything).Return(nil, domain.ErrUnauthorized)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   ErrMsgAuthRequiredError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, recipes, _, _ := newTestRecipeHandler()
			tt.setupMock(recipes)

			req := withRequest(httptest.NewRequest(http.MethodPost, "/api/recipes", strings.NewReader(tt.body)), tt.userID, "")
			w := httptest.NewRecorder()
			h.HandleCreate(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			recipes.AssertExpectations(t)
		})
	}
}

func TestRecipeHandler_Update(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"Updated", nil, http.StatusOK},
		{"Not the author", domain.ErrForbidden, http.StatusForbidden},
		{"Missing recipe", domain.ErrRecipeNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, recipes, _, _ := newTestRecipeHandler()
			if tt.err != nil {
				recipes.On("Update", mock.Anything, int64(2), int64(5), mock.Anything).Return(nil, tt.err)
			} else {
				recipes.On("Update", mock.Anything, int64(2), int64(5), mock.Anything).Return(sampleView(5), nil)
			}

			req := withRequest(httptest.NewRequest(http.MethodPatch, "/api/recipes/5", strings.NewReader(validRecipeBody)), 2, "5")
			w := httptest.NewRecorder()
			h.HandleUpdate(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			recipes.AssertExpectations(t)
		})
	}
}

func TestRecipeHandler_Delete(t *testing.T) {
	h, recipes, _, _ := newTestRecipeHandler()
	recipes.On("Delete", mock.Anything, int64(1), int64(5)).Return(nil)

	w := httptest.NewRecorder()
	h.HandleDelete(w, withRequest(httptest.NewRequest(http.MethodDelete, "/api/recipes/5", nil), 1, "5"))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	recipes.AssertExpectations(t)
}

func TestRecipeHandler_Get(t *testing.T) {
	h, recipes, _, _ := newTestRecipeHandler()
	recipes.On("Get", mock.Anything, int64(0), int64(5)).Return(sampleView(5), nil)

	w := httptest.NewRecorder()
	h.HandleGet(w, withRequest(httptest.NewRequest(http.MethodGet, "/api/recipes/5", nil), 0, "5"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_favorited":false`)
	assert.Contains(t, w.Body.String(), `"tags":[]`)
}

func TestRecipeHandler_ListParsesFilters(t *testing.T) {
	h, recipes, _, _ := newTestRecipeHandler()
	author := int64(3)
	expectedFilter := domain.RecipeFilter{
		AuthorID:         &author,
		TagSlugs:         []string{"breakfast", "dinner"},
		IsFavorited:      true,
		IsInShoppingCart: false,
	}
	recipes.On("List", mock.Anything, int64(1), expectedFilter, domain.Page{Number: 2, Limit: 6}).
		Return(&domain.PageResult[domain.RecipeReadView]{
			Count: 13,
			Items: []domain.RecipeReadView{*sampleView(9)},
		}, nil)

	req := withRequest(httptest.NewRequest(http.MethodGet,
		"/api/recipes?page=2&author=3&tags=breakfast&tags=dinner&is_favorited=1&is_in_shopping_cart=0", nil), 1, "")
	w := httptest.NewRecorder()
	h.HandleList(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"count":13`)
	assert.Contains(t, body, `page=3`)
	assert.Contains(t, body, `page=1`)
	recipes.AssertExpectations(t)
}

func TestRecipeHandler_ListRejectsBadQuery(t *testing.T) {
	InitValidator()

	for _, query := range []string{"page=abc", "page=100000000000000000&limit=100", "page=1000001", "limit=-1", "author=bob"} {
		t.Run(query, func(t *testing.T) {
			h, recipes, _, _ := newTestRecipeHandler()

			w := httptest.NewRecorder()
			h.HandleList(w, withRequest(httptest.NewRequest(http.MethodGet, "/api/recipes?"+query, nil), 0, ""))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), ErrMsgInvalidQuery)
			recipes.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestRecipeHandler_Membership(t *testing.T) {
	tests := []struct {
		name           string
		kind           domain.MembershipKind
		add            bool
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{"Favorite added", domain.MembershipFavorite, true, nil, http.StatusCreated, `"cooking_time":20`},
		{"Favorite twice", domain.MembershipFavorite, true, domain.ErrAlreadyExists, http.StatusBadRequest, `{"errors":"` + ErrMsgAlreadyInList + `"}`},
		{"Cart missing recipe", domain.MembershipShoppingCart, true, domain.ErrRecipeNotFound, http.StatusNotFound, ErrMsgRecipeNotFoundError},
		{"Cart removed", domain.MembershipShoppingCart, false, nil, http.StatusNoContent, ""},
		{"Remove absent", domain.MembershipFavorite, false, domain.ErrMembershipNotFound, http.StatusBadRequest, ErrMsgNotInList},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, memberships, _ := newTestRecipeHandler()
			var handler http.HandlerFunc
			if tt.add {
				if tt.err != nil {
					memberships.On("Add", mock.Anything, tt.kind, int64(4), int64(8)).Return(nil, tt.err)
				} else {
					memberships.On("Add", mock.Anything, tt.kind, int64(4), int64(8)).
						Return(&domain.RecipeShort{ID: 8, Name: "Pancakes", CookingTime: 20}, nil)
				}
				handler = h.HandleAddMembership(tt.kind)
			} else {
				memberships.On("Remove", mock.Anything, tt.kind, int64(4), int64(8)).Return(tt.err)
				handler = h.HandleRemoveMembership(tt.kind)
			}

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, withRequest(httptest.NewRequest(http.MethodPost, "/api/recipes/8/x", nil), 4, "8"))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
			memberships.AssertExpectations(t)
		})
	}
}

func TestRecipeHandler_DownloadShoppingCart(t *testing.T) {
	h, _, _, shopping := newTestRecipeHandler()
	content := []byte("Shopping list:\nflour (g) - 300")
	shopping.On("Download", mock.Anything, int64(4)).Return(content, nil)

	w := httptest.NewRecorder()
	h.HandleDownloadShoppingCart(w, withRequest(httptest.NewRequest(http.MethodGet, "/api/recipes/download_shopping_cart", nil), 4, ""))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, ContentTypePlainText, w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="shopping_list.txt"`, w.Header().Get("Content-Disposition"))
	assert.True(t, bytes.Equal(content, w.Body.Bytes()))
}

func TestRecipeHandler_DownloadShoppingCartErrors(t *testing.T) {
	h, _, _, shopping := newTestRecipeHandler()
	shopping.On("Download", mock.Anything, int64(0)).Return(nil, domain.ErrUnauthorized)
	shopping.On("Download", mock.Anything, int64(5)).Return(nil, errors.New("db down"))

	w := httptest.NewRecorder()
	h.HandleDownloadShoppingCart(w, withRequest(httptest.NewRequest(http.MethodGet, "/", nil), 0, ""))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	h.HandleDownloadShoppingCart(w, withRequest(httptest.NewRequest(http.MethodGet, "/", nil), 5, ""))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
