package shopping

import (
	"context"
	"fmt"

	"golang.org/x/text/language"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/event"
	"github.com/osse101/Foodgram_Go/internal/logger"
	"github.com/osse101/Foodgram_Go/internal/repository"
)

// Service builds shopping lists from a user's cart
type Service interface {
	GetList(ctx context.Context, userID int64) (domain.ShoppingList, error)
	// Download renders the list as the plain-text export
	Download(ctx context.Context, userID int64) ([]byte, error)
}

type service struct {
	repo repository.Shopping
	bus  event.Bus
	lang language.Tag
}

// NewService creates a shopping list service ordering lines for locale.
// An unparseable locale falls back to language.Und (root collation).
func NewService(repo repository.Shopping, bus event.Bus, locale string) Service {
	lang, err := language.Parse(locale)
	if err != nil {
		lang = language.Und
	}
	return &service{repo: repo, bus: bus, lang: lang}
}

func (s *service) GetList(ctx context.Context, userID int64) (domain.ShoppingList, error) {
	if userID == 0 {
		return domain.ShoppingList{}, domain.ErrUnauthorized
	}

	rows, err := s.repo.GetCartRows(ctx, userID)
	if err != nil {
		return domain.ShoppingList{}, fmt.Errorf("failed to load cart rows: %w", err)
	}

	list := Aggregate(rows, s.lang)
	logger.FromContext(ctx).Debug("Shopping list aggregated", "rows", len(rows), "lines", len(list.Lines))
	return list, nil
}

func (s *service) Download(ctx context.Context, userID int64) ([]byte, error) {
	list, err := s.GetList(ctx, userID)
	if err != nil {
		return nil, err
	}
	event.PublishBestEffort(ctx, s.bus, event.NewShoppingListExportedEvent(userID, len(list.Lines)))
	return []byte(Render(list)), nil
}
