package bootstrap

import (
	"fmt"

	"github.com/osse101/Foodgram_Go/internal/catalog"
	"github.com/osse101/Foodgram_Go/internal/config"
	"github.com/osse101/Foodgram_Go/internal/event"
	"github.com/osse101/Foodgram_Go/internal/eventlog"
	"github.com/osse101/Foodgram_Go/internal/follow"
	"github.com/osse101/Foodgram_Go/internal/membership"
	"github.com/osse101/Foodgram_Go/internal/metrics"
	"github.com/osse101/Foodgram_Go/internal/recipe"
	"github.com/osse101/Foodgram_Go/internal/shopping"
	"github.com/osse101/Foodgram_Go/internal/user"
)

// Services holds the domain services behind the HTTP surface
type Services struct {
	Bus         event.Bus
	Catalog     catalog.Service
	Recipes     recipe.Service
	Memberships membership.Service
	Shopping    shopping.Service
	Users       user.Service
	Follows     follow.Service
	EventLog    eventlog.Service
}

// InitializeServices wires services over repos and subscribes the metrics
// collector and the event log to the event bus.
func InitializeServices(cfg *config.Config, repos *Repositories) (*Services, error) {
	bus := event.NewMemoryBus()
	if err := metrics.NewEventMetricsCollector().Register(bus); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}

	eventLogSvc := eventlog.NewService(repos.EventLog)
	if err := eventLogSvc.Subscribe(bus); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedSubscribeEventLog, err)
	}

	catalogSvc := catalog.NewService(repos.Catalog, catalog.CacheConfig{
		Size: cfg.CatalogCacheSize,
		TTL:  cfg.CatalogCacheTTL,
	})

	return &Services{
		Bus:         bus,
		Catalog:     catalogSvc,
		Recipes:     recipe.NewService(repos.Recipe, repos.User, recipe.NewValidator(catalogSvc), bus, cfg.PageSize),
		Memberships: membership.NewService(repos.Membership, bus),
		Shopping:    shopping.NewService(repos.Shopping, bus, cfg.ShoppingListLocale),
		Users:       user.NewService(repos.User, cfg.PageSize),
		Follows:     follow.NewService(repos.Follow, bus, cfg.PageSize),
		EventLog:    eventLogSvc,
	}, nil
}
