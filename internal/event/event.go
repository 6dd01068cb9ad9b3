package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/logger"
)

// Type represents the type of an event
type Type string

// Event represents a domain event raised after a successful write
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Domain event types
const (
	RecipeCreated Type = "recipe.created"
	RecipeUpdated Type = "recipe.updated"
	RecipeDeleted Type = "recipe.deleted"

	MembershipAdded   Type = "membership.added"
	MembershipRemoved Type = "membership.removed"

	FollowCreated Type = "follow.created"
	FollowDeleted Type = "follow.deleted"

	ShoppingListExported Type = "shopping_list.exported"
)

// AllTypes lists every event type, in declaration order
var AllTypes = []Type{
	RecipeCreated,
	RecipeUpdated,
	RecipeDeleted,
	MembershipAdded,
	MembershipRemoved,
	FollowCreated,
	FollowDeleted,
	ShoppingListExported,
}

// RecipePayloadV1 is the payload of recipe events
type RecipePayloadV1 struct {
	RecipeID        int64 `json:"recipe_id"`
	AuthorID        int64 `json:"author_id"`
	TagCount        int   `json:"tag_count"`
	IngredientCount int   `json:"ingredient_count"`
	Timestamp       int64 `json:"timestamp"`
}

// MembershipPayloadV1 is the payload of favorite and shopping cart events
type MembershipPayloadV1 struct {
	Kind      domain.MembershipKind `json:"kind"`
	UserID    int64                 `json:"user_id"`
	RecipeID  int64                 `json:"recipe_id"`
	Timestamp int64                 `json:"timestamp"`
}

// FollowPayloadV1 is the payload of subscription events
type FollowPayloadV1 struct {
	UserID    int64 `json:"user_id"`
	AuthorID  int64 `json:"author_id"`
	Timestamp int64 `json:"timestamp"`
}

// ShoppingListPayloadV1 is the payload of shopping list exports
type ShoppingListPayloadV1 struct {
	UserID    int64 `json:"user_id"`
	LineCount int   `json:"line_count"`
	Timestamp int64 `json:"timestamp"`
}

// NewRecipeEvent creates a recipe event of the given type
func NewRecipeEvent(eventType Type, recipeID, authorID int64, tagCount, ingredientCount int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: RecipePayloadV1{
			RecipeID:        recipeID,
			AuthorID:        authorID,
			TagCount:        tagCount,
			IngredientCount: ingredientCount,
			Timestamp:       time.Now().Unix(),
		},
	}
}

// NewMembershipEvent creates a membership event of the given type
func NewMembershipEvent(eventType Type, kind domain.MembershipKind, userID, recipeID int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: MembershipPayloadV1{
			Kind:      kind,
			UserID:    userID,
			RecipeID:  recipeID,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewFollowEvent creates a subscription event of the given type
func NewFollowEvent(eventType Type, userID, authorID int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: FollowPayloadV1{
			UserID:    userID,
			AuthorID:  authorID,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewShoppingListExportedEvent creates a shopping list export event
func NewShoppingListExportedEvent(userID int64, lineCount int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ShoppingListExported,
		Payload: ShoppingListPayloadV1{
			UserID:    userID,
			LineCount: lineCount,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously in subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// PublishBestEffort publishes evt and logs a failure instead of returning it.
// A nil bus is a no-op.
func PublishBestEffort(ctx context.Context, bus Bus, evt Event) {
	if bus == nil {
		return
	}
	if err := bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Error(LogMsgEventPublishFailed, "type", evt.Type, "error", err)
	}
}
