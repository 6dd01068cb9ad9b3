package metrics

import (
	"context"

	"github.com/osse101/Foodgram_Go/internal/event"
	"github.com/osse101/Foodgram_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch payload := evt.Payload.(type) {
	case event.RecipePayloadV1:
		op, ok := recipeOperations[evt.Type]
		if !ok {
			break
		}
		RecipeWrites.WithLabelValues(op).Inc()
		if evt.Type != event.RecipeDeleted {
			RecipeIngredientLinks.Observe(float64(payload.IngredientCount))
		}

	case event.MembershipPayloadV1:
		op := OperationAdd
		if evt.Type == event.MembershipRemoved {
			op = OperationRemove
		}
		MembershipChanges.WithLabelValues(string(payload.Kind), op).Inc()

	case event.FollowPayloadV1:
		op := OperationAdd
		if evt.Type == event.FollowDeleted {
			op = OperationRemove
		}
		FollowChanges.WithLabelValues(op).Inc()

	case event.ShoppingListPayloadV1:
		ShoppingListExports.Inc()
		ShoppingListLines.Observe(float64(payload.LineCount))

	default:
		log.Debug(LogMsgUnexpectedPayload, "type", evt.Type)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

var recipeOperations = map[event.Type]string{
	event.RecipeCreated: OperationCreate,
	event.RecipeUpdated: OperationUpdate,
	event.RecipeDeleted: OperationDelete,
}
