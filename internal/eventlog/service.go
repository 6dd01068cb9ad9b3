package eventlog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/osse101/Foodgram_Go/internal/event"
	"github.com/osse101/Foodgram_Go/internal/logger"
)

// Service handles event logging business logic
type Service interface {
	// Subscribe registers the event logger to listen to all events
	Subscribe(bus event.Bus) error

	// Recent returns the newest events raised by userID, optionally of one type
	Recent(ctx context.Context, userID int64, eventType string, limit int) ([]Event, error)

	// CleanupOldEvents removes events older than retention period
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo Repository
}

// NewService creates a new event logging service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Subscribe registers the logger for every domain event type
func (s *service) Subscribe(bus event.Bus) error {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, s.handleEvent)
	}
	return nil
}

// handleEvent flattens the typed payload to a JSON object and stores it
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := toObject(evt.Payload)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedEncodePayload, err)
	}
	if payload == nil {
		log.Debug(LogMsgEventPayloadNotObject, LogFieldType, evt.Type)
		return nil
	}

	userID := actingUser(payload)
	if err := s.repo.LogEvent(ctx, string(evt.Type), userID, payload); err != nil {
		log.Error(LogMsgFailedToLogEvent, LogFieldError, err, LogFieldType, evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, LogFieldType, evt.Type, LogFieldUserID, userID)
	return nil
}

func (s *service) Recent(ctx context.Context, userID int64, eventType string, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	limit = min(limit, MaxRecentLimit)

	filter := EventFilter{UserID: &userID, Limit: limit}
	if eventType != "" {
		filter.EventType = &eventType
	}

	events, err := s.repo.GetEvents(ctx, filter)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []Event{}
	}
	return events, nil
}

// CleanupOldEvents removes events older than the retention period
func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, retentionDays)
}

// toObject round-trips payload through JSON. Non-object payloads yield nil.
func toObject(payload interface{}) (map[string]interface{}, error) {
	if m, ok := payload.(map[string]interface{}); ok {
		return m, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, nil
	}
	return out, nil
}

// actingUser picks the user an event is attributed to. Recipe events carry
// only the author.
func actingUser(payload map[string]interface{}) *int64 {
	for _, key := range []string{PayloadKeyUserID, PayloadKeyAuthorID} {
		switch v := payload[key].(type) {
		case float64:
			id := int64(v)
			return &id
		case int64:
			return &v
		}
	}
	return nil
}
