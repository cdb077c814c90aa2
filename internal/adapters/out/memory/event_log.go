package memory

import (
	"context"
	"log/slog"
	"sync"
)

// PublishedEvent is one entry of an EventLog.
type PublishedEvent struct {
	Key   string
	Event any
}

// EventLog is an in-process event publisher. It keeps what was published and
// logs it, standing in for the broker in development.
type EventLog struct {
	mu     sync.Mutex
	events []PublishedEvent
	logger *slog.Logger
}

func NewEventLog(logger *slog.Logger) *EventLog {
	return &EventLog{logger: logger.With("component", "EventLog")}
}

func (l *EventLog) Publish(ctx context.Context, key string, event any) error {
	l.mu.Lock()
	l.events = append(l.events, PublishedEvent{Key: key, Event: event})
	l.mu.Unlock()

	l.logger.InfoContext(ctx, "event published", "key", key, "event", event)
	return nil
}

func (l *EventLog) Events() []PublishedEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]PublishedEvent, len(l.events))
	copy(out, l.events)
	return out
}
