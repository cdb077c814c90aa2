package ports

import "context"

// EventPublisher delivers domain events to the outside world. key groups
// events of the same aggregate; event is serialized by the adapter.
type EventPublisher interface {
	Publish(ctx context.Context, key string, event any) error
}
