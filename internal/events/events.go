package events

import (
	"context"
	"errors"
	"time"
)

// Type is the kind of change an event reports
type Type string

const (
	Created Type = "created"
	Updated Type = "updated"
	Deleted Type = "deleted"
)

// Event reports a committed change to one resource row
type Event struct {
	Type      Type   `json:"type"`
	Resource  string `json:"resource"`
	ID        any    `json:"id"`
	Timestamp int64  `json:"timestamp"`
}

// New stamps an event with the current time
func New(t Type, resource string, id any) Event {
	return Event{
		Type:      t,
		Resource:  resource,
		ID:        id,
		Timestamp: time.Now().UnixMilli(),
	}
}

// Publisher fans change events out to listeners. Publishing is best-effort:
// callers log a failure and carry on, the change is already committed.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// Multi publishes to every publisher in turn
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, e Event) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Nop discards every event
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
