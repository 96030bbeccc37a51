package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/job-board/internal/events"
)

// publish fills in event identity/timestamp and dispatches. A nil dispatcher
// drops the event.
func publish(ctx context.Context, dispatcher events.Dispatcher, event events.Event) {
	if dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = dispatcher.Publish(ctx, event)
}
