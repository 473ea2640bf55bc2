package port

import (
	"context"
	"screencast/internal/core/domain"
)

// EventPublisher is an interface to define a finalize-event publisher
// (nats, kafka, ...)
type EventPublisher interface {
	PublishFinalized(ctx context.Context, event domain.RecordingFinalized) error
	Close() error
}
