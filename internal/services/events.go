package services

import (
	"context"

	"github.com/rs/zerolog"
)

// Event types published after a successful insert.
const (
	EventUserRegistered    = "user.registered"
	EventStorefrontCreated = "storefront.created"
	EventProductCreated    = "product.created"
	EventReviewCreated     = "review.created"
)

// EventPublisher delivers domain events to a message broker.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload interface{}) error
}

// eventEmitter publishes events on a best-effort basis: a failed publish is
// logged and never fails the request that produced it.
type eventEmitter struct {
	publisher EventPublisher
	log       zerolog.Logger
}

func (e eventEmitter) emit(ctx context.Context, eventType string, payload interface{}) {
	if e.publisher == nil {
		return
	}
	if err := e.publisher.Publish(ctx, eventType, payload); err != nil {
		e.log.Warn().Err(err).Str("event", eventType).Msg("failed to publish event")
	}
}
