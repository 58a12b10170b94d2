package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ViewEvent struct {
	PortfolioID uuid.UUID `json:"portfolio_id"`
	LookupKind  string    `json:"lookup_kind"`
	LookupValue string    `json:"lookup_value"`
	ThemeID     string    `json:"theme_id"`
	ViewedAt    time.Time `json:"viewed_at"`
}

type PublishEvent struct {
	PortfolioID uuid.UUID `json:"portfolio_id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Published   bool      `json:"published"`
	ChangedAt   time.Time `json:"changed_at"`
}

// EventPublisher is the messaging port. Implemented by the Kafka adapter.
type EventPublisher interface {
	PublishView(ctx context.Context, ev ViewEvent) error
	PublishPublish(ctx context.Context, ev PublishEvent) error
}
