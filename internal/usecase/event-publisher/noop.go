package eventpublisher

import (
	"context"

	eventv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/event/v1"
)

// NoopPublisher drops every record. Used when no broker is configured and in
// standalone runs.
type NoopPublisher struct{}

// NewNoopPublisher creates a publisher that discards records.
func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

// Publish implements eventv1.Publisher.
func (p *NoopPublisher) Publish(ctx context.Context, event eventv1.LotEvent) error {
	return nil
}

// Close implements eventv1.Publisher.
func (p *NoopPublisher) Close() error {
	return nil
}
