package v1

import "context"

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// Publisher delivers lifecycle records to downstream consumers. Publishing
// is best effort from the router's point of view: a failed publish is logged
// and never unwinds the already-committed operation.
type Publisher interface {
	Publish(ctx context.Context, event LotEvent) error
	Close() error
}

// Consumer drains the lot events topic into the history store. Start pumps
// messages from the broker, Subscribe processes them; both return when the
// context is cancelled or Stop closes the reader.
type Consumer interface {
	Start(ctx context.Context)
	Stop() error
	Subscribe(ctx context.Context)
}
