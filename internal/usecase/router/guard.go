package router

import (
	"context"
	"sync"

	"github.com/muhammadchandra19/auctionhouse/pkg/errors"
)

// guardKey marks a context as already inside a guarded router operation.
type guardKey struct{}

// guard gives every router operation global serialization and rejects
// re-entry. Control leaves the router only through callback hooks; a hook
// that calls back into a guarded method receives the marked context, so the
// nested call fails before touching the mutex instead of deadlocking on it.
type guard struct {
	mu sync.Mutex
}

// enter takes the guard. The returned context must flow into every module,
// bank and dispatcher call made inside the operation, and the returned
// release runs when the operation ends.
func (g *guard) enter(ctx context.Context) (context.Context, func(), error) {
	if ctx.Value(guardKey{}) != nil {
		return nil, nil, errors.NewErrorDetails(
			"nested call into a guarded operation",
			string(errors.ReentrantCall),
			"caller",
		)
	}

	g.mu.Lock()
	return context.WithValue(ctx, guardKey{}, struct{}{}), g.mu.Unlock, nil
}
