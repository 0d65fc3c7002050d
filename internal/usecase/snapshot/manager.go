package snapshot

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/muhammadchandra19/auctionhouse/pkg/errors"
	"github.com/muhammadchandra19/auctionhouse/pkg/logger"
)

// Snapshotter is a component whose full state serializes to one blob.
type Snapshotter interface {
	Snapshot() ([]byte, error)
	Restore(data []byte) error
}

type part struct {
	name        string
	snapshotter Snapshotter
}

// Manager composes the snapshots of several named components into one
// document. Parts restore independently, so adding a component later leaves
// older snapshots loadable.
type Manager struct {
	store  Store
	parts  []part
	logger logger.Interface
}

// NewManager creates a manager writing composite snapshots to store.
func NewManager(store Store, logger logger.Interface) *Manager {
	return &Manager{
		store:  store,
		logger: logger,
	}
}

// Register adds a named component to the composite snapshot.
func (m *Manager) Register(name string, snapshotter Snapshotter) error {
	if name == "" {
		return errors.NewTracer("snapshot part name cannot be empty")
	}
	for _, p := range m.parts {
		if p.name == name {
			return errors.NewTracer(fmt.Sprintf("snapshot part %s already registered", name))
		}
	}

	m.parts = append(m.parts, part{name: name, snapshotter: snapshotter})
	return nil
}

// Save serializes every registered part and persists the composite.
func (m *Manager) Save(ctx context.Context) error {
	composite := make(map[string]json.RawMessage, len(m.parts))
	for _, p := range m.parts {
		data, err := p.snapshotter.Snapshot()
		if err != nil {
			return errors.NewTracer(fmt.Sprintf("snapshot part %s failed", p.name)).Wrap(err)
		}
		composite[p.name] = data
	}

	data, err := json.Marshal(composite)
	if err != nil {
		return errors.TracerFromError(err)
	}
	return m.store.Save(ctx, data)
}

// Load restores every registered part from the stored composite, if one
// exists. Parts missing from the stored document keep their current state.
func (m *Manager) Load(ctx context.Context) (bool, error) {
	data, ok, err := m.store.Load(ctx)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	var composite map[string]json.RawMessage
	if err := json.Unmarshal(data, &composite); err != nil {
		return false, errors.TracerFromError(err)
	}

	for _, p := range m.parts {
		partData, exists := composite[p.name]
		if !exists {
			m.logger.WarnContext(ctx, "snapshot part missing, keeping empty state",
				logger.Field{Key: "part", Value: p.name},
			)
			continue
		}
		if err := p.snapshotter.Restore(partData); err != nil {
			return false, errors.NewTracer(fmt.Sprintf("restore of part %s failed", p.name)).Wrap(err)
		}
	}
	return true, nil
}
