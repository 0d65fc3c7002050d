package snapshot

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhammadchandra19/auctionhouse/internal/usecase/snapshot/mock"
	logger_mock "github.com/muhammadchandra19/auctionhouse/pkg/logger/mock"
)

type fakePart struct {
	state string
}

func (f *fakePart) Snapshot() ([]byte, error) {
	return json.Marshal(f.state)
}

func (f *fakePart) Restore(data []byte) error {
	return json.Unmarshal(data, &f.state)
}

func newTestManager(t *testing.T) (*Manager, *mock.MockStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	log := logger_mock.NewMockInterface(ctrl)
	log.EXPECT().WarnContext(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	store := mock.NewMockStore(ctrl)
	return NewManager(store, log), store
}

func TestManager_Register(t *testing.T) {
	m, _ := newTestManager(t)

	require.NoError(t, m.Register("bank", &fakePart{}))
	require.Error(t, m.Register("bank", &fakePart{}))
	require.Error(t, m.Register("", &fakePart{}))
}

func TestManager_SaveComposesParts(t *testing.T) {
	m, store := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.Register("bank", &fakePart{state: "ledger"}))
	require.NoError(t, m.Register("router", &fakePart{state: "routings"}))

	var saved []byte
	store.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, data []byte) error {
			saved = data
			return nil
		})

	require.NoError(t, m.Save(ctx))

	var composite map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(saved, &composite))
	assert.Len(t, composite, 2)
	assert.JSONEq(t, `"ledger"`, string(composite["bank"]))
	assert.JSONEq(t, `"routings"`, string(composite["router"]))
}

func TestManager_LoadRestoresParts(t *testing.T) {
	m, store := newTestManager(t)
	ctx := context.Background()

	bankPart := &fakePart{}
	routerPart := &fakePart{state: "untouched"}
	require.NoError(t, m.Register("bank", bankPart))
	require.NoError(t, m.Register("router", routerPart))

	// The stored composite predates the router part.
	stored, err := json.Marshal(map[string]json.RawMessage{
		"bank": json.RawMessage(`"ledger"`),
	})
	require.NoError(t, err)
	store.EXPECT().Load(gomock.Any()).Return(stored, true, nil)

	ok, err := m.Load(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "ledger", bankPart.state)
	assert.Equal(t, "untouched", routerPart.state)
}

func TestManager_LoadWithoutSnapshot(t *testing.T) {
	m, store := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.Register("bank", &fakePart{}))
	store.EXPECT().Load(gomock.Any()).Return(nil, false, nil)

	ok, err := m.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestManager_SaveThenLoadRoundTrip(t *testing.T) {
	m, store := newTestManager(t)
	ctx := context.Background()

	source := &fakePart{state: "before"}
	require.NoError(t, m.Register("bank", source))

	var saved []byte
	store.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, data []byte) error {
			saved = data
			return nil
		})
	require.NoError(t, m.Save(ctx))

	source.state = "mutated"
	store.EXPECT().Load(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]byte, bool, error) {
		return saved, true, nil
	})

	ok, err := m.Load(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "before", source.state)
}
