package vesting

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	auctionv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/auction/v1"
	"github.com/muhammadchandra19/auctionhouse/pkg/errors"
)

func TestModule_Identity(t *testing.T) {
	m := NewModule()
	assert.Equal(t, "linear-vesting.v1", m.Ref().String())
	assert.Equal(t, auctionv1.KindDerivative, m.Kind())
}

func TestModule_ValidateParams(t *testing.T) {
	m := NewModule()
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	valid, err := json.Marshal(Params{Start: now, Expiry: now.Add(30 * 24 * time.Hour)})
	require.NoError(t, err)
	require.NoError(t, m.ValidateParams(ctx, valid))

	testCases := []struct {
		name   string
		params []byte
	}{
		{
			name:   "empty blob",
			params: nil,
		},
		{
			name:   "malformed json",
			params: []byte("{not json"),
		},
		{
			name:   "missing expiry",
			params: mustMarshal(t, Params{Start: now}),
		},
		{
			name:   "expiry before start",
			params: mustMarshal(t, Params{Start: now, Expiry: now.Add(-time.Hour)}),
		},
		{
			name:   "expiry equals start",
			params: mustMarshal(t, Params{Start: now, Expiry: now}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := m.ValidateParams(ctx, tc.params)
			require.Error(t, err)
			assert.True(t, errors.ErrorCodeEquals(err, string(errors.InvalidDerivativeParams)))
		})
	}
}

func mustMarshal(t *testing.T, p Params) []byte {
	t.Helper()
	data, err := json.Marshal(p)
	require.NoError(t, err)
	return data
}
