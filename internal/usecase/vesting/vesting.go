package vesting

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	auctionv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/auction/v1"
	"github.com/muhammadchandra19/auctionhouse/pkg/errors"
)

// ModuleRef identifies this module in the registry.
var ModuleRef = auctionv1.Ref{Name: "linear-vesting", Version: 1}

// Params describes a linear vesting schedule for won payouts: the payout
// unlocks continuously between Start and Expiry.
type Params struct {
	Start  time.Time `json:"start"`
	Expiry time.Time `json:"expiry"`
}

// Module validates linear-vesting derivative configurations at lot creation.
// Wrapping the payouts themselves happens outside the settlement core.
type Module struct{}

// NewModule creates the linear vesting module.
func NewModule() *Module {
	return &Module{}
}

// Ref implements auctionv1.Module.
func (m *Module) Ref() auctionv1.Ref {
	return ModuleRef
}

// Kind implements auctionv1.Module.
func (m *Module) Kind() auctionv1.Kind {
	return auctionv1.KindDerivative
}

// ValidateParams checks a vesting parameter blob at lot creation time.
func (m *Module) ValidateParams(ctx context.Context, params []byte) error {
	if len(params) == 0 {
		return errors.NewErrorDetails(
			"vesting parameters are required",
			string(errors.InvalidDerivativeParams),
			"derivative_params",
		)
	}

	var p Params
	if err := json.Unmarshal(params, &p); err != nil {
		return errors.NewErrorDetails(
			fmt.Sprintf("vesting parameters do not parse: %v", err),
			string(errors.InvalidDerivativeParams),
			"derivative_params",
		)
	}
	if p.Start.IsZero() || p.Expiry.IsZero() {
		return errors.NewErrorDetails(
			"vesting start and expiry are required",
			string(errors.InvalidDerivativeParams),
			"derivative_params",
		)
	}
	if !p.Expiry.After(p.Start) {
		return errors.NewErrorDetails(
			"vesting expiry must be after start",
			string(errors.InvalidDerivativeParams),
			"derivative_params",
		)
	}
	return nil
}
