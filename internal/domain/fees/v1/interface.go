package v1

import (
	"context"

	"github.com/shopspring/decimal"

	auctionv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/auction/v1"
	bankv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/bank/v1"
)

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// Manager owns the fee policy per auction type, curator fee elections, and
// the pull-based rewards ledger.
type Manager interface {
	// Fees returns the current policy for an auction type.
	Fees(ctx context.Context, ref auctionv1.Ref) Fees

	// SetFee updates one policy percentage. Admin only; the value may not
	// exceed Denominator.
	SetFee(ctx context.Context, caller bankv1.Address, ref auctionv1.Ref, kind FeeKind, bps uint64) error

	// SetCuratorFee records the caller's elected fee for an auction type,
	// capped by the policy maximum.
	SetCuratorFee(ctx context.Context, caller bankv1.Address, ref auctionv1.Ref, bps uint64) error

	// CuratorFee returns the curator's elected fee for an auction type,
	// zero when never set.
	CuratorFee(ctx context.Context, ref auctionv1.Ref, curator bankv1.Address) uint64

	// Accrue credits a reward to a recipient's ledger entry.
	Accrue(ctx context.Context, recipient bankv1.Address, asset string, amount decimal.Decimal)

	// Rewards returns the accrued unclaimed rewards for (recipient, asset).
	Rewards(ctx context.Context, recipient bankv1.Address, asset string) decimal.Decimal

	// ClaimRewards drains the caller's ledger entry for an asset and
	// returns the claimed amount. The bank transfer is the router's job.
	ClaimRewards(ctx context.Context, caller bankv1.Address, asset string) (decimal.Decimal, error)

	// ProtocolRecipient is the treasury address protocol fees accrue to.
	ProtocolRecipient() bankv1.Address

	// Snapshot and Restore serialize policy and ledger state.
	Snapshot() ([]byte, error)
	Restore(data []byte) error
}
