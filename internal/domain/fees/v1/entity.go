package v1

import (
	"github.com/shopspring/decimal"

	bankv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/bank/v1"
)

// Denominator is the basis of all fee percentages: a fee of Denominator is
// 100%.
const Denominator uint64 = 100_000

// FeeKind selects which policy percentage an admin update targets.
type FeeKind string

const (
	// FeeKindProtocol is the protocol's cut of quote flow.
	FeeKindProtocol FeeKind = "protocol"
	// FeeKindReferrer is the referrer's cut of quote flow.
	FeeKindReferrer FeeKind = "referrer"
	// FeeKindMaxCurator caps what curators may elect for the auction type.
	FeeKindMaxCurator FeeKind = "max_curator"
)

// Fees is the policy for one auction type.
type Fees struct {
	Protocol   uint64
	Referrer   uint64
	MaxCurator uint64
}

// Portion returns floor(amount*bps/Denominator), the exact fee cut for a
// basis-point percentage.
func Portion(amount decimal.Decimal, bps uint64) decimal.Decimal {
	return bankv1.MulDiv(amount, decimal.NewFromUint64(bps), decimal.NewFromUint64(Denominator))
}
