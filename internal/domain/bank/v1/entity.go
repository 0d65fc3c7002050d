package v1

import (
	"time"

	"github.com/shopspring/decimal"
)

// Address identifies an account in the custody bank. The empty string is the
// zero address sentinel used by callers that want defaulting behavior.
type Address string

// ZeroAddress is the zero sentinel.
const ZeroAddress Address = ""

// IsZero reports whether the address is the zero sentinel.
func (a Address) IsZero() bool {
	return a == ZeroAddress
}

func (a Address) String() string {
	return string(a)
}

// Asset describes a registered asset and its base-unit scale.
type Asset struct {
	ID       string
	Decimals uint8
}

// TransferPermit is a pre-authorized pull: it allows the holder to move a
// fixed amount of a fixed asset out of From before Deadline. The nonce is
// consumed on first use.
type TransferPermit struct {
	From     Address
	Asset    string
	Amount   decimal.Decimal
	Deadline time.Time
	Nonce    string
}
