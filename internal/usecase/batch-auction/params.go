package batchauction

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	feesv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/fees/v1"
	"github.com/muhammadchandra19/auctionhouse/pkg/errors"
)

// Params is the module-specific configuration blob carried in
// AuctionParams.AuctionData.
type Params struct {
	// Price is the fixed sale price in quote base units per whole base token.
	Price decimal.Decimal `json:"price"`

	// MinFillPercent voids the sale when less than this share of capacity
	// sells, in basis points against the fee denominator. Zero disables the
	// check.
	MinFillPercent uint64 `json:"min_fill_percent"`
}

func parseParams(data []byte) (Params, error) {
	var params Params
	if len(data) == 0 {
		return params, errors.NewErrorDetails("auction data is required", string(errors.InvalidParams), "auction_data")
	}
	if err := json.Unmarshal(data, &params); err != nil {
		return params, errors.NewErrorDetails(
			fmt.Sprintf("auction data does not parse: %v", err),
			string(errors.InvalidParams),
			"auction_data",
		)
	}
	if params.Price.Sign() <= 0 || !params.Price.IsInteger() {
		return params, errors.NewErrorDetails(
			"price must be a positive integer amount of quote base units",
			string(errors.InvalidParams),
			"price",
		)
	}
	if params.MinFillPercent > feesv1.Denominator {
		return params, errors.NewErrorDetails(
			fmt.Sprintf("min fill percent %d exceeds %d", params.MinFillPercent, feesv1.Denominator),
			string(errors.InvalidParams),
			"min_fill_percent",
		)
	}
	return params, nil
}
