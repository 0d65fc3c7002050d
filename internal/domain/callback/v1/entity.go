package v1

// Permissions declares, at registration time, which lifecycle points a
// callback wants and how it participates in asset flow. Unset bits make the
// corresponding dispatch a silent no-op.
type Permissions struct {
	OnCreate        bool
	OnCancel        bool
	OnCurate        bool
	OnBid           bool
	OnPurchase      bool
	OnClaimProceeds bool
	// ReceivesQuoteAsset routes the seller proceeds to the callback account
	// instead of the seller.
	ReceivesQuoteAsset bool
	// SendsBaseAsset makes the callback the source of lot capacity and
	// curator payouts. It requires OnCreate and OnCurate, and subjects both
	// to balance-delta verification.
	SendsBaseAsset bool
}
