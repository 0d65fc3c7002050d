package errors

import (
	"bytes"
	"strings"
)

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// GeneralInternalServerError represents a generic internal error.
	GeneralInternalServerError ErrorCode = "general_internal_server_error"

	// InvalidParams represents malformed routing or auction parameters.
	InvalidParams ErrorCode = "invalid_params"
	// InvalidAssetDecimals represents an asset whose decimal precision is outside the supported range.
	InvalidAssetDecimals ErrorCode = "invalid_asset_decimals"
	// ZeroAsset represents a zero/null asset identifier where a real asset is required.
	ZeroAsset ErrorCode = "zero_asset"
	// ZeroAmount represents a zero or negative amount where a positive amount is required.
	ZeroAmount ErrorCode = "zero_amount"
	// UnknownAsset represents an asset identifier that is not registered with the bank.
	UnknownAsset ErrorCode = "unknown_asset"
	// UnknownCallback represents a callback identifier that is not registered with the dispatcher.
	UnknownCallback ErrorCode = "unknown_callback"
	// InvalidPermit represents a pre-authorized transfer that does not match the requested one.
	InvalidPermit ErrorCode = "invalid_permit"
	// InvalidFee represents a fee value above the allowed maximum.
	InvalidFee ErrorCode = "invalid_fee"
	// CapacityInQuote represents a prefunded lot whose capacity is denominated in the quote asset.
	CapacityInQuote ErrorCode = "capacity_in_quote"

	// LotNotFound represents an unknown lot identifier.
	LotNotFound ErrorCode = "lot_not_found"
	// LotNotActive represents a lot that is not in the lifecycle state the operation requires.
	LotNotActive ErrorCode = "lot_not_active"
	// LotNotLive represents a bid against a lot outside its bidding window.
	LotNotLive ErrorCode = "lot_not_live"
	// LotNotConcluded represents a settlement attempt before the lot concluded.
	LotNotConcluded ErrorCode = "lot_not_concluded"
	// LotNotSettled represents a claim against a lot that has not settled.
	LotNotSettled ErrorCode = "lot_not_settled"
	// LotAlreadySettled represents a second settlement of an already settled lot.
	LotAlreadySettled ErrorCode = "lot_already_settled"
	// LotAlreadyCurated represents a second curation of the same lot.
	LotAlreadyCurated ErrorCode = "lot_already_curated"
	// SettlementWindowExpired represents a settlement attempt after the dedicated window closed.
	SettlementWindowExpired ErrorCode = "settlement_window_expired"
	// SettlementWindowOpen represents an abort attempt while the dedicated window is still open.
	SettlementWindowOpen ErrorCode = "settlement_window_open"
	// BidNotFound represents an unknown bid identifier.
	BidNotFound ErrorCode = "bid_not_found"
	// BidAlreadyClaimed represents a bid that was already claimed or refunded.
	BidAlreadyClaimed ErrorCode = "bid_already_claimed"
	// ProceedsAlreadyClaimed represents a second proceeds claim for the same lot.
	ProceedsAlreadyClaimed ErrorCode = "proceeds_already_claimed"
	// NothingToClaim represents a rewards claim with no accrued balance.
	NothingToClaim ErrorCode = "nothing_to_claim"

	// NotSeller represents a seller-only operation invoked by another caller.
	NotSeller ErrorCode = "not_seller"
	// NotCurator represents a curator-only operation invoked by another caller.
	NotCurator ErrorCode = "not_curator"
	// NotBidder represents a bidder-only operation invoked by another caller.
	NotBidder ErrorCode = "not_bidder"
	// NotAdmin represents an admin-only operation invoked by another caller.
	NotAdmin ErrorCode = "not_admin"
	// NotRouter represents a privileged dispatch invoked by anything other than the router.
	NotRouter ErrorCode = "not_router"

	// CallbackBalanceMismatch represents an extension that declared a funding capability
	// but the router's balance did not move by the expected amount.
	CallbackBalanceMismatch ErrorCode = "callback_balance_mismatch"
	// InsufficientFunding represents a funding debit that would take the escrow negative.
	InsufficientFunding ErrorCode = "insufficient_funding"
	// InsufficientBalance represents a transfer exceeding the payer's balance.
	InsufficientBalance ErrorCode = "insufficient_balance"
	// ReentrantCall represents a nested call into a guarded router method.
	ReentrantCall ErrorCode = "reentrant_call"

	// ModuleNotInstalled represents a module reference that is not installed.
	ModuleNotInstalled ErrorCode = "module_not_installed"
	// ModuleSunset represents a module that no longer accepts new lots.
	ModuleSunset ErrorCode = "module_sunset"
	// ModuleWrongKind represents a module resolved under the wrong capability kind.
	ModuleWrongKind ErrorCode = "module_wrong_kind"
	// ModuleAlreadyInstalled represents a duplicate module installation.
	ModuleAlreadyInstalled ErrorCode = "module_already_installed"
	// InvalidDerivativeParams represents derivative parameters the derivative module rejected.
	InvalidDerivativeParams ErrorCode = "invalid_derivative_params"

	// RedisConfigError represents an error when the Redis configuration is invalid or nil.
	RedisConfigError ErrorCode = "redis_config_error"
	// RedisConnectionError represents an error when connecting to Redis.
	RedisConnectionError ErrorCode = "redis_connection_error"
	// RedisDisconnectionError represents an error when disconnecting from Redis.
	RedisDisconnectionError ErrorCode = "redis_disconnection_error"
	// RedisPingError represents an error when pinging Redis.
	RedisPingError ErrorCode = "redis_pinging_error"
	// RedisGetError represents an error when getting a value from Redis.
	RedisGetError ErrorCode = "redis_get_error"
	// RedisSetError represents an error when setting a value in Redis.
	RedisSetError ErrorCode = "redis_set_error"
	// RedisDelError represents an error when deleting a value from Redis.
	RedisDelError ErrorCode = "redis_del_error"

	// KafkaPublishError represents an error when publishing a record to Kafka.
	KafkaPublishError ErrorCode = "kafka_publish_error"
)

// Severity represents the severity level of an error.
type Severity string

const (
	// SeverityCritical indicates a critical error that requires immediate attention.
	SeverityCritical Severity = "critical"
	// SeverityHigh indicates a high severity error that should be addressed promptly.
	SeverityHigh Severity = "high"
	// SeverityMedium indicates a medium severity error that should be addressed in due course.
	SeverityMedium Severity = "medium"
	// SeverityLow indicates a low severity error that can be addressed at a later time.
	SeverityLow Severity = "low"
)

// Category represents the category of an error.
type Category string

const (
	// CategoryParameter indicates malformed input parameters.
	CategoryParameter Category = "parameter"
	// CategoryState indicates an operation against the wrong lifecycle state.
	CategoryState Category = "state"
	// CategoryAuthorization indicates a caller without the required role.
	CategoryAuthorization Category = "authorization"
	// CategoryInvariant indicates a broken bookkeeping invariant.
	CategoryInvariant Category = "invariant"
	// CategoryModule indicates a rejection by an auction or derivative module.
	CategoryModule Category = "module"
	// CategoryInfrastructure indicates an error from a backing service.
	CategoryInfrastructure Category = "infrastructure"
	// CategoryUnknown indicates an unknown error category.
	CategoryUnknown Category = "unknown"
)

var codeCategories = map[ErrorCode]Category{
	InvalidParams:        CategoryParameter,
	InvalidAssetDecimals: CategoryParameter,
	ZeroAsset:            CategoryParameter,
	ZeroAmount:           CategoryParameter,
	UnknownAsset:         CategoryParameter,
	UnknownCallback:      CategoryParameter,
	InvalidPermit:        CategoryParameter,
	InvalidFee:           CategoryParameter,
	CapacityInQuote:      CategoryParameter,

	LotNotFound:             CategoryState,
	LotNotActive:            CategoryState,
	LotNotLive:              CategoryState,
	LotNotConcluded:         CategoryState,
	LotNotSettled:           CategoryState,
	LotAlreadySettled:       CategoryState,
	LotAlreadyCurated:       CategoryState,
	SettlementWindowExpired: CategoryState,
	SettlementWindowOpen:    CategoryState,
	BidNotFound:             CategoryState,
	BidAlreadyClaimed:       CategoryState,
	ProceedsAlreadyClaimed:  CategoryState,
	NothingToClaim:          CategoryState,

	NotSeller:  CategoryAuthorization,
	NotCurator: CategoryAuthorization,
	NotBidder:  CategoryAuthorization,
	NotAdmin:   CategoryAuthorization,
	NotRouter:  CategoryAuthorization,

	CallbackBalanceMismatch: CategoryInvariant,
	InsufficientFunding:     CategoryInvariant,
	InsufficientBalance:     CategoryInvariant,
	ReentrantCall:           CategoryInvariant,

	ModuleNotInstalled:      CategoryModule,
	ModuleSunset:            CategoryModule,
	ModuleWrongKind:         CategoryModule,
	ModuleAlreadyInstalled:  CategoryModule,
	InvalidDerivativeParams: CategoryModule,

	RedisConfigError:        CategoryInfrastructure,
	RedisConnectionError:    CategoryInfrastructure,
	RedisDisconnectionError: CategoryInfrastructure,
	RedisPingError:          CategoryInfrastructure,
	RedisGetError:           CategoryInfrastructure,
	RedisSetError:           CategoryInfrastructure,
	RedisDelError:           CategoryInfrastructure,
	KafkaPublishError:       CategoryInfrastructure,
}

// Classify returns the category of an error code.
func Classify(code ErrorCode) Category {
	if category, ok := codeCategories[code]; ok {
		return category
	}
	return CategoryUnknown
}

// ClassifyError returns the category of an error if it carries a known code.
func ClassifyError(err error) Category {
	details, ok := err.(*ErrorDetails)
	if !ok {
		return CategoryUnknown
	}
	return Classify(ErrorCode(details.Code))
}

// BaseError is an `error` type containing an array of ErrorDetails.
// It aggregates per-item failures of a batched operation into one error.
type BaseError struct {
	details []*ErrorDetails
}

// NewBaseError create BaseError with ErrorDetails
func NewBaseError(details ...*ErrorDetails) *BaseError {
	return &BaseError{details: details}
}

// AddErrorDetails add more ErrorDetails to BaseError
func (b *BaseError) AddErrorDetails(errors ...*ErrorDetails) {
	b.details = append(b.details, errors...)
}

// GetDetails get array ErrorDetails on BaseError
func (b *BaseError) GetDetails() []*ErrorDetails {
	return b.details
}

// HasErrors reports whether any details have been collected.
func (b *BaseError) HasErrors() bool {
	return len(b.details) > 0
}

// Error implement error interface
func (b *BaseError) Error() string {
	buff := bytes.NewBufferString("")

	buff.WriteString("Error on\n")
	for _, err := range b.details {
		buff.WriteString("code: ")
		buff.WriteString(err.Code)
		buff.WriteString("; error: ")
		buff.WriteString(err.Error())
		buff.WriteString("; field: ")
		buff.WriteString(err.Field)
		buff.WriteString("\n")
	}

	return strings.TrimSpace(buff.String())
}

// IsAllCodeEqual check if all ErrorDetails code is equal with given code
func (b *BaseError) IsAllCodeEqual(code string) bool {
	if len(b.details) == 0 {
		return false
	}

	for _, d := range b.details {
		if d.Code != code {
			return false
		}
	}
	return true
}

// IsAnyCodeEqual check if any ErrorDetails code is equal with given code
func (b *BaseError) IsAnyCodeEqual(code string) bool {
	for _, d := range b.details {
		if d.Code == code {
			return true
		}
	}
	return false
}
