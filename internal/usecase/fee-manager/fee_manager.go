package feemanager

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	auctionv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/auction/v1"
	bankv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/bank/v1"
	feesv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/fees/v1"
	"github.com/muhammadchandra19/auctionhouse/pkg/errors"
)

// Manager holds the fee policy per auction type, the fee each curator has
// elected per type, and the pull-based rewards ledger. Fee writes are gated
// on the admin address; rewards are claimed by their recipient.
type Manager struct {
	mu                sync.RWMutex
	admin             bankv1.Address
	protocolRecipient bankv1.Address
	policies          map[string]feesv1.Fees
	curatorFees       map[string]uint64
	rewards           map[bankv1.Address]map[string]decimal.Decimal
}

// NewManager creates a fee manager with the given admin and protocol
// treasury recipient.
func NewManager(admin, protocolRecipient bankv1.Address) *Manager {
	return &Manager{
		admin:             admin,
		protocolRecipient: protocolRecipient,
		policies:          make(map[string]feesv1.Fees),
		curatorFees:       make(map[string]uint64),
		rewards:           make(map[bankv1.Address]map[string]decimal.Decimal),
	}
}

// Fees returns the fee policy for an auction type. Types without an explicit
// policy read as all-zero.
func (m *Manager) Fees(ctx context.Context, ref auctionv1.Ref) feesv1.Fees {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.policies[ref.String()]
}

// SetFee updates one component of the fee policy for an auction type.
// Admin only.
func (m *Manager) SetFee(ctx context.Context, caller bankv1.Address, ref auctionv1.Ref, kind feesv1.FeeKind, bps uint64) error {
	if caller != m.admin {
		return errors.NewErrorDetails("caller is not the fee admin", string(errors.NotAdmin), "caller")
	}
	if bps >= feesv1.Denominator {
		return errors.NewErrorDetails(
			fmt.Sprintf("fee %d exceeds maximum of %d", bps, feesv1.Denominator),
			string(errors.InvalidFee),
			"bps",
		)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := ref.String()
	policy := m.policies[key]
	switch kind {
	case feesv1.FeeKindProtocol:
		policy.Protocol = bps
	case feesv1.FeeKindReferrer:
		policy.Referrer = bps
	case feesv1.FeeKindMaxCurator:
		policy.MaxCurator = bps
	default:
		return errors.NewErrorDetails(
			fmt.Sprintf("unknown fee kind %q", kind),
			string(errors.InvalidParams),
			"kind",
		)
	}
	m.policies[key] = policy
	return nil
}

// SetCuratorFee records the fee a curator elects to charge for lots of an
// auction type. The election is capped by the type's MaxCurator policy and
// applies to lots curated after the change, never retroactively.
func (m *Manager) SetCuratorFee(ctx context.Context, caller bankv1.Address, ref auctionv1.Ref, bps uint64) error {
	if caller.IsZero() {
		return errors.NewErrorDetails("caller cannot be zero", string(errors.InvalidParams), "caller")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	policy := m.policies[ref.String()]
	if bps > policy.MaxCurator {
		return errors.NewErrorDetails(
			fmt.Sprintf("curator fee %d exceeds maximum of %d", bps, policy.MaxCurator),
			string(errors.InvalidFee),
			"bps",
		)
	}

	m.curatorFees[curatorKey(ref, caller)] = bps
	return nil
}

// CuratorFee returns the fee a curator has elected for an auction type.
// Curators with no election read as zero.
func (m *Manager) CuratorFee(ctx context.Context, ref auctionv1.Ref, curator bankv1.Address) uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.curatorFees[curatorKey(ref, curator)]
}

// Accrue adds amount of asset to a recipient's claimable rewards.
// Zero recipients and non-positive amounts are ignored.
func (m *Manager) Accrue(ctx context.Context, recipient bankv1.Address, asset string, amount decimal.Decimal) {
	if recipient.IsZero() || amount.Sign() <= 0 {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	held, ok := m.rewards[recipient]
	if !ok {
		held = make(map[string]decimal.Decimal)
		m.rewards[recipient] = held
	}
	held[asset] = held[asset].Add(amount)
}

// Rewards returns the claimable rewards of asset for a recipient.
func (m *Manager) Rewards(ctx context.Context, recipient bankv1.Address, asset string) decimal.Decimal {
	m.mu.RLock()
	defer m.mu.RUnlock()

	held, ok := m.rewards[recipient]
	if !ok {
		return decimal.Zero
	}
	return held[asset]
}

// ClaimRewards zeroes the caller's claimable rewards of asset and returns
// the claimed amount. The router moves the funds.
func (m *Manager) ClaimRewards(ctx context.Context, caller bankv1.Address, asset string) (decimal.Decimal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	held, ok := m.rewards[caller]
	if !ok || held[asset].IsZero() {
		return decimal.Zero, errors.NewErrorDetails(
			fmt.Sprintf("no %s rewards for %s", asset, caller),
			string(errors.NothingToClaim),
			"asset",
		)
	}

	claimed := held[asset]
	delete(held, asset)
	if len(held) == 0 {
		delete(m.rewards, caller)
	}
	return claimed, nil
}

// ProtocolRecipient returns the treasury address protocol fees accrue to.
func (m *Manager) ProtocolRecipient() bankv1.Address {
	return m.protocolRecipient
}

func curatorKey(ref auctionv1.Ref, curator bankv1.Address) string {
	return ref.String() + ":" + string(curator)
}

type managerState struct {
	Policies    map[string]feesv1.Fees                        `json:"policies"`
	CuratorFees map[string]uint64                             `json:"curator_fees"`
	Rewards     map[bankv1.Address]map[string]decimal.Decimal `json:"rewards"`
}

// Snapshot serializes the fee policies, curator elections and rewards ledger.
// The admin and protocol recipient come from configuration, not state.
func (m *Manager) Snapshot() ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return json.Marshal(managerState{
		Policies:    m.policies,
		CuratorFees: m.curatorFees,
		Rewards:     m.rewards,
	})
}

// Restore replaces the manager state with a previously taken snapshot.
func (m *Manager) Restore(data []byte) error {
	var state managerState
	if err := json.Unmarshal(data, &state); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.policies = state.Policies
	if m.policies == nil {
		m.policies = make(map[string]feesv1.Fees)
	}
	m.curatorFees = state.CuratorFees
	if m.curatorFees == nil {
		m.curatorFees = make(map[string]uint64)
	}
	m.rewards = state.Rewards
	if m.rewards == nil {
		m.rewards = make(map[bankv1.Address]map[string]decimal.Decimal)
	}
	return nil
}
