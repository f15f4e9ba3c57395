package keeper

import (
	"sync/atomic"

	"github.com/Neurowealth/NeuroWealth-Smartcontract/x/vault/types"
)

// ---------------------------------------------------------------------------
// Module Metrics -- in-process telemetry for the vault module
// ---------------------------------------------------------------------------
//
// All counters use sync/atomic for lock-free concurrent access. Metrics are
// in-memory only; exporters are out of scope for the module. Counters reset
// deterministically for testing.
// ---------------------------------------------------------------------------

// AtomicCounter is a lock-free monotonic counter using sync/atomic.
type AtomicCounter struct {
	value int64
}

// Inc increments the counter by 1.
func (c *AtomicCounter) Inc() { atomic.AddInt64(&c.value, 1) }

// Add increments the counter by delta.
func (c *AtomicCounter) Add(delta int64) { atomic.AddInt64(&c.value, delta) }

// Get returns the current counter value.
func (c *AtomicCounter) Get() int64 { return atomic.LoadInt64(&c.value) }

// Reset sets the counter to 0.
func (c *AtomicCounter) Reset() { atomic.StoreInt64(&c.value, 0) }

// AtomicGauge is a lock-free gauge (can go up or down).
type AtomicGauge struct {
	value int64
}

// Set stores a new value.
func (g *AtomicGauge) Set(v int64) { atomic.StoreInt64(&g.value, v) }

// Get returns the current value.
func (g *AtomicGauge) Get() int64 { return atomic.LoadInt64(&g.value) }

// VaultMetrics aggregates the vault module's in-process telemetry.
type VaultMetrics struct {
	DepositsAccepted     AtomicCounter
	DepositsBelowMinimum AtomicCounter
	DepositsAboveMaximum AtomicCounter
	DepositedTotal       AtomicCounter

	LimitUpdates             AtomicCounter
	RejectedLimitChanges     AtomicCounter
	UnauthorizedLimitChanges AtomicCounter

	CurrentMinDeposit AtomicGauge
	CurrentMaxDeposit AtomicGauge
}

// NewVaultMetrics creates a zeroed metrics set.
func NewVaultMetrics() *VaultMetrics {
	return &VaultMetrics{}
}

// ObserveBounds records the newly applied deposit bounds. Bounds wider than
// 63 bits are skipped; the gauge is telemetry, not the source of truth.
func (m *VaultMetrics) ObserveBounds(params types.Params) {
	if params.MinDeposit.IsInt64() {
		m.CurrentMinDeposit.Set(params.MinDeposit.Int64())
	}
	if params.MaxDeposit.IsInt64() {
		m.CurrentMaxDeposit.Set(params.MaxDeposit.Int64())
	}
}

// MetricsSnapshot is a point-in-time copy of all counters and gauges.
type MetricsSnapshot struct {
	DepositsAccepted     int64 `json:"deposits_accepted"`
	DepositsBelowMinimum int64 `json:"deposits_below_minimum"`
	DepositsAboveMaximum int64 `json:"deposits_above_maximum"`
	DepositedTotal       int64 `json:"deposited_total"`

	LimitUpdates             int64 `json:"limit_updates"`
	RejectedLimitChanges     int64 `json:"rejected_limit_changes"`
	UnauthorizedLimitChanges int64 `json:"unauthorized_limit_changes"`

	CurrentMinDeposit int64 `json:"current_min_deposit"`
	CurrentMaxDeposit int64 `json:"current_max_deposit"`
}

// Snapshot returns a consistent-enough copy for reporting. Individual loads
// are atomic; the snapshot as a whole is not a transaction.
func (m *VaultMetrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		DepositsAccepted:         m.DepositsAccepted.Get(),
		DepositsBelowMinimum:     m.DepositsBelowMinimum.Get(),
		DepositsAboveMaximum:     m.DepositsAboveMaximum.Get(),
		DepositedTotal:           m.DepositedTotal.Get(),
		LimitUpdates:             m.LimitUpdates.Get(),
		RejectedLimitChanges:     m.RejectedLimitChanges.Get(),
		UnauthorizedLimitChanges: m.UnauthorizedLimitChanges.Get(),
		CurrentMinDeposit:        m.CurrentMinDeposit.Get(),
		CurrentMaxDeposit:        m.CurrentMaxDeposit.Get(),
	}
}

// Reset zeroes all counters and gauges.
func (m *VaultMetrics) Reset() {
	m.DepositsAccepted.Reset()
	m.DepositsBelowMinimum.Reset()
	m.DepositsAboveMaximum.Reset()
	m.DepositedTotal.Reset()
	m.LimitUpdates.Reset()
	m.RejectedLimitChanges.Reset()
	m.UnauthorizedLimitChanges.Reset()
	m.CurrentMinDeposit.Set(0)
	m.CurrentMaxDeposit.Set(0)
}
