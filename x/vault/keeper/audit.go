package keeper

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ---------------------------------------------------------------------------
// Structured audit trail
// ---------------------------------------------------------------------------
//
// Every administration action and rejected administration attempt is recorded
// as an AuditRecord: hashed for tamper detection, chained to the previous
// record, emitted as an SDK event, and written to the SDK logger. Records are
// append-only and deterministic for identical inputs.
// ---------------------------------------------------------------------------

// AuditSeverity classifies the importance of an audit event.
type AuditSeverity string

const (
	AuditSeverityInfo     AuditSeverity = "info"
	AuditSeverityWarning  AuditSeverity = "warning"
	AuditSeverityCritical AuditSeverity = "critical"
)

// AuditRecord is a single structured audit entry. The RecordHash is computed
// deterministically from all other fields plus the PreviousHash.
type AuditRecord struct {
	Sequence     uint64 `json:"sequence"`
	RecordHash   string `json:"record_hash"`
	PreviousHash string `json:"previous_hash"`

	Severity AuditSeverity `json:"severity"`
	Action   string        `json:"action"`

	BlockHeight int64  `json:"block_height"`
	Timestamp   string `json:"timestamp"` // RFC3339
	Actor       string `json:"actor"`

	Details map[string]string `json:"details"`
}

func (r *AuditRecord) computeHash() string {
	canonical := fmt.Sprintf(
		"seq=%d|prev=%s|sev=%s|act=%s|height=%d|ts=%s|actor=%s",
		r.Sequence, r.PreviousHash, r.Severity, r.Action,
		r.BlockHeight, r.Timestamp, r.Actor,
	)
	for _, k := range sortedKeys(r.Details) {
		canonical += fmt.Sprintf("|%s=%s", k, r.Details[k])
	}
	hash := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(hash[:])
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// AuditLogger maintains a hash-chained sequence of audit records and emits
// them to both the SDK event system and the structured logger.
type AuditLogger struct {
	mu           sync.Mutex
	sequence     uint64
	lastHash     string
	records      []AuditRecord
	bufferCap    int
	totalEmitted uint64
}

// NewAuditLogger creates a new audit logger with a bounded in-memory buffer.
// Records beyond the capacity displace the oldest in memory; every record is
// still emitted as an SDK event.
func NewAuditLogger(bufferCapacity int) *AuditLogger {
	if bufferCapacity <= 0 {
		bufferCapacity = 1000
	}
	return &AuditLogger{
		bufferCap: bufferCapacity,
		records:   make([]AuditRecord, 0, bufferCapacity),
		lastHash:  "genesis",
	}
}

// Record creates a new audit record chained to the previous one, buffers it,
// emits it as an SDK event, and logs it.
func (al *AuditLogger) Record(ctx sdk.Context, severity AuditSeverity, action, actor string, details map[string]string) *AuditRecord {
	al.mu.Lock()
	defer al.mu.Unlock()

	al.sequence++
	record := AuditRecord{
		Sequence:     al.sequence,
		PreviousHash: al.lastHash,
		Severity:     severity,
		Action:       action,
		BlockHeight:  ctx.BlockHeight(),
		Timestamp:    ctx.BlockTime().UTC().Format(time.RFC3339),
		Actor:        actor,
		Details:      details,
	}

	record.RecordHash = record.computeHash()
	al.lastHash = record.RecordHash

	if len(al.records) < al.bufferCap {
		al.records = append(al.records, record)
	} else {
		al.records[int(al.totalEmitted)%al.bufferCap] = record
	}
	al.totalEmitted++

	al.emitAuditEvent(ctx, &record)
	al.logRecord(ctx, &record)

	return &record
}

func (al *AuditLogger) emitAuditEvent(ctx sdk.Context, r *AuditRecord) {
	attrs := []sdk.Attribute{
		sdk.NewAttribute("sequence", strconv.FormatUint(r.Sequence, 10)),
		sdk.NewAttribute("record_hash", r.RecordHash),
		sdk.NewAttribute("previous_hash", r.PreviousHash),
		sdk.NewAttribute("severity", string(r.Severity)),
		sdk.NewAttribute("action", r.Action),
		sdk.NewAttribute("actor", r.Actor),
		sdk.NewAttribute("block_height", strconv.FormatInt(r.BlockHeight, 10)),
		sdk.NewAttribute("timestamp", r.Timestamp),
	}
	for _, k := range sortedKeys(r.Details) {
		attrs = append(attrs, sdk.NewAttribute("detail_"+k, r.Details[k]))
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent("vault_audit_record", attrs...))
}

func (al *AuditLogger) logRecord(ctx sdk.Context, r *AuditRecord) {
	kvs := []interface{}{
		"sequence", r.Sequence,
		"hash", r.RecordHash[:16],
		"action", r.Action,
		"actor", r.Actor,
		"block_height", r.BlockHeight,
	}
	for _, k := range sortedKeys(r.Details) {
		kvs = append(kvs, k, r.Details[k])
	}

	switch r.Severity {
	case AuditSeverityCritical:
		ctx.Logger().Error("AUDIT", kvs...)
	case AuditSeverityWarning:
		ctx.Logger().Warn("AUDIT", kvs...)
	default:
		ctx.Logger().Info("AUDIT", kvs...)
	}
}

// orderedLocked returns the buffered records oldest-first. After the buffer
// wraps, the oldest record sits at totalEmitted%bufferCap. Callers must hold
// the mutex.
func (al *AuditLogger) orderedLocked() []AuditRecord {
	out := make([]AuditRecord, 0, len(al.records))
	if al.totalEmitted <= uint64(len(al.records)) {
		return append(out, al.records...)
	}
	start := int(al.totalEmitted) % al.bufferCap
	out = append(out, al.records[start:]...)
	return append(out, al.records[:start]...)
}

// GetRecords returns a copy of the buffered audit records, oldest first.
func (al *AuditLogger) GetRecords() []AuditRecord {
	al.mu.Lock()
	defer al.mu.Unlock()

	return al.orderedLocked()
}

// VerifyChain recomputes every buffered record hash and checks the chain
// links in emission order. It returns the index of the first corrupted
// record, or -1. Once the buffer has displaced records, the oldest buffered
// record's predecessor is gone; its PreviousHash is taken as the anchor
// instead of "genesis".
func (al *AuditLogger) VerifyChain() int {
	al.mu.Lock()
	defer al.mu.Unlock()

	records := al.orderedLocked()
	prev := "genesis"
	if al.totalEmitted > uint64(len(records)) && len(records) > 0 {
		prev = records[0].PreviousHash
	}
	for i := range records {
		r := records[i]
		if r.PreviousHash != prev {
			return i
		}
		if r.computeHash() != r.RecordHash {
			return i
		}
		prev = r.RecordHash
	}
	return -1
}
