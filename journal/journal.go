package journal

import (
	"time"

	"github.com/rustyeddy/custodian/ledger"
)

// Kind distinguishes the two event families the ledger emits.
type Kind string

const (
	KindDeposit    Kind = "deposit"
	KindWithdrawal Kind = "withdrawal"
)

// Event is one immutable audit fact: a single deposit into or withdrawal
// from a pool. Events are observational only; no ledger decision ever
// reads one back.
type Event struct {
	EventID  string
	PoolID   string
	Kind     Kind
	Identity ledger.Identity
	Amount   ledger.Amount
	ClaimID  string // empty for open-discipline operations
	Time     time.Time
}

// Journal is an append-only event sink. A RecordEvent failure never rolls
// back the balance mutation that produced the event; the trail is an audit
// artifact, not a consistency-bearing record.
type Journal interface {
	RecordEvent(Event) error
	Close() error
}

// Discard returns a Journal that drops every event. Useful for pools that
// do not keep an audit trail.
func Discard() Journal { return discard{} }

type discard struct{}

func (discard) RecordEvent(Event) error { return nil }
func (discard) Close() error            { return nil }
