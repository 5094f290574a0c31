// Package pool implements the shared custodial pool ledger. All deposited
// value is commingled into a single aggregate balance; attribution of that
// balance to individual depositors is handled one level up (see the claims
// package) or not at all (the open discipline, where any caller may draw
// against the pool).
package pool

import (
	"fmt"
	"sync"
	"time"

	"github.com/rustyeddy/custodian/internal/id"
	"github.com/rustyeddy/custodian/journal"
	"github.com/rustyeddy/custodian/ledger"
)

// Policy controls pool behavior that is a deployment choice rather than a
// ledger invariant.
type Policy struct {
	// OpenWithdrawals permits direct Withdraw calls with no ownership
	// proof, only a sufficient pool balance. Disable it to run a pool in
	// claim-ticket-only mode, where the claim registry is the sole
	// withdrawal surface.
	OpenWithdrawals bool

	// Clock supplies timestamps for journal events. The ledger never
	// interprets or validates them.
	Clock func() time.Time
}

func DefaultPolicy() Policy {
	return Policy{
		OpenWithdrawals: true,
		Clock:           time.Now,
	}
}

// Pool is one custodial pool instance. Every mutation is guarded by the
// pool's own mutex, so unrelated pools proceed concurrently.
type Pool struct {
	mu       sync.Mutex
	id       string
	holdings *ledger.Funds
	deposits ledger.Amount
	journal  journal.Journal
	policy   Policy
}

// New creates an empty pool with the default policy.
func New(j journal.Journal) *Pool {
	return NewWithPolicy(j, DefaultPolicy())
}

// NewWithPolicy creates an empty pool with an explicit policy.
func NewWithPolicy(j journal.Journal, pol Policy) *Pool {
	if j == nil {
		j = journal.Discard()
	}
	if pol.Clock == nil {
		pol.Clock = time.Now
	}

	return &Pool{
		id:       id.New(),
		holdings: ledger.NewFunds(0),
		journal:  j,
		policy:   pol,
	}
}

func (p *Pool) ID() string { return p.id }

// Balance reports the pool's aggregate held balance.
func (p *Pool) Balance() ledger.Amount {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.holdings.Value()
}

// TotalDeposits reports the currently-deposited gauge: it rises with every
// deposit and falls with every withdrawal, so it tracks outstanding value
// rather than lifetime volume.
func (p *Pool) TotalDeposits() ledger.Amount {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.deposits
}

// DepositExact moves exactly amount out of src into the pool.
func (p *Pool) DepositExact(src *ledger.Funds, amount ledger.Amount, from ledger.Identity) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	part, err := src.Split(amount)
	if err != nil {
		return fmt.Errorf("deposit: %w", err)
	}

	p.holdings.Merge(part)
	p.deposits += amount

	p.record(journal.KindDeposit, from, amount, "")
	return nil
}

// DepositAll moves src's entire value into the pool and reports how much
// that was.
func (p *Pool) DepositAll(src *ledger.Funds, from ledger.Identity) (ledger.Amount, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	amount := src.Value()
	if amount <= 0 {
		return 0, fmt.Errorf("deposit all: %w", ledger.ErrInvalidAmount)
	}

	p.holdings.Merge(src)
	p.deposits += amount

	p.record(journal.KindDeposit, from, amount, "")
	return amount, nil
}

// WithdrawExact draws amount from the pool and hands it to the caller.
// This is the open-discipline surface: no ownership proof is required,
// only pool policy and a sufficient balance.
func (p *Pool) WithdrawExact(amount ledger.Amount, to ledger.Identity) (*ledger.Funds, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.policy.OpenWithdrawals {
		return nil, fmt.Errorf("withdraw: open withdrawals disabled: %w", ledger.ErrUnauthorized)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("withdraw %d: %w", amount, ledger.ErrInvalidAmount)
	}
	if p.holdings.Value() < amount {
		return nil, fmt.Errorf("withdraw %d of %d: %w", amount, p.holdings.Value(), ledger.ErrInsufficientBalance)
	}

	out, err := p.holdings.Split(amount)
	if err != nil {
		return nil, fmt.Errorf("withdraw: %w", err)
	}
	p.deposits -= amount

	p.record(journal.KindWithdrawal, to, amount, "")
	return out, nil
}

// WithdrawAll drains the pool's entire balance to the caller.
func (p *Pool) WithdrawAll(to ledger.Identity) (*ledger.Funds, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.policy.OpenWithdrawals {
		return nil, fmt.Errorf("withdraw all: open withdrawals disabled: %w", ledger.ErrUnauthorized)
	}

	amount := p.holdings.Value()
	if amount <= 0 {
		return nil, fmt.Errorf("withdraw all: %w", ledger.ErrInvalidAmount)
	}

	out, err := p.holdings.Split(amount)
	if err != nil {
		return nil, fmt.Errorf("withdraw all: %w", err)
	}
	p.deposits -= amount

	p.record(journal.KindWithdrawal, to, amount, "")
	return out, nil
}

// record appends one audit event. The journal is advisory: a failed append
// must not undo the transfer it describes, so the error is dropped.
func (p *Pool) record(kind journal.Kind, who ledger.Identity, amount ledger.Amount, claimID string) {
	_ = p.journal.RecordEvent(journal.Event{
		EventID:  id.New(),
		PoolID:   p.id,
		Kind:     kind,
		Identity: who,
		Amount:   amount,
		ClaimID:  claimID,
		Time:     p.policy.Clock(),
	})
}
