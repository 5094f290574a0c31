package pool

import (
	"fmt"

	"github.com/rustyeddy/custodian/journal"
	"github.com/rustyeddy/custodian/ledger"
)

// Absorb and Release are the claim-ticket discipline's entry points into
// the pool. The claim registry authorizes the caller before it gets here;
// the pool only enforces its own balance invariants. They are deliberately
// separate from the open-discipline Deposit/Withdraw paths, which carry a
// different trust model.

// Absorb joins src's entire value into the pool on behalf of a claim.
func (p *Pool) Absorb(src *ledger.Funds, from ledger.Identity, claimID string) (ledger.Amount, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	amount := src.Value()
	if amount <= 0 {
		return 0, fmt.Errorf("absorb: %w", ledger.ErrInvalidAmount)
	}

	p.holdings.Merge(src)
	p.deposits += amount

	p.record(journal.KindDeposit, from, amount, claimID)
	return amount, nil
}

// Release draws amount from the pool against a redeemed claim.
func (p *Pool) Release(amount ledger.Amount, to ledger.Identity, claimID string) (*ledger.Funds, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if amount <= 0 {
		return nil, fmt.Errorf("release %d: %w", amount, ledger.ErrInvalidAmount)
	}
	if p.holdings.Value() < amount {
		return nil, fmt.Errorf("release %d of %d: %w", amount, p.holdings.Value(), ledger.ErrInsufficientBalance)
	}

	out, err := p.holdings.Split(amount)
	if err != nil {
		return nil, fmt.Errorf("release: %w", err)
	}
	p.deposits -= amount

	p.record(journal.KindWithdrawal, to, amount, claimID)
	return out, nil
}
