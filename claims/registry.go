package claims

import (
	"fmt"
	"sync"

	"github.com/rustyeddy/custodian/internal/id"
	"github.com/rustyeddy/custodian/ledger"
	"github.com/rustyeddy/custodian/pool"
)

// Registry issues and redeems claims against one pool. It keeps the
// solvency invariant: the pool's balance always covers the sum of all
// live claim amounts, because value only enters a claim by entering the
// pool and only leaves the pool by draining a claim.
//
// Lock order is claim then registry; the registry mutex guards the live
// set and the outstanding aggregate, never a claim's own fields.
type Registry struct {
	pool *pool.Pool

	mu          sync.Mutex
	live        map[string]*Claim
	outstanding ledger.Amount
}

func NewRegistry(p *pool.Pool) *Registry {
	return &Registry{
		pool: p,
		live: make(map[string]*Claim),
	}
}

// DepositWithClaim joins src's entire value into the pool and mints a
// claim for it owned by owner. The returned claim is the depositor's only
// proof of entitlement.
func (r *Registry) DepositWithClaim(src *ledger.Funds, owner ledger.Identity) (*Claim, error) {
	cid := id.New()

	amount, err := r.pool.Absorb(src, owner, cid)
	if err != nil {
		return nil, fmt.Errorf("deposit with claim: %w", err)
	}

	c := &Claim{
		id:       cid,
		owner:    owner,
		amount:   amount,
		registry: r,
	}

	r.mu.Lock()
	r.live[cid] = c
	r.outstanding += amount
	r.mu.Unlock()

	return c, nil
}

// RedeemFull destroys the claim and releases its entire remaining amount
// to the caller.
func (r *Registry) RedeemFull(c *Claim, caller ledger.Identity) (*ledger.Funds, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.registry != r {
		return nil, fmt.Errorf("redeem full: %w", ledger.ErrInvalidClaim)
	}
	if c.owner != caller {
		return nil, fmt.Errorf("redeem full: caller %q is not owner: %w", caller, ledger.ErrUnauthorized)
	}

	// A failure here means the solvency invariant was broken upstream;
	// the claim stays untouched either way.
	out, err := r.pool.Release(c.amount, caller, c.id)
	if err != nil {
		return nil, fmt.Errorf("redeem full: %w", err)
	}

	amount := c.amount
	c.amount = 0
	c.closed = true
	r.drop(c.id, amount)

	return out, nil
}

// RedeemPartial releases amount of the claim's value to the caller,
// leaving the claim live with the remainder. Draining a claim to exactly
// zero closes it, same as a full redemption.
func (r *Registry) RedeemPartial(c *Claim, amount ledger.Amount, caller ledger.Identity) (*ledger.Funds, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.registry != r {
		return nil, fmt.Errorf("redeem partial: %w", ledger.ErrInvalidClaim)
	}
	if c.owner != caller {
		return nil, fmt.Errorf("redeem partial: caller %q is not owner: %w", caller, ledger.ErrUnauthorized)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("redeem partial %d: %w", amount, ledger.ErrInvalidAmount)
	}
	if c.amount < amount {
		return nil, fmt.Errorf("redeem partial %d of %d: %w", amount, c.amount, ledger.ErrInsufficientClaim)
	}

	out, err := r.pool.Release(amount, caller, c.id)
	if err != nil {
		return nil, fmt.Errorf("redeem partial: %w", err)
	}

	c.amount -= amount
	if c.amount == 0 {
		c.closed = true
		r.drop(c.id, amount)
	} else {
		r.mu.Lock()
		r.outstanding -= amount
		r.mu.Unlock()
	}

	return out, nil
}

// Outstanding reports the sum of all live claim amounts. The pool's
// balance is always at least this much.
func (r *Registry) Outstanding() ledger.Amount {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.outstanding
}

// LiveClaims reports how many claims are currently open.
func (r *Registry) LiveClaims() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.live)
}

func (r *Registry) drop(cid string, amount ledger.Amount) {
	r.mu.Lock()
	delete(r.live, cid)
	r.outstanding -= amount
	r.mu.Unlock()
}
