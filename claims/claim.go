// Package claims implements the claim-ticket withdrawal discipline on top
// of a custodial pool. A deposit mints a claim owned by the depositor; the
// claim is the sole proof of entitlement to the deposited value, bearer
// style. Redemption requires presenting the claim and matching its owner.
package claims

import (
	"sync"

	"github.com/rustyeddy/custodian/ledger"
)

// Claim is one open depositor position. It holds the remaining redeemable
// amount attributed to its owner. Losing the handle forfeits the funds;
// there is no owner-indexed recovery path.
type Claim struct {
	mu       sync.Mutex
	id       string
	owner    ledger.Identity
	amount   ledger.Amount
	closed   bool
	registry *Registry
}

func (c *Claim) ID() string { return c.id }

func (c *Claim) Owner() ledger.Identity { return c.owner }

// Amount reports the claim's remaining redeemable quantity. A closed claim
// reports zero.
func (c *Claim) Amount() ledger.Amount {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.amount
}

// Closed reports whether the claim has reached its terminal state.
func (c *Claim) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}
