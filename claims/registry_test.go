package claims

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/custodian/journal"
	"github.com/rustyeddy/custodian/ledger"
	"github.com/rustyeddy/custodian/pool"
)

func newRegistry(t *testing.T) (*Registry, *pool.Pool) {
	t.Helper()
	p := pool.NewWithPolicy(journal.Discard(), pool.Policy{OpenWithdrawals: false})
	return NewRegistry(p), p
}

func mintClaim(t *testing.T, r *Registry, amount ledger.Amount, owner ledger.Identity) *Claim {
	t.Helper()
	c, err := r.DepositWithClaim(ledger.NewFunds(amount), owner)
	require.NoError(t, err)
	return c
}

func TestDepositWithClaim(t *testing.T) {
	t.Parallel()

	r, p := newRegistry(t)

	c, err := r.DepositWithClaim(ledger.NewFunds(100), "alice")
	require.NoError(t, err)

	assert.NotEmpty(t, c.ID())
	assert.Equal(t, ledger.Identity("alice"), c.Owner())
	assert.Equal(t, ledger.Amount(100), c.Amount())
	assert.False(t, c.Closed())

	assert.Equal(t, ledger.Amount(100), p.Balance())
	assert.Equal(t, ledger.Amount(100), p.TotalDeposits())
	assert.Equal(t, ledger.Amount(100), r.Outstanding())
	assert.Equal(t, 1, r.LiveClaims())
}

func TestDepositWithClaimEmptySource(t *testing.T) {
	t.Parallel()

	r, p := newRegistry(t)

	_, err := r.DepositWithClaim(ledger.NewFunds(0), "alice")
	assert.ErrorIs(t, err, ledger.ErrInvalidAmount)
	assert.Equal(t, ledger.Amount(0), p.Balance())
	assert.Equal(t, 0, r.LiveClaims())
}

func TestRedeemFull(t *testing.T) {
	t.Parallel()

	r, p := newRegistry(t)
	c := mintClaim(t, r, 100, "alice")

	out, err := r.RedeemFull(c, "alice")
	require.NoError(t, err)

	assert.Equal(t, ledger.Amount(100), out.Value())
	assert.Equal(t, ledger.Amount(0), p.Balance())
	assert.Equal(t, ledger.Amount(0), p.TotalDeposits())
	assert.True(t, c.Closed())
	assert.Equal(t, ledger.Amount(0), c.Amount())
	assert.Equal(t, 0, r.LiveClaims())
	assert.Equal(t, ledger.Amount(0), r.Outstanding())
}

func TestRedeemFullTerminality(t *testing.T) {
	t.Parallel()

	r, _ := newRegistry(t)
	c := mintClaim(t, r, 100, "alice")

	_, err := r.RedeemFull(c, "alice")
	require.NoError(t, err)

	_, err = r.RedeemFull(c, "alice")
	assert.ErrorIs(t, err, ledger.ErrInvalidClaim)

	_, err = r.RedeemPartial(c, 10, "alice")
	assert.ErrorIs(t, err, ledger.ErrInvalidClaim)
}

func TestRedeemUnauthorized(t *testing.T) {
	t.Parallel()

	r, p := newRegistry(t)
	c := mintClaim(t, r, 100, "alice")

	_, err := r.RedeemFull(c, "bob")
	assert.ErrorIs(t, err, ledger.ErrUnauthorized)

	_, err = r.RedeemPartial(c, 40, "bob")
	assert.ErrorIs(t, err, ledger.ErrUnauthorized)

	// Authorization is checked before sufficiency: a stranger asking for
	// far more than the claim holds still gets the ownership error.
	_, err = r.RedeemPartial(c, 1_000_000, "bob")
	assert.ErrorIs(t, err, ledger.ErrUnauthorized)

	assert.Equal(t, ledger.Amount(100), c.Amount())
	assert.Equal(t, ledger.Amount(100), p.Balance())
}

func TestRedeemPartialBookkeeping(t *testing.T) {
	t.Parallel()

	r, p := newRegistry(t)
	c := mintClaim(t, r, 100, "alice")

	out, err := r.RedeemPartial(c, 40, "alice")
	require.NoError(t, err)
	assert.Equal(t, ledger.Amount(40), out.Value())
	assert.Equal(t, ledger.Amount(60), c.Amount())
	assert.Equal(t, ledger.Amount(60), p.Balance())
	assert.False(t, c.Closed())
	assert.Equal(t, 1, r.LiveClaims())

	_, err = r.RedeemPartial(c, 70, "alice")
	assert.ErrorIs(t, err, ledger.ErrInsufficientClaim)
	assert.Equal(t, ledger.Amount(60), c.Amount())
	assert.Equal(t, ledger.Amount(60), p.Balance())
}

func TestRedeemPartialInvalidAmount(t *testing.T) {
	t.Parallel()

	r, _ := newRegistry(t)
	c := mintClaim(t, r, 100, "alice")

	_, err := r.RedeemPartial(c, 0, "alice")
	assert.ErrorIs(t, err, ledger.ErrInvalidAmount)

	_, err = r.RedeemPartial(c, -10, "alice")
	assert.ErrorIs(t, err, ledger.ErrInvalidAmount)

	assert.Equal(t, ledger.Amount(100), c.Amount())
}

func TestRedeemPartialDrainsToZeroClosesClaim(t *testing.T) {
	t.Parallel()

	r, p := newRegistry(t)
	c := mintClaim(t, r, 100, "alice")

	_, err := r.RedeemPartial(c, 60, "alice")
	require.NoError(t, err)

	out, err := r.RedeemPartial(c, 40, "alice")
	require.NoError(t, err)
	assert.Equal(t, ledger.Amount(40), out.Value())

	assert.True(t, c.Closed())
	assert.Equal(t, 0, r.LiveClaims())
	assert.Equal(t, ledger.Amount(0), p.Balance())

	_, err = r.RedeemPartial(c, 1, "alice")
	assert.ErrorIs(t, err, ledger.ErrInvalidClaim)
}

func TestForeignClaimRejected(t *testing.T) {
	t.Parallel()

	r1, _ := newRegistry(t)
	r2, _ := newRegistry(t)
	c := mintClaim(t, r1, 100, "alice")

	_, err := r2.RedeemFull(c, "alice")
	assert.ErrorIs(t, err, ledger.ErrInvalidClaim)
	assert.Equal(t, ledger.Amount(100), c.Amount())
}

// Solvency: the pool balance covers the sum of live claim amounts in every
// reachable state, and with open withdrawals disabled the two stay equal.
func TestSolvencyInvariant(t *testing.T) {
	t.Parallel()

	r, p := newRegistry(t)

	check := func() {
		t.Helper()
		assert.GreaterOrEqual(t, p.Balance(), r.Outstanding())
		assert.Equal(t, p.Balance(), r.Outstanding())
	}

	a := mintClaim(t, r, 100, "alice")
	check()
	b := mintClaim(t, r, 250, "bob")
	check()

	_, err := r.RedeemPartial(a, 40, "alice")
	require.NoError(t, err)
	check()

	_, err = r.RedeemFull(b, "bob")
	require.NoError(t, err)
	check()

	_, err = r.RedeemFull(a, "alice")
	require.NoError(t, err)
	check()

	assert.Equal(t, ledger.Amount(0), p.Balance())
}

// With open withdrawals enabled alongside claims, a direct drain can leave
// the registry holding claims the pool can no longer cover; redemption then
// surfaces the corruption as an insufficient-balance error and leaves the
// claim untouched.
func TestRedeemAfterPoolDrained(t *testing.T) {
	t.Parallel()

	p := pool.New(journal.Discard())
	r := NewRegistry(p)
	c := mintClaim(t, r, 100, "alice")

	_, err := p.WithdrawExact(80, "mallory")
	require.NoError(t, err)

	_, err = r.RedeemFull(c, "alice")
	assert.ErrorIs(t, err, ledger.ErrInsufficientBalance)
	assert.Equal(t, ledger.Amount(100), c.Amount())
	assert.False(t, c.Closed())
}

func TestClaimConservation(t *testing.T) {
	t.Parallel()

	r, p := newRegistry(t)
	mintClaim(t, r, 500, "carol")

	balance := p.Balance()
	deposits := p.TotalDeposits()

	c := mintClaim(t, r, 100, "alice")
	_, err := r.RedeemFull(c, "alice")
	require.NoError(t, err)

	assert.Equal(t, balance, p.Balance())
	assert.Equal(t, deposits, p.TotalDeposits())
}
