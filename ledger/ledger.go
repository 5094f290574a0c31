package ledger

// Amount is a quantity of fungible value in its smallest indivisible unit.
type Amount = int64

// Identity is an opaque caller token supplied by the host. The ledger only
// ever compares identities for equality; it never inspects them.
type Identity string
