package ledger

import "fmt"

// Funds is a bearer unit of fungible value, the ledger's only value
// transfer primitive. Value moves between units via Split and Merge;
// nothing in the ledger fabricates or destroys value outside of those
// two calls. A Funds unit belongs to whoever holds the pointer.
type Funds struct {
	amount Amount
}

// NewFunds mints a unit holding amount. Minting is the host's privilege;
// a negative amount is a programming error.
func NewFunds(amount Amount) *Funds {
	if amount < 0 {
		panic("ledger: negative funds")
	}
	return &Funds{amount: amount}
}

// Value reports the quantity currently held by the unit.
func (f *Funds) Value() Amount {
	return f.amount
}

// Split carves exactly amount out of f, returning it as a new unit and
// leaving the remainder in f.
func (f *Funds) Split(amount Amount) (*Funds, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("split %d: %w", amount, ErrInvalidAmount)
	}
	if f.amount < amount {
		return nil, fmt.Errorf("split %d from %d: %w", amount, f.amount, ErrInsufficientSource)
	}

	f.amount -= amount
	return &Funds{amount: amount}, nil
}

// Merge absorbs other into f, leaving other empty.
func (f *Funds) Merge(other *Funds) {
	f.amount += other.amount
	other.amount = 0
}
