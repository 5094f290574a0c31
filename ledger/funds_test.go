package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFundsSplit(t *testing.T) {
	t.Parallel()

	f := NewFunds(100)

	part, err := f.Split(40)
	assert.NoError(t, err)
	assert.Equal(t, Amount(40), part.Value())
	assert.Equal(t, Amount(60), f.Value())
}

func TestFundsSplitEntireValue(t *testing.T) {
	t.Parallel()

	f := NewFunds(100)

	part, err := f.Split(100)
	assert.NoError(t, err)
	assert.Equal(t, Amount(100), part.Value())
	assert.Equal(t, Amount(0), f.Value())
}

func TestFundsSplitInvalidAmount(t *testing.T) {
	t.Parallel()

	f := NewFunds(100)

	_, err := f.Split(0)
	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.Equal(t, Amount(100), f.Value())

	_, err = f.Split(-5)
	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.Equal(t, Amount(100), f.Value())
}

func TestFundsSplitInsufficientSource(t *testing.T) {
	t.Parallel()

	f := NewFunds(100)

	_, err := f.Split(101)
	assert.ErrorIs(t, err, ErrInsufficientSource)
	assert.Equal(t, Amount(100), f.Value())
}

func TestFundsMerge(t *testing.T) {
	t.Parallel()

	a := NewFunds(60)
	b := NewFunds(40)

	a.Merge(b)
	assert.Equal(t, Amount(100), a.Value())
	assert.Equal(t, Amount(0), b.Value())
}

func TestFundsConservation(t *testing.T) {
	t.Parallel()

	f := NewFunds(100)
	part, err := f.Split(33)
	assert.NoError(t, err)

	f.Merge(part)
	assert.Equal(t, Amount(100), f.Value())
}

func TestNewFundsNegativePanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { NewFunds(-1) })
}
