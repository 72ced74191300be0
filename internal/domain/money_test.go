package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	m, err := NewMoney(1050, "USD")
	require.NoError(t, err)
	assert.Equal(t, int64(1050), m.Amount())
	assert.Equal(t, "USD", m.Currency())

	_, err = NewMoney(-1, "USD")
	assert.ErrorIs(t, err, ErrNegativeMoney)

	_, err = NewMoney(100, "")
	assert.ErrorIs(t, err, ErrInvalidCurrency)
}

func TestMoney_Arithmetic(t *testing.T) {
	a := MustMoney(1000)
	b := MustMoney(250)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, int64(1250), sum.Amount())

	diff, err := a.Subtract(b)
	require.NoError(t, err)
	assert.Equal(t, int64(750), diff.Amount())

	product, err := b.Multiply(4)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), product.Amount())
}

func TestMoney_Percent(t *testing.T) {
	// 10% of 20.00 is 2.00
	m := MustMoney(2000)
	pct, err := m.Percent(10)
	require.NoError(t, err)
	assert.Equal(t, int64(200), pct.Amount())

	// rounds to the nearest cent
	odd := MustMoney(999)
	pct, err = odd.Percent(10)
	require.NoError(t, err)
	assert.Equal(t, int64(100), pct.Amount())

	_, err = m.Percent(-1)
	assert.ErrorIs(t, err, ErrInvalidPercent)
	_, err = m.Percent(101)
	assert.ErrorIs(t, err, ErrInvalidPercent)
}

func TestMoney_CurrencyMismatch(t *testing.T) {
	usd := MustMoney(100)
	eur, err := NewMoney(100, "EUR")
	require.NoError(t, err)

	_, err = usd.Add(eur)
	assert.ErrorIs(t, err, ErrCurrencyMismatch)
	_, err = usd.Subtract(eur)
	assert.ErrorIs(t, err, ErrCurrencyMismatch)
	_, err = usd.GreaterThanOrEqual(eur)
	assert.ErrorIs(t, err, ErrCurrencyMismatch)
}

func TestMoney_Comparisons(t *testing.T) {
	small := MustMoney(100)
	big := MustMoney(200)

	ok, err := big.GreaterThanOrEqual(small)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = big.GreaterThanOrEqual(big)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = small.LessThan(big)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.True(t, small.Equals(MustMoney(100)))
	assert.False(t, small.Equals(big))
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "10.50 USD", MustMoney(1050).String())
	assert.Equal(t, "0.00 USD", ZeroMoney(DefaultCurrency).String())
}

func TestMoney_BSONRoundTrip(t *testing.T) {
	original := MustMoney(1850)

	typ, data, err := original.MarshalBSONValue()
	require.NoError(t, err)

	var decoded Money
	require.NoError(t, decoded.UnmarshalBSONValue(typ, data))
	assert.True(t, original.Equals(decoded))
}
