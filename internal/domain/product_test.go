package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	p, err := NewProduct("PROD-001", "Milk 1L", "carton", MustMoney(250), 0)
	require.NoError(t, err)
	assert.Equal(t, "PROD-001", p.Code())
	assert.Equal(t, "Milk 1L", p.Name())
	assert.Equal(t, "carton", p.Unit())
	assert.True(t, p.Price().Equals(MustMoney(250)))

	_, err = NewProduct("", "Milk 1L", "carton", MustMoney(250), 0)
	assert.ErrorIs(t, err, ErrEmptyProductCode)

	_, err = NewProduct("PROD-001", "", "carton", MustMoney(250), 0)
	assert.ErrorIs(t, err, ErrEmptyProductName)

	_, err = NewProduct("PROD-001", "Milk 1L", "carton", MustMoney(250), -1)
	assert.ErrorIs(t, err, ErrInvalidDiscount)

	_, err = NewProduct("PROD-001", "Milk 1L", "carton", MustMoney(250), 101)
	assert.ErrorIs(t, err, ErrInvalidDiscount)
}

func TestProduct_DiscountedPrice(t *testing.T) {
	p, err := NewProduct("PROD-001", "Milk 1L", "carton", MustMoney(1000), 10)
	require.NoError(t, err)
	assert.True(t, p.DiscountedPrice().Equals(MustMoney(900)))

	free, err := NewProduct("PROD-002", "Sample", "unit", MustMoney(1000), 100)
	require.NoError(t, err)
	assert.True(t, free.DiscountedPrice().IsZero())
}

func TestProduct_Equals(t *testing.T) {
	a, err := NewProduct("PROD-001", "Milk 1L", "carton", MustMoney(250), 0)
	require.NoError(t, err)
	b, err := NewProduct("PROD-001", "Renamed", "bottle", MustMoney(300), 5)
	require.NoError(t, err)
	c, err := NewProduct("PROD-002", "Milk 1L", "carton", MustMoney(250), 0)
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(nil))
}
