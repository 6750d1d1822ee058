package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_FindLine(t *testing.T) {
	cart := &Cart{Lines: []CartLine{
		{VariantID: 1001, Quantity: 1},
		{VariantID: 1002, Quantity: 2},
	}}

	i, found := cart.FindLine(1002)
	require.True(t, found)
	assert.Equal(t, 1, i)

	_, found = cart.FindLine(9999)
	assert.False(t, found)
}

func TestCart_Clone(t *testing.T) {
	cart := &Cart{Lines: []CartLine{
		{ProductID: 42, VariantID: 1001, Quantity: 1},
	}}

	clone := cart.Clone()
	clone.Lines[0].Quantity = 99
	clone.Lines = append(clone.Lines, CartLine{VariantID: 1002})

	assert.Equal(t, 1, cart.Lines[0].Quantity)
	assert.Len(t, cart.Lines, 1)
}

func TestCart_TotalQuantity(t *testing.T) {
	cart := &Cart{Lines: []CartLine{
		{VariantID: 1001, Quantity: 2},
		{VariantID: 1002, Quantity: 3},
	}}

	assert.Equal(t, 5, cart.TotalQuantity())
	assert.False(t, cart.IsEmpty())
	assert.True(t, (&Cart{}).IsEmpty())
}

func TestLocalCart_Clone(t *testing.T) {
	cart := LocalCart{42: 2}

	clone := cart.Clone()
	clone[42] = 10
	clone[7] = 1

	assert.Equal(t, 2, cart[42])
	assert.NotContains(t, cart, 7)
}
