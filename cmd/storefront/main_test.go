package main

import (
	"strings"
	"testing"

	"solestore/internal/cart"
	"solestore/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLineNumber(t *testing.T) {
	t.Run("1-based to 0-based", func(t *testing.T) {
		index, err := parseLineNumber("1")
		require.NoError(t, err)
		assert.Equal(t, 0, index)

		index, err = parseLineNumber("3")
		require.NoError(t, err)
		assert.Equal(t, 2, index)
	})

	t.Run("Not a number", func(t *testing.T) {
		_, err := parseLineNumber("first")
		assert.Error(t, err)
	})
}

func TestIsYes(t *testing.T) {
	assert.True(t, isYes("y\n"))
	assert.True(t, isYes("Y\n"))
	assert.True(t, isYes("  yes \n"))
	assert.False(t, isYes("\n"))
	assert.False(t, isYes("n\n"))
	assert.False(t, isYes("nope\n"))
}

func TestRenderCart(t *testing.T) {
	t.Run("Empty cart", func(t *testing.T) {
		var out strings.Builder
		renderCart(&out, nil, 0, 0)
		assert.Contains(t, out.String(), "Your cart is empty.")
	})

	t.Run("Lines are 1-based with subtotals", func(t *testing.T) {
		var out strings.Builder
		lines := []cart.Line{
			{Product: catalog.Product{ID: "a", Name: "Air Runner", Price: 12000}, Quantity: 2},
			{Product: catalog.Product{ID: "b", Name: "Chelsea Boot", Price: 18500}, Quantity: 1},
		}
		renderCart(&out, lines, 42500, 3)

		rendered := out.String()
		assert.Contains(t, rendered, "1. ")
		assert.Contains(t, rendered, "Air Runner")
		assert.Contains(t, rendered, "₦24,000")
		assert.Contains(t, rendered, "2. ")
		assert.Contains(t, rendered, "₦42,500")
		assert.Contains(t, rendered, "3 item(s)")
	})
}
