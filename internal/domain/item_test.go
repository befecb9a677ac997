package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItem_DecreaseStock(t *testing.T) {
	tests := []struct {
		name          string
		stock         int64
		n             int64
		expectedError error
		expectedStock int64
	}{
		{name: "exact stock", stock: 10, n: 10, expectedStock: 0},
		{name: "partial", stock: 10, n: 3, expectedStock: 7},
		{name: "zero units", stock: 10, n: 0, expectedStock: 10},
		{name: "one past floor", stock: 10, n: 11, expectedError: ErrInsufficientStock, expectedStock: 10},
		{name: "empty shelf", stock: 0, n: 1, expectedError: ErrInsufficientStock, expectedStock: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := &Item{Stock: tt.stock}
			err := item.DecreaseStock(tt.n)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedStock, item.Stock)
		})
	}
}

func TestItem_IncreaseStock(t *testing.T) {
	item := &Item{Stock: 5}
	item.IncreaseStock(7)
	assert.Equal(t, int64(12), item.Stock)
}

// Any mix of decrements and increments keeps stock at or above zero: a
// rejected decrement leaves the count exactly where it was.
func TestItem_StockFloorHolds(t *testing.T) {
	item := &Item{Stock: 4}

	deltas := []int64{-3, +2, -5, -3, +1, -1, -2}
	for _, d := range deltas {
		if d < 0 {
			before := item.Stock
			if err := item.DecreaseStock(-d); err != nil {
				assert.ErrorIs(t, err, ErrInsufficientStock)
				assert.Equal(t, before, item.Stock)
			}
		} else {
			item.IncreaseStock(d)
		}
		assert.GreaterOrEqual(t, item.Stock, int64(0))
	}
}
