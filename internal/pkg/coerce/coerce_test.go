package coerce

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNonNegative(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, NonNegative(-3.5))
	assert.Equal(t, 0.0, NonNegative(0))
	assert.Equal(t, 4.25, NonNegative(4.25))
}

func TestNonNegativeDecimal(t *testing.T) {
	t.Parallel()

	assert.True(t, NonNegativeDecimal(decimal.NewFromInt(-100)).IsZero())
	assert.True(t, NonNegativeDecimal(decimal.NewFromInt(100)).Equal(decimal.NewFromInt(100)))
}

func TestDecimalValue(t *testing.T) {
	t.Parallel()

	assert.True(t, DecimalValue(nil).IsZero())
	v := decimal.NewFromInt(5000)
	assert.True(t, DecimalValue(&v).Equal(v))
}
