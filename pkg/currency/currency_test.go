package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "₹64.99", FormatPrice(DefaultSymbol, 64.99))
	assert.Equal(t, "₹120.00", FormatPrice(DefaultSymbol, 120))
	assert.Equal(t, "$0.50", FormatPrice("$", 0.5))
	assert.Equal(t, "₹9.99", FormatPrice(DefaultSymbol, 9.99))
}
