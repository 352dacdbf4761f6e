package pricing_test

import (
	"testing"

	"github.com/elitecrew/elite-crew-backend/internal/utils/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	testCases := []struct {
		name          string
		base          string
		expectedTDS   string
		expectedGST   string
		expectedTotal string
	}{
		{"round base price", "1000", "100", "180", "1280"},
		{"small price", "50", "5", "9", "64"},
		{"price needing rounding up", "99", "9.9", "17.82", "127"},  // 126.72 -> 127
		{"price needing rounding down", "33", "3.3", "5.94", "42"},  // 42.24 -> 42
		{"fractional base", "12.50", "1.25", "2.25", "16"},          // 16.00
		{"fractional result rounds down", "98.75", "9.875", "17.775", "126"}, // 126.40
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			base, err := decimal.NewFromString(tc.base)
			require.NoError(t, err)

			b := pricing.Compute(base)

			assert.True(t, b.Base.Equal(base), "base should pass through unchanged")
			assert.Equal(t, tc.expectedTDS, b.TDS.String())
			assert.Equal(t, tc.expectedGST, b.GST.String())
			assert.Equal(t, tc.expectedTotal, b.Total.String())
		})
	}
}

// The total must always equal round(base * 1.28) since the tax components are
// additive fixed rates.
func TestComputeTotalMatchesCombinedRate(t *testing.T) {
	combined := decimal.NewFromFloat(1.28)
	for _, raw := range []string{"1", "7", "19.99", "250", "1234.56", "70000", "999999"} {
		base, err := decimal.NewFromString(raw)
		require.NoError(t, err)

		b := pricing.Compute(base)
		expected := base.Mul(combined).Round(0)
		assert.True(t, b.Total.Equal(expected), "base %s: total %s != %s", raw, b.Total, expected)
	}
}
