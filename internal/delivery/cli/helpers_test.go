package cli

import (
	"testing"

	"github.com/ecommerce-dz/go-store/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceDZD(t *testing.T) {
	t.Run("whole dinars", func(t *testing.T) {
		price, err := parsePriceDZD("45000")
		require.NoError(t, err)
		assert.Equal(t, int64(45000), price)
	})

	t.Run("trailing zero fraction is accepted", func(t *testing.T) {
		price, err := parsePriceDZD("45000.00")
		require.NoError(t, err)
		assert.Equal(t, int64(45000), price)
	})

	t.Run("fractional dinars are rejected", func(t *testing.T) {
		_, err := parsePriceDZD("45.50")
		assert.ErrorIs(t, err, e.ErrPricePrecision)
	})

	t.Run("invalid input", func(t *testing.T) {
		for _, s := range []string{"", "  ", "abc", "-100", "100000001"} {
			_, err := parsePriceDZD(s)
			assert.Errorf(t, err, "input %q", s)
		}
	})
}
