package currency_test

import (
	"testing"

	"github.com/ecommerce-dz/go-store/pkg/currency"
	"github.com/stretchr/testify/assert"
)

func TestFormatDZD(t *testing.T) {
	cases := map[int64]string{
		0:       "0 DA",
		950:     "950 DA",
		3200:    "3 200 DA",
		45000:   "45 000 DA",
		165000:  "165 000 DA",
		1234567: "1 234 567 DA",
		-8500:   "-8 500 DA",
	}

	for amount, want := range cases {
		assert.Equal(t, want, currency.FormatDZD(amount))
	}
}
