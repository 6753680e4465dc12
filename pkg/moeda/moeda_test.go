package moeda_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"perfumaria/pkg/moeda"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1234.56", "R$ 1.234,56"},
		{"0", "R$ 0,00"},
		{"3.49", "R$ 3,49"},
		{"1000000", "R$ 1.000.000,00"},
	}
	for _, c := range cases {
		got := moeda.Format(decimal.RequireFromString(c.in))
		assert.Equal(t, c.want, got, "valor %s", c.in)
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "27,50%", moeda.FormatPercent(decimal.RequireFromString("27.5")))
	assert.Equal(t, "0,00%", moeda.FormatPercent(decimal.Zero))
}
