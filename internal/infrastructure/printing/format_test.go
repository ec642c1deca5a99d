package printing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"5", "5.00"},
		{"1150", "1,150.00"},
		{"150.5", "150.50"},
		{"1234567.891", "1,234,567.89"},
		{"-2500", "-2,500.00"},
		{"999999.995", "1,000,000.00"},
		{"12345678901234.56", "12,345,678,901,234.56"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestGroupThousands(t *testing.T) {
	assert.Equal(t, "1,000", groupThousands("1000"))
	assert.Equal(t, "100.00", groupThousands("100.00"))
	assert.Equal(t, "-12,345.60", groupThousands("-12345.60"))
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "15.00%", FormatRate(decimal.NewFromInt(15)))
	assert.Equal(t, "0.00%", FormatRate(decimal.Zero))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "", FormatDate(time.Time{}))
	riyadh := time.FixedZone("AST", 3*3600)
	assert.Equal(t, "2024-03-08", FormatDate(time.Date(2024, 3, 9, 1, 0, 0, 0, riyadh)))
}

func TestOrDash(t *testing.T) {
	assert.Equal(t, "-", orDash(""))
	assert.Equal(t, "-", orDash("  "))
	assert.Equal(t, "x", orDash("x"))
}
