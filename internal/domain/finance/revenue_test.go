package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevenueWindow(t *testing.T) {
	now := time.Date(2026, 10, 19, 15, 30, 0, 0, time.UTC)
	from, to := RevenueWindow(now)
	assert.Equal(t, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC), to)

	// crosses a year boundary
	from, to = RevenueWindow(time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), to)
}

func TestBucketMonthlyRevenue(t *testing.T) {
	now := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	rows := []PaidAmount{
		{PaidDate: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), TotalAmount: dec("100.00")},
		{PaidDate: time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC), TotalAmount: dec("50.50")},
		{PaidDate: time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC), TotalAmount: dec("1150.00")},
		{PaidDate: time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC), TotalAmount: dec("999")},
		{PaidDate: time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC), TotalAmount: dec("999")},
	}

	got := BucketMonthlyRevenue(rows, now)
	require.Len(t, got, RevenueMonths)

	months := make([]string, 0, len(got))
	for _, m := range got {
		months = append(months, m.Month)
	}
	assert.Equal(t, []string{"2026-05", "2026-06", "2026-07", "2026-08", "2026-09", "2026-10"}, months)
	assert.Equal(t, "150.50", got[0].Revenue.StringFixed(2))
	assert.True(t, got[1].Revenue.IsZero())
	assert.Equal(t, "1150.00", got[5].Revenue.StringFixed(2))
}
