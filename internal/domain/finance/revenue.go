package finance

import (
	"time"

	"github.com/aqario/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// RevenueMonths is the length of the dashboard revenue series
const RevenueMonths = 6

// MonthlyRevenue is the paid total of one calendar month
type MonthlyRevenue struct {
	Month   string             `json:"month"` // YYYY-MM
	Revenue valueobject.Fixed2 `json:"revenue"`
}

// RevenueWindow returns the half-open UTC range [from, to) covering the
// current calendar month and the RevenueMonths-1 months before it.
func RevenueWindow(now time.Time) (from, to time.Time) {
	now = now.UTC()
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return current.AddDate(0, -(RevenueMonths - 1), 0), current.AddDate(0, 1, 0)
}

// BucketMonthlyRevenue groups paid amounts by calendar month of paid date.
// The result always has RevenueMonths entries, oldest first; rows outside
// the window are ignored.
func BucketMonthlyRevenue(rows []PaidAmount, now time.Time) []MonthlyRevenue {
	from, to := RevenueWindow(now)

	buckets := make([]MonthlyRevenue, RevenueMonths)
	index := make(map[string]int, RevenueMonths)
	for i := 0; i < RevenueMonths; i++ {
		key := from.AddDate(0, i, 0).Format("2006-01")
		buckets[i] = MonthlyRevenue{Month: key, Revenue: valueobject.NewFixed2(decimal.Zero)}
		index[key] = i
	}

	for _, row := range rows {
		paid := row.PaidDate.UTC()
		if paid.Before(from) || !paid.Before(to) {
			continue
		}
		i := index[paid.Format("2006-01")]
		buckets[i].Revenue = valueobject.NewFixed2(buckets[i].Revenue.Add(row.TotalAmount))
	}
	return buckets
}
