package stats

import (
	"math"
	"strings"
	"time"

	"github.com/akshaygopinath16/Doddamagge/internal/models"
)

// MonthTotal is one point of the dashboard activity series.
type MonthTotal struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// MonthKey returns the YYYY-MM bucket key for a point in time. Payment dates
// are stored as fixed-width YYYY-MM-DD strings, so bucket membership is a
// plain prefix match against this key.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// monthStart anchors calendar arithmetic at the first of the month. Walking
// months with AddDate from day 29-31 would skip or double months; from day 1
// it rolls the year correctly in both directions.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// Revenue sums completed payment amounts. Empty or all-non-completed input
// yields 0.
func Revenue(payments []models.Payment) float64 {
	var total float64
	for _, p := range payments {
		if p.Status == models.PaymentCompleted {
			total += p.Amount
		}
	}
	return total
}

// MonthRevenue sums completed payment amounts whose date falls in the month
// identified by key (a MonthKey value).
func MonthRevenue(payments []models.Payment, key string) float64 {
	var total float64
	for _, p := range payments {
		if p.Status == models.PaymentCompleted && strings.HasPrefix(p.Date, key) {
			total += p.Amount
		}
	}
	return total
}

// Trend computes the month-over-month revenue change as a percentage, rounded
// half away from zero to one decimal place. A zero previous month is special
// cased so first revenue reads as a 100% jump rather than a division by zero,
// and two silent months read as flat.
func Trend(current, last float64) float64 {
	if last == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return math.Round((current-last)/last*1000) / 10
}

// RevenueTrend compares the current calendar month against the previous one.
func RevenueTrend(payments []models.Payment, now time.Time) float64 {
	cur := MonthRevenue(payments, MonthKey(now))
	last := MonthRevenue(payments, MonthKey(monthStart(now).AddDate(0, -1, 0)))
	return Trend(cur, last)
}

// Activity returns completed revenue for the current month and the five
// preceding it, oldest first. The series is always exactly six entries; a
// month without payments contributes 0.
func Activity(payments []models.Payment, now time.Time) []MonthTotal {
	start := monthStart(now)
	series := make([]MonthTotal, 0, 6)
	for i := 5; i >= 0; i-- {
		month := start.AddDate(0, -i, 0)
		series = append(series, MonthTotal{
			Name:  month.Format("Jan"),
			Value: MonthRevenue(payments, MonthKey(month)),
		})
	}
	return series
}
