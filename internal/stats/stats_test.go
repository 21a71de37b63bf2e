package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/akshaygopinath16/Doddamagge/internal/models"
)

func TestRevenue(t *testing.T) {
	t.Parallel()

	payments := []models.Payment{
		{Username: "alice", Amount: 100, Status: models.PaymentCompleted, Date: "2024-01-15"},
		{Username: "bob", Amount: 50, Status: models.PaymentPending, Date: "2024-01-16"},
		{Username: "carol", Amount: 25.5, Status: models.PaymentCompleted, Date: "2024-02-01"},
		{Username: "dave", Amount: 80, Status: models.PaymentFailed, Date: "2024-02-02"},
	}

	assert.Equal(t, 125.5, Revenue(payments))
}

func TestRevenue_Empty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, Revenue(nil))
	assert.Equal(t, 0.0, Revenue([]models.Payment{}))
}

func TestRevenue_NoneCompleted(t *testing.T) {
	t.Parallel()

	payments := []models.Payment{
		{Amount: 10, Status: models.PaymentPending, Date: "2024-01-01"},
		{Amount: 20, Status: models.PaymentFailed, Date: "2024-01-02"},
	}

	assert.Equal(t, 0.0, Revenue(payments))
}

func TestMonthRevenue_PrefixMatch(t *testing.T) {
	t.Parallel()

	payments := []models.Payment{
		{Amount: 10, Status: models.PaymentCompleted, Date: "2024-01-15"},
		{Amount: 20, Status: models.PaymentCompleted, Date: "2024-02-15"},
		{Amount: 40, Status: models.PaymentCompleted, Date: "2023-01-15"},
		{Amount: 80, Status: models.PaymentPending, Date: "2024-01-20"},
	}

	assert.Equal(t, 10.0, MonthRevenue(payments, "2024-01"))
	assert.Equal(t, 20.0, MonthRevenue(payments, "2024-02"))
	assert.Equal(t, 40.0, MonthRevenue(payments, "2023-01"))
	assert.Equal(t, 0.0, MonthRevenue(payments, "2024-03"))
}

func TestTrend_ZeroLastMonth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 100.0, Trend(50, 0), "first revenue ever reads as a full jump")
	assert.Equal(t, 0.0, Trend(0, 0), "two silent months read as flat")
}

func TestTrend_Computed(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 50.0, Trend(150, 100))
	assert.Equal(t, -100.0, Trend(0, 5))
	assert.Equal(t, -50.0, Trend(50, 100))
}

func TestTrend_RoundsHalfAwayFromZero(t *testing.T) {
	t.Parallel()

	// (17-16)/16 = 6.25%, exactly representable, so the .x5 boundary is hit.
	assert.Equal(t, 6.3, Trend(17, 16))
	assert.Equal(t, -6.3, Trend(15, 16))
}

func TestRevenueTrend_YearBoundary(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC)
	payments := []models.Payment{
		{Amount: 100, Status: models.PaymentCompleted, Date: "2023-12-05"},
		{Amount: 150, Status: models.PaymentCompleted, Date: "2024-01-03"},
	}

	assert.Equal(t, 50.0, RevenueTrend(payments, now))
}

func TestRevenueTrend_EndOfMonth(t *testing.T) {
	t.Parallel()

	// March 31: naive AddDate on the raw date would land in early March
	// instead of February.
	now := time.Date(2024, time.March, 31, 23, 0, 0, 0, time.UTC)
	payments := []models.Payment{
		{Amount: 200, Status: models.PaymentCompleted, Date: "2024-02-10"},
		{Amount: 100, Status: models.PaymentCompleted, Date: "2024-03-10"},
	}

	assert.Equal(t, -50.0, RevenueTrend(payments, now))
}

func TestActivity_AlwaysSixEntriesOldestFirst(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	series := Activity(nil, now)

	assert.Len(t, series, 6)
	labels := make([]string, 0, 6)
	for _, entry := range series {
		labels = append(labels, entry.Name)
		assert.Equal(t, 0.0, entry.Value)
	}
	assert.Equal(t, []string{"Oct", "Nov", "Dec", "Jan", "Feb", "Mar"}, labels)
}

func TestActivity_BucketsByMonth(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	payments := []models.Payment{
		{Amount: 10, Status: models.PaymentCompleted, Date: "2023-11-20"},
		{Amount: 20, Status: models.PaymentCompleted, Date: "2024-01-15"},
		{Amount: 30, Status: models.PaymentCompleted, Date: "2024-03-01"},
		{Amount: 99, Status: models.PaymentPending, Date: "2024-03-02"},
		{Amount: 77, Status: models.PaymentCompleted, Date: "2023-09-30"}, // outside the window
	}

	series := Activity(payments, now)

	assert.Equal(t, []MonthTotal{
		{Name: "Oct", Value: 0},
		{Name: "Nov", Value: 10},
		{Name: "Dec", Value: 0},
		{Name: "Jan", Value: 20},
		{Name: "Feb", Value: 0},
		{Name: "Mar", Value: 30},
	}, series)
}

func TestMonthKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2024-01", MonthKey(time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2023-12", MonthKey(time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC)))
}
