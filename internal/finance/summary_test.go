package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axaindopratama/Kedai-WONTONESIA-R1/internal/expense"
	"github.com/axaindopratama/Kedai-WONTONESIA-R1/internal/order"
)

// A fixed "now" keeps window math deterministic: 15 June 2025, mid-month.
var now = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func orderAt(t time.Time, total int64) order.Order {
	return order.Order{Total: total, Status: order.StatusPending, CreatedAt: t}
}

func expenseAt(t time.Time, amount int64, category string) expense.Expense {
	return expense.Expense{Date: t, Amount: amount, Category: category}
}

func TestParsePeriod(t *testing.T) {
	for _, s := range []string{"week", "month", "year"} {
		if _, err := ParsePeriod(s); err != nil {
			t.Fatalf("ParsePeriod(%q): %v", s, err)
		}
	}
	if _, err := ParsePeriod("quarter"); err == nil {
		t.Fatal("expected error for unknown period")
	}
}

func TestWindowStart(t *testing.T) {
	tests := map[string]struct {
		period Period
		want   time.Time
	}{
		"week is rolling seven days": {PeriodWeek, now.Add(-7 * 24 * time.Hour)},
		"month starts on the first":  {PeriodMonth, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)},
		"year starts on jan 1":       {PeriodYear, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := WindowStart(now, tt.period); !got.Equal(tt.want) {
				t.Fatalf("WindowStart = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSummarizeSingleDay(t *testing.T) {
	orders := []order.Order{orderAt(now, 100000)}
	expenses := []expense.Expense{expenseAt(now, 40000, "Bahan Baku")}

	got := Summarize(orders, expenses, now, PeriodWeek)

	want := Summary{TotalRevenue: 100000, TotalExpenses: 40000, Profit: 60000, OrderCount: 1}
	assert.Equal(t, want, got)
}

func TestSummarizeFiltersByWindow(t *testing.T) {
	orders := []order.Order{
		orderAt(now, 100000),
		orderAt(now.AddDate(0, 0, -3), 50000),
		orderAt(now.AddDate(0, 0, -10), 999999), // outside the week window
	}
	expenses := []expense.Expense{
		expenseAt(now.AddDate(0, 0, -1), 30000, "Gaji"),
		expenseAt(now.AddDate(0, 0, -20), 70000, "Operasional"),
	}

	got := Summarize(orders, expenses, now, PeriodWeek)

	assert.Equal(t, int64(150000), got.TotalRevenue)
	assert.Equal(t, int64(30000), got.TotalExpenses)
	assert.Equal(t, int64(120000), got.Profit)
	assert.Equal(t, 2, got.OrderCount)
}

func TestSummarizeProfitMayBeNegative(t *testing.T) {
	orders := []order.Order{orderAt(now, 10000)}
	expenses := []expense.Expense{expenseAt(now, 25000, "Utilitas")}

	got := Summarize(orders, expenses, now, PeriodMonth)

	assert.Equal(t, int64(-15000), got.Profit)
}

func TestCategoryBreakdownIgnoresWindow(t *testing.T) {
	expenses := []expense.Expense{
		expenseAt(now, 10000, "Bahan Baku"),
		expenseAt(now.AddDate(-1, 0, 0), 5000, "Bahan Baku"), // a year old, still counted
		expenseAt(now, 20000, "Gaji"),
	}

	got := CategoryBreakdown(expenses)

	require.Len(t, got, 2)
	assert.Equal(t, CategorySlice{Category: "Bahan Baku", Amount: 15000}, got[0])
	assert.Equal(t, CategorySlice{Category: "Gaji", Amount: 20000}, got[1])
}

func TestDailyRevenueSeriesWeek(t *testing.T) {
	orders := []order.Order{
		orderAt(now, 100000),
		orderAt(now, 50000),                    // same day, summed
		orderAt(now.AddDate(0, 0, -2), 20000),
		orderAt(now.AddDate(0, 0, -30), 77777), // outside the series
	}

	got := DailyRevenueSeries(orders, now, PeriodWeek)

	require.Len(t, got, 7)
	// Chronological order, today last.
	assert.Equal(t, "2025-06-09", got[0].Date)
	assert.Equal(t, "2025-06-15", got[6].Date)
	assert.Equal(t, int64(150000), got[6].Revenue)
	assert.Equal(t, int64(20000), got[4].Revenue)
	// Zero-filled in between.
	assert.Equal(t, int64(0), got[5].Revenue)
}

func TestDailyRevenueSeriesFixedLengths(t *testing.T) {
	for period, want := range map[Period]int{PeriodWeek: 7, PeriodMonth: 30, PeriodYear: 365} {
		if got := len(DailyRevenueSeries(nil, now, period)); got != want {
			t.Fatalf("series length for %s = %d, want %d", period, got, want)
		}
	}
}

func TestToday(t *testing.T) {
	yesterday := now.AddDate(0, 0, -1)
	completed := orderAt(now, 30000)
	completed.Status = order.StatusCompleted

	orders := []order.Order{
		orderAt(now, 100000),
		completed,
		orderAt(yesterday, 999999),
	}

	got := Today(orders, now)

	assert.Equal(t, TodayStats{OrderCount: 2, Revenue: 130000, PendingCount: 1}, got)
}
