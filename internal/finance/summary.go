// Package finance computes the back-office report figures from raw order and
// expense records. All functions operate on already-materialized slices; they
// never touch the database themselves.
package finance

import (
	"fmt"
	"time"

	"github.com/axaindopratama/Kedai-WONTONESIA-R1/internal/expense"
	"github.com/axaindopratama/Kedai-WONTONESIA-R1/internal/order"
)

type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodWeek, PeriodMonth, PeriodYear:
		return Period(s), nil
	}
	return "", fmt.Errorf("unknown period %q", s)
}

// WindowStart returns the inclusive lower bound for the period: week is a
// rolling seven days, month and year start at the calendar boundary. The
// upper bound is implicitly now.
func WindowStart(now time.Time, period Period) time.Time {
	switch period {
	case PeriodWeek:
		return now.Add(-7 * 24 * time.Hour)
	case PeriodMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	}
}

// Summary is derived per request and never persisted.
type Summary struct {
	TotalRevenue  int64 `json:"totalRevenue"`
	TotalExpenses int64 `json:"totalExpenses"`
	Profit        int64 `json:"profit"`
	OrderCount    int   `json:"orderCount"`
}

// Summarize totals revenue and expenses inside the window. Profit is signed;
// a loss is reported as-is, not floored at zero.
func Summarize(orders []order.Order, expenses []expense.Expense, now time.Time, period Period) Summary {
	start := WindowStart(now, period)

	var s Summary
	for _, o := range orders {
		if !o.CreatedAt.Before(start) {
			s.TotalRevenue += o.Total
			s.OrderCount++
		}
	}
	for _, e := range expenses {
		if !e.Date.Before(start) {
			s.TotalExpenses += e.Amount
		}
	}
	s.Profit = s.TotalRevenue - s.TotalExpenses
	return s
}

// CategorySlice is one wedge of the expense distribution chart.
type CategorySlice struct {
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
}

// CategoryBreakdown groups expenses by category in first-appearance order.
// It intentionally ignores the selected period: the admin chart has always
// shown the all-time distribution while the totals are window-filtered.
func CategoryBreakdown(expenses []expense.Expense) []CategorySlice {
	totals := make(map[string]int64)
	var categories []string

	for _, e := range expenses {
		if _, seen := totals[e.Category]; !seen {
			categories = append(categories, e.Category)
		}
		totals[e.Category] += e.Amount
	}

	slices := make([]CategorySlice, 0, len(categories))
	for _, c := range categories {
		slices = append(slices, CategorySlice{Category: c, Amount: totals[c]})
	}
	return slices
}

const dateLayout = "2006-01-02"

// DailyRevenue is one point of the revenue chart.
type DailyRevenue struct {
	Date    string `json:"date"`
	Revenue int64  `json:"revenue"`
}

// days uses fixed counts per period so the chart width stays constant, even
// though months and years vary in true calendar length.
func days(period Period) int {
	switch period {
	case PeriodWeek:
		return 7
	case PeriodMonth:
		return 30
	default:
		return 365
	}
}

// DailyRevenueSeries buckets order totals per calendar day, oldest first,
// zero-filled for days without orders. An order belongs to a bucket when its
// creation date matches that day exactly.
func DailyRevenueSeries(orders []order.Order, now time.Time, period Period) []DailyRevenue {
	byDay := make(map[string]int64)
	for _, o := range orders {
		byDay[o.CreatedAt.Format(dateLayout)] += o.Total
	}

	n := days(period)
	series := make([]DailyRevenue, 0, n)
	for i := n - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format(dateLayout)
		series = append(series, DailyRevenue{Date: day, Revenue: byDay[day]})
	}
	return series
}

// TodayStats backs the admin dashboard cards.
type TodayStats struct {
	OrderCount   int   `json:"orderCount"`
	Revenue      int64 `json:"revenue"`
	PendingCount int   `json:"pendingCount"`
}

// Today counts and totals the orders created on now's calendar day.
func Today(orders []order.Order, now time.Time) TodayStats {
	today := now.Format(dateLayout)

	var s TodayStats
	for _, o := range orders {
		if o.CreatedAt.Format(dateLayout) != today {
			continue
		}
		s.OrderCount++
		s.Revenue += o.Total
		if o.Status == order.StatusPending {
			s.PendingCount++
		}
	}
	return s
}
