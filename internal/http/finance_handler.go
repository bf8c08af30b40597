package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/axaindopratama/Kedai-WONTONESIA-R1/internal/expense"
	"github.com/axaindopratama/Kedai-WONTONESIA-R1/internal/finance"
	"github.com/axaindopratama/Kedai-WONTONESIA-R1/internal/order"
)

type FinanceHandler struct {
	orders   order.Repository
	expenses expense.Repository

	// now is swappable so tests can pin the clock.
	now func() time.Time
}

func NewFinanceHandler(orders order.Repository, expenses expense.Repository) *FinanceHandler {
	return &FinanceHandler{orders: orders, expenses: expenses, now: time.Now}
}

type summaryResponse struct {
	Period             finance.Period          `json:"period"`
	Summary            finance.Summary         `json:"summary"`
	ExpensesByCategory []finance.CategorySlice `json:"expensesByCategory"`
	DailyRevenue       []finance.DailyRevenue  `json:"dailyRevenue"`
}

// Summary serves the finance report: windowed totals, the all-time expense
// distribution, and the daily revenue series.
func (h *FinanceHandler) Summary(w http.ResponseWriter, r *http.Request) {
	periodParam := r.URL.Query().Get("period")
	if periodParam == "" {
		periodParam = string(finance.PeriodMonth)
	}
	period, err := finance.ParsePeriod(periodParam)
	if err != nil {
		writeError(w, http.StatusBadRequest, "period must be week, month or year")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	orders, err := h.orders.ListAll(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load orders")
		return
	}
	expenses, err := h.expenses.List(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load expenses")
		return
	}

	now := h.now()
	resp := summaryResponse{
		Period:             period,
		Summary:            finance.Summarize(orders, expenses, now, period),
		ExpensesByCategory: finance.CategoryBreakdown(expenses),
		DailyRevenue:       finance.DailyRevenueSeries(orders, now, period),
	}
	if resp.ExpensesByCategory == nil {
		resp.ExpensesByCategory = []finance.CategorySlice{}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Today serves the dashboard stat cards.
func (h *FinanceHandler) Today(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	now := h.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	orders, err := h.orders.ListSince(ctx, startOfDay)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load orders")
		return
	}

	writeJSON(w, http.StatusOK, finance.Today(orders, now))
}
