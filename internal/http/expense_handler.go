package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/axaindopratama/Kedai-WONTONESIA-R1/internal/expense"
)

type ExpenseHandler struct {
	repo expense.Repository
}

func NewExpenseHandler(repo expense.Repository) *ExpenseHandler {
	return &ExpenseHandler{repo: repo}
}

func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	expenses, err := h.repo.List(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load expenses")
		return
	}
	if expenses == nil {
		expenses = []expense.Expense{}
	}
	writeJSON(w, http.StatusOK, expenses)
}

type expenseRequest struct {
	Date        string `json:"date"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date, want YYYY-MM-DD")
		return
	}
	if req.Amount < 0 {
		writeError(w, http.StatusBadRequest, "amount must not be negative")
		return
	}
	if req.Description == "" || req.Category == "" {
		writeError(w, http.StatusBadRequest, "missing description or category")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	e := &expense.Expense{
		Date:        date,
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
	}
	if err := h.repo.Create(ctx, e); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create expense")
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.repo.Delete(ctx, chi.URLParam(r, "expenseId")); err != nil {
		if errors.Is(err, expense.ErrNotFound) {
			writeError(w, http.StatusNotFound, "expense not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete expense")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
