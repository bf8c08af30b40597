package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/axaindopratama/Kedai-WONTONESIA-R1/internal/inventory"
)

type InventoryHandler struct {
	repo inventory.Repository
}

func NewInventoryHandler(repo inventory.Repository) *InventoryHandler {
	return &InventoryHandler{repo: repo}
}

func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := h.repo.List(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load inventory")
		return
	}
	if items == nil {
		items = []inventory.StockItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

type stockRequest struct {
	ItemName     string `json:"itemName"`
	CurrentStock int    `json:"currentStock"`
	Unit         string `json:"unit"`
}

// Upsert records a stock count, keyed by item name.
func (h *InventoryHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req stockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.ItemName == "" {
		writeError(w, http.StatusBadRequest, "missing itemName")
		return
	}
	if req.CurrentStock < 0 {
		writeError(w, http.StatusBadRequest, "stock must not be negative")
		return
	}
	if req.Unit == "" {
		req.Unit = "pcs"
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	item := &inventory.StockItem{
		ItemName:     req.ItemName,
		CurrentStock: req.CurrentStock,
		Unit:         req.Unit,
	}
	if err := h.repo.Upsert(ctx, item); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save stock item")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.repo.Delete(ctx, chi.URLParam(r, "itemId")); err != nil {
		if errors.Is(err, inventory.ErrNotFound) {
			writeError(w, http.StatusNotFound, "stock item not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete stock item")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
