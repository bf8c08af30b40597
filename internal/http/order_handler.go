package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/axaindopratama/Kedai-WONTONESIA-R1/internal/order"
)

// StatusPublisher notifies staff consumers about status transitions.
type StatusPublisher interface {
	PublishOrderStatusChanged(ctx context.Context, orderID string, status order.Status) error
}

type OrderHandler struct {
	repo      order.Repository
	publisher StatusPublisher
	logger    *log.Logger
}

func NewOrderHandler(repo order.Repository, publisher StatusPublisher, logger *log.Logger) *OrderHandler {
	return &OrderHandler{repo: repo, publisher: publisher, logger: logger}
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	o, err := h.repo.GetByID(ctx, chi.URLParam(r, "orderId"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load order")
		return
	}
	if o == nil {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}
	writeJSON(w, http.StatusOK, o)
}

// List returns a user's orders (the "my orders" page) when userId is given,
// or every order (admin) otherwise.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var (
		orders []order.Order
		err    error
	)
	if userID := r.URL.Query().Get("userId"); userID != "" {
		orders, err = h.repo.ListByUser(ctx, userID)
	} else {
		orders, err = h.repo.ListAll(ctx)
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load orders")
		return
	}
	if orders == nil {
		orders = []order.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

// ListRecent serves the admin dashboard feed.
func (h *OrderHandler) ListRecent(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	orders, err := h.repo.ListRecent(ctx, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load orders")
		return
	}
	if orders == nil {
		orders = []order.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

type createOrderRequest struct {
	UserID  string       `json:"userId"`
	Items   []order.Item `json:"items"`
	TableNo string       `json:"tableNo"`
}

// Create is the POS path: staff key in a dine-in order directly, skipping the
// cart and the WhatsApp handoff. The total is computed server-side.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, "missing userId")
		return
	}
	if len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, "order has no items")
		return
	}
	if req.TableNo == "" {
		writeError(w, http.StatusBadRequest, "missing tableNo")
		return
	}
	for _, it := range req.Items {
		if it.MenuID == "" || it.Quantity < 1 || it.Price < 0 {
			writeError(w, http.StatusBadRequest, "invalid order item")
			return
		}
	}

	var total int64
	for _, it := range req.Items {
		total += it.Price * int64(it.Quantity)
	}

	o := &order.Order{
		UserID:  req.UserID,
		Items:   req.Items,
		Total:   total,
		Status:  order.StatusPending,
		Type:    order.TypeDineIn,
		TableNo: &req.TableNo,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.repo.Create(ctx, o); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create order")
		return
	}
	writeJSON(w, http.StatusCreated, o)
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	var body struct {
		Status order.Status `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if !body.Status.Valid() {
		writeError(w, http.StatusBadRequest, "invalid status")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.repo.UpdateStatus(ctx, orderID, body.Status); err != nil {
		if errors.Is(err, order.ErrNotFound) {
			writeError(w, http.StatusNotFound, "order not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update status")
		return
	}

	if h.publisher != nil {
		if err := h.publisher.PublishOrderStatusChanged(ctx, orderID, body.Status); err != nil {
			h.logger.Printf("publish status change: %v", err)
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
