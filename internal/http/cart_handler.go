package httpapi

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/axaindopratama/Kedai-WONTONESIA-R1/internal/cart"
	"github.com/axaindopratama/Kedai-WONTONESIA-R1/internal/order"
	"github.com/axaindopratama/Kedai-WONTONESIA-R1/internal/whatsapp"
)

// OrderPublisher notifies staff consumers about new orders. May be a no-op
// when the broker is not configured.
type OrderPublisher interface {
	PublishOrderCreated(ctx context.Context, o *order.Order) error
}

type CartHandler struct {
	carts     *cart.Store
	orders    order.Repository
	publisher OrderPublisher
	phone     string
	logger    *log.Logger
}

func NewCartHandler(carts *cart.Store, orders order.Repository, publisher OrderPublisher, phone string, logger *log.Logger) *CartHandler {
	return &CartHandler{carts: carts, orders: orders, publisher: publisher, phone: phone, logger: logger}
}

type cartResponse struct {
	SessionID string      `json:"sessionId"`
	Items     []cart.Item `json:"items"`
	Total     int64       `json:"total"`
	ItemCount int         `json:"itemCount"`
}

func newCartResponse(sessionID string, c *cart.Cart) cartResponse {
	return cartResponse{
		SessionID: sessionID,
		Items:     c.Items(),
		Total:     c.Total(),
		ItemCount: c.ItemCount(),
	}
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	c, err := h.carts.Get(ctx, sessionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load cart")
		return
	}
	writeJSON(w, http.StatusOK, newCartResponse(sessionID, c))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")

	var body cart.Item
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if body.MenuID == "" || body.Name == "" {
		writeError(w, http.StatusBadRequest, "missing menuId or name")
		return
	}
	if body.Quantity < 1 || body.Price < 0 {
		writeError(w, http.StatusBadRequest, "invalid quantity or price")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	c, err := h.carts.AddItem(ctx, sessionID, body)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save cart")
		return
	}
	writeJSON(w, http.StatusOK, newCartResponse(sessionID, c))
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")
	menuID := chi.URLParam(r, "menuId")

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	c, err := h.carts.UpdateQuantity(ctx, sessionID, menuID, body.Quantity)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save cart")
		return
	}
	writeJSON(w, http.StatusOK, newCartResponse(sessionID, c))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")
	menuID := chi.URLParam(r, "menuId")

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	c, err := h.carts.RemoveItem(ctx, sessionID, menuID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save cart")
		return
	}
	writeJSON(w, http.StatusOK, newCartResponse(sessionID, c))
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.carts.Clear(ctx, sessionID); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to clear cart")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

type checkoutRequest struct {
	UserID       string                `json:"userId"`
	CustomerName string                `json:"customerName"`
	Type         order.FulfillmentType `json:"type"`
	TableNo      string                `json:"tableNo"`
	Address      string                `json:"address"`
	PickupTime   string                `json:"pickupTime"`
}

// requiredDetail mirrors the storefront form validation: each fulfillment
// type has exactly one mandatory detail field.
func (req *checkoutRequest) requiredDetail() (value, field string) {
	switch req.Type {
	case order.TypeDineIn:
		return req.TableNo, "tableNo"
	case order.TypeDelivery:
		return req.Address, "address"
	default:
		return req.PickupTime, "pickupTime"
	}
}

type checkoutResponse struct {
	Order       *order.Order `json:"order"`
	WhatsAppURL string       `json:"whatsappUrl"`
}

// Checkout turns the session's cart into a pending order, hands back the
// WhatsApp link for the customer to confirm with staff, and clears the cart.
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, "missing userId")
		return
	}
	if !req.Type.Valid() {
		writeError(w, http.StatusBadRequest, "invalid fulfillment type")
		return
	}
	if value, field := req.requiredDetail(); value == "" {
		writeError(w, http.StatusBadRequest, "missing "+field)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	c, err := h.carts.Get(ctx, sessionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load cart")
		return
	}
	if c.Len() == 0 {
		writeError(w, http.StatusBadRequest, "cart is empty")
		return
	}

	items := make([]order.Item, 0, c.Len())
	for _, it := range c.Items() {
		items = append(items, order.Item{
			MenuID:   it.MenuID,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}

	o := &order.Order{
		UserID: req.UserID,
		Items:  items,
		Total:  c.Total(),
		Status: order.StatusPending,
		Type:   req.Type,
	}
	switch req.Type {
	case order.TypeDineIn:
		o.TableNo = &req.TableNo
	case order.TypeDelivery:
		o.Address = &req.Address
	case order.TypePickup:
		o.PickupTime = &req.PickupTime
	}

	if err := h.orders.Create(ctx, o); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create order")
		return
	}

	// The order is committed; a broken broker must not fail the checkout.
	if h.publisher != nil {
		if err := h.publisher.PublishOrderCreated(ctx, o); err != nil {
			h.logger.Printf("publish order created: %v", err)
		}
	}

	customer := req.CustomerName
	if customer == "" {
		customer = "Pelanggan"
	}
	message := whatsapp.ComposeMessage(customer, items, o.Total, req.Type, whatsapp.Details{
		Address:    req.Address,
		TableNo:    req.TableNo,
		PickupTime: req.PickupTime,
	})

	if err := h.carts.Clear(ctx, sessionID); err != nil {
		h.logger.Printf("clear cart after checkout: %v", err)
	}

	writeJSON(w, http.StatusCreated, checkoutResponse{
		Order:       o,
		WhatsAppURL: whatsapp.Link(h.phone, message),
	})
}
