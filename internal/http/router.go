package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Menu      *MenuHandler
	Cart      *CartHandler
	Order     *OrderHandler
	Expense   *ExpenseHandler
	Inventory *InventoryHandler
	Finance   *FinanceHandler

	// Metrics wraps every route when set; Prometheus is optional in tests.
	Metrics func(http.Handler) http.Handler
	// MetricsHandler serves GET /metrics when set.
	MetricsHandler http.Handler
}

func NewRouter(h Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	if h.Metrics != nil {
		r.Use(h.Metrics)
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if h.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", h.MetricsHandler)
	}

	r.Route("/api/menus", func(r chi.Router) {
		r.Get("/", h.Menu.List)
		r.Post("/", h.Menu.Create)
		r.Get("/{menuId}", h.Menu.Get)
		r.Put("/{menuId}", h.Menu.Update)
		r.Delete("/{menuId}", h.Menu.Delete)
	})

	r.Route("/api/cart/{sessionId}", func(r chi.Router) {
		r.Get("/", h.Cart.Get)
		r.Delete("/", h.Cart.Clear)
		r.Post("/items", h.Cart.AddItem)
		r.Put("/items/{menuId}", h.Cart.UpdateQuantity)
		r.Delete("/items/{menuId}", h.Cart.RemoveItem)
		r.Post("/checkout", h.Cart.Checkout)
	})

	r.Route("/api/orders", func(r chi.Router) {
		r.Get("/", h.Order.List)
		r.Post("/", h.Order.Create)
		r.Get("/recent", h.Order.ListRecent)
		r.Get("/{orderId}", h.Order.Get)
		r.Patch("/{orderId}/status", h.Order.UpdateStatus)
	})

	r.Route("/api/expenses", func(r chi.Router) {
		r.Get("/", h.Expense.List)
		r.Post("/", h.Expense.Create)
		r.Delete("/{expenseId}", h.Expense.Delete)
	})

	r.Route("/api/inventory", func(r chi.Router) {
		r.Get("/", h.Inventory.List)
		r.Post("/", h.Inventory.Upsert)
		r.Delete("/{itemId}", h.Inventory.Delete)
	})

	r.Route("/api/finance", func(r chi.Router) {
		r.Get("/summary", h.Finance.Summary)
		r.Get("/today", h.Finance.Today)
	})

	return r
}
