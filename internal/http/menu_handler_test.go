package httpapi

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/axaindopratama/Kedai-WONTONESIA-R1/internal/cart"
	"github.com/axaindopratama/Kedai-WONTONESIA-R1/internal/menu"
)

func newAdminRouter(t *testing.T, menus *fakeMenuRepo, expenses *fakeExpenseRepo, stock *fakeInventoryRepo) http.Handler {
	t.Helper()
	carts := cart.NewStore(cart.NewMemoryStorage())
	orders := &fakeOrderRepo{}
	logger := log.New(io.Discard, "", 0)

	h := Handlers{
		Menu:      NewMenuHandler(menus),
		Cart:      NewCartHandler(carts, orders, nil, "6281250070876", logger),
		Order:     NewOrderHandler(orders, nil, logger),
		Expense:   NewExpenseHandler(expenses),
		Inventory: NewInventoryHandler(stock),
		Finance:   NewFinanceHandler(orders, expenses),
	}
	return NewRouter(h)
}

func TestMenuCRUD(t *testing.T) {
	router := newAdminRouter(t, &fakeMenuRepo{}, &fakeExpenseRepo{}, &fakeInventoryRepo{})

	rec := postJSON(t, router, "/api/menus",
		`{"name":"Wonton Goreng","price":15000,"category":"Makanan"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var created menu.Menu
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected assigned id")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/menus", nil)
	listRec := httptest.NewRecorder()
	router.ServeHTTP(listRec, req)

	var menus []menu.Menu
	if err := json.NewDecoder(listRec.Body).Decode(&menus); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(menus) != 1 || menus[0].Name != "Wonton Goreng" {
		t.Fatalf("unexpected list: %+v", menus)
	}

	req = httptest.NewRequest(http.MethodPut, "/api/menus/"+created.ID,
		strings.NewReader(`{"name":"Wonton Goreng","price":17000,"category":"Makanan"}`))
	updRec := httptest.NewRecorder()
	router.ServeHTTP(updRec, req)
	if updRec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", updRec.Code, updRec.Body.String())
	}

	var updated menu.Menu
	if err := json.NewDecoder(updRec.Body).Decode(&updated); err != nil {
		t.Fatalf("decode update: %v", err)
	}
	if updated.Price != 17000 {
		t.Fatalf("expected price 17000, got %d", updated.Price)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/menus/"+created.ID, nil)
	delRec := httptest.NewRecorder()
	router.ServeHTTP(delRec, req)
	if delRec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", delRec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/menus/"+created.ID, nil)
	getRec := httptest.NewRecorder()
	router.ServeHTTP(getRec, req)
	if getRec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", getRec.Code)
	}
}

func TestMenuCreateValidation(t *testing.T) {
	router := newAdminRouter(t, &fakeMenuRepo{}, &fakeExpenseRepo{}, &fakeInventoryRepo{})

	cases := map[string]string{
		"missing name":     `{"price":15000,"category":"Makanan"}`,
		"negative price":   `{"name":"Wonton","price":-1,"category":"Makanan"}`,
		"missing category": `{"name":"Wonton","price":15000}`,
		"invalid json":     `{invalid`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := postJSON(t, router, "/api/menus", body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestMenuUpdateNotFound(t *testing.T) {
	router := newAdminRouter(t, &fakeMenuRepo{}, &fakeExpenseRepo{}, &fakeInventoryRepo{})

	req := httptest.NewRequest(http.MethodPut, "/api/menus/nope",
		strings.NewReader(`{"name":"Wonton","price":15000,"category":"Makanan"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
