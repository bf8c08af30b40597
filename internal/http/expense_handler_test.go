package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/axaindopratama/Kedai-WONTONESIA-R1/internal/expense"
)

func TestExpenseCreateAndList(t *testing.T) {
	router := newAdminRouter(t, &fakeMenuRepo{}, &fakeExpenseRepo{}, &fakeInventoryRepo{})

	rec := postJSON(t, router, "/api/expenses",
		`{"date":"2025-06-10","amount":40000,"description":"Tepung terigu","category":"Bahan Baku"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var created expense.Expense
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected assigned id")
	}
	if created.Date.Format("2006-01-02") != "2025-06-10" {
		t.Fatalf("unexpected date: %v", created.Date)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/expenses", nil)
	listRec := httptest.NewRecorder()
	router.ServeHTTP(listRec, req)

	var expenses []expense.Expense
	if err := json.NewDecoder(listRec.Body).Decode(&expenses); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(expenses) != 1 || expenses[0].Category != "Bahan Baku" {
		t.Fatalf("unexpected list: %+v", expenses)
	}
}

func TestExpenseCreateValidation(t *testing.T) {
	router := newAdminRouter(t, &fakeMenuRepo{}, &fakeExpenseRepo{}, &fakeInventoryRepo{})

	cases := map[string]string{
		"bad date":            `{"date":"10-06-2025","amount":40000,"description":"x","category":"Lainnya"}`,
		"missing date":        `{"amount":40000,"description":"x","category":"Lainnya"}`,
		"negative amount":     `{"date":"2025-06-10","amount":-1,"description":"x","category":"Lainnya"}`,
		"missing description": `{"date":"2025-06-10","amount":40000,"category":"Lainnya"}`,
		"missing category":    `{"date":"2025-06-10","amount":40000,"description":"x"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := postJSON(t, router, "/api/expenses", body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestExpenseDelete(t *testing.T) {
	expenses := &fakeExpenseRepo{}
	router := newAdminRouter(t, &fakeMenuRepo{}, expenses, &fakeInventoryRepo{})

	rec := postJSON(t, router, "/api/expenses",
		`{"date":"2025-06-10","amount":5000,"description":"Gas","category":"Operasional"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var created expense.Expense
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/expenses/"+created.ID, nil)
	delRec := httptest.NewRecorder()
	router.ServeHTTP(delRec, req)
	if delRec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", delRec.Code)
	}
	if len(expenses.expenses) != 0 {
		t.Fatalf("expected empty repo, got %+v", expenses.expenses)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/expenses/"+created.ID, nil)
	missRec := httptest.NewRecorder()
	router.ServeHTTP(missRec, req)
	if missRec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", missRec.Code)
	}
}
