package httpapi

import (
	"context"

	"github.com/axaindopratama/Kedai-WONTONESIA-R1/internal/expense"
	"github.com/axaindopratama/Kedai-WONTONESIA-R1/internal/inventory"
	"github.com/axaindopratama/Kedai-WONTONESIA-R1/internal/menu"
)

type fakeMenuRepo struct {
	menus     []menu.Menu
	listErr   error
	createErr error
}

func (r *fakeMenuRepo) List(ctx context.Context) ([]menu.Menu, error) {
	return r.menus, r.listErr
}

func (r *fakeMenuRepo) GetByID(ctx context.Context, id string) (*menu.Menu, error) {
	for i := range r.menus {
		if r.menus[i].ID == id {
			return &r.menus[i], nil
		}
	}
	return nil, menu.ErrNotFound
}

func (r *fakeMenuRepo) Create(ctx context.Context, m *menu.Menu) error {
	if r.createErr != nil {
		return r.createErr
	}
	if m.ID == "" {
		m.ID = "menu-test"
	}
	r.menus = append(r.menus, *m)
	return nil
}

func (r *fakeMenuRepo) Update(ctx context.Context, m *menu.Menu) error {
	for i := range r.menus {
		if r.menus[i].ID == m.ID {
			r.menus[i] = *m
			return nil
		}
	}
	return menu.ErrNotFound
}

func (r *fakeMenuRepo) Delete(ctx context.Context, id string) error {
	for i := range r.menus {
		if r.menus[i].ID == id {
			r.menus = append(r.menus[:i], r.menus[i+1:]...)
			return nil
		}
	}
	return menu.ErrNotFound
}

type fakeExpenseRepo struct {
	expenses  []expense.Expense
	listErr   error
	createErr error
}

func (r *fakeExpenseRepo) List(ctx context.Context) ([]expense.Expense, error) {
	return r.expenses, r.listErr
}

func (r *fakeExpenseRepo) Create(ctx context.Context, e *expense.Expense) error {
	if r.createErr != nil {
		return r.createErr
	}
	if e.ID == "" {
		e.ID = "expense-test"
	}
	r.expenses = append(r.expenses, *e)
	return nil
}

func (r *fakeExpenseRepo) Delete(ctx context.Context, id string) error {
	for i := range r.expenses {
		if r.expenses[i].ID == id {
			r.expenses = append(r.expenses[:i], r.expenses[i+1:]...)
			return nil
		}
	}
	return expense.ErrNotFound
}

type fakeInventoryRepo struct {
	items     []inventory.StockItem
	upsertErr error
}

func (r *fakeInventoryRepo) List(ctx context.Context) ([]inventory.StockItem, error) {
	return r.items, nil
}

func (r *fakeInventoryRepo) Upsert(ctx context.Context, item *inventory.StockItem) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	for i := range r.items {
		if r.items[i].ItemName == item.ItemName {
			item.ID = r.items[i].ID
			r.items[i] = *item
			return nil
		}
	}
	if item.ID == "" {
		item.ID = "stock-test"
	}
	r.items = append(r.items, *item)
	return nil
}

func (r *fakeInventoryRepo) Delete(ctx context.Context, id string) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return inventory.ErrNotFound
}
