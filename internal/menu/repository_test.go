package menu

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("new mock pool: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
		mock.Close()
	})
	return mock
}

func TestList(t *testing.T) {
	mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM menus ORDER BY category, name`).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "name", "price", "category", "image", "description", "created_at", "updated_at",
		}).
			AddRow("m1", "Es Teh", int64(5000), "Minuman", nil, nil, now, now).
			AddRow("m2", "Wonton", int64(15000), "Makanan", nil, nil, now, now))

	repo := NewPostgresRepository(mock)
	menus, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(menus) != 2 {
		t.Fatalf("got %d menus, want 2", len(menus))
	}
	if menus[1].Name != "Wonton" || menus[1].Price != 15000 {
		t.Fatalf("unexpected menu: %+v", menus[1])
	}
}

func TestGetByIDNotFound(t *testing.T) {
	mock := newMock(t)

	mock.ExpectQuery(`SELECT (.+) FROM menus WHERE id = \$1`).
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "name", "price", "category", "image", "description", "created_at", "updated_at",
		}))

	repo := NewPostgresRepository(mock)
	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateAssignsID(t *testing.T) {
	mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO menus`).
		WithArgs(pgxmock.AnyArg(), "Wonton", int64(15000), "Makanan", nil, nil).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	repo := NewPostgresRepository(mock)
	m := &Menu{Name: "Wonton", Price: 15000, Category: "Makanan"}
	if err := repo.Create(context.Background(), m); err != nil {
		t.Fatalf("create: %v", err)
	}
	if m.ID == "" {
		t.Fatal("expected generated id")
	}
	if m.CreatedAt.IsZero() {
		t.Fatal("expected created_at from the database")
	}
}

func TestUpdateMissingRow(t *testing.T) {
	mock := newMock(t)

	mock.ExpectExec(`UPDATE menus`).
		WithArgs("missing", "Wonton", int64(15000), "Makanan", nil, nil).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := NewPostgresRepository(mock)
	m := &Menu{ID: "missing", Name: "Wonton", Price: 15000, Category: "Makanan"}
	if err := repo.Update(context.Background(), m); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	mock := newMock(t)

	mock.ExpectExec(`DELETE FROM menus WHERE id = \$1`).
		WithArgs("m1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	repo := NewPostgresRepository(mock)
	if err := repo.Delete(context.Background(), "m1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
}
