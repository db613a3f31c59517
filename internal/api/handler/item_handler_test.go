package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/opsdesk/backoffice/internal/core/domain"
	"github.com/opsdesk/backoffice/internal/core/ports"
)

type stubItemService struct {
	listFn   func(ctx context.Context) ([]domain.Item, error)
	createFn func(ctx context.Context, in ports.ItemInput) (*domain.Item, error)
	updateFn func(ctx context.Context, id uint, in ports.ItemInput) error
	deleteFn func(ctx context.Context, id uint) error
}

func (s *stubItemService) List(ctx context.Context) ([]domain.Item, error) {
	return s.listFn(ctx)
}

func (s *stubItemService) Create(ctx context.Context, in ports.ItemInput) (*domain.Item, error) {
	return s.createFn(ctx, in)
}

func (s *stubItemService) Update(ctx context.Context, id uint, in ports.ItemInput) error {
	return s.updateFn(ctx, id, in)
}

func (s *stubItemService) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func TestItemHandler_List(t *testing.T) {
	stub := &stubItemService{
		listFn: func(ctx context.Context) ([]domain.Item, error) {
			return []domain.Item{{ID: 1, Name: "Widget", SKU: "WID-01", Quantity: 3}}, nil
		},
	}
	h := NewItemHandler(stub)

	c, rec := newJSONContext(http.MethodGet, "/api/item-master", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var rows []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &rows); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(rows) != 1 || rows[0]["sku"] != "WID-01" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestItemHandler_Create(t *testing.T) {
	stub := &stubItemService{
		createFn: func(ctx context.Context, in ports.ItemInput) (*domain.Item, error) {
			return &domain.Item{ID: 4, Name: in.Name, SKU: in.SKU, Quantity: in.Quantity}, nil
		},
	}
	h := NewItemHandler(stub)

	c, rec := newJSONContext(http.MethodPost, "/api/item-master", `{"name":"Widget","sku":"WID-01","quantity":3}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var row map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &row); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if row["id"] != float64(4) || row["quantity"] != float64(3) {
		t.Fatalf("unexpected row: %+v", row)
	}
}

func TestItemHandler_Create_NegativeQuantity(t *testing.T) {
	stub := &stubItemService{
		createFn: func(ctx context.Context, in ports.ItemInput) (*domain.Item, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewItemHandler(stub)

	c, rec := newJSONContext(http.MethodPost, "/api/item-master", `{"name":"Widget","quantity":-2}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestItemHandler_UpdateAndDelete(t *testing.T) {
	stub := &stubItemService{
		updateFn: func(ctx context.Context, id uint, in ports.ItemInput) error {
			if id != 4 || in.Quantity != 10 {
				t.Fatalf("unexpected args: %d %+v", id, in)
			}
			return nil
		},
		deleteFn: func(ctx context.Context, id uint) error {
			if id != 4 {
				t.Fatalf("unexpected id: %d", id)
			}
			return nil
		},
	}
	h := NewItemHandler(stub)

	c, rec := newJSONContext(http.MethodPut, "/api/item-master", `{"id":4,"name":"Widget","quantity":10}`)
	if err := h.Update(c); err != nil {
		t.Fatalf("update error: %v", err)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"success":true`) {
		t.Fatalf("unexpected update response: %d %s", rec.Code, rec.Body.String())
	}

	c, rec = newJSONContext(http.MethodDelete, "/api/item-master", `{"id":4}`)
	if err := h.Delete(c); err != nil {
		t.Fatalf("delete error: %v", err)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"success":true`) {
		t.Fatalf("unexpected delete response: %d %s", rec.Code, rec.Body.String())
	}
}

func TestItemHandler_Update_NotFound(t *testing.T) {
	stub := &stubItemService{
		updateFn: func(ctx context.Context, id uint, in ports.ItemInput) error {
			return domain.ErrItemNotFound
		},
	}
	h := NewItemHandler(stub)

	c, _ := newJSONContext(http.MethodPut, "/api/item-master", `{"id":99,"name":"Widget"}`)
	err := h.Update(c)
	if !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound to propagate, got %v", err)
	}
}
