package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/opsdesk/backoffice/internal/core/domain"
	"github.com/opsdesk/backoffice/internal/core/ports"
)

type stubEmployeeService struct {
	listFn   func(ctx context.Context) ([]domain.Employee, error)
	createFn func(ctx context.Context, in ports.EmployeeInput) (*domain.Employee, error)
	updateFn func(ctx context.Context, id uint, in ports.EmployeeInput) error
	deleteFn func(ctx context.Context, id uint) error
}

func (s *stubEmployeeService) List(ctx context.Context) ([]domain.Employee, error) {
	return s.listFn(ctx)
}

func (s *stubEmployeeService) Create(ctx context.Context, in ports.EmployeeInput) (*domain.Employee, error) {
	return s.createFn(ctx, in)
}

func (s *stubEmployeeService) Update(ctx context.Context, id uint, in ports.EmployeeInput) error {
	return s.updateFn(ctx, id, in)
}

func (s *stubEmployeeService) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func newJSONContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestEmployeeHandler_List(t *testing.T) {
	stub := &stubEmployeeService{
		listFn: func(ctx context.Context) ([]domain.Employee, error) {
			return []domain.Employee{
				{ID: 1, Name: "Ana"},
				{ID: 2, Name: "Luis"},
			}, nil
		},
	}
	h := NewEmployeeHandler(stub)

	c, rec := newJSONContext(http.MethodGet, "/api/employee", "")
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
	if len(rows) != 2 || rows[0]["name"] != "Ana" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestEmployeeHandler_Create(t *testing.T) {
	stub := &stubEmployeeService{
		createFn: func(ctx context.Context, in ports.EmployeeInput) (*domain.Employee, error) {
			if in.Name != "Ana" || in.City != "Monterrey" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Employee{ID: 5, Name: in.Name, City: in.City}, nil
		},
	}
	h := NewEmployeeHandler(stub)

	c, rec := newJSONContext(http.MethodPost, "/api/employee", `{"name":"Ana","city":"Monterrey"}`)
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
	if row["id"] != float64(5) || row["name"] != "Ana" {
		t.Fatalf("unexpected row: %+v", row)
	}
}

func TestEmployeeHandler_Create_OnlyName(t *testing.T) {
	stub := &stubEmployeeService{
		createFn: func(ctx context.Context, in ports.EmployeeInput) (*domain.Employee, error) {
			if in.Name != "Ana" {
				t.Fatalf("unexpected input: %+v", in)
			}
			if in.Email != nil || in.DateOfJoining != nil || in.DOB != nil {
				t.Fatalf("omitted optional fields must be nil, got %+v", in)
			}
			return &domain.Employee{ID: 7, Name: in.Name}, nil
		},
	}
	h := NewEmployeeHandler(stub)

	c, rec := newJSONContext(http.MethodPost, "/api/employee", `{"name":"Ana"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestEmployeeHandler_Create_MissingName(t *testing.T) {
	stub := &stubEmployeeService{
		createFn: func(ctx context.Context, in ports.EmployeeInput) (*domain.Employee, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewEmployeeHandler(stub)

	c, rec := newJSONContext(http.MethodPost, "/api/employee", `{"email":"a@example.com"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestEmployeeHandler_Update(t *testing.T) {
	stub := &stubEmployeeService{
		updateFn: func(ctx context.Context, id uint, in ports.EmployeeInput) error {
			if id != 3 || in.Name != "Ana Torres" {
				t.Fatalf("unexpected args: %d %+v", id, in)
			}
			return nil
		},
	}
	h := NewEmployeeHandler(stub)

	c, rec := newJSONContext(http.MethodPut, "/api/employee", `{"id":3,"name":"Ana Torres"}`)
	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"success":true`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestEmployeeHandler_Delete(t *testing.T) {
	deleted := uint(0)
	stub := &stubEmployeeService{
		deleteFn: func(ctx context.Context, id uint) error {
			deleted = id
			return nil
		},
	}
	h := NewEmployeeHandler(stub)

	c, rec := newJSONContext(http.MethodDelete, "/api/employee", `{"id":9}`)
	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if deleted != 9 {
		t.Fatalf("expected delete of row 9, got %d", deleted)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"success":true`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestEmployeeHandler_Delete_NotFound(t *testing.T) {
	stub := &stubEmployeeService{
		deleteFn: func(ctx context.Context, id uint) error {
			return domain.ErrEmployeeNotFound
		},
	}
	h := NewEmployeeHandler(stub)

	c, _ := newJSONContext(http.MethodDelete, "/api/employee", `{"id":9}`)
	err := h.Delete(c)
	if !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound to propagate, got %v", err)
	}
}

func TestEmployeeHandler_Delete_MissingID(t *testing.T) {
	stub := &stubEmployeeService{
		deleteFn: func(ctx context.Context, id uint) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	h := NewEmployeeHandler(stub)

	c, rec := newJSONContext(http.MethodDelete, "/api/employee", `{}`)
	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
