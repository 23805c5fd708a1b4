package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/meridianbank/admin-portal/internal/api/middleware"
	"github.com/meridianbank/admin-portal/internal/core/domain"
	"github.com/meridianbank/admin-portal/internal/core/ports"
)

type stubCustomerService struct {
	createFn func(ctx context.Context, in ports.CreateCustomerInput) (*domain.Customer, error)
	updateFn func(ctx context.Context, id string, in ports.UpdateCustomerInput) (*domain.Customer, error)
	deleteFn func(ctx context.Context, id string) error
	getFn    func(ctx context.Context, id string) (*domain.Customer, error)
	count    int64
	active   int64
}

func (s *stubCustomerService) List(_ context.Context) ([]domain.Customer, error) { return nil, nil }

func (s *stubCustomerService) Get(ctx context.Context, id string) (*domain.Customer, error) {
	return s.getFn(ctx, id)
}

func (s *stubCustomerService) Count(_ context.Context) (int64, error) { return s.count, nil }

func (s *stubCustomerService) CountActive(_ context.Context) (int64, error) { return s.active, nil }

func (s *stubCustomerService) Create(ctx context.Context, in ports.CreateCustomerInput) (*domain.Customer, error) {
	return s.createFn(ctx, in)
}

func (s *stubCustomerService) Update(ctx context.Context, id string, in ports.UpdateCustomerInput) (*domain.Customer, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubCustomerService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestCustomerHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	h := NewCustomerHandler(&stubCustomerService{
		createFn: func(ctx context.Context, in ports.CreateCustomerInput) (*domain.Customer, error) {
			if in.FullName != "Jane Doe" || in.Email != "jane@x.com" || in.AccountType != "savings" {
				t.Fatalf("unexpected input: %+v", in)
			}
			if in.Balance != 100 {
				t.Fatalf("unexpected balance: %v", in.Balance)
			}
			return &domain.Customer{
				ID:            "cust_1",
				FullName:      in.FullName,
				Email:         in.Email,
				AccountNumber: "ACC0123456789",
				Status:        domain.StatusActive,
			}, nil
		},
	})

	body := strings.NewReader(`{"full_name":"Jane Doe","email":"jane@x.com","password":"pw1","confirm_password":"pw1","account_type":"savings","balance":100}`)
	req := httptest.NewRequest(http.MethodPost, "/admin/customers", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	customer, ok := resp["customer"].(map[string]any)
	if !ok {
		t.Fatalf("expected customer in response")
	}
	if customer["account_number"] != "ACC0123456789" {
		t.Fatalf("unexpected account number: %v", customer["account_number"])
	}
	if _, leaked := customer["password_hash"]; leaked {
		t.Fatalf("password hash serialized in response")
	}
}

func TestCustomerHandler_Create_InvalidStatus(t *testing.T) {
	e := newTestEcho()
	h := NewCustomerHandler(&stubCustomerService{
		createFn: func(ctx context.Context, in ports.CreateCustomerInput) (*domain.Customer, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	})

	body := strings.NewReader(`{"full_name":"Jane Doe","email":"jane@x.com","password":"pw","confirm_password":"pw","account_type":"savings","status":"frozen"}`)
	req := httptest.NewRequest(http.MethodPost, "/admin/customers", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestCustomerHandler_Update_BlankPasswordKept(t *testing.T) {
	e := newTestEcho()
	h := NewCustomerHandler(&stubCustomerService{
		updateFn: func(ctx context.Context, id string, in ports.UpdateCustomerInput) (*domain.Customer, error) {
			if in.Password != "" {
				t.Fatalf("blank password must stay blank, got %q", in.Password)
			}
			if in.Status != domain.StatusInactive {
				t.Fatalf("unexpected status: %s", in.Status)
			}
			return &domain.Customer{ID: id, FullName: in.FullName, Status: in.Status}, nil
		},
	})

	body := strings.NewReader(`{"full_name":"Jane Doe","email":"jane@x.com","account_type":"savings","balance":50,"status":"inactive"}`)
	req := httptest.NewRequest(http.MethodPut, "/admin/customers/cust_1", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("cust_1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCustomerHandler_Delete(t *testing.T) {
	e := newTestEcho()
	h := NewCustomerHandler(&stubCustomerService{
		deleteFn: func(ctx context.Context, id string) error {
			if id != "cust_1" {
				t.Fatalf("unexpected id %q", id)
			}
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/admin/customers/cust_1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("cust_1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestCustomerHandler_Me(t *testing.T) {
	e := newTestEcho()
	h := NewCustomerHandler(&stubCustomerService{
		getFn: func(ctx context.Context, id string) (*domain.Customer, error) {
			if id != "cust_1" {
				t.Fatalf("expected own id, got %q", id)
			}
			return &domain.Customer{ID: id, FullName: "Jane Doe", Status: domain.StatusActive}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextSessionKey, &domain.Session{UserID: "cust_1", Role: domain.RoleCustomer})

	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCustomerHandler_Me_NotFound(t *testing.T) {
	e := newTestEcho()
	h := NewCustomerHandler(&stubCustomerService{
		getFn: func(ctx context.Context, id string) (*domain.Customer, error) {
			return nil, domain.ErrCustomerNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextSessionKey, &domain.Session{UserID: "cust_gone", Role: domain.RoleCustomer})

	if err := h.Me(c); err != domain.ErrCustomerNotFound {
		t.Fatalf("expected ErrCustomerNotFound passthrough, got %v", err)
	}
}
