package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/ragavibes/storefront-backend/api/middleware"
	checkoutsvc "github.com/ragavibes/storefront-backend/internal/checkout"
	ordersvc "github.com/ragavibes/storefront-backend/internal/orders"
	pkgerrors "github.com/ragavibes/storefront-backend/pkg/errors"
)

type stubCheckoutService struct {
	order        *ordersvc.OrderDTO
	err          error
	lastUserID   uuid.UUID
	lastShipping checkoutsvc.ShippingDetails
}

func (s *stubCheckoutService) PlaceOrder(ctx context.Context, userID uuid.UUID, shipping checkoutsvc.ShippingDetails) (*ordersvc.OrderDTO, error) {
	s.lastUserID = userID
	s.lastShipping = shipping
	return s.order, s.err
}

func checkoutBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]string{
		"full_name": "Asha Rao",
		"mobile":    "9876543210",
		"address":   "12 MG Road, Bengaluru",
		"email":     "asha@example.com",
	})
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	return body
}

func TestCheckout(t *testing.T) {
	logg := testLogger()
	userID := uuid.New()

	t.Run("missing user context", func(t *testing.T) {
		svc := &stubCheckoutService{}
		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", bytes.NewReader(checkoutBody(t)))
		rec := httptest.NewRecorder()
		Checkout(svc, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("missing shipping field is 400", func(t *testing.T) {
		svc := &stubCheckoutService{}
		body, _ := json.Marshal(map[string]string{"full_name": "Asha Rao"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", bytes.NewReader(body))
		req = req.WithContext(middleware.WithUserID(context.Background(), userID.String()))
		rec := httptest.NewRecorder()
		Checkout(svc, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("email field is required but not format-checked", func(t *testing.T) {
		svc := &stubCheckoutService{order: &ordersvc.OrderDTO{Status: "placed"}}
		body, _ := json.Marshal(map[string]string{
			"full_name": "Asha Rao",
			"mobile":    "9876543210",
			"address":   "12 MG Road, Bengaluru",
			"email":     "not-an-email",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", bytes.NewReader(body))
		req = req.WithContext(middleware.WithUserID(context.Background(), userID.String()))
		rec := httptest.NewRecorder()
		Checkout(svc, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", rec.Code)
		}
		if svc.lastShipping.Email != "not-an-email" {
			t.Fatalf("email not passed through verbatim")
		}
	})

	t.Run("empty cart maps to 400", func(t *testing.T) {
		svc := &stubCheckoutService{err: pkgerrors.New(pkgerrors.CodeValidation, "cart contains no items")}
		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", bytes.NewReader(checkoutBody(t)))
		req = req.WithContext(middleware.WithUserID(context.Background(), userID.String()))
		rec := httptest.NewRecorder()
		Checkout(svc, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("success returns 201 with order", func(t *testing.T) {
		orderID := uuid.New()
		svc := &stubCheckoutService{order: &ordersvc.OrderDTO{
			ID:          orderID,
			TotalAmount: 10000,
			Status:      "placed",
		}}
		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", bytes.NewReader(checkoutBody(t)))
		req = req.WithContext(middleware.WithUserID(context.Background(), userID.String()))
		rec := httptest.NewRecorder()
		Checkout(svc, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", rec.Code)
		}
		if svc.lastUserID != userID {
			t.Fatalf("service called with wrong user")
		}
		if svc.lastShipping.FullName != "Asha Rao" {
			t.Fatalf("shipping details not passed through")
		}

		var envelope struct {
			Data ordersvc.OrderDTO `json:"data"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if envelope.Data.ID != orderID {
			t.Fatalf("unexpected order id %s", envelope.Data.ID)
		}
	})
}
