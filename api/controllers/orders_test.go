package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ragavibes/storefront-backend/api/middleware"
	ordersvc "github.com/ragavibes/storefront-backend/internal/orders"
	pkgerrors "github.com/ragavibes/storefront-backend/pkg/errors"
)

type stubOrdersService struct {
	history []ordersvc.OrderDTO
	order   *ordersvc.OrderDTO
	err     error
}

func (s *stubOrdersService) History(ctx context.Context, userID uuid.UUID) ([]ordersvc.OrderDTO, error) {
	return s.history, s.err
}

func (s *stubOrdersService) Detail(ctx context.Context, orderID, userID uuid.UUID) (*ordersvc.OrderDTO, error) {
	return s.order, s.err
}

func TestOrdersList(t *testing.T) {
	logg := testLogger()

	t.Run("missing user context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
		rec := httptest.NewRecorder()
		OrdersList(&stubOrdersService{}, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("returns history", func(t *testing.T) {
		svc := &stubOrdersService{history: []ordersvc.OrderDTO{
			{ID: uuid.New(), TotalAmount: 10000, Status: "placed"},
		}}
		req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
		req = req.WithContext(middleware.WithUserID(context.Background(), uuid.NewString()))
		rec := httptest.NewRecorder()
		OrdersList(svc, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		var envelope struct {
			Data struct {
				Orders []ordersvc.OrderDTO `json:"orders"`
				Count  int                 `json:"count"`
			} `json:"data"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if envelope.Data.Count != 1 {
			t.Fatalf("unexpected count %d", envelope.Data.Count)
		}
	})
}

func TestOrdersDetail(t *testing.T) {
	logg := testLogger()
	userID := uuid.New()
	orderID := uuid.New()

	newRequest := func(rawID string) *http.Request {
		routeCtx := chi.NewRouteContext()
		routeCtx.URLParams.Add("orderId", rawID)
		ctx := middleware.WithUserID(context.Background(), userID.String())
		ctx = context.WithValue(ctx, chi.RouteCtxKey, routeCtx)
		return httptest.NewRequest(http.MethodGet, "/api/v1/orders/"+rawID, nil).WithContext(ctx)
	}

	t.Run("invalid order id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		OrdersDetail(&stubOrdersService{}, logg).ServeHTTP(rec, newRequest("not-a-uuid"))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("unknown order is 404", func(t *testing.T) {
		svc := &stubOrdersService{err: pkgerrors.New(pkgerrors.CodeNotFound, "order not found")}
		rec := httptest.NewRecorder()
		OrdersDetail(svc, logg).ServeHTTP(rec, newRequest(orderID.String()))
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("returns the order", func(t *testing.T) {
		svc := &stubOrdersService{order: &ordersvc.OrderDTO{ID: orderID, TotalAmount: 5000, Status: "placed"}}
		rec := httptest.NewRecorder()
		OrdersDetail(svc, logg).ServeHTTP(rec, newRequest(orderID.String()))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})
}
