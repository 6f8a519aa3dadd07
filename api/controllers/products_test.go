package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	productsvc "github.com/ragavibes/storefront-backend/internal/products"
	pkgerrors "github.com/ragavibes/storefront-backend/pkg/errors"
)

type stubProductsService struct {
	items     []productsvc.ProductDTO
	err       error
	lastQuery string
}

func (s *stubProductsService) Search(ctx context.Context, query string) ([]productsvc.ProductDTO, error) {
	s.lastQuery = query
	return s.items, s.err
}

func TestProductsList(t *testing.T) {
	logg := testLogger()

	t.Run("passes query through", func(t *testing.T) {
		svc := &stubProductsService{items: []productsvc.ProductDTO{{Name: "Sitar", Price: 5000}}}
		req := httptest.NewRequest(http.MethodGet, "/api/v1/products?q=sitar", nil)
		rec := httptest.NewRecorder()
		ProductsList(svc, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if svc.lastQuery != "sitar" {
			t.Fatalf("expected query to pass through, got %q", svc.lastQuery)
		}

		var envelope struct {
			Data struct {
				Products []productsvc.ProductDTO `json:"products"`
				Count    int                     `json:"count"`
			} `json:"data"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if envelope.Data.Count != 1 || envelope.Data.Products[0].Name != "Sitar" {
			t.Fatalf("unexpected payload %+v", envelope.Data)
		}
	})

	t.Run("service failure maps to 500", func(t *testing.T) {
		svc := &stubProductsService{err: pkgerrors.New(pkgerrors.CodeInternal, "list catalog")}
		req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
		rec := httptest.NewRecorder()
		ProductsList(svc, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
	})
}
