package controllers

import (
	"net/http"

	"github.com/ragavibes/storefront-backend/api/responses"
	"github.com/ragavibes/storefront-backend/internal/products"
	pkgerrors "github.com/ragavibes/storefront-backend/pkg/errors"
	"github.com/ragavibes/storefront-backend/pkg/logger"
)

// ProductsList serves the catalog, narrowed by the optional ?q= substring.
func ProductsList(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "products service unavailable"))
			return
		}

		query := r.URL.Query().Get("q")
		items, err := svc.Search(r.Context(), query)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"products": items,
			"count":    len(items),
		})
	}
}
