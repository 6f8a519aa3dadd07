package controllers

import (
	"net/http"

	"github.com/ragavibes/storefront-backend/api/responses"
	"github.com/ragavibes/storefront-backend/api/validators"
	checkoutsvc "github.com/ragavibes/storefront-backend/internal/checkout"
	pkgerrors "github.com/ragavibes/storefront-backend/pkg/errors"
	"github.com/ragavibes/storefront-backend/pkg/logger"
)

type checkoutRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Mobile   string `json:"mobile" validate:"required"`
	Address  string `json:"address" validate:"required"`
	Email    string `json:"email" validate:"required"`
}

// Checkout places an order from the user's current cart.
func Checkout(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		userID, err := userIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body checkoutRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.PlaceOrder(r.Context(), userID, checkoutsvc.ShippingDetails{
			FullName: body.FullName,
			Mobile:   body.Mobile,
			Address:  body.Address,
			Email:    body.Email,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}
