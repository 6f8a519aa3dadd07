package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ragavibes/storefront-backend/api/middleware"
	pkgerrors "github.com/ragavibes/storefront-backend/pkg/errors"
)

// userIDFromRequest pulls the authenticated user out of the request context.
// The auth middleware guarantees it on protected routes; a miss means the
// route is wired wrong, not that the client erred.
func userIDFromRequest(r *http.Request) (uuid.UUID, error) {
	raw := middleware.UserIDFromContext(r.Context())
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing user context")
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid user context")
	}
	return userID, nil
}
