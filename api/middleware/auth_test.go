package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	pkgAuth "github.com/ragavibes/storefront-backend/pkg/auth"
	"github.com/ragavibes/storefront-backend/pkg/config"
)

type stubSessionChecker struct {
	has bool
	err error
}

func (s *stubSessionChecker) HasSession(ctx context.Context, accessID string) (bool, error) {
	return s.has, s.err
}

func authTestJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "middleware-secret",
		Issuer:            "storefront-test",
		ExpirationMinutes: 15,
	}
}

func mintTestToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := pkgAuth.MintAccessToken(authTestJWTConfig(), time.Now().UTC(), pkgAuth.AccessTokenPayload{
		UserID: userID,
		Email:  "asha@example.com",
		JTI:    uuid.NewString(),
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func runAuth(t *testing.T, authHeader string, checker *stubSessionChecker) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var seenUserID string
	handlerHit := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerHit = true
		seenUserID = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	mw := Auth(authTestJWTConfig(), checker, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	mw(next).ServeHTTP(w, req)

	if w.Code != http.StatusOK && handlerHit {
		t.Fatalf("handler invoked despite rejection")
	}
	return w, seenUserID
}

func TestAuthMissingHeaderIs401(t *testing.T) {
	w, _ := runAuth(t, "", &stubSessionChecker{has: true})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", w.Code)
	}
}

func TestAuthGarbageTokenIs401(t *testing.T) {
	w, _ := runAuth(t, "Bearer not-a-jwt", &stubSessionChecker{has: true})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", w.Code)
	}
}

func TestAuthRevokedSessionIs401(t *testing.T) {
	token := mintTestToken(t, uuid.New())
	w, _ := runAuth(t, "Bearer "+token, &stubSessionChecker{has: false})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", w.Code)
	}
}

func TestAuthRedisFailureFailsClosed(t *testing.T) {
	token := mintTestToken(t, uuid.New())
	w, _ := runAuth(t, "Bearer "+token, &stubSessionChecker{err: errors.New("redis down")})
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", w.Code)
	}
}

func TestAuthValidTokenSeedsUserID(t *testing.T) {
	userID := uuid.New()
	token := mintTestToken(t, userID)
	w, seenUserID := runAuth(t, "Bearer "+token, &stubSessionChecker{has: true})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	if seenUserID != userID.String() {
		t.Fatalf("expected user id %s in context, got %q", userID, seenUserID)
	}
}
