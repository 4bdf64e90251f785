package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestGenerateAndParseToken(t *testing.T) {
	id := uuid.New()
	tok, err := GenerateToken(testSecret, id, RoleBHW, "Maria Santos", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := ParseToken(testSecret, tok)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Subject != id.String() {
		t.Errorf("expected subject %s, got %s", id, claims.Subject)
	}
	if claims.Role != RoleBHW {
		t.Errorf("expected role bhw, got %s", claims.Role)
	}
	if claims.Name != "Maria Santos" {
		t.Errorf("expected name Maria Santos, got %s", claims.Name)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	tok, _ := GenerateToken(testSecret, uuid.New(), RoleAdmin, "x", time.Hour)
	if _, err := ParseToken("another-secret-another-secret-ab", tok); err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestParseToken_Expired(t *testing.T) {
	tok, _ := GenerateToken(testSecret, uuid.New(), RoleAdmin, "x", -time.Minute)
	if _, err := ParseToken(testSecret, tok); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestJWTMiddleware_SetsContext(t *testing.T) {
	e := echo.New()
	id := uuid.New()
	tok, _ := GenerateToken(testSecret, id, RoleBHW, "Maria", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := JWTMiddleware(testSecret)(func(c echo.Context) error {
		called = true
		if AccountIDFromContext(c) != id.String() {
			t.Error("account id not propagated")
		}
		if RoleFromContext(c) != RoleBHW {
			t.Error("role not propagated")
		}
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Error("expected next handler to run")
	}
}

func TestJWTMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := JWTMiddleware(testSecret)(func(c echo.Context) error { return nil })
	err := handler(c)
	if err == nil {
		t.Fatal("expected error")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}

func TestRequireRole(t *testing.T) {
	e := echo.New()

	run := func(role string, required ...string) error {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		mw := DevAuthMiddleware()
		if role != RoleAdmin {
			tok, _ := GenerateToken(testSecret, uuid.New(), role, "x", time.Hour)
			req.Header.Set("Authorization", "Bearer "+tok)
			mw = JWTMiddleware(testSecret)
		}
		handler := mw(RequireRole(required...)(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		}))
		return handler(c)
	}

	if err := run(RoleBHW, RoleBHW); err != nil {
		t.Errorf("bhw should access bhw route: %v", err)
	}
	if err := run(RoleHousehold, RoleBHW); err == nil {
		t.Error("household should not access bhw route")
	}
	// admin passes everything
	if err := run(RoleAdmin, RoleBHW); err != nil {
		t.Errorf("admin should access bhw route: %v", err)
	}
}
