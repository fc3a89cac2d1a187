package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/vitorsm19/aisel-tech-case-vitor/internal/domain"
	"github.com/vitorsm19/aisel-tech-case-vitor/internal/repository"
	apperrors "github.com/vitorsm19/aisel-tech-case-vitor/pkg/util/errorutil"
)

const testSecret = "test-secret"

var (
	adminUser = domain.User{ID: "1", Username: "admin@example.com", Role: domain.RoleAdmin}
	plainUser = domain.User{ID: "2", Username: "user@example.com", Role: domain.RoleUser}
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret, 60)
	tok, exp, err := tm.GenerateToken(&adminUser)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if time.Until(exp) <= 59*time.Minute {
		t.Fatalf("unexpected expiry %v", exp)
	}

	claims, err := tm.ParseToken(tok)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Subject != "1" || claims.Username != adminUser.Username || claims.Role != domain.RoleAdmin {
		t.Fatalf("claims mismatch: %+v", claims)
	}
	if claims.ID == "" {
		t.Fatalf("expected jti")
	}
}

func TestTokenManager_Rejects(t *testing.T) {
	tm := NewTokenManager(testSecret, 60)
	tok, _, _ := tm.GenerateToken(&plainUser)

	if _, err := NewTokenManager("other-secret", 60).ParseToken(tok); err == nil {
		t.Fatalf("expected error for wrong secret")
	}

	expired := NewTokenManager(testSecret, 60)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, _, _ := expired.GenerateToken(&plainUser)
	if _, err := tm.ParseToken(old); err == nil {
		t.Fatalf("expected error for expired token")
	}

	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "2", "role": "user"})
	s, _ := noExp.SignedString([]byte(testSecret))
	if _, err := tm.ParseToken(s); err == nil {
		t.Fatalf("expected error for token without exp")
	}

	badRole := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "2", "role": "superuser", "exp": time.Now().Add(time.Hour).Unix(),
	})
	s, _ = badRole.SignedString([]byte(testSecret))
	if _, err := tm.ParseToken(s); err == nil {
		t.Fatalf("expected error for unknown role")
	}

	if _, err := tm.ParseToken("not.a.token"); err == nil {
		t.Fatalf("expected error for garbage")
	}
}

func newProtectedApp(tm *TokenManager, gates ...fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			de := apperrors.ToDomainError(err)
			return c.Status(de.HTTPStatus).SendString(de.Code)
		},
	})
	mw := NewAuthMiddleware(tm, repository.NewUserRepository([]domain.User{adminUser, plainUser}))
	handlers := append([]fiber.Handler{mw.Handle}, gates...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		p, ok := PrincipalFromContext(c)
		if !ok {
			return fiber.ErrInternalServerError
		}
		return c.SendString(string(p.User.Role))
	})
	app.Get("/protected", handlers...)
	return app
}

func TestAuthMiddleware(t *testing.T) {
	tm := NewTokenManager(testSecret, 60)
	userTok, _, _ := tm.GenerateToken(&plainUser)
	ghostTok, _, _ := tm.GenerateToken(&domain.User{ID: "99", Username: "ghost", Role: domain.RoleUser})

	testCases := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + userTok, http.StatusUnauthorized},
		{"empty bearer", "Bearer ", http.StatusUnauthorized},
		{"bad token", "Bearer abc", http.StatusUnauthorized},
		{"unknown subject", "Bearer " + ghostTok, http.StatusUnauthorized},
		{"valid", "Bearer " + userTok, http.StatusOK},
		{"lowercase scheme", "bearer " + userTok, http.StatusOK},
	}

	app := newProtectedApp(tm)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, resp.StatusCode)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	tm := NewTokenManager(testSecret, 60)
	adminTok, _, _ := tm.GenerateToken(&adminUser)
	userTok, _, _ := tm.GenerateToken(&plainUser)
	app := newProtectedApp(tm, RequireAdmin())

	for tok, status := range map[string]int{adminTok: http.StatusOK, userTok: http.StatusForbidden} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != status {
			t.Fatalf("expected %d, got %d", status, resp.StatusCode)
		}
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("123", 4)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if err := ComparePassword(hash, "123"); err != nil {
		t.Fatalf("ComparePassword: %v", err)
	}
	if err := ComparePassword(hash, "124"); err == nil {
		t.Fatalf("expected mismatch")
	}
}
