package client

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	apihttp "github.com/vitorsm19/aisel-tech-case-vitor/internal/api/http"
	"github.com/vitorsm19/aisel-tech-case-vitor/internal/config"
	"github.com/vitorsm19/aisel-tech-case-vitor/internal/domain"
)

// startAPI runs the real API on a loopback port and returns its base URL.
func startAPI(t *testing.T) (string, *apihttp.Server) {
	t.Helper()
	cfg := &config.Config{
		App:  config.AppConfig{Name: "test", Version: "test"},
		Auth: config.AuthConfig{JWTSecret: "test-secret", AccessTokenTTLMinutes: 60, BcryptCost: bcrypt.MinCost},
		CORS: config.CORSConfig{AllowOrigins: "*"},
	}
	srv, err := apihttp.NewServer(cfg, zap.NewNop(), apihttp.DefaultSeed())
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	go func() { _ = srv.App.Listener(ln) }()
	t.Cleanup(func() { _ = srv.App.Shutdown() })
	return "http://" + ln.Addr().String(), srv
}

func TestLogin(t *testing.T) {
	baseURL, _ := startAPI(t)
	ctx := context.Background()

	admin := New(baseURL)
	res, err := admin.Login(ctx, "jayanka@aisel.co", "123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.User.Role != domain.RoleAdmin || !admin.Session().IsAdmin() || !admin.Session().IsAuthenticated() {
		t.Fatalf("admin session not populated: %+v", res.User)
	}

	user := New(baseURL)
	if _, err := user.Login(ctx, "vitor@aisel.co", "123"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Session().IsAdmin() || !user.Session().IsUser() {
		t.Fatalf("user session has wrong role")
	}

	bad := New(baseURL)
	_, err = bad.Login(ctx, "vitor@aisel.co", "nope")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if err.Error() != "Invalid email or password." {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if bad.Session().IsAuthenticated() {
		t.Fatalf("failed login populated the session")
	}

	var verr *ValidationError
	if _, err := bad.Login(ctx, " ", ""); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for empty credentials, got %v", err)
	}
}

func TestMe(t *testing.T) {
	baseURL, _ := startAPI(t)
	ctx := context.Background()

	c := New(baseURL)
	if _, err := c.Me(ctx); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated before login, got %v", err)
	}
	if _, err := c.Login(ctx, "vitor@aisel.co", "123"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	u, err := c.Me(ctx)
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if u.Username != "vitor@aisel.co" || u.Role != domain.RoleUser {
		t.Fatalf("unexpected user %+v", u)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	baseURL, _ := startAPI(t)
	ctx := context.Background()

	c := New(baseURL)
	if _, err := c.Login(ctx, "jayanka@aisel.co", "123"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if _, err := c.ListPatients(ctx); err != nil {
		t.Fatalf("ListPatients: %v", err)
	}

	c.Logout()
	if c.Session().IsAuthenticated() || c.Session().IsAdmin() {
		t.Fatalf("session still authenticated after logout")
	}
	if _, ok := c.Session().User(); ok {
		t.Fatalf("user still held after logout")
	}
	if _, err := c.ListPatients(ctx); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestUnauthenticatedCallsFailLocally(t *testing.T) {
	// Nothing listens here; a network call would fail with a different error.
	c := New("http://127.0.0.1:1")
	if _, err := c.GetPatient(context.Background(), 1); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestCreateValidatesBeforeSubmit(t *testing.T) {
	baseURL, srv := startAPI(t)
	ctx := context.Background()

	c := New(baseURL)
	if _, err := c.Login(ctx, "jayanka@aisel.co", "123"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	before := srv.Metrics.Snapshot().TotalRequests

	_, err := c.CreatePatient(ctx, domain.PatientInput{
		FirstName: "No", LastName: "Email", PhoneNumber: "1", DOB: "2000-01-01",
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field("email") != "Email is required" {
		t.Fatalf("unexpected field errors %v", verr.Fields)
	}
	if after := srv.Metrics.Snapshot().TotalRequests; after != before {
		t.Fatalf("invalid create reached the server (%d -> %d requests)", before, after)
	}
}

func TestPatientLifecycle(t *testing.T) {
	baseURL, _ := startAPI(t)
	ctx := context.Background()

	c := New(baseURL)
	if _, err := c.Login(ctx, "jayanka@aisel.co", "123"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	created, err := c.CreatePatient(ctx, domain.PatientInput{
		FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com", PhoneNumber: "555", DOB: "1906-12-09",
	})
	if err != nil {
		t.Fatalf("CreatePatient: %v", err)
	}
	if created.ID != 101 {
		t.Fatalf("expected id 101, got %d", created.ID)
	}

	last := "Murray Hopper"
	updated, err := c.UpdatePatient(ctx, created.ID, domain.PatientPatch{LastName: &last})
	if err != nil {
		t.Fatalf("UpdatePatient: %v", err)
	}
	if updated.LastName != last || updated.Email != "grace@example.com" {
		t.Fatalf("unexpected update %+v", updated)
	}

	if err := c.DeletePatient(ctx, created.ID); err != nil {
		t.Fatalf("DeletePatient: %v", err)
	}
	if _, err := c.GetPatient(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := c.DeletePatient(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}

	patients, err := c.ListPatients(ctx)
	if err != nil {
		t.Fatalf("ListPatients: %v", err)
	}
	if len(patients) != 100 {
		t.Fatalf("expected 100 patients, got %d", len(patients))
	}
}

func TestNonAdminGetsPermissionDenied(t *testing.T) {
	baseURL, srv := startAPI(t)
	ctx := context.Background()

	c := New(baseURL)
	if _, err := c.Login(ctx, "vitor@aisel.co", "123"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := c.DeletePatient(ctx, 1); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
	if n, _ := srv.Patients.Count(ctx); n != 100 {
		t.Fatalf("store changed: %d", n)
	}
}

func TestServerRejectionClearsSession(t *testing.T) {
	baseURL, _ := startAPI(t)
	c := New(baseURL)
	c.Session().Set("forged", domain.UserInfo{ID: "1", Username: "x", Role: domain.RoleAdmin}, time.Time{})

	if _, err := c.ListPatients(context.Background()); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if c.Session().IsAuthenticated() {
		t.Fatalf("session kept a rejected token")
	}
}

func TestSessionExpiry(t *testing.T) {
	s := NewSession()
	now := time.Now()
	s.now = func() time.Time { return now }
	s.Set("tok", domain.UserInfo{ID: "1", Role: "ADMIN"}, now.Add(time.Minute))

	if !s.IsAdmin() {
		t.Fatalf("role comparison should be case-insensitive")
	}
	now = now.Add(2 * time.Minute)
	if s.IsAuthenticated() || s.IsAdmin() {
		t.Fatalf("expired session still authenticated")
	}
}
