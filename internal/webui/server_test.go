package webui

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	apihttp "github.com/vitorsm19/aisel-tech-case-vitor/internal/api/http"
	"github.com/vitorsm19/aisel-tech-case-vitor/internal/client"
	"github.com/vitorsm19/aisel-tech-case-vitor/internal/config"
	"github.com/vitorsm19/aisel-tech-case-vitor/internal/domain"
)

func newTestUI(t *testing.T) (*Server, *apihttp.Server) {
	t.Helper()
	cfg := &config.Config{
		App:  config.AppConfig{Name: "test", Version: "test"},
		Auth: config.AuthConfig{JWTSecret: "test-secret", AccessTokenTTLMinutes: 60, BcryptCost: bcrypt.MinCost},
		CORS: config.CORSConfig{AllowOrigins: "*"},
	}
	api, err := apihttp.NewServer(cfg, zap.NewNop(), apihttp.DefaultSeed())
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	go func() { _ = api.App.Listener(ln) }()
	t.Cleanup(func() { _ = api.App.Shutdown() })

	ui := NewServer(config.WebConfig{
		APIURL:     "http://" + ln.Addr().String(),
		CookieName: "test_session",
	}, config.ClientConfig{TimeoutSeconds: 5}, zap.NewNop())
	return ui, api
}

type page struct {
	status   int
	body     string
	location string
	cookies  []*http.Cookie
}

func do(t *testing.T, ui *Server, req *http.Request, cookie *http.Cookie) page {
	t.Helper()
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := ui.App.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return page{
		status:   resp.StatusCode,
		body:     string(body),
		location: resp.Header.Get("Location"),
		cookies:  resp.Cookies(),
	}
}

func get(t *testing.T, ui *Server, path string, cookie *http.Cookie) page {
	return do(t, ui, httptest.NewRequest(http.MethodGet, path, nil), cookie)
}

func post(t *testing.T, ui *Server, path string, form url.Values, cookie *http.Cookie) page {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return do(t, ui, req, cookie)
}

func login(t *testing.T, ui *Server, username string) *http.Cookie {
	t.Helper()
	p := post(t, ui, "/login", url.Values{"username": {username}, "password": {"123"}}, nil)
	if p.status != http.StatusFound || p.location != "/home" {
		t.Fatalf("login %s: status %d location %q body %s", username, p.status, p.location, p.body)
	}
	for _, c := range p.cookies {
		if c.Name == "test_session" && c.Value != "" {
			return c
		}
	}
	t.Fatalf("login %s: no session cookie", username)
	return nil
}

func TestUnauthenticatedRedirectsToLogin(t *testing.T) {
	ui, _ := newTestUI(t)

	for _, path := range []string{"/", "/home", "/patient/new", "/patient/1"} {
		p := get(t, ui, path, nil)
		if p.status != http.StatusFound || p.location != "/login" {
			t.Fatalf("%s: expected redirect to /login, got %d %q", path, p.status, p.location)
		}
	}

	stale := &http.Cookie{Name: "test_session", Value: "not-a-session"}
	if p := get(t, ui, "/home", stale); p.location != "/login" {
		t.Fatalf("unknown session should redirect, got %d %q", p.status, p.location)
	}
}

func TestLoginPage(t *testing.T) {
	ui, _ := newTestUI(t)

	p := get(t, ui, "/login", nil)
	if p.status != http.StatusOK || !strings.Contains(p.body, `action="/login"`) {
		t.Fatalf("login page: %d %s", p.status, p.body)
	}

	p = post(t, ui, "/login", url.Values{"username": {"vitor@aisel.co"}, "password": {"wrong"}}, nil)
	if p.status != http.StatusUnauthorized || !strings.Contains(p.body, "Invalid email or password.") {
		t.Fatalf("bad credentials: %d %s", p.status, p.body)
	}
	if !strings.Contains(p.body, `value="vitor@aisel.co"`) {
		t.Fatalf("username not kept in form")
	}
	if ui.Sessions.Len() != 0 {
		t.Fatalf("failed login created a session")
	}

	p = post(t, ui, "/login", url.Values{"username": {""}, "password": {""}}, nil)
	if p.status != http.StatusBadRequest || !strings.Contains(p.body, "Email is required") {
		t.Fatalf("empty credentials: %d %s", p.status, p.body)
	}

	cookie := login(t, ui, "vitor@aisel.co")
	if p := get(t, ui, "/login", cookie); p.location != "/home" {
		t.Fatalf("signed-in user should skip login page, got %q", p.location)
	}
}

func TestHomeByRole(t *testing.T) {
	ui, _ := newTestUI(t)

	admin := get(t, ui, "/home", login(t, ui, "jayanka@aisel.co"))
	if admin.status != http.StatusOK {
		t.Fatalf("admin home: %d", admin.status)
	}
	for _, want := range []string{"Add Patient", "Delete", "jayanka@aisel.co", "Logout"} {
		if !strings.Contains(admin.body, want) {
			t.Fatalf("admin home missing %q", want)
		}
	}

	user := get(t, ui, "/home", login(t, ui, "vitor@aisel.co"))
	if user.status != http.StatusOK || !strings.Contains(user.body, "<table>") {
		t.Fatalf("user home: %d", user.status)
	}
	for _, unwanted := range []string{"Add Patient", "/delete", "#edit"} {
		if strings.Contains(user.body, unwanted) {
			t.Fatalf("user home shows admin control %q", unwanted)
		}
	}
}

func TestUserCannotMutate(t *testing.T) {
	ui, api := newTestUI(t)
	cookie := login(t, ui, "vitor@aisel.co")

	p := get(t, ui, "/patient/new", cookie)
	if p.status != http.StatusForbidden || !strings.Contains(p.body, "Access denied") {
		t.Fatalf("new page as user: %d %s", p.status, p.body)
	}

	form := url.Values{"firstName": {"A"}, "lastName": {"B"}, "email": {"a@b.co"}, "phoneNumber": {"1"}, "dob": {"2000-01-01"}}
	if p := post(t, ui, "/patient/new", form, cookie); p.status != http.StatusForbidden {
		t.Fatalf("create as user: %d", p.status)
	}
	if p := post(t, ui, "/patient/1", form, cookie); !strings.Contains(p.body, "You do not have permission to edit patients") {
		t.Fatalf("edit as user: %d %s", p.status, p.body)
	}
	if p := post(t, ui, "/patient/1/delete", nil, cookie); p.status != http.StatusForbidden {
		t.Fatalf("delete as user: %d", p.status)
	}

	if n, _ := api.Patients.Count(context.Background()); n != 100 {
		t.Fatalf("store changed: %d", n)
	}

	detail := get(t, ui, "/patient/1", cookie)
	if detail.status != http.StatusOK || strings.Contains(detail.body, "<form") {
		t.Fatalf("user detail should be read-only: %d", detail.status)
	}
}

func TestPatientNotFound(t *testing.T) {
	ui, _ := newTestUI(t)
	cookie := login(t, ui, "jayanka@aisel.co")

	for _, path := range []string{"/patient/999", "/patient/abc"} {
		p := get(t, ui, path, cookie)
		if p.status != http.StatusNotFound || !strings.Contains(p.body, "Patient not found") {
			t.Fatalf("%s: %d %s", path, p.status, p.body)
		}
		if !strings.Contains(p.body, `href="/home"`) {
			t.Fatalf("%s: missing link back", path)
		}
	}
}

func TestAdminPatientLifecycle(t *testing.T) {
	ui, api := newTestUI(t)
	cookie := login(t, ui, "jayanka@aisel.co")

	bad := url.Values{"firstName": {"Ada"}, "lastName": {"Lovelace"}, "email": {"not-an-email"}, "phoneNumber": {"555"}, "dob": {"1815-12-10"}}
	p := post(t, ui, "/patient/new", bad, cookie)
	if p.status != http.StatusBadRequest || !strings.Contains(p.body, "Email is invalid") {
		t.Fatalf("invalid create: %d %s", p.status, p.body)
	}
	if !strings.Contains(p.body, `value="Lovelace"`) {
		t.Fatalf("form values not kept")
	}

	good := url.Values{"firstName": {"Ada"}, "lastName": {"Lovelace"}, "email": {"ada@example.com"}, "phoneNumber": {"555"}, "dob": {"1815-12-10"}}
	p = post(t, ui, "/patient/new", good, cookie)
	if p.status != http.StatusSeeOther || p.location != "/patient/101" {
		t.Fatalf("create: %d %q", p.status, p.location)
	}

	p = get(t, ui, "/patient/101", cookie)
	if p.status != http.StatusOK || !strings.Contains(p.body, "Ada Lovelace") || !strings.Contains(p.body, "Delete Patient") {
		t.Fatalf("detail: %d %s", p.status, p.body)
	}

	good.Set("lastName", "King")
	p = post(t, ui, "/patient/101", good, cookie)
	if p.status != http.StatusSeeOther || p.location != "/patient/101?saved=1" {
		t.Fatalf("update: %d %q", p.status, p.location)
	}
	if p := get(t, ui, p.location, cookie); !strings.Contains(p.body, "Patient updated successfully.") {
		t.Fatalf("saved banner missing")
	}
	stored, err := api.Patients.Get(context.Background(), 101)
	if err != nil || stored.LastName != "King" {
		t.Fatalf("update not stored: %+v %v", stored, err)
	}

	p = post(t, ui, "/patient/101/delete", nil, cookie)
	if p.status != http.StatusSeeOther || p.location != "/home" {
		t.Fatalf("delete: %d %q", p.status, p.location)
	}
	if p := post(t, ui, "/patient/101/delete", nil, cookie); p.status != http.StatusNotFound {
		t.Fatalf("second delete: %d", p.status)
	}
}

func TestEditKeepsStoredDOB(t *testing.T) {
	ui, api := newTestUI(t)
	cookie := login(t, ui, "jayanka@aisel.co")

	p := get(t, ui, "/patient/51", cookie)
	if !strings.Contains(p.body, `value="1986-02-29"`) || strings.Contains(p.body, `type="date"`) {
		t.Fatalf("edit form should echo the stored dob as text: %s", p.body)
	}

	form := url.Values{
		"firstName":   {"Jay"},
		"lastName":    {"Gomez"},
		"email":       {"jason.gomez@gmail.com"},
		"phoneNumber": {"+1-555-1239"},
		"dob":         {"1986-02-29"},
	}
	p = post(t, ui, "/patient/51", form, cookie)
	if p.status != http.StatusSeeOther || p.location != "/patient/51?saved=1" {
		t.Fatalf("update: %d %q %s", p.status, p.location, p.body)
	}
	stored, err := api.Patients.Get(context.Background(), 51)
	if err != nil || stored.FirstName != "Jay" || stored.DOB != "1986-02-29" {
		t.Fatalf("update not stored: %+v %v", stored, err)
	}

	form.Set("dob", "1986-02-30")
	p = post(t, ui, "/patient/51", form, cookie)
	if p.status != http.StatusBadRequest || !strings.Contains(p.body, "Date of birth is invalid") {
		t.Fatalf("changed invalid dob: %d %s", p.status, p.body)
	}
	if !strings.Contains(p.body, `value="1986-02-30"`) {
		t.Fatalf("submitted dob not kept in form")
	}
}

func TestLogout(t *testing.T) {
	ui, _ := newTestUI(t)
	cookie := login(t, ui, "jayanka@aisel.co")

	p := get(t, ui, "/logout", cookie)
	if p.status != http.StatusFound || p.location != "/login" {
		t.Fatalf("logout: %d %q", p.status, p.location)
	}
	if ui.Sessions.Len() != 0 {
		t.Fatalf("session kept after logout")
	}
	if p := get(t, ui, "/home", cookie); p.location != "/login" {
		t.Fatalf("old cookie still works: %d", p.status)
	}
}

func TestSessionStoreExpiry(t *testing.T) {
	store := NewSessionStore()
	now := time.Now()
	store.now = func() time.Time { return now }

	api := client.New("http://127.0.0.1:1")
	api.Session().Set("tok", domain.UserInfo{ID: "2", Username: "vitor@aisel.co", Role: domain.RoleUser}, now.Add(time.Minute))
	id, expires := store.Create(api)
	if !expires.Equal(now.Add(time.Minute)) {
		t.Fatalf("session should expire with the token, got %v", expires)
	}
	if _, ok := store.Get(id); !ok {
		t.Fatalf("fresh session not found")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := store.Get(id); ok {
		t.Fatalf("expired session returned")
	}
	if store.Len() != 0 {
		t.Fatalf("expired session not removed")
	}
}
