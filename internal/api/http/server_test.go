package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/vitorsm19/aisel-tech-case-vitor/internal/config"
	"github.com/vitorsm19/aisel-tech-case-vitor/internal/domain"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := &config.Config{
		App:  config.AppConfig{Name: "test", Version: "test", RequestTimeoutSeconds: 5},
		Auth: config.AuthConfig{JWTSecret: "test-secret", AccessTokenTTLMinutes: 60, BcryptCost: bcrypt.MinCost},
		CORS: config.CORSConfig{AllowOrigins: "*"},
	}
	srv, err := NewServer(cfg, zap.NewNop(), DefaultSeed())
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return srv
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*nethttp.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test %s %s: %v", method, path, err)
	}
	data, _ := io.ReadAll(resp.Body)
	return resp, data
}

func login(t *testing.T, app *fiber.App, username string) string {
	t.Helper()
	resp, body := doJSON(t, app, nethttp.MethodPost, "/api/auth/login", "", map[string]string{
		"username": username,
		"password": "123",
	})
	if resp.StatusCode != nethttp.StatusOK {
		t.Fatalf("login %s: status %d body %s", username, resp.StatusCode, body)
	}
	var out struct {
		AccessToken string          `json:"access_token"`
		User        domain.UserInfo `json:"user"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	return out.AccessToken
}

type errorEnvelope struct {
	Error struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func decodeError(t *testing.T, body []byte) errorEnvelope {
	t.Helper()
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("decode error envelope %s: %v", body, err)
	}
	return env
}

func TestLogin(t *testing.T) {
	srv := newTestServer(t)

	testCases := []struct {
		name     string
		username string
		password string
		status   int
		role     domain.Role
	}{
		{"admin", "jayanka@aisel.co", "123", nethttp.StatusOK, domain.RoleAdmin},
		{"user", "vitor@aisel.co", "123", nethttp.StatusOK, domain.RoleUser},
		{"wrong password", "vitor@aisel.co", "bad", nethttp.StatusUnauthorized, ""},
		{"missing fields", "", "", nethttp.StatusBadRequest, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := doJSON(t, srv.App, nethttp.MethodPost, "/api/auth/login", "", map[string]string{
				"username": tc.username,
				"password": tc.password,
			})
			if resp.StatusCode != tc.status {
				t.Fatalf("expected %d, got %d: %s", tc.status, resp.StatusCode, body)
			}
			if tc.status != nethttp.StatusOK {
				return
			}
			var out struct {
				AccessToken string          `json:"access_token"`
				User        domain.UserInfo `json:"user"`
			}
			if err := json.Unmarshal(body, &out); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if out.AccessToken == "" || out.User.Role != tc.role || out.User.Username != tc.username {
				t.Fatalf("unexpected response %s", body)
			}
		})
	}
}

func TestPatientsRequireToken(t *testing.T) {
	srv := newTestServer(t)
	resp, body := doJSON(t, srv.App, nethttp.MethodGet, "/api/patients", "", nil)
	if resp.StatusCode != nethttp.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	if decodeError(t, body).Error.Code != "UNAUTHORIZED" {
		t.Fatalf("unexpected envelope %s", body)
	}

	resp, _ = doJSON(t, srv.App, nethttp.MethodGet, "/api/patients", "garbage", nil)
	if resp.StatusCode != nethttp.StatusUnauthorized {
		t.Fatalf("expected 401 for bad token, got %d", resp.StatusCode)
	}
}

func TestListAndGet(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv.App, "vitor@aisel.co")

	resp, body := doJSON(t, srv.App, nethttp.MethodGet, "/api/patients", token, nil)
	if resp.StatusCode != nethttp.StatusOK {
		t.Fatalf("list: %d", resp.StatusCode)
	}
	var patients []domain.Patient
	if err := json.Unmarshal(body, &patients); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(patients) != 100 || patients[0].ID != 1 {
		t.Fatalf("unexpected list: %d items", len(patients))
	}

	resp, body = doJSON(t, srv.App, nethttp.MethodGet, "/api/patients/7", token, nil)
	var p domain.Patient
	_ = json.Unmarshal(body, &p)
	if resp.StatusCode != nethttp.StatusOK || p.FirstName != "Michael" {
		t.Fatalf("get: %d %s", resp.StatusCode, body)
	}

	resp, body = doJSON(t, srv.App, nethttp.MethodGet, "/api/patients/999", token, nil)
	if resp.StatusCode != nethttp.StatusNotFound || decodeError(t, body).Error.Message != "patient not found" {
		t.Fatalf("expected 404, got %d %s", resp.StatusCode, body)
	}

	resp, _ = doJSON(t, srv.App, nethttp.MethodGet, "/api/patients/abc", token, nil)
	if resp.StatusCode != nethttp.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %d", resp.StatusCode)
	}
}

func TestNonAdminCannotMutate(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv.App, "vitor@aisel.co")
	valid := map[string]string{
		"firstName": "A", "lastName": "B", "email": "a@b.com", "phoneNumber": "1", "dob": "2000-01-01",
	}

	requests := []struct {
		method string
		path   string
		body   any
	}{
		{nethttp.MethodPost, "/api/patients", valid},
		{nethttp.MethodPut, "/api/patients/1", map[string]string{"firstName": "X"}},
		{nethttp.MethodPatch, "/api/patients/1", map[string]string{"firstName": "X"}},
		{nethttp.MethodDelete, "/api/patients/1", nil},
	}
	for _, r := range requests {
		resp, body := doJSON(t, srv.App, r.method, r.path, token, r.body)
		if resp.StatusCode != nethttp.StatusForbidden {
			t.Fatalf("%s %s: expected 403, got %d", r.method, r.path, resp.StatusCode)
		}
		if decodeError(t, body).Error.Code != "FORBIDDEN" {
			t.Fatalf("unexpected envelope %s", body)
		}
	}

	p, err := srv.Patients.Get(context.Background(), 1)
	if err != nil || p.FirstName != "James" {
		t.Fatalf("patient 1 changed: %+v %v", p, err)
	}
	if n, _ := srv.Patients.Count(context.Background()); n != 100 {
		t.Fatalf("store changed: %d", n)
	}
}

func TestAdminCRUD(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv.App, "jayanka@aisel.co")

	resp, body := doJSON(t, srv.App, nethttp.MethodPost, "/api/patients", token, map[string]string{
		"firstName": "Ada", "lastName": "Lovelace", "phoneNumber": "555", "dob": "1815-12-10",
	})
	if resp.StatusCode != nethttp.StatusBadRequest {
		t.Fatalf("expected 400 for missing email, got %d", resp.StatusCode)
	}
	if decodeError(t, body).Error.Details["email"] != "Email is required" {
		t.Fatalf("expected field error, got %s", body)
	}
	if n, _ := srv.Patients.Count(context.Background()); n != 100 {
		t.Fatalf("invalid create reached the store")
	}

	resp, body = doJSON(t, srv.App, nethttp.MethodPost, "/api/patients", token, map[string]string{
		"firstName": "Ada", "lastName": "Lovelace", "email": "ada@example.com", "phoneNumber": "555", "dob": "1815-12-10",
	})
	if resp.StatusCode != nethttp.StatusCreated {
		t.Fatalf("create: %d %s", resp.StatusCode, body)
	}
	var created domain.Patient
	_ = json.Unmarshal(body, &created)
	if created.ID != 101 {
		t.Fatalf("expected id 101, got %d", created.ID)
	}

	resp, body = doJSON(t, srv.App, nethttp.MethodPatch, "/api/patients/101", token, map[string]string{"phoneNumber": "777"})
	var updated domain.Patient
	_ = json.Unmarshal(body, &updated)
	if resp.StatusCode != nethttp.StatusOK || updated.PhoneNumber != "777" || updated.Email != "ada@example.com" {
		t.Fatalf("patch: %d %s", resp.StatusCode, body)
	}

	resp, _ = doJSON(t, srv.App, nethttp.MethodPut, "/api/patients/999", token, map[string]string{"phoneNumber": "777"})
	if resp.StatusCode != nethttp.StatusNotFound {
		t.Fatalf("expected 404 on update of unknown id, got %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, srv.App, nethttp.MethodDelete, "/api/patients/999", token, nil)
	if resp.StatusCode != nethttp.StatusNotFound {
		t.Fatalf("expected 404 on delete of unknown id, got %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, srv.App, nethttp.MethodDelete, "/api/patients/101", token, nil)
	if resp.StatusCode != nethttp.StatusNoContent {
		t.Fatalf("delete: %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, srv.App, nethttp.MethodGet, "/api/patients/101", token, nil)
	if resp.StatusCode != nethttp.StatusNotFound {
		t.Fatalf("deleted patient still retrievable: %d", resp.StatusCode)
	}
}

func TestPutFullRecordKeepsStoredDOB(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv.App, "jayanka@aisel.co")

	resp, body := doJSON(t, srv.App, nethttp.MethodPut, "/api/patients/51", token, map[string]string{
		"firstName":   "Jay",
		"lastName":    "Gomez",
		"email":       "jason.gomez@gmail.com",
		"phoneNumber": "+1-555-1239",
		"dob":         "1986-02-29",
	})
	if resp.StatusCode != nethttp.StatusOK {
		t.Fatalf("put: %d %s", resp.StatusCode, body)
	}
	var updated domain.Patient
	_ = json.Unmarshal(body, &updated)
	if updated.FirstName != "Jay" || updated.DOB != "1986-02-29" {
		t.Fatalf("unexpected record %+v", updated)
	}

	resp, body = doJSON(t, srv.App, nethttp.MethodPut, "/api/patients/51", token, map[string]string{"dob": "1986-02-30"})
	if resp.StatusCode != nethttp.StatusBadRequest || decodeError(t, body).Error.Details["dob"] != "Date of birth is invalid" {
		t.Fatalf("changed invalid dob: %d %s", resp.StatusCode, body)
	}
}

func TestMeAndHealth(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv.App, "jayanka@aisel.co")

	resp, body := doJSON(t, srv.App, nethttp.MethodGet, "/api/auth/me", token, nil)
	var me domain.UserInfo
	_ = json.Unmarshal(body, &me)
	if resp.StatusCode != nethttp.StatusOK || me.Role != domain.RoleAdmin || me.ID != "1" {
		t.Fatalf("me: %d %s", resp.StatusCode, body)
	}

	for _, path := range []string{"/health/live", "/health/ready", "/health/metrics"} {
		resp, _ := doJSON(t, srv.App, nethttp.MethodGet, path, "", nil)
		if resp.StatusCode != nethttp.StatusOK {
			t.Fatalf("%s: %d", path, resp.StatusCode)
		}
	}

	resp, body = doJSON(t, srv.App, nethttp.MethodGet, "/nope", "", nil)
	if resp.StatusCode != nethttp.StatusNotFound || decodeError(t, body).Error.Code != "NOT_FOUND" {
		t.Fatalf("unknown route: %d %s", resp.StatusCode, body)
	}
}
