// Package client talks to the patient records API and holds the caller's
// auth state. Both the browser UI server and patientctl use it.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/vitorsm19/aisel-tech-case-vitor/internal/domain"
	"github.com/vitorsm19/aisel-tech-case-vitor/internal/validation"
)

const defaultTimeout = 10 * time.Second

// Client calls the patients API on behalf of one session.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *fiber.Client
	session *Session
}

// Option customizes a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithSession shares an existing session with the client.
func WithSession(s *Session) Option {
	return func(c *Client) {
		if s != nil {
			c.session = s
		}
	}
}

// New creates a client for the API at baseURL, e.g. http://localhost:3001.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: defaultTimeout,
		http:    &fiber.Client{UserAgent: "patients-client"},
		session: NewSession(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns the auth context backing the client.
func (c *Client) Session() *Session {
	return c.session
}

// LoginResult mirrors the login response.
type LoginResult struct {
	AccessToken string          `json:"access_token"`
	ExpiresAt   time.Time       `json:"expires_at"`
	User        domain.UserInfo `json:"user"`
}

// Login exchanges credentials for a token and stores it in the session.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	fields := map[string]string{}
	if username == "" {
		fields["username"] = "Email is required"
	}
	if password == "" {
		fields["password"] = "Password is required"
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Message: "validation failed", Fields: fields}
	}

	var res LoginResult
	err := c.do(ctx, fiber.MethodPost, "/api/auth/login", map[string]string{
		"username": username,
		"password": password,
	}, false, &res)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	c.session.Set(res.AccessToken, res.User, res.ExpiresAt)
	return &res, nil
}

// Logout clears the session. Tokens are stateless so the server is not called.
func (c *Client) Logout() {
	c.session.Clear()
}

// Me returns the user the server associates with the held token.
func (c *Client) Me(ctx context.Context) (domain.UserInfo, error) {
	var u domain.UserInfo
	err := c.do(ctx, fiber.MethodGet, "/api/auth/me", nil, true, &u)
	return u, err
}

// ListPatients returns every patient.
func (c *Client) ListPatients(ctx context.Context) ([]domain.Patient, error) {
	var out []domain.Patient
	if err := c.do(ctx, fiber.MethodGet, "/api/patients", nil, true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPatient returns a single patient.
func (c *Client) GetPatient(ctx context.Context, id int) (*domain.Patient, error) {
	var p domain.Patient
	if err := c.do(ctx, fiber.MethodGet, patientPath(id), nil, true, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreatePatient validates input locally and then creates the patient.
func (c *Client) CreatePatient(ctx context.Context, in domain.PatientInput) (*domain.Patient, error) {
	in = in.Normalize()
	if err := validation.ValidateInput(in); err != nil {
		return nil, toValidationError(err)
	}
	var p domain.Patient
	if err := c.do(ctx, fiber.MethodPost, "/api/patients", in, true, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdatePatient validates the supplied fields locally and sends them.
func (c *Client) UpdatePatient(ctx context.Context, id int, patch domain.PatientPatch) (*domain.Patient, error) {
	patch = patch.Normalize()
	if err := validation.ValidatePatch(patch); err != nil {
		return nil, toValidationError(err)
	}
	var p domain.Patient
	if err := c.do(ctx, fiber.MethodPut, patientPath(id), patch, true, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeletePatient removes a patient.
func (c *Client) DeletePatient(ctx context.Context, id int) error {
	return c.do(ctx, fiber.MethodDelete, patientPath(id), nil, true, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any, authenticated bool, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var token string
	if authenticated {
		token = c.session.Token()
		if token == "" {
			return ErrNotAuthenticated
		}
	}

	url := c.baseURL + path
	var a *fiber.Agent
	switch method {
	case fiber.MethodGet:
		a = c.http.Get(url)
	case fiber.MethodPost:
		a = c.http.Post(url)
	case fiber.MethodPut:
		a = c.http.Put(url)
	case fiber.MethodPatch:
		a = c.http.Patch(url)
	case fiber.MethodDelete:
		a = c.http.Delete(url)
	default:
		return fmt.Errorf("unsupported method %s", method)
	}

	a.Timeout(c.timeoutFor(ctx))
	a.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	if token != "" {
		a.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	if body != nil {
		a.JSON(body)
	}

	status, respBody, errs := a.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("%s %s: %w", method, path, errors.Join(errs...))
	}

	if status >= http.StatusBadRequest {
		apiErr := decodeAPIError(status, respBody)
		if status == http.StatusUnauthorized && authenticated {
			c.session.Clear()
		}
		if status == http.StatusBadRequest && len(apiErr.Details) > 0 {
			return &ValidationError{Message: apiErr.Message, Fields: stringFields(apiErr.Details)}
		}
		return apiErr
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) timeoutFor(ctx context.Context) time.Duration {
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	if timeout <= 0 {
		timeout = time.Millisecond
	}
	return timeout
}

func decodeAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}
	var env struct {
		Error struct {
			Code    string         `json:"code"`
			Message string         `json:"message"`
			Details map[string]any `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &env); err == nil {
		apiErr.Code = env.Error.Code
		apiErr.Message = env.Error.Message
		apiErr.Details = env.Error.Details
	}
	return apiErr
}

func toValidationError(err error) error {
	var fe validation.FieldErrors
	if errors.As(err, &fe) {
		return &ValidationError{Message: "validation failed", Fields: map[string]string(fe)}
	}
	return &ValidationError{Message: err.Error()}
}

func stringFields(details map[string]any) map[string]string {
	out := make(map[string]string, len(details))
	for k, v := range details {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}

func patientPath(id int) string {
	return "/api/patients/" + strconv.Itoa(id)
}
