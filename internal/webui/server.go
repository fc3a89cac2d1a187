// Package webui serves the browser pages for the patient records app. Each
// browser gets its own API client, looked up through a session cookie.
package webui

import (
	"errors"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/vitorsm19/aisel-tech-case-vitor/internal/client"
	"github.com/vitorsm19/aisel-tech-case-vitor/internal/config"
	"github.com/vitorsm19/aisel-tech-case-vitor/internal/domain"
	"github.com/vitorsm19/aisel-tech-case-vitor/internal/observability"
	"github.com/vitorsm19/aisel-tech-case-vitor/internal/webui/templates"
)

const (
	msgLoginFailed    = "Login failed. Please try again."
	msgFetchPatients  = "Failed to fetch patients"
	msgFetchPatient   = "Failed to fetch patient details"
	msgDeniedCreate   = "You do not have permission to create patients"
	msgDeniedEdit     = "You do not have permission to edit patients"
	msgDeniedDelete   = "You do not have permission to delete patients"
	msgSaveFailed     = "Failed to save patient"
	msgDeleteFailed   = "Failed to delete patient"
	localsClient      = "api_client"
	defaultCookieName = "patients_session"
)

// Server renders the UI and forwards actions to the API.
type Server struct {
	App      *fiber.App
	Sessions *SessionStore
	Metrics  *observability.Metrics

	cfg       config.WebConfig
	timeout   time.Duration
	logger    *zap.Logger
	newClient func() *client.Client
}

// NewServer wires the UI routes against the API at cfg.APIURL.
func NewServer(cfg config.WebConfig, clientCfg config.ClientConfig, logger *zap.Logger) *Server {
	if cfg.CookieName == "" {
		cfg.CookieName = defaultCookieName
	}
	s := &Server{
		Sessions: NewSessionStore(),
		Metrics:  observability.NewMetrics(),
		cfg:      cfg,
		timeout:  clientCfg.Timeout(),
		logger:   logger,
	}
	s.newClient = func() *client.Client {
		return client.New(cfg.APIURL, client.WithTimeout(s.timeout))
	}

	app := fiber.New(fiber.Config{
		AppName:               "patient-records-web",
		DisableStartupMessage: true,
		ErrorHandler:          s.errorHandler,
	})
	app.Use(observability.RequestLogger(logger, s.Metrics))

	app.Get("/", s.index)
	app.Get("/login", s.loginPage)
	app.Post("/login", s.login)
	app.Get("/logout", s.logout)

	authed := app.Group("", s.requireSession)
	authed.Get("/home", s.home)
	authed.Get("/patient/new", s.newPatientPage)
	authed.Post("/patient/new", s.createPatient)
	authed.Get("/patient/:id", s.patientPage)
	authed.Post("/patient/:id", s.updatePatient)
	authed.Post("/patient/:id/delete", s.deletePatient)

	s.App = app
	return s
}

func (s *Server) render(c *fiber.Ctx, status int, title string, content templ.Component) error {
	var user *domain.UserInfo
	if api := clientFrom(c); api != nil {
		if u, ok := api.Session().User(); ok {
			user = &u
		}
	}
	c.Status(status)
	c.Type("html", "utf-8")
	return templates.Layout(title, user, content).Render(c.UserContext(), c.Response().BodyWriter())
}

func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
	}
	if status >= fiber.StatusInternalServerError {
		s.logger.Error("page failed", zap.String("path", c.Path()), zap.Error(err))
		return s.render(c, status, "Error", templates.ErrorPanel("Something went wrong. Please try again."))
	}
	return s.render(c, status, "Error", templates.ErrorPanel(err.Error()))
}

// requireSession loads the caller's client or sends them to the login page.
func (s *Server) requireSession(c *fiber.Ctx) error {
	api, ok := s.Sessions.Get(c.Cookies(s.cfg.CookieName))
	if !ok {
		c.ClearCookie(s.cfg.CookieName)
		return c.Redirect("/login", fiber.StatusFound)
	}
	c.Locals(localsClient, api)
	return c.Next()
}

func clientFrom(c *fiber.Ctx) *client.Client {
	api, _ := c.Locals(localsClient).(*client.Client)
	return api
}

// sessionLost handles a token the API stopped accepting.
func (s *Server) sessionLost(c *fiber.Ctx) error {
	s.Sessions.Delete(c.Cookies(s.cfg.CookieName))
	c.ClearCookie(s.cfg.CookieName)
	return c.Redirect("/login", fiber.StatusFound)
}

func (s *Server) index(c *fiber.Ctx) error {
	if _, ok := s.Sessions.Get(c.Cookies(s.cfg.CookieName)); ok {
		return c.Redirect("/home", fiber.StatusFound)
	}
	return c.Redirect("/login", fiber.StatusFound)
}

func (s *Server) loginPage(c *fiber.Ctx) error {
	if _, ok := s.Sessions.Get(c.Cookies(s.cfg.CookieName)); ok {
		return c.Redirect("/home", fiber.StatusFound)
	}
	return s.render(c, fiber.StatusOK, "Sign in", templates.Login("", ""))
}

func (s *Server) login(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	api := s.newClient()
	if _, err := api.Login(c.UserContext(), username, password); err != nil {
		status, msg := fiber.StatusBadGateway, msgLoginFailed
		var verr *client.ValidationError
		switch {
		case errors.Is(err, client.ErrInvalidCredentials):
			status, msg = fiber.StatusUnauthorized, err.Error()
		case errors.As(err, &verr):
			status, msg = fiber.StatusBadRequest, verr.Error()
			if m := verr.Field("username"); m != "" {
				msg = m
			} else if m := verr.Field("password"); m != "" {
				msg = m
			}
		default:
			s.logger.Warn("login failed", zap.Error(err))
		}
		return s.render(c, status, "Sign in", templates.Login(username, msg))
	}

	id, expires := s.Sessions.Create(api)
	c.Cookie(&fiber.Cookie{
		Name:     s.cfg.CookieName,
		Value:    id,
		Path:     "/",
		Expires:  expires,
		Secure:   s.cfg.SecureCookie,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect("/home", fiber.StatusFound)
}

func (s *Server) logout(c *fiber.Ctx) error {
	s.Sessions.Delete(c.Cookies(s.cfg.CookieName))
	c.ClearCookie(s.cfg.CookieName)
	return c.Redirect("/login", fiber.StatusFound)
}

func (s *Server) home(c *fiber.Ctx) error {
	api := clientFrom(c)
	view := templates.PatientsView{IsAdmin: api.Session().IsAdmin()}

	patients, err := api.ListPatients(c.UserContext())
	switch {
	case errors.Is(err, client.ErrNotAuthenticated):
		return s.sessionLost(c)
	case err != nil:
		s.logger.Warn("list patients", zap.Error(err))
		view.Error = msgFetchPatients
		return s.render(c, fiber.StatusBadGateway, "Patients", templates.Patients(view))
	}
	view.Patients = patients
	return s.render(c, fiber.StatusOK, "Patients", templates.Patients(view))
}

func (s *Server) newPatientPage(c *fiber.Ctx) error {
	if !clientFrom(c).Session().IsAdmin() {
		return s.render(c, fiber.StatusForbidden, "Access denied", templates.AccessDenied(msgDeniedCreate))
	}
	return s.render(c, fiber.StatusOK, "New Patient", templates.NewPatient(templates.FormView{}))
}

func (s *Server) createPatient(c *fiber.Ctx) error {
	api := clientFrom(c)
	if !api.Session().IsAdmin() {
		return s.render(c, fiber.StatusForbidden, "Access denied", templates.AccessDenied(msgDeniedCreate))
	}

	in := formInput(c)
	created, err := api.CreatePatient(c.UserContext(), in)
	if err != nil {
		form := templates.FormView{Values: in}
		status, page := s.formFailure(c, err, &form, msgDeniedCreate, msgSaveFailed)
		if page != nil {
			return s.render(c, status, "New Patient", page)
		}
		if status == fiber.StatusUnauthorized {
			return s.sessionLost(c)
		}
		return s.render(c, status, "New Patient", templates.NewPatient(form))
	}
	return c.Redirect("/patient/"+strconv.Itoa(created.ID), fiber.StatusSeeOther)
}

func (s *Server) patientPage(c *fiber.Ctx) error {
	api := clientFrom(c)
	id, ok := pageID(c)
	if !ok {
		return s.render(c, fiber.StatusNotFound, "Patient not found", templates.NotFound())
	}

	p, err := api.GetPatient(c.UserContext(), id)
	switch {
	case errors.Is(err, client.ErrNotFound):
		return s.render(c, fiber.StatusNotFound, "Patient not found", templates.NotFound())
	case errors.Is(err, client.ErrNotAuthenticated):
		return s.sessionLost(c)
	case err != nil:
		s.logger.Warn("get patient", zap.Int("id", id), zap.Error(err))
		return s.render(c, fiber.StatusBadGateway, "Error", templates.ErrorPanel(msgFetchPatient))
	}

	return s.render(c, fiber.StatusOK, p.FirstName+" "+p.LastName, templates.Patient(templates.PatientView{
		Patient: *p,
		IsAdmin: api.Session().IsAdmin(),
		Saved:   c.Query("saved") != "",
		Form:    templates.FormFromPatient(*p),
	}))
}

func (s *Server) updatePatient(c *fiber.Ctx) error {
	api := clientFrom(c)
	if !api.Session().IsAdmin() {
		return s.render(c, fiber.StatusForbidden, "Access denied", templates.AccessDenied(msgDeniedEdit))
	}
	id, ok := pageID(c)
	if !ok {
		return s.render(c, fiber.StatusNotFound, "Patient not found", templates.NotFound())
	}

	current, err := api.GetPatient(c.UserContext(), id)
	switch {
	case errors.Is(err, client.ErrNotFound):
		return s.render(c, fiber.StatusNotFound, "Patient not found", templates.NotFound())
	case errors.Is(err, client.ErrNotAuthenticated):
		return s.sessionLost(c)
	case err != nil:
		s.logger.Warn("get patient", zap.Int("id", id), zap.Error(err))
		return s.render(c, fiber.StatusBadGateway, "Error", templates.ErrorPanel(msgFetchPatient))
	}

	// Send only the fields the admin changed.
	in := formInput(c)
	patch := domain.PatientPatch{
		FirstName:   &in.FirstName,
		LastName:    &in.LastName,
		Email:       &in.Email,
		PhoneNumber: &in.PhoneNumber,
		DOB:         &in.DOB,
	}.Changes(*current)
	if patch.Empty() {
		return c.Redirect("/patient/"+strconv.Itoa(id)+"?saved=1", fiber.StatusSeeOther)
	}

	if _, err := api.UpdatePatient(c.UserContext(), id, patch); err != nil {
		form := templates.FormView{Values: in}
		status, page := s.formFailure(c, err, &form, msgDeniedEdit, msgSaveFailed)
		if page != nil {
			return s.render(c, status, "Edit Patient", page)
		}
		if status == fiber.StatusUnauthorized {
			return s.sessionLost(c)
		}
		view := templates.PatientView{
			Patient: *current,
			IsAdmin: true,
			Form:    form,
		}
		return s.render(c, status, "Edit Patient", templates.Patient(view))
	}
	return c.Redirect("/patient/"+strconv.Itoa(id)+"?saved=1", fiber.StatusSeeOther)
}

func (s *Server) deletePatient(c *fiber.Ctx) error {
	api := clientFrom(c)
	if !api.Session().IsAdmin() {
		return s.render(c, fiber.StatusForbidden, "Access denied", templates.AccessDenied(msgDeniedDelete))
	}
	id, ok := pageID(c)
	if !ok {
		return s.render(c, fiber.StatusNotFound, "Patient not found", templates.NotFound())
	}

	err := api.DeletePatient(c.UserContext(), id)
	switch {
	case errors.Is(err, client.ErrNotFound):
		return s.render(c, fiber.StatusNotFound, "Patient not found", templates.NotFound())
	case errors.Is(err, client.ErrPermissionDenied):
		return s.render(c, fiber.StatusForbidden, "Access denied", templates.AccessDenied(msgDeniedDelete))
	case errors.Is(err, client.ErrNotAuthenticated):
		return s.sessionLost(c)
	case err != nil:
		s.logger.Warn("delete patient", zap.Int("id", id), zap.Error(err))
		return s.render(c, fiber.StatusBadGateway, "Error", templates.ErrorPanel(msgDeleteFailed))
	}
	return c.Redirect("/home", fiber.StatusSeeOther)
}

// formFailure sorts a failed save into a full-page response (page != nil),
// a lost session (401) or inline form errors written into form.
func (s *Server) formFailure(c *fiber.Ctx, err error, form *templates.FormView, denied, failed string) (int, templ.Component) {
	var verr *client.ValidationError
	switch {
	case errors.As(err, &verr):
		form.Errors = verr.Fields
		if len(verr.Fields) == 0 {
			form.Error = verr.Message
		}
		return fiber.StatusBadRequest, nil
	case errors.Is(err, client.ErrPermissionDenied):
		return fiber.StatusForbidden, templates.AccessDenied(denied)
	case errors.Is(err, client.ErrNotFound):
		return fiber.StatusNotFound, templates.NotFound()
	case errors.Is(err, client.ErrNotAuthenticated):
		return fiber.StatusUnauthorized, nil
	}
	s.logger.Warn("save patient", zap.String("path", c.Path()), zap.Error(err))
	form.Error = failed
	return fiber.StatusBadGateway, nil
}

func formInput(c *fiber.Ctx) domain.PatientInput {
	return domain.PatientInput{
		FirstName:   c.FormValue("firstName"),
		LastName:    c.FormValue("lastName"),
		Email:       c.FormValue("email"),
		PhoneNumber: c.FormValue("phoneNumber"),
		DOB:         c.FormValue("dob"),
	}.Normalize()
}

func pageID(c *fiber.Ctx) (int, bool) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
