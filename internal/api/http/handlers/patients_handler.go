package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vitorsm19/aisel-tech-case-vitor/internal/api/dto"
	"github.com/vitorsm19/aisel-tech-case-vitor/internal/service"
	apperrors "github.com/vitorsm19/aisel-tech-case-vitor/pkg/util/errorutil"
)

// PatientsHandler manages patient record endpoints.
type PatientsHandler struct {
	service *service.PatientService
}

// NewPatientsHandler constructs handler.
func NewPatientsHandler(patientService *service.PatientService) *PatientsHandler {
	return &PatientsHandler{service: patientService}
}

// List GET /api/patients.
func (h *PatientsHandler) List(c *fiber.Ctx) error {
	patients, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(patients)
}

// Get GET /api/patients/:id.
func (h *PatientsHandler) Get(c *fiber.Ctx) error {
	id, err := patientID(c)
	if err != nil {
		return err
	}
	patient, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(patient)
}

// Create POST /api/patients.
func (h *PatientsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePatientRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	patient, err := h.service.Create(c.UserContext(), req.Input())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(patient)
}

// Update PUT|PATCH /api/patients/:id.
func (h *PatientsHandler) Update(c *fiber.Ctx) error {
	id, err := patientID(c)
	if err != nil {
		return err
	}
	var req dto.UpdatePatientRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	patient, err := h.service.Update(c.UserContext(), id, req.Patch())
	if err != nil {
		return err
	}
	return c.JSON(patient)
}

// Delete DELETE /api/patients/:id.
func (h *PatientsHandler) Delete(c *fiber.Ctx) error {
	id, err := patientID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func patientID(c *fiber.Ctx) (int, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return 0, apperrors.NewValidationError("id must be an integer", map[string]any{"id": c.Params("id")})
	}
	return id, nil
}
