package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/vitorsm19/aisel-tech-case-vitor/internal/domain"
	"github.com/vitorsm19/aisel-tech-case-vitor/internal/repository"
	"github.com/vitorsm19/aisel-tech-case-vitor/internal/validation"
	apperrors "github.com/vitorsm19/aisel-tech-case-vitor/pkg/util/errorutil"
)

// PatientService coordinates patient record workflows. Role checks happen
// in the HTTP layer before any of these methods run.
type PatientService struct {
	patients repository.PatientRepository
	logger   *zap.Logger
}

// NewPatientService constructs the service.
func NewPatientService(patients repository.PatientRepository, logger *zap.Logger) *PatientService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PatientService{patients: patients, logger: logger}
}

// List returns all patients.
func (s *PatientService) List(ctx context.Context) ([]domain.Patient, error) {
	return s.patients.List(ctx)
}

// Get returns a single patient.
func (s *PatientService) Get(ctx context.Context, id int) (*domain.Patient, error) {
	p, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, id)
	}
	return p, nil
}

// Create validates input and stores a new patient.
func (s *PatientService) Create(ctx context.Context, in domain.PatientInput) (*domain.Patient, error) {
	in = in.Normalize()
	if err := validation.ValidateInput(in); err != nil {
		return nil, validationError(err)
	}
	p, err := s.patients.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("patient created", zap.Int("patient_id", p.ID))
	return p, nil
}

// Update merges the supplied fields into the record. Fields equal to the
// stored value are skipped and not validated.
func (s *PatientService) Update(ctx context.Context, id int, patch domain.PatientPatch) (*domain.Patient, error) {
	existing, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, id)
	}
	patch = patch.Normalize().Changes(*existing)
	if patch.Empty() {
		return existing, nil
	}
	if err := validation.ValidatePatch(patch); err != nil {
		return nil, validationError(err)
	}
	p, err := s.patients.Update(ctx, id, patch)
	if err != nil {
		return nil, mapRepoError(err, id)
	}
	s.logger.Debug("patient updated", zap.Int("patient_id", id))
	return p, nil
}

// Delete removes a patient.
func (s *PatientService) Delete(ctx context.Context, id int) error {
	if err := s.patients.Delete(ctx, id); err != nil {
		return mapRepoError(err, id)
	}
	s.logger.Debug("patient deleted", zap.Int("patient_id", id))
	return nil
}

// Count returns the number of stored patients.
func (s *PatientService) Count(ctx context.Context) (int, error) {
	return s.patients.Count(ctx)
}

func mapRepoError(err error, id int) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NewNotFound("patient", map[string]any{"id": id})
	}
	return err
}

func validationError(err error) error {
	var fe validation.FieldErrors
	if errors.As(err, &fe) {
		return apperrors.NewValidationError("validation failed", fe.Details())
	}
	return apperrors.NewValidationError(err.Error(), nil)
}
