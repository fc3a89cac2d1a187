package dto

import "github.com/vitorsm19/aisel-tech-case-vitor/internal/domain"

// CreatePatientRequest payload for POST /api/patients.
type CreatePatientRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	DOB         string `json:"dob"`
}

// Input converts the request into a domain input.
func (r CreatePatientRequest) Input() domain.PatientInput {
	return domain.PatientInput{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		DOB:         r.DOB,
	}
}

// UpdatePatientRequest payload for PUT/PATCH /api/patients/:id. Absent
// fields are left unchanged.
type UpdatePatientRequest struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phoneNumber"`
	DOB         *string `json:"dob"`
}

// Patch converts the request into a domain patch.
func (r UpdatePatientRequest) Patch() domain.PatientPatch {
	return domain.PatientPatch{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		DOB:         r.DOB,
	}
}
