package domain

import "strings"

// Patient is a single patient record.
type Patient struct {
	ID          int    `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	DOB         string `json:"dob"`
}

// PatientInput carries the fields required to create a patient.
type PatientInput struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	DOB         string `json:"dob" validate:"required,isodate"`
}

// Normalize trims surrounding whitespace from every field.
func (in PatientInput) Normalize() PatientInput {
	return PatientInput{
		FirstName:   strings.TrimSpace(in.FirstName),
		LastName:    strings.TrimSpace(in.LastName),
		Email:       strings.TrimSpace(in.Email),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		DOB:         strings.TrimSpace(in.DOB),
	}
}

// PatientPatch carries a partial update. Nil fields are left untouched.
type PatientPatch struct {
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	DOB         *string `json:"dob,omitempty"`
}

// Normalize trims surrounding whitespace from every supplied field.
func (p PatientPatch) Normalize() PatientPatch {
	return PatientPatch{
		FirstName:   trimPtr(p.FirstName),
		LastName:    trimPtr(p.LastName),
		Email:       trimPtr(p.Email),
		PhoneNumber: trimPtr(p.PhoneNumber),
		DOB:         trimPtr(p.DOB),
	}
}

// Empty reports whether the patch supplies no fields.
func (p PatientPatch) Empty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil && p.PhoneNumber == nil && p.DOB == nil
}

// Apply merges the supplied fields into a copy of patient.
func (p PatientPatch) Apply(patient Patient) Patient {
	if p.FirstName != nil {
		patient.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		patient.LastName = *p.LastName
	}
	if p.Email != nil {
		patient.Email = *p.Email
	}
	if p.PhoneNumber != nil {
		patient.PhoneNumber = *p.PhoneNumber
	}
	if p.DOB != nil {
		patient.DOB = *p.DOB
	}
	return patient
}

// Changes drops the fields that already match patient, leaving only the
// values that would modify it.
func (p PatientPatch) Changes(patient Patient) PatientPatch {
	return PatientPatch{
		FirstName:   changed(p.FirstName, patient.FirstName),
		LastName:    changed(p.LastName, patient.LastName),
		Email:       changed(p.Email, patient.Email),
		PhoneNumber: changed(p.PhoneNumber, patient.PhoneNumber),
		DOB:         changed(p.DOB, patient.DOB),
	}
}

func changed(v *string, current string) *string {
	if v == nil || *v == current {
		return nil
	}
	return v
}

// NewPatient builds a record from validated input.
func NewPatient(id int, in PatientInput) Patient {
	return Patient{
		ID:          id,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		DOB:         in.DOB,
	}
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
