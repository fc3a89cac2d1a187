// Package templates holds the templ components for the browser UI.
// Run `go generate ./internal/webui/...` after editing a .templ file.
package templates

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.819 generate

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/vitorsm19/aisel-tech-case-vitor/internal/domain"
)

// PatientsView is the data behind the patient list.
type PatientsView struct {
	Patients []domain.Patient
	IsAdmin  bool
	Error    string
}

// FormView holds submitted values and field errors for the patient form.
type FormView struct {
	Values domain.PatientInput
	Errors map[string]string
	Error  string
}

// PatientView is the data behind the detail page.
type PatientView struct {
	Patient domain.Patient
	IsAdmin bool
	Saved   bool
	Form    FormView
}

// FormFromPatient prefills the edit form.
func FormFromPatient(p domain.Patient) FormView {
	return FormView{Values: domain.PatientInput{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Email:       p.Email,
		PhoneNumber: p.PhoneNumber,
		DOB:         p.DOB,
	}}
}

func patientURL(id int, suffix string) templ.SafeURL {
	return templ.URL("/patient/" + strconv.Itoa(id) + suffix)
}

func fullName(p domain.Patient) string {
	return p.FirstName + " " + p.LastName
}
