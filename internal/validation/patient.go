// Package validation checks patient fields. The same rules run in the API
// before the store is touched and in clients before a request is sent.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/vitorsm19/aisel-tech-case-vitor/internal/domain"
)

// Field names as they appear on the wire.
const (
	FieldFirstName   = "firstName"
	FieldLastName    = "lastName"
	FieldEmail       = "email"
	FieldPhoneNumber = "phoneNumber"
	FieldDOB         = "dob"
)

// rules mirror the validate tags on domain.PatientInput.
var rules = map[string]string{
	FieldFirstName:   "required",
	FieldLastName:    "required",
	FieldEmail:       "required,email",
	FieldPhoneNumber: "required",
	FieldDOB:         "required,isodate",
}

var labels = map[string]string{
	FieldFirstName:   "First name",
	FieldLastName:    "Last name",
	FieldEmail:       "Email",
	FieldPhoneNumber: "Phone number",
	FieldDOB:         "Date of birth",
}

// FieldErrors maps a wire field name to a human readable message.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, fe[k]))
	}
	return strings.Join(parts, "; ")
}

// Details converts the errors into the shape used by error envelopes.
func (fe FieldErrors) Details() map[string]any {
	out := make(map[string]any, len(fe))
	for k, v := range fe {
		out[k] = v
	}
	return out
}

var (
	once     sync.Once
	instance *validator.Validate
)

func engine() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		if err := v.RegisterValidation("isodate", isoDate); err != nil {
			panic(err)
		}
		instance = v
	})
	return instance
}

// ValidateInput checks a create payload. Input is expected to be normalized.
func ValidateInput(in domain.PatientInput) error {
	err := engine().Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := FieldErrors{}
	for _, fe := range verrs {
		out[fe.Field()] = message(fe.Field(), fe.Tag())
	}
	return out
}

// ValidatePatch checks only the fields a patch supplies.
func ValidatePatch(p domain.PatientPatch) error {
	supplied := map[string]*string{
		FieldFirstName:   p.FirstName,
		FieldLastName:    p.LastName,
		FieldEmail:       p.Email,
		FieldPhoneNumber: p.PhoneNumber,
		FieldDOB:         p.DOB,
	}
	out := FieldErrors{}
	for field, val := range supplied {
		if val == nil {
			continue
		}
		err := engine().Var(*val, rules[field])
		if err == nil {
			continue
		}
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) || len(verrs) == 0 {
			return err
		}
		out[field] = message(field, verrs[0].Tag())
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// IsDate reports whether s is a calendar date (YYYY-MM-DD) or an RFC 3339 timestamp.
func IsDate(s string) bool {
	if _, err := time.Parse(time.DateOnly, s); err == nil {
		return true
	}
	if _, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return true
	}
	return false
}

func isoDate(fl validator.FieldLevel) bool {
	return IsDate(fl.Field().String())
}

func message(field, tag string) string {
	label, ok := labels[field]
	if !ok {
		label = field
	}
	if tag == "required" {
		return label + " is required"
	}
	return label + " is invalid"
}
