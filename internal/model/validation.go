package model

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

// MaxTextLength is the width of the VARCHAR columns that hold names,
// emails, companies and locations.
const MaxTextLength = 255

// FieldError describes a single violated field constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every field that failed validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	msg := e.Fields[0].Message
	if len(e.Fields) > 1 {
		msg = fmt.Sprintf("%s (and %d more errors)", msg, len(e.Fields)-1)
	}
	return msg
}

// Add records a violation for field.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// Err returns e when at least one violation was recorded, otherwise nil.
func (e *ValidationError) Err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	v := &ValidationError{}
	v.Add(field, message)
	return v
}

// NormalizeEmail trims and lower-cases an email address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reports whether s is a bare, well-formed email address.
func ValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndex(s, "@")
	return at > 0 && strings.Contains(s[at+1:], ".")
}

// Validate checks a registration request.
func (r CreateUserRequest) Validate() error {
	v := &ValidationError{}
	validateText(v, "name", r.Name, "Please provide name")
	validateEmailField(v, r.Email)
	switch {
	case r.Password == "":
		v.Add("password", "Please provide password")
	case utf8.RuneCountInString(r.Password) < MinPasswordLength:
		v.Add("password", fmt.Sprintf("Password length should be at least %d characters", MinPasswordLength))
	}
	return v.Err()
}

// Validate checks a login request.
func (r LoginRequest) Validate() error {
	v := &ValidationError{}
	if strings.TrimSpace(r.Email) == "" {
		v.Add("email", "Please provide email")
	}
	if r.Password == "" {
		v.Add("password", "Please provide password")
	}
	return v.Err()
}

// Validate checks a profile update, where every field is required.
func (r UpdateUserRequest) Validate() error {
	v := &ValidationError{}
	validateText(v, "name", r.Name, "Please provide name")
	validateText(v, "lastname", r.LastName, "Please provide lastname")
	validateEmailField(v, r.Email)
	validateText(v, "location", r.Location, "Please provide location")
	return v.Err()
}

func validateEmailField(v *ValidationError, email string) {
	email = NormalizeEmail(email)
	switch {
	case email == "":
		v.Add("email", "Please provide email")
	case utf8.RuneCountInString(email) > MaxTextLength:
		v.Add("email", tooLong("Email", MaxTextLength))
	case !ValidEmail(email):
		v.Add("email", "Please provide a valid email")
	}
}

// ApplyDefaults fills in the optional job fields that were left empty.
func (r *CreateJobRequest) ApplyDefaults() {
	if r.Status == "" {
		r.Status = StatusPending
	}
	if r.WorkType == "" {
		r.WorkType = WorkFullTime
	}
	if strings.TrimSpace(r.WorkLocation) == "" {
		r.WorkLocation = DefaultWorkLocation
	}
}

// Validate checks a job creation request after defaults have been applied.
func (r CreateJobRequest) Validate() error {
	v := &ValidationError{}
	validateCompany(v, r.Company)
	validatePosition(v, r.Position)
	validateStatus(v, r.Status)
	validateWorkType(v, r.WorkType)
	validateWorkLocation(v, r.WorkLocation)
	return v.Err()
}

// Validate checks every field present in the patch with the same rules as creation.
func (p JobPatch) Validate() error {
	v := &ValidationError{}
	if p.Company != nil {
		validateCompany(v, *p.Company)
	}
	if p.Position != nil {
		validatePosition(v, *p.Position)
	}
	if p.Status != nil {
		validateStatus(v, *p.Status)
	}
	if p.WorkType != nil {
		validateWorkType(v, *p.WorkType)
	}
	if p.WorkLocation != nil {
		validateWorkLocation(v, *p.WorkLocation)
	}
	return v.Err()
}

// validateText requires a non-blank value that fits a VARCHAR(MaxTextLength) column.
func validateText(v *ValidationError, field, value, missing string) {
	value = strings.TrimSpace(value)
	switch {
	case value == "":
		v.Add(field, missing)
	case utf8.RuneCountInString(value) > MaxTextLength:
		v.Add(field, tooLong(field, MaxTextLength))
	}
}

func tooLong(label string, max int) string {
	return fmt.Sprintf("%s must be at most %d characters", label, max)
}

func validateCompany(v *ValidationError, company string) {
	validateText(v, "company", company, "Company name is required")
}

func validatePosition(v *ValidationError, position string) {
	switch {
	case strings.TrimSpace(position) == "":
		v.Add("position", "Position is required")
	case utf8.RuneCountInString(position) > MaxPositionLength:
		v.Add("position", tooLong("Position", MaxPositionLength))
	}
}

func validateStatus(v *ValidationError, s JobStatus) {
	if !s.Valid() {
		v.Add("status", fmt.Sprintf("Status must be one of %q, %q, %q", StatusPending, StatusReject, StatusInterview))
	}
}

func validateWorkType(v *ValidationError, w WorkType) {
	if !w.Valid() {
		v.Add("workType", fmt.Sprintf("Work type must be one of %q, %q, %q, %q", WorkFullTime, WorkPartTime, WorkInternship, WorkContract))
	}
}

func validateWorkLocation(v *ValidationError, location string) {
	validateText(v, "workLocation", location, "Location is required")
}
