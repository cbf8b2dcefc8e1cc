// Package validator holds the client-side checks that run before a request
// is sent. Failures are reported as FieldErrors keyed by JSON field name.
package validator

import (
	"errors"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"sdg-knowledge/internal/models"
)

// User-facing messages.
const (
	TermsMessage             = "You must agree to the Terms and Conditions to sign up."
	MaxMembersEmptyMessage   = "Please enter new max members"
	MaxMembersInvalidMessage = "Please enter a valid positive number"
	InvalidEmailMessage      = "Please enter a valid email address"
	DuplicateEmailMessage    = "This email is already in the list"
	EmptyInviteListMessage   = "Please add at least one email address"
)

// profileMessages maps profile fields to their required-field message.
var profileMessages = map[string]string{
	"first_name":        "First name is required",
	"last_name":         "Last name is required",
	"email":             "Email is required",
	"username":          "Username is required",
	"organization":      "Organisation is required",
	"faculty_and_major": "Faculty & Major is required",
	"gender":            "Gender is required",
	"language":          "Language is required",
}

// emailRegex accepts any non-space local part and a dotted domain,
// including non-ASCII addresses.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonName)
	register(v)
	return v
}

func register(v *validator.Validate) {
	_ = v.RegisterValidation("terms", validateTerms)
	_ = v.RegisterValidation("notblank", validateNotBlank)
}

// jsonName reports fields by their JSON key.
func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" || name == "" {
		return f.Name
	}
	return name
}

// validateTerms passes only when the terms checkbox is ticked.
func validateTerms(fl validator.FieldLevel) bool {
	return fl.Field().Kind() == reflect.Bool && fl.Field().Bool()
}

// validateNotBlank treats whitespace-only strings as missing.
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// RegisterCustomValidators registers the custom tags with gin's validator
// so request bodies bound by gin handlers get the same rules.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		register(v)
	}
}

// FieldErrors maps a field to the message shown next to it.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	return "validation failed: " + strings.Join(f.Messages(), "; ")
}

// Messages returns the messages ordered by field name.
func (f FieldErrors) Messages() []string {
	fields := make([]string, 0, len(f))
	for field := range f {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	out := make([]string, 0, len(fields))
	for _, field := range fields {
		out = append(out, f[field])
	}
	return out
}

// ValidateSignUp checks the sign-up form. Only the terms box is checked
// locally; the server validates the rest.
func ValidateSignUp(req *models.SignUpRequest) error {
	return collect(validate.Struct(req), func(field, tag string) string {
		if tag == "terms" {
			return TermsMessage
		}
		return ""
	})
}

// ValidateProfile checks the required profile fields.
func ValidateProfile(p *models.Profile) error {
	return collect(validate.Struct(p), func(field, _ string) string {
		return profileMessages[field]
	})
}

// ParseMaxMembers parses the max-members input.
func ParseMaxMembers(input string) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, FieldErrors{"max_members": MaxMembersEmptyMessage}
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, FieldErrors{"max_members": MaxMembersInvalidMessage}
	}
	req := models.UpdateMaxMembersRequest{MaxMembers: n}
	if err := validate.Struct(&req); err != nil {
		return 0, FieldErrors{"max_members": MaxMembersInvalidMessage}
	}
	return n, nil
}

// ValidEmail reports whether email is acceptable for an invite.
func ValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// collect converts validator errors into FieldErrors using message.
func collect(err error, message func(field, tag string) string) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := FieldErrors{}
	for _, fe := range verrs {
		msg := message(fe.Field(), fe.Tag())
		if msg == "" {
			msg = fe.Field() + " is invalid"
		}
		if _, ok := out[fe.Field()]; !ok {
			out[fe.Field()] = msg
		}
	}
	return out
}
