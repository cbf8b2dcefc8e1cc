// Package errors provides custom error types for the application.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// GenericMessage replaces network and unexpected errors in user-facing output.
const GenericMessage = "An unexpected error occurred. Please try again later."

// nonFieldErrorsKey is the API key for errors not bound to a single field.
const nonFieldErrorsKey = "non_field_errors"

// Session errors
var (
	ErrNotLoggedIn    = errors.New("not logged in")
	ErrSessionExpired = errors.New("session expired")
	ErrURLMismatch    = errors.New("session belongs to a different server")
	ErrLogoutFailed   = errors.New("logout was not confirmed by the server")
)

// API errors
var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrNotFound       = errors.New("not found")
	ErrUnexpectedBody = errors.New("unexpected response body")
)

// Team errors
var (
	ErrNotTeamOwner         = errors.New("only the team owner can change this setting")
	ErrCannotInvite         = errors.New("you are not allowed to invite members")
	ErrInvitationNotUsable  = errors.New("invitation could not be accepted")
	ErrMaxMembersNotUpdated = errors.New("failed to update max members")
)

// Form errors
var (
	ErrPermissionSave = errors.New("failed to update permissions")
	ErrPartialSave    = errors.New("permission save partially applied")
)

// Search errors
var (
	ErrUnknownPlanKind = errors.New("unknown plan kind, must be education or action")
)

// Analytics errors
var (
	ErrInvalidTimeRange = errors.New("invalid time range, must be all, week or month")
)

// APIError is returned when the server answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string][]string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	if msgs := FlattenFieldErrors(e.Fields); len(msgs) > 0 {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, strings.Join(msgs, "; "))
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// Is maps well-known status codes onto the sentinel errors.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == 401
	case ErrForbidden:
		return e.StatusCode == 403
	case ErrNotFound:
		return e.StatusCode == 404
	}
	return false
}

// Messages returns the lines shown to the user for this error.
func (e *APIError) Messages() []string {
	if msgs := FlattenFieldErrors(e.Fields); len(msgs) > 0 {
		return msgs
	}
	if e.Message != "" {
		return []string{e.Message}
	}
	return []string{GenericMessage}
}

// FlattenFieldErrors turns an API field error mapping into display lines.
// non_field_errors contributes its first message as-is, every other field
// contributes "FIELD: first message". Fields are ordered by name with
// non_field_errors first so the output is stable.
func FlattenFieldErrors(fields map[string][]string) []string {
	if len(fields) == 0 {
		return nil
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		if name == "statusCode" || name == nonFieldErrorsKey {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]string, 0, len(fields))
	if msgs := fields[nonFieldErrorsKey]; len(msgs) > 0 {
		out = append(out, msgs[0])
	}
	for _, name := range names {
		msgs := fields[name]
		if len(msgs) == 0 {
			continue
		}
		out = append(out, strings.ToUpper(name)+": "+msgs[0])
	}
	return out
}

// userErrors are shown to the user with their own text.
var userErrors = []error{
	ErrNotLoggedIn, ErrSessionExpired, ErrURLMismatch, ErrLogoutFailed,
	ErrUnauthorized, ErrForbidden, ErrNotFound,
	ErrNotTeamOwner, ErrCannotInvite, ErrInvitationNotUsable, ErrMaxMembersNotUpdated,
	ErrPermissionSave, ErrPartialSave,
	ErrUnknownPlanKind,
	ErrInvalidTimeRange,
}

// UserMessages returns display lines for any error. Errors carrying their
// own messages (API and validation errors) use them, known sentinels use
// their text, and anything else is hidden behind GenericMessage.
func UserMessages(err error) []string {
	if err == nil {
		return nil
	}
	var withMessages interface{ Messages() []string }
	if errors.As(err, &withMessages) {
		return withMessages.Messages()
	}
	if known := knownError(err); known != nil {
		return []string{capitalize(known.Error())}
	}
	return []string{GenericMessage}
}

// Expected reports whether err is one the user can act on. Anything else
// is worth reporting.
func Expected(err error) bool {
	if err == nil {
		return true
	}
	var withMessages interface{ Messages() []string }
	if errors.As(err, &withMessages) {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode >= 500 {
			return false
		}
		return true
	}
	return knownError(err) != nil
}

func knownError(err error) error {
	for _, known := range userErrors {
		if errors.Is(err, known) {
			return known
		}
	}
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
