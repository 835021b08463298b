// Package validate is the gate every request payload passes before any
// identity resolution or mutation. It reports every violated constraint,
// not just the first, and treats unparseable numeric path parameters as
// input errors rather than lookup misses.
package validate

import (
	"fmt"
	"net/mail"
	"strconv"
	"strings"
)

// Violation describes a single violated field constraint.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error carries every violation found in one payload.
type Error struct {
	Violations []Violation
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Fields accumulates constraint checks for one payload. Check the result
// with Err after all constraints have been applied.
type Fields struct {
	violations []Violation
}

// Require records a violation when value is blank.
func (f *Fields) Require(field, value string) *Fields {
	if strings.TrimSpace(value) == "" {
		f.add(field, "must not be blank")
	}
	return f
}

// MaxLen records a violation when value exceeds maxLen characters.
func (f *Fields) MaxLen(field, value string, maxLen int) *Fields {
	if len(value) > maxLen {
		f.add(field, fmt.Sprintf("must be at most %d characters", maxLen))
	}
	return f
}

// Email records a violation when value is present but not a valid address.
// Blank values pass; combine with Require for mandatory emails.
func (f *Fields) Email(field, value string) *Fields {
	if value == "" {
		return f
	}
	if _, err := mail.ParseAddress(value); err != nil {
		f.add(field, "must be a valid email address")
	}
	return f
}

func (f *Fields) add(field, message string) {
	f.violations = append(f.violations, Violation{Field: field, Message: message})
}

// Err returns the collected violations, or nil when everything passed.
func (f *Fields) Err() error {
	if len(f.violations) == 0 {
		return nil
	}
	return &Error{Violations: f.violations}
}

// ID parses a numeric path parameter. Failure is a validation error and must
// short-circuit before any lookup so malformed ids never reach the store.
func ID(field, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &Error{Violations: []Violation{
			{Field: field, Message: "must be a valid integer id"},
		}}
	}
	return id, nil
}
