package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	ErrInvalidRole       = fmt.Errorf("invalid role")
	ErrMissingColumn     = fmt.Errorf("missing required column")
	ErrMalformedLine     = fmt.Errorf("malformed roster line")
	ErrEmptyRoster       = fmt.Errorf("roster is empty")
	ErrInvalidGroupCount = fmt.Errorf("group count must be at least 1")
	ErrUnsupportedFormat = fmt.Errorf("unsupported upload format")
	ErrInvalidRatio      = fmt.Errorf("invalid team ratio")
	ErrExportNotFound    = fmt.Errorf("export not found")
)

// InvalidRoleError names the entry that invalidated a roster batch.
type InvalidRoleError struct {
	Name string
	Role string
}

func (e InvalidRoleError) Error() string {
	return fmt.Sprintf(
		"invalid position '%s' for player '%s'. Only 'ATT', 'MID', and 'DEF' are allowed",
		e.Role, e.Name,
	)
}

func (e InvalidRoleError) Unwrap() error {
	return ErrInvalidRole
}

type MissingColumnError struct {
	Column string
}

func (e MissingColumnError) Error() string {
	return fmt.Sprintf("missing required column %q", e.Column)
}

func (e MissingColumnError) Unwrap() error {
	return ErrMissingColumn
}

// IsValidation reports whether err should be shown to the user as an input
// problem rather than an internal failure.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrInvalidRole, ErrMissingColumn, ErrMalformedLine, ErrEmptyRoster,
		ErrInvalidGroupCount, ErrUnsupportedFormat,
	} {
		if stderrors.Is(err, target) {
			return true
		}
	}
	return false
}
