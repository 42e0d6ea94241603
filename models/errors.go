package models

import "github.com/pkg/errors"

// Request/cycle boundaries recover these and map them to a caller-visible
// outcome, nothing in this taxonomy is allowed to crash the process.
var (
	ErrValidation        = errors.New("malformed or missing required field")
	ErrNotFound          = errors.New("record not found")
	ErrAlreadyApplied    = errors.New("applicant already applied to this vacancy")
	ErrInvalidTransition = errors.New("unknown candidacy status")
	ErrUnauthorized      = errors.New("missing or invalid credential")
	ErrForbidden         = errors.New("operation not permitted")
	ErrSourceUnavailable = errors.New("external vacancy source unavailable")
	ErrStorage           = errors.New("storage failure")
	ErrImportRunning     = errors.New("import cycle already running")
)
