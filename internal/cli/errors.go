// Package cli implements the command-line interface.
package cli

// Error codes for structured error responses.
// These codes are stable and can be relied upon by scripts.
const (
	// Lookup errors
	ErrEmptyQuery = "EMPTY_QUERY"
	ErrNotFound   = "NOT_FOUND"

	// Dataset errors
	ErrDatasetError = "DATASET_ERROR"
	ErrVerifyFailed = "VERIFY_FAILED"

	// Config errors
	ErrConfigInvalid = "CONFIG_INVALID"

	// File errors
	ErrFileNotFound   = "FILE_NOT_FOUND"
	ErrFileReadError  = "FILE_READ_ERROR"
	ErrFileWriteError = "FILE_WRITE_ERROR"

	// Input errors
	ErrInvalidInput    = "INVALID_INPUT"
	ErrSectionNotFound = "SECTION_NOT_FOUND"
)
