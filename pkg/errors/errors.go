// Package errors defines the sentinel errors shared across the launcher
// core, together with small wrapping helpers. Call sites wrap with %w so
// callers can classify failures with errors.Is across package boundaries.
package errors

import "fmt"

// Common error types.
var (
	// Manifest errors.
	ErrMissingField  = fmt.Errorf("required manifest field missing")
	ErrParse         = fmt.Errorf("failed to parse manifest")
	ErrInvalidName   = fmt.Errorf("invalid library name")
	ErrUnknownNative = fmt.Errorf("no native classifier for platform")

	// Fetch errors.
	ErrDownloadFailed = fmt.Errorf("download failed")
	ErrHashMismatch   = fmt.Errorf("file hash mismatch")
	ErrInvalidPath    = fmt.Errorf("invalid path")

	// Store errors.
	ErrObjectNotFound = fmt.Errorf("object not found in store")
	ErrInvalidHash    = fmt.Errorf("invalid content hash")

	// Natives errors.
	ErrExtract = fmt.Errorf("failed to extract native archive")

	// Config errors.
	ErrConfigParse      = fmt.Errorf("failed to parse config")
	ErrConfigValidation = fmt.Errorf("invalid configuration")

	// Hook errors.
	ErrHookExecution = fmt.Errorf("error executing hook")
	ErrHookScript    = fmt.Errorf("hook script error")
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
