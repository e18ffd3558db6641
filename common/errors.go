package common

import "errors"

// Sentinel errors for nordvpn operations.
// These can be checked with errors.Is() for proper error handling.
var (
	// Process errors.
	ErrProcessFailed = errors.New("nordvpn command failed")
	ErrCancelled     = errors.New("operation cancelled")

	// Connect target errors.
	ErrNoCountry           = errors.New("no country selected")
	ErrUnknownCountryCode  = errors.New("unknown country code")
	ErrInvalidServerNumber = errors.New("server number must be a positive integer")

	// Daemon errors.
	ErrDaemonNotRunning = errors.New("nordvpnd is not running")

	// Configuration errors.
	ErrConfigLoad = errors.New("failed to load configuration")
	ErrConfigSave = errors.New("failed to save configuration")
)

// WrapError wraps an error with additional context.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg: message,
		err: err,
	}
}

type wrappedError struct {
	msg string
	err error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.err.Error()
}

func (e *wrappedError) Unwrap() error {
	return e.err
}
