package model

import "errors"

// Error kinds surfaced by the generation pipeline. Callers classify failures
// with errors.Is; batch reports persist the kind via ErrorKind.
var (
	// ErrNotFound indicates the input path does not exist or is unreadable.
	ErrNotFound = errors.New("source file not found")

	// ErrService indicates the assistant call failed, was unreachable or
	// returned no usable text.
	ErrService = errors.New("assistant service error")

	// ErrWrite indicates the output directory or file could not be written.
	ErrWrite = errors.New("output write error")
)

// Kind labels used in persisted reports.
const (
	KindNotFound = "not_found"
	KindService  = "service_error"
	KindWrite    = "write_error"
	KindUnknown  = "error"
)

// ErrorKind maps an error to its durable report label.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrService):
		return KindService
	case errors.Is(err, ErrWrite):
		return KindWrite
	default:
		return KindUnknown
	}
}
