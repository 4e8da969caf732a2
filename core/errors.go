package core

import "errors"

// Sentinel errors shared by the pipeline stages.
var (
	ErrInvalidSource = errors.New("invalid source")
	ErrTimeout       = errors.New("request timed out")
	ErrTLSVerify     = errors.New("TLS certificate verification failed")
	ErrHTTPStatus    = errors.New("unexpected HTTP status")
	ErrNoContent     = errors.New("no content found in HTML")

	// ErrEmptyMarkdown is returned when a non-empty page cleans to nothing.
	ErrEmptyMarkdown = errors.New("generated markdown content is empty")
)
