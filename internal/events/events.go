package events

import (
	"net/http"
	"time"
)

// HTTPStart is emitted when an HTTP request is received.
// Context carries the request context.
type HTTPStart struct {
	Request *http.Request
}

// HTTPFinish is emitted after the handler completes.
type HTTPFinish struct {
	Request  *http.Request
	Status   int
	Duration time.Duration
}

// BindStart is emitted before a document is bound against the schema.
type BindStart struct {
	Source string // document name, e.g. a file path or "request"
}

// BindFinish is emitted after a document bind completes.
type BindFinish struct {
	Source     string
	Operations int // resolved operation count; 0 on failure
	Err        error
	Duration   time.Duration
}
