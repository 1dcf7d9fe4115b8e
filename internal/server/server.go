package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	bind "github.com/gqlbind/gqlbind/internal/bind"
	eventbus "github.com/gqlbind/gqlbind/internal/eventbus"
	events "github.com/gqlbind/gqlbind/internal/events"
	language "github.com/gqlbind/gqlbind/internal/language"
	reqid "github.com/gqlbind/gqlbind/internal/reqid"
	schema "github.com/gqlbind/gqlbind/internal/schema"
)

// Handler is an http.Handler that checks GraphQL documents against a
// schema. It parses the posted document, binds it, and reports either an
// operation summary or the diagnostic as JSON.
type Handler struct {
	schema *schema.Schema
	log    zerolog.Logger
	opt    Options
}

type Options struct {
	// Timeout sets a default timeout if the incoming request context has none.
	// 0 means no default timeout.
	Timeout time.Duration

	// Pretty enables indented JSON responses (useful for dev).
	Pretty bool

	// MaxBodyBytes limits the size of the request body. 0 means unlimited.
	MaxBodyBytes int64
}

type Option func(*Options)

func WithTimeout(d time.Duration) Option { return func(o *Options) { o.Timeout = d } }
func WithPretty() Option                 { return func(o *Options) { o.Pretty = true } }
func WithMaxBodyBytes(n int64) Option    { return func(o *Options) { o.MaxBodyBytes = n } }

// New creates a checker handler bound to the given schema.
func New(s *schema.Schema, log zerolog.Logger, opts ...Option) *Handler {
	op := Options{Timeout: 10 * time.Second}
	for _, f := range opts {
		f(&op)
	}
	return &Handler{schema: s, log: log, opt: op}
}

// CheckRequest is the accepted JSON body.
type CheckRequest struct {
	Query string `json:"query"`
}

// CheckResponse reports the outcome of one document check.
type CheckResponse struct {
	Valid      bool               `json:"valid"`
	Operations []OperationSummary `json:"operations,omitempty"`
	Errors     []ResponseError    `json:"errors,omitempty"`
}

// OperationSummary describes one bound operation.
type OperationSummary struct {
	Name      string   `json:"name,omitempty"`
	Kind      string   `json:"kind"`
	Variables []string `json:"variables,omitempty"`
}

// ResponseError is a GraphQL-style error with source locations.
type ResponseError struct {
	Message   string     `json:"message"`
	Locations []Location `json:"locations,omitempty"`
}

type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if _, ok := ctx.Deadline(); !ok && h.opt.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.opt.Timeout)
		defer cancel()
	}

	ctx, rid := reqid.NewContext(ctx)
	status := http.StatusOK
	start := time.Now()
	eventbus.Publish(ctx, events.HTTPStart{Request: r})
	defer func() {
		eventbus.Publish(ctx, events.HTTPFinish{Request: r, Status: status, Duration: time.Since(start)})
	}()
	log := h.log.With().Int64("request_id", rid).Logger()

	if r.Method != http.MethodPost {
		status = http.StatusMethodNotAllowed
		h.writeJSON(w, status, CheckResponse{Errors: []ResponseError{{Message: "method not allowed"}}})
		return
	}

	req, err := parseRequest(r, h.opt.MaxBodyBytes)
	if err != nil {
		status = http.StatusBadRequest
		h.writeJSON(w, status, CheckResponse{Errors: []ResponseError{{Message: err.Error()}}})
		return
	}

	res := h.checkOne(ctx, req)
	log.Info().
		Bool("valid", res.Valid).
		Int("operations", len(res.Operations)).
		Dur("elapsed", time.Since(start)).
		Msg("document checked")
	h.writeJSON(w, status, res)
}

func (h *Handler) checkOne(ctx context.Context, req CheckRequest) CheckResponse {
	doc, err := language.ParseQuery("request", req.Query)
	if err != nil {
		return errorResponse(err)
	}

	start := time.Now()
	eventbus.Publish(ctx, events.BindStart{Source: "request"})
	bound, err := bind.Bind(h.schema, doc)
	eventbus.Publish(ctx, events.BindFinish{
		Source:     "request",
		Operations: len(bound),
		Err:        err,
		Duration:   time.Since(start),
	})
	if err != nil {
		return errorResponse(err)
	}

	ops := make([]OperationSummary, 0, len(bound))
	for _, op := range bound {
		sum := OperationSummary{Name: op.Value.Name, Kind: string(op.Value.Kind)}
		for _, v := range op.Value.Variables {
			sum.Variables = append(sum.Variables, v.Name+": "+v.Type.Value.String())
		}
		ops = append(ops, sum)
	}
	return CheckResponse{Valid: true, Operations: ops}
}

func errorResponse(err error) CheckResponse {
	re := ResponseError{Message: err.Error()}
	var be *bind.Error
	if errors.As(err, &be) {
		re.Message = be.Message
		if be.Pos != nil {
			re.Locations = []Location{{Line: be.Pos.Line, Column: be.Pos.Column}}
		}
	}
	return CheckResponse{Errors: []ResponseError{re}}
}

func parseRequest(r *http.Request, maxBody int64) (CheckRequest, error) {
	body := io.Reader(r.Body)
	if maxBody > 0 {
		body = io.LimitReader(r.Body, maxBody)
	}
	var req CheckRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return CheckRequest{}, errors.New("invalid request body")
	}
	if req.Query == "" {
		return CheckRequest{}, errors.New("missing 'query'")
	}
	return req, nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	if h.opt.Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		h.log.Error().Err(err).Msg("writing response")
	}
}
