package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	schema "github.com/gqlbind/gqlbind/internal/schema"
)

const testSDL = `
type Query {
	user(id: ID!): User
}

type User {
	id: ID!
	name: String
}
`

func newTestHandler(t *testing.T, opts ...Option) *Handler {
	t.Helper()
	sch, err := schema.BuildFromSDL("schema.graphql", testSDL)
	require.NoError(t, err)
	return New(sch, zerolog.Nop(), opts...)
}

func post(h http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/check", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandler_ValidDocument(t *testing.T) {
	h := newTestHandler(t)
	rec := post(h, `{"query": "query GetUser($id: ID!) { user(id: $id) { id name } }"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{
		"valid": true,
		"operations": [{"name": "GetUser", "kind": "query", "variables": ["id: ID!"]}]
	}`, rec.Body.String())
}

func TestHandler_BindDiagnostic(t *testing.T) {
	h := newTestHandler(t)
	rec := post(h, `{"query": "{ bogus }"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{
		"valid": false,
		"errors": [{
			"message": "Type Query has no field \"bogus\"",
			"locations": [{"line": 1, "column": 3}]
		}]
	}`, rec.Body.String())
}

func TestHandler_SyntaxError(t *testing.T) {
	h := newTestHandler(t)
	rec := post(h, `{"query": "{ user("}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"valid":false`)
}

func TestHandler_BadRequests(t *testing.T) {
	h := newTestHandler(t)

	t.Run("wrong method", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/check", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		rec := post(h, `not json`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing query", func(t *testing.T) {
		rec := post(h, `{}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("body over the limit", func(t *testing.T) {
		limited := newTestHandler(t, WithMaxBodyBytes(8))
		rec := post(limited, `{"query": "{ user }"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
