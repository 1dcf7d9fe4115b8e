package bind

import (
	"testing"

	"github.com/stretchr/testify/require"

	language "github.com/gqlbind/gqlbind/internal/language"
	schema "github.com/gqlbind/gqlbind/internal/schema"
)

// mustParseQuery parses a GraphQL document and fails the test on error.
func mustParseQuery(t *testing.T, q string) *language.QueryDocument {
	t.Helper()
	doc, err := language.ParseQuery("query.graphql", q)
	require.NoError(t, err, "parse error")
	return doc
}

// mustBuildSchema builds a schema from SDL and fails the test on error.
func mustBuildSchema(t *testing.T, sdl string) *schema.Schema {
	t.Helper()
	sch, err := schema.BuildFromSDL("schema.graphql", sdl)
	require.NoError(t, err, "schema error")
	return sch
}

// mustBind binds q against sch and fails the test on any diagnostic.
func mustBind(t *testing.T, sch *schema.Schema, q string) Document {
	t.Helper()
	doc, err := Bind(sch, mustParseQuery(t, q))
	require.NoError(t, err)
	return doc
}

// bindErr binds q against sch and requires a taxonomy error.
func bindErr(t *testing.T, sch *schema.Schema, q string) *Error {
	t.Helper()
	_, err := Bind(sch, mustParseQuery(t, q))
	require.Error(t, err)
	be, ok := err.(*Error)
	require.True(t, ok, "expected *bind.Error, got %T: %v", err, err)
	return be
}
