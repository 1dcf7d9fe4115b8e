package bind

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	language "github.com/gqlbind/gqlbind/internal/language"
)

const testSDL = `
type Query {
	user(id: ID!): User
	search(term: String, limit: Int): [User]
	version: String
}

type Mutation {
	rename(id: ID!, name: String!): User
}

type User {
	id: ID!
	name: String
	role: Role
	friends: [User]
}

enum Role {
	ADMIN
	MEMBER
	GUEST
}
`

func TestBindDocument_OperationsInOrder(t *testing.T) {
	sch := mustBuildSchema(t, testSDL)
	doc := mustBind(t, sch, `
		query First { version }
		mutation Second($id: ID!) { rename(id: $id, name: "x") { id } }
		fragment UserBits on User { id name }
		query Third { user(id: "1") { ...UserBits } }
	`)

	require.Len(t, doc, 3, "fragment definitions contribute no output")
	got := make([]string, len(doc))
	for i, op := range doc {
		got[i] = string(op.Value.Kind) + " " + op.Value.Name
	}
	want := []string{"query First", "mutation Second", "query Third"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("operation order mismatch (-want +got):\n%s", diff)
	}

	for _, op := range doc {
		require.NotNil(t, op.Pos, "every operation carries its position")
	}
}

func TestBindDocument_FragmentDefinedAfterUse(t *testing.T) {
	sch := mustBuildSchema(t, testSDL)
	doc := mustBind(t, sch, `
		query { user(id: "1") { ...Late } }
		fragment Late on User { id }
	`)
	require.Len(t, doc, 1)

	field, ok := doc[0].Value.Selections[0].Value.(*Field)
	require.True(t, ok)
	spread, ok := field.Selections[0].Value.(*FragmentSpread)
	require.True(t, ok)
	require.Equal(t, "Late", spread.Fragment.Name)
	require.Equal(t, "User", spread.Fragment.TypeCondition.Name)
}

func TestBindDocument_DuplicateFragment(t *testing.T) {
	sch := mustBuildSchema(t, testSDL)
	q := `fragment F on User { id }
fragment F on User { name }
{ version }`
	be := bindErr(t, sch, q)
	require.Equal(t, CodeDuplicateFragment, be.Code)
	require.Equal(t, 2, be.Pos.Line, "reported at the second definition")
}

func TestBindDocument_ShorthandUsesQueryRoot(t *testing.T) {
	sch := mustBuildSchema(t, testSDL)
	doc := mustBind(t, sch, `{ version }`)
	require.Len(t, doc, 1)
	op := doc[0].Value
	require.Equal(t, language.Query, op.Kind)
	require.Empty(t, op.Name)
	require.Empty(t, op.Variables)
	field := op.Selections[0].Value.(*Field)
	require.Equal(t, "version", field.Def.Name)
}

func TestBindDocument_MissingMutationRoot(t *testing.T) {
	sch := mustBuildSchema(t, `type Query { version: String }`)
	be := bindErr(t, sch, `mutation { anything }`)
	require.Equal(t, CodeUnknownType, be.Code)
	require.Contains(t, be.Message, "mutation")
}

func TestBindDocument_VariableScopesPerOperation(t *testing.T) {
	sch := mustBuildSchema(t, testSDL)

	t.Run("declared variable is visible in the body", func(t *testing.T) {
		doc := mustBind(t, sch, `query GetUser($id: ID!) { user(id: $id) { id } }`)
		op := doc.Operation("GetUser")
		require.NotNil(t, op)
		require.Len(t, op.Variables, 1)

		field := op.Selections[0].Value.(*Field)
		require.Len(t, field.Arguments, 1)
		arg := field.Arguments[0].Value
		require.Equal(t, ValueKindVariable, arg.Value.Value.Kind)
		require.Same(t, op.Variables[0], arg.Value.Value.Variable, "reference holds the declared handle")
	})

	t.Run("variables do not leak across operations", func(t *testing.T) {
		be := bindErr(t, sch, `
			query A($id: ID!) { user(id: $id) { id } }
			query B { user(id: $id) { id } }
		`)
		require.Equal(t, CodeUnknownVariable, be.Code)
		require.Contains(t, be.Message, "$id")
	})

	t.Run("duplicate declaration", func(t *testing.T) {
		be := bindErr(t, sch, "query Dup($x: Int, $x: String) { version }")
		require.Equal(t, CodeDuplicateVariable, be.Code)
		require.Equal(t, 1, be.Pos.Line)
		require.Greater(t, be.Pos.Column, 18, "reported at the second declaration")
	})
}

func TestBindDocument_LonghandShape(t *testing.T) {
	sch := mustBuildSchema(t, testSDL)
	doc := mustBind(t, sch, `query Q($x: Int) { search(limit: $x) { id } }`)

	op := doc.Operation("Q")
	require.NotNil(t, op)
	require.Equal(t, language.Query, op.Kind)
	require.Len(t, op.Variables, 1)
	require.Equal(t, "x", op.Variables[0].Name)
	require.Equal(t, "Int", op.Variables[0].Type.Value.String())

	field := op.Selections[0].Value.(*Field)
	require.Equal(t, "search", field.Def.Name)
	require.Len(t, field.Arguments, 1)
	arg := field.Arguments[0].Value
	require.Equal(t, "limit", arg.Def.Name)
	require.Equal(t, ValueKindVariable, arg.Value.Value.Kind)
	require.Equal(t, "x", arg.Value.Value.Variable.Name)
}
