package bind

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveField_Unknown(t *testing.T) {
	sch := mustBuildSchema(t, `type Query { a: String, b: String }`)
	be := bindErr(t, sch, `{ bogus }`)
	require.Equal(t, CodeUnknownField, be.Code)
	require.Contains(t, be.Message, "bogus")
	require.Contains(t, be.Message, "Query", "names the enclosing type")
	require.Equal(t, 1, be.Pos.Line)
	require.Equal(t, 3, be.Pos.Column)
}

func TestResolveField_AliasAndNesting(t *testing.T) {
	sch := mustBuildSchema(t, `
		type Query { me: User }
		type User { id: ID!, name: String }
	`)
	doc := mustBind(t, sch, `{ who: me { id handle: name } }`)

	field := doc[0].Value.Selections[0].Value.(*Field)
	require.Equal(t, "me", field.Def.Name)
	require.Equal(t, "who", field.Alias)
	require.Len(t, field.Selections, 2)

	id := field.Selections[0].Value.(*Field)
	require.Equal(t, "id", id.Def.Name)
	require.Empty(t, id.Alias, "unaliased fields carry no alias")
	require.Empty(t, id.Selections, "leaf field yields an empty selection set")

	name := field.Selections[1].Value.(*Field)
	require.Equal(t, "handle", name.Alias)
}

// nestedQuery builds a document whose selections nest depth levels below
// the root, ending in a leaf.
func nestedQuery(depth int) string {
	var b strings.Builder
	b.WriteString("{ next ")
	for i := 1; i < depth; i++ {
		b.WriteString("{ next ")
	}
	b.WriteString("{ x }")
	for i := 1; i < depth; i++ {
		b.WriteString(" }")
	}
	b.WriteString(" }")
	return b.String()
}

func TestResolveField_RecursionDepth(t *testing.T) {
	sch := mustBuildSchema(t, `
		type Query { next: Node, x: Int }
		type Node { next: Node, x: Int }
	`)

	t.Run("ten levels succeed", func(t *testing.T) {
		mustBind(t, sch, nestedQuery(10))
	})

	t.Run("eleven levels fail", func(t *testing.T) {
		be := bindErr(t, sch, nestedQuery(11))
		require.Equal(t, CodeExceededMaxRecursionDepth, be.Code)
		require.NotNil(t, be.Pos)
	})
}

func TestResolveDirectives(t *testing.T) {
	sch := mustBuildSchema(t, `type Query { a: String }`)

	t.Run("builtin skip and include resolve", func(t *testing.T) {
		doc := mustBind(t, sch, `{ a @skip(if: true) @include(if: false) }`)
		field := doc[0].Value.Selections[0].Value.(*Field)
		require.Len(t, field.Directives, 2)
		require.Equal(t, "skip", field.Directives[0].Value.Def.Name)
		require.Equal(t, "include", field.Directives[1].Value.Def.Name)
	})

	t.Run("unknown directive", func(t *testing.T) {
		be := bindErr(t, sch, `{ a @nope }`)
		require.Equal(t, CodeUnknownDirective, be.Code)
		require.Contains(t, be.Message, "@nope")
	})

	t.Run("unknown directive argument", func(t *testing.T) {
		be := bindErr(t, sch, `{ a @skip(when: true) }`)
		require.Equal(t, CodeUnknownArgument, be.Code)
		require.Contains(t, be.Message, "when")
		require.Contains(t, be.Message, "@skip")
	})

	t.Run("repeats pass through in order", func(t *testing.T) {
		doc := mustBind(t, sch, `{ a @skip(if: true) @skip(if: false) }`)
		field := doc[0].Value.Selections[0].Value.(*Field)
		require.Len(t, field.Directives, 2)
	})
}

func TestResolveArguments(t *testing.T) {
	sch := mustBuildSchema(t, `type Query { field(arg: Int): String }`)

	t.Run("unknown argument", func(t *testing.T) {
		be := bindErr(t, sch, `{ field(nope: 1) }`)
		require.Equal(t, CodeUnknownArgument, be.Code)
		require.Contains(t, be.Message, "nope")
	})

	t.Run("omitted arguments stay absent", func(t *testing.T) {
		doc := mustBind(t, sch, `{ field }`)
		field := doc[0].Value.Selections[0].Value.(*Field)
		require.Empty(t, field.Arguments, "no default injection during binding")
	})

	t.Run("validator rejection carries the reason and position", func(t *testing.T) {
		rejecting := mustBuildSchema(t, `type Query { field(arg: Int): String }`)
		rejecting.Type("Query").Field("field").Argument("arg").Validate = func(v any) (any, error) {
			return nil, errReason("R")
		}
		be := bindErr(t, rejecting, `{ field(arg: 3) }`)
		require.Equal(t, CodeInvalidArgumentValue, be.Code)
		require.Contains(t, be.Message, "R")
		require.Equal(t, 9, be.Pos.Column, "points at the argument")
	})

	t.Run("bound value is the validator result", func(t *testing.T) {
		doc := mustBind(t, sch, `{ field(arg: 3) }`)
		field := doc[0].Value.Selections[0].Value.(*Field)
		require.Len(t, field.Arguments, 1)
		require.Equal(t, int64(3), field.Arguments[0].Value.Bound)
	})
}

type errReason string

func (e errReason) Error() string { return string(e) }

func TestResolveFragments(t *testing.T) {
	sch := mustBuildSchema(t, `
		type Query { me: User, other: User }
		type User { id: ID!, name: String }
	`)

	t.Run("unknown fragment", func(t *testing.T) {
		be := bindErr(t, sch, `{ me { ...Missing } }`)
		require.Equal(t, CodeUnknownFragment, be.Code)
		require.Contains(t, be.Message, "Missing")
	})

	t.Run("unknown type condition on spread", func(t *testing.T) {
		be := bindErr(t, sch, `
			{ me { ...F } }
			fragment F on Nowhere { id }
		`)
		require.Equal(t, CodeUnknownTypeCondition, be.Code)
		require.Contains(t, be.Message, "Nowhere")
	})

	t.Run("unknown type condition on inline fragment", func(t *testing.T) {
		be := bindErr(t, sch, `{ me { ... on Nowhere { id } } }`)
		require.Equal(t, CodeUnknownTypeCondition, be.Code)
	})

	t.Run("body binds against the spread site's type", func(t *testing.T) {
		// The fragment condition names User but the body is checked
		// against the type being selected from, here also User.
		doc := mustBind(t, sch, `
			{ me { ...F @skip(if: false) } }
			fragment F on User @include(if: true) { id name }
		`)
		me := doc[0].Value.Selections[0].Value.(*Field)
		spread := me.Selections[0].Value.(*FragmentSpread)
		require.Equal(t, "F", spread.Fragment.Name)
		require.Len(t, spread.Directives, 1, "spread site directives")
		require.Equal(t, "skip", spread.Directives[0].Value.Def.Name)
		require.Len(t, spread.Fragment.Directives, 1, "fragment body directives")
		require.Equal(t, "include", spread.Fragment.Directives[0].Value.Def.Name)
		require.Len(t, spread.Fragment.Selections, 2)
	})

	t.Run("condition mismatch with the site type still binds by site type", func(t *testing.T) {
		// Field lookup ignores the condition during this pass; the body
		// must exist on the site type, or binding fails.
		be := bindErr(t, sch, `
			{ me { ...Q } }
			fragment Q on Query { other { id } }
		`)
		require.Equal(t, CodeUnknownField, be.Code)
		require.Contains(t, be.Message, "other")
		require.Contains(t, be.Message, "User")
	})

	t.Run("each spread site re-derives the fragment", func(t *testing.T) {
		doc := mustBind(t, sch, `
			{ me { ...F } other { ...F } }
			fragment F on User { id }
		`)
		me := doc[0].Value.Selections[0].Value.(*Field)
		other := doc[0].Value.Selections[1].Value.(*Field)
		s1 := me.Selections[0].Value.(*FragmentSpread)
		s2 := other.Selections[0].Value.(*FragmentSpread)
		require.NotSame(t, s1.Fragment, s2.Fragment)
		require.NotSame(t, s1.Fragment.Selections[0].Value, s2.Fragment.Selections[0].Value)
	})

	t.Run("inline fragment without condition", func(t *testing.T) {
		doc := mustBind(t, sch, `{ me { ... @skip(if: true) { id } } }`)
		me := doc[0].Value.Selections[0].Value.(*Field)
		inline := me.Selections[0].Value.(*InlineFragment)
		require.Nil(t, inline.TypeCondition)
		require.Len(t, inline.Selections, 1)
	})

	t.Run("spread reuses the spreading resolver's depth", func(t *testing.T) {
		deep := mustBuildSchema(t, `
			type Query { next: Node, x: Int }
			type Node { next: Node, x: Int }
		`)
		// Ten levels of fields below the root plus a spread whose body is
		// only a leaf: the spread itself adds no depth.
		q := nestedQuery(9)
		q = strings.Replace(q, "{ x }", "{ next { ...Leaf } }", 1)
		q += "\nfragment Leaf on Node { x }"
		mustBind(t, deep, q)
	})
}
