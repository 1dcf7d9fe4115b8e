package bind

import (
	"strings"

	language "github.com/gqlbind/gqlbind/internal/language"
	schema "github.com/gqlbind/gqlbind/internal/schema"
)

// TypeKind discriminates the variants of a resolved type.
type TypeKind string

const (
	TypeKindNamed TypeKind = "NAMED"
	TypeKindList  TypeKind = "LIST"
)

// Type is a schema-bound type expression from a variable declaration.
// Each nesting level carries its own NonNull flag.
type Type struct {
	Kind    TypeKind
	Def     *schema.Type     // NAMED: the schema type referenced
	Items   []Located[*Type] // LIST: element types in declaration order
	NonNull bool
}

// String renders the type in SDL notation.
func (t *Type) String() string {
	var b strings.Builder
	t.render(&b)
	return b.String()
}

func (t *Type) render(b *strings.Builder) {
	switch t.Kind {
	case TypeKindNamed:
		b.WriteString(t.Def.Name)
	case TypeKindList:
		b.WriteByte('[')
		for i, item := range t.Items {
			if i > 0 {
				b.WriteString(", ")
			}
			item.Value.render(b)
		}
		b.WriteByte(']')
	}
	if t.NonNull {
		b.WriteByte('!')
	}
}

// ValueKind discriminates the variants of a resolved value.
type ValueKind string

const (
	ValueKindVariable ValueKind = "VARIABLE"
	ValueKindInt      ValueKind = "INT"
	ValueKindFloat    ValueKind = "FLOAT"
	ValueKindString   ValueKind = "STRING"
	ValueKindBoolean  ValueKind = "BOOLEAN"
	ValueKindNull     ValueKind = "NULL"
	ValueKindEnum     ValueKind = "ENUM"
	ValueKindList     ValueKind = "LIST"
	ValueKindObject   ValueKind = "OBJECT"
)

// Value is a schema-bound value from an argument, default, or nested
// literal position. Exactly the fields of the active Kind are set.
type Value struct {
	Kind     ValueKind
	Variable *VariableDefinition        // VARIABLE: handle into the operation scope
	Int      int64                      // INT
	Float    float64                    // FLOAT
	Str      string                     // STRING
	Bool     bool                       // BOOLEAN
	Enum     *schema.EnumMember         // ENUM
	Items    []Located[*Value]          // LIST: elements in source order
	Fields   map[string]Located[*Value] // OBJECT: duplicate names resolve last-wins
}

// GoValue flattens the resolved value into plain Go data for argument
// validators. Variable references become schema.Variable markers.
func (v *Value) GoValue() any {
	switch v.Kind {
	case ValueKindVariable:
		return schema.Variable{Name: v.Variable.Name}
	case ValueKindInt:
		return v.Int
	case ValueKindFloat:
		return v.Float
	case ValueKindString:
		return v.Str
	case ValueKindBoolean:
		return v.Bool
	case ValueKindNull:
		return nil
	case ValueKindEnum:
		return v.Enum.Value.Name
	case ValueKindList:
		out := make([]any, len(v.Items))
		for i, item := range v.Items {
			out[i] = item.Value.GoValue()
		}
		return out
	case ValueKindObject:
		m := make(map[string]any, len(v.Fields))
		for name, f := range v.Fields {
			m[name] = f.Value.GoValue()
		}
		return m
	default:
		return nil
	}
}

// VariableDefinition is one declared operation variable. It is created
// when the declaration is processed and immutable afterwards; variable
// references elsewhere in the same operation hold the same handle.
type VariableDefinition struct {
	Name    string
	Type    Located[*Type]
	Default *Located[*Value] // nil when no default was declared
}

// Argument is a caller-supplied argument matched to its declaration.
// Arguments the caller omitted are simply absent; no defaults are
// injected here.
type Argument struct {
	Def   *schema.InputValue
	Value Located[*Value]
	Bound any // the validator-bound form of the value
}

// Directive is a directive use matched to its declaration.
type Directive struct {
	Def       *schema.Directive
	Arguments []Located[*Argument]
}

// Selection is one node of a resolved selection set.
type Selection interface {
	isSelection()
}

// Field is a field selection bound to its schema declaration.
type Field struct {
	Def        *schema.Field
	Alias      string // empty unless the document aliased the field
	Arguments  []Located[*Argument]
	Directives []Located[*Directive]
	Selections []Located[Selection]
}

// FragmentSpread is a named-fragment use. The fragment body is re-derived
// at every spread site; two spreads of the same name never share state.
type FragmentSpread struct {
	Fragment   *Fragment
	Directives []Located[*Directive] // the spread site's own directives
}

// InlineFragment is an anonymous fragment written in place.
type InlineFragment struct {
	TypeCondition *schema.Type // nil when omitted
	Directives    []Located[*Directive]
	Selections    []Located[Selection]
}

func (*Field) isSelection()          {}
func (*FragmentSpread) isSelection() {}
func (*InlineFragment) isSelection() {}

// Fragment is a fragment body resolved at a particular spread site. The
// type condition is recorded for downstream consumers; field lookup in
// the body happens against the spread site's type.
type Fragment struct {
	Name          string
	TypeCondition *schema.Type
	Directives    []Located[*Directive]
	Selections    []Located[Selection]
}

// Operation is one resolved executable unit. Shorthand documents come out
// of the parse layer as unnamed queries, so a single struct covers both
// forms.
type Operation struct {
	Kind       language.Operation
	Name       string // empty for anonymous operations
	Variables  []*VariableDefinition
	Directives []Located[*Directive]
	Selections []Located[Selection]
}

// Document is the resolved form of one parsed document: its operations in
// document order. Fragment definitions contribute nothing here; they
// exist to be found by name.
type Document []Located[*Operation]

// Operation returns the named operation, or nil. An empty name matches
// the first anonymous operation.
func (d Document) Operation(name string) *Operation {
	for _, op := range d {
		if op.Value.Name == name {
			return op.Value
		}
	}
	return nil
}
