package schema

import "strings"

// Schema is the read-only lookup surface documents are bound against:
// named types, directives, root operation types, and a schema-wide
// enum-member index. It is never mutated once built, so one Schema may
// serve any number of concurrent document binds.
type Schema struct {
	QueryType    string
	MutationType string
	Description  string
	Types        map[string]*Type // all named types keyed by name
	Directives   map[string]*Directive

	enumMembers map[string]*EnumMember // member name -> declaring enum + value
}

// NewSchema returns an empty schema.
func NewSchema(description string) *Schema {
	return &Schema{
		Description: description,
		Types:       make(map[string]*Type),
		Directives:  make(map[string]*Directive),
		enumMembers: make(map[string]*EnumMember),
	}
}

func (s *Schema) SetQueryType(name string) *Schema    { s.QueryType = name; return s }
func (s *Schema) SetMutationType(name string) *Schema { s.MutationType = name; return s }

// AddType registers a named type. Enum members are indexed schema-wide;
// member names are assumed unique across enums by schema convention.
func (s *Schema) AddType(t *Type) *Schema {
	s.Types[t.Name] = t
	if t.Kind == TypeKindEnum {
		for _, v := range t.EnumValues {
			s.enumMembers[v.Name] = &EnumMember{Enum: t, Value: v}
		}
	}
	return s
}

func (s *Schema) AddDirective(d *Directive) *Schema {
	s.Directives[d.Name] = d
	return s
}

// Type returns the named type, or nil when the schema does not declare it.
func (s *Schema) Type(name string) *Type { return s.Types[name] }

// Directive returns the named directive, or nil.
func (s *Schema) Directive(name string) *Directive { return s.Directives[name] }

// EnumMember looks a value name up across every enum in the schema.
func (s *Schema) EnumMember(name string) *EnumMember { return s.enumMembers[name] }

// GetQueryType returns the root query type (nil if absent).
func (s *Schema) GetQueryType() *Type { return s.Types[s.QueryType] }

// GetMutationType returns the root mutation type (nil if absent).
func (s *Schema) GetMutationType() *Type { return s.Types[s.MutationType] }

// EnumMember pairs an enum value with the enum type declaring it.
type EnumMember struct {
	Enum  *Type
	Value *EnumValue
}

// Type is a named GraphQL type (object, interface, union, scalar, enum, input).
type Type struct {
	Name          string
	Kind          TypeKind
	Description   string
	Fields        []*Field      // for OBJECT and INTERFACE
	Interfaces    []string      // for OBJECT and INTERFACE
	PossibleTypes []string      // for INTERFACE and UNION
	EnumValues    []*EnumValue  // for ENUM
	InputFields   []*InputValue // for INPUT_OBJECT
}

func NewType(name string, kind TypeKind, description string) *Type {
	return &Type{Name: name, Kind: kind, Description: description}
}

func (t *Type) AddField(f *Field) *Type             { t.Fields = append(t.Fields, f); return t }
func (t *Type) AddInterface(name string) *Type      { t.Interfaces = append(t.Interfaces, name); return t }
func (t *Type) AddPossibleType(name string) *Type   { t.PossibleTypes = append(t.PossibleTypes, name); return t }
func (t *Type) AddEnumValue(v *EnumValue) *Type     { t.EnumValues = append(t.EnumValues, v); return t }
func (t *Type) AddInputField(v *InputValue) *Type   { t.InputFields = append(t.InputFields, v); return t }

// Field returns the field declared with the given name, or nil.
func (t *Type) Field(name string) *Field {
	for _, f := range t.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// FieldNames lists declared field names in declaration order.
func (t *Type) FieldNames() []string {
	names := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		names[i] = f.Name
	}
	return names
}

// HasEnumValue reports whether the enum declares the given member name.
func (t *Type) HasEnumValue(name string) bool {
	for _, v := range t.EnumValues {
		if v.Name == name {
			return true
		}
	}
	return false
}

// TypeKind represents the kind of GraphQL type.
type TypeKind string

const (
	TypeKindScalar      TypeKind = "SCALAR"
	TypeKindObject      TypeKind = "OBJECT"
	TypeKindInterface   TypeKind = "INTERFACE"
	TypeKindUnion       TypeKind = "UNION"
	TypeKindEnum        TypeKind = "ENUM"
	TypeKindInputObject TypeKind = "INPUT_OBJECT"
)

// Field represents a field on an object or interface type.
type Field struct {
	Name              string
	Description       string
	Type              *TypeRef
	Arguments         []*InputValue
	IsDeprecated      bool
	DeprecationReason string
}

func NewField(name, description string, t *TypeRef) *Field {
	return &Field{Name: name, Description: description, Type: t}
}

func (f *Field) AddArgument(v *InputValue) *Field { f.Arguments = append(f.Arguments, v); return f }

// Argument returns the declared argument with the given name, or nil.
func (f *Field) Argument(name string) *InputValue {
	for _, a := range f.Arguments {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// ValidateFunc checks a caller-supplied argument value and returns its
// bound form. Returning an error rejects the value; the error message is
// the rejection reason surfaced to the document author.
type ValidateFunc func(value any) (any, error)

// InputValue is an argument or input-object field declaration.
type InputValue struct {
	Name              string
	Description       string
	Type              *TypeRef
	DefaultValue      any
	Validate          ValidateFunc
	IsDeprecated      bool
	DeprecationReason string
}

func NewInputValue(name, description string, t *TypeRef) *InputValue {
	return &InputValue{Name: name, Description: description, Type: t}
}

func (v *InputValue) SetDefault(def any) *InputValue    { v.DefaultValue = def; return v }
func (v *InputValue) SetValidate(f ValidateFunc) *InputValue { v.Validate = f; return v }

// Bind runs the declared validator against value. Declarations without a
// validator accept anything as-is.
func (v *InputValue) Bind(value any) (any, error) {
	if v.Validate == nil {
		return value, nil
	}
	return v.Validate(value)
}

// EnumValue is a single member of an enum type.
type EnumValue struct {
	Name              string
	Description       string
	IsDeprecated      bool
	DeprecationReason string
}

func NewEnumValue(name, description string) *EnumValue {
	return &EnumValue{Name: name, Description: description}
}

// Directive is a directive declaration.
type Directive struct {
	Name         string
	Description  string
	Locations    []string
	Arguments    []*InputValue
	IsRepeatable bool
}

func NewDirective(name, description string) *Directive {
	return &Directive{Name: name, Description: description}
}

func (d *Directive) AddArgument(v *InputValue) *Directive {
	d.Arguments = append(d.Arguments, v)
	return d
}

func (d *Directive) SetRepeatable(r bool) *Directive { d.IsRepeatable = r; return d }

// Argument returns the declared argument with the given name, or nil.
func (d *Directive) Argument(name string) *InputValue {
	for _, a := range d.Arguments {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// Variable marks a value position occupied by an operation variable.
// Validators receive it in place of a concrete value and are expected to
// pass it through; whether the runtime value fits is an execution concern.
type Variable struct {
	Name string
}

// TypeRef references a (possibly wrapped) type in a declaration position.
type TypeRef struct {
	Kind   TypeRefKind
	OfType *TypeRef // for LIST and NON_NULL
	Named  string   // for NAMED
}

type TypeRefKind string

const (
	TypeRefKindNamed   TypeRefKind = "NAMED"
	TypeRefKindList    TypeRefKind = "LIST"
	TypeRefKindNonNull TypeRefKind = "NON_NULL"
)

func NamedType(name string) *TypeRef  { return &TypeRef{Kind: TypeRefKindNamed, Named: name} }
func ListType(t *TypeRef) *TypeRef    { return &TypeRef{Kind: TypeRefKindList, OfType: t} }
func NonNullType(t *TypeRef) *TypeRef { return &TypeRef{Kind: TypeRefKindNonNull, OfType: t} }

// IsNonNull reports whether the reference is wrapped with Non-Null.
func (t *TypeRef) IsNonNull() bool { return t != nil && t.Kind == TypeRefKindNonNull }

// IsList reports whether the reference is a list, ignoring a Non-Null wrapper.
func (t *TypeRef) IsList() bool {
	if t == nil {
		return false
	}
	if t.Kind == TypeRefKindList {
		return true
	}
	return t.Kind == TypeRefKindNonNull && t.OfType != nil && t.OfType.Kind == TypeRefKindList
}

// Unwrap removes one layer of List or Non-Null wrapping.
func (t *TypeRef) Unwrap() *TypeRef {
	if t.Kind == TypeRefKindList || t.Kind == TypeRefKindNonNull {
		return t.OfType
	}
	return t
}

// NamedTypeName returns the innermost named type of the reference.
func (t *TypeRef) NamedTypeName() string {
	for cur := t; cur != nil; cur = cur.OfType {
		if cur.Named != "" {
			return cur.Named
		}
	}
	return ""
}

// String renders the reference in SDL notation, e.g. "[Int!]!".
func (t *TypeRef) String() string {
	if t == nil {
		return ""
	}
	var b strings.Builder
	t.render(&b)
	return b.String()
}

func (t *TypeRef) render(b *strings.Builder) {
	switch t.Kind {
	case TypeRefKindNamed:
		b.WriteString(t.Named)
	case TypeRefKindList:
		b.WriteByte('[')
		t.OfType.render(b)
		b.WriteByte(']')
	case TypeRefKindNonNull:
		t.OfType.render(b)
		b.WriteByte('!')
	}
}
