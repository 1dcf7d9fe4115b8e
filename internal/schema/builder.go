package schema

import (
	"strconv"

	"github.com/pkg/errors"

	language "github.com/gqlbind/gqlbind/internal/language"
)

// BuildFromSDL parses SDL text and builds the corresponding Schema.
// Built-in scalars and directives are always installed, every declared
// argument gets a default validator derived from its type, and root
// operation types follow the schema definition block when present
// (falling back to the conventional Query/Mutation names).
func BuildFromSDL(name, sdl string) (*Schema, error) {
	doc, err := language.ParseSchema(name, sdl)
	if err != nil {
		return nil, errors.Wrap(err, "parsing SDL")
	}
	return BuildFromDocument(doc)
}

// BuildFromDocument builds a Schema from an already parsed SDL document.
func BuildFromDocument(doc *language.SchemaDocument) (*Schema, error) {
	s := NewSchema("")
	installBuiltins(s)

	for _, def := range doc.Definitions {
		t, err := buildType(def)
		if err != nil {
			return nil, err
		}
		s.AddType(t)
	}
	for _, dd := range doc.Directives {
		s.AddDirective(buildDirective(dd))
	}

	s.SetQueryType("Query").SetMutationType("Mutation")
	for _, sd := range doc.Schema {
		for _, op := range sd.OperationTypes {
			switch op.Operation {
			case language.Query:
				s.SetQueryType(op.Type)
			case language.Mutation:
				s.SetMutationType(op.Type)
			}
		}
	}

	attachValidators(s)
	return s, nil
}

func buildType(def *language.Definition) (*Type, error) {
	switch def.Kind {
	case language.Object, language.Interface:
		kind := TypeKindObject
		if def.Kind == language.Interface {
			kind = TypeKindInterface
		}
		t := NewType(def.Name, kind, def.Description)
		for _, name := range def.Interfaces {
			t.AddInterface(name)
		}
		for _, fd := range def.Fields {
			t.AddField(buildField(fd))
		}
		return t, nil
	case language.Union:
		t := NewType(def.Name, TypeKindUnion, def.Description)
		for _, name := range def.Types {
			t.AddPossibleType(name)
		}
		return t, nil
	case language.Enum:
		t := NewType(def.Name, TypeKindEnum, def.Description)
		for _, v := range def.EnumValues {
			t.AddEnumValue(NewEnumValue(v.Name, v.Description))
		}
		return t, nil
	case language.InputObject:
		t := NewType(def.Name, TypeKindInputObject, def.Description)
		for _, fd := range def.Fields {
			t.AddInputField(buildInputValue(fd.Name, fd.Description, fd.Type, fd.DefaultValue))
		}
		return t, nil
	case language.Scalar:
		return NewType(def.Name, TypeKindScalar, def.Description), nil
	default:
		return nil, errors.Errorf("unsupported definition kind %q for %s", def.Kind, def.Name)
	}
}

func buildField(fd *language.FieldDefinition) *Field {
	f := NewField(fd.Name, fd.Description, buildTypeRef(fd.Type))
	for _, ad := range fd.Arguments {
		f.AddArgument(buildInputValue(ad.Name, ad.Description, ad.Type, ad.DefaultValue))
	}
	return f
}

func buildDirective(dd *language.DirectiveDefinition) *Directive {
	d := NewDirective(dd.Name, dd.Description).SetRepeatable(dd.IsRepeatable)
	for _, loc := range dd.Locations {
		d.Locations = append(d.Locations, string(loc))
	}
	for _, ad := range dd.Arguments {
		d.AddArgument(buildInputValue(ad.Name, ad.Description, ad.Type, ad.DefaultValue))
	}
	return d
}

func buildInputValue(name, description string, t *language.Type, def *language.Value) *InputValue {
	in := NewInputValue(name, description, buildTypeRef(t))
	if def != nil {
		in.SetDefault(literalToGo(def))
	}
	return in
}

func buildTypeRef(t *language.Type) *TypeRef {
	var ref *TypeRef
	if t.Elem != nil {
		ref = ListType(buildTypeRef(t.Elem))
	} else {
		ref = NamedType(t.NamedType)
	}
	if t.NonNull {
		ref = NonNullType(ref)
	}
	return ref
}

// literalToGo converts a parsed default-value literal to a plain Go value.
func literalToGo(v *language.Value) any {
	switch v.Kind {
	case language.IntValue:
		n, _ := strconv.ParseInt(v.Raw, 10, 64)
		return n
	case language.FloatValue:
		f, _ := strconv.ParseFloat(v.Raw, 64)
		return f
	case language.StringValue, language.BlockValue, language.EnumValue:
		return v.Raw
	case language.BooleanValue:
		return v.Raw == "true"
	case language.NullValue:
		return nil
	case language.ListValue:
		out := make([]any, len(v.Children))
		for i, c := range v.Children {
			out[i] = literalToGo(c.Value)
		}
		return out
	case language.ObjectValue:
		m := make(map[string]any, len(v.Children))
		for _, c := range v.Children {
			m[c.Name] = literalToGo(c.Value)
		}
		return m
	default:
		return nil
	}
}

// attachValidators installs the default type-derived validator on every
// declared argument and input field that has none.
func attachValidators(s *Schema) {
	for _, t := range s.Types {
		for _, f := range t.Fields {
			for _, a := range f.Arguments {
				if a.Validate == nil {
					a.Validate = s.defaultValidator(a.Type)
				}
			}
		}
		for _, in := range t.InputFields {
			if in.Validate == nil {
				in.Validate = s.defaultValidator(in.Type)
			}
		}
	}
	for _, d := range s.Directives {
		for _, a := range d.Arguments {
			if a.Validate == nil {
				a.Validate = s.defaultValidator(a.Type)
			}
		}
	}
}
