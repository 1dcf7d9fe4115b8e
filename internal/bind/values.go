package bind

import (
	"strconv"

	language "github.com/gqlbind/gqlbind/internal/language"
)

// resolveType binds parsed type syntax to the schema. Every nesting level
// keeps its own position and NonNull flag. The parse layer wraps list
// elements one at a time, so a resolved list carries one entry per parsed
// element.
func (s *operationScope) resolveType(node *language.Type) (Located[*Type], error) {
	if node.Elem != nil {
		elem, err := s.resolveType(node.Elem)
		if err != nil {
			return Located[*Type]{}, err
		}
		t := &Type{Kind: TypeKindList, Items: []Located[*Type]{elem}, NonNull: node.NonNull}
		return At(t, node.Position), nil
	}
	def := s.schema.Type(node.NamedType)
	if def == nil {
		return Located[*Type]{}, errUnknownType(node.NamedType, node.Position)
	}
	return At(&Type{Kind: TypeKindNamed, Def: def, NonNull: node.NonNull}, node.Position), nil
}

// resolveValue binds a parsed literal, variable reference, enum value,
// list, or object. Lexical validity of numeric literals is guaranteed
// upstream by the parser.
func (s *operationScope) resolveValue(node *language.Value) (Located[*Value], error) {
	pos := node.Position
	switch node.Kind {
	case language.Variable:
		def := s.variables[node.Raw]
		if def == nil {
			return Located[*Value]{}, errUnknownVariable(node.Raw, pos)
		}
		return At(&Value{Kind: ValueKindVariable, Variable: def}, pos), nil

	case language.IntValue:
		n, _ := strconv.ParseInt(node.Raw, 10, 64)
		return At(&Value{Kind: ValueKindInt, Int: n}, pos), nil

	case language.FloatValue:
		f, _ := strconv.ParseFloat(node.Raw, 64)
		return At(&Value{Kind: ValueKindFloat, Float: f}, pos), nil

	case language.StringValue, language.BlockValue:
		return At(&Value{Kind: ValueKindString, Str: node.Raw}, pos), nil

	case language.BooleanValue:
		return At(&Value{Kind: ValueKindBoolean, Bool: node.Raw == "true"}, pos), nil

	case language.NullValue:
		return At(&Value{Kind: ValueKindNull}, pos), nil

	case language.EnumValue:
		// Enum member names are looked up schema-wide, not against a
		// contextually expected enum type; the schema convention keeps
		// member names globally unique.
		m := s.schema.EnumMember(node.Raw)
		if m == nil {
			return Located[*Value]{}, errUnknownEnumValue(node.Raw, pos)
		}
		return At(&Value{Kind: ValueKindEnum, Enum: m}, pos), nil

	case language.ListValue:
		items := make([]Located[*Value], 0, len(node.Children))
		for _, c := range node.Children {
			item, err := s.resolveValue(c.Value)
			if err != nil {
				return Located[*Value]{}, err
			}
			items = append(items, item)
		}
		return At(&Value{Kind: ValueKindList, Items: items}, pos), nil

	case language.ObjectValue:
		fields := make(map[string]Located[*Value], len(node.Children))
		for _, c := range node.Children {
			// Duplicate field names: last occurrence wins.
			f, err := s.resolveValue(c.Value)
			if err != nil {
				return Located[*Value]{}, err
			}
			fields[c.Name] = f
		}
		return At(&Value{Kind: ValueKindObject, Fields: fields}, pos), nil

	default:
		return At(&Value{Kind: ValueKindNull}, pos), nil
	}
}
