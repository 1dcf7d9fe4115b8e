package bind

import (
	language "github.com/gqlbind/gqlbind/internal/language"
	schema "github.com/gqlbind/gqlbind/internal/schema"
)

// maxSelectionDepth bounds field-selection nesting. The counter increments
// only when recursing into a field's sub-selections; fragment bodies
// resolve at their spread site's depth.
const maxSelectionDepth = 10

// resolver binds one selection set against the schema type currently
// being selected from. A fresh resolver is created at an operation's root
// (depth 0) and per nested field selection (depth+1); the operation scope
// and schema are borrowed, never owned.
type resolver struct {
	scope  *operationScope
	onType *schema.Type
	depth  int
}

// argumentHost is the schema surface shared by fields and directives:
// a named-argument set.
type argumentHost interface {
	Argument(name string) *schema.InputValue
}

func (r *resolver) resolveSelectionSet(set language.SelectionSet) ([]Located[Selection], error) {
	out := make([]Located[Selection], 0, len(set))
	for _, sel := range set {
		switch node := sel.(type) {
		case *language.Field:
			f, err := r.resolveField(node)
			if err != nil {
				return nil, err
			}
			out = append(out, At[Selection](f, node.Position))
		case *language.FragmentSpread:
			fs, err := r.resolveFragmentSpread(node)
			if err != nil {
				return nil, err
			}
			out = append(out, At[Selection](fs, node.Position))
		case *language.InlineFragment:
			inf, err := r.resolveInlineFragment(node)
			if err != nil {
				return nil, err
			}
			out = append(out, At[Selection](inf, node.Position))
		}
	}
	return out, nil
}

func (r *resolver) resolveField(node *language.Field) (*Field, error) {
	def := r.onType.Field(node.Name)
	if def == nil {
		return nil, errUnknownField(node.Name, r.onType.Name, node.Position)
	}

	directives, err := r.resolveDirectives(node.Directives)
	if err != nil {
		return nil, err
	}
	arguments, err := r.resolveArguments(def, "field "+node.Name, node.Arguments)
	if err != nil {
		return nil, err
	}

	var selections []Located[Selection]
	if len(node.SelectionSet) > 0 {
		if r.depth >= maxSelectionDepth {
			return nil, errExceededMaxRecursionDepth(node.Position)
		}
		resultType := r.scope.schema.Type(def.Type.NamedTypeName())
		if resultType == nil {
			return nil, errUnknownType(def.Type.NamedTypeName(), node.Position)
		}
		child := &resolver{scope: r.scope, onType: resultType, depth: r.depth + 1}
		selections, err = child.resolveSelectionSet(node.SelectionSet)
		if err != nil {
			return nil, err
		}
	}

	alias := node.Alias
	if alias == node.Name {
		// The parser fills Alias with the field name when none was written.
		alias = ""
	}
	return &Field{
		Def:        def,
		Alias:      alias,
		Arguments:  arguments,
		Directives: directives,
		Selections: selections,
	}, nil
}

// resolveFragmentSpread re-derives the named fragment's body at this
// spread site. The body resolves against the site's current type and
// depth; the declared type condition is recorded, not used for scoping.
// Nothing is shared between two spreads of the same fragment.
func (r *resolver) resolveFragmentSpread(node *language.FragmentSpread) (*FragmentSpread, error) {
	def := r.scope.fragments[node.Name]
	if def == nil {
		return nil, errUnknownFragment(node.Name, node.Position)
	}

	siteDirectives, err := r.resolveDirectives(node.Directives)
	if err != nil {
		return nil, err
	}
	cond, err := r.resolveTypeCondition(def.TypeCondition, def.Position)
	if err != nil {
		return nil, err
	}
	bodyDirectives, err := r.resolveDirectives(def.Directives)
	if err != nil {
		return nil, err
	}
	selections, err := r.resolveSelectionSet(def.SelectionSet)
	if err != nil {
		return nil, err
	}

	return &FragmentSpread{
		Fragment: &Fragment{
			Name:          def.Name,
			TypeCondition: cond,
			Directives:    bodyDirectives,
			Selections:    selections,
		},
		Directives: siteDirectives,
	}, nil
}

func (r *resolver) resolveInlineFragment(node *language.InlineFragment) (*InlineFragment, error) {
	cond, err := r.resolveTypeCondition(node.TypeCondition, node.Position)
	if err != nil {
		return nil, err
	}
	directives, err := r.resolveDirectives(node.Directives)
	if err != nil {
		return nil, err
	}
	selections, err := r.resolveSelectionSet(node.SelectionSet)
	if err != nil {
		return nil, err
	}
	return &InlineFragment{TypeCondition: cond, Directives: directives, Selections: selections}, nil
}

func (r *resolver) resolveTypeCondition(name string, pos *language.Position) (*schema.Type, error) {
	if name == "" {
		return nil, nil
	}
	t := r.scope.schema.Type(name)
	if t == nil {
		return nil, errUnknownTypeCondition(name, pos)
	}
	return t, nil
}

// resolveDirectives binds each directive use against the schema's
// directive registry. Order is preserved and repeats pass through
// uninterpreted; whether a repeat is legal is a downstream concern.
func (r *resolver) resolveDirectives(list language.DirectiveList) ([]Located[*Directive], error) {
	if len(list) == 0 {
		return nil, nil
	}
	out := make([]Located[*Directive], 0, len(list))
	for _, node := range list {
		def := r.scope.schema.Directive(node.Name)
		if def == nil {
			return nil, errUnknownDirective(node.Name, node.Position)
		}
		arguments, err := r.resolveArguments(def, "directive @"+node.Name, node.Arguments)
		if err != nil {
			return nil, err
		}
		out = append(out, At(&Directive{Def: def, Arguments: arguments}, node.Position))
	}
	return out, nil
}

// resolveArguments binds caller-supplied arguments against a declared
// argument set. Each value is resolved, then submitted to the
// declaration's validation capability; rejection fails the bind with the
// validator's reason. Omitted arguments stay absent.
func (r *resolver) resolveArguments(host argumentHost, hostLabel string, args language.ArgumentList) ([]Located[*Argument], error) {
	if len(args) == 0 {
		return nil, nil
	}
	out := make([]Located[*Argument], 0, len(args))
	for _, node := range args {
		def := host.Argument(node.Name)
		if def == nil {
			return nil, errUnknownArgument(node.Name, hostLabel, node.Position)
		}
		value, err := r.scope.resolveValue(node.Value)
		if err != nil {
			return nil, err
		}
		bound, err := def.Bind(value.Value.GoValue())
		if err != nil {
			return nil, errInvalidArgumentValue(node.Name, err, node.Position)
		}
		out = append(out, At(&Argument{Def: def, Value: value, Bound: bound}, node.Position))
	}
	return out, nil
}
