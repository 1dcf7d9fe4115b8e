package bind

import (
	language "github.com/gqlbind/gqlbind/internal/language"
	schema "github.com/gqlbind/gqlbind/internal/schema"
)

// operationScope owns one operation's variable declarations and exposes
// the document-wide fragment registry to resolvers. The variable table is
// written only while the declaration list is processed; for the rest of
// the operation's resolution it is read-only.
type operationScope struct {
	schema    *schema.Schema
	fragments map[string]*language.FragmentDefinition
	variables map[string]*VariableDefinition
}

// declareVariable registers one variable declaration, resolving its
// declared type and optional default. Later value resolutions in the same
// operation receive the returned handle.
func (s *operationScope) declareVariable(node *language.VariableDefinition) (*VariableDefinition, error) {
	if _, exists := s.variables[node.Variable]; exists {
		return nil, errDuplicateVariable(node.Variable, node.Position)
	}
	typ, err := s.resolveType(node.Type)
	if err != nil {
		return nil, err
	}
	def := &VariableDefinition{Name: node.Variable, Type: typ}
	if node.DefaultValue != nil {
		dv, err := s.resolveValue(node.DefaultValue)
		if err != nil {
			return nil, err
		}
		def.Default = &dv
	}
	s.variables[node.Variable] = def
	return def, nil
}

// resolveOperation binds one operation definition: variable declarations
// first (in order), then the operation's directives and selection set
// against the root type for its kind.
func (b *Binder) resolveOperation(node *language.OperationDefinition) (*Operation, error) {
	scope := &operationScope{
		schema:    b.schema,
		fragments: b.fragments,
		variables: make(map[string]*VariableDefinition),
	}

	op := &Operation{Kind: node.Operation, Name: node.Name}
	for _, vd := range node.VariableDefinitions {
		def, err := scope.declareVariable(vd)
		if err != nil {
			return nil, err
		}
		op.Variables = append(op.Variables, def)
	}

	var root *schema.Type
	switch node.Operation {
	case language.Mutation:
		root = b.schema.GetMutationType()
	default:
		// Shorthand documents parse as unnamed queries.
		root = b.schema.GetQueryType()
	}
	if root == nil {
		return nil, errMissingRootType(string(node.Operation), node.Position)
	}

	r := &resolver{scope: scope, onType: root, depth: 0}
	var err error
	if op.Directives, err = r.resolveDirectives(node.Directives); err != nil {
		return nil, err
	}
	if op.Selections, err = r.resolveSelectionSet(node.SelectionSet); err != nil {
		return nil, err
	}
	return op, nil
}
