package schema

import "fmt"

// defaultValidator derives an argument validator from the declared type.
// Variables always pass through untouched: whether the runtime value fits
// the declaration is checked at execution time, not while binding.
func (s *Schema) defaultValidator(t *TypeRef) ValidateFunc {
	return func(v any) (any, error) {
		return s.checkValue(v, t)
	}
}

func (s *Schema) checkValue(v any, t *TypeRef) (any, error) {
	if _, ok := v.(Variable); ok {
		return v, nil
	}

	if t.IsNonNull() {
		if v == nil {
			return nil, fmt.Errorf("cannot provide null for non-null type %s", t)
		}
		return s.checkValue(v, t.Unwrap())
	}
	if v == nil {
		return nil, nil
	}
	if t.IsList() {
		return s.checkListValue(v, t)
	}

	named := s.Type(t.NamedTypeName())
	if named == nil {
		// Schema well-formedness is not checked here; unknown names accept anything.
		return v, nil
	}
	switch named.Kind {
	case TypeKindEnum:
		// Membership in this particular enum is not enforced: member
		// names resolve schema-wide and are unique by convention.
		name, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected an enum value for %s, got %T", named.Name, v)
		}
		return name, nil
	case TypeKindScalar:
		return checkScalar(v, named.Name)
	default:
		// Input objects and composite declarations accept the resolved
		// shape as-is; field-wise checking is left to the host.
		return v, nil
	}
}

func (s *Schema) checkListValue(v any, t *TypeRef) (any, error) {
	inner := t.Unwrap()
	if items, ok := v.([]any); ok {
		out := make([]any, len(items))
		for i, item := range items {
			cv, err := s.checkValue(item, inner)
			if err != nil {
				return nil, err
			}
			out[i] = cv
		}
		return out, nil
	}
	// A single value in list position binds as a list of one.
	cv, err := s.checkValue(v, inner)
	if err != nil {
		return nil, err
	}
	return []any{cv}, nil
}

func checkScalar(v any, name string) (any, error) {
	switch name {
	case "Int":
		switch n := v.(type) {
		case int64:
			return n, nil
		case int:
			return int64(n), nil
		}
		return nil, fmt.Errorf("cannot bind %v (%T) as Int", v, v)
	case "Float":
		switch n := v.(type) {
		case float64:
			return n, nil
		case int64:
			return float64(n), nil
		case int:
			return float64(n), nil
		}
		return nil, fmt.Errorf("cannot bind %v (%T) as Float", v, v)
	case "String":
		if sv, ok := v.(string); ok {
			return sv, nil
		}
		return nil, fmt.Errorf("cannot bind %v (%T) as String", v, v)
	case "Boolean":
		if b, ok := v.(bool); ok {
			return b, nil
		}
		return nil, fmt.Errorf("cannot bind %v (%T) as Boolean", v, v)
	case "ID":
		switch id := v.(type) {
		case string:
			return id, nil
		case int64:
			return fmt.Sprintf("%d", id), nil
		}
		return nil, fmt.Errorf("cannot bind %v (%T) as ID", v, v)
	default:
		// Custom scalars accept anything.
		return v, nil
	}
}
