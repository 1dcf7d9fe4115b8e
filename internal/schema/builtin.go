package schema

var stringType = &Type{
	Name:        "String",
	Kind:        TypeKindScalar,
	Description: "The `String` scalar type represents textual data, represented as UTF-8 character sequences.",
}

var intType = &Type{
	Name:        "Int",
	Kind:        TypeKindScalar,
	Description: "The `Int` scalar type represents non-fractional signed whole numeric values.",
}

var floatType = &Type{
	Name:        "Float",
	Kind:        TypeKindScalar,
	Description: "The `Float` scalar type represents signed double-precision fractional values.",
}

var booleanType = &Type{
	Name:        "Boolean",
	Kind:        TypeKindScalar,
	Description: "The `Boolean` scalar type represents `true` or `false`.",
}

var idType = &Type{
	Name:        "ID",
	Kind:        TypeKindScalar,
	Description: "The `ID` scalar type represents a unique identifier, often used to refetch an object or as a key for caching.",
}

func includeDirective() *Directive {
	d := NewDirective("include",
		"Directs the executor to include this field or fragment only when the `if` argument is true.").
		AddArgument(NewInputValue("if", "Included when true.",
			NonNullType(NamedType("Boolean"))))
	d.Locations = []string{"FIELD", "FRAGMENT_SPREAD", "INLINE_FRAGMENT"}
	return d
}

func skipDirective() *Directive {
	d := NewDirective("skip",
		"Directs the executor to skip this field or fragment when the `if` argument is true.").
		AddArgument(NewInputValue("if", "Skipped when true.",
			NonNullType(NamedType("Boolean"))))
	d.Locations = []string{"FIELD", "FRAGMENT_SPREAD", "INLINE_FRAGMENT"}
	return d
}

func deprecatedDirective() *Directive {
	d := NewDirective("deprecated",
		"Marks the field, argument, input field or enum value as deprecated.").
		AddArgument(NewInputValue("reason", "The reason for the deprecation.",
			NamedType("String")).SetDefault("No longer supported"))
	d.Locations = []string{"FIELD_DEFINITION", "ARGUMENT_DEFINITION", "INPUT_FIELD_DEFINITION", "ENUM_VALUE"}
	return d
}

func installBuiltins(s *Schema) {
	s.AddType(stringType).
		AddType(intType).
		AddType(floatType).
		AddType(booleanType).
		AddType(idType)
	s.AddDirective(includeDirective()).
		AddDirective(skipDirective()).
		AddDirective(deprecatedDirective())
}
