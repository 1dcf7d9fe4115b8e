package bind

import (
	"fmt"

	language "github.com/gqlbind/gqlbind/internal/language"
)

// One constructor per taxonomy entry. Keep messages stable; hosts surface
// them to document authors verbatim.

func errUnknownVariable(name string, pos *language.Position) *Error {
	return newError(CodeUnknownVariable,
		fmt.Sprintf("Variable $%s is not declared by the operation", name), pos)
}

func errUnknownType(name string, pos *language.Position) *Error {
	return newError(CodeUnknownType,
		fmt.Sprintf("Unknown type %q", name), pos)
}

func errMissingRootType(kind string, pos *language.Position) *Error {
	return newError(CodeUnknownType,
		fmt.Sprintf("Schema declares no root type for %s operations", kind), pos)
}

func errUnknownEnumValue(name string, pos *language.Position) *Error {
	return newError(CodeUnknownEnumValue,
		fmt.Sprintf("Unknown enum value %q", name), pos)
}

func errUnknownArgument(name, host string, pos *language.Position) *Error {
	return newError(CodeUnknownArgument,
		fmt.Sprintf("Unknown argument %q on %s", name, host), pos)
}

func errInvalidArgumentValue(name string, reason error, pos *language.Position) *Error {
	return newError(CodeInvalidArgumentValue,
		fmt.Sprintf("Invalid value for argument %q: %v", name, reason), pos)
}

func errUnknownDirective(name string, pos *language.Position) *Error {
	return newError(CodeUnknownDirective,
		fmt.Sprintf("Unknown directive @%s", name), pos)
}

func errUnknownField(field, typeName string, pos *language.Position) *Error {
	return newError(CodeUnknownField,
		fmt.Sprintf("Type %s has no field %q", typeName, field), pos)
}

func errExceededMaxRecursionDepth(pos *language.Position) *Error {
	return newError(CodeExceededMaxRecursionDepth,
		fmt.Sprintf("Selection sets may nest at most %d levels deep", maxSelectionDepth), pos)
}

func errUnknownFragment(name string, pos *language.Position) *Error {
	return newError(CodeUnknownFragment,
		fmt.Sprintf("Fragment %q is not defined in this document", name), pos)
}

func errUnknownTypeCondition(name string, pos *language.Position) *Error {
	return newError(CodeUnknownTypeCondition,
		fmt.Sprintf("Unknown type %q in type condition", name), pos)
}

func errDuplicateVariable(name string, pos *language.Position) *Error {
	return newError(CodeDuplicateVariable,
		fmt.Sprintf("Variable $%s is declared more than once", name), pos)
}

func errDuplicateFragment(name string, pos *language.Position) *Error {
	return newError(CodeDuplicateFragment,
		fmt.Sprintf("Fragment %q is defined more than once", name), pos)
}
