package bind

import (
	language "github.com/gqlbind/gqlbind/internal/language"
)

// Code classifies a binding failure.
type Code string

const (
	CodeUnknownVariable           Code = "UNKNOWN_VARIABLE"
	CodeUnknownType               Code = "UNKNOWN_TYPE"
	CodeUnknownEnumValue          Code = "UNKNOWN_ENUM_VALUE"
	CodeUnknownArgument           Code = "UNKNOWN_ARGUMENT"
	CodeInvalidArgumentValue      Code = "INVALID_ARGUMENT_VALUE"
	CodeUnknownDirective          Code = "UNKNOWN_DIRECTIVE"
	CodeUnknownField              Code = "UNKNOWN_FIELD"
	CodeExceededMaxRecursionDepth Code = "EXCEEDED_MAX_RECURSION_DEPTH"
	CodeUnknownFragment           Code = "UNKNOWN_FRAGMENT"
	CodeUnknownTypeCondition      Code = "UNKNOWN_TYPE_CONDITION"
	CodeDuplicateVariable         Code = "DUPLICATE_VARIABLE"
	CodeDuplicateFragment         Code = "DUPLICATE_FRAGMENT"
)

// Error is a single binding failure. Binding is fail-fast: the first
// Error aborts the whole document and no partial result is produced.
// Pos is the position of the offending identifier or token itself.
type Error struct {
	Code    Code
	Message string
	Pos     *language.Position
}

func (e *Error) Error() string {
	return e.Message + " at " + language.FormatPos(e.Pos)
}

func newError(code Code, message string, pos *language.Position) *Error {
	return &Error{Code: code, Message: message, Pos: pos}
}
