package language

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// ParseQuery parses an executable GraphQL document (operations and
// fragments). Source positions on every node refer to the given name.
func ParseQuery(name, source string) (*QueryDocument, error) {
	doc, err := parser.ParseQuery(&ast.Source{Name: name, Input: source})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// ParseSchema parses GraphQL SDL into a schema document.
func ParseSchema(name, source string) (*SchemaDocument, error) {
	doc, err := parser.ParseSchema(&ast.Source{Name: name, Input: source})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// FormatPos renders a position as "file:line:column" for diagnostics.
// A nil position renders as "-".
func FormatPos(pos *Position) string {
	if pos == nil {
		return "-"
	}
	name := "-"
	if pos.Src != nil && pos.Src.Name != "" {
		name = pos.Src.Name
	}
	return fmt.Sprintf("%s:%d:%d", name, pos.Line, pos.Column)
}
