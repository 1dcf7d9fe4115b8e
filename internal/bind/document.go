package bind

import (
	language "github.com/gqlbind/gqlbind/internal/language"
	schema "github.com/gqlbind/gqlbind/internal/schema"
)

// Binder drives semantic resolution of one parsed document against a
// schema. Construction scans fragment definitions exactly once to build
// the registry; the Binder is immutable afterwards. One Binder serves one
// document; nothing is shared across documents beyond the schema.
type Binder struct {
	schema    *schema.Schema
	doc       *language.QueryDocument
	fragments map[string]*language.FragmentDefinition
}

// NewBinder builds the fragment registry for doc, failing fast with
// DuplicateFragment at the first repeated name.
func NewBinder(s *schema.Schema, doc *language.QueryDocument) (*Binder, error) {
	fragments := make(map[string]*language.FragmentDefinition, len(doc.Fragments))
	for _, frag := range doc.Fragments {
		if _, exists := fragments[frag.Name]; exists {
			return nil, errDuplicateFragment(frag.Name, frag.Position)
		}
		fragments[frag.Name] = frag
	}
	return &Binder{schema: s, doc: doc, fragments: fragments}, nil
}

// BindDocument resolves every operation definition in document order,
// each with a fresh operation scope and a root resolver at depth 0. The
// first failure aborts the whole document.
func (b *Binder) BindDocument() (Document, error) {
	out := make(Document, 0, len(b.doc.Operations))
	for _, node := range b.doc.Operations {
		op, err := b.resolveOperation(node)
		if err != nil {
			return nil, err
		}
		out = append(out, At(op, node.Position))
	}
	return out, nil
}

// Bind is the one-shot form of NewBinder + BindDocument.
func Bind(s *schema.Schema, doc *language.QueryDocument) (Document, error) {
	b, err := NewBinder(s, doc)
	if err != nil {
		return nil, err
	}
	return b.BindDocument()
}
