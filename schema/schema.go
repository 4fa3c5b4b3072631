// Package schema provides the builder DSL for declaring IR node
// hierarchies: typed node definitions assembled programmatically and
// handed to code generators.
//
// A schema is built under an active-schema scope so declarations need
// not thread a handle through every call:
//
//	api := schema.New("Test API.")
//	defer api.Enter()()
//
//	color := schema.Declare("Color", "_color", "A color.").
//		Attr("r", schema.Int64, "").
//		Attr("g", schema.Int64, "").
//		Attr("b", schema.Int64, "")
//
//	schema.Declare("Apple", "_apple", "A scrumptious apple.").
//		Attr("color", color, "")
package schema

// Schema is an ordered collection of node definitions plus top-level
// documentation; the unit of input to a code generator.
type Schema struct {
	// Doc is the schema's top-level documentation.
	Doc string

	entries []*Node
}

// New creates an empty schema with the given top-level documentation.
// The schema does not become active until Enter is called.
func New(doc string) *Schema {
	return &Schema{Doc: doc}
}

// Declare appends a new node definition to the schema and returns it for
// attribute declaration.
func (s *Schema) Declare(name, typeKey, doc string) *Node {
	n := &Node{Name: name, TypeKey: typeKey, Doc: doc}
	s.entries = append(s.entries, n)
	return n
}

// Entries returns the schema's nodes in declaration order.
func (s *Schema) Entries() []*Node { return s.entries }

// Err returns the first declaration error latched on any of the schema's
// nodes, checked in declaration order. It lets a caller run a whole
// fluent build and verify it with one check.
func (s *Schema) Err() error {
	for _, n := range s.entries {
		if n.err != nil {
			return n.err
		}
	}
	return nil
}
