package schema

import (
	"errors"
	"fmt"
)

// ErrDuplicateAttr reports an attribute declared twice on the same node.
var ErrDuplicateAttr = errors.New("duplicate attribute")

// Attr is a named, typed field of a Node. Attrs are created through
// Node.Attr and owned by the declaring node.
type Attr struct {
	Name string
	Type GenType
	Doc  string
}

// Node is a schema-defined type: a named, ordered collection of typed
// attributes. A Node is itself a GenType, so nodes may reference each
// other (or themselves) through attribute types.
type Node struct {
	// Name is the emitted type name and the node's identity.
	Name string

	// TypeKey is the node's runtime type tag, an opaque discriminator
	// surfaced by targets that carry runtime type information.
	TypeKey string

	// Doc is the node's documentation, emitted ahead of its declaration.
	Doc string

	attrs []Attr
	err   error
}

// Attr declares an attribute on the node and returns the node so
// declarations chain. Declaring a name the node already has leaves the
// attribute sequence unchanged and latches ErrDuplicateAttr; Err (or
// Schema.Err) reports it.
func (n *Node) Attr(name string, typ GenType, doc string) *Node {
	for _, a := range n.attrs {
		if a.Name == name {
			if n.err == nil {
				n.err = fmt.Errorf("%w: node %s already has an attribute named %q", ErrDuplicateAttr, n.Name, name)
			}
			return n
		}
	}

	n.attrs = append(n.attrs, Attr{Name: name, Type: typ, Doc: doc})
	return n
}

// Attrs returns the node's attributes in declaration order.
func (n *Node) Attrs() []Attr { return n.attrs }

// Err returns the first declaration error latched on the node, if any.
func (n *Node) Err() error { return n.err }

// TypeName returns the node's name; it is what attributes of this node
// type resolve to in generated output.
func (n *Node) TypeName() string { return n.Name }

func (n *Node) genType() {}
