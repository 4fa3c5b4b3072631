package cpp

import (
	"fmt"

	"github.com/irgen-dev/irgen/codegen"
	"github.com/irgen-dev/irgen/codegen/writer"
	"github.com/irgen-dev/irgen/schema"
)

func init() {
	codegen.DefaultRegistry.Register("cpp", func(pkg string) codegen.Generator {
		return NewGenerator(pkg)
	})

	// Register c++ as an alias for cpp
	codegen.DefaultRegistry.Register("c++", func(pkg string) codegen.Generator {
		return NewGenerator(pkg)
	})
}

// Generator generates C++ class declarations from a schema
type Generator struct {
	namespace string
}

// NewGenerator creates a new C++ code generator. A non-empty namespace
// wraps all emitted declarations in a namespace block.
func NewGenerator(namespace string) *Generator {
	return &Generator{namespace: namespace}
}

// Language returns the name of the target language
func (g *Generator) Language() string {
	return "cpp"
}

// FileExtension returns the file extension for generated files
func (g *Generator) FileExtension() string {
	return ".h"
}

// Generate renders the schema as C++ declarations. Each node becomes a
// data class holding its attributes plus a reference type wrapping it,
// in declaration order.
func (g *Generator) Generate(s *schema.Schema) ([]byte, error) {
	w := writer.New()

	g.writeDoc(w, s.Doc)

	if g.namespace != "" {
		w.WriteLinef("namespace %s {", g.namespace)
	}

	for _, node := range s.Entries() {
		w.WriteLine("")
		if err := g.generateNode(w, node); err != nil {
			return nil, err
		}
	}

	if g.namespace != "" {
		w.WriteLine("")
		w.WriteLinef("}  // namespace %s", g.namespace)
	}

	return w.Bytes(), nil
}

// generateNode emits one node: its doc block, the <Name>Node data class,
// and the <Name> reference type.
func (g *Generator) generateNode(w *writer.Writer, node *schema.Node) error {
	g.writeDoc(w, node.Doc)

	w.WriteLinef("class %sNode {", node.Name)
	w.WriteLine("public:")

	if err := g.generateAttrs(w, node); err != nil {
		return err
	}

	w.WriteLine("};")
	w.WriteLinef("class %s : public NodeRef<%sNode> {};", node.Name, node.Name)

	return nil
}

// generateAttrs emits the node's attribute declarations two spaces deep.
func (g *Generator) generateAttrs(w *writer.Writer, node *schema.Node) error {
	defer w.Indent(2)()

	for _, attr := range node.Attrs() {
		g.writeDoc(w, attr.Doc)

		name, err := typeName(attr.Type)
		if err != nil {
			return fmt.Errorf("node %s attribute %s: %w", node.Name, attr.Name, err)
		}
		w.WriteLinef("%s %s;", name, attr.Name)
	}

	return nil
}

// writeDoc emits doc as a /// comment block. Multi-line docs keep the
// marker on every line.
func (g *Generator) writeDoc(w *writer.Writer, doc string) {
	if doc == "" {
		return
	}
	defer w.Prefix("/// ")()
	w.WriteLine(doc)
}

// typeName resolves a schema type to its C++ spelling. Node-typed
// attributes resolve to the node's own name.
func typeName(t schema.GenType) (string, error) {
	switch t := t.(type) {
	case *schema.Primitive:
		switch t.Kind() {
		case schema.KindInt64:
			return "int64_t", nil
		case schema.KindUint64:
			return "uint64_t", nil
		case schema.KindDouble:
			return "double", nil
		case schema.KindString:
			return "std::string", nil
		}
	case *schema.Node:
		return t.Name, nil
	}
	return "", fmt.Errorf("%w %s", codegen.ErrUnknownType, typeLabel(t))
}

// typeLabel names a type for error messages.
func typeLabel(t schema.GenType) string {
	if t == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%q", t.TypeName())
}
