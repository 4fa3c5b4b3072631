package golang

import (
	"fmt"
	"strings"

	"github.com/irgen-dev/irgen/codegen"
	"github.com/irgen-dev/irgen/codegen/writer"
	"github.com/irgen-dev/irgen/schema"
)

func init() {
	codegen.DefaultRegistry.Register("go", func(pkg string) codegen.Generator {
		return NewGenerator(pkg)
	})

	// Register golang as an alias for go
	codegen.DefaultRegistry.Register("golang", func(pkg string) codegen.Generator {
		return NewGenerator(pkg)
	})
}

// Generator generates Go code from a schema
type Generator struct {
	packageName string
}

// NewGenerator creates a new Go code generator
func NewGenerator(packageName string) *Generator {
	return &Generator{packageName: packageName}
}

// Language returns the name of the target language
func (g *Generator) Language() string {
	return "go"
}

// FileExtension returns the file extension for generated files
func (g *Generator) FileExtension() string {
	return ".go"
}

// Generate renders the schema as Go source. Each node becomes a data
// struct with a TypeKey method plus a reference type embedding a
// pointer to it, in declaration order.
func (g *Generator) Generate(s *schema.Schema) ([]byte, error) {
	pkg := g.packageName
	if pkg == "" {
		pkg = "ir"
	}

	w := writer.New()

	g.writeDoc(w, s.Doc)
	w.WriteLinef("package %s", pkg)

	for _, node := range s.Entries() {
		w.WriteLine("")
		if err := g.generateNode(w, node); err != nil {
			return nil, err
		}
	}

	return w.Bytes(), nil
}

// generateNode emits one node: the <Name>Node data struct, its TypeKey
// method, and the <Name> reference type.
func (g *Generator) generateNode(w *writer.Writer, node *schema.Node) error {
	g.writeDoc(w, node.Doc)

	w.WriteLinef("type %sNode struct {", node.Name)
	if err := g.generateFields(w, node); err != nil {
		return err
	}
	w.WriteLine("}")

	w.WriteLine("")
	w.WriteLine("// TypeKey returns the node's runtime type tag.")
	w.WriteLinef("func (n *%sNode) TypeKey() string { return %q }", node.Name, node.TypeKey)

	w.WriteLine("")
	w.WriteLinef("// %s is a reference type for %sNode.", node.Name, node.Name)
	w.WriteLinef("type %s struct {", node.Name)
	w.WriteLinef("\t*%sNode", node.Name)
	w.WriteLine("}")

	return nil
}

// generateFields emits the node's attributes as exported struct fields
// tagged with the attribute's schema name.
func (g *Generator) generateFields(w *writer.Writer, node *schema.Node) error {
	defer w.Prefix("\t")()

	for _, attr := range node.Attrs() {
		g.writeDoc(w, attr.Doc)

		typ, err := typeName(attr.Type)
		if err != nil {
			return fmt.Errorf("node %s attribute %s: %w", node.Name, attr.Name, err)
		}
		w.WriteLinef("%s %s `json:%q`", exportedName(attr.Name), typ, attr.Name)
	}

	return nil
}

// writeDoc emits doc as a // comment block. Multi-line docs keep the
// marker on every line.
func (g *Generator) writeDoc(w *writer.Writer, doc string) {
	if doc == "" {
		return
	}
	defer w.Prefix("// ")()
	w.WriteLine(doc)
}

// typeName resolves a schema type to its Go spelling. Node-typed
// attributes resolve to the node's reference type.
func typeName(t schema.GenType) (string, error) {
	switch t := t.(type) {
	case *schema.Primitive:
		switch t.Kind() {
		case schema.KindInt64:
			return "int64", nil
		case schema.KindUint64:
			return "uint64", nil
		case schema.KindDouble:
			return "float64", nil
		case schema.KindString:
			return "string", nil
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

// exportedName converts an attribute name to an exported Go name
func exportedName(name string) string {
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
