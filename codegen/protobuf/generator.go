package protobuf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/irgen-dev/irgen/codegen"
	"github.com/irgen-dev/irgen/schema"
)

func init() {
	codegen.DefaultRegistry.Register("proto", func(pkg string) codegen.Generator {
		return NewGenerator(pkg)
	})

	// Register protobuf as an alias for proto
	codegen.DefaultRegistry.Register("protobuf", func(pkg string) codegen.Generator {
		return NewGenerator(pkg)
	})
}

// Generator generates protobuf definitions from a schema
type Generator struct {
	packageName string
}

// NewGenerator creates a new protobuf generator
func NewGenerator(packageName string) *Generator {
	return &Generator{
		packageName: packageName,
	}
}

// Language returns the name of the target language
func (g *Generator) Language() string {
	return "proto"
}

// FileExtension returns the file extension for generated files
func (g *Generator) FileExtension() string {
	return ".proto"
}

// Generate creates protobuf message definitions from the schema, one
// message per node in declaration order.
func (g *Generator) Generate(s *schema.Schema) ([]byte, error) {
	var buf bytes.Buffer

	writeDoc(&buf, "", s.Doc)
	buf.WriteString("syntax = \"proto3\";\n")
	if g.packageName != "" {
		buf.WriteString(fmt.Sprintf("\npackage %s;\n", g.packageName))
	}

	for _, node := range s.Entries() {
		buf.WriteString("\n")
		if err := g.generateMessage(&buf, node); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

// generateMessage generates a protobuf message definition. Field
// numbers follow attribute declaration order.
func (g *Generator) generateMessage(buf *bytes.Buffer, node *schema.Node) error {
	writeDoc(buf, "", node.Doc)
	buf.WriteString(fmt.Sprintf("message %s {\n", node.Name))

	for i, attr := range node.Attrs() {
		writeDoc(buf, "  ", attr.Doc)

		protoType, err := typeName(attr.Type)
		if err != nil {
			return fmt.Errorf("node %s attribute %s: %w", node.Name, attr.Name, err)
		}
		buf.WriteString(fmt.Sprintf("  %s %s = %d;\n", protoType, attr.Name, i+1))
	}

	buf.WriteString("}\n")
	return nil
}

// writeDoc emits doc as // comment lines under the given indentation.
func writeDoc(buf *bytes.Buffer, indent, doc string) {
	if doc == "" {
		return
	}
	for _, line := range strings.Split(doc, "\n") {
		buf.WriteString(fmt.Sprintf("%s// %s\n", indent, line))
	}
}

// typeName resolves a schema type to its protobuf spelling. Node-typed
// attributes resolve to the node's message name.
func typeName(t schema.GenType) (string, error) {
	switch t := t.(type) {
	case *schema.Primitive:
		switch t.Kind() {
		case schema.KindInt64:
			return "int64", nil
		case schema.KindUint64:
			return "uint64", nil
		case schema.KindDouble:
			return "double", nil
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
