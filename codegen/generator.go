// Package codegen defines the contract code generators implement and the
// registry that maps target-language names to generator factories.
package codegen

import (
	"errors"

	"github.com/irgen-dev/irgen/schema"
)

// ErrUnknownType reports an attribute type a target language cannot
// translate: neither one of the schema primitive singletons nor a node.
// Generators wrap it with the offending node, attribute and type so the
// authoring mistake is locatable.
var ErrUnknownType = errors.New("no translation for type")

// Generator is the interface that all language-specific code generators
// must implement.
type Generator interface {
	// Generate renders the schema and returns the generated source.
	// Resolution of an attribute type no mapping exists for aborts the
	// whole run with an error wrapping ErrUnknownType; no partial output
	// is returned.
	Generate(s *schema.Schema) ([]byte, error)

	// Language returns the name of the target language (e.g. "cpp", "go").
	Language() string

	// FileExtension returns the file extension for generated files
	// (e.g. ".h", ".go").
	FileExtension() string
}
