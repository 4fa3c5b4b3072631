package codegen

import (
	"fmt"
)

// Registry manages available code generators.
type Registry struct {
	generators map[string]func(pkg string) Generator
}

// NewRegistry creates a new, empty generator registry.
func NewRegistry() *Registry {
	return &Registry{
		generators: make(map[string]func(pkg string) Generator),
	}
}

// Register adds a generator factory under a language name. The pkg
// argument of the factory is the target's package, namespace or module
// name; targets without the concept ignore it.
func (r *Registry) Register(language string, factory func(pkg string) Generator) {
	r.generators[language] = factory
}

// Get returns a generator for the specified language.
func (r *Registry) Get(language, pkg string) (Generator, error) {
	factory, exists := r.generators[language]
	if !exists {
		return nil, fmt.Errorf("unsupported language: %s", language)
	}

	return factory(pkg), nil
}

// Languages returns the registered language names, aliases included.
func (r *Registry) Languages() []string {
	languages := make([]string, 0, len(r.generators))
	for lang := range r.generators {
		languages = append(languages, lang)
	}
	return languages
}

// DefaultRegistry is the process-wide registry. Generator packages
// register themselves here on import, so a consumer that resolves
// generators by name imports the targets it wants for side effects:
//
//	import _ "github.com/irgen-dev/irgen/codegen/cpp"
var DefaultRegistry = NewRegistry()
