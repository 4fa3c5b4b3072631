// Package gen renders schemas through the registered code generators
// and writes the results to disk.
package gen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/irgen-dev/irgen/codegen"
	_ "github.com/irgen-dev/irgen/codegen/cpp"
	_ "github.com/irgen-dev/irgen/codegen/golang"
	_ "github.com/irgen-dev/irgen/codegen/protobuf"
	"github.com/irgen-dev/irgen/config"
	"github.com/irgen-dev/irgen/schema"
)

// Target pairs a schema with the base name of the files generated from it.
type Target struct {
	Name   string
	Schema *schema.Schema
}

// Result describes one generated artifact.
type Result struct {
	Language string
	Path     string
	Size     int
}

// Options controls which languages are produced and where artifacts go.
type Options struct {
	// Languages are registry names, aliases included.
	Languages []string

	// Output is the directory artifacts are written to, created if
	// missing. Defaults to the current directory.
	Output string

	// Package is handed to each generator as the target package,
	// namespace or module name.
	Package string
}

// FromConfig builds Options from a loaded project configuration.
func FromConfig(cfg *config.Config) Options {
	return Options{
		Languages: cfg.Languages,
		Output:    cfg.Output,
		Package:   cfg.Package,
	}
}

// Run generates sources for every target in every requested language
// and writes them under opts.Output as <name><extension>. Schemas that
// latched a construction error are rejected before anything is written.
func Run(ctx context.Context, logger zerolog.Logger, opts Options, targets ...Target) ([]Result, error) {
	if len(opts.Languages) == 0 {
		return nil, fmt.Errorf("no languages requested")
	}

	for _, target := range targets {
		if err := target.Schema.Err(); err != nil {
			return nil, fmt.Errorf("schema %s: %w", target.Name, err)
		}
	}

	output := opts.Output
	if output == "" {
		output = "."
	}
	if err := os.MkdirAll(output, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var results []Result
	for _, lang := range opts.Languages {
		gen, err := codegen.DefaultRegistry.Get(lang, opts.Package)
		if err != nil {
			return nil, err
		}

		for _, target := range targets {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			code, err := gen.Generate(target.Schema)
			if err != nil {
				return nil, fmt.Errorf("failed to generate %s for %s: %w", target.Name, lang, err)
			}

			path := filepath.Join(output, target.Name+gen.FileExtension())
			if err := os.WriteFile(path, code, 0644); err != nil {
				return nil, fmt.Errorf("failed to write %s: %w", path, err)
			}

			logger.Info().
				Str("language", gen.Language()).
				Str("path", path).
				Int("bytes", len(code)).
				Msg("generated")

			results = append(results, Result{
				Language: gen.Language(),
				Path:     path,
				Size:     len(code),
			})
		}
	}

	return results, nil
}
