package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"

	"github.com/irgen-dev/irgen/config"
	"github.com/irgen-dev/irgen/internal/dev"
)

// ConfigLoader loads the project configuration (allows mocking in tests)
type ConfigLoader interface {
	Load() (*config.Config, string, error)
}

// defaultConfigLoader implements ConfigLoader using the config package
type defaultConfigLoader struct{}

func (l *defaultConfigLoader) Load() (*config.Config, string, error) {
	return config.Load()
}

// ProgramRunner runs the project's generator program once
type ProgramRunner interface {
	Run(ctx context.Context) ([]byte, error)
}

// RunnerFactory creates program runners (allows mocking in tests)
type RunnerFactory interface {
	NewRunner(projectRoot string) ProgramRunner
}

// defaultRunnerFactory implements RunnerFactory using the dev package
type defaultRunnerFactory struct{}

func (f *defaultRunnerFactory) NewRunner(projectRoot string) ProgramRunner {
	return dev.NewRunner(projectRoot, log.Logger)
}

// Output interface for user-facing prints (allows testing output)
type Output interface {
	Printf(format string, args ...any)
	Println(args ...any)
}

// defaultOutput implements Output using fmt
type defaultOutput struct{}

func (o *defaultOutput) Printf(format string, args ...any) {
	fmt.Printf(format, args...)
}

func (o *defaultOutput) Println(args ...any) {
	fmt.Println(args...)
}

// GenerateDependencies contains the injectable dependencies of the generate command
type GenerateDependencies struct {
	ConfigLoader  ConfigLoader
	RunnerFactory RunnerFactory
	Output        Output
}

// GenerateCommand handles the generate command logic
type GenerateCommand struct {
	deps GenerateDependencies
}

// NewGenerateCommand creates a generate command with production dependencies
func NewGenerateCommand() *GenerateCommand {
	return &GenerateCommand{
		deps: GenerateDependencies{
			ConfigLoader:  &defaultConfigLoader{},
			RunnerFactory: &defaultRunnerFactory{},
			Output:        &defaultOutput{},
		},
	}
}

// WithDependencies allows injecting custom dependencies (for testing)
func (gc *GenerateCommand) WithDependencies(deps GenerateDependencies) *GenerateCommand {
	gc.deps = deps
	return gc
}

// Generate runs the project's generator program once
func (c *Controller) Generate(ctx context.Context) error {
	return NewGenerateCommand().Execute(ctx)
}

// Execute runs the generate command
func (gc *GenerateCommand) Execute(ctx context.Context) error {
	cfg, projectRoot, err := gc.deps.ConfigLoader.Load()
	if err != nil {
		return fmt.Errorf("failed to load project config: %w", err)
	}

	gc.deps.Output.Printf("%s Generating %s (%s)\n", color.CyanString("▶"), cfg.Name, strings.Join(cfg.Languages, ", "))

	runner := gc.deps.RunnerFactory.NewRunner(projectRoot)
	output, err := runner.Run(ctx)
	if len(output) > 0 {
		gc.deps.Output.Printf("%s", string(output))
	}
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	gc.deps.Output.Printf("%s Generated %s into %s\n", color.GreenString("✓"), cfg.Name, cfg.Output)
	return nil
}
