package dev

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/rs/zerolog"
)

// Runner executes a project's generator program with go run
type Runner struct {
	projectRoot string
	logger      zerolog.Logger
}

// NewRunner creates a runner for the project at projectRoot
func NewRunner(projectRoot string, logger zerolog.Logger) *Runner {
	return &Runner{
		projectRoot: projectRoot,
		logger:      logger,
	}
}

// Run executes the generator program once and returns its combined
// output. On failure the program output is folded into the error.
func (r *Runner) Run(ctx context.Context) ([]byte, error) {
	cmd := r.buildCmd(ctx)

	r.logger.Debug().Str("dir", cmd.Dir).Msg("running generator program")

	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("generator program failed: %s\n%s", err, string(output))
	}

	return output, nil
}

// buildCmd assembles the go run invocation
func (r *Runner) buildCmd(ctx context.Context) *exec.Cmd {
	cmd := exec.CommandContext(ctx, "go", "run", ".")
	cmd.Dir = r.projectRoot
	return cmd
}
