package dev

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_buildCmd(t *testing.T) {
	// Test: The generator program runs via go run in the project root
	r := NewRunner("/some/project", zerolog.Nop())

	cmd := r.buildCmd(context.Background())
	require.NotNil(t, cmd)
	assert.Equal(t, "/some/project", cmd.Dir)
	assert.Equal(t, []string{"go", "run", "."}, cmd.Args)
}

func TestRunner_buildCmd_Cancellation(t *testing.T) {
	// Test: The command is bound to the caller's context
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(t.TempDir(), zerolog.Nop())
	cmd := r.buildCmd(ctx)

	// A cancelled context must refuse to start the process
	err := cmd.Start()
	assert.Error(t, err)
}
