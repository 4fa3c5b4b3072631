package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/irgen-dev/irgen/config"
	"github.com/irgen-dev/irgen/internal/dev"
)

// DevServer represents a running development watcher (allows mocking in tests)
type DevServer interface {
	Start(ctx context.Context) error
}

// DevServerFactory creates dev servers (allows mocking in tests)
type DevServerFactory interface {
	NewServer(cfg *config.Config, projectRoot string) DevServer
}

// defaultDevServerFactory implements DevServerFactory using the dev package
type defaultDevServerFactory struct{}

func (f *defaultDevServerFactory) NewServer(cfg *config.Config, projectRoot string) DevServer {
	return dev.NewServer(cfg, projectRoot, log.Logger)
}

// SignalNotifier interface for signal handling (allows testing signals)
type SignalNotifier interface {
	Notify(c chan<- os.Signal, sig ...os.Signal)
	Stop(c chan<- os.Signal)
}

// defaultSignalNotifier implements SignalNotifier using os/signal
type defaultSignalNotifier struct{}

func (n *defaultSignalNotifier) Notify(c chan<- os.Signal, sig ...os.Signal) {
	signal.Notify(c, sig...)
}

func (n *defaultSignalNotifier) Stop(c chan<- os.Signal) {
	signal.Stop(c)
}

// DevDependencies contains the injectable dependencies of the dev command
type DevDependencies struct {
	ConfigLoader   ConfigLoader
	ServerFactory  DevServerFactory
	SignalNotifier SignalNotifier
	Output         Output
}

// DevCommand handles the dev command logic
type DevCommand struct {
	deps DevDependencies
}

// NewDevCommand creates a dev command with production dependencies
func NewDevCommand() *DevCommand {
	return &DevCommand{
		deps: DevDependencies{
			ConfigLoader:   &defaultConfigLoader{},
			ServerFactory:  &defaultDevServerFactory{},
			SignalNotifier: &defaultSignalNotifier{},
			Output:         &defaultOutput{},
		},
	}
}

// WithDependencies allows injecting custom dependencies (for testing)
func (dc *DevCommand) WithDependencies(deps DevDependencies) *DevCommand {
	dc.deps = deps
	return dc
}

// Dev starts watch mode: regenerate whenever project files change
func (c *Controller) Dev(ctx context.Context) error {
	return NewDevCommand().Execute(ctx)
}

// Execute runs the dev command
func (dc *DevCommand) Execute(ctx context.Context) error {
	cfg, projectRoot, err := dc.deps.ConfigLoader.Load()
	if err != nil {
		return fmt.Errorf("failed to load project config: %w", err)
	}

	dc.deps.Output.Printf("🚀 Starting irgen development mode for %s...\n", cfg.Name)
	dc.deps.Output.Printf("📁 Project root: %s\n", projectRoot)
	dc.deps.Output.Printf("🎯 Languages: %s\n", strings.Join(cfg.Languages, ", "))
	dc.deps.Output.Printf("📦 Output: %s\n", cfg.Output)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	dc.deps.SignalNotifier.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer dc.deps.SignalNotifier.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			dc.deps.Output.Println("\n👋 Shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	server := dc.deps.ServerFactory.NewServer(cfg, projectRoot)
	if err := server.Start(ctx); err != nil {
		// Cancellation is the normal way out of watch mode
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("dev mode failed: %w", err)
	}

	return nil
}
