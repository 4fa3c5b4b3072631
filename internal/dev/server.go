package dev

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/irgen-dev/irgen/config"
)

// Server watches a project and reruns its generator program on changes
type Server struct {
	config      *config.Config
	projectRoot string
	watcher     *FileWatcher
	runner      *Runner
	logger      zerolog.Logger

	// run is the generator invocation, replaceable in tests
	run func(ctx context.Context) ([]byte, error)

	// Mutex to prevent concurrent runs
	runMutex sync.Mutex
	running  bool
}

// NewServer creates a new development server
func NewServer(cfg *config.Config, projectRoot string, logger zerolog.Logger) *Server {
	s := &Server{
		config:      cfg,
		projectRoot: projectRoot,
		logger:      logger,
		runner:      NewRunner(projectRoot, logger),
	}
	s.run = s.runner.Run
	return s
}

// Start runs the generator once, then watches the project for changes
// until the context is cancelled.
func (s *Server) Start(ctx context.Context) error {
	// Run initial generation
	if err := s.runOnce(ctx); err != nil {
		fmt.Printf("❌ Initial generation failed: %v\n", err)
		return fmt.Errorf("initial generation failed: %w", err)
	}
	fmt.Println("✅ Initial generation completed")

	// Set up file watcher
	watcher, err := NewFileWatcher(
		s.config.Dev.Watch,
		s.config.Dev.Exclude,
		s.logger,
		func(path string, op fsnotify.Op) { s.handleFileChange(ctx, path, op) },
	)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	s.watcher = watcher
	defer s.watcher.Close()

	// Add project root to watcher
	if err := s.watcher.AddDirectory(s.projectRoot); err != nil {
		return fmt.Errorf("failed to watch project directory: %w", err)
	}

	fmt.Println("👀 Watching for changes. Press Ctrl+C to stop.")

	// Start watching
	return s.watcher.Start(ctx)
}

// handleFileChange is called when a watched file changes
func (s *Server) handleFileChange(ctx context.Context, path string, op fsnotify.Op) {
	// Ignore temporary files
	if strings.Contains(path, ".tmp") || strings.Contains(path, "~") {
		return
	}

	relPath, _ := filepath.Rel(s.projectRoot, path)

	var action string
	switch op {
	case fsnotify.Create:
		action = "created"
	case fsnotify.Write:
		action = "modified"
	case fsnotify.Remove:
		action = "deleted"
	case fsnotify.Rename:
		action = "renamed"
	default:
		return
	}

	fmt.Printf("\n📝 File %s: %s\n", action, relPath)

	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		fmt.Println("⏳ Generation already in progress, skipping...")
		return
	}
	s.running = true
	s.runMutex.Unlock()

	// A save can arrive as a burst of events. The first starts a run,
	// the rest land here while the flag is still set and are skipped.
	go func() {
		defer func() {
			s.runMutex.Lock()
			s.running = false
			s.runMutex.Unlock()
		}()

		fmt.Println("🔄 Rerunning generators...")
		if err := s.runOnce(ctx); err != nil {
			fmt.Printf("❌ Generation failed: %v\n", err)
			return
		}
		fmt.Println("✅ Generation completed successfully!")
	}()
}

// runOnce executes the generator program and relays its output
func (s *Server) runOnce(ctx context.Context) error {
	output, err := s.run(ctx)
	if err != nil {
		return err
	}
	if len(output) > 0 {
		fmt.Print(string(output))
	}
	return nil
}
