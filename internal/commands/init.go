package commands

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

//go:embed templates/*
var templatesFS embed.FS

// projectNameRe keeps scaffolded names usable as module paths and directories.
var projectNameRe = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*$`)

// InitOptions contains the options collected during init
type InitOptions struct {
	ProjectName string
	Language    string
}

// FileSystem interface for file operations (allows mocking in tests)
type FileSystem interface {
	Stat(name string) (os.FileInfo, error)
	MkdirAll(path string, perm os.FileMode) error
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// osFileSystem implements FileSystem using the OS
type osFileSystem struct{}

func (fs *osFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func (fs *osFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (fs *osFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}

// InitCommand handles the init command logic
type InitCommand struct {
	filesystem  FileSystem
	templatesFS fs.FS
	// For testing: if set, skip prompting and use these options
	testOptions *InitOptions
}

// NewInitCommand creates a new init command handler
func NewInitCommand() *InitCommand {
	return &InitCommand{
		filesystem:  &osFileSystem{},
		templatesFS: templatesFS,
	}
}

// Init scaffolds a new generator project in the current directory
func (c *Controller) Init(ctx context.Context) error {
	cmd := NewInitCommand()
	return cmd.Run(ctx)
}

// Run executes the init command
func (ic *InitCommand) Run(ctx context.Context) error {
	return ic.RunWithOptions(ctx)
}

// RunWithOptions executes the init command with optional tea program options (for testing)
func (ic *InitCommand) RunWithOptions(ctx context.Context, opts ...tea.ProgramOption) error {
	var options *InitOptions
	var err error

	// For testing: use provided options instead of prompting
	if ic.testOptions != nil {
		options = ic.testOptions
	} else {
		options, err = ic.promptInitOptions(opts...)
		if err != nil {
			return fmt.Errorf("failed to get init options: %w", err)
		}
	}

	if err := ic.scaffoldProject(options); err != nil {
		return fmt.Errorf("failed to scaffold project: %w", err)
	}

	fmt.Printf("✅ Successfully created project: %s\n", options.ProjectName)
	fmt.Printf("\nNext steps:\n")
	fmt.Printf("  cd %s\n", options.ProjectName)
	fmt.Printf("  go mod tidy\n")
	fmt.Printf("  irgen generate\n")
	return nil
}

// promptInitOptions collects the project settings interactively
func (ic *InitCommand) promptInitOptions(opts ...tea.ProgramOption) (*InitOptions, error) {
	var projectName string
	var language string

	form := ic.createInitForm(&projectName, &language)

	if len(opts) > 0 {
		// For testing: run the form through a configured program
		program := tea.NewProgram(form, opts...)
		if _, err := program.Run(); err != nil {
			return nil, err
		}
	} else {
		// Normal execution
		if err := form.Run(); err != nil {
			return nil, err
		}
	}

	return &InitOptions{
		ProjectName: projectName,
		Language:    language,
	}, nil
}

// createInitForm builds the interactive form for init options
func (ic *InitCommand) createInitForm(projectName *string, language *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Description("Name of your new irgen project").
				Value(projectName).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("project name cannot be empty")
					}
					if !projectNameRe.MatchString(s) {
						return fmt.Errorf("project name must start with a letter or digit and contain only letters, digits, _ or -")
					}
					if _, err := ic.filesystem.Stat(s); err == nil {
						return fmt.Errorf("directory %s already exists", s)
					}
					return nil
				}),

			huh.NewSelect[string]().
				Title("Target language").
				Description("Language the generator emits by default").
				Options(
					huh.NewOption("C++", "cpp"),
					huh.NewOption("Go", "go"),
					huh.NewOption("Protobuf", "proto"),
				).
				Value(language),
		),
	)
}

// templateData is the context project templates render with
type templateData struct {
	ProjectName string
	Language    string
	Package     string
}

// scaffoldProject renders the embedded project templates into a new directory
func (ic *InitCommand) scaffoldProject(options *InitOptions) error {
	if _, err := ic.filesystem.Stat(options.ProjectName); err == nil {
		return fmt.Errorf("directory %s already exists", options.ProjectName)
	}

	data := templateData{
		ProjectName: options.ProjectName,
		Language:    options.Language,
		Package:     packageName(options.ProjectName),
	}

	return fs.WalkDir(ic.templatesFS, "templates/project", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel("templates/project", path)
		if err != nil {
			return err
		}

		tmpl, err := template.ParseFS(ic.templatesFS, path)
		if err != nil {
			return fmt.Errorf("failed to parse template %s: %w", path, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return fmt.Errorf("failed to render template %s: %w", path, err)
		}

		destPath := filepath.Join(options.ProjectName, strings.TrimSuffix(relPath, ".tmpl"))
		if err := ic.filesystem.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", destPath, err)
		}

		if err := ic.filesystem.WriteFile(destPath, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", destPath, err)
		}

		return nil
	})
}

// packageName derives an identifier-safe package name from a project name
func packageName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		}
	}
	s := strings.TrimLeft(b.String(), "0123456789")
	if s == "" {
		return "ir"
	}
	return s
}
