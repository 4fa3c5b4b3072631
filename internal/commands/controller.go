// Package commands contains the CLI commands for the irgen tool
package commands

// Flags holds the global flags shared by all commands
type Flags struct {
	LogLevel string
}

// Controller routes CLI invocations to their command implementations
type Controller struct {
	Flags *Flags
}
