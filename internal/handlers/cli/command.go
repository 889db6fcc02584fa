package cli

import (
	"context"
)

// CommandHandler defines the interface for terminal commands
type CommandHandler interface {
	// GetName returns the command word
	GetName() string

	// GetUsage returns the one-line help text
	GetUsage() string

	// Handle runs the command with the words after the command name
	Handle(ctx context.Context, args []string) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name    string
	Usage   string
	Aliases []string
}

// GetName returns the command word
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetUsage returns the one-line help text
func (c *BaseCommand) GetUsage() string {
	return c.Usage
}

// funcCommand adapts a function to CommandHandler
type funcCommand struct {
	BaseCommand
	run func(ctx context.Context, args []string) error
}

// Handle runs the command
func (c *funcCommand) Handle(ctx context.Context, args []string) error {
	return c.run(ctx, args)
}
