// Package cli provides the command-line interface for minigrep.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/minigrep/internal/cli/commands"
	"github.com/ccollicutt/minigrep/pkg/config"
)

// Execute runs minigrep with the process arguments and environment and
// returns the exit code.
func Execute() int {
	return Run(os.Args[1:], os.Stdout, os.Stderr, os.LookupEnv)
}

// Run executes the root command with explicit arguments (without the program
// name), output streams and environment, and returns the exit code.
func Run(args []string, stdout, stderr io.Writer, lookupEnv config.LookupEnvFunc) int {
	// cobra falls back to os.Args when given nil.
	if args == nil {
		args = []string{}
	}

	rootCmd := NewRootCommand(lookupEnv)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// NewRootCommand creates the root cobra command.
func NewRootCommand(lookupEnv config.LookupEnvFunc) *cobra.Command {
	rootCmd := commands.NewSearchCommand(lookupEnv)
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	return rootCmd
}
