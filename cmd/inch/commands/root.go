// Package commands implements the CLI commands for the inch compilation host.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/inch/internal/app"
	"go.trai.ch/inch/internal/build"
	"go.trai.ch/inch/internal/core/domain"
)

// CLI represents the command line interface for inch.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Compile(ctx context.Context, req domain.CompileRequest) (app.Outcome, error)
	Watch(ctx context.Context, req domain.CompileRequest) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "inch",
		Short:         "An incremental compilation host for TypeScript sources",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newCompileCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
