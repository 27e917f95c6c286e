package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/crudgen/internal/cli"
	"github.com/example/crudgen/internal/output"
	"github.com/example/crudgen/internal/version"
	"github.com/example/crudgen/internal/wire"
)

func main() {
	var (
		project string
		verbose bool
	)

	rootCmd := &cobra.Command{
		Use:     "crudgen",
		Short:   "crudgen - admin CRUD scaffold generator",
		Version: version.String(),
		Long: `crudgen generates admin CRUD modules for Go web applications backed by SQLite:
migration, table, model, handler, views, navigation menu entry and route.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetupLogging(verbose)
			wire.SetProjectRoot(project)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&project, "project", "C", ".", "Project root to generate into")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.MakeCmd())
	rootCmd.AddCommand(cli.MenuCmd())

	err := rootCmd.Execute()
	if closeErr := wire.Close(); err == nil && closeErr != nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
