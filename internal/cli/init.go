package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/crudgen/internal/config"
	"github.com/example/crudgen/internal/wire"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default .crudgen.yaml",
		Long: `Write a .crudgen.yaml with the default project layout to the project root.
The module path is read from go.mod when present.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			return runInit(cmd, wire.ProjectRoot(), force)
		},
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing config file")
	return cmd
}

func runInit(cmd *cobra.Command, root string, force bool) error {
	path := filepath.Join(root, config.FileName)
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg := config.DefaultConfig()
	modulePath, err := config.DetectModulePath(root)
	if err != nil {
		return err
	}
	cfg.ModulePath = modulePath

	if err := config.SaveConfig(root, cfg); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	check := color.New(color.FgGreen).Sprint("✓")
	fmt.Fprintf(out, "%s Wrote %s\n", check, path)
	if modulePath == "" {
		fmt.Fprintln(out, "  No go.mod found: set module_path before generating modules")
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  crudgen make Product --fields title:text,price:integer")
	fmt.Fprintln(out, "  crudgen menu list")
	return nil
}
