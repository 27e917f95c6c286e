package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/crudgen/internal/wire"
)

// MenuCmd returns the menu command
func MenuCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Inspect the admin navigation menu",
	}
	cmd.AddCommand(menuListCmd())
	return cmd
}

func menuListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List menu entries in navigation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			activeOnly, _ := cmd.Flags().GetBool("active")

			wire.SetReadOnly(true)
			adapter, err := wire.MenuAdapterWithOutput(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			_, err = adapter.List(context.Background(), activeOnly)
			return err
		},
	}

	cmd.Flags().Bool("active", false, "Only list active entries")
	return cmd
}
