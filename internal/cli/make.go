// Package cli defines the cobra commands of crudgen.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/crudgen/internal/ports/primary"
	"github.com/example/crudgen/internal/scaffold"
	"github.com/example/crudgen/internal/wire"
)

// MakeCmd returns the make command
func MakeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "make <Name>",
		Short: "Generate an admin CRUD module",
		Long: `Generate a complete admin module for a resource:
  - SQL migration (db/migrations/) and table in the project database
  - Model (internal/models/)
  - Handler with list, create, edit, update and delete (internal/handlers/admin/)
  - Views (views/admin/<resource>/)
  - Navigation menu entry and route registration

Field types: text, longText, integer, boolean, date, datetime

Without --fields the field list is prompted for.

Examples:
  crudgen make Product --fields "title:text,price:integer,published:boolean"
  crudgen make BlogPost --dry-run
  crudgen make Product --fields "title:text,stock:integer" --force`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fieldsStr, _ := cmd.Flags().GetString("fields")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			force, _ := cmd.Flags().GetBool("force")
			yes, _ := cmd.Flags().GetBool("yes")

			fields, err := collectFields(cmd.Flags().Changed("fields"), fieldsStr)
			if err != nil {
				return err
			}

			req := primary.GenerateModuleRequest{
				Name:   args[0],
				Fields: fields,
				Force:  force,
				DryRun: dryRun,
			}

			if !yes && !dryRun && interactive() {
				ok, err := confirmGeneration(args[0])
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			wire.SetReadOnly(dryRun)
			adapter, err := wire.ScaffoldAdapterWithOutput(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			_, err = adapter.Make(context.Background(), req)
			return err
		},
	}

	cmd.Flags().String("fields", "", "Fields as name:type pairs (e.g., \"title:text,price:integer\")")
	cmd.Flags().Bool("dry-run", false, "Preview what would be generated without writing anything")
	cmd.Flags().Bool("force", false, "Regenerate files of an existing module")
	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

// collectFields reads the field list from --fields, or prompts for it when
// the flag is absent and a terminal is attached.
func collectFields(flagSet bool, fieldsStr string) ([]scaffold.FieldSpec, error) {
	if flagSet || !interactive() {
		fields, err := scaffold.ParseFields(fieldsStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse fields: %w", err)
		}
		return fields, nil
	}
	return promptFields()
}
