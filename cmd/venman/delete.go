package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/venman-dev/venman/internal/service"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Aliases: []string{"rm"},
	Short:   "Delete a virtual environment",
	Long: `Delete an environment directory and its entry in venvs.toml.
You are asked to type 'yes' first unless --yes is given.

Examples:
  venman delete data
  venman rm data --yes`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
		return deleteEnv(cmd.Context(), svc, p, cmd.OutOrStdout(), args[0], deleteYes)
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
}

func deleteEnv(ctx context.Context, svc *service.RegistryService, p *prompter, out io.Writer, name string, skipConfirm bool) error {
	confirm := func(name string) bool {
		if skipConfirm {
			return true
		}
		fmt.Fprintln(out, warnStyle.Render("Are you sure you want to delete this virtual environment?"))
		fmt.Fprintf(out, "Environment: %s\n", errorStyle.Render(name))
		answer, err := p.ask("Type 'yes' to confirm deletion: ")
		if err != nil {
			return false
		}
		return service.IsConfirmation(answer)
	}

	err := svc.Delete(ctx, name, confirm)
	switch {
	case errors.Is(err, service.ErrDeletionCancelled):
		fmt.Fprintln(out, successStyle.Render("Deletion cancelled."))
		return nil
	case err != nil:
		return withSuggestions(err, name, svc.Names())
	}

	fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("Virtual environment '%s' has been successfully deleted.", name)))
	return nil
}
