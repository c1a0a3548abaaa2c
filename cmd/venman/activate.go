package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/venman-dev/venman/internal/localstore"
	"github.com/venman-dev/venman/internal/service"
)

var activateCmd = &cobra.Command{
	Use:     "activate <name>",
	Aliases: []string{"enter"},
	Short:   "Enter a virtual environment in a subshell",
	Long: `Start an interactive shell with the environment activated. Exit the
shell to return.

Examples:
  venman activate data
  venman enter data`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		return activateEnv(cmd.Context(), svc, args[0], cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func activateEnv(ctx context.Context, svc *service.RegistryService, name string, stdin io.Reader, stdout, stderr io.Writer) error {
	err := svc.Activate(ctx, name, service.ActivateOptions{
		Stdin:    stdin,
		Stdout:   stdout,
		Stderr:   stderr,
		Announce: func(e localstore.Entry) { printActivation(stdout, e) },
	})
	return withSuggestions(err, name, svc.Names())
}

func printActivation(w io.Writer, e localstore.Entry) {
	var rec localstore.Record
	if e.Record != nil {
		rec = *e.Record
	}
	fmt.Fprintln(w, successStyle.Render("Activating Virtual Environment:"))
	fmt.Fprintf(w, "%s: %s\n", labelStyle.Render("Name"), boldStyle.Render(e.Name))
	fmt.Fprintf(w, "%s: %s\n", labelStyle.Render("Description"), orDefault(rec.Description, "No description"))
	fmt.Fprintf(w, "%s: %s\n", labelStyle.Render("Packages"), orDefault(rec.Packages, "No packages"))
}
