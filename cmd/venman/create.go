package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/venman-dev/venman/internal/service"
)

var (
	createDescription string
	createPackages    string
)

var createCmd = &cobra.Command{
	Use:   "create <name> [packages...]",
	Short: "Create a virtual environment",
	Long: `Create a virtual environment under ~/venman/venvs and record it in
venvs.toml. Packages given as arguments or with --packages are installed
with the environment's own installer, passed through verbatim.

Examples:
  venman create web
  venman create data -d "notebooks" numpy pandas
  venman create pinned -p "requests==2.32.3 rich"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		packages := strings.TrimSpace(createPackages + " " + strings.Join(args[1:], " "))
		return createEnv(cmd.Context(), svc, cmd.OutOrStdout(), service.CreateRequest{
			Name:        args[0],
			Description: createDescription,
			Packages:    packages,
		})
	},
}

func init() {
	createCmd.Flags().StringVarP(&createDescription, "description", "d", "", "Description recorded for the environment")
	createCmd.Flags().StringVarP(&createPackages, "packages", "p", "", "Space separated packages to install")
}

// promptCreate collects the create inputs interactively.
func promptCreate(p *prompter) (service.CreateRequest, error) {
	var req service.CreateRequest
	var err error
	if req.Name, err = p.ask("Enter VENV name >> "); err != nil {
		return req, err
	}
	if req.Description, err = p.ask("Enter VENV description (optional) >> "); err != nil {
		return req, err
	}
	if req.Packages, err = p.ask("Enter packages (spaces separated (optional)) >> "); err != nil {
		return req, err
	}
	return req, nil
}

func createEnv(ctx context.Context, svc *service.RegistryService, out io.Writer, req service.CreateRequest) error {
	if err := svc.Create(ctx, req); err != nil {
		return fmt.Errorf("error while creating venv: %w", err)
	}
	fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("Virtual environment '%s' has been successfully created.", strings.TrimSpace(req.Name))))
	return nil
}
