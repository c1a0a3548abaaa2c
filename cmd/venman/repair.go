package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/venman-dev/venman/internal/service"
)

var (
	repairDryRun bool
	repairYes    bool
)

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Reconcile venvs.toml with the environments on disk",
	Long: `Compare the entries in venvs.toml with the directories under
~/venman/venvs and finish any create or delete that was interrupted.

  - Entries whose directory is gone are removed.
  - Directories without an entry are reported and left alone.
  - Leftover journal markers are cleared.

Examples:
  # Preview changes without modifying
  venman repair --dry-run

  # Auto-confirm (for scripting)
  venman repair -y`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
		return runRepair(svc, p, cmd.OutOrStdout(), repairDryRun, repairYes)
	},
}

func init() {
	repairCmd.Flags().BoolVar(&repairDryRun, "dry-run", false, "Show what would change without modifying")
	repairCmd.Flags().BoolVarP(&repairYes, "yes", "y", false, "Auto-confirm all actions")
}

func runRepair(svc *service.RegistryService, p *prompter, out io.Writer, dryRun, yes bool) error {
	report, err := svc.Inspect()
	if err != nil {
		return err
	}

	displayRepairReport(out, report)

	if !report.HasChanges() {
		fmt.Fprintln(out, "\nNothing to repair.")
		return nil
	}
	if dryRun {
		fmt.Fprintln(out, "\nDry run - no changes made. Run without --dry-run to apply.")
		return nil
	}
	if !yes {
		answer, err := p.ask("\nApply these changes? Type 'yes' to confirm: ")
		if err != nil || !service.IsConfirmation(answer) {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	if err := svc.Repair(report); err != nil {
		return err
	}
	fmt.Fprintln(out, successStyle.Render("\nChanges applied successfully."))
	return nil
}

func displayRepairReport(out io.Writer, report *service.RepairReport) {
	for _, name := range report.Stale {
		fmt.Fprintf(out, "✗ %s\n  Status: Directory not found\n  Action: Will remove from venvs.toml\n\n", name)
	}
	for _, name := range report.Unconfigured {
		fmt.Fprintf(out, "⚠ %s\n  Status: No configuration available\n\n", name)
	}
	for _, intent := range report.Pending {
		fmt.Fprintf(out, "⚠ %s %s interrupted at %s\n  Action: Will clear journal marker\n\n",
			intent.Op, intent.Name, intent.StartedAt.Local().Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(out, "Summary:")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Stale (will remove):\t%d\n", len(report.Stale))
	fmt.Fprintf(w, "  Unconfigured:\t%d\n", len(report.Unconfigured))
	fmt.Fprintf(w, "  Interrupted:\t%d\n", len(report.Pending))
	w.Flush()
}
