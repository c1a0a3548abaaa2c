package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/venman-dev/venman/internal/localstore"
	"github.com/venman-dev/venman/internal/service"
	"gopkg.in/yaml.v3"
)

var (
	listFilter string
	listOutput string
	listSize   bool
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List virtual environments",
	Long: `List the environments found under ~/venman/venvs with the description
and packages recorded for each. Entries in venvs.toml without a directory
are not shown; use 'venman repair' to find them.

Examples:
  venman list
  venman ls --filter 'data-*' --size
  venman ls -o json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listFilter, "filter", "", "Only show names matching this glob pattern")
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "table", "Output format (table, json, yaml)")
	listCmd.Flags().BoolVar(&listSize, "size", false, "Show the disk size of each environment")
}

// listItem is the machine-readable form of an environment.
type listItem struct {
	Name        string `json:"name" yaml:"name"`
	Path        string `json:"path" yaml:"path"`
	Configured  bool   `json:"configured" yaml:"configured"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Packages    string `json:"packages,omitempty" yaml:"packages,omitempty"`
	Size        string `json:"size,omitempty" yaml:"size,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	switch listOutput {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("unsupported output format %q (want table, json or yaml)", listOutput)
	}
	if listFilter != "" && !doublestar.ValidatePattern(listFilter) {
		return fmt.Errorf("invalid filter pattern %q", listFilter)
	}

	svc, err := newService(cmd)
	if err != nil {
		return err
	}
	result, err := svc.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if listOutput == "table" {
		if msg, empty := emptyListMessage(result); empty {
			fmt.Fprintln(cmd.ErrOrStderr(), warnStyle.Render(msg))
			return nil
		}
	}

	items := make([]listItem, 0, len(result.Entries))
	for _, e := range filterEntries(result.Entries, listFilter) {
		items = append(items, toListItem(svc.Store(), e, listSize))
	}

	switch listOutput {
	case "json":
		data, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(items); err != nil {
			return err
		}
		return enc.Close()
	}
	return writeListTable(out, items, listSize)
}

// emptyListMessage returns the message shown instead of a listing, if any.
func emptyListMessage(result *service.ListResult) (string, bool) {
	switch {
	case !result.Found:
		return "No virtual environments found.", true
	case len(result.Entries) == 0:
		return "No virtual environments discovered.", true
	}
	return "", false
}

func filterEntries(entries []localstore.Entry, pattern string) []localstore.Entry {
	if pattern == "" {
		return entries
	}
	var matched []localstore.Entry
	for _, e := range entries {
		if ok, _ := doublestar.Match(pattern, e.Name); ok {
			matched = append(matched, e)
		}
	}
	return matched
}

func toListItem(store *localstore.Store, e localstore.Entry, withSize bool) listItem {
	item := listItem{Name: e.Name, Path: e.Path, Configured: e.Configured}
	if e.Record != nil {
		item.Description = e.Record.Description
		item.Packages = e.Record.Packages
	}
	if withSize {
		if size, err := store.EnvSize(e.Name); err == nil {
			item.Size = humanize.Bytes(uint64(size))
		}
	}
	return item
}

func writeListTable(out io.Writer, items []listItem, withSize bool) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if withSize {
		fmt.Fprintln(w, "NAME\tDESCRIPTION\tPACKAGES\tSIZE")
	} else {
		fmt.Fprintln(w, "NAME\tDESCRIPTION\tPACKAGES")
	}
	for _, item := range items {
		description, packages := item.Description, item.Packages
		if !item.Configured {
			description, packages = "(no configuration available)", "-"
		}
		if description == "" {
			description = "-"
		}
		if packages == "" {
			packages = "-"
		}
		if withSize {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", item.Name, description, packages, item.Size)
		} else {
			fmt.Fprintf(w, "%s\t%s\t%s\n", item.Name, description, packages)
		}
	}
	return w.Flush()
}

// printCards renders the menu's detailed listing.
func printCards(w io.Writer, result *service.ListResult) {
	if msg, empty := emptyListMessage(result); empty {
		fmt.Fprintln(w, warnStyle.Render(msg))
		return
	}

	fmt.Fprintln(w, headerStyle.Render("VenMan Virtual Environments"))
	fmt.Fprintln(w, successStyle.Render("------------------------------"))
	for _, e := range result.Entries {
		if e.Record == nil {
			fmt.Fprintf(w, "%s | %s No configuration available\n\n", nameStyle.Render(e.Name), warnStyle.Render("⚠"))
			continue
		}
		fmt.Fprintf(w, "%s\n  %s %s\n  %s %s\n\n",
			nameStyle.Render(e.Name),
			warnStyle.Render("Description:"), orDefault(e.Record.Description, "No description"),
			warnStyle.Render("Packages:"), orDefault(e.Record.Packages, "No packages"))
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
