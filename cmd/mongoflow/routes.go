package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mongoflow/web/internal/config"
	"github.com/mongoflow/web/internal/shell"
)

type routeJSON struct {
	Pattern string `json:"pattern"`
	Name    string `json:"name"`
	Title   string `json:"title"`
}

type linkJSON struct {
	Label  string `json:"label"`
	Target string `json:"target"`
}

type routesJSON struct {
	Brand  string      `json:"brand"`
	Routes []routeJSON `json:"routes"`
	Links  []linkJSON  `json:"links"`
}

func newRoutesCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Print the route table and navigation links",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			sh, err := shell.Default(cfg.AppName)
			if err != nil {
				return fmt.Errorf("build shell: %w", err)
			}

			if asJSON {
				return writeRoutesJSON(cmd.OutOrStdout(), sh)
			}
			return writeRoutesTable(cmd.OutOrStdout(), sh)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}

func writeRoutesTable(w io.Writer, sh *shell.Shell) error {
	nav := make(map[string]string)
	for _, l := range sh.Links() {
		nav[l.Target] = l.Label
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PATTERN\tNAME\tTITLE\tNAV")
	for _, r := range sh.Routes() {
		label := nav[r.Pattern]
		if label == "" {
			label = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Pattern, r.Name, r.Title, label)
	}
	return tw.Flush()
}

func writeRoutesJSON(w io.Writer, sh *shell.Shell) error {
	out := routesJSON{Brand: sh.Brand()}
	for _, r := range sh.Routes() {
		out.Routes = append(out.Routes, routeJSON{Pattern: r.Pattern, Name: r.Name, Title: r.Title})
	}
	for _, l := range sh.Links() {
		out.Links = append(out.Links, linkJSON{Label: l.Label, Target: l.Target})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
