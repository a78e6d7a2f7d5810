package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/vncsmyrnk/mealpoll/internal/core/ports"
	"gopkg.in/yaml.v3"
)

func render(w io.Writer, summary *ports.Summary, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(summary); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		return renderText(w, summary)
	}
	return fmt.Errorf("unknown format %q", format)
}

func renderText(w io.Writer, summary *ports.Summary) error {
	fmt.Fprintf(w, "Generated at: %s\n", summary.GeneratedAt.Format(time.RFC3339))
	if summary.ConfigUpdatedAt != nil {
		fmt.Fprintf(w, "Poll updated at: %s\n", summary.ConfigUpdatedAt.Format(time.RFC3339))
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "OPTION\tVOTES\tSHARE")
	for _, opt := range summary.Options {
		share := 0.0
		if summary.TotalVotes > 0 {
			share = float64(opt.Votes) * 100 / float64(summary.TotalVotes)
		}
		fmt.Fprintf(tw, "%s\t%d\t%.1f%%\n", opt.Name, opt.Votes, share)
	}
	fmt.Fprintf(tw, "Total\t%d\t\n", summary.TotalVotes)
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	if len(summary.RecentSuggestions) == 0 {
		_, err := fmt.Fprintln(w, "No suggestions yet.")
		return err
	}
	fmt.Fprintln(w, "Recent suggestions:")
	for _, s := range summary.RecentSuggestions {
		fmt.Fprintf(w, "  %s  %s\n", s.Date, s.Text)
	}
	return nil
}
