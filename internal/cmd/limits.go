package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/logpanel/cli/internal/limits"
	"github.com/logpanel/cli/internal/output"
)

// limitsResult is the structured output of `logpanel limits`.
type limitsResult struct {
	limits.Decision
	Flags limits.Flags `json:"flags"`
}

// NewLimitsCmd creates the limits command.
func NewLimitsCmd(g *GlobalConfig) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "limits",
		Short: "Show the maximum rows per panel for the output target",
		Long: `Show the maximum number of rows each panel may render.

The limit depends on --max-items, the requested --output-format entries,
--real-time-html, --stdout and whether stdout is a terminal.

Examples:
  # CSV written to a terminal keeps the configured limit
  logpanel limits --max-items 50000 --output-format csv

  # HTML caps the limit even when CSV is also requested
  logpanel limits --max-items 50000 --output-format csv --output-format html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := parseOutputFlag(format)
			if err != nil {
				return err
			}

			flags := g.Resolved.LimitFlags()
			d := limits.Decide(flags)
			output.Debug("row limit decided", "maxRows", d.MaxRows, "rule", d.Rule)

			if f == output.FormatTable {
				fmt.Fprintln(cmd.OutOrStdout(), "max rows: "+output.FormatRowLimit(d.MaxRows, string(d.Rule)))
				return nil
			}
			return output.Encode(cmd.OutOrStdout(), f, limitsResult{Decision: d, Flags: flags})
		},
	}

	c.Flags().StringVarP(&format, "output", "o", "table", "Output format: table, json, yaml")

	return c
}
