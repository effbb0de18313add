package cmd

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	oerrors "github.com/logpanel/cli/internal/errors"
	"github.com/logpanel/cli/internal/limits"
	"github.com/logpanel/cli/internal/output"
	"github.com/logpanel/cli/internal/panel"
)

// panelState is the result of panel selection for one run.
type panelState struct {
	registry *panel.Registry
	first    panel.Module
	removed  []panel.Module
}

// buildPanels builds the registry from the resolved filter and applies the
// log-format prerequisites.
func buildPanels(g *GlobalConfig) panelState {
	policy := panel.NewPolicy(g.Resolved.Filter())
	reg, first := policy.BuildRegistry()
	removed := policy.VerifyPanels(reg, g.Resolved.LogFormat)

	if !reg.Contains(first) {
		if reg.Count() > 0 {
			first = reg.Modules()[0]
		} else {
			first = panel.Visitors
		}
	}

	return panelState{registry: reg, first: first, removed: removed}
}

// rows lists every canonical module with its state.
func (s panelState) rows(maxRows int) []output.PanelRow {
	rows := make([]output.PanelRow, 0, panel.TotalModules)
	for _, m := range panel.All() {
		row := output.PanelRow{Name: m.String(), Title: m.Title(), MaxRows: maxRows}
		if idx, err := s.registry.IndexOf(m); err == nil {
			row.Position = idx + 1
			row.State = output.StateActive
			if m == s.first {
				row.State = output.StateCurrent
			}
		} else if slices.Contains(s.removed, m) {
			row.State = output.StateRemoved
		} else {
			row.State = output.StateIgnored
		}
		rows = append(rows, row)
	}
	return rows
}

// resolveArg maps a command argument to a module.
func resolveArg(name string) (panel.Module, error) {
	m, ok := panel.Resolve(name)
	if !ok {
		return 0, oerrors.NewExitError(oerrors.NewUnresolvedPanelError(name, panel.Names()), oerrors.ExitNotFound)
	}
	return m, nil
}

// NewPanelsCmd creates the panels command group.
func NewPanelsCmd(g *GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "panels",
		Short: "Inspect and navigate the active panels",
		Long: `Inspect and navigate the active report panels.

Panels are active unless listed with --ignore-panel. --enable-panel overrides
an ignore entry. Panels whose log-format token is missing from --log-format
(VIRTUAL_HOSTS needs %v) are removed unless they are listed as ignored.`,
	}

	c.AddCommand(newPanelsListCmd(g))
	c.AddCommand(newPanelsNavCmd(g, "next"))
	c.AddCommand(newPanelsNavCmd(g, "prev"))
	c.AddCommand(newPanelsRemoveCmd(g))

	return c
}

func newPanelsListCmd(g *GlobalConfig) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "list",
		Short: "List panels in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := parseOutputFlag(format)
			if err != nil {
				return err
			}

			state := buildPanels(g)
			rows := state.rows(limits.MaxRows(g.Resolved.LimitFlags()))

			if f == output.FormatTable {
				fmt.Fprintln(cmd.OutOrStdout(), output.RenderPanelTable(rows))
				return nil
			}
			return output.Encode(cmd.OutOrStdout(), f, rows)
		},
	}

	c.Flags().StringVarP(&format, "output", "o", "table", "Output format: table, json, yaml")

	return c
}

func newPanelsNavCmd(g *GlobalConfig, direction string) *cobra.Command {
	short := "Show the panel after MODULE, wrapping to the first"
	if direction == "prev" {
		short = "Show the panel before MODULE, wrapping to the last"
	}

	return &cobra.Command{
		Use:   direction + " MODULE",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := resolveArg(args[0])
			if err != nil {
				return err
			}

			reg := buildPanels(g).registry
			var to panel.Module
			if direction == "next" {
				to, err = reg.Next(from)
			} else {
				to, err = reg.Prev(from)
			}
			if errors.Is(err, oerrors.ErrPrecondition) {
				return oerrors.NewExitError(oerrors.NewInactivePanelError(from.String()), oerrors.ExitGeneralError)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), to)
			return nil
		},
	}
}

func newPanelsRemoveCmd(g *GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "remove MODULE...",
		Short: "Remove panels and show the resulting order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state := buildPanels(g)

			for _, name := range args {
				m, err := resolveArg(name)
				if err != nil {
					output.Warn("skipping unknown panel", "name", name)
					continue
				}
				if err := state.registry.Remove(m); err != nil {
					output.PanelLogger(m.String()).Warn("panel is not active")
				}
			}

			for _, m := range state.registry.Modules() {
				fmt.Fprintln(cmd.OutOrStdout(), output.FormatPanelLine(m.String(), output.StateActive))
			}
			fmt.Fprintln(cmd.OutOrStdout(), output.FormatCheckmark(
				fmt.Sprintf("%d of %d panels active", state.registry.Count(), panel.TotalModules)))
			return nil
		},
	}
}
