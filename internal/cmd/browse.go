package cmd

import (
	"github.com/spf13/cobra"

	oerrors "github.com/logpanel/cli/internal/errors"
	"github.com/logpanel/cli/internal/limits"
	"github.com/logpanel/cli/internal/panel"
	"github.com/logpanel/cli/internal/tui"
)

// runBrowser starts the interactive session. Tests replace it.
var runBrowser = tui.Run

// NewBrowseCmd creates the browse command.
func NewBrowseCmd(g *GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the active panels interactively",
		Long: `Browse the active panels in the terminal.

Keys:
  tab, l, right        next panel
  shift+tab, h, left   previous panel
  d                    remove the current panel
  q, esc               quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !g.Resolved.StdoutIsTerminal {
				return oerrors.NewExitError(
					oerrors.NewValidationError("browse requires stdout to be a terminal", "stdout",
						"Use 'logpanel panels list' for non-interactive output"),
					oerrors.ExitValidationError,
				)
			}

			state := buildPanels(g)
			session := panel.NewSession(state.registry, state.first)
			return runBrowser(session, limits.Decide(g.Resolved.LimitFlags()))
		},
	}
}
