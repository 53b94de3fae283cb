// Package cmd command line
package cmd

import (
	"context"

	errors "github.com/Laisky/errors/v2"
	gconfig "github.com/Laisky/go-config/v2"
	gcmd "github.com/Laisky/go-utils/v6/cmd"
	glog "github.com/Laisky/go-utils/v6/log"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Laisky/video-search/cmd/tui"
	"github.com/Laisky/video-search/library/log"
)

var tuiCMD = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive search view",
	Long: `Launch the interactive search view, this is also what runs without a subcommand.

Type a question and press enter, the answer and the matching videos are shown
as a grid of cards, nine per page. Logs go to --log-file, the terminal is
owned by the view.

Example:
  video-search tui --api-base-url http://localhost:8000

Keyboard shortcuts:
  Enter         Search
  Esc           Cancel the running search
  Tab           Switch between input and results
  ←/→ or h/l    Previous / next page
  ↑/↓ or k/j    Scroll the answer
  q             Quit (from results)
  Ctrl+C        Quit`,
	Args: gcmd.NoExtraArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd.Context())
	},
}

func init() {
	rootCMD.AddCommand(tuiCMD)
}

// runTUI starts the interactive Terminal User Interface and returns any start/run error.
func runTUI(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	lvl := glog.Level(gconfig.Shared.GetString("log-level"))
	if err := log.SetupFile(logFilePath(), lvl); err != nil {
		return errors.Wrap(err, "setup log file")
	}

	client, orch, err := newOrchestrator()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := tui.NewModel(ctx, orch, tui.Options{
		BaseURL: client.BaseURL(),
		Prober:  client,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err = p.Run(); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
