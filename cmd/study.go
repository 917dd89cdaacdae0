package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/Harshith-vm/ai-learning-platform/internal/tui"
)

var studyCmd = &cobra.Command{
	Use:   "study <file>",
	Short: "Run an interactive study session (pre-test, post-test, learning gain)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		engine, cleanup, err := newEngine(ctx, cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		id, err := ingestArg(cmd, engine, args[0])
		if err != nil {
			return err
		}

		p := tea.NewProgram(tui.NewModel(engine, id))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("study session: %w", err)
		}
		return nil
	},
}
