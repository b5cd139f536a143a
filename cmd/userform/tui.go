package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yanizio/userform/internal/tui"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Fill in the registration form in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			def, err := formDef(cmd)
			if err != nil {
				return err
			}
			// Query the background before the program starts so the OSC 11
			// reply does not land in a text input.
			_ = lipgloss.HasDarkBackground()

			final, err := tea.NewProgram(tui.New(def), tea.WithAltScreen()).Run()
			if err != nil {
				return fmt.Errorf("running program: %w", err)
			}
			if m, ok := final.(tui.Model); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%d user(s) registered\n", m.Form().SubmittedCount())
			}
			return nil
		},
	}
}
