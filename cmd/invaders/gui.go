package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/platform/gui"
)

var flagScale float64

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Play in a desktop window",
	Long: `Open a window and play with real key-up/key-down input and the mouse.

Controls:
  Left/A, Right/D  - Move
  Space            - Fire
  Enter / click    - Restart after the game ends
  P/Esc            - Pause
  Q                - Quit

Examples:
  invaders gui
  invaders gui --scale 1.5`,
	Args: cobra.NoArgs,
	RunE: runGUI,
}

func init() {
	guiCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the play field")
}

func runGUI(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	s, err := openSession(logger)
	if err != nil {
		return err
	}
	defer s.close()

	if err := gui.Run(s.game, gui.Options{
		TickRate: s.rt.TickRate,
		Scale:    flagScale,
		Scores:   s.scores,
		Sounds:   s.sounds,
		Logger:   logger,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
