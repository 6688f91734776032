package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. The field is scaled to the terminal size.

Controls:
  Left/A, Right/D  - Move
  Space            - Fire
  Enter / click    - Restart after the game ends
  P/Esc            - Pause
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Logs go to --log-file while the game owns the screen.

Examples:
  invaders play
  invaders play --seed 42
  invaders play --config ./my-invaders.yaml --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

// runPlay returns errors instead of exiting so the session and the log
// file are closed on every path.
func runPlay(cmd *cobra.Command, args []string) error {
	logFile, err := openLogFile()
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := newLogger(logFile)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	s, err := openSession(logger)
	if err != nil {
		logger.Error("could not start game", "error", err)
		return err
	}
	defer s.close()

	if err := tui.Run(s.game, width, height, tui.Options{
		TickRate: s.rt.TickRate,
		Scores:   s.scores,
		Sounds:   s.sounds,
		Logger:   logger,
	}); err != nil {
		logger.Error("game failed", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
