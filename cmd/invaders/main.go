// invaders is a Space Invaders clone for the terminal and the desktop.
//
// Usage:
//
//	invaders play            - Play in the terminal
//	invaders gui             - Play in a window
//	invaders scores          - Show the run history
//	invaders config          - Print the effective gameplay config
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.arcade/invaders.db)
//	--config <path>     - Load gameplay tuning from a YAML file
//	--log-file <path>   - Log destination in terminal mode
//	--log-level <level> - debug, info, warn or error
//	--width, --height   - Play field size in world units
//	--mute              - Disable sound effects
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/audio"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

const defaultLogFile = "~/.arcade/invaders.log"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
	flagWidth    int
	flagHeight   int
	flagMute     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Space Invaders in your terminal or a window",
	Long: `Defend the planet from a descending alien formation.

Kill aliens in quick succession to enrage the formation: they fire faster
and hit harder. Aliens next to a fallen comrade turn angry for a while.

Available commands:
  play     - Play in the terminal
  gui      - Play in a desktop window
  scores   - View the run history
  config   - Print the effective gameplay config

Examples:
  invaders play
  invaders play --seed 42 --mute
  invaders gui --scale 1.5
  invaders scores --browse
  invaders config > my-invaders.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	def := core.DefaultConfig()

	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", def.TickRate, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
	pf.StringVar(&flagLogFile, "log-file", defaultLogFile, "Log file used while the terminal UI runs")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.IntVar(&flagWidth, "width", def.FieldW, "Play field width")
	pf.IntVar(&flagHeight, "height", def.FieldH, "Play field height")
	pf.BoolVar(&flagMute, "mute", false, "Disable sound effects")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger writes to w with the shared prefix and the --log-level threshold.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders",
		Level:           level,
	})
	return logger, nil
}

// openLogFile opens the --log-file for appending. The caller closes it.
func openLogFile() (*os.File, error) {
	path, err := expandHome(flagLogFile)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// runtimeConfig builds the field and clock settings from the global flags.
func runtimeConfig() core.RuntimeConfig {
	rt := core.RuntimeConfig{
		FieldW:   flagWidth,
		FieldH:   flagHeight,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	return rt
}

// session owns everything a frontend needs for one program run.
type session struct {
	game   *invaders.Game
	store  *storage.Store
	scores *storage.HighScores
	sounds *audio.Player
	logger *log.Logger
	rt     core.RuntimeConfig
}

// openSession loads config, opens storage and audio, and creates the game.
// A database that cannot be opened degrades to no persistence.
func openSession(logger *log.Logger) (*session, error) {
	cfg, err := config.LoadInvaders(flagConfig)
	if err != nil {
		return nil, err
	}

	s := &session{logger: logger, rt: runtimeConfig()}

	s.store, err = storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "error", err)
		s.store = nil
	}
	s.scores = storage.NewHighScores(s.store, invaders.HighScoreKey, logger)

	s.game, err = invaders.New(s.rt, cfg, s.scores, nil)
	if err != nil {
		s.close()
		return nil, err
	}

	s.sounds = audio.NewPlayer(logger)
	if !flagMute {
		if err := s.sounds.Init(); err != nil {
			logger.Debug("continuing without sound", "error", err)
		}
	}

	logger.Info("session started", "seed", s.rt.Seed, "field", fmt.Sprintf("%dx%d", s.rt.FieldW, s.rt.FieldH), "audio", s.sounds.Enabled())
	return s, nil
}

func (s *session) close() {
	if s.sounds != nil {
		s.sounds.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Warn("could not close scores database", "error", err)
		}
	}
}
