package storage

import (
	"github.com/charmbracelet/log"
)

// HighScores adapts a Store to the game's best-effort high score interface.
// Database errors are logged and never returned. A nil Store behaves as an
// empty, write-discarding store.
type HighScores struct {
	store  *Store
	gameID string
	logger *log.Logger
}

// NewHighScores wraps store for gameID. A nil logger uses the default logger.
func NewHighScores(store *Store, gameID string, logger *log.Logger) *HighScores {
	if logger == nil {
		logger = log.Default()
	}
	return &HighScores{store: store, gameID: gameID, logger: logger}
}

// Get returns the stored best score.
func (h *HighScores) Get(key string) (int, bool) {
	if h.store == nil {
		return 0, false
	}
	score, ok, err := h.store.GetHighScore(key)
	if err != nil {
		h.logger.Warn("could not read high score", "key", key, "error", err)
		return 0, false
	}
	return score, ok
}

// Set writes the best score through to the database.
func (h *HighScores) Set(key string, score int) {
	if h.store == nil {
		return
	}
	if err := h.store.SetHighScore(key, score); err != nil {
		h.logger.Warn("could not persist high score", "key", key, "score", score, "error", err)
		return
	}
	h.logger.Debug("high score saved", "key", key, "score", score)
}

// RecordRun appends a finished run to the history. Zero scores are skipped.
// Returns the run id, or "" if nothing was written.
func (h *HighScores) RecordRun(score int) string {
	if h.store == nil || score <= 0 {
		return ""
	}
	runID := NewRunID()
	if _, err := h.store.SaveRun(h.gameID, runID, score); err != nil {
		h.logger.Warn("could not record run", "game", h.gameID, "score", score, "error", err)
		return ""
	}
	h.logger.Info("run recorded", "game", h.gameID, "run", runID, "score", score)
	return runID
}
