package invaders

// HighScoreKey is the store key under which the best score is kept.
const HighScoreKey = "invaders"

// HighScoreStore persists the best score. Implementations swallow their own
// failures; an absent key reads as (0, false).
type HighScoreStore interface {
	Get(key string) (int, bool)
	Set(key string, score int)
}

// MemStore is an in-memory HighScoreStore used when no persistence is wired.
type MemStore struct {
	scores map[string]int
	Writes int // Number of Set calls
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{scores: make(map[string]int)}
}

// Get returns the stored score for key.
func (m *MemStore) Get(key string) (int, bool) {
	v, ok := m.scores[key]
	return v, ok
}

// Set stores score under key.
func (m *MemStore) Set(key string, score int) {
	m.scores[key] = score
	m.Writes++
}

var _ HighScoreStore = (*MemStore)(nil)
