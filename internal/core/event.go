package core

// Event is a notable occurrence during a tick, consumed by frontends for
// sound and visual feedback. Events never feed back into the simulation.
type Event int

const (
	EventPlayerShot     Event = iota // Cannon fired
	EventAlienShot                   // An alien fired
	EventAlienKilled                 // Player bullet destroyed an alien
	EventCannonHit                   // Enemy bullet hit the cannon
	EventBrickDestroyed              // A bunker brick absorbed a bullet
	EventEnraged                     // Enraged mode started
	EventVictory                     // Formation destroyed
	EventGameOver                    // Game lost
	EventRestart                     // Game reinitialized
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventPlayerShot:
		return "PlayerShot"
	case EventAlienShot:
		return "AlienShot"
	case EventAlienKilled:
		return "AlienKilled"
	case EventCannonHit:
		return "CannonHit"
	case EventBrickDestroyed:
		return "BrickDestroyed"
	case EventEnraged:
		return "Enraged"
	case EventVictory:
		return "Victory"
	case EventGameOver:
		return "GameOver"
	case EventRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}
