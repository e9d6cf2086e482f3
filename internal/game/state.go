// Package game provides the main game loop and state management.
package game

// State represents the current game state.
type State int

const (
	// StateExplore is the normal real-time mode: moving, fighting and looting.
	StateExplore State = iota
	// StateRespawning freezes the world briefly after the player dies.
	StateRespawning
	// StateQuit ends the loop.
	StateQuit
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateRespawning:
		return "respawning"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}
