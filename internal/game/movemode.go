package game

import "fmt"

// MoveMode is the character's gait. The set is closed; movement code switches
// on it exhaustively and anything else is rejected at parse time.
type MoveMode string

const (
	ModeWalk   MoveMode = "walk"
	ModeRun    MoveMode = "run"
	ModeCrouch MoveMode = "crouch"
)

func ParseMoveMode(raw string) (MoveMode, error) {
	switch MoveMode(raw) {
	case ModeWalk, ModeRun, ModeCrouch:
		return MoveMode(raw), nil
	default:
		return "", fmt.Errorf("invalid movement mode: %s", raw)
	}
}
