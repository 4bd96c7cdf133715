package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundDrop    SoundType = iota // Token placed
	SoundWin                      // Four in a row
	SoundTie                      // Board full
	SoundReset                    // Manual reset
	SoundInvalid                  // Full column
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundDrop:
		return "drop"
	case SoundWin:
		return "win"
	case SoundTie:
		return "tie"
	case SoundReset:
		return "reset"
	case SoundInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled")
)
