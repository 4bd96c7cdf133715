package audio

import (
	"time"
)

// Config controls sound output
type Config struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 to 1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultConfig returns audio settings used when nothing is configured
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		EffectVolumes: map[SoundType]float64{
			SoundDrop:    0.6,
			SoundWin:     0.5,
			SoundTie:     0.5,
			SoundReset:   0.4,
			SoundInvalid: 0.4,
		},
	}
}

// NewConfig builds a config from the game settings, keeping default effect volumes
func NewConfig(enabled bool, masterVolume float64, sampleRate int) *Config {
	cfg := DefaultConfig()
	cfg.Enabled = enabled
	cfg.MasterVolume = min(max(masterVolume, 0), 1)
	if sampleRate > 0 {
		cfg.SampleRate = sampleRate
	}
	return cfg
}

// Effect timing
const (
	dropSoundDuration = 90 * time.Millisecond
	dropSoundAttack   = 2 * time.Millisecond
	dropSoundRelease  = 70 * time.Millisecond

	winNoteDuration = 110 * time.Millisecond
	winNoteAttack   = 5 * time.Millisecond
	winNoteRelease  = 60 * time.Millisecond

	tieNoteDuration = 180 * time.Millisecond
	tieNoteAttack   = 10 * time.Millisecond
	tieNoteRelease  = 120 * time.Millisecond

	resetSoundDuration = 250 * time.Millisecond
	resetSoundAttack   = 20 * time.Millisecond
	resetSoundRelease  = 200 * time.Millisecond

	invalidSoundDuration = 120 * time.Millisecond
	invalidSoundAttack   = 5 * time.Millisecond
	invalidSoundRelease  = 50 * time.Millisecond
)
