package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly, math.Log2(0) is -Inf so zero becomes silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func note(freq float64, wave WaveType, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// CreateDropSound generates a low thud with a faint click on top
func CreateDropSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	body := note(140.0, WaveSine, dropSoundDuration, dropSoundAttack, dropSoundRelease, rate)
	click := note(0, WaveNoise, dropSoundDuration, dropSoundAttack, dropSoundDuration-dropSoundAttack, rate)

	mixed := beep.Mix(
		newVolume(body, 0.85),
		newVolume(click, 0.15),
	)
	return newVolume(mixed, cfg.EffectVolumes[SoundDrop]*cfg.MasterVolume)
}

// CreateWinSound generates a rising major arpeggio (C5 E5 G5 C6)
func CreateWinSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	freqs := []float64{523.25, 659.25, 783.99, 1046.50}
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		notes = append(notes, note(f, WaveSquare, winNoteDuration, winNoteAttack, winNoteRelease, rate))
	}
	return newVolume(beep.Seq(notes...), cfg.EffectVolumes[SoundWin]*cfg.MasterVolume)
}

// CreateTieSound generates two falling notes (G4 then D4)
func CreateTieSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	seq := beep.Seq(
		note(392.00, WaveSine, tieNoteDuration, tieNoteAttack, tieNoteRelease, rate),
		note(293.66, WaveSine, tieNoteDuration, tieNoteAttack, tieNoteRelease, rate),
	)
	return newVolume(seq, cfg.EffectVolumes[SoundTie]*cfg.MasterVolume)
}

// CreateResetSound generates a soft noise sweep
func CreateResetSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	shaped := note(0, WaveNoise, resetSoundDuration, resetSoundAttack, resetSoundRelease, rate)
	return newVolume(shaped, cfg.EffectVolumes[SoundReset]*cfg.MasterVolume)
}

// CreateInvalidSound generates a short harsh buzz
func CreateInvalidSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	shaped := note(100.0, WaveSaw, invalidSoundDuration, invalidSoundAttack, invalidSoundRelease, rate)
	return newVolume(shaped, cfg.EffectVolumes[SoundInvalid]*cfg.MasterVolume)
}

// GetSoundEffect returns the appropriate sound effect streamer for the given type
func GetSoundEffect(soundType SoundType, cfg *Config) beep.Streamer {
	switch soundType {
	case SoundDrop:
		return CreateDropSound(cfg)
	case SoundWin:
		return CreateWinSound(cfg)
	case SoundTie:
		return CreateTieSound(cfg)
	case SoundReset:
		return CreateResetSound(cfg)
	case SoundInvalid:
		return CreateInvalidSound(cfg)
	default:
		return nil
	}
}
