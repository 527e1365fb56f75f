// Package audio provides the game's sound cues. Tones are generated
// procedurally and played through oto, so no sound files ship with the
// binary. Playback is fire-and-forget: a failed or busy device never
// blocks the simulation.
package audio

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	sampleRate = 44100
	channels   = 2
	bitDepth   = 2 // 16-bit signed little-endian
)

// Player is the audio collaborator the platform triggers cues on.
type Player interface {
	PlayEat()
	PlayGameOver()
}

// Nop is a Player that does nothing. Used for headless replays, SSH
// sessions, and muted play.
type Nop struct{}

func (Nop) PlayEat()      {}
func (Nop) PlayGameOver() {}

// System plays procedurally generated cues through an oto context.
type System struct {
	ctx   *oto.Context
	ready chan struct{}
	eat   []byte
	over  []byte
}

// NewSystem initializes the audio device and pre-renders both cues.
// Initialization failure is returned to the caller; there is no fallback
// device.
func NewSystem() (*System, error) {
	ctx, ready, err := oto.NewContext(sampleRate, channels, bitDepth)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot initialize device: %w", err)
	}
	return &System{
		ctx:   ctx,
		ready: ready,
		eat:   genBlip(),
		over:  genDescent(),
	}, nil
}

// PlayEat plays the food-consumption blip.
func (s *System) PlayEat() {
	s.play(s.eat)
}

// PlayGameOver plays the descending game-over tone.
func (s *System) PlayGameOver() {
	s.play(s.over)
}

// play starts a one-shot player for the given samples. If the device is
// not ready yet the cue is dropped rather than delayed.
func (s *System) play(samples []byte) {
	select {
	case <-s.ready:
	default:
		return
	}
	go func() {
		p := s.ctx.NewPlayer(bytes.NewReader(samples))
		p.Play()
		for p.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		p.Close()
	}()
}

// genBlip renders a short bright blip: a 880Hz tone with fast exponential
// decay.
func genBlip() []byte {
	return renderTone(60*time.Millisecond, func(t, dur float64) float64 {
		return math.Sin(2*math.Pi*880*t) * math.Exp(-18*t)
	})
}

// genDescent renders the game-over cue: a tone sliding from 440Hz down to
// 110Hz over its duration.
func genDescent() []byte {
	return renderTone(450*time.Millisecond, func(t, dur float64) float64 {
		freq := 440 - (440-110)*(t/dur)
		return math.Sin(2*math.Pi*freq*t) * (1 - t/dur)
	})
}

// renderTone samples the wave function into interleaved 16-bit stereo PCM.
func renderTone(dur time.Duration, wave func(t, dur float64) float64) []byte {
	seconds := dur.Seconds()
	n := int(seconds * sampleRate)
	buf := make([]byte, n*channels*bitDepth)

	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		v := wave(t, seconds)
		sample := int16(v * 0.4 * math.MaxInt16)
		for c := 0; c < channels; c++ {
			off := (i*channels + c) * bitDepth
			buf[off] = byte(sample)
			buf[off+1] = byte(sample >> 8)
		}
	}
	return buf
}
