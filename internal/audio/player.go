// Package audio plays the game's synthesized sound effects through beep.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-colorswitch/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes sound effects onto the default audio device.
// Until Init succeeds every Play is silently dropped.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	ready  bool
	logger *log.Logger
}

// NewPlayer creates a player. logger may be nil.
func NewPlayer(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Init opens the audio device. Safe to call more than once.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open device: %w", err)
	}
	speaker.Play(p.mixer)
	p.ready = true
	p.logger.Debug("audio ready", "rate", int(sampleRate))
	return nil
}

// Play starts a sound effect without waiting for it to finish.
func (p *Player) Play(s core.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}

	var streamer beep.Streamer
	switch s {
	case core.SoundBling:
		streamer = NewBling(sampleRate)
	default:
		return
	}

	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

// Ready reports whether the device is open.
func (p *Player) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready
}

// Close silences everything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}

	// beep has no way to release the device; an empty mixer is silent
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.ready = false
}
