package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-colorswitch/internal/audio"
	"github.com/vovakirdan/tui-colorswitch/internal/config"
	"github.com/vovakirdan/tui-colorswitch/internal/core"
	"github.com/vovakirdan/tui-colorswitch/internal/games/colorswitch"
	"github.com/vovakirdan/tui-colorswitch/internal/paths"
	"github.com/vovakirdan/tui-colorswitch/internal/platform/tui"
	"github.com/vovakirdan/tui-colorswitch/internal/storage"
)

// Ensure Store can receive finished runs
var _ colorswitch.ScoreRecorder = (*storage.Store)(nil)

// session holds everything a sequence of menu visits and runs share.
type session struct {
	logger       *log.Logger
	logFile      *os.File
	game         config.ColorSwitchConfig
	runtime      core.RuntimeConfig
	store        *storage.Store
	player       *audio.Player
	soundEnabled bool
}

// newSession loads configuration and opens storage, logging and audio.
// Only invalid flags or configuration are fatal.
func newSession() (*session, error) {
	if err := validateFPS(flagFPS); err != nil {
		return nil, err
	}

	s := &session{}
	s.openLogger()

	cfg, err := config.LoadColorSwitch(flagConfig)
	if err != nil {
		s.close()
		return nil, err
	}
	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		s.close()
		return nil, err
	}
	config.ApplyColorSwitchPreset(&cfg, preset)
	s.game = cfg
	s.soundEnabled = cfg.Audio.SoundEnabled && !flagMute

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	s.runtime = core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		s.logger.Warn("could not open scores database", "error", err)
	} else {
		s.store = store
	}

	s.player = audio.NewPlayer(s.logger)
	if err := s.player.Init(); err != nil {
		s.logger.Warn("audio unavailable", "error", err)
	}

	s.logger.Info("session started",
		"difficulty", preset,
		"gravity", cfg.Physics.BaseGravity,
		"step", cfg.Physics.GravityStep,
		"sound", s.soundEnabled,
	)
	return s, nil
}

// openLogger sends logs to the log file. The TUI owns the terminal, so
// stderr is only used when the file cannot be opened.
func (s *session) openLogger() {
	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "colorswitch",
	}

	path, err := paths.Expand(flagLogFile)
	if err == nil && path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
			if err == nil {
				s.logFile = f
				s.logger = log.NewWithOptions(f, opts)
				return
			}
		}
	}

	s.logger = log.NewWithOptions(os.Stderr, opts)
	s.logger.Warn("could not open log file, logging to stderr", "path", flagLogFile)
}

// options returns the collaborators handed to the TUI.
func (s *session) options() tui.Options {
	return tui.Options{Sound: s.player, Logger: s.logger}
}

// newGame builds a game wired to the current preferences and storage.
func (s *session) newGame() *colorswitch.Game {
	var recorder colorswitch.ScoreRecorder
	if s.store != nil {
		recorder = s.store
	}
	return colorswitch.New(s.game, colorswitch.Settings{SoundEnabled: s.soundEnabled}, recorder)
}

// scoreSource returns the store as a menu score source, or nil.
func (s *session) scoreSource() tui.ScoreSource {
	if s.store == nil {
		return nil
	}
	return s.store
}

// play runs one game session and reports whether the player asked for the menu.
func (s *session) play() (bool, error) {
	back, err := tui.Run(s.newGame(), s.runtime, s.options())
	if err != nil {
		return false, fmt.Errorf("running game: %w", err)
	}
	return back, nil
}

// menuLoop alternates between the title screen and runs until the player quits.
func (s *session) menuLoop() error {
	for {
		result, err := tui.RunMenu(s.scoreSource(), s.runtime, s.soundEnabled, s.options())
		if err != nil {
			return fmt.Errorf("running menu: %w", err)
		}

		// Update config with any size changes
		s.runtime = result.Config
		s.soundEnabled = result.SoundEnabled

		if result.Quit || !result.Play {
			return nil
		}

		back, err := s.play()
		if err != nil {
			return err
		}
		if !back {
			return nil
		}
	}
}

func (s *session) close() {
	if s.player != nil {
		s.player.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Warn("closing scores database", "error", err)
		}
	}
	if s.logFile != nil {
		s.logFile.Close()
	}
}

// validateFPS rejects tick rates the loop cannot run at.
func validateFPS(fps int) error {
	if fps <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", fps)
	}
	return nil
}
