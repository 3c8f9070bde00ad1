package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-colorswitch/internal/core"
	"github.com/vovakirdan/tui-colorswitch/internal/storage"
)

// ScoreSource provides the persisted scores shown on the menu.
type ScoreSource interface {
	Scores() (storage.Scores, error)
}

// logoColors cycles through the wheel colors letter by letter.
var logoColors = []core.Color{core.ColorRed, core.ColorYellow, core.ColorGreen, core.ColorBlue}

var (
	promptStyle = lipgloss.NewStyle().Foreground(palette[core.ColorWhite]).Bold(true)
	scoreStyle  = lipgloss.NewStyle().Foreground(palette[core.ColorDefault])
	mutedStyle  = lipgloss.NewStyle().Foreground(palette[core.ColorGray])
)

// MenuModel is the Bubble Tea model for the title screen.
type MenuModel struct {
	width        int
	height       int
	config       core.RuntimeConfig
	keys         MenuKeyMap
	help         help.Model
	scores       storage.Scores
	scoresErr    error
	soundEnabled bool
	sound        SoundSink
	logger       *log.Logger
	blinkOn      bool
	play         bool
	quitting     bool
}

// NewMenuModel creates a new menu model. source may be nil when no storage
// is available.
func NewMenuModel(source ScoreSource, cfg core.RuntimeConfig, soundEnabled bool, opts Options) MenuModel {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	m := MenuModel{
		width:        cfg.ScreenW,
		height:       cfg.ScreenH,
		config:       cfg,
		keys:         DefaultMenuKeyMap(),
		help:         help.New(),
		soundEnabled: soundEnabled,
		sound:        opts.Sound,
		logger:       logger,
		blinkOn:      true,
	}

	if source != nil {
		m.scores, m.scoresErr = source.Scores()
		if m.scoresErr != nil {
			logger.Warn("could not load scores", "error", m.scoresErr)
		}
	}

	return m
}

// Init starts the prompt blinking.
func (m MenuModel) Init() tea.Cmd {
	return blinkCmd()
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case BlinkMsg:
		m.blinkOn = !m.blinkOn
		return m, blinkCmd()
	}

	return m, nil
}

// handleKey processes keyboard input on the title screen.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Play):
		m.play = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Sound):
		m.soundEnabled = !m.soundEnabled
		if m.soundEnabled && m.sound != nil {
			m.sound.Play(core.SoundBling)
		}
		m.logger.Debug("sound toggled", "enabled", m.soundEnabled)
	}

	return m, nil
}

// View renders the title screen.
func (m MenuModel) View() string {
	if m.quitting || m.play {
		return ""
	}

	lines := []string{
		renderLogo("COLOR SWITCH"),
		"",
		"",
	}

	if m.blinkOn {
		lines = append(lines, promptStyle.Render("Press Enter to Play!"))
	} else {
		lines = append(lines, "")
	}
	lines = append(lines, "", "")

	if m.scoresErr != nil {
		lines = append(lines, mutedStyle.Render("Scores unavailable"))
	} else {
		lines = append(lines,
			scoreStyle.Render(fmt.Sprintf("Highscore: %d", m.scores.High)),
			scoreStyle.Render(fmt.Sprintf("Last Score: %d", m.scores.Last)),
		)
	}

	status := "off"
	if m.soundEnabled {
		status = "on"
	}
	lines = append(lines, "", mutedStyle.Render("Sound: "+status), "", m.help.View(m.keys))

	content := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// renderLogo spells text with each letter in the next wheel color.
func renderLogo(text string) string {
	var b strings.Builder
	i := 0
	for _, r := range text {
		if r == ' ' {
			b.WriteString("   ")
			continue
		}
		style := lipgloss.NewStyle().Foreground(palette[logoColors[i%len(logoColors)]]).Bold(true)
		b.WriteString(style.Render(string(r)))
		b.WriteRune(' ')
		i++
	}
	return strings.TrimRight(b.String(), " ")
}

// SoundEnabled returns the sound preference chosen on the menu.
func (m MenuModel) SoundEnabled() bool {
	return m.soundEnabled
}

// Play returns true if the player asked to start a run.
func (m MenuModel) Play() bool {
	return m.play
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Config       core.RuntimeConfig
	SoundEnabled bool
	Play         bool
	Quit         bool
}

// RunMenu runs the title screen and returns the player's choice.
func RunMenu(source ScoreSource, cfg core.RuntimeConfig, soundEnabled bool, opts Options) (MenuResult, error) {
	model := NewMenuModel(source, cfg, soundEnabled, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, SoundEnabled: soundEnabled}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, SoundEnabled: soundEnabled, Quit: true}, nil
	}

	result := MenuResult{
		Config:       m.Config(),
		SoundEnabled: m.SoundEnabled(),
	}
	if m.Play() {
		result.Play = true
	} else {
		result.Quit = true
	}
	return result, nil
}
