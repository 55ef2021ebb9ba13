package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappycat/internal/config"
	"github.com/vovakirdan/flappycat/internal/core"
	"github.com/vovakirdan/flappycat/internal/flappy"
)

// AudioDriver is the sound output the model drives each frame.
type AudioDriver interface {
	flappy.AudioSink
	Start()
	Stop()
	Close()
}

// Rows reserved outside the playfield: the HUD above and key help below.
const (
	hudRows  = 1
	helpRows = 1
)

// Model is the Bubble Tea model running a single flappycat session.
type Model struct {
	run       *run
	screen    *core.Screen
	audio     AudioDriver
	keys      KeyMap
	help      help.Model
	logger    *log.Logger
	config    core.RuntimeConfig
	lastFrame time.Time
	quitting  bool
}

// NewModel creates the model and its first, stopped game.
func NewModel(cfg config.FlappyConfig, rc core.RuntimeConfig, audio AudioDriver, logger *log.Logger) (Model, error) {
	r, err := newRun(cfg, rc.Seed, logger)
	if err != nil {
		return Model{}, err
	}

	return Model{
		run:    r,
		screen: core.NewScreen(rc.ScreenW, core.Max(0, rc.ScreenH-helpRows)),
		audio:  audio,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
		config: rc,
	}, nil
}

// State returns the session's score, best and run flags.
func (m Model) State() core.GameState {
	return m.run.state()
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
// Flaps are applied immediately; the frame loop never runs concurrently.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action != core.ActionNone {
		m.logger.Debug("input", "key", msg.String(), "action", action.String())
	}

	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.audio.Stop()
		return m, tea.Quit

	case core.ActionFlap:
		switch {
		case m.run.over:
			// A finished run only restarts through reset
		case !m.run.running:
			m.run.start()
			m.lastFrame = time.Time{}
			m.audio.Start()
		default:
			m.run.game.Flap()
		}

	case core.ActionReset:
		if err := m.run.reset(); err != nil {
			m.logger.Error("reset failed", "err", err)
			return m, nil
		}
		m.lastFrame = time.Time{}
		m.audio.Stop()

	case core.ActionScreenshot:
		m.saveScreenshot()
	}

	return m, nil
}

// handleResize processes window resize events.
// The simulation works in normalized space, so a resize never touches it.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(0, msg.Height-helpRows))
	m.help.Width = msg.Width
	m.logger.Debug("resized", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick advances the simulation by the time elapsed since the previous frame.
// The first frame of a run only records its timestamp.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.run.running && !m.run.over {
		if !m.lastFrame.IsZero() {
			if dt := now.Sub(m.lastFrame).Seconds(); dt > 0 {
				m.run.game.Advance(dt)
			}
		}
		m.lastFrame = now

		if m.run.over {
			m.audio.Stop()
		} else {
			m.run.game.RenderAudio(m.audio)
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// playfield returns the screen area the game is drawn into.
func (m Model) playfield() core.Rect {
	return core.NewRect(0, hudRows, m.screen.Width(), core.Max(0, m.screen.Height()-hudRows))
}

// draw renders the HUD, the game and any overlay into the screen buffer.
func (m Model) draw() {
	m.screen.Clear()

	area := m.playfield()
	m.run.game.Render(screenSink{screen: m.screen, area: area}, float64(area.W), float64(area.H))

	st := m.run.state()
	m.screen.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", st.Score), core.ColorBrightWhite)
	best := fmt.Sprintf("Best: %d", st.Best)
	m.screen.DrawTextColored(m.screen.Width()-len(best)-1, 0, best, core.ColorGray)

	switch {
	case st.GameOver:
		m.drawMessageBox(area, "GAME OVER", fmt.Sprintf("Score: %d | R to restart", st.Score))
	case !st.Running:
		m.drawMessageBox(area, "FLAPPYCAT", "Press SPACE to start")
	}
}

// drawMessageBox draws a centered box with a title and a hint line.
func (m Model) drawMessageBox(area core.Rect, title, hint string) {
	boxW := core.Max(len(title), len([]rune(hint))) + 4
	boxH := 4
	if boxW > area.W || boxH > area.H {
		return
	}

	box := core.NewRect((m.screen.Width()-boxW)/2, area.Y+(area.H-boxH)/2, boxW, boxH)
	m.screen.DrawRect(box, ' ', core.ColorDefault)
	m.screen.DrawBox(box)
	m.screen.DrawTextCentered(box.Y+1, title, core.ColorBrightYellow)
	m.screen.DrawTextCentered(box.Y+2, hint, core.ColorWhite)
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".flappycat", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("flappycat_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(cfg config.FlappyConfig, rc core.RuntimeConfig, audio AudioDriver, logger *log.Logger) error {
	model, err := NewModel(cfg, rc, audio, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
