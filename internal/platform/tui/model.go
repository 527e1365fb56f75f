package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/toroarcade/torosnake/internal/audio"
	"github.com/toroarcade/torosnake/internal/core"
	"github.com/toroarcade/torosnake/internal/snake"
	"github.com/toroarcade/torosnake/internal/storage"
)

// maxFrameLag caps the accumulated simulation debt after a stall (terminal
// suspend, heavy resize) so the game skips time instead of fast-forwarding.
const maxFrameLag = 250 * time.Millisecond

// Model is the Bubble Tea model that runs the game. Rendering happens at
// renderRate while the simulation advances at cfg.FPS; an accumulator
// converts elapsed wall time into whole simulation steps.
type Model struct {
	game      *snake.Game
	screen    *core.Screen
	store     *storage.Store
	sessionID int64
	audio     audio.Player
	cfg       core.RuntimeConfig
	keys      KeyMap
	help      help.Model

	inputFrame core.InputFrame
	gameState  core.GameState

	last     time.Time
	acc      time.Duration
	period   time.Duration
	quitting bool
}

// NewModel creates a new model for the given game. The game is reset here
// so that the recorded session seed matches the first simulated tick. A nil
// store disables recording; sessionID is ignored in that case.
//
// cfg.ScreenH is the height available to the game; the caller reserves one
// terminal row below it for the help line.
func NewModel(game *snake.Game, store *storage.Store, sessionID int64, player audio.Player, cfg core.RuntimeConfig) Model {
	if player == nil {
		player = audio.Nop{}
	}

	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		sessionID:  sessionID,
		audio:      player,
		cfg:        cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		period:     time.Second / time.Duration(cfg.FPS),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Actions accumulate in the input frame
// until the next simulation step consumes them.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	if action == core.ActionQuit {
		m.finishSession()
		m.quitting = true
		return m, tea.Quit
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The playfield geometry is
// fixed for the session; the game only re-checks whether it still fits.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.cfg.ScreenW = msg.Width
	m.cfg.ScreenH = msg.Height - 1 // help line
	m.screen.Resize(m.cfg.ScreenW, m.cfg.ScreenH)
	m.game.Resize(m.cfg.ScreenW, m.cfg.ScreenH)
	m.help.Width = msg.Width
	return m, nil
}

// handleFrame advances the accumulator and runs however many simulation
// steps the elapsed time covers.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if m.last.IsZero() {
		m.last = now
	}
	m.acc += now.Sub(m.last)
	m.last = now
	if m.acc > maxFrameLag {
		m.acc = maxFrameLag
	}

	for m.acc >= m.period {
		m.acc -= m.period
		m.step()
	}

	return m, frameCmd()
}

// step runs one fixed simulation tick: records pending inputs, steps the
// game, and fires audio cues for the resulting events.
func (m *Model) step() {
	if m.store != nil {
		for action := range m.inputFrame.Actions {
			//nolint:errcheck // Best-effort recording, game continues regardless
			m.store.RecordInput(m.sessionID, m.game.Tick()+1, action)
		}
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, ev := range result.Events {
		switch ev {
		case core.EventAteFood:
			m.audio.PlayEat()
		case core.EventGameOver:
			m.audio.PlayGameOver()
		}
	}

	m.inputFrame.Clear()
}

// finishSession closes out the recorded session with the final tick count
// and phase.
func (m *Model) finishSession() {
	if m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save on exit
	m.store.FinishSession(m.sessionID, m.game.Tick(), m.gameState.Phase.String())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the given game and blocks until the
// player quits.
func Run(game *snake.Game, store *storage.Store, sessionID int64, player audio.Player, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, sessionID, player, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
