// Package tui hosts the modal presenter in a terminal. The Bubble Tea update
// loop is the presenter's control-flow queue: every message drains the
// queue, and frame ticks step the animation scheduler.
package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/modal/pkg/animation"
	"github.com/go-drift/modal/pkg/gestures"
	"github.com/go-drift/modal/pkg/graphics"
	"github.com/go-drift/modal/pkg/platform"
	"github.com/go-drift/modal/pkg/presenter"
)

const headerRows = 1

// DefaultPanelSize is the panel size in cells.
var DefaultPanelSize = graphics.Size{Width: 28, Height: 7}

// Options configures a Model.
type Options struct {
	Config    presenter.Config
	Title     string
	PanelSize graphics.Size
	// Clock drives animations. Nil uses the system clock.
	Clock  animation.Clock
	Logger *slog.Logger
}

type frameMsg time.Time

// Model is the Bubble Tea model of the demo screen.
type Model struct {
	keys  keyMap
	help  help.Model
	title string

	queue     *platform.Queue
	scheduler *animation.Scheduler
	presenter *presenter.Presenter
	host      *Host
	panel     *Panel

	// pointer is the handler that took the current mouse press.
	pointer gestures.PointerHandler
	status  string
	width   int
	height  int
}

// NewModel returns a model with an idle presenter.
func NewModel(opts Options) *Model {
	if opts.PanelSize == (graphics.Size{}) {
		opts.PanelSize = DefaultPanelSize
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Title == "" {
		opts.Title = "modal"
	}

	queue := platform.NewQueue()
	scheduler := animation.NewScheduler(opts.Clock)
	m := &Model{
		keys:      defaultKeyMap(),
		help:      help.New(),
		title:     opts.Title,
		queue:     queue,
		scheduler: scheduler,
		presenter: presenter.New(opts.Config, queue, scheduler, presenter.WithLogger(opts.Logger)),
		host:      NewHost(graphics.Size{Width: 80, Height: 22}),
		panel:     NewPanel("modal", opts.PanelSize),
		status:    "idle",
	}
	m.centerPanel()
	return m
}

// Presenter returns the presenter driven by the model.
func (m *Model) Presenter() *presenter.Presenter { return m.presenter }

// Panel returns the presented panel.
func (m *Model) Panel() *Panel { return m.panel }

// Host returns the host area.
func (m *Model) Host() *Host { return m.host }

func tick() tea.Cmd {
	return tea.Tick(platform.DefaultFrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *Model) Init() tea.Cmd {
	return tick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.resize()
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case frameMsg:
		m.scheduler.Step()
		cmd = tick()
	}
	m.queue.RunPending()
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.presenter.Close()
		return tea.Quit
	case key.Matches(msg, m.keys.Leading):
		m.toggle(presenter.Leading)
	case key.Matches(msg, m.keys.Trailing):
		m.toggle(presenter.Trailing)
	case key.Matches(msg, m.keys.Top):
		m.toggle(presenter.Top)
	case key.Matches(msg, m.keys.Bottom):
		m.toggle(presenter.Bottom)
	case key.Matches(msg, m.keys.Dismiss):
		m.presenter.Dismiss(m.report("idle"))
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
	}
	return nil
}

// toggle presents the panel from edge, or dismisses it if it is up.
func (m *Model) toggle(edge presenter.Edge) {
	if m.panel.Attached() {
		m.presenter.Dismiss(m.report("idle"))
		return
	}
	m.status = "presenting from " + edge.String()
	m.presenter.Present(m.panel, m.host, edge, m.report("presented from "+edge.String()))
}

func (m *Model) report(status string) func() {
	return func() { m.status = status }
}

// handleMouse routes left-button drags to the panel under the press.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	pos := graphics.Offset{X: float64(msg.X), Y: float64(msg.Y - headerRows)}
	var phase gestures.PointerPhase
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.pointer = m.host.HitTest(pos)
		phase = gestures.PointerPhaseDown
	case tea.MouseActionMotion:
		phase = gestures.PointerPhaseMove
	case tea.MouseActionRelease:
		phase = gestures.PointerPhaseUp
	default:
		return
	}

	h := m.pointer
	if h == nil {
		return
	}
	if phase == gestures.PointerPhaseUp {
		m.pointer = nil
	}
	m.queue.Dispatch(func() {
		h.HandlePointer(gestures.PointerEvent{PointerID: 1, Position: pos, Phase: phase})
	})
}

// resize fits the host between the header and the help footer.
func (m *Model) resize() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	footer := lipgloss.Height(m.help.View(m.keys))
	height := max(m.height-headerRows-footer, 1)
	m.host.SetSize(graphics.Size{Width: float64(m.width), Height: float64(height)})
	if !m.panel.Attached() {
		m.centerPanel()
	}
}

func (m *Model) centerPanel() {
	b := m.host.Bounds()
	m.panel.SetCenter(b.Center())
}

func (m *Model) View() string {
	header := titleStyle.Render(m.title) + "  " + statusStyle.Render(m.status)
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		Render(m.host),
		m.help.View(m.keys),
	)
}
