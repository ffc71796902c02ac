// Package bubbletea provides the terminal chat surface for a kickoff
// dialogue. It mirrors the orchestrator's transcript through events: the
// blocking turn runs in a goroutine and its events arrive over a channel,
// so the model never reads orchestrator state concurrently.
package bubbletea

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fwojciec/kickoff"
)

var _ tea.Model = Model{}

// TurnFunc runs one dialogue turn to completion, forwarding dialogue
// events to onEvent as they happen.
type TurnFunc func(ctx context.Context, text string, onEvent func(kickoff.Event)) error

// eventMsg wraps a dialogue event for the Bubble Tea update loop.
type eventMsg struct {
	event kickoff.Event
}

// turnDoneMsg signals that the in-flight turn finished.
type turnDoneMsg struct {
	err error
}

// Model is the Bubble Tea model for the kickoff TUI.
type Model struct {
	// Input is the text input component. Exported for test access.
	Input textinput.Model
	// Viewport is the scrollable transcript area. Exported for test access.
	Viewport viewport.Model

	turn   TurnFunc
	styles Styles

	msgs        []kickoff.Message
	suggestions []string
	state       kickoff.State
	step        int

	running bool
	cancel  context.CancelFunc
	eventCh chan kickoff.Event
	doneCh  chan error
	err     error
	ready   bool
}

// New creates a TUI Model driving turns through turn, seeded with the
// orchestrator's initial transcript (the welcome message).
func New(turn TurnFunc, initial []kickoff.Message, theme kickoff.Theme) Model {
	ti := textinput.New()
	ti.Placeholder = "Describe your project..."
	ti.Prompt = "> "
	ti.Focus()

	m := Model{
		Input:  ti,
		turn:   turn,
		styles: NewStyles(theme),
		msgs:   initial,
		state:  kickoff.StateGathering,
		step:   1,
	}
	if len(initial) > 0 {
		m.suggestions = initial[len(initial)-1].Suggestions
	}
	return m
}

// Err returns the last turn error, if any.
func (m Model) Err() error { return m.err }

// Running reports whether a turn is in flight.
func (m Model) Running() bool { return m.running }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Viewport = viewport.New(msg.Width, max(msg.Height-5, 1))
		m.Input.Width = msg.Width - 4
		m.ready = true
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case eventMsg:
		m.applyEvent(msg.event)
		m.refresh()
		return m, m.waitForEvent()

	case turnDoneMsg:
		m.running = false
		m.cancel = nil
		m.err = msg.err
		m.refresh()
		if m.state == kickoff.StateComplete || m.state == kickoff.StateFailed {
			return m, tea.Quit
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit
	case "enter":
		if m.running {
			return m, nil
		}
		text := strings.TrimSpace(m.Input.Value())
		if text == "" {
			return m, nil
		}
		m.Input.Reset()
		return m.startTurn(text)
	}
	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

func (m Model) startTurn(text string) (Model, tea.Cmd) {
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.running = true
	m.err = nil
	m.suggestions = nil
	m.eventCh = make(chan kickoff.Event, 64)
	m.doneCh = make(chan error, 1)

	turn, eventCh, doneCh := m.turn, m.eventCh, m.doneCh
	go func() {
		err := turn(ctx, text, func(e kickoff.Event) { eventCh <- e })
		close(eventCh)
		doneCh <- err
	}()
	return m, m.waitForEvent()
}

// waitForEvent returns a command that delivers the next dialogue event,
// or the turn result once the event channel drains.
func (m Model) waitForEvent() tea.Cmd {
	eventCh, doneCh := m.eventCh, m.doneCh
	return func() tea.Msg {
		if e, ok := <-eventCh; ok {
			return eventMsg{event: e}
		}
		return turnDoneMsg{err: <-doneCh}
	}
}

// applyEvent folds one dialogue event into the local transcript mirror.
func (m *Model) applyEvent(e kickoff.Event) {
	switch e := e.(type) {
	case kickoff.EventMessageBegin:
		m.msgs = append(m.msgs, kickoff.Message{ID: e.ID, Role: e.Role, Streaming: true})
	case kickoff.EventFragment:
		if n := len(m.msgs); n > 0 && m.msgs[n-1].Streaming {
			m.msgs[n-1].Content += e.Delta
		}
	case kickoff.EventMessageEnd:
		n := len(m.msgs)
		switch {
		case n > 0 && m.msgs[n-1].ID == e.Message.ID:
			m.msgs[n-1] = e.Message
		case n > 0 && m.msgs[n-1].Streaming:
			// A different message finished while a streaming stub was
			// still open: the turn failed and the partial was discarded.
			m.msgs[n-1] = e.Message
		default:
			m.msgs = append(m.msgs, e.Message)
		}
		m.suggestions = e.Message.Suggestions
	case kickoff.EventStateChange:
		m.state = e.State
		m.step = e.Step
	}
}

func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.Viewport.SetContent(renderTranscript(m.msgs, m.styles, m.Viewport.Width))
	m.Viewport.GotoBottom()
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}
	var sb strings.Builder
	sb.WriteString(m.Viewport.View())
	sb.WriteString("\n")
	if len(m.suggestions) > 0 && !m.running {
		sb.WriteString(m.styles.Suggestion.Render("try: "+strings.Join(m.suggestions, " | ")) + "\n")
	}
	sb.WriteString(m.statusLine() + "\n")
	sb.WriteString(m.Input.View())
	return sb.String()
}

func (m Model) statusLine() string {
	status := fmt.Sprintf("step %d/%d · %s", m.step, kickoff.StepCount, m.state)
	if m.running {
		status += " · generating..."
	}
	if m.err != nil {
		return m.styles.Error.Render(status + " · " + m.err.Error())
	}
	return m.styles.Muted.Render(status)
}

// renderTranscript renders the message log as styled lines. Pure so tests
// can exercise it without a terminal.
func renderTranscript(msgs []kickoff.Message, styles Styles, width int) string {
	var sb strings.Builder
	for i, msg := range msgs {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		switch msg.Role {
		case kickoff.RoleUser:
			label := "You"
			if msg.Source == kickoff.SourceVoice {
				label = "You (voice)"
			}
			sb.WriteString(styles.UserMsg.Render(label+":") + " " + msg.Content)
		case kickoff.RoleSystem:
			sb.WriteString(styles.System.Render(msg.Content))
		default:
			content := msg.Content
			if msg.Streaming {
				content += "▌"
			}
			sb.WriteString(styles.Assistant.Width(max(width, 20)).Render(content))
		}
	}
	return sb.String()
}
