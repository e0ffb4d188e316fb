package selx

import (
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/go-logr/logr"

	"github.com/oakwood-commons/selx/pkg/logger"
)

// Mode is the lifecycle state of one live-select instance.
type Mode int

const (
	// ModeIdle: no pending query, no options, no selection.
	ModeIdle Mode = iota
	// ModeTyping: the user is entering text and the debounce has not
	// settled (or the host has not answered yet).
	ModeTyping
	// ModeOpen: an option list is present and visible, nothing chosen.
	ModeOpen
	// ModeSelected: one option chosen, text input shows its label, list
	// hidden.
	ModeSelected
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeTyping:
		return "typing"
	case ModeOpen:
		return "open"
	case ModeSelected:
		return "selected"
	}
	return "unknown"
}

// SelectionState is the full in-memory state of one instance. It is owned by
// the Model and mutated only inside Update; callers get copies.
type SelectionState struct {
	Mode        Mode
	Options     []Option
	ActiveIndex int // -1 when no option is highlighted
	Selected    *Option
	RawText     string
}

// Model is one live-select instance: a text input whose debounced content is
// emitted to the host as a ChangeMsg, and a dropdown fed back by the host via
// OptionsMsg. All state mutation happens in Update on the hosting program's
// event loop; the Model itself performs no I/O and holds no goroutines.
type Model struct {
	id     Identity
	cfg    Config
	styles Styles
	log    *logr.Logger

	state SelectionState
	input textinput.Model

	// debounceSeq identifies the newest pending quiet-period timer; stale
	// deliveries carry an older value and are dropped.
	debounceSeq uint64
	// queryToken identifies the newest emitted ChangeMsg, for optional
	// stale-reply protection on inbound option batches.
	queryToken uint64
}

const defaultControlWidth = 40

// New mounts a live-select instance. The identity must be unique for the
// host session. Invalid configuration fails the mount with a
// *ConfigurationError; there is no degraded mode.
func New(id Identity, cfg Config) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = cfg.Placeholder
	ti.CharLimit = 500
	width := cfg.Width
	if width <= 0 {
		width = defaultControlWidth
	}
	ti.SetWidth(width)
	if !cfg.Disabled {
		ti.Focus()
	}

	return &Model{
		id:     id,
		cfg:    cfg,
		styles: cfg.resolveStyles(),
		log:    logger.GetNoopLogger(),
		state:  SelectionState{Mode: ModeIdle, ActiveIndex: -1},
		input:  ti,
	}, nil
}

// SetLogger attaches a logger for contained faults (rejected option batches,
// dropped stale replies). The default is a noop logger.
func (m *Model) SetLogger(log *logr.Logger) {
	if log != nil {
		m.log = log
	}
}

// ID returns the instance identity.
func (m *Model) ID() Identity { return m.id }

// State returns a copy of the current selection state. The Options slice is
// shared and must be treated as read-only.
func (m *Model) State() SelectionState { return m.state }

// Init implements the Bubble Tea component contract.
func (m *Model) Init() tea.Cmd {
	if m.cfg.Disabled {
		return nil
	}
	return textinput.Blink
}

// Update applies one event to the state machine and returns any follow-up
// command (debounce timers, outward notifications). It must be called from a
// single event-processing context; the Model is not safe for parallel use.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case queryDebounceMsg:
		if msg.id != m.id {
			return nil
		}
		return m.handleDebounceSettled(msg)
	case OptionsMsg:
		return m.handleOptions(msg)
	case HoverOptionMsg:
		if msg.ID != m.id {
			return nil
		}
		if m.state.Mode == ModeOpen && msg.Index >= 0 && msg.Index < len(m.state.Options) {
			m.state.ActiveIndex = msg.Index
		}
		return nil
	case ClickOptionMsg:
		if msg.ID != m.id {
			return nil
		}
		return m.choose(msg.Index)
	case FocusMsg:
		if msg.ID != m.id {
			return nil
		}
		return m.handleFocus()
	case tea.KeyMsg:
		if m.cfg.Disabled {
			return nil
		}
		return m.handleKey(msg)
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.state.Mode == ModeOpen {
		switch msg.String() {
		case "down":
			m.moveActive(1)
			return nil
		case "up":
			m.moveActive(-1)
			return nil
		case "enter":
			return m.choose(m.state.ActiveIndex)
		case "esc":
			m.resetToIdle()
			return nil
		}
	}
	return m.handleKeystroke(msg)
}

// handleKeystroke feeds a key into the text input and restarts the debounce
// when the text actually changed. A keystroke while an option is selected
// first undoes the selection.
func (m *Model) handleKeystroke(msg tea.KeyMsg) tea.Cmd {
	if m.state.Mode == ModeSelected {
		m.undoSelection()
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)

	text := m.input.Value()
	if text == m.state.RawText {
		return inputCmd
	}

	m.state.RawText = text
	m.state.Selected = nil
	m.state.Mode = ModeTyping
	return tea.Batch(inputCmd, m.scheduleDebounce(text))
}

// scheduleDebounce starts (or restarts) the quiet-period timer. Restarting
// bumps the sequence, which invalidates every earlier pending delivery:
// last write wins.
func (m *Model) scheduleDebounce(text string) tea.Cmd {
	m.debounceSeq++
	seq := m.debounceSeq
	id := m.id
	delay := time.Duration(m.cfg.DebounceMs) * time.Millisecond
	return func() tea.Msg {
		time.Sleep(delay)
		return queryDebounceMsg{id: id, seq: seq, text: text}
	}
}

func (m *Model) handleDebounceSettled(msg queryDebounceMsg) tea.Cmd {
	if msg.seq != m.debounceSeq {
		return nil // superseded by a newer keystroke
	}
	if len([]rune(msg.text)) >= m.cfg.UpdateMinLen {
		m.queryToken++
		ev := ChangeMsg{ID: m.id, Text: msg.text, Token: m.queryToken}
		return func() tea.Msg { return ev }
	}
	// Below the minimum length: clear options and close deterministically,
	// even if the dropdown was open.
	m.state.Options = nil
	m.state.ActiveIndex = -1
	m.state.Selected = nil
	m.state.Mode = ModeIdle
	return nil
}

func (m *Model) handleOptions(msg OptionsMsg) tea.Cmd {
	if msg.ID != m.id {
		return nil
	}
	if msg.Token != 0 && msg.Token < m.queryToken {
		m.log.V(1).Info("dropping stale options batch",
			"component", m.id.String(), "token", msg.Token, "latest", m.queryToken)
		return nil
	}
	opts, err := Normalize(msg.Raw)
	if err != nil {
		// Keep the last valid list rather than rendering a corrupt one.
		m.log.Error(err, "rejecting options batch", "component", m.id.String())
		return nil
	}

	m.state.Options = opts
	if len(opts) > 0 {
		m.state.ActiveIndex = 0
	} else {
		m.state.ActiveIndex = -1
	}
	// Options open the list only while the user is mid-interaction; a batch
	// arriving in Idle or Selected replaces the list without reopening.
	if m.state.Mode == ModeTyping || m.state.Mode == ModeOpen {
		m.state.Mode = ModeOpen
	}
	return nil
}

// moveActive advances or retreats the highlight with wraparound. No-op on an
// empty list.
func (m *Model) moveActive(delta int) {
	n := len(m.state.Options)
	if n == 0 {
		return
	}
	i := m.state.ActiveIndex
	if i < 0 {
		i = 0
	}
	m.state.ActiveIndex = ((i+delta)%n + n) % n
}

// choose commits the option at index: the selection is recorded, the text
// input shows its label, the list closes and the host's standard field-change
// notification fires exactly once. Out-of-range indexes and choices outside
// ModeOpen are no-ops, which also makes a repeated choose idempotent.
func (m *Model) choose(index int) tea.Cmd {
	if m.state.Mode != ModeOpen || index < 0 || index >= len(m.state.Options) {
		return nil
	}
	opt := m.state.Options[index]
	serialized, err := opt.SerializedValue()
	if err != nil {
		m.log.Error(err, "cannot serialize chosen option", "component", m.id.String(), "label", opt.Label)
		return nil
	}

	m.state.Selected = &opt
	m.state.RawText = opt.Label
	m.state.Mode = ModeSelected
	m.state.Options = nil
	m.state.ActiveIndex = -1
	m.input.SetValue(opt.Label)
	m.input.SetCursor(len(opt.Label))
	m.input.Blur()

	ev := FieldChangeMsg{ID: m.id, TextInputValue: opt.Label, FieldValue: serialized}
	return func() tea.Msg { return ev }
}

// handleFocus re-focuses the text input. From ModeSelected this is the undo
// gesture; previously delivered options stay discarded and a fresh query is
// required to reopen the list.
func (m *Model) handleFocus() tea.Cmd {
	if m.cfg.Disabled {
		return nil
	}
	if m.state.Mode == ModeSelected {
		m.undoSelection()
		return textinput.Blink
	}
	m.input.Focus()
	return textinput.Blink
}

func (m *Model) undoSelection() {
	m.state.Selected = nil
	m.state.Options = nil
	m.state.ActiveIndex = -1
	if m.state.RawText == "" {
		m.state.Mode = ModeIdle
	} else {
		m.state.Mode = ModeTyping
	}
	m.input.Focus()
	m.input.SetCursor(len(m.input.Value()))
}

func (m *Model) resetToIdle() {
	m.state = SelectionState{Mode: ModeIdle, ActiveIndex: -1}
	m.input.SetValue("")
	m.input.SetCursor(0)
}
