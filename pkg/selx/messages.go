package selx

import (
	tea "charm.land/bubbletea/v2"
)

// ChangeMsg is the outward notification emitted once per settled debounce
// period: the user's query text, addressed by instance identity. It is
// fire-and-forget; the host is expected to eventually answer with an
// OptionsMsg for the same identity.
//
// Token increases monotonically per instance. A host that echoes it back in
// OptionsMsg.Token gets stale option batches dropped; a host that leaves the
// token zero keeps the simpler always-overwrite behavior.
type ChangeMsg struct {
	ID    Identity
	Text  string
	Token uint64
}

// OptionsMsg delivers a host-computed option batch to the owning instance.
// Raw accepts every shape Normalize understands.
//
// With Token zero every batch is authoritative for "now" and overwrites the
// current list, which means a slow reply to an old query can clobber a faster
// reply to a newer one unless the host serializes its replies. Echoing
// ChangeMsg.Token closes that race: batches with a non-zero token older than
// the latest issued query are dropped.
type OptionsMsg struct {
	ID    Identity
	Raw   any
	Token uint64
}

// FieldChangeMsg is the host form's standard field-change notification,
// emitted exactly once per successful selection. TextInputValue belongs in
// the field named by ID.TextField(), FieldValue in ID.ValueField().
type FieldChangeMsg struct {
	ID             Identity
	TextInputValue string
	FieldValue     string
}

// HoverOptionMsg is a pointer event from the rendering layer: the pointer is
// over the option at Index. Ignored unless the dropdown is open.
type HoverOptionMsg struct {
	ID    Identity
	Index int
}

// ClickOptionMsg is a pointer event from the rendering layer: the option at
// Index was clicked. Equivalent to navigating to it and pressing enter.
type ClickOptionMsg struct {
	ID    Identity
	Index int
}

// FocusMsg reports that the text input regained focus. While an option is
// selected this is the undo gesture: the selection is cleared and the text
// becomes editable again.
type FocusMsg struct {
	ID Identity
}

// queryDebounceMsg is delivered after the quiet period elapses. Seq is
// compared against the latest issued sequence so only the newest pending text
// survives; superseded deliveries are dropped on arrival.
type queryDebounceMsg struct {
	id   Identity
	seq  uint64
	text string
}

// ApplyOptions wraps a host-computed option batch in a command, for hosts
// that produce options inside their own Update loop.
func ApplyOptions(id Identity, raw any) tea.Cmd {
	return func() tea.Msg {
		return OptionsMsg{ID: id, Raw: raw}
	}
}

// ApplyOptionsToken is ApplyOptions with the ChangeMsg token echoed back,
// enabling stale-reply protection.
func ApplyOptionsToken(id Identity, raw any, token uint64) tea.Cmd {
	return func() tea.Msg {
		return OptionsMsg{ID: id, Raw: raw, Token: token}
	}
}
