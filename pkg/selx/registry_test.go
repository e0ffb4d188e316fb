package selx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mountPair(t *testing.T) (*Registry, *Model, *Model) {
	t.Helper()
	reg := NewRegistry(nil)
	origin := newTestModel(t)
	dest, err := New(Identity{Component: "other", Field: "city"}, DefaultConfig())
	require.NoError(t, err)
	require.NoError(t, reg.Mount(origin))
	require.NoError(t, reg.Mount(dest))
	return reg, origin, dest
}

func TestRouteIsolatesInstancesSharingAField(t *testing.T) {
	reg, origin, dest := mountPair(t)

	// Both instances bind the field "city"; only the component id differs.
	// A batch addressed to one must never leak into the other.
	typeText(origin, "ber")
	settle(origin)
	_, routed := reg.Route(OptionsMsg{ID: origin.ID(), Raw: []any{"Berlin"}})
	assert.True(t, routed)

	assert.Len(t, origin.State().Options, 1)
	assert.Empty(t, dest.State().Options)
	assert.Equal(t, ModeIdle, dest.State().Mode)
}

func TestFannedOutDeliveriesStayIsolated(t *testing.T) {
	_, origin, dest := mountPair(t)

	// A host may skip the registry and hand every message to every control.
	// Type into both so their sequence counters coincide, then deliver
	// origin's settled debounce to both controls.
	typeText(origin, "ber")
	typeText(dest, "par")
	require.Equal(t, origin.debounceSeq, dest.debounceSeq)

	settled := queryDebounceMsg{id: origin.ID(), seq: origin.debounceSeq, text: "ber"}
	assert.Nil(t, dest.Update(settled), "a foreign delivery must not settle here")

	cmd := origin.Update(settled)
	require.NotNil(t, cmd)
	ev, ok := cmd().(ChangeMsg)
	require.True(t, ok)
	assert.Equal(t, origin.ID(), ev.ID)
	assert.Equal(t, "ber", ev.Text)

	// dest's own pending delivery is still the only one that can settle it.
	cmd = dest.Update(queryDebounceMsg{id: dest.ID(), seq: dest.debounceSeq, text: "par"})
	require.NotNil(t, cmd)
	ev, ok = cmd().(ChangeMsg)
	require.True(t, ok)
	assert.Equal(t, dest.ID(), ev.ID)
	assert.Equal(t, "par", ev.Text)
}

func TestFannedOutPointerAndFocusMessagesStayIsolated(t *testing.T) {
	_, origin, dest := mountPair(t)
	typeText(origin, "ber")
	settle(origin)
	origin.Update(OptionsMsg{ID: origin.ID(), Raw: []any{"Berlin", "Bern"}})
	require.Equal(t, ModeOpen, origin.State().Mode)

	origin.Update(HoverOptionMsg{ID: dest.ID(), Index: 1})
	assert.Equal(t, 0, origin.State().ActiveIndex, "foreign hover must not move the highlight")

	assert.Nil(t, origin.Update(ClickOptionMsg{ID: dest.ID(), Index: 0}))
	assert.Equal(t, ModeOpen, origin.State().Mode, "foreign click must not choose")

	dest.Update(FocusMsg{ID: origin.ID()})
	assert.Equal(t, ModeIdle, dest.State().Mode, "foreign focus must not touch the instance")
}

func TestRouteUnknownIdentityIsDropped(t *testing.T) {
	reg, _, _ := mountPair(t)
	cmd, routed := reg.Route(OptionsMsg{ID: Identity{Component: "ghost", Field: "city"}, Raw: []any{"x"}})
	assert.Nil(t, cmd)
	assert.False(t, routed)
}

func TestRouteIgnoresForeignMessages(t *testing.T) {
	reg, _, _ := mountPair(t)
	cmd, routed := reg.Route("not a protocol message")
	assert.Nil(t, cmd)
	assert.False(t, routed)
}

func TestMountDuplicateIdentityFails(t *testing.T) {
	reg := NewRegistry(nil)
	m := newTestModel(t)
	require.NoError(t, reg.Mount(m))

	dup, err := New(m.ID(), DefaultConfig())
	require.NoError(t, err)
	err = reg.Mount(dup)
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "Identity", cfgErr.Field)
	assert.Equal(t, 1, reg.Len())
}

func TestUnmountDropsLateDeliveries(t *testing.T) {
	reg, origin, _ := mountPair(t)

	typeText(origin, "ber")
	pending := queryDebounceMsg{id: origin.ID(), seq: origin.debounceSeq, text: "ber"}

	reg.Unmount(origin.ID())
	assert.Equal(t, 1, reg.Len())

	// The timer that was still in flight lands after unmount; nothing left
	// to receive it.
	cmd, routed := reg.Route(pending)
	assert.Nil(t, cmd)
	assert.False(t, routed)

	cmd, routed = reg.Route(OptionsMsg{ID: origin.ID(), Raw: []any{"late"}})
	assert.Nil(t, cmd)
	assert.False(t, routed)
}

func TestRegistryGet(t *testing.T) {
	reg, origin, _ := mountPair(t)
	got, ok := reg.Get(origin.ID())
	require.True(t, ok)
	assert.Same(t, origin, got)

	_, ok = reg.Get(Identity{Component: "ghost", Field: "city"})
	assert.False(t, ok)
}

func TestRouteDebounceThroughRegistry(t *testing.T) {
	reg, origin, _ := mountPair(t)
	typeText(origin, "ber")

	cmd, routed := reg.Route(queryDebounceMsg{id: origin.ID(), seq: origin.debounceSeq, text: "ber"})
	require.True(t, routed)
	require.NotNil(t, cmd)
	ev, ok := cmd().(ChangeMsg)
	require.True(t, ok)
	assert.Equal(t, "ber", ev.Text)
}
