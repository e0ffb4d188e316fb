package selx

import (
	tea "charm.land/bubbletea/v2"
	"github.com/go-logr/logr"

	"github.com/oakwood-commons/selx/pkg/logger"
)

// Registry is the hosting program's table of live instances, keyed by
// identity. Instances are inserted at mount and removed at unmount; the
// component core never reaches into the table itself, it only receives
// routed calls.
//
// The registry is meant to be driven from a single event-processing context
// (a Bubble Tea Update loop); it is not safe for parallel use.
type Registry struct {
	log       *logr.Logger
	instances map[Identity]*Model
}

// NewRegistry returns an empty registry. A nil logger falls back to noop.
func NewRegistry(log *logr.Logger) *Registry {
	if log == nil {
		log = logger.GetNoopLogger()
	}
	return &Registry{
		log:       log,
		instances: make(map[Identity]*Model),
	}
}

// Mount registers a live instance. Identities are never reused, so mounting
// a duplicate is a host bug and fails.
func (r *Registry) Mount(m *Model) error {
	id := m.ID()
	if _, exists := r.instances[id]; exists {
		return &ConfigurationError{Field: "Identity", Reason: "identity " + id.String() + " already mounted"}
	}
	r.instances[id] = m
	m.SetLogger(r.log)
	return nil
}

// Unmount removes an instance. Pending debounce deliveries and late
// OptionsMsg calls for its identity are dropped from then on.
func (r *Registry) Unmount(id Identity) {
	delete(r.instances, id)
}

// Get looks up a live instance.
func (r *Registry) Get(id Identity) (*Model, bool) {
	m, ok := r.instances[id]
	return m, ok
}

// Len reports the number of live instances.
func (r *Registry) Len() int { return len(r.instances) }

// Route dispatches an identity-addressed protocol message to its owning
// instance and returns that instance's follow-up command. Messages for
// unknown identities (for example an instance that already unmounted) are
// logged and dropped; messages the protocol does not know are ignored.
// The second return value reports whether the message was routed.
func (r *Registry) Route(msg tea.Msg) (tea.Cmd, bool) {
	var id Identity
	switch v := msg.(type) {
	case OptionsMsg:
		id = v.ID
	case HoverOptionMsg:
		id = v.ID
	case ClickOptionMsg:
		id = v.ID
	case FocusMsg:
		id = v.ID
	case queryDebounceMsg:
		id = v.id
	default:
		return nil, false
	}

	inst, ok := r.instances[id]
	if !ok {
		r.log.V(1).Info("dropping message for unknown identity",
			"identity", id.String(), "error", ErrUnknownIdentity.Error())
		return nil, false
	}
	return inst.Update(msg), true
}
