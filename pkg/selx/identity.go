package selx

// Identity uniquely scopes one live-select instance within a host session.
// It is assigned at mount time, stays stable for the life of the instance and
// is never reused across instances. All protocol messages carry an Identity so
// multiple controls on one form never cross-talk.
type Identity struct {
	Component string // unique id of the control instance
	Field     string // form field the control binds to
}

// ValueField returns the name of the hidden form field that receives the
// serialized value of the chosen option.
func (id Identity) ValueField() string { return id.Field }

// TextField returns the name of the visible text input bound to this control.
// This method is the single place the "_text_input" naming convention lives;
// alternate schemes only need to touch this file.
func (id Identity) TextField() string { return id.Field + "_text_input" }

func (id Identity) String() string { return id.Component + "/" + id.Field }
