package selx

// OptionView is one dropdown row as the rendering layer sees it.
type OptionView struct {
	Label      string
	Active     bool
	Selectable bool
}

// ViewModel is the complete input to the rendering layer: everything needed
// to paint the control, nothing needed to drive it. It contains no styling;
// style classes are carried separately and passed through unchanged.
type ViewModel struct {
	Text            string
	Placeholder     string
	Disabled        bool
	DropdownVisible bool
	Selected        bool
	Options         []OptionView
}

// Project maps a selection state to its view model. Pure: no side effects,
// the input state is never modified, identical states project identically.
// Called after every state transition.
func Project(s SelectionState, cfg Config) ViewModel {
	vm := ViewModel{
		Text:        s.RawText,
		Placeholder: cfg.Placeholder,
		Disabled:    cfg.Disabled,
		Selected:    s.Mode == ModeSelected,
	}
	if s.Mode != ModeOpen {
		return vm
	}

	vm.DropdownVisible = true
	limit := len(s.Options)
	if cfg.MaxVisibleOptions > 0 && cfg.MaxVisibleOptions < limit {
		limit = cfg.MaxVisibleOptions
	}
	vm.Options = make([]OptionView, 0, limit)
	for i := 0; i < limit; i++ {
		vm.Options = append(vm.Options, OptionView{
			Label:      s.Options[i].Label,
			Active:     i == s.ActiveIndex,
			Selectable: !cfg.Disabled,
		})
	}
	return vm
}
