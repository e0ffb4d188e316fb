package selx

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// View renders the control from its projected view model. The terminal
// renderer is the reference implementation of the ViewModel contract; hosts
// with their own rendering layer can call Project directly and ignore View.
func (m *Model) View() string {
	vm := Project(m.state, m.cfg)
	width := m.cfg.Width
	if width <= 0 {
		width = defaultControlWidth
	}
	return renderViewModel(vm, m.styles, m.input.View(), width)
}

func renderViewModel(vm ViewModel, s Styles, inputView string, width int) string {
	var b strings.Builder

	inputStyle := s.TextInput
	if vm.Selected {
		inputStyle = s.TextInputSelected
	}
	line := inputView
	if vm.Disabled {
		if vm.Text != "" {
			line = vm.Text
		} else {
			line = s.Placeholder.Render(vm.Placeholder)
		}
	}
	b.WriteString(applyExtra(inputStyle, s.TextInputExtra, line))

	if vm.DropdownVisible {
		rows := make([]string, 0, len(vm.Options))
		for _, o := range vm.Options {
			label := runewidth.Truncate(o.Label, width, "…")
			label = label + strings.Repeat(" ", max(0, width-runewidth.StringWidth(label)))
			if o.Active {
				rows = append(rows, s.ActiveOption.Render(label))
			} else {
				rows = append(rows, applyExtra(s.Option, s.OptionExtra, label))
			}
		}
		dropdown := lipgloss.JoinVertical(lipgloss.Left, rows...)
		b.WriteString("\n")
		b.WriteString(applyExtra(s.Dropdown, s.DropdownExtra, dropdown))
	}

	return applyExtra(s.Container, s.ContainerExtra, b.String())
}

// applyExtra renders the base class, then the extra class on top of its
// output, so hosts can augment a preset without replacing it.
func applyExtra(base, extra lipgloss.Style, text string) string {
	return extra.Render(base.Render(text))
}
