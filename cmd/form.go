package cmd

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/go-logr/logr"

	"github.com/oakwood-commons/selx/internal/matcher"
	"github.com/oakwood-commons/selx/pkg/selx"
)

// formField pairs a mounted live-select instance with the dataset the host
// searches for it. The control itself never sees the full dataset; it only
// receives the filtered batches the host sends back.
type formField struct {
	title string
	ctl   *selx.Model
	opts  []selx.Option
}

// formModel is the demo host: a small form with live-select fields. It owns
// the registry, answers change notifications by filtering each field's
// dataset, and records the field-change signals a real form would submit.
type formModel struct {
	log     *logr.Logger
	reg     *selx.Registry
	fields  []*formField
	focus   int
	match   *matcher.Matcher
	latency time.Duration

	// values holds the form's submitted state, keyed by the protocol's
	// field naming convention.
	values map[string]string

	width  int
	height int
}

func newFormModel(log *logr.Logger, match *matcher.Matcher, latency time.Duration, fields ...*formField) (*formModel, error) {
	reg := selx.NewRegistry(log)
	for _, f := range fields {
		if err := reg.Mount(f.ctl); err != nil {
			return nil, err
		}
	}
	return &formModel{
		log:     log,
		reg:     reg,
		fields:  fields,
		match:   match,
		latency: latency,
		values:  make(map[string]string),
	}, nil
}

func (m *formModel) fieldFor(id selx.Identity) *formField {
	for _, f := range m.fields {
		if f.ctl.ID() == id {
			return f
		}
	}
	return nil
}

func (m *formModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, f := range m.fields {
		cmds = append(cmds, f.ctl.Init())
	}
	return tea.Batch(cmds...)
}

func (m *formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.focus = (m.focus + 1) % len(m.fields)
			cmd, _ := m.reg.Route(selx.FocusMsg{ID: m.fields[m.focus].ctl.ID()})
			return m, cmd
		}
		return m, m.fields[m.focus].ctl.Update(msg)

	case selx.ChangeMsg:
		return m, m.searchCmd(msg)

	case selx.FieldChangeMsg:
		m.values[msg.ID.ValueField()] = msg.FieldValue
		m.values[msg.ID.TextField()] = msg.TextInputValue
		return m, nil
	}

	cmd, _ := m.reg.Route(msg)
	return m, cmd
}

// searchCmd is the host's half of the change notification protocol: filter
// the field's dataset out of band and answer with an options batch. The
// ChangeMsg token is echoed so artificially delayed replies (--latency) to
// superseded queries get dropped instead of clobbering newer results.
func (m *formModel) searchCmd(ev selx.ChangeMsg) tea.Cmd {
	f := m.fieldFor(ev.ID)
	if f == nil {
		return nil
	}
	match := m.match
	latency := m.latency
	opts := f.opts
	log := m.log
	return func() tea.Msg {
		if latency > 0 {
			time.Sleep(latency)
		}
		filtered, err := match.Filter(opts, ev.Text)
		if err != nil {
			log.Error(err, "option search failed", "identity", ev.ID.String())
			filtered = []selx.Option{}
		}
		return selx.OptionsMsg{ID: ev.ID, Raw: filtered, Token: ev.Token}
	}
}

var (
	formTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	fieldTitle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	focusMarker    = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))
	valuesStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func (m *formModel) View() tea.View {
	sections := []string{formTitleStyle.Render("selx demo form")}

	for i, f := range m.fields {
		marker := "  "
		if i == m.focus {
			marker = focusMarker.Render("> ")
		}
		sections = append(sections,
			marker+fieldTitle.Render(f.title),
			f.ctl.View(),
		)
	}

	if len(m.values) > 0 {
		lines := []string{"submitted fields:"}
		for _, f := range m.fields {
			id := f.ctl.ID()
			if v, ok := m.values[id.ValueField()]; ok {
				lines = append(lines, "  "+id.ValueField()+" = "+v)
				lines = append(lines, "  "+id.TextField()+" = "+m.values[id.TextField()])
			}
		}
		sections = append(sections, valuesStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	}

	sections = append(sections, helpStyle.Render("type to search · up/down navigate · enter choose · esc close · tab next field · ctrl+c quit"))

	return tea.NewView(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
