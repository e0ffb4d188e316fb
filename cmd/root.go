package cmd

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/oakwood-commons/selx/internal/dataset"
	"github.com/oakwood-commons/selx/internal/matcher"
	"github.com/oakwood-commons/selx/pkg/logger"
	"github.com/oakwood-commons/selx/pkg/selx"
	"github.com/oakwood-commons/selx/pkg/settings"
)

var (
	datasetPath  string
	matchExpr    string
	debounceMs   int
	updateMinLen int
	themeName    string
	stylePath    string
	latency      time.Duration
	logLevel     int8
)

var rootCmd = &cobra.Command{
	Use:   settings.CliBinaryName,
	Short: "Searchable dropdown form control demo",
	Long: `selx is an embeddable searchable-dropdown form control.

This command hosts a demo form with two live-select fields. As you type, the
host filters a dataset and feeds candidate options back to the control; the
control itself never searches. Use --latency to watch the stale-reply guard
at work and --match to swap in a custom CEL predicate.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runForm()
	},
}

func init() {
	rootCmd.Version = versionString()
	registerFlags(rootCmd.Flags())
}

func registerFlags(f *pflag.FlagSet) {
	f.StringVar(&datasetPath, "dataset", "", "YAML dataset to search (default: embedded city list)")
	f.StringVar(&matchExpr, "match", "", "CEL match predicate over `option` and `q` (default: case-insensitive substring on the label)")
	f.IntVar(&debounceMs, "debounce", selx.DefaultDebounceMs, "keystroke quiet period in milliseconds")
	f.IntVar(&updateMinLen, "min-len", selx.DefaultUpdateMinLen, "minimum query length before a search is issued")
	f.StringVar(&themeName, "theme", "dark", "built-in style set: dark, warm, none")
	f.StringVar(&stylePath, "style-config", "", "YAML or TOML style override file")
	f.DurationVar(&latency, "latency", 0, "artificial delay before the host answers a query")
	f.Int8Var(&logLevel, "log-level", 0, "minimum log level (zap levels; negative enables debug)")
}

// Execute runs the demo CLI.
func Execute() error {
	return rootCmd.Execute()
}

func runForm() error {
	log := logger.Get(logLevel)

	data := dataset.Builtin()
	if datasetPath != "" {
		var err error
		data, err = dataset.Load(datasetPath)
		if err != nil {
			return err
		}
	}

	match, err := matcher.New(matchExpr)
	if err != nil {
		return err
	}

	cfg := selx.Config{
		DebounceMs:   debounceMs,
		UpdateMinLen: updateMinLen,
		StyleName:    themeName,
		Width:        controlWidth(),
	}
	if stylePath != "" {
		styles, err := loadStyleConfig(stylePath)
		if err != nil {
			return err
		}
		cfg.Styles = &styles
	}

	cityCfg := cfg
	cityCfg.Placeholder = "Search for a city"
	city, err := selx.New(selx.Identity{Component: "demo-form", Field: "city"}, cityCfg)
	if err != nil {
		return err
	}

	colorCfg := cfg
	colorCfg.Placeholder = "Search for a color"
	colorField, err := selx.New(selx.Identity{Component: "demo-form", Field: "color"}, colorCfg)
	if err != nil {
		return err
	}

	form, err := newFormModel(log, match, latency,
		&formField{title: "City", ctl: city, opts: data.Options()},
		&formField{title: "Color", ctl: colorField, opts: colorOptions()},
	)
	if err != nil {
		return err
	}

	prog := tea.NewProgram(form)
	_, err = prog.Run()
	return err
}

// colorOptions is the second field's dataset, built from ordered key-value
// entries so the dropdown order is stable.
func colorOptions() []selx.Option {
	entries := []selx.Entry{
		{Key: "Red", Value: "#cc0000"},
		{Key: "Orange", Value: "#cc6600"},
		{Key: "Yellow", Value: "#cccc00"},
		{Key: "Green", Value: "#00cc00"},
		{Key: "Blue", Value: "#0000cc"},
		{Key: "Indigo", Value: "#3300cc"},
		{Key: "Violet", Value: "#6600cc"},
	}
	opts, err := selx.Normalize(entries)
	if err != nil {
		// Static data; an error here is a build defect.
		panic(err)
	}
	return opts
}

// controlWidth sizes the controls to a readable fraction of the terminal.
func controlWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 40
	}
	if w > 72 {
		return 60
	}
	return w - 12
}

// versionString formats build metadata for --version style output.
func versionString() string {
	v := settings.VersionInformation
	return fmt.Sprintf("%s %s (%s, built %s)", settings.CliBinaryName, v.BuildVersion, v.Commit, v.BuildTime)
}
