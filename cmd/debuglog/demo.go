package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/zaolin/debuglog/internal/config"
	"github.com/zaolin/debuglog/internal/engine"
	"github.com/zaolin/debuglog/internal/sink"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)

// DemoCmd runs a traced sample workload against the engine
type DemoCmd struct {
	Filter string `short:"f" help:"Location filter value (default: match everything)"`
	Sink   string `short:"s" help:"Output sink (stderr or console)"`
	Color  bool   `short:"c" help:"Colorize group brackets"`
	Config string `type:"path" help:"Path to TOML config file"`
}

// Run executes the demo command
func (c *DemoCmd) Run() error {
	// Load config file if specified
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}

	// Override config with CLI flags
	if c.Filter != "" {
		cfg.Filter = c.Filter
	}
	if c.Sink != "" {
		cfg.Sink = c.Sink
	}
	if c.Color {
		cfg.Color = true
	}
	if cfg.Filter == "" {
		cfg.Filter = "*"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	out, err := buildSink(cfg)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("debuglog demo"))
	fmt.Println(noteStyle.Render(fmt.Sprintf("filter=%q sink=%s", cfg.Filter, cfg.Sink)))

	runSample(engine.New(cfg.Filter, out))
	return nil
}

func buildSink(cfg *config.Config) (sink.Sink, error) {
	switch cfg.Sink {
	case "console":
		return sink.NewDevice()
	default:
		s := sink.NewStderr()
		s.SetColor(cfg.Color)
		return s, nil
	}
}

// runSample exercises messages, value dumps, nested groups and an early
// return so the output shows how blocks unwind
func runSample(e *engine.Engine) {
	defer e.Group("demo/sample.go:1", "startup")()

	e.Logf("demo/sample.go:2", "loading %d services", 3)
	e.Dump("demo/sample.go:3", "services", []string{"udev", "net", "ssh"})

	for _, svc := range []string{"udev", "net", "ssh"} {
		startService(e, svc)
	}
}

func startService(e *engine.Engine, name string) {
	defer e.Group("demo/service.go:10", "start %s", name)()

	e.Logf("demo/service.go:11", "resolving dependencies")
	if name == "net" {
		// Early return still closes the group
		e.Logf("demo/service.go:12", "already running, skipping")
		return
	}
	e.Logf("demo/service.go:14", "started")
}
