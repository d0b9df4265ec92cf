package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/zaolin/debuglog/internal/filter"
)

var (
	enabledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	disabledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// MatchCmd reports which location tags a filter value would enable
type MatchCmd struct {
	Filter    string   `arg:"" help:"Filter value (empty disables, * matches all, otherwise substring)"`
	Locations []string `arg:"" help:"Location tags to test (e.g. parser/lex.go:42)"`
}

// Run executes the match command
func (c *MatchCmd) Run() error {
	f := filter.New(c.Filter)
	for _, loc := range c.Locations {
		if f.Match(loc) {
			fmt.Printf("%s %s\n", enabledStyle.Render("enabled "), loc)
		} else {
			fmt.Printf("%s %s\n", disabledStyle.Render("disabled"), loc)
		}
	}
	return nil
}
