package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/statax/statax/internal/calculation"
	"github.com/statax/statax/internal/config"
	"github.com/statax/statax/internal/taxdata"
	"github.com/statax/statax/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "chart configuration YAML file")
	flag.Parse()

	cfg := config.DefaultChartConfig()
	if *configPath != "" {
		parsed, err := config.NewInputParser(taxdata.Default()).LoadFromFile(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error loading config:", err)
			os.Exit(1)
		}
		cfg = parsed
	}

	model := tui.NewModel(calculation.NewEngine(), cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running TUI:", err)
		os.Exit(1)
	}
}
