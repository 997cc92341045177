package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/statax/statax/internal/domain"
)

// KeyMap defines the application key bindings.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Toggle    key.Binding
	SelectAll key.Binding
	ClearAll  key.Binding
	Filing    key.Binding
	NextPane  key.Binding
	Dismiss   key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "decrease")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "increase")),
		Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle state")),
		SelectAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		ClearAll:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "clear all")),
		Filing:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filing status")),
		NextPane:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		Dismiss:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss error")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var keys = DefaultKeyMap()

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ChartReadyMsg:
		m.chart = msg.Data
		m.err = nil
		return m, nil

	case ErrorMsg:
		// Keep the previous chart; one invalid operation must not
		// discard still-valid displayed results.
		m.err = msg.Err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Dismiss):
		m.err = nil
		return m, nil

	case key.Matches(msg, keys.NextPane):
		if m.focus == PaneStates {
			m.focus = PaneControls
		} else {
			m.focus = PaneStates
		}
		m.picker.IsFocused = m.focus == PaneStates
		m.syncSliderFocus()
		return m, nil

	case key.Matches(msg, keys.Filing):
		if m.status == domain.FilingSingle {
			m.status = domain.FilingMarried
		} else {
			m.status = domain.FilingSingle
		}
		return m, m.recalculateCmd()
	}

	if m.focus == PaneStates {
		return m.handleStatesKey(msg)
	}
	return m.handleControlsKey(msg)
}

func (m Model) handleStatesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		m.picker.CursorUp()
	case key.Matches(msg, keys.Down):
		m.picker.CursorDown()
	case key.Matches(msg, keys.Toggle):
		m.picker.Toggle()
		return m, m.recalculateCmd()
	case key.Matches(msg, keys.SelectAll):
		m.picker.SelectAll()
		return m, m.recalculateCmd()
	case key.Matches(msg, keys.ClearAll):
		m.picker.ClearAll()
		return m, m.recalculateCmd()
	}
	return m, nil
}

func (m Model) handleControlsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if m.sliderIdx > 0 {
			m.sliderIdx--
		}
		m.syncSliderFocus()
	case key.Matches(msg, keys.Down):
		if m.sliderIdx < sliderCount-1 {
			m.sliderIdx++
		}
		m.syncSliderFocus()
	case key.Matches(msg, keys.Left):
		m.sliders[m.sliderIdx].Decrement()
		return m, m.recalculateCmd()
	case key.Matches(msg, keys.Right):
		m.sliders[m.sliderIdx].Increment()
		return m, m.recalculateCmd()
	}
	return m, nil
}

func (m *Model) syncSliderFocus() {
	for i, s := range m.sliders {
		s.SetFocused(m.focus == PaneControls && i == m.sliderIdx)
	}
}
