package components

import (
	"fmt"
	"strings"

	"github.com/statax/statax/internal/tui/tuistyles"
)

// StatePicker is a scrollable multi-select list of state names with bulk
// select/clear operations.
type StatePicker struct {
	Names     []string
	selected  map[string]bool
	cursor    int
	offset    int
	Height    int // visible rows
	IsFocused bool
}

// NewStatePicker creates a picker over the given names with the given
// initial selection.
func NewStatePicker(names []string, initial []string) *StatePicker {
	selected := make(map[string]bool, len(initial))
	for _, n := range initial {
		selected[n] = true
	}
	return &StatePicker{
		Names:    names,
		selected: selected,
		Height:   12,
	}
}

// Selected returns the selected names in list order.
func (p *StatePicker) Selected() []string {
	out := make([]string, 0, len(p.selected))
	for _, n := range p.Names {
		if p.selected[n] {
			out = append(out, n)
		}
	}
	return out
}

// SelectedCount returns how many states are selected.
func (p *StatePicker) SelectedCount() int {
	return len(p.Selected())
}

// CursorUp moves the cursor up one row.
func (p *StatePicker) CursorUp() {
	if p.cursor > 0 {
		p.cursor--
	}
	p.scrollToCursor()
}

// CursorDown moves the cursor down one row.
func (p *StatePicker) CursorDown() {
	if p.cursor < len(p.Names)-1 {
		p.cursor++
	}
	p.scrollToCursor()
}

// Toggle flips the selection under the cursor.
func (p *StatePicker) Toggle() {
	if len(p.Names) == 0 {
		return
	}
	name := p.Names[p.cursor]
	if p.selected[name] {
		delete(p.selected, name)
	} else {
		p.selected[name] = true
	}
}

// SelectAll selects every state.
func (p *StatePicker) SelectAll() {
	for _, n := range p.Names {
		p.selected[n] = true
	}
}

// ClearAll deselects every state.
func (p *StatePicker) ClearAll() {
	p.selected = make(map[string]bool)
}

func (p *StatePicker) scrollToCursor() {
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+p.Height {
		p.offset = p.cursor - p.Height + 1
	}
}

// Render returns the visible window of the list.
func (p *StatePicker) Render() string {
	var sb strings.Builder

	header := fmt.Sprintf("States (%d/%d)", p.SelectedCount(), len(p.Names))
	headerStyle := tuistyles.SubtitleStyle
	if p.IsFocused {
		headerStyle = tuistyles.TitleStyle
	}
	sb.WriteString(headerStyle.Render(header))
	sb.WriteString("\n")

	end := p.offset + p.Height
	if end > len(p.Names) {
		end = len(p.Names)
	}
	for i := p.offset; i < end; i++ {
		name := p.Names[i]

		mark := "[ ]"
		style := tuistyles.UnselectedItemStyle
		if p.selected[name] {
			mark = "[x]"
			style = tuistyles.SelectedItemStyle
		}

		cursor := "  "
		if i == p.cursor && p.IsFocused {
			cursor = "> "
		}

		sb.WriteString(cursor + style.Render(mark+" "+name))
		sb.WriteString("\n")
	}

	if end < len(p.Names) {
		sb.WriteString(tuistyles.SubtitleStyle.Render(fmt.Sprintf("  … %d more", len(p.Names)-end)))
		sb.WriteString("\n")
	}

	return sb.String()
}
