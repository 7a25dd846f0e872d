package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/pinout/pkg/catalog"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// EntryListModel is the bubbletea model for picking one catalog entry.
type EntryListModel struct {
	Title    string
	Entries  []catalog.Entry
	Cursor   int
	Offset   int
	Height   int
	CanBack  bool           // esc/backspace returns instead of quitting
	Selected *catalog.Entry // set on enter
	Back     bool           // set when the user asked to go back
}

// NewEntryListModel creates a list model over entries.
func NewEntryListModel(title string, entries []catalog.Entry, canBack bool) EntryListModel {
	return EntryListModel{
		Title:   title,
		Entries: entries,
		Height:  15,
		CanBack: canBack,
	}
}

func (m EntryListModel) Init() tea.Cmd {
	return nil
}

func (m EntryListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc", "backspace", "left", "h":
			if m.CanBack {
				m.Back = true
			}
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Entries)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter", "right", "l":
			if len(m.Entries) == 0 {
				return m, nil
			}
			e := m.Entries[m.Cursor]
			m.Selected = &e
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}
	return m, nil
}

func (m EntryListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	help := "↑/↓ navigate  ⏎ select  q quit"
	if m.CanBack {
		help = "↑/↓ navigate  ⏎ select  esc back  q quit"
	}
	b.WriteString(listDimStyle.Render(help))
	b.WriteString("\n\n")

	if len(m.Entries) == 0 {
		b.WriteString(listDimStyle.Render("  (empty)"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Entries))
	for i := m.Offset; i < end; i++ {
		e := m.Entries[i]
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render("▸ " + e.Title()))
		} else {
			b.WriteString(listNormalStyle.Render("  " + e.Title()))
		}
		if e.Display != "" {
			b.WriteString("  " + listDimStyle.Render(e.Path))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Entries))))

	return b.String()
}
