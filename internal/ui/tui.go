// Package ui provides the optional terminal interface.
package ui

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nibzard/quickdo/internal/store"
	"github.com/nibzard/quickdo/internal/task"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	doneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	footerStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Run opens the task browser on the given store.
func Run(ctx context.Context, st *store.Store) error {
	if !isTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}
	model := newModel(st)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

type row struct {
	pos  int
	task task.Task
}

type model struct {
	store   *store.Store
	rows    []row
	cursor  int
	showAll bool
	err     error
}

func newModel(st *store.Store) *model {
	m := &model{store: st}
	m.rebuild()
	return m
}

// rebuild refreshes the visible rows from the store, keeping the cursor in
// range.
func (m *model) rebuild() {
	m.rows = m.rows[:0]
	for pos, t := range m.store.List(m.showAll) {
		m.rows = append(m.rows, row{pos: pos, task: t})
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case "enter", " ":
			if m.cursor < len(m.rows) {
				_, m.err = m.store.Complete(m.rows[m.cursor].pos)
				m.rebuild()
			}
		case "a":
			m.showAll = !m.showAll
			m.rebuild()
		case "r":
			m.err = m.store.Reload()
			m.rebuild()
		}
	}
	return m, nil
}

func (m *model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("QuickDo") + "\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: "+m.err.Error()) + "\n\n")
	}

	if len(m.rows) == 0 {
		b.WriteString("No active tasks\n")
	}
	for i, r := range m.rows {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := renderRow(r)
		if r.task.Completed {
			line = doneStyle.Render(line)
		} else if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}

	b.WriteString("\n" + footerStyle.Render("j/k move · enter toggle · a show completed · r reload · q quit") + "\n")
	return b.String()
}

func renderRow(r row) string {
	status := "-"
	if r.task.Completed {
		status = "✓"
	}
	line := fmt.Sprintf("%d. [%s] %s %s [%s]", r.pos, status, r.task.Priority.Symbol(), r.task.Title, r.task.Category)
	if r.task.DueDate != "" {
		line += fmt.Sprintf(" [%s]", r.task.DueDate)
	}
	return line
}

func isTTY(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
