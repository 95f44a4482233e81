// Package tui renders the live notification history dashboard.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"toasty/internal/domain"
	"toasty/internal/ports"
)

const maxMessageWidth = 60

// Model is the Bubble Tea model for the history dashboard
type Model struct {
	repo    ports.HistoryRepository
	limit   int
	rows    []domain.DeliveryRecord
	loadErr error
}

// NewModel creates a new dashboard model
func NewModel(repo ports.HistoryRepository, limit int) Model {
	return Model{
		repo:  repo,
		limit: limit,
	}
}

// Run starts the Bubble Tea program and blocks until it exits
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// --- Messages ---

type rowsMsg []domain.DeliveryRecord
type loadErrMsg struct{ err error }
type tickMsg time.Time

// --- Bubble Tea interface ---

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.load(), tickEvery(time.Second))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case rowsMsg:
		m.rows = msg
		m.loadErr = nil
		return m, nil

	case loadErrMsg:
		m.loadErr = msg.err
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.load(), tickEvery(time.Second))
	}

	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	sep := sepStyle.Render(strings.Repeat("─", 80))

	b.WriteString(sep + "\n")
	b.WriteString("  " + titleStyle.Render("toasty notification history") + "\n")
	b.WriteString(sep + "\n")

	if m.loadErr != nil {
		b.WriteString("  " + errorStyle.Render(fmt.Sprintf("Error: %v", m.loadErr)) + "\n")
	}

	if len(m.rows) == 0 && m.loadErr == nil {
		b.WriteString("  " + dimStyle.Render("No notifications recorded yet...") + "\n")
	}

	for _, rec := range m.rows {
		timeCol := dimStyle.Render(rec.CreatedAt.Local().Format("15:04:05"))
		prioCol := priorityStyle(rec.Priority).Render(fmt.Sprintf("%-7s", rec.Priority))
		eventCol := valueStyle.Render(fmt.Sprintf("%-24s", rec.Event))

		status := deliveredStyle.Render("✓")
		if !rec.Delivered {
			status = errorStyle.Render("✗")
		}

		msg := rec.Message
		if idx := strings.IndexByte(msg, '\n'); idx >= 0 {
			msg = msg[:idx] + "…"
		}
		if len(msg) > maxMessageWidth {
			msg = msg[:maxMessageWidth-1] + "…"
		}

		b.WriteString(fmt.Sprintf("  %s %s %s %s  %s\n",
			timeCol, status, prioCol, eventCol, dimStyle.Render(msg)))
	}

	b.WriteString(sep + "\n")
	b.WriteString("  " + footerStyle.Render("q: quit") + "\n")

	return b.String()
}

// --- Commands ---

func (m Model) load() tea.Cmd {
	return func() tea.Msg {
		records, err := m.repo.List(context.Background(), m.limit)
		if err != nil {
			return loadErrMsg{err: err}
		}
		return rowsMsg(records)
	}
}

func tickEvery(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
