// ABOUTME: Bubbletea model showing per-clip generation progress
// ABOUTME: Driven by generator events sent from the run goroutine
package ui

import (
	"fmt"
	"strings"

	"github.com/bni-lottery/soundgen/internal/generator"
	tea "github.com/charmbracelet/bubbletea"
)

// EventMsg wraps a generator event for the bubbletea program
type EventMsg generator.Event

// ErrMsg reports that the run stopped with an error
type ErrMsg struct{ Err error }

// ProgressModel is the TUI state
type ProgressModel struct {
	clips    []string
	stages   map[string]generator.Stage
	details  map[string]string
	started  map[string]bool
	done     bool
	err      error
	quitting bool
}

// NewProgressModel creates a model tracking the named clips
func NewProgressModel(clips []string) ProgressModel {
	return ProgressModel{
		clips:   clips,
		stages:  make(map[string]generator.Stage),
		details: make(map[string]string),
		started: make(map[string]bool),
	}
}

// NewProgram creates the bubbletea program for a progress view
func NewProgram(clips []string, opts ...tea.ProgramOption) *tea.Program {
	return tea.NewProgram(NewProgressModel(clips), opts...)
}

// Init initializes the model
func (m ProgressModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case EventMsg:
		if msg.Stage == generator.StageDone {
			m.done = true
			return m, tea.Quit
		}
		m.stages[msg.Clip] = msg.Stage
		m.details[msg.Clip] = msg.Detail
		m.started[msg.Clip] = true

	case ErrMsg:
		m.err = msg.Err
		return m, tea.Quit
	}

	return m, nil
}

// Done reports whether the run finished
func (m ProgressModel) Done() bool {
	return m.done
}

// View renders the TUI
func (m ProgressModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Lottery Sound Generator"))
	b.WriteString("\n")

	for _, clip := range m.clips {
		b.WriteString(m.renderClip(clip))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.err != nil:
		b.WriteString(warnStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	case m.done:
		b.WriteString(okStyle.Render("Done"))
	case m.quitting:
		b.WriteString("Stopping...")
	default:
		b.WriteString(faintStyle.Render("Press 'q' or Ctrl+C to quit"))
	}
	b.WriteString("\n")

	return b.String()
}

func (m ProgressModel) renderClip(clip string) string {
	if !m.started[clip] {
		return fmt.Sprintf("  · %-8s %s", clip, faintStyle.Render("waiting"))
	}

	stage := m.stages[clip]
	icon := "…"
	style := valueStyle
	switch stage {
	case generator.StageWritten, generator.StageConverted:
		icon = "✓"
		style = okStyle
	case generator.StageFallback:
		icon = "⚠"
		style = warnStyle
	}

	line := fmt.Sprintf("  %s %-8s %s", icon, clip, style.Render(stage.String()))
	if d := m.details[clip]; d != "" {
		line += " " + faintStyle.Render(d)
	}
	return line
}
