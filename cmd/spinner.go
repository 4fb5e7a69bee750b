package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/clickup-cli/internal/adapters/output"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

type requestFinishedMsg struct {
	err error
}

// requestModel keeps a spinner next to the label until the request it
// started reports back.
type requestModel struct {
	ctx      context.Context
	label    string
	request  func(context.Context) error
	spinner  spinner.Model
	finished bool
	err      error
}

func (m requestModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return requestFinishedMsg{err: m.request(m.ctx)}
	})
}

func (m requestModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case requestFinishedMsg:
		m.finished, m.err = true, msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m requestModel) View() string {
	if m.finished {
		return ""
	}
	return m.spinner.View() + " " + m.label
}

// fetch runs fn against the API. On an interactive stderr in text mode a
// spinner labelled with label is shown until fn returns.
func (a *app) fetch(cmd *cobra.Command, label string, fn func(context.Context) error) error {
	ctx := cmd.Context()
	if a.format != output.FormatText || !isTerminal(cmd.ErrOrStderr()) {
		return fn(ctx)
	}

	model := requestModel{
		ctx:     ctx,
		label:   label,
		request: fn,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
	}

	final, err := tea.NewProgram(model,
		tea.WithInput(nil),
		tea.WithOutput(cmd.ErrOrStderr()),
		tea.WithContext(ctx),
	).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}

	done, ok := final.(requestModel)
	if !ok {
		return fmt.Errorf("unexpected spinner model %T", final)
	}
	return done.err
}
