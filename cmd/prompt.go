package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var errPromptCancelled = errors.New("prompt cancelled")

type promptModel struct {
	input     textinput.Model
	submitted bool
	cancelled bool
}

func newPromptModel(label string, secret bool) promptModel {
	input := textinput.New()
	input.Prompt = label
	input.Focus()
	if secret {
		input.EchoMode = textinput.EchoPassword
		input.EchoCharacter = '•'
	}

	return promptModel{input: input}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.submitted = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}
	return m.input.View() + "\n"
}

func runPrompt(ctx context.Context, in io.Reader, out io.Writer, label string, secret bool) (string, error) {
	p := tea.NewProgram(
		newPromptModel(label, secret),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	result, ok := finalModel.(promptModel)
	if !ok {
		return "", fmt.Errorf("unexpected final prompt model type %T", finalModel)
	}
	if result.cancelled {
		return "", errPromptCancelled
	}

	return strings.TrimSpace(result.input.Value()), nil
}

// ask uses an interactive prompt on a terminal and reads one line otherwise,
// so answers can be piped in.
func ask(cmd *cobra.Command, label string, secret bool) (string, error) {
	in := cmd.InOrStdin()
	if isTerminal(in) {
		return runPrompt(cmd.Context(), in, cmd.ErrOrStderr(), label, secret)
	}

	if _, err := fmt.Fprint(cmd.ErrOrStderr(), label); err != nil {
		return "", err
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func confirm(cmd *cobra.Command, question string) (bool, error) {
	answer, err := ask(cmd, question+" [y/N] ", false)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
