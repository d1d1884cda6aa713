// Where: cli/internal/interaction/selector.go
// What: Interactive input using the huh library.
// Why: Provide keyboard-based prompting when attached to a terminal.
package interaction

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// HuhPrompter implements the Prompter interface using the huh TUI library.
type HuhPrompter struct{}

func (p HuhPrompter) Input(title string, suggestions []string) (string, error) {
	var input string
	err := huh.NewInput().
		Title(title).
		Suggestions(suggestions).
		Value(&input).
		Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrInterrupted
		}
		return "", err
	}
	return input, nil
}
