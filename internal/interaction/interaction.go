// Where: cli/internal/interaction/interaction.go
// What: Interactive primitives for CLI prompts and TTY detection.
// Why: Centralize user interaction to keep the collection loop focused on orchestration.
package interaction

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ErrInterrupted reports that the operator cancelled an active prompt.
var ErrInterrupted = errors.New("interrupted by operator")

// Prompter defines the interface for interactive user input.
type Prompter interface {
	Input(title string, suggestions []string) (string, error)
}

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ReaderPrompter reads one line per prompt from a plain stream. It backs
// non-TTY runs (pipes, tests) where the huh form cannot render.
type ReaderPrompter struct {
	In  io.Reader
	Out io.Writer

	reader *bufio.Reader
}

// Input prints the title and blocks on one line of input. EOF before any
// input is treated as an operator interrupt.
func (p *ReaderPrompter) Input(title string, _ []string) (string, error) {
	if p.reader == nil {
		p.reader = bufio.NewReader(p.In)
	}
	fmt.Fprintf(p.Out, "%s ", title)
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			return "", ErrInterrupted
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}
