// Where: cli/internal/ui/console.go
// What: Console output helpers for consistent CLI UX.
// Why: Standardize indentation and structure across the collection and summary passes.
package ui

import (
	"fmt"
	"io"
)

// Console provides helper methods for formatted output.
type Console struct {
	Out io.Writer
}

// New creates a new Console writing to the provided writer.
func New(out io.Writer) *Console {
	return &Console{Out: out}
}

// Header prints a section header with an emoji.
// Example: 📝 Set values for the parameter file:
func (c *Console) Header(emoji, title string) {
	fmt.Fprintf(c.Out, "%s %s\n", emoji, title)
}

// Item prints an indented line naming one parameter.
// Example:    Env:
func (c *Console) Item(name string) {
	fmt.Fprintf(c.Out, "   %s:\n", name)
}

// Detail prints a key-value attribute under an item.
// Example:       Type:        String
func (c *Console) Detail(key string, value any) {
	fmt.Fprintf(c.Out, "      %-13s %v\n", key+":", value)
}

// Success prints a success message with a checkmark.
func (c *Console) Success(msg string) {
	fmt.Fprintf(c.Out, "✅ %s\n", msg)
}

// Info prints an info message with an arrow.
func (c *Console) Info(msg string) {
	fmt.Fprintf(c.Out, "➜ %s\n", msg)
}
