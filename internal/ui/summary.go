// Where: cli/internal/ui/summary.go
// What: Render the collected-parameter summary block.
// Why: Keep user-facing formatting in templates rather than scattered prints.
package ui

import (
	"bytes"
	"embed"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var (
	summaryOnce sync.Once
	summaryErr  error
	summaryTmpl *template.Template
)

// SummaryEntry is one parameter line of the summary block.
type SummaryEntry struct {
	Name  string
	Value any
}

// RenderSummary formats the summary printed before the file is written.
// List values are joined for display; scalars print as-is.
func RenderSummary(entries []SummaryEntry) (string, error) {
	summaryOnce.Do(func() {
		summaryTmpl, summaryErr = template.New("summary.tmpl").
			Funcs(sprig.FuncMap()).
			ParseFS(templateFS, "templates/summary.tmpl")
	})
	if summaryErr != nil {
		return "", summaryErr
	}

	var buf bytes.Buffer
	if err := summaryTmpl.Execute(&buf, map[string]any{"Entries": entries}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
