// Where: cli/internal/app/generate.go
// What: Generate command pipeline.
// Why: Drive extract, parse, collect, and serialize as one linear run.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/poruru/cfn-paramfile/cli/internal/collector"
	"github.com/poruru/cfn-paramfile/cli/internal/interaction"
	"github.com/poruru/cfn-paramfile/cli/internal/param"
	"github.com/poruru/cfn-paramfile/cli/internal/template"
	"github.com/poruru/cfn-paramfile/cli/internal/ui"
)

// ErrNotYAMLFile reports a template path without a recognized YAML extension.
var ErrNotYAMLFile = errors.New("template must be a .yaml or .yml file")

// runGenerate executes the whole pipeline. Every stage is fatal on error and
// nothing is written until all values are collected and coerced.
func runGenerate(cli CLI, deps Dependencies, out io.Writer) int {
	templatePath := cli.Generate.Template
	if err := validateTemplatePath(templatePath); err != nil {
		return exitWithError(out, err)
	}

	loader := deps.Loader
	if loader == nil {
		loader = loadTemplateLines
	}
	lines, err := loader(templatePath)
	if err != nil {
		return exitWithError(out, err)
	}

	section := template.NewExtractor(template.ParametersSection).Extract(lines)
	declarations, err := template.ParseDeclarations(section)
	if err != nil {
		return exitWithError(out, err)
	}

	console := ui.New(out)
	prompter := deps.Prompter
	if prompter == nil {
		prompter = interaction.HuhPrompter{}
	}

	console.Header("📝", "Set values for the parameter file:")
	records, err := collector.Collector{
		Prompter: prompter,
		Console:  console,
		Users:    cli.Generate.Users,
	}.Collect(declarations)
	if err != nil {
		if errors.Is(err, interaction.ErrInterrupted) {
			fmt.Fprintln(out, "\nProcess terminated, no parameter file written")
			return 1
		}
		return exitWithError(out, err)
	}

	entries, err := param.BuildEntries(records)
	if err != nil {
		return exitWithError(out, err)
	}

	summary, err := ui.RenderSummary(summaryEntries(entries))
	if err != nil {
		return exitWithError(out, err)
	}
	fmt.Fprint(out, summary)
	fmt.Fprintln(out)

	outputPath := filepath.Join(filepath.Dir(templatePath), param.FileName)
	console.Info(fmt.Sprintf("Saving parameter file to %s", outputPath))
	if err := param.WriteFile(outputPath, entries); err != nil {
		return exitWithError(out, err)
	}

	console.Success("Parameter file written")
	return 0
}

// validateTemplatePath rejects unrecognized extensions before any file I/O.
func validateTemplatePath(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return nil
	}
	return fmt.Errorf("%w: %s", ErrNotYAMLFile, path)
}

func summaryEntries(entries []param.Entry) []ui.SummaryEntry {
	out := make([]ui.SummaryEntry, 0, len(entries))
	for _, entry := range entries {
		out = append(out, ui.SummaryEntry{Name: entry.ParameterKey, Value: entry.ParameterValue})
	}
	return out
}

// loadTemplateLines reads the template and splits it into lines. A missing
// file gets a descriptive error instead of the bare os error.
func loadTemplateLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("template file %s does not exist", path)
		}
		return nil, err
	}
	return strings.Split(string(data), "\n"), nil
}
