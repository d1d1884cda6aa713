// Where: cli/internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/poruru/cfn-paramfile/cli/internal/interaction"
	"github.com/poruru/cfn-paramfile/cli/internal/version"
)

// TemplateLoader reads the template file as an ordered line sequence.
type TemplateLoader func(path string) ([]string, error)

// Dependencies holds the injected collaborators for CLI command execution,
// so tests can script the prompter and capture output.
type Dependencies struct {
	Out      io.Writer
	Prompter interaction.Prompter
	Loader   TemplateLoader
}

// CLI defines the command-line interface structure parsed by Kong.
// Generate is the default command with args, so the template path and the
// optional suffix tokens can be passed positionally without a command name.
type CLI struct {
	Generate GenerateCmd `cmd:"" default:"withargs" help:"Generate params.json from a CloudFormation template"`
	Version  VersionCmd  `cmd:"" help:"Show version information"`
}

type GenerateCmd struct {
	Template string   `arg:"" help:"Path to the template (.yaml or .yml)"`
	Users    []string `arg:"" optional:"" help:"Tokens appended to every collected value, joined by '-'"`
}

type VersionCmd struct{}

// Run is the main entry point for CLI command execution. It parses the
// command-line arguments and dispatches to the matching handler.
// Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}

	cli := CLI{}
	parser, err := kong.New(&cli, kong.Name("cfnparams"), kong.Exit(func(int) {}))
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(out, err)
	}

	// A local .env feeds value suggestions during collection.
	if _, statErr := os.Stat(".env"); statErr == nil {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintf(out, "Warning: failed to load .env: %v\n", err)
		}
	}

	// kong reports commands as "generate <template>" etc.; dispatch on the
	// command token alone so argument placeholders never leak into matching.
	name, _, _ := strings.Cut(ctx.Command(), " ")
	switch name {
	case "generate":
		return runGenerate(cli, deps, out)
	case "version":
		fmt.Fprintln(out, version.GetVersion())
		return 0
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintln(out, err)
	return 1
}
