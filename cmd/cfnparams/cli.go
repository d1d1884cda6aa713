// Where: cli/cmd/cfnparams/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/poruru/cfn-paramfile/cli/internal/app"
	"github.com/poruru/cfn-paramfile/cli/internal/interaction"
)

var stdin = os.Stdin

// buildDependencies constructs the runtime dependencies for the CLI. The
// prompter falls back to a plain line reader when stdin is not a terminal,
// so piped input still works.
func buildDependencies() app.Dependencies {
	var prompter interaction.Prompter
	if interaction.IsTerminal(stdin) {
		prompter = interaction.HuhPrompter{}
	} else {
		prompter = &interaction.ReaderPrompter{In: stdin, Out: os.Stdout}
	}

	return app.Dependencies{
		Out:      os.Stdout,
		Prompter: prompter,
	}
}
