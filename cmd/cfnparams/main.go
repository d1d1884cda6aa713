// Where: cli/cmd/cfnparams/main.go
// What: CLI entrypoint.
// Why: Execute cfnparams with configured dependencies.
package main

import (
	"os"

	"github.com/poruru/cfn-paramfile/cli/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], buildDependencies()))
}
