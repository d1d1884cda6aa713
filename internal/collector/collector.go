// Where: cli/internal/collector/collector.go
// What: Interactive parameter value collection.
// Why: Walk declarations in order and pair each with an operator-supplied value.
package collector

import (
	"fmt"
	"os"
	"strings"

	"github.com/poruru/cfn-paramfile/cli/internal/interaction"
	"github.com/poruru/cfn-paramfile/cli/internal/param"
	"github.com/poruru/cfn-paramfile/cli/internal/ui"
)

// Collector prompts for one raw value per declaration.
type Collector struct {
	Prompter interaction.Prompter
	Console  *ui.Console
	Users    []string
}

// Collect walks the declarations in parse order, blocking on one prompt
// each. When user tokens were supplied on the command line, every raw value
// gets "-" plus the tokens joined by "-" appended before it is stored.
// Values are not validated here; coercion failures surface when read.
func (c Collector) Collect(declarations []param.Declaration) ([]param.Record, error) {
	records := make([]param.Record, 0, len(declarations))
	for _, decl := range declarations {
		c.Console.Item(decl.Name)
		c.Console.Detail("Type", string(decl.Type))
		if decl.Description != "" {
			c.Console.Detail("Description", decl.Description)
		}

		raw, err := c.Prompter.Input(fmt.Sprintf("Value for %s:", decl.Name), suggestionsFor(decl))
		if err != nil {
			return nil, err
		}
		if len(c.Users) > 0 {
			raw += "-" + strings.Join(c.Users, "-")
		}

		records = append(records, param.Record{Declaration: decl, Raw: raw})
	}
	return records, nil
}

// suggestionsFor offers an environment variable named after the declaration
// as an input suggestion, so a loaded .env can prefill common values.
func suggestionsFor(decl param.Declaration) []string {
	if value, ok := os.LookupEnv(decl.Name); ok && value != "" {
		return []string{value}
	}
	return nil
}
