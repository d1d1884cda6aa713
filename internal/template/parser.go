// Where: cli/internal/template/parser.go
// What: Parameters section parser.
// Why: Decode declarations in source order with their type metadata.
package template

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/poruru/cfn-paramfile/cli/internal/param"
)

type declarationAttrs struct {
	Type        string `yaml:"Type"`
	Description string `yaml:"Description"`
}

// ParseDeclarations decodes the extracted section lines into ordered
// parameter declarations. The yaml node tree is walked directly because a
// plain map unmarshal would lose the source order, and the output file must
// keep it. Empty input yields no declarations and no error.
func ParseDeclarations(lines []string) ([]param.Declaration, error) {
	content := strings.Join(lines, "\n")
	if strings.TrimSpace(content) == "" {
		return nil, nil
	}

	if err := validateSection(content); err != nil {
		return nil, err
	}

	var root yaml.Node
	if err := yaml.Unmarshal([]byte(content), &root); err != nil {
		return nil, fmt.Errorf("parse parameters section: %w", err)
	}
	if len(root.Content) == 0 {
		return nil, nil
	}
	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse parameters section: expected a mapping at the top level")
	}

	declarations := make([]param.Declaration, 0, len(mapping.Content)/2)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keyNode := mapping.Content[i]
		valueNode := mapping.Content[i+1]

		var attrs declarationAttrs
		if err := valueNode.Decode(&attrs); err != nil {
			return nil, fmt.Errorf("parse parameter %q: %w", keyNode.Value, err)
		}
		declarations = append(declarations, param.Declaration{
			Name:        keyNode.Value,
			Type:        param.Type(attrs.Type),
			Description: attrs.Description,
		})
	}
	return declarations, nil
}
