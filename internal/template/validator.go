// Where: cli/internal/template/validator.go
// What: Schema validation for the Parameters section.
// Why: Reject structurally malformed declarations before prompting starts.
package template

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	_ "embed"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"sigs.k8s.io/yaml"
)

//go:embed schema/parameters.schema.json
var parametersSchema string

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// validateSection checks that every declaration is a mapping with a string
// Type and an optional string Description. The schema deliberately does not
// enumerate the supported type tags: an unknown tag is still a well-formed
// declaration and only fails once its value is coerced.
func validateSection(content string) error {
	sch, err := loadSchema()
	if err != nil {
		return err
	}

	jsonData, err := yaml.YAMLToJSON([]byte(content))
	if err != nil {
		return fmt.Errorf("parse parameters section: %w", err)
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return fmt.Errorf("decode parameters section: %w", err)
	}

	if err := sch.Validate(document); err != nil {
		return fmt.Errorf("invalid parameters section: %w", err)
	}
	return nil
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("parameters.schema.json", strings.NewReader(parametersSchema)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile("parameters.schema.json")
	})
	return compiledSchema, schemaErr
}
