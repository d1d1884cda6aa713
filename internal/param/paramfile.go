// Where: cli/internal/param/paramfile.go
// What: params.json construction and writing.
// Why: Emit the parameter file shape the deploy pipeline consumes.
package param

import (
	"encoding/json"
	"fmt"
	"os"
)

// FileName is the fixed output name written next to the template.
const FileName = "params.json"

// Entry is one element of the params.json array.
type Entry struct {
	ParameterKey   string `json:"ParameterKey"`
	ParameterValue any    `json:"ParameterValue"`
}

// BuildEntries coerces every record in declaration order. The first failing
// coercion aborts the build, so a partial file is never produced.
func BuildEntries(records []Record) ([]Entry, error) {
	entries := make([]Entry, 0, len(records))
	for _, record := range records {
		value, err := record.Value()
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{
			ParameterKey:   record.Declaration.Name,
			ParameterValue: value,
		})
	}
	return entries, nil
}

// WriteFile serializes the entries indented for human readability,
// overwriting any existing file at path.
func WriteFile(path string, entries []Entry) error {
	payload, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return err
	}
	payload = append(payload, '\n')
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
