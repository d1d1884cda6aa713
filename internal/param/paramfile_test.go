// Where: cli/internal/param/paramfile_test.go
// What: Tests for params.json building and writing.
// Why: Ensure entries keep declaration order and round-trip through JSON.
package param

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestBuildEntriesKeepsOrder(t *testing.T) {
	records := []Record{
		{Declaration: Declaration{Name: "Env", Type: TypeString}, Raw: "prod"},
		{Declaration: Declaration{Name: "Count", Type: TypeNumber}, Raw: "3"},
		{Declaration: Declaration{Name: "Subnets", Type: TypeCommaDelimitedList}, Raw: "a,b"},
	}

	entries, err := BuildEntries(records)
	if err != nil {
		t.Fatalf("build entries: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	wantKeys := []string{"Env", "Count", "Subnets"}
	for i, want := range wantKeys {
		if entries[i].ParameterKey != want {
			t.Fatalf("entry %d: expected %s, got %s", i, want, entries[i].ParameterKey)
		}
	}
}

func TestBuildEntriesStopsOnCoercionFailure(t *testing.T) {
	records := []Record{
		{Declaration: Declaration{Name: "Env", Type: TypeString}, Raw: "prod"},
		{Declaration: Declaration{Name: "Count", Type: TypeNumber}, Raw: "not-a-number"},
	}

	_, err := BuildEntries(records)
	var coercionErr *CoercionError
	if !errors.As(err, &coercionErr) {
		t.Fatalf("expected CoercionError, got %v", err)
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	records := []Record{
		{Declaration: Declaration{Name: "Env", Type: TypeString}, Raw: "prod"},
		{Declaration: Declaration{Name: "Count", Type: TypeNumber}, Raw: "3"},
	}
	entries, err := BuildEntries(records)
	if err != nil {
		t.Fatalf("build entries: %v", err)
	}

	path := filepath.Join(t.TempDir(), FileName)
	if err := WriteFile(path, entries); err != nil {
		t.Fatalf("write file: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(decoded))
	}
	if decoded[0]["ParameterKey"] != "Env" || decoded[0]["ParameterValue"] != "prod" {
		t.Fatalf("unexpected first entry: %v", decoded[0])
	}
	if decoded[1]["ParameterKey"] != "Count" || decoded[1]["ParameterValue"] != 3.0 {
		t.Fatalf("unexpected second entry: %v", decoded[1])
	}
}

func TestWriteFileEmptyEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	entries, err := BuildEntries(nil)
	if err != nil {
		t.Fatalf("build entries: %v", err)
	}
	if err := WriteFile(path, entries); err != nil {
		t.Fatalf("write file: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	var decoded []Entry
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(decoded) != 0 {
		t.Fatalf("expected empty list, got %v", decoded)
	}
}

func TestWriteFileOverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	if err := WriteFile(path, []Entry{{ParameterKey: "Env", ParameterValue: "dev"}}); err != nil {
		t.Fatalf("write file: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	var decoded []Entry
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(decoded) != 1 || decoded[0].ParameterKey != "Env" {
		t.Fatalf("unexpected content: %s", data)
	}
}
