// Where: cli/internal/template/extractor.go
// What: Line-based Parameters section extraction.
// Why: Slice the declarations out of a template without parsing the whole document.
package template

import "strings"

// ParametersSection is the label of the section holding parameter declarations.
const ParametersSection = "Parameters"

// TopLevelSections lists the CloudFormation top-level section labels that
// terminate an extracted block.
var TopLevelSections = []string{
	"AWSTemplateFormatVersion",
	"Description",
	"Metadata",
	"Parameters",
	"Rules",
	"Mappings",
	"Conditions",
	"Transform",
	"Resources",
	"Outputs",
}

// Extractor slices one top-level section out of a template line sequence.
// The recognized section labels are carried explicitly so callers can see,
// and tests can vary, what counts as a boundary.
type Extractor struct {
	Target   string
	Sections []string
}

// NewExtractor returns an extractor for the given top-level section.
func NewExtractor(target string) Extractor {
	return Extractor{Target: target, Sections: TopLevelSections}
}

// Extract returns the lines strictly between the target section header and
// the next top-level section header, or end of input. Matching is exact-line
// equality after trimming, never substring containment, so a label mentioned
// inside a description or default value does not open or close a section.
// A missing target yields an empty result.
func (e Extractor) Extract(lines []string) []string {
	start := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == e.Target+":" {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil
	}

	var section []string
	for _, line := range lines[start:] {
		if e.isBoundary(line) {
			break
		}
		section = append(section, line)
	}
	return section
}

func (e Extractor) isBoundary(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, label := range e.Sections {
		if trimmed == label+":" {
			return true
		}
	}
	return false
}
