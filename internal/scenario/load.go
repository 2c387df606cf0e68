package scenario

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// caseSpec is the file representation of a case. The id is kept as a raw
// node so an absent id can be told apart from an explicit null.
type caseSpec struct {
	Op      string    `yaml:"op"`
	Author  string    `yaml:"author"`
	Content string    `yaml:"content"`
	ID      yaml.Node `yaml:"id"`
}

// Load reads a case list from a YAML or JSON file.
func Load(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open case file: %w", err)
	}
	cases, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cases, nil
}

// Parse decodes a case list. JSON input parses as well since every JSON
// document is valid YAML.
func Parse(data []byte) ([]Case, error) {
	var specs []caseSpec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("parse case file: %w", err)
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("case file contains no cases")
	}

	cases := make([]Case, 0, len(specs))
	for idx, spec := range specs {
		c, err := spec.build()
		if err != nil {
			return nil, fmt.Errorf("case %d: %w", idx+1, err)
		}
		cases = append(cases, c)
	}
	return cases, nil
}

func (s caseSpec) build() (Case, error) {
	op := Op(strings.ToLower(strings.TrimSpace(s.Op)))
	switch op {
	case OpPost:
		return Post(s.Author, s.Content), nil
	case OpLike:
		if s.ID.IsZero() {
			return Case{}, fmt.Errorf("like case requires an id (use null to probe a null id)")
		}
		var id interface{}
		if err := s.ID.Decode(&id); err != nil {
			return Case{}, fmt.Errorf("id: %w", err)
		}
		return Like(id), nil
	case "":
		return Case{}, fmt.Errorf("op is required")
	default:
		return Case{}, fmt.Errorf("unsupported op %q (use 'post' or 'like')", s.Op)
	}
}
