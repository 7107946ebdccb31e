// Package seed loads the bundled sample projects from YAML.
package seed

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"changemakers-go/internal/model"
)

type file struct {
	Projects []model.Project `yaml:"projects"`
}

type Source struct {
	path string
}

func NewSource(path string) *Source {
	return &Source{path: path}
}

func (s *Source) Name() string {
	return "seed"
}

func (s *Source) Fetch(ctx context.Context) ([]model.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open seed: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses a seed document. Every project must carry an id.
func Decode(r io.Reader) ([]model.Project, error) {
	var doc file
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	for i, p := range doc.Projects {
		if p.ID == "" {
			return nil, fmt.Errorf("decode seed: project %d has no id", i)
		}
	}
	if doc.Projects == nil {
		doc.Projects = []model.Project{}
	}
	return doc.Projects, nil
}
