package habitat

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a habitat spec from a YAML file.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec file: %w", err)
	}

	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing spec YAML: %w", err)
	}

	return &spec, nil
}

// LoadProject loads a habitat spec from a project directory.
// It looks for habitat.yaml in the given directory.
func LoadProject(projectDir string) (*Spec, error) {
	specPath := filepath.Join(projectDir, "habitat.yaml")
	return Load(specPath)
}

// Default returns the spec the editor opens with when no project is given.
func Default() *Spec {
	return &Spec{
		SpecVersion: "0.1",
		Name:        "orb-of-night",
		Habitat: Shell{
			Shape:  ShapeDome,
			Radius: 10,
			Height: 15,
			Crew:   8,
		},
	}
}
