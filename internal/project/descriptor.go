package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DescriptorDir holds per-project settings inside the project root.
	DescriptorDir = ".locator"
	// DescriptorFile is the default descriptor name inside DescriptorDir.
	DescriptorFile = "project.yaml"
)

// Descriptor is the optional project file listing excluded areas:
//
//	excluded:
//	  - build
//	  - out
//	exclude_patterns:
//	  - "**/node_modules"
type Descriptor struct {
	Excluded        []string `yaml:"excluded"`
	ExcludePatterns []string `yaml:"exclude_patterns"`
}

// DefaultDescriptorPath returns <root>/.locator/project.yaml.
func DefaultDescriptorPath(root string) string {
	return filepath.Join(root, DescriptorDir, DescriptorFile)
}

// LoadDescriptor reads a descriptor. A missing file yields an empty
// descriptor and no error.
func LoadDescriptor(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Descriptor{}, nil
		}
		return nil, fmt.Errorf("failed to read project descriptor: %w", err)
	}

	var d Descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("invalid project descriptor %s: %w", path, err)
	}
	for _, p := range d.ExcludePatterns {
		if err := ValidatePattern(p); err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q in %s: %w", p, path, err)
		}
	}
	return &d, nil
}
