// Package config resolves conversion options and output paths.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultComposeName is the output filename used when no explicit
// output path is given.
const DefaultComposeName = "docker-compose.yaml"

// Conversion holds the resolved settings for one conversion run.
type Conversion struct {
	// TemplatePath is the input unRAID XML template.
	TemplatePath string

	// ComposePath is the output compose file.
	ComposePath string

	// ExtendedLabels mirrors Config attributes into vendor labels.
	ExtendedLabels bool
}

// Resolve validates the template path and fills in the default output
// path: DefaultComposeName in the template's own directory.
func Resolve(templatePath, composePath string, extendedLabels bool) (*Conversion, error) {
	if templatePath == "" {
		return nil, fmt.Errorf("template path required")
	}

	info, err := os.Stat(templatePath)
	if err != nil {
		return nil, fmt.Errorf("template: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("template %s is a directory", templatePath)
	}

	if composePath == "" {
		composePath = filepath.Join(filepath.Dir(templatePath), DefaultComposeName)
	}

	return &Conversion{
		TemplatePath:   templatePath,
		ComposePath:    composePath,
		ExtendedLabels: extendedLabels,
	}, nil
}
