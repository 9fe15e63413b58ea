package compose

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/arifer612/undock-compose/internal/fileutil"
)

// Marshal serializes a compose document. Map keys come out in sorted
// order, so equal inputs always produce byte-identical documents.
func Marshal(file *File) ([]byte, error) {
	data, err := yaml.Marshal(file)
	if err != nil {
		return nil, fmt.Errorf("marshal compose file: %w", err)
	}
	return data, nil
}

// Render returns the document as a YAML string for dry-run display.
func Render(file *File) (string, error) {
	data, err := Marshal(file)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Write serializes the document and writes it atomically to path.
func Write(file *File, path string) error {
	data, err := Marshal(file)
	if err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("write compose file: %w", err)
	}
	return nil
}
