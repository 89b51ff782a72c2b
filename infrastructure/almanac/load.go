package almanac

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	domain "github.com/ankarhem/advent-of-code/domain/almanac"
	"github.com/ankarhem/advent-of-code/domain/mapping"
)

// Document is a loaded almanac with the raw bytes it came from.
type Document struct {
	Almanac domain.Almanac
	Raw     []byte
}

// LoadFile reads an almanac from disk, choosing the YAML decoder for
// .yaml and .yml files and the text format otherwise.
func LoadFile(path string, opts ...mapping.PipelineOption) (Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read %s: %w", path, err)
	}

	alm, err := Decode(path, raw, opts...)
	if err != nil {
		return Document{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return Document{Almanac: alm, Raw: raw}, nil
}

// Decode parses raw using the format implied by name's extension.
func Decode(name string, raw []byte, opts ...mapping.PipelineOption) (domain.Almanac, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return ParseYAML(strings.NewReader(string(raw)), opts...)
	default:
		return Parse(strings.NewReader(string(raw)), opts...)
	}
}
