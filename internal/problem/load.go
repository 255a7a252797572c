package problem

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// Problem files are small by nature; anything bigger is a mistake.
const maxProblemFileSize = 1024 * 1024

// Load reads and validates a problem file. The format is chosen by
// extension: .yaml and .yml parse as YAML, everything else as JSON.
func Load(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open problem file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat problem file: %w", err)
	}
	if info.Size() > maxProblemFileSize {
		return nil, fmt.Errorf("problem file too large: %d bytes (max %d)", info.Size(), maxProblemFileSize)
	}

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read problem file: %w", err)
	}

	var p *Problem
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		p, err = ParseYAML(content)
	default:
		p, err = ParseJSON(content)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid problem %s: %w", path, err)
	}
	return p, nil
}

// ParseJSON decodes a JSON problem definition. Unknown fields are rejected
// so typos in field names surface immediately instead of silently dropping
// parts of the problem.
func ParseJSON(data []byte) (*Problem, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var p Problem
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("invalid JSON: trailing data after problem definition")
	}
	return &p, nil
}

// ParseYAML decodes a YAML problem definition with the same field names as
// the JSON form.
func ParseYAML(data []byte) (*Problem, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}

	var p Problem
	if err := k.Unmarshal("", &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal problem: %w", err)
	}
	return &p, nil
}
