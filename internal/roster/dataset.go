package roster

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoDataset is returned by Load when the dataset file does not exist.
var ErrNoDataset = errors.New("dataset not found")

// Load reads the full record set from path. Files ending in .yaml or .yml
// are decoded as YAML; everything else is treated as JSON.
func Load(path string) ([]Record, error) {
	resolved := strings.TrimSpace(path)
	if resolved == "" {
		return nil, fmt.Errorf("dataset path is empty")
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoDataset, resolved)
		}
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var records []Record
	switch strings.ToLower(filepath.Ext(resolved)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("decode dataset: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("decode dataset: %w", err)
		}
	}
	return records, nil
}

// Save writes records as indented JSON, creating parent directories as needed.
func Save(path string, records []Record) error {
	resolved := strings.TrimSpace(path)
	if resolved == "" {
		return fmt.Errorf("dataset path is empty")
	}
	if records == nil {
		records = []Record{}
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create dataset dir: %w", err)
	}

	bytes, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal dataset: %w", err)
	}
	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}
	return nil
}
