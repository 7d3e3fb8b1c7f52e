package sanitize

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadMapping reads a persisted mapping file. A missing file yields an
// empty mapping so first runs need no setup.
func LoadMapping(path string) (*Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewMapping(), nil
		}
		return nil, fmt.Errorf("read mapping: %w", err)
	}

	m := NewMapping()
	if err := json.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("parse mapping %s: %w", path, err)
	}
	if m.IPs == nil {
		m.IPs = make(map[string]string)
	}
	if m.Hostnames == nil {
		m.Hostnames = make(map[string]string)
	}
	return m, nil
}

// SaveMapping persists a mapping atomically.
func SaveMapping(path string, m *Mapping) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode mapping: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write mapping: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename mapping: %w", err)
	}
	return nil
}
