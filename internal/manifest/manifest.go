// Package manifest loads YAML batch manifests describing a set of walk
// files to generate in one run.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Manifest is a batch generation request: shared defaults plus one entry
// per walk file.
type Manifest struct {
	Defaults Defaults `yaml:"defaults"`
	Devices  []Entry  `yaml:"devices"`
}

// Defaults apply to entries that leave the matching field empty.
type Defaults struct {
	Hostname  string `yaml:"hostname,omitempty"`
	OutputDir string `yaml:"output_dir,omitempty"`
}

// Entry names one device to generate. Vendor and model are catalog keys;
// Output defaults to "<hostname>.walk" under the output directory.
type Entry struct {
	Vendor   string `yaml:"vendor"`
	Model    string `yaml:"model"`
	Hostname string `yaml:"hostname,omitempty"`
	Output   string `yaml:"output,omitempty"`
}

// Load reads and normalizes a manifest file. Defaults are folded into each
// entry so callers can treat entries as self-contained. fallbackDir is used
// as the output directory when the manifest does not set one.
func Load(path, fallbackDir string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if len(m.Devices) == 0 {
		return nil, fmt.Errorf("manifest %s lists no devices", path)
	}
	if m.Defaults.OutputDir == "" {
		m.Defaults.OutputDir = fallbackDir
	}

	for i := range m.Devices {
		e := &m.Devices[i]
		if e.Vendor == "" || e.Model == "" {
			return nil, fmt.Errorf("manifest %s: device %d is missing vendor or model", path, i+1)
		}
		if e.Hostname == "" {
			e.Hostname = m.Defaults.Hostname
		}
		if e.Output == "" {
			if e.Hostname == "" {
				return nil, fmt.Errorf("manifest %s: device %d needs an output or hostname to derive one", path, i+1)
			}
			e.Output = e.Hostname + ".walk"
		}
		if m.Defaults.OutputDir != "" && !filepath.IsAbs(e.Output) {
			e.Output = filepath.Join(m.Defaults.OutputDir, e.Output)
		}
	}

	return &m, nil
}
