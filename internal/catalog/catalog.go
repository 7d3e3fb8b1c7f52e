// Package catalog holds the static device template catalog the walk
// generator is driven by. The catalog is defined once at startup and is
// never mutated afterwards.
package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Device describes one device template. Uplinks are ordered; their position
// determines the interface index they are assigned during generation.
type Device struct {
	Model       string
	Description string
	Ports       int
	Stacking    bool
	PoE         bool
	Uplinks     []string
}

// TotalInterfaces returns the interface count used for ifTable generation:
// access ports, uplinks, plus one synthetic management VLAN interface.
func (d Device) TotalInterfaces() int {
	return d.Ports + len(d.Uplinks) + 1
}

// VendorNotFoundError reports an unknown vendor key along with the known
// vendor keys so the CLI can print actionable text.
type VendorNotFoundError struct {
	Vendor string
	Known  []string
}

func (e *VendorNotFoundError) Error() string {
	return fmt.Sprintf("unknown vendor %q (available: %s)", e.Vendor, strings.Join(e.Known, ", "))
}

// ModelNotFoundError reports an unknown model key for a known vendor along
// with that vendor's model keys.
type ModelNotFoundError struct {
	Vendor string
	Model  string
	Known  []string
}

func (e *ModelNotFoundError) Error() string {
	return fmt.Sprintf("unknown model %q for vendor %q (available: %s)", e.Model, e.Vendor, strings.Join(e.Known, ", "))
}

// Lookup resolves a (vendor, model) key pair to a device template.
func Lookup(vendor, model string) (Device, error) {
	models, ok := templates[vendor]
	if !ok {
		return Device{}, &VendorNotFoundError{Vendor: vendor, Known: Vendors()}
	}
	dev, ok := models[model]
	if !ok {
		mods, _ := Models(vendor)
		return Device{}, &ModelNotFoundError{Vendor: vendor, Model: model, Known: mods}
	}
	return dev, nil
}

// Vendors returns all vendor keys, sorted.
func Vendors() []string {
	out := make([]string, 0, len(templates))
	for v := range templates {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Models returns the model keys for a vendor, sorted.
func Models(vendor string) ([]string, error) {
	models, ok := templates[vendor]
	if !ok {
		return nil, &VendorNotFoundError{Vendor: vendor, Known: Vendors()}
	}
	out := make([]string, 0, len(models))
	for m := range models {
		out = append(out, m)
	}
	sort.Strings(out)
	return out, nil
}
