package mibgen

import (
	"fmt"

	"github.com/fixturenet/walkgen/internal/catalog"
)

// EnterpriseFunc renders a vendor's enterprise MIB subtree for a device.
type EnterpriseFunc func(dev catalog.Device) []string

// enterpriseGenerators is the open dispatch table for vendor enterprise
// sections. Vendors without an entry simply get no enterprise block; that
// is valid output, not an error. Adding a vendor means adding one entry
// here and nothing else.
var enterpriseGenerators = map[string]EnterpriseFunc{
	"cisco":   ciscoEnterprise,
	"juniper": juniperEnterprise,
}

// EnterpriseSection renders the enterprise subtree for the given vendor,
// or nil when the vendor has no registered generator.
func EnterpriseSection(vendor string, dev catalog.Device) []string {
	gen, ok := enterpriseGenerators[vendor]
	if !ok {
		return nil
	}
	return gen(dev)
}

// RegisterEnterprise installs or replaces the enterprise generator for a
// vendor key. Intended for init-time extension, not concurrent use.
func RegisterEnterprise(vendor string, gen EnterpriseFunc) {
	enterpriseGenerators[vendor] = gen
}

// ciscoEnterprise renders entity, CPU, and memory rows under the Cisco
// enterprise arc (.1.3.6.1.4.1.9). The serial number is a fixed
// placeholder, not generated per device.
func ciscoEnterprise(dev catalog.Device) []string {
	return []string{
		fmt.Sprintf(".1.3.6.1.4.1.9.9.13.1.3.1.3.1 = STRING: %s", dev.Model),
		".1.3.6.1.4.1.9.9.13.1.3.1.5.1 = STRING: Chassis",
		".1.3.6.1.4.1.9.9.13.1.3.1.11.1 = STRING: FOCCXXXXXXX",
		".1.3.6.1.4.1.9.9.109.1.1.1.1.3.1 = Gauge32: 5",
		".1.3.6.1.4.1.9.9.109.1.1.1.1.4.1 = Gauge32: 8",
		".1.3.6.1.4.1.9.9.109.1.1.1.1.5.1 = Gauge32: 10",
		".1.3.6.1.4.1.9.9.48.1.1.1.5.1 = INTEGER: 4194304000",
		".1.3.6.1.4.1.9.9.48.1.1.1.6.1 = INTEGER: 12582912000",
	}
}

// juniperEnterprise renders the chassis rows under the Juniper enterprise
// arc (.1.3.6.1.4.1.2636).
func juniperEnterprise(dev catalog.Device) []string {
	return []string{
		fmt.Sprintf(".1.3.6.1.4.1.2636.3.1.2.0 = STRING: %s", dev.Model),
		".1.3.6.1.4.1.2636.3.1.3.0 = STRING: SNXXXXXXXX",
	}
}
