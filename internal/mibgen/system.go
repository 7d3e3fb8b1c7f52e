// Package mibgen renders the OID line sections of a synthetic SNMP walk
// file. All generators are pure: they take a device template and return
// ordered lines, leaving file IO to the walkfile package.
package mibgen

import (
	"fmt"

	"github.com/fixturenet/walkgen/internal/catalog"
)

// Fixture constants for the system subtree. sysObjectID is the Cisco
// enterprise OID for every vendor; consumers match the constant as-is, so
// it must not be made vendor-correct.
const (
	sysObjectID = ".1.3.6.1.4.1.9.1.1719"
	sysUpTime   = "(123456789) 14 days, 6:56:07.89"
	sysContact  = "Network Administrator"
	sysLocation = "NiAC-Go Simulated Device"
	sysServices = 78
)

// SystemSection renders the system MIB subtree (.1.3.6.1.2.1.1.x).
func SystemSection(dev catalog.Device, hostname string) []string {
	return []string{
		fmt.Sprintf(".1.3.6.1.2.1.1.1.0 = STRING: %s", dev.Description),
		fmt.Sprintf(".1.3.6.1.2.1.1.2.0 = OID: %s", sysObjectID),
		fmt.Sprintf(".1.3.6.1.2.1.1.3.0 = Timeticks: %s", sysUpTime),
		fmt.Sprintf(".1.3.6.1.2.1.1.4.0 = STRING: %s", sysContact),
		fmt.Sprintf(".1.3.6.1.2.1.1.5.0 = STRING: %s", hostname),
		fmt.Sprintf(".1.3.6.1.2.1.1.6.0 = STRING: %s", sysLocation),
		fmt.Sprintf(".1.3.6.1.2.1.1.7.0 = INTEGER: %d", sysServices),
	}
}
