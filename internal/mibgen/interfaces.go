package mibgen

import (
	"fmt"

	"github.com/fixturenet/walkgen/internal/catalog"
)

// ifType values and speeds used by the interface table. Every interface is
// reported up; there is no down/testing state modeling.
const (
	ifTypeEthernet    = 6  // ethernetCsmacd
	ifTypePropVirtual = 53 // propVirtual, used for the management VLAN

	speedAccess = 1000000000
	speedUplink = 10000000000
)

// InterfaceSection renders ifNumber and the ifTable rows. Index assignment
// is fixed: 1..ports are access ports with a synthetic GigabitEthernet
// naming, then the template's uplinks in declared order, and the final
// index is always the Vlan1 management interface.
func InterfaceSection(dev catalog.Device) []string {
	total := dev.TotalInterfaces()
	lines := make([]string, 0, total*5+1)
	lines = append(lines, fmt.Sprintf(".1.3.6.1.2.1.2.1.0 = INTEGER: %d", total))

	for i := 1; i <= total; i++ {
		name := "Vlan1"
		ifType := ifTypePropVirtual
		speed := int64(speedAccess)

		switch {
		case i <= dev.Ports:
			name = fmt.Sprintf("GigabitEthernet1/0/%d", i)
			ifType = ifTypeEthernet
		case i <= dev.Ports+len(dev.Uplinks):
			name = dev.Uplinks[i-dev.Ports-1]
			ifType = ifTypeEthernet
			speed = speedUplink
		}

		lines = append(lines,
			fmt.Sprintf(".1.3.6.1.2.1.2.2.1.1.%d = INTEGER: %d", i, i),
			fmt.Sprintf(".1.3.6.1.2.1.2.2.1.2.%d = STRING: %s", i, name),
			fmt.Sprintf(".1.3.6.1.2.1.2.2.1.3.%d = INTEGER: %d", i, ifType),
			fmt.Sprintf(".1.3.6.1.2.1.2.2.1.5.%d = Gauge32: %d", i, speed),
			fmt.Sprintf(".1.3.6.1.2.1.2.2.1.8.%d = INTEGER: 1", i),
		)
	}

	return lines
}
