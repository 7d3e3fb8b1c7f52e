package catalog

// templates maps vendor key -> model key -> device template. Keys are
// lowercase slugs and case-sensitive. The descriptions and uplink names are
// fixture constants; downstream parsers match them verbatim, so edits here
// are breaking changes.
var templates = map[string]map[string]Device{
	"cisco": {
		"c3850-48p": {
			Model:       "WS-C3850-48P",
			Description: "Cisco IOS Software, C3850 Software (C3850-UNIVERSALK9-M), Version 16.12.4, RELEASE SOFTWARE (fc5)",
			Ports:       48,
			Stacking:    true,
			PoE:         true,
			Uplinks:     []string{"TenGigabitEthernet1/1/1", "TenGigabitEthernet1/1/2", "TenGigabitEthernet1/1/3", "TenGigabitEthernet1/1/4"},
		},
		"c3650-48p": {
			Model:       "WS-C3650-48PD",
			Description: "Cisco IOS Software, C3650 Software (C3650-UNIVERSALK9-M), Version 16.12.4, RELEASE SOFTWARE (fc5)",
			Ports:       48,
			Stacking:    true,
			PoE:         true,
			Uplinks:     []string{"TenGigabitEthernet1/1/1", "TenGigabitEthernet1/1/2"},
		},
		"c9300-48p": {
			Model:       "C9300-48P",
			Description: "Cisco IOS Software [Gibraltar], Catalyst L3 Switch Software (CAT9K_IOSXE), Version 17.6.3, RELEASE SOFTWARE (fc4)",
			Ports:       48,
			Stacking:    true,
			PoE:         true,
			Uplinks:     []string{"TenGigabitEthernet1/1/1", "TenGigabitEthernet1/1/2", "TenGigabitEthernet1/1/3", "TenGigabitEthernet1/1/4"},
		},
		"n9k-c9300": {
			Model:       "N9K-C9300",
			Description: "Cisco Nexus Operating System (NX-OS) Software, Version 9.3(8)",
			Ports:       32,
			Stacking:    false,
			PoE:         false,
			Uplinks:     []string{"Ethernet1/1", "Ethernet1/2", "Ethernet1/3", "Ethernet1/4"},
		},
	},
	"juniper": {
		"ex4300-48p": {
			Model:       "EX4300-48P",
			Description: "Juniper Networks, Inc. ex4300-48p Ethernet Switch, kernel JUNOS 20.4R3.8, Build date: 2021-10-15",
			Ports:       48,
			Stacking:    true,
			PoE:         true,
			Uplinks:     []string{"ge-0/1/0", "ge-0/1/1", "ge-0/1/2", "ge-0/1/3"},
		},
		"qfx5100-48s": {
			Model:       "QFX5100-48S",
			Description: "Juniper Networks, Inc. qfx5100-48s-6q Ethernet Switch, kernel JUNOS 20.4R3.8",
			Ports:       48,
			Stacking:    false,
			PoE:         false,
			Uplinks:     []string{"et-0/0/48", "et-0/0/49", "et-0/0/50", "et-0/0/51"},
		},
	},
	"aruba": {
		"cx6300-48g": {
			Model:       "JL762A",
			Description: "Aruba CX 6300 48G 4SFP56 Switch, ArubaOS-CX FL.10.10.1010",
			Ports:       48,
			Stacking:    true,
			PoE:         false,
			Uplinks:     []string{"1/1/49", "1/1/50", "1/1/51", "1/1/52"},
		},
		"cx8360-48y8c": {
			Model:       "JL706A",
			Description: "Aruba CX 8360-48Y8C Switch, ArubaOS-CX FL.10.10.1010",
			Ports:       48,
			Stacking:    false,
			PoE:         false,
			Uplinks:     []string{"1/1/49", "1/1/50", "1/1/51", "1/1/52"},
		},
	},
	"extreme": {
		"x465-48w": {
			Model:       "X465-48W",
			Description: "ExtremeXOS (X465-48W) version 32.3.1.4 by release-manager on Thu Nov  4 19:18:03 EDT 2021",
			Ports:       48,
			Stacking:    true,
			PoE:         true,
			Uplinks:     []string{"1:49", "1:50", "1:51", "1:52"},
		},
	},
	"paloalto": {
		"pa-440": {
			Model:       "PA-440",
			Description: "Palo Alto Networks PA-440 firewall, PAN-OS 10.2.3",
			Ports:       8,
			Stacking:    false,
			PoE:         false,
			Uplinks:     []string{"ethernet1/1", "ethernet1/2"},
		},
	},
	"hpe": {
		"aruba-2930f-48g": {
			Model:       "JL262A",
			Description: "HPE Aruba 2930F 48G 4SFP+ Switch, FL.16.11.0009",
			Ports:       48,
			Stacking:    true,
			PoE:         false,
			Uplinks:     []string{"1/49", "1/50", "1/51", "1/52"},
		},
		"aruba-6300m-48g": {
			Model:       "JL659A",
			Description: "HPE Aruba CX 6300M 48G Class 4 PoE 4SFP56 Switch, ArubaOS-CX FL.10.11.1020",
			Ports:       48,
			Stacking:    true,
			PoE:         true,
			Uplinks:     []string{"1/1/49", "1/1/50", "1/1/51", "1/1/52"},
		},
	},
	"arista": {
		"7050sx3-48yc12": {
			Model:       "7050SX3-48YC12",
			Description: "Arista Networks EOS version 4.28.3M",
			Ports:       48,
			Stacking:    false,
			PoE:         false,
			Uplinks:     []string{"Ethernet49/1", "Ethernet50/1", "Ethernet51/1", "Ethernet52/1"},
		},
		"7280sr3-48yc8": {
			Model:       "7280SR3-48YC8",
			Description: "Arista Networks EOS version 4.28.3M",
			Ports:       48,
			Stacking:    false,
			PoE:         false,
			Uplinks:     []string{"Ethernet49/1", "Ethernet50/1", "Ethernet51/1", "Ethernet52/1"},
		},
	},
	"dell": {
		"n3248te-on": {
			Model:       "N3248TE-ON",
			Description: "Dell EMC Networking N3248TE-ON, OS10 Enterprise 10.5.3.4",
			Ports:       48,
			Stacking:    true,
			PoE:         true,
			Uplinks:     []string{"ethernet1/1/49", "ethernet1/1/50", "ethernet1/1/51", "ethernet1/1/52"},
		},
		"s5248f-on": {
			Model:       "S5248F-ON",
			Description: "Dell EMC Networking S5248F-ON, OS10 Enterprise 10.5.3.4",
			Ports:       48,
			Stacking:    true,
			PoE:         false,
			Uplinks:     []string{"ethernet1/1/49", "ethernet1/1/50", "ethernet1/1/51", "ethernet1/1/52"},
		},
	},
	"fortinet": {
		"fs-448e-fpoe": {
			Model:       "FS-448E-FPOE",
			Description: "FortiSwitch-448E-FPOE v7.2.3,build0517,221201 (GA)",
			Ports:       48,
			Stacking:    true,
			PoE:         true,
			Uplinks:     []string{"port49", "port50", "port51", "port52"},
		},
		"fs-548d-fpoe": {
			Model:       "FS-548D-FPOE",
			Description: "FortiSwitch-548D-FPOE v7.2.3,build0517,221201 (GA)",
			Ports:       48,
			Stacking:    true,
			PoE:         true,
			Uplinks:     []string{"port49", "port50", "port51", "port52"},
		},
	},
	"meraki": {
		"ms390-48uxb": {
			Model:       "MS390-48UXB",
			Description: "Cisco Meraki MS390-48UXB Cloud-Managed Aggregation Switch, firmware 15.21",
			Ports:       48,
			Stacking:    true,
			PoE:         true,
			Uplinks:     []string{"Port49", "Port50", "Port51", "Port52"},
		},
		"ms425-48": {
			Model:       "MS425-48",
			Description: "Cisco Meraki MS425-48 Cloud-Managed Aggregation Switch, firmware 15.21",
			Ports:       48,
			Stacking:    true,
			PoE:         false,
			Uplinks:     []string{"Port49", "Port50", "Port51", "Port52"},
		},
	},
}
