package inspect

import (
	"strings"
	"testing"
	"time"

	"github.com/fixturenet/walkgen/internal/mibgen"
	"github.com/fixturenet/walkgen/internal/walkfile"
)

func TestSummarizeGeneratedWalk(t *testing.T) {
	stamp := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	lines, err := mibgen.AssembleAt("cisco", "c3850-48p", "sw01", stamp)
	if err != nil {
		t.Fatalf("AssembleAt failed: %v", err)
	}

	w, err := walkfile.Parse(strings.NewReader(strings.Join(lines, "\n") + "\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	r := Summarize(w)
	if r.Vendor != "cisco" {
		t.Fatalf("Vendor = %q, want cisco", r.Vendor)
	}
	if r.Hostname != "sw01" {
		t.Fatalf("Hostname = %q, want sw01", r.Hostname)
	}
	if r.Interfaces != 53 {
		t.Fatalf("Interfaces = %d, want 53", r.Interfaces)
	}
	if r.OIDCount != mibgen.CountOIDs(lines) {
		t.Fatalf("OIDCount = %d, want %d", r.OIDCount, mibgen.CountOIDs(lines))
	}
	if r.Comments != 5 {
		t.Fatalf("Comments = %d, want 5", r.Comments)
	}
	if r.TypeCounts["Gauge32"] == 0 {
		t.Fatalf("TypeCounts = %v, want Gauge32 entries", r.TypeCounts)
	}
}

func TestGuessVendorDisambiguation(t *testing.T) {
	cases := []struct {
		descr string
		want  string
	}{
		{"Cisco IOS Software, C3850 Software", "cisco"},
		{"Cisco Meraki MS390-48UXB Cloud-Managed Aggregation Switch", "meraki"},
		{"HPE Aruba 2930F 48G 4SFP+ Switch", "hpe"},
		{"Aruba CX 6300 48G 4SFP56 Switch", "aruba"},
		{"Juniper Networks, Inc. ex4300-48p Ethernet Switch", "juniper"},
		{"ExtremeXOS (X465-48W) version 32.3.1.4", "extreme"},
		{"Palo Alto Networks PA-440 firewall", "paloalto"},
		{"Arista Networks EOS version 4.28.3M", "arista"},
		{"Dell EMC Networking N3248TE-ON", "dell"},
		{"FortiSwitch-448E-FPOE v7.2.3", "fortinet"},
		{"Linux 5.10 server", "unknown"},
	}
	for _, tc := range cases {
		if got := GuessVendor(tc.descr); got != tc.want {
			t.Fatalf("GuessVendor(%q) = %q, want %q", tc.descr, got, tc.want)
		}
	}
}
