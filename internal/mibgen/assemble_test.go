package mibgen

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fixturenet/walkgen/internal/catalog"
)

var testStamp = time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC)

func TestAssembleC3850Scenario(t *testing.T) {
	lines, err := AssembleAt("cisco", "c3850-48p", "sw01", testStamp)
	if err != nil {
		t.Fatalf("AssembleAt failed: %v", err)
	}

	if got := lines[0]; got != "# SNMP Walk File for Cisco WS-C3850-48P" {
		t.Fatalf("header title = %q", got)
	}
	if got := lines[2]; got != "# Date: 2024-03-01 12:30:45" {
		t.Fatalf("header date = %q", got)
	}
	if got := lines[3]; got != "# Hostname: sw01" {
		t.Fatalf("header hostname = %q", got)
	}
	if got := lines[4]; got != "#" {
		t.Fatalf("header separator = %q", got)
	}

	// First non-comment line is sysDescr with the description verbatim.
	first := firstOIDLine(lines)
	if !strings.HasPrefix(first, ".1.3.6.1.2.1.1.1.0 = STRING: Cisco IOS Software, C3850 Software") {
		t.Fatalf("first OID line = %q", first)
	}

	// 48 ports + 4 uplinks + 1 management = 53.
	wantLines := map[string]bool{
		".1.3.6.1.2.1.2.1.0 = INTEGER: 53":                             false,
		".1.3.6.1.2.1.2.2.1.2.49 = STRING: TenGigabitEthernet1/1/1":    false,
		".1.3.6.1.2.1.2.2.1.5.49 = Gauge32: 10000000000":               false,
		".1.3.6.1.2.1.2.2.1.2.53 = STRING: Vlan1":                      false,
		".1.3.6.1.2.1.2.2.1.3.53 = INTEGER: 53":                        false,
		".1.3.6.1.4.1.9.9.13.1.3.1.3.1 = STRING: WS-C3850-48P":         false,
		".1.3.6.1.2.1.1.5.0 = STRING: sw01":                            false,
		".1.3.6.1.2.1.1.2.0 = OID: .1.3.6.1.4.1.9.1.1719":              false,
		".1.3.6.1.2.1.1.3.0 = Timeticks: (123456789) 14 days, 6:56:07.89": false,
	}
	for _, line := range lines {
		if _, ok := wantLines[line]; ok {
			wantLines[line] = true
		}
	}
	for line, seen := range wantLines {
		if !seen {
			t.Fatalf("expected line missing from walk: %q", line)
		}
	}
}

func TestAssembleUnknownVendorPropagates(t *testing.T) {
	_, err := Assemble("acme", "x1", "")
	var vnf *catalog.VendorNotFoundError
	if !errors.As(err, &vnf) {
		t.Fatalf("expected VendorNotFoundError, got %T: %v", err, err)
	}
}

func TestAssembleDefaultsHostname(t *testing.T) {
	lines, err := AssembleAt("aruba", "cx6300-48g", "", testStamp)
	if err != nil {
		t.Fatalf("AssembleAt failed: %v", err)
	}
	found := false
	for _, line := range lines {
		if line == ".1.3.6.1.2.1.1.5.0 = STRING: niac-device-01" {
			found = true
		}
	}
	if !found {
		t.Fatal("default hostname not applied to sysName")
	}
}

func TestAssembleNoEnterpriseVendorEndsWithBlank(t *testing.T) {
	lines, err := AssembleAt("extreme", "x465-48w", "sw02", testStamp)
	if err != nil {
		t.Fatalf("AssembleAt failed: %v", err)
	}
	if lines[len(lines)-1] != "" {
		t.Fatalf("last line = %q, want blank separator", lines[len(lines)-1])
	}
	for _, line := range lines {
		if strings.HasPrefix(line, ".1.3.6.1.4.1.") {
			t.Fatalf("unexpected enterprise line for extreme: %q", line)
		}
	}
}

func TestAssembleEveryCatalogEntry(t *testing.T) {
	for _, vendor := range catalog.Vendors() {
		models, err := catalog.Models(vendor)
		if err != nil {
			t.Fatalf("Models(%s): %v", vendor, err)
		}
		for _, model := range models {
			lines, err := AssembleAt(vendor, model, "sw01", testStamp)
			if err != nil {
				t.Fatalf("AssembleAt(%s, %s): %v", vendor, model, err)
			}
			if len(lines) == 0 {
				t.Fatalf("%s/%s: empty walk", vendor, model)
			}
			dev, _ := catalog.Lookup(vendor, model)
			first := firstOIDLine(lines)
			if first != ".1.3.6.1.2.1.1.1.0 = STRING: "+dev.Description {
				t.Fatalf("%s/%s: first OID line = %q", vendor, model, first)
			}
		}
	}
}

func firstOIDLine(lines []string) string {
	for _, line := range lines {
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line
	}
	return ""
}
