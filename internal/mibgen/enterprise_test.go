package mibgen

import (
	"testing"

	"github.com/fixturenet/walkgen/internal/catalog"
)

func TestEnterpriseSectionCisco(t *testing.T) {
	dev := catalog.Device{Model: "WS-C3850-48P"}
	lines := EnterpriseSection("cisco", dev)
	if len(lines) != 8 {
		t.Fatalf("len(lines) = %d, want 8", len(lines))
	}
	if lines[0] != ".1.3.6.1.4.1.9.9.13.1.3.1.3.1 = STRING: WS-C3850-48P" {
		t.Fatalf("entPhysicalModel line = %q", lines[0])
	}
	if lines[2] != ".1.3.6.1.4.1.9.9.13.1.3.1.11.1 = STRING: FOCCXXXXXXX" {
		t.Fatalf("serial line = %q", lines[2])
	}
}

func TestEnterpriseSectionJuniper(t *testing.T) {
	dev := catalog.Device{Model: "EX4300-48P"}
	lines := EnterpriseSection("juniper", dev)
	want := []string{
		".1.3.6.1.4.1.2636.3.1.2.0 = STRING: EX4300-48P",
		".1.3.6.1.4.1.2636.3.1.3.0 = STRING: SNXXXXXXXX",
	}
	if len(lines) != len(want) {
		t.Fatalf("len(lines) = %d, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestEnterpriseSectionUnknownVendorIsEmpty(t *testing.T) {
	if lines := EnterpriseSection("arista", catalog.Device{}); lines != nil {
		t.Fatalf("expected no enterprise lines, got %v", lines)
	}
}

func TestRegisterEnterpriseExtendsDispatch(t *testing.T) {
	RegisterEnterprise("testvendor", func(dev catalog.Device) []string {
		return []string{".1.3.6.1.4.1.99999.1.0 = STRING: " + dev.Model}
	})
	defer delete(enterpriseGenerators, "testvendor")

	lines := EnterpriseSection("testvendor", catalog.Device{Model: "X"})
	if len(lines) != 1 || lines[0] != ".1.3.6.1.4.1.99999.1.0 = STRING: X" {
		t.Fatalf("registered generator not dispatched: %v", lines)
	}
}
