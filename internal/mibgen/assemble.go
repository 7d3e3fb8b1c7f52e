package mibgen

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/fixturenet/walkgen/internal/catalog"
	"github.com/fixturenet/walkgen/internal/logging"
)

var log = logging.L("assembler")

// DefaultHostname is used when the caller does not supply one.
const DefaultHostname = "niac-device-01"

// Assemble builds the complete walk file line sequence for a device:
// header comments, system section, blank, interface section, blank, then
// the vendor enterprise section (possibly empty). Catalog errors propagate
// unchanged so the CLI can render the known-key lists.
func Assemble(vendor, model, hostname string) ([]string, error) {
	return AssembleAt(vendor, model, hostname, time.Now())
}

// AssembleAt is Assemble with an explicit generation timestamp for the
// header, which keeps output reproducible under test.
func AssembleAt(vendor, model, hostname string, now time.Time) ([]string, error) {
	dev, err := catalog.Lookup(vendor, model)
	if err != nil {
		return nil, err
	}
	if hostname == "" {
		hostname = DefaultHostname
	}

	lines := []string{
		fmt.Sprintf("# SNMP Walk File for %s %s", titleVendor(vendor), dev.Model),
		"# Generated by walkgen synthetic walk generator",
		fmt.Sprintf("# Date: %s", now.Format("2006-01-02 15:04:05")),
		fmt.Sprintf("# Hostname: %s", hostname),
		"#",
	}

	lines = append(lines, SystemSection(dev, hostname)...)
	lines = append(lines, "")
	lines = append(lines, InterfaceSection(dev)...)
	lines = append(lines, "")
	lines = append(lines, EnterpriseSection(vendor, dev)...)

	log.Debug("assembled walk",
		logging.KeyVendor, vendor,
		logging.KeyModel, model,
		"lines", len(lines),
		"oids", CountOIDs(lines))

	return lines, nil
}

// CountOIDs counts the OID value lines in a walk, skipping comments and
// blanks. This is the number reported in the CLI summary.
func CountOIDs(lines []string) int {
	n := 0
	for _, line := range lines {
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		n++
	}
	return n
}

// titleVendor capitalizes the vendor slug for the header title. Catalog
// keys are single lowercase words, so uppercasing the first rune matches
// the established header format.
func titleVendor(vendor string) string {
	if vendor == "" {
		return vendor
	}
	r := []rune(vendor)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
