package walkfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gosnmp/gosnmp"
)

// Entry is one parsed OID line. Type is the gosnmp BER type matching the
// display tag, so downstream tooling can treat parsed walks like live PDUs.
type Entry struct {
	OID     string
	TypeTag string
	Type    gosnmp.Asn1BER
	Value   string
}

// Walk is a parsed walk file: header/inline comments plus OID entries.
type Walk struct {
	Comments []string
	Entries  []Entry
}

// typeTags maps the display tags a walk tool prints to BER value types.
var typeTags = map[string]gosnmp.Asn1BER{
	"STRING":     gosnmp.OctetString,
	"Hex-STRING": gosnmp.OctetString,
	"OID":        gosnmp.ObjectIdentifier,
	"INTEGER":    gosnmp.Integer,
	"Timeticks":  gosnmp.TimeTicks,
	"Gauge32":    gosnmp.Gauge32,
	"Counter32":  gosnmp.Counter32,
	"Counter64":  gosnmp.Counter64,
	"IpAddress":  gosnmp.IPAddress,
}

// ParseFile reads and parses a walk file from disk.
func ParseFile(path string) (*Walk, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open walk file: %w", err)
	}
	defer f.Close()
	w, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return w, nil
}

// Parse reads walk lines from r. Blank lines are skipped, comment lines are
// collected, and malformed OID lines fail with their line number.
func Parse(r io.Reader) (*Walk, error) {
	w := &Walk{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			w.Comments = append(w.Comments, line)
			continue
		}

		entry, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		w.Entries = append(w.Entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read walk: %w", err)
	}
	return w, nil
}

func parseLine(line string) (Entry, error) {
	oid, rest, ok := strings.Cut(line, " = ")
	if !ok {
		return Entry{}, fmt.Errorf("no %q separator in %q", " = ", line)
	}
	if !strings.HasPrefix(oid, ".") {
		return Entry{}, fmt.Errorf("OID %q does not start with a dot", oid)
	}

	tag, value, ok := strings.Cut(rest, ": ")
	if !ok {
		// A bare "Tag:" with an empty value is still a valid walk line.
		tag = strings.TrimSuffix(rest, ":")
		if tag == rest {
			return Entry{}, fmt.Errorf("no type tag in %q", line)
		}
	}

	berType, ok := typeTags[tag]
	if !ok {
		return Entry{}, fmt.Errorf("unknown type tag %q", tag)
	}

	return Entry{OID: oid, TypeTag: tag, Type: berType, Value: value}, nil
}

// Lookup returns the first entry with the given OID.
func (w *Walk) Lookup(oid string) (Entry, bool) {
	for _, e := range w.Entries {
		if e.OID == oid {
			return e, true
		}
	}
	return Entry{}, false
}

// CountByType returns how many entries carry each display type tag.
func (w *Walk) CountByType() map[string]int {
	out := make(map[string]int)
	for _, e := range w.Entries {
		out[e.TypeTag]++
	}
	return out
}
