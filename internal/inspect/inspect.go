// Package inspect summarizes parsed walk files: identity rows, interface
// count, per-type tallies, and a best-effort vendor guess from sysDescr.
package inspect

import (
	"strconv"
	"strings"

	"github.com/fixturenet/walkgen/internal/walkfile"
)

const (
	oidSysDescr = ".1.3.6.1.2.1.1.1.0"
	oidSysName  = ".1.3.6.1.2.1.1.5.0"
	oidIfNumber = ".1.3.6.1.2.1.2.1.0"
)

// Report is the digest the CLI prints for one walk file.
type Report struct {
	Description string
	Hostname    string
	Vendor      string
	Interfaces  int
	OIDCount    int
	Comments    int
	TypeCounts  map[string]int
}

// Summarize builds a report from a parsed walk.
func Summarize(w *walkfile.Walk) Report {
	r := Report{
		OIDCount:   len(w.Entries),
		Comments:   len(w.Comments),
		TypeCounts: w.CountByType(),
	}

	if e, ok := w.Lookup(oidSysDescr); ok {
		r.Description = e.Value
		r.Vendor = GuessVendor(e.Value)
	}
	if e, ok := w.Lookup(oidSysName); ok {
		r.Hostname = e.Value
	}
	if e, ok := w.Lookup(oidIfNumber); ok {
		if n, err := strconv.Atoi(e.Value); err == nil {
			r.Interfaces = n
		}
	}

	return r
}

// GuessVendor infers the vendor from a system description. Order matters:
// Meraki descriptions mention Cisco, and Aruba CX descriptions mention HPE.
func GuessVendor(sysDescr string) string {
	descr := strings.ToLower(sysDescr)
	switch {
	case strings.Contains(descr, "meraki"):
		return "meraki"
	case strings.Contains(descr, "cisco"):
		return "cisco"
	case strings.Contains(descr, "juniper"):
		return "juniper"
	case strings.Contains(descr, "hpe") || strings.Contains(descr, "hewlett-packard"):
		return "hpe"
	case strings.Contains(descr, "aruba"):
		return "aruba"
	case strings.Contains(descr, "extremexos") || strings.Contains(descr, "extreme"):
		return "extreme"
	case strings.Contains(descr, "palo alto"):
		return "paloalto"
	case strings.Contains(descr, "arista"):
		return "arista"
	case strings.Contains(descr, "dell"):
		return "dell"
	case strings.Contains(descr, "fortiswitch") || strings.Contains(descr, "fortinet"):
		return "fortinet"
	default:
		return "unknown"
	}
}
