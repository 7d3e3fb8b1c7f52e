// Package sanitize rewrites real-world walk files into fixture-branded
// ones. Hardware facts (serials, MACs, models, interface layout) are kept;
// identifying data (IPs, hostnames, contact, location, communities) is
// replaced deterministically so the same input always maps to the same
// output across runs and files.
package sanitize

import (
	"bufio"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"net"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/fixturenet/walkgen/internal/logging"
)

var log = logging.L("sanitize")

// Options control the replacement values.
type Options struct {
	Domain    string
	Location  string
	Contact   string
	Community string
}

// DefaultOptions returns the fixture-brand replacement set.
func DefaultOptions() Options {
	return Options{
		Domain:    "niac-go.com",
		Location:  "DC-WEST",
		Contact:   "netadmin@niac-go.com",
		Community: "public",
	}
}

// Mapping records every transformation so repeated runs stay consistent.
// It serializes to JSON for reuse across invocations.
type Mapping struct {
	IPs       map[string]string `json:"ip_mappings"`
	Hostnames map[string]string `json:"hostnames"`
	Stats     struct {
		FilesProcessed       int `json:"files_processed"`
		IPsTransformed       int `json:"ips_transformed"`
		HostnamesTransformed int `json:"hostnames_transformed"`
	} `json:"statistics"`
}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{
		IPs:       make(map[string]string),
		Hostnames: make(map[string]string),
	}
}

// Sanitizer applies the replacement rules line by line. It is not safe for
// concurrent use; batch callers process files sequentially.
type Sanitizer struct {
	opts    Options
	mapping *Mapping
}

func New(opts Options, mapping *Mapping) *Sanitizer {
	if mapping == nil {
		mapping = NewMapping()
	}
	return &Sanitizer{opts: opts, mapping: mapping}
}

// Mapping exposes the accumulated transformations.
func (s *Sanitizer) Mapping() *Mapping {
	return s.mapping
}

// System subtree OIDs whose values carry identifying data.
const (
	oidSysContact  = ".1.3.6.1.2.1.1.4.0"
	oidSysName     = ".1.3.6.1.2.1.1.5.0"
	oidSysLocation = ".1.3.6.1.2.1.1.6.0"
)

var (
	stringValueRe = regexp.MustCompile(`= STRING: (.+)`)
	ipValueRe     = regexp.MustCompile(`IpAddress: (\d+\.\d+\.\d+\.\d+)`)
)

// Tables whose row index ends in a dotted-quad address. Rows under these
// prefixes carry the identifying IP in the OID itself, not just the value.
var ipIndexedPrefixes = []string{
	".1.3.6.1.2.1.3.1.1",  // atTable, index ifIndex.1.<ip>
	".1.3.6.1.2.1.4.20.1", // ipAddrTable, index <ip>
	".1.3.6.1.2.1.4.21.1", // ipRouteTable, index <ip>
	".1.3.6.1.2.1.4.22.1", // ipNetToMediaTable, index ifIndex.<ip>
}

// File sanitizes one walk file. Output goes through a temp file and rename
// so a failed run never leaves a half-sanitized walk behind.
func (s *Sanitizer) File(inPath, outPath string) (err error) {
	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	tmp := outPath + ".tmp"
	out, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		out.Close()
		if err != nil {
			os.Remove(tmp)
		}
	}()

	startIPs := len(s.mapping.IPs)
	startHosts := len(s.mapping.Hostnames)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	writer := bufio.NewWriter(out)
	for scanner.Scan() {
		if _, err = fmt.Fprintln(writer, s.Line(scanner.Text())); err != nil {
			return fmt.Errorf("write line: %w", err)
		}
	}
	if err = scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if err = writer.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	if err = out.Sync(); err != nil {
		return fmt.Errorf("sync output: %w", err)
	}
	if err = out.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	if err = os.Rename(tmp, outPath); err != nil {
		return fmt.Errorf("rename output: %w", err)
	}

	s.mapping.Stats.FilesProcessed++
	s.mapping.Stats.IPsTransformed += len(s.mapping.IPs) - startIPs
	s.mapping.Stats.HostnamesTransformed += len(s.mapping.Hostnames) - startHosts

	log.Debug("sanitized walk file", "input", inPath, logging.KeyOutput, outPath)
	return nil
}

// Line applies all replacement rules to a single walk line.
func (s *Sanitizer) Line(line string) string {
	switch {
	case isOID(line, oidSysContact) || strings.Contains(line, "sysContact"):
		line = stringValueRe.ReplaceAllString(line, "= STRING: "+s.opts.Contact)
	case isOID(line, oidSysLocation) || strings.Contains(line, "sysLocation"):
		line = stringValueRe.ReplaceAllString(line, fmt.Sprintf("= STRING: NiAC-Go - %s - Network Operations", s.opts.Location))
	case isOID(line, oidSysName) || strings.Contains(line, "sysName"):
		if m := stringValueRe.FindStringSubmatch(line); len(m) > 1 {
			line = stringValueRe.ReplaceAllString(line, "= STRING: "+s.hostname(strings.TrimSpace(m[1])))
		}
	case strings.Contains(line, "snmpCommunity") || strings.Contains(line, "community"):
		line = stringValueRe.ReplaceAllString(line, "= STRING: "+s.opts.Community)
	}

	line = ipValueRe.ReplaceAllStringFunc(line, func(match string) string {
		ip := ipValueRe.FindStringSubmatch(match)[1]
		if isSpecialIP(ip) {
			return match
		}
		return "IpAddress: " + s.ip(ip)
	})

	line = s.oidIndexIP(line)

	if s.opts.Domain != "" && !isOID(line, oidSysContact) && !strings.Contains(line, "sysContact") {
		line = regexp.MustCompile(`\.local\b`).ReplaceAllString(line, ".niac-go.local")
		line = regexp.MustCompile(`\.(com|net|org)\b`).ReplaceAllString(line, "."+s.opts.Domain)
	}

	return line
}

// oidIndexIP rewrites the address forming the row index of IP-indexed
// tables. The same mapping backs IpAddress values, so the index suffix and
// the value of an ipAdEntAddr row land on the same replacement.
func (s *Sanitizer) oidIndexIP(line string) string {
	oid, value, hasValue := strings.Cut(line, " ")

	var table string
	for _, prefix := range ipIndexedPrefixes {
		if strings.HasPrefix(oid, prefix+".") {
			table = prefix
			break
		}
	}
	if table == "" {
		return line
	}

	// After the table entry prefix comes the column, then the row index;
	// the address is the index's last four labels.
	labels := strings.Split(strings.TrimPrefix(oid, table+"."), ".")
	if len(labels) < 5 {
		return line
	}
	tail := labels[len(labels)-4:]
	for _, label := range tail {
		if !isOctet(label) {
			return line
		}
	}

	ip := strings.Join(tail, ".")
	if isSpecialIP(ip) {
		return line
	}

	head := labels[: len(labels)-4 : len(labels)-4]
	oid = table + "." + strings.Join(append(head, strings.Split(s.ip(ip), ".")...), ".")
	if !hasValue {
		return oid
	}
	return oid + " " + value
}

func isOctet(s string) bool {
	if s == "" || len(s) > 3 {
		return false
	}
	n, err := strconv.Atoi(s)
	return err == nil && n <= 255
}

// ip maps an address into 10.0.0.0/8 deterministically: the original first
// octet selects a /16 and a SHA-256 of the full address fills the host part.
func (s *Sanitizer) ip(ip string) string {
	if mapped, ok := s.mapping.IPs[ip]; ok {
		return mapped
	}

	parsed := net.ParseIP(ip)
	if parsed == nil || parsed.To4() == nil {
		return ip
	}

	var subnet byte
	switch first := parsed.To4()[0]; {
	case first == 10:
		subnet = 0
	case first == 172:
		subnet = 1
	case first == 192:
		subnet = 2
	case first < 10 || first == 63:
		subnet = 100
	default:
		subnet = 3
	}

	hash := sha256.Sum256([]byte(ip))
	hashInt := binary.BigEndian.Uint32(hash[:4])
	mapped := fmt.Sprintf("10.%d.%d.%d", subnet, byte(hashInt>>8), byte(hashInt))

	s.mapping.IPs[ip] = mapped
	return mapped
}

// hostname maps a device name to "niac-core-<type>-<nn>", inferring the
// type from common naming patterns.
func (s *Sanitizer) hostname(hostname string) string {
	if mapped, ok := s.mapping.Hostnames[hostname]; ok {
		return mapped
	}

	var deviceType string
	lower := strings.ToLower(hostname)
	switch {
	case strings.Contains(lower, "sw") || strings.Contains(lower, "switch"):
		deviceType = "sw"
	case strings.Contains(lower, "rtr") || strings.Contains(lower, "router"):
		deviceType = "rtr"
	case strings.Contains(lower, "ap") || strings.Contains(lower, "access"):
		deviceType = "ap"
	case strings.Contains(lower, "srv") || strings.Contains(lower, "server"):
		deviceType = "srv"
	case strings.Contains(lower, "fw") || strings.Contains(lower, "firewall"):
		deviceType = "fw"
	default:
		deviceType = "dev"
	}

	hash := sha256.Sum256([]byte(hostname))
	num := binary.BigEndian.Uint16(hash[:2]) % 100
	mapped := fmt.Sprintf("niac-core-%s-%02d", deviceType, num)

	s.mapping.Hostnames[hostname] = mapped
	return mapped
}

func isOID(line, oid string) bool {
	return strings.HasPrefix(line, oid+" ")
}

// isSpecialIP reports addresses that must survive sanitization unchanged.
func isSpecialIP(ip string) bool {
	specials := []string{
		"0.0.0.0", "255.255.255.255",
		"127.0.0.1", "127.0.0.0",
		"224.0.0.", "239.255.255.250",
	}
	for _, special := range specials {
		if strings.HasPrefix(ip, special) || ip == special {
			return true
		}
	}
	return false
}
