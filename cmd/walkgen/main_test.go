package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestGenerateCommandWritesWalkFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "c3850.walk")

	err := execute(t, "generate", "--vendor", "cisco", "--model", "c3850-48p", "--output", out, "--hostname", "sw01")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	content := string(data)
	if !strings.HasPrefix(content, "# SNMP Walk File for Cisco WS-C3850-48P\n") {
		t.Fatalf("unexpected header: %q", content[:60])
	}
	if !strings.Contains(content, ".1.3.6.1.2.1.2.1.0 = INTEGER: 53\n") {
		t.Fatal("ifNumber line missing")
	}
	if !strings.HasSuffix(content, "\n") {
		t.Fatal("walk file must end with a newline")
	}
}

func TestGenerateCommandUnknownVendor(t *testing.T) {
	out := filepath.Join(t.TempDir(), "x.walk")

	err := execute(t, "generate", "--vendor", "acme", "--model", "x1", "--output", out)
	if err == nil {
		t.Fatal("expected error for unknown vendor")
	}
	if !strings.Contains(err.Error(), `unknown vendor "acme"`) {
		t.Fatalf("err = %v, want unknown vendor", err)
	}
	if !strings.Contains(err.Error(), "cisco") || !strings.Contains(err.Error(), "paloalto") {
		t.Fatalf("err = %v, want known vendor list", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Fatal("no output file should be written on lookup failure")
	}
}

func TestGenerateCommandUnknownModel(t *testing.T) {
	err := execute(t, "generate", "--vendor", "juniper", "--model", "mx960", "--output", filepath.Join(t.TempDir(), "x.walk"))
	if err == nil {
		t.Fatal("expected error for unknown model")
	}
	if !strings.Contains(err.Error(), "ex4300-48p") {
		t.Fatalf("err = %v, want juniper model list", err)
	}
	if strings.Contains(err.Error(), "c3850-48p") {
		t.Fatalf("err = %v, must not list other vendors' models", err)
	}
}

func TestBatchCommandGeneratesAllEntries(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "batch.yaml")
	manifestYAML := `
defaults:
  output_dir: ` + dir + `
devices:
  - vendor: cisco
    model: c9300-48p
    hostname: sw01
  - vendor: arista
    model: 7050sx3-48yc12
    hostname: sw02
`
	if err := os.WriteFile(manifestPath, []byte(manifestYAML), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	if err := execute(t, "batch", manifestPath); err != nil {
		t.Fatalf("batch failed: %v", err)
	}

	for _, name := range []string{"sw01.walk", "sw02.walk"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("expected %s to exist: %v", name, err)
		}
	}
}

func TestBatchCommandReportsFailures(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "batch.yaml")
	manifestYAML := `
defaults:
  output_dir: ` + dir + `
devices:
  - vendor: cisco
    model: c9300-48p
    hostname: ok
  - vendor: acme
    model: x1
    hostname: bad
`
	if err := os.WriteFile(manifestPath, []byte(manifestYAML), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	err := execute(t, "batch", manifestPath)
	if err == nil {
		t.Fatal("expected batch error for unknown vendor entry")
	}
	if !strings.Contains(err.Error(), "1 of 2") {
		t.Fatalf("err = %v, want failure count", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "ok.walk")); statErr != nil {
		t.Fatalf("good entry should still be generated: %v", statErr)
	}
}

func TestSanitizeCommandSingleFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "real.walk")
	out := filepath.Join(dir, "clean.walk")
	input := ".1.3.6.1.2.1.1.4.0 = STRING: John Smith\n.1.3.6.1.2.1.1.5.0 = STRING: dc1-sw-07\n"
	if err := os.WriteFile(in, []byte(input), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	if err := execute(t, "sanitize", in, out); err != nil {
		t.Fatalf("sanitize failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "netadmin@niac-go.com") {
		t.Fatalf("contact not sanitized: %s", data)
	}
}

func TestInspectCommandAcceptsGeneratedWalk(t *testing.T) {
	out := filepath.Join(t.TempDir(), "ex4300.walk")
	if err := execute(t, "generate", "--vendor", "juniper", "--model", "ex4300-48p", "--output", out); err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if err := execute(t, "inspect", out); err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
}
