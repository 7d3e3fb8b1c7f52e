package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/fixturenet/walkgen/internal/sanitize"
	"github.com/spf13/cobra"
)

var (
	sanMappingFile string
	sanDomain      string
	sanLocation    string
	sanContact     string
	sanCommunity   string
	sanBatch       bool
	sanInputDir    string
	sanOutputDir   string
)

var sanitizeCmd = &cobra.Command{
	Use:   "sanitize <input-walk> <output-walk>",
	Short: "Sanitize real walk files into fixture-branded ones",
	Long: `Sanitize SNMP walk files by replacing identifying network data with
deterministic fixture data. The same input IP or hostname always maps to
the same output value, within a run and, with --mapping-file, across runs.

Kept as-is: serial numbers, MAC addresses, hardware models, interface
layout, VLAN IDs. Transformed: IP addresses (into 10.0.0.0/8), hostnames,
DNS domains, contact and location strings, community strings.`,
	Example: `  # Sanitize a single walk file
  walkgen sanitize device.walk device-sanitized.walk

  # Batch mode over a directory of .walk files
  walkgen sanitize --batch --input-dir walks/ --output-dir sanitized/

  # Persistent mapping across runs
  walkgen sanitize --mapping-file ip-map.json device.walk output.walk`,
	Args: func(cmd *cobra.Command, args []string) error {
		if sanBatch {
			if sanInputDir == "" || sanOutputDir == "" {
				return fmt.Errorf("batch mode requires --input-dir and --output-dir")
			}
			return nil
		}
		if len(args) != 2 {
			return fmt.Errorf("requires <input-walk> and <output-walk> arguments")
		}
		return nil
	},
	RunE: runSanitize,
}

func init() {
	rootCmd.AddCommand(sanitizeCmd)

	sanitizeCmd.Flags().StringVar(&sanMappingFile, "mapping-file", "", "JSON file to load/save IP and hostname mappings")
	sanitizeCmd.Flags().StringVar(&sanDomain, "domain", "niac-go.com", "replacement domain for hostnames and DNS")
	sanitizeCmd.Flags().StringVar(&sanLocation, "location", "DC-WEST", "replacement location suffix")
	sanitizeCmd.Flags().StringVar(&sanContact, "contact", "netadmin@niac-go.com", "replacement contact email")
	sanitizeCmd.Flags().StringVar(&sanCommunity, "community", "public", "replacement SNMP community string")
	sanitizeCmd.Flags().BoolVar(&sanBatch, "batch", false, "process every .walk file in --input-dir")
	sanitizeCmd.Flags().StringVar(&sanInputDir, "input-dir", "", "input directory for batch mode")
	sanitizeCmd.Flags().StringVar(&sanOutputDir, "output-dir", "", "output directory for batch mode")
}

func runSanitize(cmd *cobra.Command, args []string) error {
	mapping := sanitize.NewMapping()
	if sanMappingFile != "" {
		var err error
		if mapping, err = sanitize.LoadMapping(sanMappingFile); err != nil {
			return err
		}
	}

	s := sanitize.New(sanitize.Options{
		Domain:    sanDomain,
		Location:  sanLocation,
		Contact:   sanContact,
		Community: sanCommunity,
	}, mapping)

	if sanBatch {
		if err := sanitizeBatch(s); err != nil {
			return err
		}
	} else {
		if err := s.File(args[0], args[1]); err != nil {
			return fmt.Errorf("sanitize %s: %w", args[0], err)
		}
		color.Green("Sanitized %s -> %s", args[0], args[1])
	}

	if sanMappingFile != "" {
		if err := sanitize.SaveMapping(sanMappingFile, s.Mapping()); err != nil {
			return err
		}
	}

	stats := s.Mapping().Stats
	fmt.Printf("  IPs transformed:       %d\n", stats.IPsTransformed)
	fmt.Printf("  Hostnames transformed: %d\n", stats.HostnamesTransformed)
	return nil
}

func sanitizeBatch(s *sanitize.Sanitizer) error {
	if err := os.MkdirAll(sanOutputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	walks, err := filepath.Glob(filepath.Join(sanInputDir, "*.walk"))
	if err != nil {
		return fmt.Errorf("list walk files: %w", err)
	}
	if len(walks) == 0 {
		return fmt.Errorf("no .walk files found in %s", sanInputDir)
	}

	fmt.Printf("Found %d walk files\n", len(walks))
	for i, in := range walks {
		out := filepath.Join(sanOutputDir, filepath.Base(in))
		fmt.Printf("[%d/%d] Sanitizing %s...\n", i+1, len(walks), filepath.Base(in))
		if err := s.File(in, out); err != nil {
			color.Red("  %v", err)
			continue
		}
	}

	color.Green("Batch sanitization complete")
	fmt.Printf("  Files processed: %d\n", s.Mapping().Stats.FilesProcessed)
	return nil
}
