package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/fixturenet/walkgen/internal/inspect"
	"github.com/fixturenet/walkgen/internal/walkfile"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <walk-file>",
	Short: "Summarize a walk file",
	Long: `Parse a walk file and print a digest: system identity, detected
vendor, interface count, and value type distribution. Useful for checking
generated fixtures and for sizing up captured walks before sanitizing.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	w, err := walkfile.ParseFile(args[0])
	if err != nil {
		return err
	}

	r := inspect.Summarize(w)

	color.New(color.Bold).Printf("%s\n", args[0])
	if r.Description != "" {
		fmt.Printf("  Description: %s\n", r.Description)
	}
	if r.Hostname != "" {
		fmt.Printf("  Hostname:    %s\n", r.Hostname)
	}
	fmt.Printf("  Vendor:      %s\n", r.Vendor)
	if r.Interfaces > 0 {
		fmt.Printf("  Interfaces:  %d\n", r.Interfaces)
	}
	fmt.Printf("  OIDs:        %d (%d comment lines)\n", r.OIDCount, r.Comments)

	tags := make([]string, 0, len(r.TypeCounts))
	for tag := range r.TypeCounts {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	for _, tag := range tags {
		fmt.Printf("    %-10s %d\n", tag, r.TypeCounts[tag])
	}

	return nil
}
