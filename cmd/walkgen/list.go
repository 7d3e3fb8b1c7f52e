package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/fixturenet/walkgen/internal/catalog"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available device templates",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	fmt.Println("\n=== Available Device Templates ===")
	for _, vendor := range catalog.Vendors() {
		fmt.Println()
		color.New(color.Bold).Printf("%s:\n", strings.ToUpper(vendor))

		models, err := catalog.Models(vendor)
		if err != nil {
			return err
		}
		for _, model := range models {
			dev, err := catalog.Lookup(vendor, model)
			if err != nil {
				return err
			}
			fmt.Printf("  %-20s - %s (%d ports)\n", model, dev.Model, dev.Ports)
		}
	}
	fmt.Println()
	return nil
}
