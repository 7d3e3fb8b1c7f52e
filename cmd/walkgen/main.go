package main

import (
	"fmt"
	"os"

	"github.com/fixturenet/walkgen/internal/config"
	"github.com/fixturenet/walkgen/internal/logging"
	"github.com/spf13/cobra"
)

var (
	version = "0.3.0"
	commit  = "dev"
	date    = "unknown"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "walkgen",
	Short: "Synthetic SNMP walk file generator",
	Long: `walkgen emits static SNMP walk files for modern network devices.

Walk files are flat OID-to-value text dumps that look like the output of a
real SNMP tree traversal. They make deterministic test fixtures for network
management software without needing live switches or firewalls.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		warnings := cfg.Validate()
		logging.Init(cfg.LogFormat, cfg.LogLevel, nil)
		log := logging.L("config")
		for _, w := range warnings {
			log.Warn("config adjusted", logging.KeyError, w.Error())
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("walkgen %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is /etc/walkgen/walkgen.yaml)")

	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
