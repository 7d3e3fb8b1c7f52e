package main

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/fixturenet/walkgen/internal/logging"
	"github.com/fixturenet/walkgen/internal/manifest"
	"github.com/fixturenet/walkgen/internal/mibgen"
	"github.com/fixturenet/walkgen/internal/walkfile"
	"github.com/fixturenet/walkgen/internal/workerpool"
	"github.com/spf13/cobra"
)

var batchWorkers int

var batchCmd = &cobra.Command{
	Use:   "batch <manifest.yaml>",
	Short: "Generate walk files for every device in a YAML manifest",
	Long: `Generate a set of walk files described by a YAML manifest.

Manifest format:

  defaults:
    hostname: lab-device
    output_dir: walks
  devices:
    - vendor: cisco
      model: c3850-48p
      hostname: sw01
    - vendor: juniper
      model: ex4300-48p
      hostname: sw02
      output: juniper-lab.walk

Entries without an output derive "<hostname>.walk" under the output
directory. Jobs run on a bounded worker pool; failures are reported per
entry and do not stop the rest of the batch.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "concurrent generation jobs (default from config)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	m, err := manifest.Load(args[0], cfg.OutputDir)
	if err != nil {
		return err
	}

	workers := batchWorkers
	if workers <= 0 {
		workers = cfg.BatchWorkers
	}

	log := logging.L("batch")
	log.Info("starting batch", "devices", len(m.Devices), "workers", workers)

	start := time.Now()
	pool := workerpool.New(workers, len(m.Devices))
	for _, entry := range m.Devices {
		entry := entry
		pool.Submit(workerpool.Job{
			Name: fmt.Sprintf("%s/%s -> %s", entry.Vendor, entry.Model, entry.Output),
			Run: func() error {
				lines, err := mibgen.Assemble(entry.Vendor, entry.Model, entry.Hostname)
				if err != nil {
					return err
				}
				return walkfile.Write(entry.Output, lines)
			},
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	pool.Shutdown(ctx)

	failures := pool.Failures()
	generated := pool.Completed() - len(failures)

	fmt.Printf("Batch complete in %s\n", time.Since(start).Round(time.Millisecond))
	color.Green("  Generated: %d", generated)
	if len(failures) > 0 {
		color.Red("  Failed:    %d", len(failures))
		for _, f := range failures {
			color.Red("    %s", f.Error())
		}
		return fmt.Errorf("%d of %d walk files failed", len(failures), len(m.Devices))
	}
	return nil
}
