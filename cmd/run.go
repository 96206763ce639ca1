package cmd

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/seeksim/seeksim/sim"
)

var (
	// CLI flags for the run command
	workloadFile string // Path to the YAML workload file
	algorithm    string // Scheduling policy selector
	headPosition int    // Initial head position
	diskSize     int    // Addressable track count
	direction    string // Initial sweep direction for scan/look
)

// runCmd executes one simulation over a YAML workload file
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one disk-scheduling simulation over a workload file",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := LoadWorkload(workloadFile)
		if err != nil {
			logrus.Fatalf("unable to read workload: %v", err)
		}

		// Explicit flags win; otherwise the workload file's values apply.
		if !cmd.Flags().Changed("algorithm") && cfg.Algorithm != "" {
			algorithm = cfg.Algorithm
		}
		if !cmd.Flags().Changed("head") && cfg.InitialHeadPosition != nil {
			headPosition = *cfg.InitialHeadPosition
		}
		if !cmd.Flags().Changed("disk-size") && cfg.DiskSize != nil {
			diskSize = *cfg.DiskSize
		}
		if !cmd.Flags().Changed("direction") && cfg.Direction != "" {
			direction = cfg.Direction
		}

		logrus.Infof("Starting %s simulation: %d requests, head=%d, disk=%d",
			algorithm, len(cfg.Requests), headPosition, diskSize)

		res, err := sim.Simulate(algorithm, cfg.SimRequests(), headPosition, diskSize, sim.Direction(direction))
		if err != nil {
			logrus.Fatalf("simulation failed: %v", err)
		}

		printResult(algorithm, headPosition, res)
	},
}

// printResult displays the head-movement trace and aggregate statistics.
func printResult(algorithm string, head int, res sim.Result) {
	fmt.Println("=== Head Movement ===")
	for _, ev := range res.Trace {
		switch {
		case ev.RequestID != nil:
			fmt.Printf("t=%-6d track %-4d (request %d, seek %d)\n", ev.Time, ev.Position, *ev.RequestID, *ev.SeekDistance)
		case ev.Action == sim.ActionJumpToStart:
			fmt.Printf("t=%-6d track %-4d (jump to start, seek %d)\n", ev.Time, ev.Position, *ev.SeekDistance)
		default:
			fmt.Printf("t=%-6d track %-4d (start)\n", ev.Time, ev.Position)
		}
	}

	stats := res.Statistics
	fmt.Println("=== Simulation Statistics ===")
	fmt.Printf("Algorithm            : %s\n", strings.ToUpper(algorithm))
	fmt.Printf("Initial Head Position: %d\n", head)
	fmt.Printf("Completed Requests   : %d\n", stats.TotalRequests)
	fmt.Printf("Total Seek Time      : %d\n", stats.TotalSeekTime)
	fmt.Printf("Average Seek Time    : %.2f\n", stats.AvgSeekTime)
	fmt.Printf("Average Response Time: %.2f\n", stats.AvgResponseTime)
	fmt.Printf("Total Completion Time: %d ticks\n", stats.TotalCompletionTime)
	fmt.Printf("Throughput           : %.2f requests/tick\n", stats.Throughput)
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&workloadFile, "workload", "workload.yaml", "Path to the YAML workload file")
	runCmd.Flags().StringVar(&algorithm, "algorithm", sim.AlgorithmFCFS, "Scheduling policy (fcfs, sstf, scan, c_scan, look, c_look)")
	runCmd.Flags().IntVar(&headPosition, "head", 50, "Initial head position")
	runCmd.Flags().IntVar(&diskSize, "disk-size", sim.DefaultDiskSize, "Number of addressable tracks")
	runCmd.Flags().StringVar(&direction, "direction", string(sim.DirectionUp), "Initial sweep direction for scan/look (up, down)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
