package cmd

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lane-gate/lane-gate/gate"
)

var (
	// CLI flags for the evaluate command
	waitingCounts   []float64 // Vehicles waiting per local lane
	competingCounts []float64 // Vehicles in competing/cross traffic per lane
	minWaiting      float64   // Minimum waiting vehicles before a lane is considered
	maxCompeting    float64   // Maximum competing traffic allowed for a threshold switch
	priorityRatio   float64   // Waiting/competing ratio that forces GREEN
	scenarioPath    string    // Optional YAML scenario file (overrides lane flags)
	logLevel        string    // Log verbosity level
)

// evaluateCmd computes GREEN/RED decisions for one snapshot of lane counts.
var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate lane priority for one snapshot",
	Long:  "Evaluate the priority rule over parallel waiting and competing counts, given as flags or as a YAML scenario file, and print per-lane decisions with a summary.",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		waiting, competing := waitingCounts, competingCounts
		params := gate.NewParams(minWaiting, maxCompeting, priorityRatio)
		name := "flags"

		if scenarioPath != "" {
			sc, err := gate.LoadScenario(scenarioPath)
			if err != nil {
				logrus.Fatalf("Failed to load scenario %s: %v", scenarioPath, err)
			}
			if err := sc.Validate(); err != nil {
				logrus.Fatalf("Invalid scenario %s: %v", scenarioPath, err)
			}
			waiting, competing = sc.Waiting, sc.Competing
			params = sc.Params()
			name = sc.Name
		}

		runID := uuid.NewString()
		logrus.Infof("evaluation %s: scenario=%q lanes=%d params=%+v", runID, name, len(waiting), params)

		result, err := gate.EvaluateBatch(waiting, competing, params)
		if err != nil {
			logrus.Fatalf("Evaluation failed: %v", err)
		}

		printReport(result)
	},
}

// printReport writes the human-readable decision summary to stdout.
func printReport(r *gate.BatchResult) {
	fmt.Printf("Waiting vehicles:  %v\n", r.Waiting)
	fmt.Printf("Competing traffic: %v\n", r.Competing)
	fmt.Printf("Decisions:         %s\n", formatDecisions(r.Decisions))
	fmt.Printf("Ratios:            %v\n", r.Ratios)

	s := gate.Summarize(r)
	fmt.Printf("GREEN lanes: %d/%d (share %.2f)\n", s.GreenCount, s.Lanes, s.GreenShare)
	fmt.Printf("RED lanes:   %d\n", s.RedCount)
	if s.Lanes > 0 {
		fmt.Printf("Mean waiting %.2f, mean competing %.2f, mean ratio %.2f\n",
			s.MeanWaiting, s.MeanCompeting, s.MeanRatio)
		fmt.Printf("Busiest lane: %d (ratio %.2f)\n", s.BusiestLane, s.MaxRatio)
	}
}

// formatDecisions renders a decision slice as "[GREEN RED ...]".
func formatDecisions(decisions []bool) string {
	labels := make([]string, len(decisions))
	for i, d := range decisions {
		if d {
			labels[i] = "GREEN"
		} else {
			labels[i] = "RED"
		}
	}
	return "[" + strings.Join(labels, " ") + "]"
}

func init() {
	evaluateCmd.Flags().Float64SliceVar(&waitingCounts, "waiting", []float64{5, 2, 8, 1}, "Comma-separated waiting vehicle counts per lane")
	evaluateCmd.Flags().Float64SliceVar(&competingCounts, "competing", []float64{1, 3, 2, 5}, "Comma-separated competing traffic counts per lane")
	evaluateCmd.Flags().Float64Var(&minWaiting, "min-waiting-threshold", gate.DefaultMinWaitingThreshold, "Minimum waiting vehicles required to consider switching")
	evaluateCmd.Flags().Float64Var(&maxCompeting, "max-competing-threshold", gate.DefaultMaxCompetingThreshold, "Maximum competing traffic allowed for switching")
	evaluateCmd.Flags().Float64Var(&priorityRatio, "priority-ratio", gate.DefaultPriorityRatio, "Waiting/competing ratio that triggers priority")
	evaluateCmd.Flags().StringVar(&scenarioPath, "scenario", "", "Path to a YAML scenario file (overrides lane flags)")
	evaluateCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	rootCmd.AddCommand(evaluateCmd)
}
