package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/spf13/cobra"

	log "github.com/sirupsen/logrus"
)

var (
	flagLogLevel     string
	flagMetricsAddr  string
	flagTUI          bool
	flagCPUProfile   string
	flagMemProfile   string
	flagMaxConflicts int64
	flagTimeout      time.Duration
	flagWatch        string
)

var solveCmd = &cobra.Command{
	Use:   "solve <file.cnf>",
	Short: "Solve a DIMACS CNF instance",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSolveCmd,
}

func init() {
	f := solveCmd.Flags()
	f.StringVar(&flagLogLevel, "log-level", "info", "logrus level: trace, debug, info, warn, error")
	f.StringVar(&flagMetricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics at this address for the duration of the solve")
	f.BoolVar(&flagTUI, "tui", false, "render a live dashboard of search statistics instead of log lines")
	f.StringVar(&flagCPUProfile, "cpuprofile", "", "write a pprof CPU profile to this file")
	f.StringVar(&flagMemProfile, "memprofile", "", "write a pprof heap profile to this file")
	f.Int64Var(&flagMaxConflicts, "max-conflicts", -1, "give up after this many conflicts (negative disables)")
	f.DurationVar(&flagTimeout, "timeout", -1, "give up after this much wall-clock time (negative disables)")
	f.StringVar(&flagWatch, "watch", "", "solve every .cnf file in this directory, then keep watching it for new ones")
}

func runSolveCmd(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("yasolve: %w", err)
	}
	log.SetLevel(level)

	if flagCPUProfile != "" {
		f, err := os.Create(flagCPUProfile)
		if err != nil {
			return fmt.Errorf("yasolve: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("yasolve: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	if flagMetricsAddr != "" {
		stop := serveMetrics(flagMetricsAddr)
		defer stop()
	}

	cfg := runConfig{
		tui:          flagTUI,
		maxConflicts: flagMaxConflicts,
		timeout:      flagTimeout,
	}

	var runErr error
	if flagWatch != "" {
		runErr = watchDir(flagWatch, cfg)
	} else {
		if len(args) == 0 {
			return fmt.Errorf("yasolve: missing instance file")
		}
		runErr = solveFile(args[0], cfg)
	}

	if flagMemProfile != "" {
		f, err := os.Create(flagMemProfile)
		if err != nil {
			return fmt.Errorf("yasolve: %w", err)
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return fmt.Errorf("yasolve: %w", err)
		}
	}

	return runErr
}
