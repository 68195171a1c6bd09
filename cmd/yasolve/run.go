package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/lemaire-dev/yasolve/internal/dimacs"
	"github.com/lemaire-dev/yasolve/internal/sat"
	"github.com/lemaire-dev/yasolve/internal/search"
)

// runConfig carries the flags shared by the solve and watch paths.
type runConfig struct {
	tui          bool
	maxConflicts int64
	timeout      time.Duration
}

// solveFile loads, solves and reports on a single DIMACS instance, tagging
// every log line it emits with a fresh run ID so successive watch-mode
// solves can be told apart in the log stream.
func solveFile(path string, cfg runConfig) error {
	runID := uuid.New().String()
	logger := log.WithFields(log.Fields{"run_id": runID, "file": path})

	s := sat.NewDefaultSolver()
	if err := dimacs.Load(path, s); err != nil {
		return fmt.Errorf("yasolve: %w", err)
	}
	logger.Infof("loaded %d variables, %d clauses", s.NumVariables(), s.NumConstraints())

	opts := search.Options{
		MaxConflicts: cfg.maxConflicts,
		Timeout:      cfg.timeout,
		StatsEvery:   10000,
	}

	var status sat.LBool
	if cfg.tui {
		var err error
		status, err = runWithTUI(s, opts)
		if err != nil {
			return fmt.Errorf("yasolve: %w", err)
		}
	} else {
		opts.OnStats = func(st search.Stats) {
			recordMetrics(st)
			logger.Debugf("iterations=%d conflicts=%d restarts=%d decisions=%d",
				st.Iterations, st.Conflicts, st.Restarts, st.Decisions)
		}
		start := time.Now()
		d := search.NewDriver(s, opts)
		status = d.Solve()
		logger.Infof("search finished in %s: %d conflicts, %d restarts",
			time.Since(start), d.Stats().Conflicts, d.Stats().Restarts)
	}

	switch status {
	case sat.True:
		logger.Info("SATISFIABLE")
		fmt.Println(formatModel(s.Models[len(s.Models)-1]))
	case sat.False:
		logger.Info("UNSATISFIABLE")
		fmt.Println("UNSAT")
	default:
		logger.Warn("search ended without a verdict (stop condition reached or dashboard closed)")
		fmt.Println("UNKNOWN")
	}
	return nil
}

// formatModel renders a model the way spec.md §6 describes: one
// space-separated list of integers, 1-indexed, negated for a false
// variable and bare (no leading +) for a true one.
func formatModel(model []bool) string {
	parts := make([]string, len(model))
	for i, v := range model {
		if v {
			parts[i] = fmt.Sprintf("%d", i+1)
		} else {
			parts[i] = fmt.Sprintf("-%d", i+1)
		}
	}
	return strings.Join(parts, " ")
}
