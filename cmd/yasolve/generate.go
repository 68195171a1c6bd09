package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lemaire-dev/yasolve/internal/puzzle"
	"github.com/lemaire-dev/yasolve/internal/sat"
	"github.com/lemaire-dev/yasolve/internal/search"
)

var (
	flagGenerateOut   string
	flagGenerateSolve bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a DIMACS CNF instance from a built-in puzzle",
}

var generateEinsteinCmd = &cobra.Command{
	Use:   "einstein",
	Short: "Generate the five houses (Einstein/Zebra) logic puzzle",
	RunE:  runGenerateEinstein,
}

func init() {
	f := generateEinsteinCmd.Flags()
	f.StringVar(&flagGenerateOut, "out", "", "write the DIMACS CNF here instead of stdout")
	f.BoolVar(&flagGenerateSolve, "solve", false, "also solve the puzzle and print the decoded answer")
	generateCmd.AddCommand(generateEinsteinCmd)
}

func runGenerateEinstein(cmd *cobra.Command, args []string) error {
	s := sat.NewDefaultSolver()
	if err := puzzle.Generate(s); err != nil {
		return fmt.Errorf("yasolve: %w", err)
	}

	out := os.Stdout
	if flagGenerateOut != "" {
		f, err := os.Create(flagGenerateOut)
		if err != nil {
			return fmt.Errorf("yasolve: %w", err)
		}
		defer f.Close()
		out = f
	}
	if err := writeDIMACS(out, s); err != nil {
		return fmt.Errorf("yasolve: %w", err)
	}

	if !flagGenerateSolve {
		return nil
	}

	d := search.NewDriver(s, search.DefaultOptions)
	if d.Solve() != sat.True {
		return fmt.Errorf("yasolve: generated einstein instance was not satisfiable, which should never happen")
	}
	for _, p := range puzzle.Decode(s.Models[0]) {
		fmt.Printf("house %d: %s, %s house, drinks %s, smokes %s, keeps a %s\n",
			p.Position, p.Nationality, p.House, p.Drink, p.Smoke, p.Pet)
	}
	return nil
}

// writeDIMACS is a minimal DIMACS CNF writer; it mirrors the textual
// contract that internal/dimacs.Load reads back.
func writeDIMACS(out *os.File, s *sat.Solver) error {
	w := bufio.NewWriter(out)
	defer w.Flush()
	nbClauses := s.NumConstraints() + s.NumUnitFacts()
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", s.NumVariables(), nbClauses); err != nil {
		return err
	}
	return s.WriteConstraints(w)
}
