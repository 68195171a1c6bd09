// Command yasolve solves DIMACS CNF instances with a CDCL solver that
// restarts unconditionally after every learnt clause.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "yasolve",
	Short: "A restart-every-conflict CDCL SAT solver",
}

func main() {
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(generateCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
