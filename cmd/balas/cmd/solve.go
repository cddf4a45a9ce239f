package cmd

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/ahenshaw/balas"
	"github.com/ahenshaw/balas/internal/lpformat"
	"github.com/ahenshaw/balas/internal/normalize"
)

var (
	threads   int
	heuristic float64
	outfile   string
	recursive bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <problem.lp>",
	Short: "Solve a binary integer program read from a textual problem file",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().IntVarP(&threads, "threads", "t", 0, "number of workers (rounded down to a power of two; 0 uses the config default or hardware parallelism)")
	solveCmd.Flags().Float64Var(&heuristic, "heuristic", math.NaN(), "seed the incumbent with a known feasible objective value")
	solveCmd.Flags().StringVarP(&outfile, "outfile", "o", "", "write a JSON dump of the solver state to this path")
	solveCmd.Flags().BoolVar(&recursive, "recursive", false, "use the single-threaded reference solver instead of the parallel engine")
}

// report is the JSON serialization of a solve: the incumbent objective
// (null when no solution was found), node count, variable names, and
// (optionally) the solution vector.
// Matches spec.md §6's "Persisted state" surface; no stability guarantee
// across versions.
type report struct {
	Best              *float64           `json:"best"`
	OriginalObjective float64            `json:"original_objective,omitempty"`
	Count             int64              `json:"count"`
	Feasible          bool               `json:"feasible"`
	VariableNames     []string           `json:"variable_names"`
	Solution          map[string]float64 `json:"solution,omitempty"`
	Recursive         bool               `json:"recursive"`
}

func runSolve(cmd *cobra.Command, args []string) error {
	path := args[0]

	m, err := lpformat.ParseFile(path)
	if err != nil {
		return err
	}
	_, originalCoefficients := m.OriginalCoefficients()

	problem, undoer, err := m.Compile()
	if err != nil {
		return err
	}

	b := balas.New(problem)
	if !math.IsNaN(heuristic) {
		b.Best = heuristic
	} else if cfg != nil && cfg.Solver.Heuristic != 0 {
		b.Best = cfg.Solver.Heuristic
	}

	workers := threads
	if workers <= 0 && cfg != nil {
		workers = cfg.Solver.Workers
	}

	if recursive {
		b.SolveRecursively()
	} else {
		b.Solve(workers, b.Best)
	}

	printResult(b, undoer, originalCoefficients)

	if outfile != "" {
		if err := writeReport(outfile, b, undoer, originalCoefficients); err != nil {
			return err
		}
	}
	// An infeasible result is not itself an error: spec.md §6 reserves a
	// nonzero exit for parse/I/O errors, and proving infeasibility beyond
	// "no solution found" is an explicit Non-goal.
	return nil
}

func printResult(b *balas.Balas, undoer *normalize.Undoer, originalCoefficients []float64) {
	if !b.Feasible() {
		fmt.Println("no solution found")
		fmt.Printf("nodes visited: %d\n", b.Count)
		return
	}
	fmt.Printf("best objective:     %g\n", b.Best)
	fmt.Printf("original objective: %g\n", undoer.Evaluate(originalCoefficients, b.Solution))
	fmt.Printf("nodes visited:      %d\n", b.Count)
	for name, value := range undoer.Invert(b.Solution) {
		fmt.Printf("  %s = %g\n", name, value)
	}
}

func writeReport(path string, b *balas.Balas, undoer *normalize.Undoer, originalCoefficients []float64) error {
	r := report{
		Count:         b.Count,
		Feasible:      b.Feasible(),
		VariableNames: b.Problem.Names,
		Recursive:     recursive,
	}
	if b.Feasible() {
		best := b.Best
		r.Best = &best
		r.OriginalObjective = undoer.Evaluate(originalCoefficients, b.Solution)
		r.Solution = undoer.Invert(b.Solution)
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("balas: marshaling report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
