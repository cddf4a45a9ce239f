package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ahenshaw/balas/internal/config"
)

var (
	// Persistent flags.
	configPath string
	verbose    bool

	// cfg is populated by rootCmd's PersistentPreRunE and read by every
	// subcommand's RunE.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "balas",
	Short: "Balas additive branch-and-bound solver for binary integer programs",
	Long: `balas solves a binary integer program in minimization standard form
using Balas' additive branch-and-bound algorithm: implicit enumeration of
the binary decision tree, partitioned across workers that share a best-so-
far bound.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

// Execute runs the root command, exiting nonzero on any error per spec.md
// §6 ("Exit code zero on success, nonzero on parse or I/O errors").
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to an optional YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "accepted but has no effect: no extra diagnostics are printed")

	binName := BinName()
	rootCmd.Example = `  # Solve a problem with 4 workers
  ` + binName + ` solve problem.lp -t 4

  # Seed the incumbent with a known heuristic value
  ` + binName + ` solve problem.lp --heuristic 42

  # Use the single-threaded reference solver and dump a JSON report
  ` + binName + ` solve problem.lp --recursive -o report.json`
}

// BinName returns the base name of the current executable, used to build
// Example blocks that reflect however the binary was actually invoked.
func BinName() string {
	return filepath.Base(os.Args[0])
}
