// Command balas is the CLI surface spec.md §6 describes as an external
// collaborator of the solver core: it reads a textual problem, runs the
// search, and reports the result. Modeled on
// junjiewwang-perf-analysis/cmd/cli's cobra bootstrapping.
package main

import "github.com/ahenshaw/balas/cmd/balas/cmd"

func main() {
	cmd.Execute()
}
