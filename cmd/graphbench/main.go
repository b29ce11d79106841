// Command graphbench generates fixture graphs and benchmarks the parallel
// engines of parlath on them.
package main

import "github.com/katalvlaran/parlath/cmd/graphbench/cmd"

func main() {
	cmd.Execute()
}
