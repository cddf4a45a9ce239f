package balas

import (
	"fmt"
	"math"
	"math/bits"

	"golang.org/x/sync/errgroup"
)

// floorLog2 returns the largest k such that 2^k <= n, for n >= 1.
func floorLog2(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n)) - 1
}

// solveParallel partitions the tree at prefix depth k = floorLog2(numWorkers),
// clamped so that every worker still owns at least one variable below its
// prefix, spawns 2^k subtreeWorkers, and joins them with errgroup. The result
// is the smallest best-local objective across all workers (ties broken by
// the smallest worker index), the summed node counts, and the solution
// vector belonging to the winning worker.
func solveParallel(p *Problem, numWorkers int, heuristicSeed float64) (float64, int64, []int) {
	if numWorkers < 1 {
		numWorkers = 1
	}
	k := floorLog2(numWorkers)
	if p.N == 0 {
		k = 0
	} else if k > p.N-1 {
		k = p.N - 1
	}
	numSubtrees := 1 << uint(k)

	bound := newSharedBound(heuristicSeed)

	type result struct {
		best     float64
		count    int64
		solution []int
	}
	results := make([]result, numSubtrees)

	var g errgroup.Group
	for prefix := 0; prefix < numSubtrees; prefix++ {
		prefix := prefix
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("balas: worker for prefix %d panicked: %v", prefix, r)
				}
			}()
			w := newSubtreeWorker(p, bound, k, prefix)
			best, count, solution := w.run()
			results[prefix] = result{best: best, count: count, solution: solution}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		// The dispatcher re-panics the first observed worker panic rather
		// than swallowing it as an ordinary error: a panic inside the
		// search indicates a broken invariant, not a reportable failure.
		panic(err)
	}

	best := math.Inf(1)
	var totalCount int64
	var solution []int
	for _, r := range results {
		totalCount += r.count
		if r.best < best {
			best = r.best
			solution = r.solution
		}
	}
	return best, totalCount, solution
}
