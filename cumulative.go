package balas

// computeCumulative builds the n-1 row cumulative-bound matrix:
// cumulative[v][c] = sum over u > v of max(0, constraints[u][c]).
//
// Grounded directly on the original Balas::make_cumulative: walk the
// constraint rows from the last variable down to variable 1, folding
// each row's positive contributions into a running total and
// recording the running total *after* each fold, then reverse the
// recorded rows so index v lines up with "children of depth v".
func computeCumulative(constraints [][]float64, n, m int) [][]float64 {
	running := make([]float64, m)
	rows := make([][]float64, 0, n-1)

	for v := n - 1; v >= 1; v-- {
		row := constraints[v]
		for c := 0; c < m; c++ {
			if row[c] > 0 {
				running[c] += row[c]
			}
		}
		snapshot := make([]float64, m)
		copy(snapshot, running)
		rows = append(rows, snapshot)
	}

	cumulative := make([][]float64, len(rows))
	for i, row := range rows {
		cumulative[len(rows)-1-i] = row
	}
	return cumulative
}
