// Package gf2: rank computation via forward Gaussian elimination.
// Over GF(2) the elimination step degenerates to a row XOR, so the whole
// routine stays in integer arithmetic on a scratch copy of the input.
package gf2

// Rank returns the rank of m over GF(2).
// The input is never mutated; elimination runs on a scratch copy.
//
// Stage 1 (Copy): clone the backing storage.
// Stage 2 (Eliminate): for each column, find a pivot row at or below the
// current rank, swap it up, and XOR it into every lower row with a 1 in
// that column.
// Stage 3 (Finalize): the number of pivots found is the rank.
//
// Complexity: O(rows²·cols) time, O(rows·cols) memory.
func Rank(m *Matrix) int {
	scratch := m.Clone()
	rank := 0
	for col := 0; col < scratch.cols && rank < scratch.rows; col++ {
		// Find a pivot at or below the current rank row.
		pivot := -1
		for i := rank; i < scratch.rows; i++ {
			if scratch.at(i, col) == 1 {
				pivot = i
				break
			}
		}
		if pivot == -1 {
			continue // no pivot in this column
		}

		// Swap the pivot row into position.
		if pivot != rank {
			pr := scratch.data[pivot*scratch.cols : (pivot+1)*scratch.cols]
			rr := scratch.data[rank*scratch.cols : (rank+1)*scratch.cols]
			for j := range pr {
				pr[j], rr[j] = rr[j], pr[j]
			}
		}

		// Eliminate below: over GF(2) the factor is always 1, so the
		// update is a plain row XOR.
		prow := scratch.data[rank*scratch.cols : (rank+1)*scratch.cols]
		for i := rank + 1; i < scratch.rows; i++ {
			if scratch.at(i, col) == 0 {
				continue
			}
			row := scratch.data[i*scratch.cols : (i+1)*scratch.cols]
			for j := col; j < scratch.cols; j++ {
				row[j] ^= prow[j]
			}
		}
		rank++
	}

	return rank
}

// HasFullRowRank reports whether Rank(m) equals the row count.
// Complexity: same as Rank.
func HasFullRowRank(m *Matrix) bool {
	return Rank(m) == m.rows
}
