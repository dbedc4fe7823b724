package fanddstats

import (
	"math"
	"sort"
)

/*Longify flatten a PvalMatrix into its long format, dropping absent cells.
Records come out in row-major order but downstream grouping does not rely on it */
func Longify(matrix *PvalMatrix) []Observation {
	observations := make([]Observation, 0, len(matrix.ReadIDs)*len(matrix.Positions))

	for i, readID := range matrix.ReadIDs {
		for j, pos := range matrix.Positions {
			pval := matrix.Pvals[i][j]

			if math.IsNaN(pval) {
				continue
			}

			observations = append(observations, Observation{
				ReadID: readID,
				Pos0b:  pos,
				Pval:   pval,
			})
		}
	}

	return observations
}

/*Widify undo Longify: rebuild the wide table from a long record set.
Rows come out sorted by read ID and columns by position. Not used by the main
pipeline, kept for round-trip checks */
func Widify(observations []Observation) *PvalMatrix {
	readIDSet := make(map[string]bool)
	posSet := make(map[int]bool)

	for _, obs := range observations {
		readIDSet[obs.ReadID] = true
		posSet[obs.Pos0b] = true
	}

	readIDs := make([]string, 0, len(readIDSet))
	positions := make([]int, 0, len(posSet))

	for readID := range readIDSet {
		readIDs = append(readIDs, readID)
	}

	for pos := range posSet {
		positions = append(positions, pos)
	}

	sort.Strings(readIDs)
	sort.Ints(positions)

	rowIndex := make(map[string]int, len(readIDs))
	colIndex := make(map[int]int, len(positions))

	for i, readID := range readIDs {
		rowIndex[readID] = i
	}

	for j, pos := range positions {
		colIndex[pos] = j
	}

	pvals := make([][]float64, len(readIDs))

	for i := range pvals {
		pvals[i] = make([]float64, len(positions))

		for j := range pvals[i] {
			pvals[i][j] = math.NaN()
		}
	}

	for _, obs := range observations {
		pvals[rowIndex[obs.ReadID]][colIndex[obs.Pos0b]] = obs.Pval
	}

	return &PvalMatrix{ReadIDs: readIDs, Positions: positions, Pvals: pvals}
}
