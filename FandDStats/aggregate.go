package fanddstats

import (
	"math"
	"sort"
)

type bucketCounts struct {
	below int
	above int
	covg  int
}

/*ComputeFandD group observations by position and compute the per-position
modification statistics.

Classification is strict: pval < lowerThresh counts as evidence of
modification, pval > upperThresh as evidence of no modification, anything in
between only adds to the coverage. Then

    f_value = below / (below + above)
    d_value = below / (below + above + 2)

where d_value is the dampened variant pulling low-coverage positions toward
0.5. When both bucket counts are zero the two ratios are undefined and both
come out as NaN; the position row is still emitted. Output is sorted by
ascending position */
func ComputeFandD(observations []Observation, lowerThresh, upperThresh float64) []PositionStats {
	perPos := make(map[int]*bucketCounts)

	for _, obs := range observations {
		counts := perPos[obs.Pos0b]

		if counts == nil {
			counts = &bucketCounts{}
			perPos[obs.Pos0b] = counts
		}

		if obs.Pval < lowerThresh {
			counts.below++
		}

		if obs.Pval > upperThresh {
			counts.above++
		}

		counts.covg++
	}

	positions := make([]int, 0, len(perPos))

	for pos := range perPos {
		positions = append(positions, pos)
	}

	sort.Ints(positions)

	results := make([]PositionStats, 0, len(positions))

	for _, pos := range positions {
		counts := perPos[pos]

		stats := PositionStats{
			Pos0b:                pos,
			NumBelowLowerThresh:  counts.below,
			NumAboveUpperThresh:  counts.above,
			Covg:                 counts.covg,
			FracBelowLowerThresh: float64(counts.below) / float64(counts.covg),
			FracAboveUpperThresh: float64(counts.above) / float64(counts.covg),
		}

		denom := counts.below + counts.above

		if denom == 0 {
			stats.FValue = math.NaN()
			stats.DValue = math.NaN()
		} else {
			stats.FValue = float64(counts.below) / float64(denom)
			stats.DValue = float64(counts.below) / float64(denom+2)
		}

		results = append(results, stats)
	}

	return results
}
