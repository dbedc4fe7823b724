/* Core pipeline computing per-position f-values and d-values from per-read p-value tables */

package fanddstats

import (
	"fmt"
)

/*LOWERTHRESH Tombo's default lower p-value threshold for RNA */
const LOWERTHRESH = 0.05

/*UPPERTHRESH Tombo's default upper p-value threshold for RNA */
const UPPERTHRESH = 0.40

/*PvalMatrix wide table of p-values: one row per read, one column per 0-based
genomic position. Absent cells hold NaN. Row order is preserved from the input
file so that duplicated read IDs stay visible */
type PvalMatrix struct {
	ReadIDs   []string
	Positions []int
	Pvals     [][]float64
}

/*Observation one (read, position, p-value) record of the long format */
type Observation struct {
	ReadID string
	Pos0b  int
	Pval   float64
}

/*PositionStats per-position modification statistics.
FValue and DValue are NaN when no read at the position falls outside the
inconclusive band between the two thresholds */
type PositionStats struct {
	Pos0b                int
	NumBelowLowerThresh  int
	NumAboveUpperThresh  int
	Covg                 int
	FracBelowLowerThresh float64
	FracAboveUpperThresh float64
	FValue               float64
	DValue               float64
}

/*MalformedInputError the input table cannot be parsed as a p-value matrix */
type MalformedInputError struct {
	Path   string
	Line   int
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input %s (line %d): %s", e.Path, e.Line, e.Reason)
}

/*DuplicateKeyError two rows of the input table share the same read ID */
type DuplicateKeyError struct {
	ReadID string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf(
		"duplicate read ID %q in the given file. Unique read IDs are required", e.ReadID)
}

/*CheckUniqueReadIDs fail with DuplicateKeyError if two rows share a read ID */
func (m *PvalMatrix) CheckUniqueReadIDs() error {
	seen := make(map[string]bool, len(m.ReadIDs))

	for _, readID := range m.ReadIDs {
		if seen[readID] {
			return &DuplicateKeyError{ReadID: readID}
		}

		seen[readID] = true
	}

	return nil
}
