package fanddstats

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"strings"

	fanddutils "github.com/Chris-Kimmel/f-and-d-values/FandDUtils"
)

/*LoadPvalCSV load a per-read p-value CSV into a PvalMatrix.

Expected layout: first header cell labels the read-ID column, every other
header cell is an integer 0-based genomic position; each following row is one
read. Empty cells mark positions not covered by the read. Files ending in .gz
or .bz2 are decompressed on the fly */
func LoadPvalCSV(fname string) (*PvalMatrix, error) {
	fileReader, err := fanddutils.ReturnReadCloser(fname)

	if err != nil {
		return nil, err
	}

	defer fanddutils.CloseFile(fileReader)

	csvReader := csv.NewReader(fileReader)

	header, err := csvReader.Read()

	if err == io.EOF {
		return nil, &MalformedInputError{Path: fname, Line: 1, Reason: "empty file"}
	}

	if err != nil {
		return nil, &MalformedInputError{Path: fname, Line: 1, Reason: err.Error()}
	}

	positions := make([]int, len(header)-1)

	for i, label := range header[1:] {
		pos, err := strconv.Atoi(strings.TrimSpace(label))

		if err != nil {
			return nil, &MalformedInputError{
				Path: fname, Line: 1,
				Reason: "position label " + label + " is not an integer",
			}
		}

		positions[i] = pos
	}

	matrix := &PvalMatrix{Positions: positions}
	line := 1

	for {
		record, err := csvReader.Read()

		if err == io.EOF {
			break
		}

		line++

		// csv.Reader reports rows whose length differs from the header here
		if err != nil {
			return nil, &MalformedInputError{Path: fname, Line: line, Reason: err.Error()}
		}

		pvals := make([]float64, len(positions))

		for i, cell := range record[1:] {
			cell = strings.TrimSpace(cell)

			if cell == "" {
				pvals[i] = math.NaN()
				continue
			}

			pval, err := strconv.ParseFloat(cell, 64)

			if err != nil {
				return nil, &MalformedInputError{
					Path: fname, Line: line,
					Reason: "cannot parse p-value " + cell,
				}
			}

			pvals[i] = pval
		}

		matrix.ReadIDs = append(matrix.ReadIDs, record[0])
		matrix.Pvals = append(matrix.Pvals, pvals)
	}

	return matrix, nil
}
