package fanddstats

import (
	"bytes"
	"strconv"

	fanddutils "github.com/Chris-Kimmel/f-and-d-values/FandDUtils"
)

/*WriteStats serialize the per-position statistics to a CSV file, one row per
position, no index column. NaN ratios are written literally as NaN. Files
ending in .gz or .bz2 are compressed on the fly */
func WriteStats(fname string, stats []PositionStats, includeFracFields bool) error {
	writer, err := fanddutils.ReturnWriterOrErr(fname)

	if err != nil {
		return err
	}

	defer fanddutils.CloseFile(writer)

	var buffer bytes.Buffer

	buffer.WriteString("pos_0b,num_below_lower_thresh,num_above_upper_thresh,covg")

	if includeFracFields {
		buffer.WriteString(",frac_below_lower_thresh,frac_above_upper_thresh")
	}

	buffer.WriteString(",f_value,d_value\n")
	writer.Write(buffer.Bytes())
	buffer.Reset()

	for _, positionStats := range stats {
		buffer.WriteString(strconv.Itoa(positionStats.Pos0b))
		buffer.WriteRune(',')
		buffer.WriteString(strconv.Itoa(positionStats.NumBelowLowerThresh))
		buffer.WriteRune(',')
		buffer.WriteString(strconv.Itoa(positionStats.NumAboveUpperThresh))
		buffer.WriteRune(',')
		buffer.WriteString(strconv.Itoa(positionStats.Covg))
		buffer.WriteRune(',')

		if includeFracFields {
			buffer.WriteString(formatRatio(positionStats.FracBelowLowerThresh))
			buffer.WriteRune(',')
			buffer.WriteString(formatRatio(positionStats.FracAboveUpperThresh))
			buffer.WriteRune(',')
		}

		buffer.WriteString(formatRatio(positionStats.FValue))
		buffer.WriteRune(',')
		buffer.WriteString(formatRatio(positionStats.DValue))
		buffer.WriteRune('\n')

		writer.Write(buffer.Bytes())
		buffer.Reset()
	}

	return nil
}

func formatRatio(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}
