package fanddstats

/*RunOptions everything the two front ends may configure */
type RunOptions struct {
	PathToRead        string
	PathToWrite       string
	IncludeFracFields bool
	LowerThresh       float64
	UpperThresh       float64
}

/*DefaultRunOptions Tombo RNA thresholds, fraction fields included */
func DefaultRunOptions() RunOptions {
	return RunOptions{
		IncludeFracFields: true,
		LowerThresh:       LOWERTHRESH,
		UpperThresh:       UPPERTHRESH,
	}
}

/*RunPipeline load the wide p-value table, refuse duplicated read IDs, reshape
to the long format, aggregate per position and write the result table.

The output file is only created once loading and aggregation succeeded, so a
failing run never leaves a partial result behind */
func RunPipeline(options RunOptions) error {
	wide, err := LoadPvalCSV(options.PathToRead)

	if err != nil {
		return err
	}

	if err = wide.CheckUniqueReadIDs(); err != nil {
		return err
	}

	stats := ComputeFandD(Longify(wide), options.LowerThresh, options.UpperThresh)

	return WriteStats(options.PathToWrite, stats, options.IncludeFracFields)
}
