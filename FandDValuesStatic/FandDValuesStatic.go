/* Variant of FandDValues reading its input/output filepaths from hardcoded constants */

package main

import (
	"fmt"
	"log"
	"time"

	"github.com/jinzhu/copier"

	fanddstats "github.com/Chris-Kimmel/f-and-d-values/FandDStats"
	fanddutils "github.com/Chris-Kimmel/f-and-d-values/FandDUtils"
)

/*FILEPATHTOREAD input p-value CSV (edit and rebuild to change) */
const FILEPATHTOREAD = "per_read_pvalues.csv"

/*FILEPATHTOWRITE output per-position statistics CSV */
const FILEPATHTOWRITE = "f_and_d_values.csv"

func main() {
	tStart := time.Now()

	defaults := fanddstats.DefaultRunOptions()

	var options fanddstats.RunOptions
	fanddutils.Check(copier.Copy(&options, &defaults))

	options.PathToRead = FILEPATHTOREAD
	options.PathToWrite = FILEPATHTOWRITE
	options.IncludeFracFields = false

	if err := fanddstats.RunPipeline(options); err != nil {
		log.Fatal(err)
	}

	tDiff := time.Since(tStart)
	fmt.Printf("file: %s created!\n", options.PathToWrite)
	fmt.Printf("done in time: %f s \n", tDiff.Seconds())
}
