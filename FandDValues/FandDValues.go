/* Compute the fractions (and dampened fractions) of modified reads from a p-value CSV file */

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	fanddstats "github.com/Chris-Kimmel/f-and-d-values/FandDStats"
	fanddutils "github.com/Chris-Kimmel/f-and-d-values/FandDUtils"
)

func main() {

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `
#################### MODULE TO COMPUTE PER-POSITION F-VALUES AND D-VALUES ########################

USAGE: FandDValues <filepath_to_read> <filepath_to_write>

Input: CSV table with one row per read ID and one column per 0-based genomic
position, cells holding per-read p-values (empty cell = position not covered
by the read). Results will be close to what "tombo text_output browser_files"
produces, but may still differ slightly.

The p-value thresholds are hardcoded (see FandDStats.LOWERTHRESH and
FandDStats.UPPERTHRESH).

`)
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		log.Fatal("Error two positional arguments are required: filepath_to_read filepath_to_write")
	}

	tStart := time.Now()

	var filepathToRead fanddutils.Filename
	fanddutils.Check(filepathToRead.Set(flag.Arg(0)))

	options := fanddstats.DefaultRunOptions()
	options.PathToRead = filepathToRead.String()
	options.PathToWrite = flag.Arg(1)
	options.IncludeFracFields = true

	if err := fanddstats.RunPipeline(options); err != nil {
		log.Fatal(err)
	}

	tDiff := time.Since(tStart)
	fmt.Printf("file: %s created!\n", options.PathToWrite)
	fmt.Printf("done in time: %f s \n", tDiff.Seconds())
}
