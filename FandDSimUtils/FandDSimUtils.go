/* Suite of functions dedicated to generate simulated per-read p-value tables */

package main

import (
	"bytes"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/valyala/fastrand"

	fanddstats "github.com/Chris-Kimmel/f-and-d-values/FandDStats"
	fanddutils "github.com/Chris-Kimmel/f-and-d-values/FandDUtils"
)

/*FILENAMEOUT output file name */
var FILENAMEOUT string

/*READNB number of reads (rows) to generate */
var READNB int

/*POSNB number of genomic positions (columns) to generate */
var POSNB int

/*STARTPOS first 0-based genomic position */
var STARTPOS int

/*MODPROB probability for a position to be modified */
var MODPROB float64

/*MISSINGPROB probability for a cell to be missing */
var MISSINGPROB float64

/*SEED seed used to pick the modified positions */
var SEED int

/*SIMULATE simulate a p-value CSV file */
var SIMULATE bool

/*RANDDENOM granularity of the fastrand uniform draws */
const RANDDENOM = 1000000

func main() {

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `
#################### MODULE TO CREATE SIMULATED PER-READ P-VALUE CSV FILES ########################

USAGE: FandDSimUtils -simulate -reads <int> -positions <int> (-start <int> -modprob <float> -missing <float> -seed <int> -out <string>)

Modified positions draw p-values below the lower threshold, unmodified
positions draw uniform p-values. Missing cells are left empty.

`)
		flag.PrintDefaults()
	}

	flag.StringVar(&FILENAMEOUT, "out", "simulated_pvalues.csv", "name of the output file")
	flag.IntVar(&READNB, "reads", 100, "number of reads to generate")
	flag.IntVar(&POSNB, "positions", 50, "number of genomic positions to generate")
	flag.IntVar(&STARTPOS, "start", 0, "first 0-based genomic position")
	flag.Float64Var(&MODPROB, "modprob", 0.2, "probability for a position to be modified")
	flag.Float64Var(&MISSINGPROB, "missing", 0.1, "probability for a cell to be missing")
	flag.IntVar(&SEED, "seed", 2021, "seed used to pick the modified positions")
	flag.BoolVar(&SIMULATE, "simulate", false, "simulate a per-read p-value CSV file")
	flag.Parse()

	switch {
	case SIMULATE:
		simulatePvalFile()
	default:
		fmt.Printf("USAGE: FandDSimUtils -simulate -reads <int> -positions <int> (-start <int> -modprob <float> -missing <float> -seed <int> -out <string>)\n")
	}
}

func simulatePvalFile() {
	tStart := time.Now()

	modified := pickModifiedPositions()

	writer := fanddutils.ReturnWriter(FILENAMEOUT)
	defer fanddutils.CloseFile(writer)

	var buffer bytes.Buffer

	buffer.WriteString("read_id")

	for j := 0; j < POSNB; j++ {
		buffer.WriteRune(',')
		buffer.WriteString(strconv.Itoa(STARTPOS + j))
	}

	buffer.WriteRune('\n')
	writer.Write(buffer.Bytes())
	buffer.Reset()

	for i := 0; i < READNB; i++ {
		buffer.WriteString("SIMREAD")
		buffer.WriteString(strconv.Itoa(i))

		for j := 0; j < POSNB; j++ {
			buffer.WriteRune(',')

			if uniform() < MISSINGPROB {
				continue
			}

			pval := uniform()

			if modified[j] {
				pval *= fanddstats.LOWERTHRESH
			}

			buffer.WriteString(strconv.FormatFloat(pval, 'f', 6, 64))
		}

		buffer.WriteRune('\n')
		writer.Write(buffer.Bytes())
		buffer.Reset()
	}

	tDiff := time.Since(tStart)
	fmt.Printf("file: %s created!\n", FILENAMEOUT)
	fmt.Printf("simulating one p-value file done in time: %f s \n", tDiff.Seconds())
}

/*pickModifiedPositions seeded so that a simulation can be reproduced */
func pickModifiedPositions() []bool {
	rand.Seed(int64(SEED))

	modified := make([]bool, POSNB)

	for j := range modified {
		modified[j] = rand.Float64() < MODPROB
	}

	return modified
}

func uniform() float64 {
	return float64(fastrand.Uint32n(RANDDENOM)) / float64(RANDDENOM)
}
