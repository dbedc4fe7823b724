package fanddstats

import (
	"errors"
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunPipelineEndToEnd(t *testing.T) {
	fname := tempOutputPath(t)

	options := DefaultRunOptions()
	options.PathToRead = "testdata/three_reads.csv"
	options.PathToWrite = fname

	assert.Nil(t, RunPipeline(options))

	content, err := ioutil.ReadFile(fname)
	assert.Nil(t, err)

	expected := "pos_0b,num_below_lower_thresh,num_above_upper_thresh,covg," +
		"frac_below_lower_thresh,frac_above_upper_thresh,f_value,d_value\n" +
		"0,1,2,3,0.3333333333333333,0.6666666666666666,0.3333333333333333,0.2\n" +
		"1,2,0,2,1,0,1,0.5\n"
	assert.Equal(t, expected, string(content))
}

func TestRunPipelineWithoutFracFields(t *testing.T) {
	fname := tempOutputPath(t)

	options := DefaultRunOptions()
	options.PathToRead = "testdata/three_reads.csv"
	options.PathToWrite = fname
	options.IncludeFracFields = false

	assert.Nil(t, RunPipeline(options))

	content, err := ioutil.ReadFile(fname)
	assert.Nil(t, err)

	expected := "pos_0b,num_below_lower_thresh,num_above_upper_thresh,covg,f_value,d_value\n" +
		"0,1,2,3,0.3333333333333333,0.2\n" +
		"1,2,0,2,1,0.5\n"
	assert.Equal(t, expected, string(content))
}

func TestRunPipelineDuplicateReadIDs(t *testing.T) {
	fname := tempOutputPath(t)

	options := DefaultRunOptions()
	options.PathToRead = "testdata/duplicate_reads.csv"
	options.PathToWrite = fname

	err := RunPipeline(options)

	var duplicate *DuplicateKeyError
	assert.True(t, errors.As(err, &duplicate), "got %v", err)

	_, statErr := os.Stat(fname)
	assert.True(t, os.IsNotExist(statErr), "no output file may be produced on duplicate read IDs")
}

func TestRunPipelineMissingInput(t *testing.T) {
	options := DefaultRunOptions()
	options.PathToRead = "testdata/no_such_file.csv"
	options.PathToWrite = tempOutputPath(t)

	assert.NotNil(t, RunPipeline(options))
}
