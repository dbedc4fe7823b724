package fanddstats

import (
	"io/ioutil"
	"math"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
)

func tempOutputPath(t *testing.T) string {
	t.Helper()

	dir, err := ioutil.TempDir("", "fanddstats")
	assert.Nil(t, err)

	t.Cleanup(func() { os.RemoveAll(dir) })

	return path.Join(dir, "output.csv")
}

var exampleStats = []PositionStats{
	{
		Pos0b:               0,
		NumBelowLowerThresh: 1, NumAboveUpperThresh: 2, Covg: 3,
		FracBelowLowerThresh: 1.0 / 3.0, FracAboveUpperThresh: 2.0 / 3.0,
		FValue: 1.0 / 3.0, DValue: 0.2,
	},
	{
		Pos0b:               1,
		NumBelowLowerThresh: 2, NumAboveUpperThresh: 0, Covg: 2,
		FracBelowLowerThresh: 1.0, FracAboveUpperThresh: 0.0,
		FValue: 1.0, DValue: 0.5,
	},
}

func TestWriteStatsWithFracFields(t *testing.T) {
	fname := tempOutputPath(t)

	assert.Nil(t, WriteStats(fname, exampleStats, true))

	content, err := ioutil.ReadFile(fname)
	assert.Nil(t, err)

	expected := "pos_0b,num_below_lower_thresh,num_above_upper_thresh,covg," +
		"frac_below_lower_thresh,frac_above_upper_thresh,f_value,d_value\n" +
		"0,1,2,3,0.3333333333333333,0.6666666666666666,0.3333333333333333,0.2\n" +
		"1,2,0,2,1,0,1,0.5\n"
	assert.Equal(t, expected, string(content))
}

func TestWriteStatsWithoutFracFields(t *testing.T) {
	fname := tempOutputPath(t)

	assert.Nil(t, WriteStats(fname, exampleStats, false))

	content, err := ioutil.ReadFile(fname)
	assert.Nil(t, err)

	expected := "pos_0b,num_below_lower_thresh,num_above_upper_thresh,covg,f_value,d_value\n" +
		"0,1,2,3,0.3333333333333333,0.2\n" +
		"1,2,0,2,1,0.5\n"
	assert.Equal(t, expected, string(content))
}

func TestWriteStatsNaN(t *testing.T) {
	fname := tempOutputPath(t)

	stats := []PositionStats{{
		Pos0b: 4, Covg: 2,
		FValue: math.NaN(), DValue: math.NaN(),
	}}

	assert.Nil(t, WriteStats(fname, stats, false))

	content, err := ioutil.ReadFile(fname)
	assert.Nil(t, err)

	expected := "pos_0b,num_below_lower_thresh,num_above_upper_thresh,covg,f_value,d_value\n" +
		"4,0,0,2,NaN,NaN\n"
	assert.Equal(t, expected, string(content))
}

func TestWriteStatsBadPath(t *testing.T) {
	err := WriteStats("testdata/no_such_dir/output.csv", exampleStats, true)
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "no_such_dir")
}
