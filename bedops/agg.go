package bedops

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/kriemo/valr-demo/interval"
)

// AggFunc reduces the rows matched to one output row (the rows merged into
// one block, or the y rows overlapping one x row) to a single column value.
// The set is open: callers may supply their own reductions alongside the
// built-ins below.
//
// Empty-match policy: Count and Sum report 0, Concat reports the empty
// string, and the remaining numeric reductions report NaN.
type AggFunc func(rows interval.Table) string

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func scores(rows interval.Table) []float64 {
	vals := make([]float64, len(rows))
	for i, iv := range rows {
		vals[i] = iv.Score
	}
	return vals
}

// AggCount reports the number of matched rows.
func AggCount(rows interval.Table) string {
	return strconv.Itoa(len(rows))
}

// AggSum reports the sum of the Score column.
func AggSum(rows interval.Table) string {
	total := 0.0
	for _, iv := range rows {
		total += iv.Score
	}
	return formatFloat(total)
}

// AggMean reports the mean of the Score column, NaN for no matches.
func AggMean(rows interval.Table) string {
	if len(rows) == 0 {
		return formatFloat(math.NaN())
	}
	return formatFloat(stat.Mean(scores(rows), nil))
}

// AggStddev reports the sample standard deviation of the Score column, NaN
// for fewer than two matches.
func AggStddev(rows interval.Table) string {
	if len(rows) < 2 {
		return formatFloat(math.NaN())
	}
	return formatFloat(stat.StdDev(scores(rows), nil))
}

// AggMin reports the minimum Score, NaN for no matches.
func AggMin(rows interval.Table) string {
	if len(rows) == 0 {
		return formatFloat(math.NaN())
	}
	min := rows[0].Score
	for _, iv := range rows[1:] {
		if iv.Score < min {
			min = iv.Score
		}
	}
	return formatFloat(min)
}

// AggMax reports the maximum Score, NaN for no matches.
func AggMax(rows interval.Table) string {
	if len(rows) == 0 {
		return formatFloat(math.NaN())
	}
	max := rows[0].Score
	for _, iv := range rows[1:] {
		if iv.Score > max {
			max = iv.Score
		}
	}
	return formatFloat(max)
}

// AggConcat joins the Name column with commas.
func AggConcat(rows interval.Table) string {
	names := make([]string, len(rows))
	for i, iv := range rows {
		names[i] = iv.Name
	}
	return strings.Join(names, ",")
}
