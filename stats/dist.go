package stats

import (
	"math"
	"sort"

	"github.com/kriemo/valr-demo/genome"
	"github.com/kriemo/valr-demo/interval"
)

// AbsDistRow reports one x row's distance to the nearest y midpoint.
type AbsDistRow struct {
	X interval.Interval
	// Dist is the raw midpoint-to-midpoint distance in bases.
	Dist int
	// ScaledDist is Dist * R / L, where R is the number of y reference
	// midpoints on the chromosome and L the chromosome length.  NaN for rows
	// on chromosomes with no y midpoints.
	ScaledDist float64
}

// midpointsByChrom collects sorted midpoint positions per chromosome.
func midpointsByChrom(t interval.Table) map[string][]int {
	mids := make(map[string][]int)
	for _, iv := range t {
		mids[iv.Chrom] = append(mids[iv.Chrom], iv.Midpoint())
	}
	for _, m := range mids {
		sort.Ints(m)
	}
	return mids
}

// nearestMidpoint returns the smallest |pos - m| over the sorted midpoints m.
func nearestMidpoint(mids []int, pos int) int {
	i := sort.SearchInts(mids, pos)
	best := -1
	if i < len(mids) {
		best = mids[i] - pos
	}
	if i > 0 {
		if d := pos - mids[i-1]; best < 0 || d < best {
			best = d
		}
	}
	return best
}

// AbsDist computes, for each x row, the raw distance from its midpoint to the
// nearest y midpoint, plus the same distance scaled by the chromosome's y
// midpoint density (R/L).  Rows on chromosomes absent from y report Dist -1
// and ScaledDist NaN.  Output follows sorted-x order.
func AbsDist(x, y interval.Table, g *genome.Genome) ([]AbsDistRow, error) {
	if err := x.Validate(g); err != nil {
		return nil, err
	}
	if err := y.Validate(g); err != nil {
		return nil, err
	}
	xs, err := interval.EnsureSorted(x, g, true)
	if err != nil {
		return nil, err
	}
	mids := midpointsByChrom(y)
	rows := make([]AbsDistRow, 0, len(xs))
	for _, iv := range xs {
		row := AbsDistRow{X: iv.Clone(), Dist: -1, ScaledDist: math.NaN()}
		if m := mids[iv.Chrom]; len(m) > 0 {
			row.Dist = nearestMidpoint(m, iv.Midpoint())
			size, err := g.Len(iv.Chrom)
			if err != nil {
				return nil, err
			}
			if size > 0 {
				row.ScaledDist = float64(row.Dist) * float64(len(m)) / float64(size)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// RelDistRow reports one x row's relative distance to its flanking y
// midpoints.
type RelDistRow struct {
	X interval.Interval
	// RelDist is min(d_left, d_right) / (right - left) for the two flanking y
	// midpoints, always in [0, 0.5].
	RelDist float64
}

// RelDist computes the relative distance of each x midpoint to the two
// flanking y midpoints on its chromosome.  Rows whose midpoint falls outside
// the span of y midpoints for the chromosome (or on a chromosome with fewer
// than two y midpoints) are dropped, so the reported distribution is over the
// interior rows only.  Output follows sorted-x order.
func RelDist(x, y interval.Table) ([]RelDistRow, error) {
	if err := x.Validate(nil); err != nil {
		return nil, err
	}
	if err := y.Validate(nil); err != nil {
		return nil, err
	}
	xs, err := interval.EnsureSorted(x, nil, true)
	if err != nil {
		return nil, err
	}
	mids := midpointsByChrom(y)
	var rows []RelDistRow
	for _, iv := range xs {
		m := mids[iv.Chrom]
		if len(m) < 2 {
			continue
		}
		pos := iv.Midpoint()
		i := sort.SearchInts(m, pos)
		if i == 0 || i == len(m) {
			continue
		}
		left, right := m[i-1], m[i]
		span := right - left
		if span == 0 {
			continue
		}
		d := pos - left
		if right-pos < d {
			d = right - pos
		}
		rows = append(rows, RelDistRow{X: iv.Clone(), RelDist: float64(d) / float64(span)})
	}
	return rows, nil
}

// RelDistBin is one bucket of a relative-distance histogram.
type RelDistBin struct {
	Lo, Hi float64
	Count  int
	// Freq is Count over the total row count.
	Freq float64
}

// RelDistHistogram buckets relative distances into nbins equal-width bins
// over [0, 0.5].  Values at exactly 0.5 land in the last bin.
func RelDistHistogram(rows []RelDistRow, nbins int) []RelDistBin {
	if nbins <= 0 {
		nbins = 50
	}
	width := 0.5 / float64(nbins)
	bins := make([]RelDistBin, nbins)
	for i := range bins {
		bins[i].Lo = float64(i) * width
		bins[i].Hi = bins[i].Lo + width
	}
	for _, r := range rows {
		i := int(r.RelDist / width)
		if i >= nbins {
			i = nbins - 1
		}
		bins[i].Count++
	}
	if n := len(rows); n > 0 {
		for i := range bins {
			bins[i].Freq = float64(bins[i].Count) / float64(n)
		}
	}
	return bins
}
