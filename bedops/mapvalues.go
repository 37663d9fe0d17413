package bedops

import (
	"github.com/kriemo/valr-demo/genome"
	"github.com/kriemo/valr-demo/interval"
)

// MapValues reports every x row, sorted, with one Extra column per entry in
// aggs summarizing the y rows it overlaps.  Rows with no overlap still
// appear; each AggFunc's documented empty-match policy (Count/Sum 0, Concat
// "", other numerics NaN) decides their column values.  Book-ended y rows
// count as overlapping with zero shared bases.
func MapValues(x, y interval.Table, g *genome.Genome, aggs map[string]AggFunc) (interval.Table, error) {
	xs, ys, err := sortedPair(x, y, g)
	if err != nil {
		return nil, err
	}
	matches := make([]interval.Table, len(xs))
	for _, p := range interval.SweepPairs(xs, ys, true) {
		matches[p.XRow] = append(matches[p.XRow], ys[p.YRow])
	}
	out := make(interval.Table, len(xs))
	for i, iv := range xs {
		r := iv.Clone()
		if r.Extra == nil {
			r.Extra = make(map[string]string, len(aggs))
		}
		for name, agg := range aggs {
			r.Extra[name] = agg(matches[i])
		}
		out[i] = r
	}
	return out, nil
}
