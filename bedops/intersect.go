package bedops

import (
	"github.com/kriemo/valr-demo/genome"
	"github.com/kriemo/valr-demo/interval"
)

// Hit is one overlapping (x, y) row pair reported by Intersect or Window.
type Hit struct {
	X, Y interval.Interval
	// Overlap is the intersection size in bases; 0 means book-ended.
	Overlap int
}

// IntersectOpts configures Intersect and IntersectInvert.
type IntersectOpts struct {
	// NoBookended excludes touching rows (which otherwise match with
	// Overlap 0) from the result.
	NoBookended bool
}

// Intersect reports one Hit per overlapping (x, y) row pair: an x row with
// three overlapping y rows yields three hits, with no implicit aggregation.
// Book-ended pairs match with Overlap 0 unless opts.NoBookended is set.  Both
// inputs are sorted internally; hits come back in sorted-x order, then
// sorted-y order.
func Intersect(x, y interval.Table, g *genome.Genome, opts IntersectOpts) ([]Hit, error) {
	xs, ys, err := sortedPair(x, y, g)
	if err != nil {
		return nil, err
	}
	pairs := interval.SweepPairs(xs, ys, !opts.NoBookended)
	hits := make([]Hit, 0, len(pairs))
	for _, p := range pairs {
		hits = append(hits, Hit{
			X:       xs[p.XRow].Clone(),
			Y:       ys[p.YRow].Clone(),
			Overlap: p.Overlap,
		})
	}
	return hits, nil
}

// IntersectInvert is intersect's invert=true form: it returns the x rows with
// no y overlap at all.  Book-ended counts as overlap unless opts.NoBookended
// is set, mirroring Intersect.
func IntersectInvert(x, y interval.Table, g *genome.Genome, opts IntersectOpts) (interval.Table, error) {
	xs, ys, err := sortedPair(x, y, g)
	if err != nil {
		return nil, err
	}
	hit := make([]bool, len(xs))
	for _, p := range interval.SweepPairs(xs, ys, !opts.NoBookended) {
		hit[p.XRow] = true
	}
	var out interval.Table
	for i, iv := range xs {
		if !hit[i] {
			out = append(out, iv.Clone())
		}
	}
	return out, nil
}

// sortedPair validates both tables and returns sorted working copies.
func sortedPair(x, y interval.Table, g *genome.Genome) (interval.Table, interval.Table, error) {
	if err := x.Validate(g); err != nil {
		return nil, nil, err
	}
	if err := y.Validate(g); err != nil {
		return nil, nil, err
	}
	xs, err := interval.EnsureSorted(x, g, true)
	if err != nil {
		return nil, nil, err
	}
	ys, err := interval.EnsureSorted(y, g, true)
	if err != nil {
		return nil, nil, err
	}
	return xs, ys, nil
}
