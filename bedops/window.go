package bedops

import (
	"sort"

	"github.com/kriemo/valr-demo/genome"
	"github.com/kriemo/valr-demo/interval"
)

// WindowOpts configures Window.  Both/Left/Right give the search distances
// added around each x row, with the same strand-relative semantics as Slop.
type WindowOpts struct {
	Both      int
	Left      int
	Right     int
	Strand    bool
	Intersect IntersectOpts
}

// Window reports the y rows within the given distance of each x row: each x
// row is grown per Slop (clipped to the genome bounds) and intersected
// against y.  Hits carry the original, un-grown x row.
func Window(x, y interval.Table, g *genome.Genome, opts WindowOpts) ([]Hit, error) {
	grown, err := Slop(x, g, FlankOpts{
		Both:   opts.Both,
		Left:   opts.Left,
		Right:  opts.Right,
		Strand: opts.Strand,
	})
	if err != nil {
		return nil, err
	}
	if err := y.Validate(g); err != nil {
		return nil, err
	}
	ys, err := interval.EnsureSorted(y, g, true)
	if err != nil {
		return nil, err
	}
	// Sort the grown rows by index so every sweep hit can be traced back to
	// its un-grown source row.  Slop preserves row order, so grown[i] derives
	// from x[i].
	order := make([]int, len(grown))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return interval.Less(g, grown[order[a]], grown[order[b]])
	})
	gs := make(interval.Table, len(grown))
	for i, idx := range order {
		gs[i] = grown[idx]
	}
	var hits []Hit
	for _, p := range interval.SweepPairs(gs, ys, !opts.Intersect.NoBookended) {
		hits = append(hits, Hit{
			X:       x[order[p.XRow]].Clone(),
			Y:       ys[p.YRow].Clone(),
			Overlap: gs[p.XRow].OverlapLen(ys[p.YRow]),
		})
	}
	return hits, nil
}
