package bedops

import (
	"github.com/kriemo/valr-demo/genome"
	"github.com/kriemo/valr-demo/interval"
)

// ClosestHit pairs an x row with one of its nearest y neighbors.  Dist is
// signed: negative when the neighbor lies upstream (lower coordinates) of the
// x row, positive downstream, 0 when they overlap or touch.
type ClosestHit struct {
	X, Y interval.Interval
	Dist int
}

// ClosestOpts configures Closest.
type ClosestOpts struct {
	// UpstreamOnly keeps just the upstream neighbor when upstream and
	// downstream neighbors tie on distance.  Without it, ties report both.
	UpstreamOnly bool
	// MaxDist, when positive, drops neighbors farther than this many bases.
	MaxDist int
}

// Closest reports, for each x row, the y row(s) minimizing edge-to-edge
// distance.  Overlapping and book-ended neighbors have distance 0, equal
// distances on both sides report both neighbors (subject to
// opts.UpstreamOnly), and x rows on chromosomes absent from y produce no
// hits.  Output follows sorted-x order; for one x row, upstream neighbors
// precede downstream ones, each side in y input order.
func Closest(x, y interval.Table, g *genome.Genome, opts ClosestOpts) ([]ClosestHit, error) {
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
	ix := interval.NewIndex(y)
	var hits []ClosestHit
	for _, iv := range xs {
		rows, dist := ix.Nearest(iv)
		if dist < 0 || (opts.MaxDist > 0 && dist > opts.MaxDist) {
			continue
		}
		signedDist := func(yiv interval.Interval) int {
			switch {
			case yiv.End < iv.Start:
				return -(iv.Start - yiv.End)
			case yiv.Start > iv.End:
				return yiv.Start - iv.End
			}
			return 0
		}
		// A tie exists when both sides appear among the minimizers; only then
		// does UpstreamOnly trim the downstream half.
		tied := false
		if opts.UpstreamOnly && dist > 0 {
			sawUp, sawDown := false, false
			for _, row := range rows {
				if signedDist(y[row]) < 0 {
					sawUp = true
				} else {
					sawDown = true
				}
			}
			tied = sawUp && sawDown
		}
		for _, row := range rows {
			yiv := y[row]
			signed := signedDist(yiv)
			if tied && signed > 0 {
				continue
			}
			hits = append(hits, ClosestHit{X: iv.Clone(), Y: yiv.Clone(), Dist: signed})
		}
	}
	return hits, nil
}
