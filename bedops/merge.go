package bedops

import (
	"github.com/kriemo/valr-demo/genome"
	"github.com/kriemo/valr-demo/interval"
)

// MergeOpts configures Merge.
type MergeOpts struct {
	// MaxDist is the largest gap, in bases, bridged when coalescing; 0 merges
	// only overlapping and book-ended rows.
	MaxDist int
	// Aggregate maps output column names to reductions computed over each
	// merged group, alongside the sweep.  Results land in the output rows'
	// Extra map.
	Aggregate map[string]AggFunc
}

// DefaultMergeOpts are the Merge defaults.
var DefaultMergeOpts = MergeOpts{}

// Merge coalesces the table into the minimal covering set of non-overlapping
// blocks, bridging gaps of at most opts.MaxDist.  Input order does not
// matter; the result is sorted (genome chromosome order when g is non-nil,
// lexical otherwise).  Per-row payload does not survive merging; aggregation
// columns requested through opts carry group summaries instead.
func Merge(t interval.Table, g *genome.Genome, opts MergeOpts) (interval.Table, error) {
	if err := t.Validate(g); err != nil {
		return nil, err
	}
	spans := interval.MergeSweep(t, g, opts.MaxDist)
	out := make(interval.Table, 0, len(spans))
	var group interval.Table
	for _, sp := range spans {
		iv := interval.Interval{Chrom: sp.Chrom, Start: sp.Start, End: sp.End}
		if len(opts.Aggregate) > 0 {
			group = group[:0]
			for _, row := range sp.Rows {
				group = append(group, t[row])
			}
			iv.Extra = make(map[string]string, len(opts.Aggregate))
			for name, agg := range opts.Aggregate {
				iv.Extra[name] = agg(group)
			}
		}
		out = append(out, iv)
	}
	return out, nil
}

// Cluster assigns a cluster id to every row: two rows share an id iff they
// are connected through a chain of overlaps, touches, or gaps of at most
// maxDist.  It returns the table sorted (per Merge's ordering rules) together
// with a parallel id slice; ids start at 0 and increase in sorted order, and
// are scoped to this invocation.
func Cluster(t interval.Table, g *genome.Genome, maxDist int) (interval.Table, []int, error) {
	if err := t.Validate(g); err != nil {
		return nil, nil, err
	}
	spans := interval.MergeSweep(t, g, maxDist)
	out := make(interval.Table, 0, len(t))
	ids := make([]int, 0, len(t))
	for id, sp := range spans {
		for _, row := range sp.Rows {
			out = append(out, t[row])
			ids = append(ids, id)
		}
	}
	return out.Clone(), ids, nil
}
