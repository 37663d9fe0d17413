// Package stats computes the overlap and distance statistics defined over
// interval tables: the jaccard similarity, absolute and relative distance
// distributions, and Fisher's exact test on overlap base counts.  All
// statistics operate on base-pair units of the merged inputs, not interval
// counts.
package stats

import (
	"github.com/kriemo/valr-demo/bedops"
	"github.com/kriemo/valr-demo/genome"
	"github.com/kriemo/valr-demo/interval"
)

// JaccardResult carries the jaccard statistic and the counts it derives from.
type JaccardResult struct {
	// Intersection and Union are base counts over the merged inputs.
	Intersection int
	Union        int
	// NInt is the number of intersecting block pairs between the merged
	// inputs.
	NInt int
	// Jaccard is Intersection/Union, 0 when both inputs are empty.
	Jaccard float64
}

// Jaccard measures the similarity of two tables as the ratio of shared to
// covered bases.  Both inputs are merged first, so duplicated or overlapping
// rows within one table are counted once.
func Jaccard(x, y interval.Table, g *genome.Genome) (JaccardResult, error) {
	mx, err := bedops.Merge(x, g, bedops.DefaultMergeOpts)
	if err != nil {
		return JaccardResult{}, err
	}
	my, err := bedops.Merge(y, g, bedops.DefaultMergeOpts)
	if err != nil {
		return JaccardResult{}, err
	}
	var res JaccardResult
	for _, p := range interval.SweepPairs(mx, my, false) {
		res.Intersection += p.Overlap
		res.NInt++
	}
	res.Union = mx.TotalLen() + my.TotalLen() - res.Intersection
	if res.Union > 0 {
		res.Jaccard = float64(res.Intersection) / float64(res.Union)
	}
	return res, nil
}
