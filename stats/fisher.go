package stats

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/kriemo/valr-demo/bedops"
	"github.com/kriemo/valr-demo/genome"
	"github.com/kriemo/valr-demo/interval"
)

// FisherResult carries the 2x2 contingency table of base counts and the exact
// test p-values derived from it.
type FisherResult struct {
	// Both counts bases covered by x and y; XOnly/YOnly bases covered by
	// exactly one input; Neither the remaining genome bases.
	Both, XOnly, YOnly, Neither int
	// PLeft is the probability of an overlap this small or smaller under the
	// hypergeometric null, PRight of one this large or larger, PTwoTail the
	// sum of all outcomes no more probable than the observed one.
	PLeft, PRight, PTwoTail float64
}

// hypergeomLogPMF is log P(X = k) for k successes in n draws from a
// population of size total containing succ successes.
func hypergeomLogPMF(k, succ, n, total int) float64 {
	return combin.LogGeneralizedBinomial(float64(succ), float64(k)) +
		combin.LogGeneralizedBinomial(float64(total-succ), float64(n-k)) -
		combin.LogGeneralizedBinomial(float64(total), float64(n))
}

// Fisher runs Fisher's exact test on the overlap between two tables measured
// in bases against the total genome size.  Both inputs are merged first.  The
// sums run over the full hypergeometric support, so the cost grows with
// min(covered x bases, covered y bases); the computation is deterministic and
// restartable, callers wanting a timeout can simply discard the result.
func Fisher(x, y interval.Table, g *genome.Genome) (FisherResult, error) {
	mx, err := bedops.Merge(x, g, bedops.DefaultMergeOpts)
	if err != nil {
		return FisherResult{}, err
	}
	my, err := bedops.Merge(y, g, bedops.DefaultMergeOpts)
	if err != nil {
		return FisherResult{}, err
	}
	both := 0
	for _, p := range interval.SweepPairs(mx, my, false) {
		both += p.Overlap
	}
	xBases := mx.TotalLen()
	yBases := my.TotalLen()
	total := g.TotalSize()
	union := xBases + yBases - both
	if union > total {
		return FisherResult{}, errors.Errorf("stats.Fisher: inputs cover %d bases but the genome holds only %d", union, total)
	}
	res := FisherResult{
		Both:    both,
		XOnly:   xBases - both,
		YOnly:   yBases - both,
		Neither: total - union,
	}
	// Hypergeometric null: yBases draws from total bases of which xBases are
	// marked; the observed statistic is the shared base count.
	lo := 0
	if d := yBases - (total - xBases); d > 0 {
		lo = d
	}
	hi := xBases
	if yBases < hi {
		hi = yBases
	}
	obs := hypergeomLogPMF(both, xBases, yBases, total)
	cutoff := obs + 1e-7
	for k := lo; k <= hi; k++ {
		lp := hypergeomLogPMF(k, xBases, yBases, total)
		p := math.Exp(lp)
		if k <= both {
			res.PLeft += p
		}
		if k >= both {
			res.PRight += p
		}
		if lp <= cutoff {
			res.PTwoTail += p
		}
	}
	if res.PLeft > 1 {
		res.PLeft = 1
	}
	if res.PRight > 1 {
		res.PRight = 1
	}
	if res.PTwoTail > 1 {
		res.PTwoTail = 1
	}
	return res, nil
}
