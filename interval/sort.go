package interval

import (
	"sort"

	"github.com/kriemo/valr-demo/genome"
)

// chromRank orders chromosomes by genome rank when a registry is supplied and
// lexically otherwise.  Chromosomes missing from the registry sort after all
// registered ones, lexically among themselves, so genome-free rows are not
// silently interleaved with registered ones.
func chromLess(g *genome.Genome, a, b string) bool {
	if g != nil {
		ra, aok := g.Rank(a)
		rb, bok := g.Rank(b)
		switch {
		case aok && bok:
			return ra < rb
		case aok != bok:
			return aok
		}
	}
	return a < b
}

// Less is the (chrom, start, end) total order used for sorted tables,
// exposed for operators that sort index slices rather than tables.
func Less(g *genome.Genome, a, b Interval) bool {
	return rowLess(g, a, b)
}

// rowLess is the (chrom, start, end) total order used for sorted tables.
func rowLess(g *genome.Genome, a, b Interval) bool {
	if a.Chrom != b.Chrom {
		return chromLess(g, a.Chrom, b.Chrom)
	}
	if a.Start != b.Start {
		return a.Start < b.Start
	}
	return a.End < b.End
}

// Sorted returns a copy of the table stably sorted by (chrom, start, end).
// With a nil genome, chromosomes order lexically; otherwise genome rank wins.
// Stability gives the deterministic tie-break by original row index.
func Sorted(t Table, g *genome.Genome) Table {
	out := t.Clone()
	sort.SliceStable(out, func(i, j int) bool { return rowLess(g, out[i], out[j]) })
	return out
}

// IsSorted reports whether the table satisfies the (chrom, start, end) order.
func IsSorted(t Table, g *genome.Genome) bool {
	for i := 1; i < len(t); i++ {
		if rowLess(g, t[i], t[i-1]) {
			return false
		}
	}
	return true
}

// IsMerged reports whether the table is sorted and no two rows on a
// chromosome overlap or touch.
func IsMerged(t Table, g *genome.Genome) bool {
	if !IsSorted(t, g) {
		return false
	}
	for i := 1; i < len(t); i++ {
		if t[i].Chrom == t[i-1].Chrom && t[i].Start <= t[i-1].End {
			return false
		}
	}
	return true
}

// EnsureSorted returns t itself when already sorted, or a sorted copy.  When
// autoSort is false an unsorted table is rejected with ErrUnsortedInput
// instead.
func EnsureSorted(t Table, g *genome.Genome, autoSort bool) (Table, error) {
	if IsSorted(t, g) {
		return t, nil
	}
	if !autoSort {
		return nil, ErrUnsortedInput
	}
	return Sorted(t, g), nil
}
