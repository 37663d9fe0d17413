package interval

import (
	"sort"

	"github.com/grailbio/base/traverse"

	"github.com/kriemo/valr-demo/genome"
)

// Span is one merged block produced by MergeSweep: the covering coordinates
// plus the source rows (original table indexes) that were coalesced into it.
type Span struct {
	Chrom string
	Start int
	End   int
	Rows  []int
}

// MergeSweep coalesces the table into the minimal set of blocks in which any
// two rows connected through a chain of overlaps, touches, or gaps of at most
// maxDist share a block.  maxDist 0 merges true overlaps and book-ended rows
// only.  The input is sorted internally; Span.Rows refer to the original
// table and are listed in sorted order.  Blocks come back ordered by
// (chrom, start), chromosomes per the genome rank (lexical when g is nil).
func MergeSweep(t Table, g *genome.Genome, maxDist int) []Span {
	order := sortedOrder(t, g)
	var spans []Span
	for _, row := range order {
		iv := t[row]
		if n := len(spans); n > 0 {
			cur := &spans[n-1]
			if cur.Chrom == iv.Chrom && iv.Start <= cur.End+maxDist {
				if iv.End > cur.End {
					cur.End = iv.End
				}
				cur.Rows = append(cur.Rows, row)
				continue
			}
		}
		spans = append(spans, Span{Chrom: iv.Chrom, Start: iv.Start, End: iv.End, Rows: []int{row}})
	}
	return spans
}

// sortedOrder returns table indexes in (chrom, start, end) order without
// copying rows.
func sortedOrder(t Table, g *genome.Genome) []int {
	order := make([]int, len(t))
	for i := range order {
		order[i] = i
	}
	if !IsSorted(t, g) {
		sort.SliceStable(order, func(i, j int) bool {
			return rowLess(g, t[order[i]], t[order[j]])
		})
	}
	return order
}

// chromBlocks maps each chromosome to its contiguous [lo, hi) row range in a
// sorted table.
func chromBlocks(t Table) map[string][2]int {
	blocks := make(map[string][2]int)
	lo := 0
	for i := 1; i <= len(t); i++ {
		if i == len(t) || t[i].Chrom != t[lo].Chrom {
			blocks[t[lo].Chrom] = [2]int{lo, i}
			lo = i
		}
	}
	return blocks
}

// Pair references one overlapping (x, y) row combination found by SweepPairs.
type Pair struct {
	XRow, YRow int
	// Overlap is the intersection size in bases; 0 means the rows are
	// book-ended.
	Overlap int
}

// SweepPairs enumerates all overlapping row pairs between two sorted tables
// using the classical chromosome sweep: both streams advance in coordinate
// order with a running active list, giving O(n+m+k) work for k result pairs.
// Both tables must be sorted by (chrom, start, end); use EnsureSorted first.
// With bookended set, touching pairs are reported with Overlap 0.  Pairs come
// back ordered by x row, then y row.
func SweepPairs(x, y Table, bookended bool) []Pair {
	yBlocks := chromBlocks(y)
	xBlocks := chromBlocks(x)
	type job struct {
		xb, yb [2]int
	}
	var jobs []job
	for chrom, xb := range xBlocks {
		if yb, ok := yBlocks[chrom]; ok {
			jobs = append(jobs, job{xb, yb})
		}
	}
	// Intervals never span chromosomes, so per-chromosome sweeps are
	// independent.
	results := make([][]Pair, len(jobs))
	_ = traverse.Each(len(jobs), func(i int) error {
		results[i] = chromSweep(x, y, jobs[i].xb, jobs[i].yb, bookended)
		return nil
	})
	var pairs []Pair
	for _, r := range results {
		pairs = append(pairs, r...)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].XRow != pairs[j].XRow {
			return pairs[i].XRow < pairs[j].XRow
		}
		return pairs[i].YRow < pairs[j].YRow
	})
	return pairs
}

// chromSweep pairs the sorted x rows [xb[0], xb[1]) against the sorted y rows
// [yb[0], yb[1]), all on one chromosome.
func chromSweep(x, y Table, xb, yb [2]int, bookended bool) []Pair {
	var pairs []Pair
	var active []int // y rows whose end has not yet fallen behind the sweep
	next := yb[0]
	for xi := xb[0]; xi < xb[1]; xi++ {
		xiv := x[xi]
		// Retire y rows that end before this x row starts.  Because x is
		// sorted by start, a retired row can never match a later x row.
		live := active[:0]
		for _, yi := range active {
			yEnd := y[yi].End
			if yEnd > xiv.Start || (bookended && yEnd == xiv.Start) {
				live = append(live, yi)
			}
		}
		active = live
		// Admit y rows starting at or before this x row's end.
		for next < yb[1] {
			yStart := y[next].Start
			if yStart < xiv.End || (bookended && yStart == xiv.End) {
				active = append(active, next)
				next++
				continue
			}
			break
		}
		for _, yi := range active {
			yiv := y[yi]
			overlaps := yiv.End > xiv.Start && yiv.Start < xiv.End
			touches := bookended && yiv.End >= xiv.Start && yiv.Start <= xiv.End
			if overlaps || touches {
				pairs = append(pairs, Pair{XRow: xi, YRow: yi, Overlap: xiv.OverlapLen(yiv)})
			}
		}
	}
	return pairs
}
