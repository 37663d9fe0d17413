package interval

import (
	"sort"

	store "github.com/biogo/store/interval"
)

// treeEntry adapts one table row to the biogo augmented interval tree.
type treeEntry struct {
	start, end int
	row        int
}

// Overlap uses half-open interval indexing, so book-ended entries do not
// match; Index.Overlapping widens the query instead when touch should count.
func (e treeEntry) Overlap(b store.IntRange) bool {
	return e.end > b.Start && e.start < b.End
}

func (e treeEntry) ID() uintptr { return uintptr(e.row) }

func (e treeEntry) Range() store.IntRange {
	return store.IntRange{Start: e.start, End: e.end}
}

// chromIndex holds one chromosome's tree plus the same rows sorted by
// (start, end), with a running maximum end, for nearest-neighbor queries.
type chromIndex struct {
	tree *store.IntTree
	// rows are indexes into the source table, ordered by (start, end, row).
	rows []int
	// maxEnd[i] is the maximum End over rows[0..i].
	maxEnd []int
}

// Index answers overlap and nearest queries against a fixed table.  Build
// cost is O(n log n); overlap queries are O(log n + k) per probe.  The index
// never copies payload columns, only row numbers.
type Index struct {
	table  Table
	chroms map[string]*chromIndex
}

// NewIndex builds per-chromosome interval trees over the table.  The table
// need not be sorted; query results are always reported in input row order.
func NewIndex(t Table) *Index {
	ix := &Index{table: t, chroms: make(map[string]*chromIndex)}
	for row, iv := range t {
		ci := ix.chroms[iv.Chrom]
		if ci == nil {
			ci = &chromIndex{tree: &store.IntTree{}}
			ix.chroms[iv.Chrom] = ci
		}
		// Fast insert; ranges are adjusted once after the last insert.
		_ = ci.tree.Insert(treeEntry{start: iv.Start, end: iv.End, row: row}, true)
		ci.rows = append(ci.rows, row)
	}
	for _, ci := range ix.chroms {
		ci.tree.AdjustRanges()
		rows := ci.rows
		sort.SliceStable(rows, func(i, j int) bool {
			a, b := t[rows[i]], t[rows[j]]
			if a.Start != b.Start {
				return a.Start < b.Start
			}
			return a.End < b.End
		})
		ci.maxEnd = make([]int, len(rows))
		for i, row := range rows {
			ci.maxEnd[i] = t[row].End
			if i > 0 && ci.maxEnd[i-1] > ci.maxEnd[i] {
				ci.maxEnd[i] = ci.maxEnd[i-1]
			}
		}
	}
	return ix
}

// Table returns the indexed table.
func (ix *Index) Table() Table { return ix.table }

// Overlapping returns the rows with non-empty intersection with q, in input
// row order.  With bookended set, rows touching q (zero-length gap) are
// included as well; their overlap size is 0.
func (ix *Index) Overlapping(q Interval, bookended bool) []int {
	ci := ix.chroms[q.Chrom]
	if ci == nil {
		return nil
	}
	qStart, qEnd := q.Start, q.End
	if bookended {
		// Widen by one base on each side so the strict half-open tree test
		// admits book-ended rows, then filter below.
		qStart--
		qEnd++
	}
	var rows []int
	ci.tree.DoMatching(func(e store.IntInterface) bool {
		row := int(e.ID())
		if bookended {
			iv := ix.table[row]
			if iv.End < q.Start || iv.Start > q.End {
				return false
			}
		}
		rows = append(rows, row)
		return false
	}, treeEntry{start: qStart, end: qEnd})
	sort.Ints(rows)
	return rows
}

// Nearest returns the row(s) minimizing edge-to-edge distance to q.
// Overlapping and book-ended rows have distance 0.  On an exact distance tie
// between an upstream and a downstream neighbor, the upstream (lower
// coordinate) rows are listed first; within a side, rows come back in table
// input order.  The second return is the minimized distance, -1 when the
// chromosome holds no rows.
func (ix *Index) Nearest(q Interval) ([]int, int) {
	ci := ix.chroms[q.Chrom]
	if ci == nil {
		return nil, -1
	}
	if hits := ix.Overlapping(q, true); len(hits) > 0 {
		return hits, 0
	}
	t := ix.table
	// First row at or past q's end; everything before it ends strictly before
	// q's start (an end inside q would have been an overlap hit above).
	d := sort.Search(len(ci.rows), func(i int) bool {
		return t[ci.rows[i]].Start >= q.End
	})
	upDist, downDist := -1, -1
	if d > 0 {
		upDist = q.Start - ci.maxEnd[d-1]
	}
	if d < len(ci.rows) {
		downDist = t[ci.rows[d]].Start - q.End
	}
	var rows []int
	if upDist >= 0 && (downDist < 0 || upDist <= downDist) {
		bestEnd := ci.maxEnd[d-1]
		for i := d - 1; i >= 0 && ci.maxEnd[i] == bestEnd; i-- {
			if t[ci.rows[i]].End == bestEnd {
				rows = append(rows, ci.rows[i])
			}
		}
		sort.Ints(rows)
	}
	if downDist >= 0 && (upDist < 0 || downDist <= upDist) {
		minStart := t[ci.rows[d]].Start
		var down []int
		for i := d; i < len(ci.rows) && t[ci.rows[i]].Start == minStart; i++ {
			down = append(down, ci.rows[i])
		}
		sort.Ints(down)
		rows = append(rows, down...)
	}
	dist := upDist
	if dist < 0 || (downDist >= 0 && downDist < dist) {
		dist = downDist
	}
	return rows, dist
}
