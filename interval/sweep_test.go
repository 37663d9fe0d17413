package interval

import (
	"testing"

	"github.com/grailbio/testutil/expect"

	"github.com/kriemo/valr-demo/genome"
)

func TestMergeSweep(t *testing.T) {
	tests := []struct {
		name    string
		in      Table
		maxDist int
		want    []Span
	}{
		{
			name: "book-ended rows merge at maxDist 0",
			in: Table{
				{Chrom: "chr1", Start: 0, End: 10},
				{Chrom: "chr1", Start: 10, End: 20},
			},
			want: []Span{{Chrom: "chr1", Start: 0, End: 20, Rows: []int{0, 1}}},
		},
		{
			name: "disjoint rows stay apart",
			in: Table{
				{Chrom: "chr1", Start: 0, End: 10},
				{Chrom: "chr1", Start: 11, End: 20},
			},
			want: []Span{
				{Chrom: "chr1", Start: 0, End: 10, Rows: []int{0}},
				{Chrom: "chr1", Start: 11, End: 20, Rows: []int{1}},
			},
		},
		{
			name: "maxDist bridges small gaps",
			in: Table{
				{Chrom: "chr1", Start: 0, End: 10},
				{Chrom: "chr1", Start: 13, End: 20},
			},
			maxDist: 3,
			want:    []Span{{Chrom: "chr1", Start: 0, End: 20, Rows: []int{0, 1}}},
		},
		{
			name: "contained row does not extend the block",
			in: Table{
				{Chrom: "chr1", Start: 0, End: 100},
				{Chrom: "chr1", Start: 10, End: 20},
				{Chrom: "chr1", Start: 150, End: 160},
			},
			want: []Span{
				{Chrom: "chr1", Start: 0, End: 100, Rows: []int{0, 1}},
				{Chrom: "chr1", Start: 150, End: 160, Rows: []int{2}},
			},
		},
		{
			name: "unsorted input with multiple chromosomes",
			in: Table{
				{Chrom: "chr2", Start: 0, End: 5},
				{Chrom: "chr1", Start: 50, End: 60},
				{Chrom: "chr1", Start: 40, End: 55},
			},
			want: []Span{
				{Chrom: "chr1", Start: 40, End: 60, Rows: []int{2, 1}},
				{Chrom: "chr2", Start: 0, End: 5, Rows: []int{0}},
			},
		},
	}
	for _, test := range tests {
		got := MergeSweep(test.in, nil, test.maxDist)
		expect.EQ(t, test.want, got)
	}
}

func TestMergeSweepIdempotent(t *testing.T) {
	in := Table{
		{Chrom: "chr1", Start: 0, End: 10},
		{Chrom: "chr1", Start: 5, End: 20},
		{Chrom: "chr1", Start: 30, End: 40},
	}
	first := MergeSweep(in, nil, 0)
	merged := make(Table, len(first))
	for i, sp := range first {
		merged[i] = Interval{Chrom: sp.Chrom, Start: sp.Start, End: sp.End}
	}
	second := MergeSweep(merged, nil, 0)
	expect.EQ(t, len(first), len(second))
	for i := range first {
		expect.EQ(t, first[i].Chrom, second[i].Chrom)
		expect.EQ(t, first[i].Start, second[i].Start)
		expect.EQ(t, first[i].End, second[i].End)
	}
}

func TestMergeSweepGenomeOrder(t *testing.T) {
	g, err := genome.New([]genome.Chrom{
		{Name: "chr2", Size: 100},
		{Name: "chr1", Size: 100},
	})
	expect.NoError(t, err)
	spans := MergeSweep(Table{
		{Chrom: "chr1", Start: 0, End: 5},
		{Chrom: "chr2", Start: 0, End: 5},
	}, g, 0)
	expect.EQ(t, "chr2", spans[0].Chrom)
	expect.EQ(t, "chr1", spans[1].Chrom)
}

func TestSweepPairs(t *testing.T) {
	x := Sorted(Table{
		{Chrom: "chr1", Start: 100, End: 200},
		{Chrom: "chr1", Start: 300, End: 400},
		{Chrom: "chr2", Start: 0, End: 50},
	}, nil)
	y := Sorted(Table{
		{Chrom: "chr1", Start: 150, End: 250},
		{Chrom: "chr1", Start: 200, End: 310},
		{Chrom: "chr2", Start: 60, End: 70},
	}, nil)

	pairs := SweepPairs(x, y, false)
	expect.EQ(t, []Pair{
		{XRow: 0, YRow: 0, Overlap: 50},
		{XRow: 1, YRow: 1, Overlap: 10},
	}, pairs)

	// Book-ended pairs appear with Overlap 0 when requested.
	pairs = SweepPairs(x, y, true)
	expect.EQ(t, []Pair{
		{XRow: 0, YRow: 0, Overlap: 50},
		{XRow: 0, YRow: 1, Overlap: 0},
		{XRow: 1, YRow: 1, Overlap: 10},
	}, pairs)
}

func TestSweepPairsLongSpanningRow(t *testing.T) {
	// A y row with a small start but a large end must stay active across many
	// x rows.
	x := Table{
		{Chrom: "chr1", Start: 10, End: 20},
		{Chrom: "chr1", Start: 100, End: 110},
		{Chrom: "chr1", Start: 500, End: 510},
	}
	y := Table{
		{Chrom: "chr1", Start: 0, End: 1000},
		{Chrom: "chr1", Start: 15, End: 30},
	}
	pairs := SweepPairs(x, y, false)
	expect.EQ(t, []Pair{
		{XRow: 0, YRow: 0, Overlap: 10},
		{XRow: 0, YRow: 1, Overlap: 5},
		{XRow: 1, YRow: 0, Overlap: 10},
		{XRow: 2, YRow: 0, Overlap: 10},
	}, pairs)
}

func TestSweepPairsNoSharedChrom(t *testing.T) {
	x := Table{{Chrom: "chr1", Start: 0, End: 10}}
	y := Table{{Chrom: "chr2", Start: 0, End: 10}}
	expect.EQ(t, 0, len(SweepPairs(x, y, true)))
}
