package stats_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kriemo/valr-demo/genome"
	"github.com/kriemo/valr-demo/interval"
	"github.com/kriemo/valr-demo/stats"
)

func mustGenome(t *testing.T, chroms ...genome.Chrom) *genome.Genome {
	t.Helper()
	g, err := genome.New(chroms)
	require.NoError(t, err)
	return g
}

func TestJaccard(t *testing.T) {
	g := mustGenome(t, genome.Chrom{Name: "chr1", Size: 1000})
	x := interval.Table{{Chrom: "chr1", Start: 100, End: 200}}
	y := interval.Table{{Chrom: "chr1", Start: 150, End: 250}}

	res, err := stats.Jaccard(x, y, g)
	require.NoError(t, err)
	assert.Equal(t, 50, res.Intersection)
	assert.Equal(t, 150, res.Union)
	assert.Equal(t, 1, res.NInt)
	assert.InDelta(t, 1.0/3.0, res.Jaccard, 1e-12)
}

func TestJaccardSelf(t *testing.T) {
	x := interval.Table{
		{Chrom: "chr1", Start: 10, End: 20},
		{Chrom: "chr1", Start: 15, End: 40}, // overlap within x must not inflate
		{Chrom: "chr2", Start: 0, End: 5},
	}
	res, err := stats.Jaccard(x, x, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Jaccard)
}

func TestJaccardDisjointAndEmpty(t *testing.T) {
	x := interval.Table{{Chrom: "chr1", Start: 0, End: 10}}
	y := interval.Table{{Chrom: "chr1", Start: 100, End: 110}}
	res, err := stats.Jaccard(x, y, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Jaccard)
	assert.Equal(t, 0, res.Intersection)

	res, err = stats.Jaccard(nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Jaccard)
}

func TestAbsDist(t *testing.T) {
	g := mustGenome(t, genome.Chrom{Name: "chr1", Size: 1000}, genome.Chrom{Name: "chr2", Size: 500})
	x := interval.Table{
		{Chrom: "chr1", Start: 90, End: 110},  // midpoint 100
		{Chrom: "chr2", Start: 10, End: 20},   // no y on chr2
	}
	y := interval.Table{
		{Chrom: "chr1", Start: 140, End: 160}, // midpoint 150
		{Chrom: "chr1", Start: 440, End: 460}, // midpoint 450
	}
	rows, err := stats.AbsDist(x, y, g)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 50, rows[0].Dist)
	// scaled = raw * R / L = 50 * 2 / 1000
	assert.InDelta(t, 0.1, rows[0].ScaledDist, 1e-12)

	assert.Equal(t, -1, rows[1].Dist)
	assert.True(t, math.IsNaN(rows[1].ScaledDist))
}

func TestRelDist(t *testing.T) {
	x := interval.Table{
		{Chrom: "chr1", Start: 95, End: 105},   // midpoint 100, d=100 of span 400
		{Chrom: "chr1", Start: 395, End: 405},  // midpoint 400, d=100
		{Chrom: "chr1", Start: 1000, End: 1010}, // outside the y span, dropped
	}
	y := interval.Table{
		{Chrom: "chr1", Start: 0, End: 0},     // midpoint 0
		{Chrom: "chr1", Start: 400, End: 600}, // midpoint 500
	}
	rows, err := stats.RelDist(x, y)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.InDelta(t, 0.2, rows[0].RelDist, 1e-12)
	assert.InDelta(t, 0.2, rows[1].RelDist, 1e-12)
}

func TestRelDistBounds(t *testing.T) {
	x := make(interval.Table, 0, 100)
	for i := 0; i < 100; i++ {
		start := i*997 + 13
		x = append(x, interval.Interval{Chrom: "chr1", Start: start, End: start + 10})
	}
	y := make(interval.Table, 0, 20)
	for i := 0; i < 20; i++ {
		start := i * 5000
		y = append(y, interval.Interval{Chrom: "chr1", Start: start, End: start + 100})
	}
	rows, err := stats.RelDist(x, y)
	require.NoError(t, err)
	for _, r := range rows {
		assert.True(t, r.RelDist >= 0 && r.RelDist <= 0.5, "reldist %v out of range", r.RelDist)
	}
}

func TestRelDistHistogram(t *testing.T) {
	rows := []stats.RelDistRow{
		{RelDist: 0.01}, {RelDist: 0.02}, {RelDist: 0.49}, {RelDist: 0.5},
	}
	bins := stats.RelDistHistogram(rows, 5)
	require.Len(t, bins, 5)
	assert.Equal(t, 2, bins[0].Count)
	assert.Equal(t, 2, bins[4].Count) // 0.5 lands in the last bin
	assert.InDelta(t, 0.5, bins[0].Freq, 1e-12)
}

func TestFisher(t *testing.T) {
	g := mustGenome(t, genome.Chrom{Name: "chr1", Size: 500})
	x := interval.Table{{Chrom: "chr1", Start: 0, End: 100}}
	y := interval.Table{{Chrom: "chr1", Start: 50, End: 150}}

	res, err := stats.Fisher(x, y, g)
	require.NoError(t, err)
	assert.Equal(t, 50, res.Both)
	assert.Equal(t, 50, res.XOnly)
	assert.Equal(t, 50, res.YOnly)
	assert.Equal(t, 350, res.Neither)

	for _, p := range []float64{res.PLeft, res.PRight, res.PTwoTail} {
		assert.True(t, p >= 0 && p <= 1.0000001, "p-value %v out of range", p)
	}
	// Left and right tails both include the observed table.
	assert.True(t, res.PLeft+res.PRight >= 1)
	// 50 shared of 100 in 100 draws from 500 is far more overlap than chance.
	assert.True(t, res.PRight < 0.001)
}

func TestFisherNoOverlap(t *testing.T) {
	g := mustGenome(t, genome.Chrom{Name: "chr1", Size: 100})
	x := interval.Table{{Chrom: "chr1", Start: 0, End: 10}}
	y := interval.Table{{Chrom: "chr1", Start: 50, End: 60}}
	res, err := stats.Fisher(x, y, g)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Both)
	// Zero overlap sits at the bottom of the support, so the left tail is
	// just the observed outcome's probability.
	assert.True(t, res.PLeft > 0 && res.PLeft < 1)
	assert.InDelta(t, 1.0, res.PRight, 1e-9)
}
