// Package random draws and shuffles intervals against a genome registry.
// Every entry point takes an explicit seed, so results are reproducible and
// concurrent invocations never share RNG state.
package random

import (
	"math/rand"
	"sort"

	"github.com/pkg/errors"

	"github.com/kriemo/valr-demo/genome"
	"github.com/kriemo/valr-demo/interval"
)

// ErrInsufficientSpace is returned when no chromosome can hold an interval of
// the requested length.
var ErrInsufficientSpace = errors.New("insufficient space")

// RandomOpts configures Random.
type RandomOpts struct {
	// N is the number of intervals to draw.
	N int
	// Length is the fixed length of every drawn interval.
	Length int
	// Seed initializes the RNG; equal seeds give equal draws.
	Seed int64
}

// chromPicker draws chromosome names with probability proportional to the
// usable space on each (size - minLen + 1 start positions).
type chromPicker struct {
	names  []string
	sizes  []int
	cumul  []int
	total  int
	minLen int
}

func newChromPicker(g *genome.Genome, minLen int) *chromPicker {
	p := &chromPicker{minLen: minLen}
	for _, c := range g.Chroms() {
		usable := c.Size - minLen + 1
		if usable <= 0 {
			continue
		}
		p.total += usable
		p.names = append(p.names, c.Name)
		p.sizes = append(p.sizes, c.Size)
		p.cumul = append(p.cumul, p.total)
	}
	return p
}

func (p *chromPicker) pick(rng *rand.Rand) (string, int) {
	r := rng.Intn(p.total)
	i := sort.SearchInts(p.cumul, r+1)
	return p.names[i], p.sizes[i]
}

// Random draws opts.N intervals of opts.Length bases.  Chromosomes are chosen
// with probability proportional to their usable space and starts uniformly
// within [0, size-length], so every draw lies inside the genome bounds.  It
// fails with ErrInsufficientSpace when the length exceeds every chromosome's
// size.
func Random(g *genome.Genome, opts RandomOpts) (interval.Table, error) {
	if opts.Length < 0 || opts.N < 0 {
		return nil, errors.Errorf("random.Random: negative n (%d) or length (%d)", opts.N, opts.Length)
	}
	picker := newChromPicker(g, opts.Length)
	if picker.total == 0 {
		return nil, errors.Wrapf(ErrInsufficientSpace, "no chromosome can hold %d bases", opts.Length)
	}
	rng := rand.New(rand.NewSource(opts.Seed))
	out := make(interval.Table, 0, opts.N)
	for i := 0; i < opts.N; i++ {
		chrom, size := picker.pick(rng)
		start := rng.Intn(size - opts.Length + 1)
		out = append(out, interval.Interval{Chrom: chrom, Start: start, End: start + opts.Length})
	}
	return out, nil
}

// ShuffleOpts configures Shuffle.
type ShuffleOpts struct {
	Seed int64
	// GenomeWide relocates rows to any chromosome (weighted by usable space)
	// instead of keeping each row on its source chromosome.
	GenomeWide bool
	// MaxTries bounds placement attempts per row; 0 means 1000.
	MaxTries int
}

// Shuffle redraws the position of every row, preserving its length and
// payload.  Placements falling outside the genome bounds are redrawn up to
// opts.MaxTries times before the row fails with ErrInsufficientSpace.  Rows
// stay on their source chromosome unless opts.GenomeWide is set.
func Shuffle(t interval.Table, g *genome.Genome, opts ShuffleOpts) (interval.Table, error) {
	if err := t.Validate(g); err != nil {
		return nil, err
	}
	maxTries := opts.MaxTries
	if maxTries <= 0 {
		maxTries = 1000
	}
	rng := rand.New(rand.NewSource(opts.Seed))
	// One picker per distinct length avoids rebuilding the cumulative weights
	// on every retry.
	pickers := make(map[int]*chromPicker)
	out := make(interval.Table, 0, len(t))
	for _, iv := range t {
		length := iv.Len()
		placed := false
		for try := 0; try < maxTries; try++ {
			chrom := iv.Chrom
			size, err := g.Len(chrom)
			if err != nil {
				return nil, err
			}
			if opts.GenomeWide {
				picker := pickers[length]
				if picker == nil {
					picker = newChromPicker(g, length)
					pickers[length] = picker
				}
				if picker.total == 0 {
					break
				}
				chrom, size = picker.pick(rng)
			}
			if size < length {
				continue
			}
			start := rng.Intn(size - length + 1)
			s := iv.Clone()
			s.Chrom = chrom
			s.Start, s.End = start, start+length
			out = append(out, s)
			placed = true
			break
		}
		if !placed {
			return nil, errors.Wrapf(ErrInsufficientSpace,
				"could not place %d-base interval from %s after %d tries", length, iv.Chrom, maxTries)
		}
	}
	return out, nil
}
