package bedops

import (
	"github.com/pkg/errors"

	"github.com/kriemo/valr-demo/genome"
	"github.com/kriemo/valr-demo/interval"
)

// FlankOpts configures Flank and Slop.  Both, when nonzero, applies to both
// sides and overrides Left/Right.  With Strand set, Left/Right are taken
// relative to each row's strand: on '-' rows "left" means the higher
// coordinate side.
type FlankOpts struct {
	Both   int
	Left   int
	Right  int
	Strand bool
}

func (o FlankOpts) sides(strand byte) (left, right int) {
	if o.Both != 0 {
		return o.Both, o.Both
	}
	left, right = o.Left, o.Right
	if o.Strand && strand == interval.StrandMinus {
		left, right = right, left
	}
	return left, right
}

// Flank emits, for each row, up to two new rows of the requested sizes
// immediately upstream and downstream of the original span (the original span
// itself is excluded).  Flanks are clipped to [0, L); a flank truncated to
// zero length is dropped, not reported.  Payload columns are copied onto each
// emitted flank.
func Flank(t interval.Table, g *genome.Genome, opts FlankOpts) (interval.Table, error) {
	if err := t.Validate(g); err != nil {
		return nil, err
	}
	out := make(interval.Table, 0, 2*len(t))
	for _, iv := range t {
		left, right := opts.sides(iv.Strand)
		if left > 0 {
			start, end, err := g.Clip(iv.Chrom, iv.Start-left, iv.Start)
			if err != nil {
				return nil, err
			}
			if end > start {
				f := iv.Clone()
				f.Start, f.End = start, end
				out = append(out, f)
			}
		}
		if right > 0 {
			start, end, err := g.Clip(iv.Chrom, iv.End, iv.End+right)
			if err != nil {
				return nil, err
			}
			if end > start {
				f := iv.Clone()
				f.Start, f.End = start, end
				out = append(out, f)
			}
		}
	}
	return out, nil
}

// Slop grows (or, with negative sizes, shrinks) each row by the requested
// amounts, clipping silently to the chromosome bounds.  A shrink that would
// invert a row (start > end) is rejected with ErrInvalidInterval rather than
// clamped.
func Slop(t interval.Table, g *genome.Genome, opts FlankOpts) (interval.Table, error) {
	if err := t.Validate(g); err != nil {
		return nil, err
	}
	out := make(interval.Table, 0, len(t))
	for _, iv := range t {
		left, right := opts.sides(iv.Strand)
		start := iv.Start - left
		end := iv.End + right
		if start > end {
			return nil, errors.Wrapf(interval.ErrInvalidInterval,
				"slop inverts %s:%d-%d to %d-%d", iv.Chrom, iv.Start, iv.End, start, end)
		}
		start, end, err := g.Clip(iv.Chrom, start, end)
		if err != nil {
			return nil, err
		}
		s := iv.Clone()
		s.Start, s.End = start, end
		out = append(out, s)
	}
	return out, nil
}

// ShiftOpts configures Shift.  By is the translation in bases; with Strand
// set, rows on '-' move in the opposite direction.
type ShiftOpts struct {
	By     int
	Strand bool
}

// Shift translates each row by the same amount, clipping to the chromosome
// bounds.  A shift that would push a non-empty row entirely out of its
// chromosome is rejected with ErrInvalidInterval.
func Shift(t interval.Table, g *genome.Genome, opts ShiftOpts) (interval.Table, error) {
	if err := t.Validate(g); err != nil {
		return nil, err
	}
	out := make(interval.Table, 0, len(t))
	for _, iv := range t {
		by := opts.By
		if opts.Strand && iv.Strand == interval.StrandMinus {
			by = -by
		}
		start, end, err := g.Clip(iv.Chrom, iv.Start+by, iv.End+by)
		if err != nil {
			return nil, err
		}
		if end <= start && iv.Len() > 0 {
			return nil, errors.Wrapf(interval.ErrInvalidInterval,
				"shift by %d pushes %s:%d-%d out of bounds", by, iv.Chrom, iv.Start, iv.End)
		}
		s := iv.Clone()
		s.Start, s.End = start, end
		out = append(out, s)
	}
	return out, nil
}
