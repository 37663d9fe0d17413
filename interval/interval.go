// Package interval implements the typed interval-table data model and the
// indexes (per-chromosome interval trees and sorted sweeps) that the single-set
// and pairwise operators are built on.  Coordinates follow the 0-based
// half-open [start, end) convention throughout; an interval with start == end
// has zero length.
package interval

import (
	"github.com/pkg/errors"

	"github.com/kriemo/valr-demo/genome"
)

var (
	// ErrInvalidInterval is returned for start > end, negative coordinates, or
	// a coordinate transform that would invert an interval.
	ErrInvalidInterval = errors.New("invalid interval")
	// ErrUnsortedInput is returned by entry points that require sorted input
	// when auto-sorting is disabled.
	ErrUnsortedInput = errors.New("unsorted input")
)

// Strand annotations.  StrandNone marks rows without strand information.
const (
	StrandPlus  byte = '+'
	StrandMinus byte = '-'
	StrandNone  byte = 0
)

// Interval is one table row: a half-open genomic span plus opaque payload
// columns.  The payload (Name, Score, Strand, Extra) is carried through
// operators untouched; only the index-relevant fields (Chrom, Start, End) are
// interpreted.
type Interval struct {
	Chrom  string
	Start  int
	End    int
	Name   string
	Score  float64
	Strand byte
	// Extra holds arbitrary additional columns, keyed by column name.
	Extra map[string]string
}

// Len returns end-start.
func (iv Interval) Len() int {
	return iv.End - iv.Start
}

// Midpoint returns (start+end)/2, the reference point for distance statistics.
func (iv Interval) Midpoint() int {
	return (iv.Start + iv.End) / 2
}

// Overlaps reports whether iv and other share at least one base.  Book-ended
// intervals (zero-length gap) do not overlap; see Touches.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Chrom == other.Chrom && iv.End > other.Start && iv.Start < other.End
}

// Touches reports whether iv and other overlap or are book-ended.
func (iv Interval) Touches(other Interval) bool {
	return iv.Chrom == other.Chrom && iv.End >= other.Start && iv.Start <= other.End
}

// OverlapLen returns the number of shared bases (0 for book-ended or disjoint
// pairs on the same chromosome).
func (iv Interval) OverlapLen(other Interval) int {
	lo := iv.Start
	if other.Start > lo {
		lo = other.Start
	}
	hi := iv.End
	if other.End < hi {
		hi = other.End
	}
	if hi < lo {
		return 0
	}
	return hi - lo
}

// Distance returns the edge-to-edge gap between two intervals on the same
// chromosome; overlapping or book-ended intervals have distance 0.
func (iv Interval) Distance(other Interval) int {
	if iv.End <= other.Start {
		return other.Start - iv.End
	}
	if other.End <= iv.Start {
		return iv.Start - other.End
	}
	return 0
}

// Validate checks the interval's internal consistency and, when g is non-nil,
// its bounds against the registry.
func (iv Interval) Validate(g *genome.Genome) error {
	if iv.Start < 0 || iv.End < iv.Start {
		return errors.Wrapf(ErrInvalidInterval, "%s:%d-%d", iv.Chrom, iv.Start, iv.End)
	}
	if g == nil {
		return nil
	}
	size, err := g.Len(iv.Chrom)
	if err != nil {
		return err
	}
	if iv.End > size {
		return errors.Wrapf(ErrInvalidInterval, "%s:%d-%d exceeds chromosome size %d", iv.Chrom, iv.Start, iv.End, size)
	}
	return nil
}

// Clone returns a copy whose Extra map does not alias the receiver's.
func (iv Interval) Clone() Interval {
	if iv.Extra != nil {
		extra := make(map[string]string, len(iv.Extra))
		for k, v := range iv.Extra {
			extra[k] = v
		}
		iv.Extra = extra
	}
	return iv
}

// Table is an ordered interval collection sharing one payload schema.
// Operators treat tables as values: they never mutate their inputs and always
// allocate fresh output rows.
type Table []Interval

// Clone returns a deep copy of the table.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for i, iv := range t {
		out[i] = iv.Clone()
	}
	return out
}

// Validate checks every row per Interval.Validate.
func (t Table) Validate(g *genome.Genome) error {
	for _, iv := range t {
		if err := iv.Validate(g); err != nil {
			return err
		}
	}
	return nil
}

// Chroms returns the distinct chromosome names in order of first appearance.
func (t Table) Chroms() []string {
	var names []string
	seen := make(map[string]bool)
	for _, iv := range t {
		if !seen[iv.Chrom] {
			seen[iv.Chrom] = true
			names = append(names, iv.Chrom)
		}
	}
	return names
}

// ByChrom partitions the table by chromosome, preserving row order within each
// partition.  Partition slices alias the receiver.
func (t Table) ByChrom() map[string]Table {
	parts := make(map[string]Table)
	start := 0
	for i := 1; i <= len(t); i++ {
		if i == len(t) || t[i].Chrom != t[start].Chrom {
			chrom := t[start].Chrom
			if existing, ok := parts[chrom]; ok {
				// Rows of one chromosome are not contiguous; fall back to a copy.
				parts[chrom] = append(existing[:len(existing):len(existing)], t[start:i]...)
			} else {
				parts[chrom] = t[start:i]
			}
			start = i
		}
	}
	return parts
}

// TotalLen returns the summed base-pair length of all rows.  Overlapping rows
// are counted once per row; merge first for a covered-base count.
func (t Table) TotalLen() int {
	total := 0
	for _, iv := range t {
		total += iv.Len()
	}
	return total
}
