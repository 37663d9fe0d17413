package bedops

import (
	"github.com/kriemo/valr-demo/genome"
	"github.com/kriemo/valr-demo/interval"
)

// Subtract clips every x row to exclude the bases covered by y.  A row fully
// covered by y is dropped; a row whose interior is covered is split into the
// remaining sub-intervals, each carrying the original row's payload.  Output
// is in sorted-x order.
func Subtract(x, y interval.Table, g *genome.Genome) (interval.Table, error) {
	xs, _, err := sortedPair(x, y, g)
	if err != nil {
		return nil, err
	}
	// Merged y spans on each chromosome, in coordinate order.
	cover := make(map[string][]interval.Span)
	for _, sp := range interval.MergeSweep(y, g, 0) {
		cover[sp.Chrom] = append(cover[sp.Chrom], sp)
	}
	var out interval.Table
	for _, iv := range xs {
		if iv.Len() == 0 {
			// A zero-length row survives unless it sits strictly inside a
			// covered span.
			inside := false
			for _, sp := range cover[iv.Chrom] {
				if sp.Start < iv.Start && iv.Start < sp.End {
					inside = true
					break
				}
			}
			if !inside {
				out = append(out, iv.Clone())
			}
			continue
		}
		pos := iv.Start
		for _, sp := range cover[iv.Chrom] {
			if sp.End <= pos {
				continue
			}
			if sp.Start >= iv.End {
				break
			}
			if sp.Start > pos {
				piece := iv.Clone()
				piece.Start, piece.End = pos, sp.Start
				out = append(out, piece)
			}
			pos = sp.End
			if pos >= iv.End {
				break
			}
		}
		if pos < iv.End {
			piece := iv.Clone()
			piece.Start = pos
			out = append(out, piece)
		}
	}
	return out, nil
}
