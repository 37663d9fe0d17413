package bedops

import (
	"github.com/kriemo/valr-demo/genome"
	"github.com/kriemo/valr-demo/interval"
)

// Complement emits, for every chromosome in the genome, the gaps not covered
// by the table: [0, first.start), each inter-block gap, and [last.end, L).
// Chromosomes with no rows contribute their whole [0, L) span; zero-length
// gaps are omitted.  The input need not be merged or sorted.
func Complement(t interval.Table, g *genome.Genome) (interval.Table, error) {
	if err := t.Validate(g); err != nil {
		return nil, err
	}
	spans := interval.MergeSweep(t, g, 0)
	byChrom := make(map[string][]interval.Span)
	for _, sp := range spans {
		byChrom[sp.Chrom] = append(byChrom[sp.Chrom], sp)
	}
	var out interval.Table
	for _, c := range g.Chroms() {
		pos := 0
		for _, sp := range byChrom[c.Name] {
			if sp.Start > pos {
				out = append(out, interval.Interval{Chrom: c.Name, Start: pos, End: sp.Start})
			}
			pos = sp.End
		}
		if pos < c.Size {
			out = append(out, interval.Interval{Chrom: c.Name, Start: pos, End: c.Size})
		}
	}
	return out, nil
}
