// Package genome maintains the chromosome name/size registry shared by all
// interval operators in a session.  A Genome is immutable once constructed;
// the coordinate-bounding operators (slop, flank, shift, complement, random
// placement) consult it to clip or reject out-of-range coordinates.
package genome

import (
	"sort"

	"github.com/grailbio/hts/sam"
	"github.com/pkg/errors"
)

var (
	// ErrInvalidGenome is returned when a chromosome size mapping contains a
	// negative length or a repeated name.
	ErrInvalidGenome = errors.New("invalid genome")
	// ErrUnknownChromosome is returned when a coordinate references a
	// chromosome absent from the registry.
	ErrUnknownChromosome = errors.New("unknown chromosome")
)

// Chrom is a single (name, size) registry entry.
type Chrom struct {
	Name string
	Size int
}

// Genome is an immutable chromosome registry.  Chromosome rank follows the
// order entries were supplied in, which doubles as the chromosome sort order
// for genome-aware table sorts.
type Genome struct {
	chroms []Chrom
	rank   map[string]int
}

// New builds a Genome from an ordered list of (name, size) pairs.  It fails
// with ErrInvalidGenome if any size is negative or a name repeats.
func New(chroms []Chrom) (*Genome, error) {
	g := &Genome{
		chroms: make([]Chrom, 0, len(chroms)),
		rank:   make(map[string]int, len(chroms)),
	}
	for _, c := range chroms {
		if c.Size < 0 {
			return nil, errors.Wrapf(ErrInvalidGenome, "chromosome %s has negative size %d", c.Name, c.Size)
		}
		if _, dup := g.rank[c.Name]; dup {
			return nil, errors.Wrapf(ErrInvalidGenome, "duplicate chromosome %s", c.Name)
		}
		g.rank[c.Name] = len(g.chroms)
		g.chroms = append(g.chroms, c)
	}
	return g, nil
}

// FromSizes builds a Genome from an unordered name->size mapping, ranking
// chromosomes lexically since map iteration order carries no information.
func FromSizes(sizes map[string]int) (*Genome, error) {
	names := make([]string, 0, len(sizes))
	for name := range sizes {
		names = append(names, name)
	}
	sort.Strings(names)
	chroms := make([]Chrom, 0, len(names))
	for _, name := range names {
		chroms = append(chroms, Chrom{Name: name, Size: sizes[name]})
	}
	return New(chroms)
}

// FromSAMHeader builds a Genome from the reference dictionary of a SAM/BAM
// header, adopting the header's reference order.
func FromSAMHeader(header *sam.Header) (*Genome, error) {
	refs := header.Refs()
	chroms := make([]Chrom, 0, len(refs))
	for _, ref := range refs {
		chroms = append(chroms, Chrom{Name: ref.Name(), Size: ref.Len()})
	}
	return New(chroms)
}

// Len returns the size of the named chromosome, or ErrUnknownChromosome.
func (g *Genome) Len(chrom string) (int, error) {
	idx, ok := g.rank[chrom]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownChromosome, "%s", chrom)
	}
	return g.chroms[idx].Size, nil
}

// Has reports whether the named chromosome is in the registry.
func (g *Genome) Has(chrom string) bool {
	_, ok := g.rank[chrom]
	return ok
}

// Rank returns the sort rank of the named chromosome.  The second return is
// false for chromosomes absent from the registry.
func (g *Genome) Rank(chrom string) (int, bool) {
	idx, ok := g.rank[chrom]
	return idx, ok
}

// Chroms returns the registry entries in rank order.  The caller must not
// modify the returned slice.
func (g *Genome) Chroms() []Chrom {
	return g.chroms
}

// NChrom returns the number of chromosomes in the registry.
func (g *Genome) NChrom() int {
	return len(g.chroms)
}

// TotalSize returns the summed size of all chromosomes.
func (g *Genome) TotalSize() int {
	total := 0
	for _, c := range g.chroms {
		total += c.Size
	}
	return total
}

// Clip clamps [start, end) to the chromosome's [0, size) bounds.  It fails
// with ErrUnknownChromosome for unregistered chromosomes; callers decide what
// to do with intervals clipped down to zero length.
func (g *Genome) Clip(chrom string, start, end int) (int, int, error) {
	size, err := g.Len(chrom)
	if err != nil {
		return 0, 0, err
	}
	if start < 0 {
		start = 0
	}
	if start > size {
		start = size
	}
	if end > size {
		end = size
	}
	if end < start {
		end = start
	}
	return start, end, nil
}
