// Package bedio round-trips interval tables and genome registries through the
// minimal tab-delimited row representation (chrom, start, end, and optional
// name/score/strand plus trailing opaque columns; 0-based half-open
// coordinates).  It is deliberately not a BED parser: block structure,
// headers, and browser lines are the business of an upstream collaborator.
package bedio

import (
	"bufio"
	"io"
	"math"
	"sort"
	"strconv"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/base/vcontext"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"

	"github.com/kriemo/valr-demo/genome"
	"github.com/kriemo/valr-demo/interval"
)

// getTokens identifies up to the first len(tokens) tokens from curLine,
// returning the number of tokens saved.  Any (group of) characters <= ' ' is
// treated as a delimiter.
func getTokens(tokens [][]byte, curLine []byte) int {
	posEnd := 0
	lineLen := len(curLine)
	for tokenIdx := range tokens {
		pos := posEnd
		for ; pos != lineLen; pos++ {
			if curLine[pos] > ' ' {
				break
			}
		}
		if pos == lineLen {
			return tokenIdx
		}
		posEnd = pos
		for ; posEnd != lineLen; posEnd++ {
			if curLine[posEnd] <= ' ' {
				break
			}
		}
		tokens[tokenIdx] = curLine[pos:posEnd]
	}
	return len(tokens)
}

// maxCols bounds the number of columns read from one row: the six typed
// columns plus up to ten opaque extras.
const maxCols = 16

// ReadTable reads interval rows from tab/space-delimited text.  Columns
// beyond the sixth are preserved in each row's Extra map under "col7",
// "col8", ...; a score of "." parses as NaN.  Blank lines are skipped.
func ReadTable(reader io.Reader) (interval.Table, error) {
	scanner := bufio.NewScanner(reader)
	var t interval.Table
	var tokens [maxCols][]byte
	lineIdx := 0
	for scanner.Scan() {
		lineIdx++
		nToken := getTokens(tokens[:], scanner.Bytes())
		if nToken == 0 {
			continue
		}
		if nToken < 3 {
			return nil, errors.Errorf("bedio.ReadTable: line %d has %d column(s), need at least chrom/start/end", lineIdx, nToken)
		}
		iv := interval.Interval{Chrom: string(tokens[0])}
		var err error
		if iv.Start, err = strconv.Atoi(string(tokens[1])); err != nil {
			return nil, errors.Wrapf(err, "bedio.ReadTable: bad start on line %d", lineIdx)
		}
		if iv.End, err = strconv.Atoi(string(tokens[2])); err != nil {
			return nil, errors.Wrapf(err, "bedio.ReadTable: bad end on line %d", lineIdx)
		}
		if iv.Start < 0 || iv.End < iv.Start {
			return nil, errors.Wrapf(interval.ErrInvalidInterval, "line %d: %s:%d-%d", lineIdx, iv.Chrom, iv.Start, iv.End)
		}
		if nToken > 3 {
			iv.Name = string(tokens[3])
		}
		if nToken > 4 {
			if s := string(tokens[4]); s == "." {
				iv.Score = math.NaN()
			} else if iv.Score, err = strconv.ParseFloat(s, 64); err != nil {
				return nil, errors.Wrapf(err, "bedio.ReadTable: bad score on line %d", lineIdx)
			}
		}
		if nToken > 5 {
			switch tokens[5][0] {
			case '+':
				iv.Strand = interval.StrandPlus
			case '-':
				iv.Strand = interval.StrandMinus
			case '.':
				iv.Strand = interval.StrandNone
			default:
				return nil, errors.Errorf("bedio.ReadTable: bad strand %q on line %d", tokens[5], lineIdx)
			}
		}
		for i := 6; i < nToken; i++ {
			if iv.Extra == nil {
				iv.Extra = make(map[string]string)
			}
			iv.Extra["col"+strconv.Itoa(i+1)] = string(tokens[i])
		}
		t = append(t, iv)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// ReadTablePath is ReadTable over a path, decompressing gzip transparently.
func ReadTablePath(path string) (t interval.Table, err error) {
	ctx := vcontext.Background()
	var infile file.File
	if infile, err = file.Open(ctx, path); err != nil {
		return
	}
	defer func() {
		if cerr := infile.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()
	reader := io.Reader(infile.Reader(ctx))
	switch fileio.DetermineType(path) {
	case fileio.Gzip:
		if reader, err = gzip.NewReader(reader); err != nil {
			return
		}
	}
	return ReadTable(reader)
}

// WriteTable writes the table in the same layout ReadTable consumes.  All
// rows get six typed columns (Name defaults to ".", NaN scores and unknown
// strands write as "."); Extra columns follow in sorted key order.
func WriteTable(writer io.Writer, t interval.Table) error {
	w := tsv.NewWriter(writer)
	for _, iv := range t {
		w.WriteString(iv.Chrom)
		w.WriteUint32(uint32(iv.Start))
		w.WriteUint32(uint32(iv.End))
		if iv.Name == "" {
			w.WriteString(".")
		} else {
			w.WriteString(iv.Name)
		}
		if math.IsNaN(iv.Score) {
			w.WriteString(".")
		} else {
			w.WriteString(strconv.FormatFloat(iv.Score, 'g', -1, 64))
		}
		switch iv.Strand {
		case interval.StrandPlus, interval.StrandMinus:
			w.WriteByte(iv.Strand)
		default:
			w.WriteString(".")
		}
		for _, k := range sortedKeys(iv.Extra) {
			w.WriteString(iv.Extra[k])
		}
		if err := w.EndLine(); err != nil {
			return err
		}
	}
	return w.Flush()
}

func sortedKeys(m map[string]string) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ReadGenome reads a UCSC chrom-sizes style two-column (name, size) file into
// a Genome, preserving file order as chromosome rank.
func ReadGenome(reader io.Reader) (*genome.Genome, error) {
	scanner := bufio.NewScanner(reader)
	var chroms []genome.Chrom
	// Three slots so a spurious third column is detected rather than ignored.
	var tokens [3][]byte
	lineIdx := 0
	for scanner.Scan() {
		lineIdx++
		nToken := getTokens(tokens[:], scanner.Bytes())
		if nToken == 0 {
			continue
		}
		if nToken != 2 {
			return nil, errors.Errorf("bedio.ReadGenome: line %d has %d column(s), want name and size", lineIdx, nToken)
		}
		size, err := strconv.Atoi(string(tokens[1]))
		if err != nil {
			return nil, errors.Wrapf(err, "bedio.ReadGenome: bad size on line %d", lineIdx)
		}
		chroms = append(chroms, genome.Chrom{Name: string(tokens[0]), Size: size})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return genome.New(chroms)
}
