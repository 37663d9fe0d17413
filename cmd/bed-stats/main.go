package main

/*
bed-stats compares two interval files, reporting the jaccard similarity,
Fisher's exact test on overlap base counts, and the relative-distance
distribution.  Inputs are tab-delimited chrom/start/end(+) rows, gzip
accepted; the genome file is two-column UCSC chrom-sizes.
*/

import (
	"flag"
	"fmt"
	"os"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"

	"github.com/kriemo/valr-demo/bedio"
	"github.com/kriemo/valr-demo/stats"
)

var (
	genomePath = flag.String("genome", "", "Chromosome sizes path (chrom<TAB>size); required")
	nbins      = flag.Int("reldist-bins", 50, "Number of relative-distance histogram buckets")
)

func bedStatsUsage() {
	fmt.Printf("Usage: %s [OPTIONS] xpath ypath\n", os.Args[0])
	fmt.Printf("Other options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = bedStatsUsage
	shutdown := grail.Init()
	defer shutdown()

	if flag.NArg() != 2 {
		log.Fatalf("Expected exactly two positional arguments (xpath and ypath), got %d", flag.NArg())
	}
	if *genomePath == "" {
		log.Fatalf("-genome is required")
	}

	gf, err := os.Open(*genomePath)
	if err != nil {
		log.Fatalf("%v", err)
	}
	g, err := bedio.ReadGenome(gf)
	if cerr := gf.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		log.Fatalf("%v", err)
	}

	x, err := bedio.ReadTablePath(flag.Arg(0))
	if err != nil {
		log.Fatalf("%v", err)
	}
	y, err := bedio.ReadTablePath(flag.Arg(1))
	if err != nil {
		log.Fatalf("%v", err)
	}
	log.Printf("loaded %d x row(s), %d y row(s)", len(x), len(y))

	jac, err := stats.Jaccard(x, y, g)
	if err != nil {
		log.Fatalf("%v", err)
	}
	fish, err := stats.Fisher(x, y, g)
	if err != nil {
		log.Fatalf("%v", err)
	}
	rel, err := stats.RelDist(x, y)
	if err != nil {
		log.Fatalf("%v", err)
	}

	w := tsv.NewWriter(os.Stdout)
	w.WriteString("statistic")
	w.WriteString("value")
	if err := w.EndLine(); err != nil {
		log.Fatalf("%v", err)
	}
	rows := []struct {
		name  string
		value string
	}{
		{"jaccard", fmt.Sprintf("%g", jac.Jaccard)},
		{"intersection_bp", fmt.Sprintf("%d", jac.Intersection)},
		{"union_bp", fmt.Sprintf("%d", jac.Union)},
		{"n_int", fmt.Sprintf("%d", jac.NInt)},
		{"fisher_left", fmt.Sprintf("%g", fish.PLeft)},
		{"fisher_right", fmt.Sprintf("%g", fish.PRight)},
		{"fisher_two_tail", fmt.Sprintf("%g", fish.PTwoTail)},
	}
	for _, bin := range stats.RelDistHistogram(rel, *nbins) {
		rows = append(rows, struct {
			name  string
			value string
		}{fmt.Sprintf("reldist_%g_%g", bin.Lo, bin.Hi), fmt.Sprintf("%g", bin.Freq)})
	}
	for _, row := range rows {
		w.WriteString(row.name)
		w.WriteString(row.value)
		if err := w.EndLine(); err != nil {
			log.Fatalf("%v", err)
		}
	}
	if err := w.Flush(); err != nil {
		log.Fatalf("%v", err)
	}
}
