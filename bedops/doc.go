// Package bedops implements the single-set and pairwise interval operators:
// merge, cluster, complement, flank, slop, shift, and makewindows over one
// table; intersect, map, subtract, window, and closest over two.
//
// Operators are pure functions: they never mutate their inputs, and rows they
// emit never alias input payload.  Operators whose contract calls for sorted
// input sort a working copy themselves, so callers may pass tables in any
// order; the genome argument, when non-nil, additionally fixes the chromosome
// sort order and enables bounds clipping.  Within one chromosome all work is
// independent of every other chromosome, and the heavier operators fan out
// across chromosome partitions.
package bedops
