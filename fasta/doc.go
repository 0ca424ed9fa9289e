// Package fasta reads single-sequence FASTA input for the aligner and writes
// aligned records back out.
//
// Reading follows the simple convention of the aligner's input files: every
// line starting with '>' is a header and is skipped (the first one is kept
// as the entry header), all other lines are trimmed, uppercased and
// concatenated into one sequence. Paths ending in ".gz" are decompressed
// transparently and "-" reads standard input.
//
// When Reader.Alphabet is set, every sequence byte must belong to it; the
// first offending byte is reported as a *SymbolError carrying its line and
// column.
package fasta
