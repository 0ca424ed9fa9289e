// Package output renders an alignment as text, JSON or FASTA.
package output

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/trialign/align"
	"github.com/katalvlaran/trialign/fasta"
)

// Format selects a renderer.
type Format string

const (
	// Text prints "Score: N" followed by the three rows.
	Text Format = "text"
	// JSON prints a single Document.
	JSON Format = "json"
	// FASTA prints the rows as three aligned records.
	FASTA Format = "fasta"
)

// ErrUnknownFormat is returned by ParseFormat and Write.
var ErrUnknownFormat = errors.New("output: unknown format")

// Formats lists the accepted format names.
func Formats() []string {
	return []string{string(Text), string(JSON), string(FASTA)}
}

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case Text, JSON, FASTA:
		return f, nil
	}

	return "", fmt.Errorf("%w %q (want one of %s)", ErrUnknownFormat, s, strings.Join(Formats(), ", "))
}

// Document is the JSON shape of an alignment.
type Document struct {
	RunID   string    `json:"run_id,omitempty"`
	Score   int       `json:"score"`
	Length  int       `json:"length"`
	Names   [3]string `json:"names"`
	Rows    [3]string `json:"rows"`
	Columns []string  `json:"columns"`
}

// Meta carries what the renderers need besides the alignment itself.
type Meta struct {
	RunID string
	Names [3]string // record names; empty entries become seq1, seq2, seq3
}

func (m Meta) name(r int) string {
	if m.Names[r] != "" {
		return m.Names[r]
	}

	return fmt.Sprintf("seq%d", r+1)
}

// Write renders aln to w in format f.
func Write(w io.Writer, f Format, aln *align.Alignment, meta Meta) error {
	switch f {
	case Text:
		return writeText(w, aln)
	case JSON:
		return writeJSON(w, aln, meta)
	case FASTA:
		entries := make([]fasta.Entry, 3)
		for r := range entries {
			entries[r] = fasta.Entry{Header: meta.name(r), Sequence: []byte(aln.Rows[r])}
		}

		return fasta.Write(w, entries, fasta.DefaultCols)
	}

	return fmt.Errorf("%w %q", ErrUnknownFormat, string(f))
}

func writeText(w io.Writer, aln *align.Alignment) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Score: %d\n", aln.Score)
	for _, row := range aln.Rows {
		bw.WriteString(row)
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

func writeJSON(w io.Writer, aln *align.Alignment, meta Meta) error {
	doc := Document{
		RunID:   meta.RunID,
		Score:   aln.Score,
		Length:  aln.Len(),
		Rows:    aln.Rows,
		Columns: make([]string, len(aln.Moves)),
	}
	for r := range doc.Names {
		doc.Names[r] = meta.name(r)
	}
	for c, m := range aln.Moves {
		doc.Columns[c] = m.String()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}
