package fasta

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultCols is the wrap width used by Entry.String and Write.
const DefaultCols = 60

// ErrBadSymbol is matched by every *SymbolError.
var ErrBadSymbol = errors.New("fasta: symbol outside alphabet")

// SymbolError locates a sequence byte outside Reader.Alphabet.
type SymbolError struct {
	Line int  // 1-based input line
	Col  int  // 1-based column after trimming
	Char byte // offending byte, uppercased
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("line %d, column %d: %q: %s", e.Line, e.Col, e.Char, ErrBadSymbol)
}

// Unwrap lets errors.Is match ErrBadSymbol.
func (e *SymbolError) Unwrap() error { return ErrBadSymbol }

// An Entry is a header plus its sequence.
type Entry struct {
	Header   string
	Sequence []byte
}

// String returns the entry in FASTA format wrapped at DefaultCols.
func (e Entry) String() string {
	return e.StringCols(DefaultCols)
}

// StringCols returns the FASTA text of the entry with the sequence wrapped
// at cols columns. If cols is <= 0, no wrapping is done.
func (e Entry) StringCols(cols int) string {
	var b strings.Builder
	b.WriteByte('>')
	b.WriteString(e.Header)
	b.WriteByte('\n')
	if cols <= 0 {
		b.Write(e.Sequence)
		b.WriteByte('\n')

		return b.String()
	}
	for start := 0; start < len(e.Sequence); start += cols {
		end := min(start+cols, len(e.Sequence))
		b.Write(e.Sequence[start:end])
		b.WriteByte('\n')
	}

	return b.String()
}

// A Reader reads one concatenated sequence from FASTA input.
// It is NOT safe for concurrent use.
type Reader struct {
	// Alphabet, when non-empty, lists the bytes allowed in the sequence
	// (compared after uppercasing).
	Alphabet string

	buf  *bufio.Reader
	line int
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	return &Reader{buf: bufio.NewReader(r)}
}

// ReadSequence consumes the rest of the input and returns it as one entry.
// Blank lines are ignored. Input without sequence lines yields an empty
// Sequence, not an error.
func (r *Reader) ReadSequence() (Entry, error) {
	var entry Entry
	seenHeader := false
	seq := make([]byte, 0, 1024)

	for {
		line, err := r.buf.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return Entry{}, err
		}
		if len(line) > 0 {
			r.line++
			line = bytes.TrimSpace(line)
			switch {
			case len(line) == 0:
			case line[0] == '>':
				if !seenHeader {
					entry.Header = string(bytes.TrimSpace(line[1:]))
					seenHeader = true
				}
			default:
				line = bytes.ToUpper(line)
				if err := r.check(line); err != nil {
					return Entry{}, err
				}
				seq = append(seq, line...)
			}
		}
		if err == io.EOF {
			break
		}
	}
	entry.Sequence = seq

	return entry, nil
}

// check validates one trimmed, uppercased sequence line.
func (r *Reader) check(line []byte) error {
	if r.Alphabet == "" {
		return nil
	}
	for col, ch := range line {
		if strings.IndexByte(r.Alphabet, ch) < 0 {
			return &SymbolError{Line: r.line, Col: col + 1, Char: ch}
		}
	}

	return nil
}

// Open returns a reader for path: "-" is standard input, "*.gz" is gunzipped.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return fh, nil
	}
	gr, err := gzip.NewReader(fh)
	if err != nil {
		_ = fh.Close()

		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return struct {
		io.Reader
		io.Closer
	}{Reader: gr, Closer: fh}, nil
}

// ReadFile reads the single sequence stored at path, restricted to alphabet
// when it is non-empty. Errors are prefixed with the path.
func ReadFile(path, alphabet string) (Entry, error) {
	rc, err := Open(path)
	if err != nil {
		return Entry{}, err
	}
	defer rc.Close()

	r := NewReader(rc)
	r.Alphabet = alphabet
	entry, err := r.ReadSequence()
	if err != nil {
		return Entry{}, fmt.Errorf("%s: %w", path, err)
	}

	return entry, nil
}

// Write writes entries in FASTA format wrapped at cols columns.
func Write(w io.Writer, entries []Entry, cols int) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := bw.WriteString(e.StringCols(cols)); err != nil {
			return err
		}
	}

	return bw.Flush()
}
