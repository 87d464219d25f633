package numcsv

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
)

// maxCellLen is the scanner's cell capacity in bytes.  A cell longer
// than this fails the read with CellTooLong.
const maxCellLen = 128

// asciiWhitespace is the byte set trimmed from scanned cells and
// skipped between data cells.
const asciiWhitespace = " \a\b\t\n\v\f\r"

// byteStream adapts an io.Reader to the one-byte look-ahead interface
// the parser works against.  It distinguishes ordinary end of input
// from a broken reader: bad reports a read failure, eof reports that
// no byte is available for either reason.
type byteStream struct {
	br   *bufio.Reader
	peek int   // next unread byte, or noPeek when none is available
	err  error // sticky error other than io.EOF
}

func newByteStream(r io.Reader) *byteStream {
	s := &byteStream{br: bufio.NewReader(r)}
	s.fill()
	return s
}

func (s *byteStream) fill() {
	b, err := s.br.ReadByte()
	switch {
	case err == io.EOF:
		s.peek = noPeek
	case err != nil:
		s.peek = noPeek
		s.err = err
	default:
		s.peek = int(b)
	}
}

// get consumes and returns the look-ahead byte.  At end of input it is
// a no-op returning noPeek.
func (s *byteStream) get() int {
	b := s.peek
	if b != noPeek {
		s.fill()
	}
	return b
}

func (s *byteStream) eof() bool {
	return s.peek == noPeek
}

func (s *byteStream) bad() bool {
	return s.err != nil
}

// A Reader parses a table of floating-point numbers from a delimited
// text stream.
type Reader struct {

	// Settings controls separators, quotes, and header handling.  Can
	// be adjusted up to the first call of Read.
	Settings Settings

	// A decoder for decoding the input to unicode before it is
	// parsed, e.g. charmap.Windows1250.NewDecoder().  Leave as nil
	// for no decoding.  Must be set before the first call of Read.
	TextDecoder *encoding.Decoder

	src io.Reader
	st  *byteStream
}

// NewReader returns a Reader that parses from r with default settings.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		Settings: DefaultSettings(),
		src:      r,
	}
}

// Read parses the whole of r with default settings and returns the
// resulting table.
func Read(r io.Reader) (*Table, error) {
	tbl := NewTable()
	if err := NewReader(r).Read(tbl); err != nil {
		return nil, err
	}
	return tbl, nil
}

// Read parses the stream into tbl.  The table is cleared before
// parsing starts, and cleared again on failure, so a failed call
// always leaves an empty table.  The returned error, if not nil, is a
// *ReadError carrying the kind and position of the first problem
// encountered.
func (r *Reader) Read(tbl *Table) error {

	if r.st == nil {
		src := r.src
		if r.TextDecoder != nil {
			src = r.TextDecoder.Reader(src)
		}
		r.st = newByteStream(src)
	}

	tbl.Clear()

	p := &parser{st: r.st, set: &r.Settings, tbl: tbl}
	if err := p.run(); err != nil {
		tbl.Clear()
		return err
	}

	return nil
}

// parser is the row/table state machine for one Read call.  It tracks
// the zero-based row and column of the cell being parsed so that
// errors carry their position.
type parser struct {
	st  *byteStream
	set *Settings
	tbl *Table
	col int
	row int
	buf [maxCellLen]byte
}

func (p *parser) run() *ReadError {

	if p.st.bad() {
		return newReadError(BadStream, "", nil, 0, 0, noPeek)
	}
	if p.st.eof() {
		return newReadError(UnexpectedEOF, "", nil, 0, 0, noPeek)
	}

	headerType := p.set.headerType
	if headerType == HeaderAuto {
		p.skipWhitespace()
		b := p.st.peek
		if b == '+' || b == '-' || (b >= '0' && b <= '9') {
			headerType = HeaderNone
		} else {
			headerType = HeaderFirstRow
		}
	}

	if headerType == HeaderFirstRow {
		if err := p.readHeaderRow(); err != nil {
			return err
		}
	} else {
		if err := p.readFirstDataRow(); err != nil {
			return err
		}
	}
	p.row++

	return p.readDataRows()
}

// readCell scans one cell into p.buf and returns it.  The terminating
// delimiter is left unconsumed, so the next unread byte is a
// separator or the stream is exhausted.  Quote bytes toggle the
// quoted state and are not copied into the cell.
//
// The quoted state suppresses only the value-separator break: a line
// separator ends the cell even inside quotes.  The asymmetry is
// intentional, it cuts an unterminated quote at the end of its line
// instead of letting it swallow the rest of the stream.
//
// Returns ok=false when the cell exceeds maxCellLen bytes.
func (p *parser) readCell() (cell []byte, ok bool) {

	out := p.buf[:0]
	inQuote := false

	for !p.st.eof() {
		b := byte(p.st.peek)

		if p.set.isQuote(b) {
			inQuote = !inQuote
			p.st.get()
			continue
		}
		if p.set.isLineSep(b) {
			break
		}
		if !inQuote && p.set.isValueSep(b) {
			break
		}

		if len(out) == maxCellLen {
			return nil, false
		}
		out = append(out, byte(p.st.get()))
	}

	return out, true
}

func (p *parser) skipWhitespace() {
	for !p.st.eof() && isWhitespace(byte(p.st.peek)) {
		p.st.get()
	}
}

func isWhitespace(b byte) bool {
	return strings.IndexByte(asciiWhitespace, b) >= 0
}

// readHeaderRow reads the first row as column names.  Each cell
// becomes a new empty column; the column count of the table is fixed
// when the row ends.
func (p *parser) readHeaderRow() *ReadError {

	for !p.st.eof() {

		cell, ok := p.readCell()
		if !ok {
			return newReadError(CellTooLong, "", nil, p.col, p.row, p.st.peek)
		}
		cell = bytes.Trim(cell, asciiWhitespace)
		if p.set.autoQuotes {
			cell = bytes.Trim(cell, string(p.set.quotes))
		}

		p.tbl.Append(&Column{Name: string(cell)})

		atLineSep := !p.st.eof() && p.set.isLineSep(byte(p.st.peek))

		// consume the delimiter
		p.st.get()

		if atLineSep {
			break
		}
		p.col++
	}

	if p.st.bad() {
		return newReadError(BadStream, "", nil, p.col, p.row, noPeek)
	}

	p.col = 0
	return nil
}

// readFirstDataRow reads the first row as data when there is no
// header.  Each cell becomes a new unnamed column holding the cell's
// value as row 0, which fixes the column count.
func (p *parser) readFirstDataRow() *ReadError {

	for !p.st.eof() {

		cell, ok := p.readCell()
		if !ok {
			return newReadError(CellTooLong, "", nil, p.col, p.row, p.st.peek)
		}
		cell = bytes.Trim(cell, asciiWhitespace)
		if p.set.autoQuotes {
			cell = bytes.Trim(cell, string(p.set.quotes))
		}

		v, err := strconv.ParseFloat(string(cell), 64)
		if err != nil {
			return newReadError(ErrorParsingFloat, string(cell), nil, p.col, p.row, p.st.peek)
		}

		p.tbl.Append(&Column{Data: []float64{v}})

		atLineSep := !p.st.eof() && p.set.isLineSep(byte(p.st.peek))

		// consume the delimiter
		p.st.get()

		if atLineSep {
			break
		}
		p.col++
	}

	if p.st.bad() {
		return newReadError(BadStream, "", nil, p.col, p.row, noPeek)
	}

	p.col = 0
	return nil
}

// readDataRows runs the main loop: scan a cell, convert it, append it
// to the current column, then decide from the next unread byte
// whether the row continues, ends, or is malformed.  Every row must
// fill exactly the established column count.  Reaching end of input
// at column 0 is the normal trailing-blank-line condition.
func (p *parser) readDataRows() *ReadError {

	for {
		p.skipWhitespace()

		if p.st.bad() {
			return newReadError(BadStream, "", nil, p.col, p.row, noPeek)
		}
		if p.st.eof() {
			if p.col == 0 {
				return nil
			}
			return newReadError(UnexpectedEOF, "", nil, p.col, p.row, noPeek)
		}

		cell, ok := p.readCell()
		if !ok {
			return newReadError(CellTooLong, "", nil, p.col, p.row, p.st.peek)
		}
		cell = bytes.Trim(cell, asciiWhitespace)

		if p.st.bad() {
			return newReadError(BadStream, "", nil, p.col, p.row, noPeek)
		}

		v, err := strconv.ParseFloat(string(cell), 64)
		if err != nil {
			return newReadError(ErrorParsingFloat, string(cell), nil, p.col, p.row, p.st.peek)
		}

		if p.col >= p.tbl.Len() {
			return newReadError(CellOutOfRange, string(cell), nil, p.col, p.row, p.st.peek)
		}
		c := p.tbl.Column(p.col)
		c.Data = append(c.Data, v)

		if p.st.eof() || p.set.isLineSep(byte(p.st.peek)) {
			if p.col+1 != p.tbl.Len() {
				return newReadError(UnexpectedLineSeparator, string(cell), p.set.lineSeps, p.col, p.row, p.st.peek)
			}
			p.col = 0
			p.row++
		} else {
			if p.col+1 == p.tbl.Len() {
				return newReadError(ExpectedLineSeparator, string(cell), p.set.lineSeps, p.col, p.row, p.st.peek)
			}
			if !p.set.isValueSep(byte(p.st.peek)) {
				return newReadError(ExpectedValueSeparator, string(cell), p.set.valueSeps, p.col, p.row, p.st.peek)
			}
			p.col++
		}

		// consume the delimiter (no-op at end of input)
		p.st.get()
	}
}
