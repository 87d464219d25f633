package numcsv

import (
	"fmt"
	"strings"
)

// ErrorKind identifies the failure that aborted a read.  The set is
// closed; every failed read reports exactly one kind.
type ErrorKind int

const (
	// BadStream: the input stream failed with an error other than end
	// of input.
	BadStream ErrorKind = iota

	// UnexpectedEOF: the input ended in the middle of a row, or was
	// already exhausted when the read started.
	UnexpectedEOF

	// ErrorParsingFloat: a data cell cannot be converted to a float64.
	ErrorParsingFloat

	// CellOutOfRange: a data row has more cells than there are
	// columns, so the value cannot be assigned to a column.
	CellOutOfRange

	// UnexpectedLineSeparator: a row ended before all columns were
	// filled.
	UnexpectedLineSeparator

	// ExpectedLineSeparator: a row kept going after its last column.
	ExpectedLineSeparator

	// ExpectedValueSeparator: the byte after a cell is not one of the
	// configured value separators.
	ExpectedValueSeparator

	// CellTooLong: a cell exceeded the scanner's capacity.
	CellTooLong
)

// String returns the name of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case BadStream:
		return "BadStream"
	case UnexpectedEOF:
		return "UnexpectedEOF"
	case ErrorParsingFloat:
		return "ErrorParsingFloat"
	case CellOutOfRange:
		return "CellOutOfRange"
	case UnexpectedLineSeparator:
		return "UnexpectedLineSeparator"
	case ExpectedLineSeparator:
		return "ExpectedLineSeparator"
	case ExpectedValueSeparator:
		return "ExpectedValueSeparator"
	case CellTooLong:
		return "CellTooLong"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// cellSnapshotLen bounds the cell excerpt carried by a ReadError.
const cellSnapshotLen = 16

// noPeek marks the absence of a triggering look-ahead byte (end of
// input, or an error with no look-ahead involved).
const noPeek = -1

// A ReadError describes the first failure encountered by a read.  It
// carries the error kind, the offending cell (truncated to
// cellSnapshotLen bytes), the relevant set of expected separator
// bytes, the zero-based column and row of the failure, and the
// look-ahead byte that triggered it.  A ReadError is immutable.
type ReadError struct {
	kind     ErrorKind
	cell     string
	expected string
	col      int
	row      int
	peek     int
}

func newReadError(kind ErrorKind, cell string, expected []byte, col, row, peek int) *ReadError {
	if len(cell) > cellSnapshotLen {
		cell = cell[:cellSnapshotLen]
	}
	return &ReadError{
		kind:     kind,
		cell:     cell,
		expected: string(expected),
		col:      col,
		row:      row,
		peek:     peek,
	}
}

// Kind returns the error kind.
func (e *ReadError) Kind() ErrorKind {
	return e.kind
}

// Row returns the zero-based row at which the error happened.  The
// header row, if present, is row 0.
func (e *ReadError) Row() int {
	return e.row
}

// Col returns the zero-based column at which the error happened.
func (e *ReadError) Col() int {
	return e.col
}

// Cell returns the first cellSnapshotLen bytes of the offending cell.
// It is empty for errors with no cell, including CellTooLong, whose
// partial cell content is discarded.
func (e *ReadError) Cell() string {
	return e.cell
}

// Expected returns the separator bytes that would have been accepted
// at the failure point, or an empty string when no separator set is
// relevant to the error.
func (e *ReadError) Expected() string {
	return e.expected
}

// Peek returns the look-ahead byte that triggered the error.  The
// second return value is false when there was no such byte (end of
// input).
func (e *ReadError) Peek() (byte, bool) {
	if e.peek < 0 {
		return 0, false
	}
	return byte(e.peek), true
}

// Error renders the error in the form
//
//	Error parsing csv
//	  column: <col+1>
//	  row: <row+1>
//	  cell: <cell>
//	  message: <kind-specific text>
//
// The cell line is omitted when no cell is available; "[...]" marks a
// cell snapshot that exactly fills its capacity and was probably
// truncated.  Separator bytes in messages are rendered symbolically,
// control characters as mnemonics such as \n or SOH.
func (e *ReadError) Error() string {

	var b strings.Builder
	b.WriteString("Error parsing csv\n")
	fmt.Fprintf(&b, "  column: %d\n", e.col+1)
	fmt.Fprintf(&b, "  row: %d\n", e.row+1)
	if e.cell != "" {
		b.WriteString("  cell: ")
		b.WriteString(e.cell)
		if len(e.cell) == cellSnapshotLen {
			b.WriteString("[...]")
		}
		b.WriteByte('\n')
	}
	b.WriteString("  message: ")
	b.WriteString(e.message())
	b.WriteByte('\n')

	return b.String()
}

func (e *ReadError) message() string {
	switch e.kind {
	case BadStream:
		return "Bad stream"
	case UnexpectedEOF:
		return "End of input reached too early, expected a cell entry"
	case ErrorParsingFloat:
		return "Cannot convert cell to floating-point number"
	case CellOutOfRange:
		return "Cell out of range, the row has more cells than there are columns"
	case UnexpectedLineSeparator:
		return fmt.Sprintf("Unexpected line separator %s, the row ended before all columns were filled", symbolSet(e.expected))
	case ExpectedLineSeparator:
		return fmt.Sprintf("Expected a line separator %s but got %s", symbolSet(e.expected), e.peekSymbol())
	case ExpectedValueSeparator:
		return fmt.Sprintf("Expected a value separator %s but got %s", symbolSet(e.expected), e.peekSymbol())
	case CellTooLong:
		return fmt.Sprintf("Cell longer than %d bytes", maxCellLen)
	}
	return "Unknown error"
}

func (e *ReadError) peekSymbol() string {
	if e.peek < 0 {
		return "EOF"
	}
	return "'" + charSymbol(byte(e.peek)) + "'"
}

// symbolSet renders a separator set as ['x' 'y'] with each byte in
// symbolic form.
func symbolSet(set string) string {

	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < len(set); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('\'')
		b.WriteString(charSymbol(set[i]))
		b.WriteByte('\'')
	}
	b.WriteByte(']')

	return b.String()
}

// charSymbol returns a printable symbol for a byte: escape sequences
// or mnemonics for control characters, the character itself for
// printable ASCII, and "N/A" for anything else.
func charSymbol(b byte) string {

	switch b {
	case 0x00:
		return `\0`
	case 0x01:
		return "SOH"
	case 0x02:
		return "STX"
	case 0x03:
		return "ETX"
	case 0x04:
		return "EOT"
	case 0x05:
		return "ENQ"
	case 0x06:
		return "ACK"
	case '\a':
		return `\a`
	case '\b':
		return `\b`
	case '\t':
		return `\t`
	case '\n':
		return `\n`
	case '\v':
		return `\v`
	case '\f':
		return `\f`
	case '\r':
		return `\r`
	case 0x0e:
		return "SO"
	case 0x0f:
		return "SI"
	case 0x10:
		return "DLE"
	case 0x11:
		return "DC1"
	case 0x12:
		return "DC2"
	case 0x13:
		return "DC3"
	case 0x14:
		return "DC4"
	case 0x15:
		return "NAK"
	case 0x16:
		return "SYN"
	case 0x17:
		return "ETB"
	case 0x18:
		return "CAN"
	case 0x19:
		return "EM"
	case 0x1a:
		return "SUB"
	case 0x1b:
		return `\e`
	case 0x1c:
		return "FS"
	case 0x1d:
		return "GS"
	case 0x1e:
		return "RS"
	case 0x1f:
		return "US"
	case '\\':
		return `\\`
	case 0x7f:
		return "DEL"
	}

	if b >= 0x20 && b < 0x7f {
		return string(b)
	}

	return "N/A"
}
