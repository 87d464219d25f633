package numcsv

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/text/encoding/charmap"
)

func tableOf(cols ...*Column) *Table {
	t := NewTable()
	for _, c := range cols {
		t.Append(c)
	}
	return t
}

// readErr parses text and requires the read to fail, returning the error.
func readErr(t *testing.T, text string) *ReadError {
	t.Helper()
	_, err := Read(strings.NewReader(text))
	if err == nil {
		t.Fatalf("expected a read error for %q", text)
	}
	re, ok := err.(*ReadError)
	if !ok {
		t.Fatalf("expected a *ReadError, got %T", err)
	}
	return re
}

func TestReadWithHeader(t *testing.T) {

	text := "Time, Value\n1, 0.5\n2, 0.25\n"
	tbl, err := Read(strings.NewReader(text))
	if err != nil {
		t.Fatalf("%v", err)
	}

	expected := tableOf(
		&Column{Name: "Time", Data: []float64{1, 2}},
		&Column{Name: "Value", Data: []float64{0.5, 0.25}},
	)

	if f, j, i := tbl.AllEqual(expected); !f {
		t.Errorf("mismatch at column %d, row %d", j, i)
	}
}

func TestReadNoHeader(t *testing.T) {

	tbl, err := Read(strings.NewReader("1, 2\n3, 4\n"))
	if err != nil {
		t.Fatalf("%v", err)
	}

	expected := tableOf(
		&Column{Data: []float64{1, 3}},
		&Column{Data: []float64{2, 4}},
	)

	if f, j, i := tbl.AllEqual(expected); !f {
		t.Errorf("mismatch at column %d, row %d", j, i)
	}
}

func TestAutoHeaderDetection(t *testing.T) {

	// Leading whitespace is skipped; a digit, '+', or '-' means no header.
	for _, text := range []string{"  1\n2\n", "+1\n2\n", "-1\n-2\n"} {
		tbl, err := Read(strings.NewReader(text))
		if err != nil {
			t.Fatalf("%q: %v", text, err)
		}
		if tbl.Len() != 1 || tbl.Column(0).Name != "" {
			t.Errorf("%q: expected one unnamed column", text)
		}
		if tbl.Column(0).Length() != 2 {
			t.Errorf("%q: expected both rows to be data", text)
		}
	}

	// Anything else means the first row is a header.
	tbl, err := Read(strings.NewReader("  T\n1\n"))
	if err != nil {
		t.Fatalf("%v", err)
	}
	if tbl.Len() != 1 || tbl.Column(0).Name != "T" {
		t.Errorf("expected one column named T")
	}
	if tbl.Column(0).Length() != 1 {
		t.Errorf("expected one data row")
	}
}

func TestExplicitHeaderType(t *testing.T) {

	// A numeric-looking first row is still a header when forced.
	rdr := NewReader(strings.NewReader("1, 2\n3, 4\n"))
	rdr.Settings.SetHeaderType(HeaderFirstRow)
	tbl := NewTable()
	if err := rdr.Read(tbl); err != nil {
		t.Fatalf("%v", err)
	}

	expected := tableOf(
		&Column{Name: "1", Data: []float64{3}},
		&Column{Name: "2", Data: []float64{4}},
	)

	if f, j, i := tbl.AllEqual(expected); !f {
		t.Errorf("mismatch at column %d, row %d", j, i)
	}
}

func TestQuotedHeaderName(t *testing.T) {

	// A quoted region suppresses the value separator, so the comma
	// stays inside the name.  The quotes themselves are structural and
	// are not part of the name.
	text := "\"Time, s\", Value\n1, 2\n"
	tbl, err := Read(strings.NewReader(text))
	if err != nil {
		t.Fatalf("%v", err)
	}

	expected := tableOf(
		&Column{Name: "Time, s", Data: []float64{1}},
		&Column{Name: "Value", Data: []float64{2}},
	)

	if f, j, i := tbl.AllEqual(expected); !f {
		t.Errorf("mismatch at column %d, row %d", j, i)
	}
}

func TestUnterminatedQuoteEndsAtLineSeparator(t *testing.T) {

	// The quote opened before B is never closed.  The value separator
	// is suppressed, but the line separator still ends the cell, so
	// the runaway quote is cut at the end of its line.
	tbl, err := Read(strings.NewReader("A\"B, C\n1\n"))
	if err != nil {
		t.Fatalf("%v", err)
	}

	expected := tableOf(
		&Column{Name: "AB, C", Data: []float64{1}},
	)

	if f, j, i := tbl.AllEqual(expected); !f {
		t.Errorf("mismatch at column %d, row %d", j, i)
	}
}

func TestShortRow(t *testing.T) {

	re := readErr(t, "1, 2, 3\n4, 5\n")
	if re.Kind() != UnexpectedLineSeparator {
		t.Errorf("expected UnexpectedLineSeparator, got %v", re.Kind())
	}
	if re.Row() != 1 || re.Col() != 1 {
		t.Errorf("expected row 1, column 1, got row %d, column %d", re.Row(), re.Col())
	}
	if re.Expected() != "\n" {
		t.Errorf("expected separator set %q, got %q", "\n", re.Expected())
	}
	if b, ok := re.Peek(); !ok || b != '\n' {
		t.Errorf("expected look-ahead '\\n', got %q, %v", b, ok)
	}
}

func TestLongRow(t *testing.T) {

	re := readErr(t, "1, 2\n3, 4, 5\n")
	if re.Kind() != ExpectedLineSeparator {
		t.Errorf("expected ExpectedLineSeparator, got %v", re.Kind())
	}
	if re.Row() != 1 || re.Col() != 1 {
		t.Errorf("expected row 1, column 1, got row %d, column %d", re.Row(), re.Col())
	}
	if b, ok := re.Peek(); !ok || b != ',' {
		t.Errorf("expected look-ahead ',', got %q, %v", b, ok)
	}
}

func TestUnexpectedEOFMidRow(t *testing.T) {

	re := readErr(t, "1, 2\n3,")
	if re.Kind() != UnexpectedEOF {
		t.Errorf("expected UnexpectedEOF, got %v", re.Kind())
	}
	if re.Row() != 1 || re.Col() != 1 {
		t.Errorf("expected row 1, column 1, got row %d, column %d", re.Row(), re.Col())
	}
	if _, ok := re.Peek(); ok {
		t.Errorf("expected no look-ahead byte at end of input")
	}
}

func TestEmptyInput(t *testing.T) {

	re := readErr(t, "")
	if re.Kind() != UnexpectedEOF {
		t.Errorf("expected UnexpectedEOF, got %v", re.Kind())
	}
	if re.Row() != 0 || re.Col() != 0 {
		t.Errorf("expected row 0, column 0, got row %d, column %d", re.Row(), re.Col())
	}
}

func TestWhitespaceOnlyInput(t *testing.T) {

	tbl, err := Read(strings.NewReader("  \n "))
	if err != nil {
		t.Fatalf("%v", err)
	}
	if tbl.Len() != 0 {
		t.Errorf("expected an empty table, got %d columns", tbl.Len())
	}
}

func TestErrorParsingFloat(t *testing.T) {

	re := readErr(t, "Time\nabc\n")
	if re.Kind() != ErrorParsingFloat {
		t.Errorf("expected ErrorParsingFloat, got %v", re.Kind())
	}
	if re.Row() != 1 || re.Col() != 0 {
		t.Errorf("expected row 1, column 0, got row %d, column %d", re.Row(), re.Col())
	}
	if re.Cell() != "abc" {
		t.Errorf("expected cell %q, got %q", "abc", re.Cell())
	}
}

func TestErrorParsingFloatFirstRow(t *testing.T) {

	// An empty cell in the header-establishing first row.
	re := readErr(t, "1,,2\n")
	if re.Kind() != ErrorParsingFloat {
		t.Errorf("expected ErrorParsingFloat, got %v", re.Kind())
	}
	if re.Row() != 0 || re.Col() != 1 {
		t.Errorf("expected row 0, column 1, got row %d, column %d", re.Row(), re.Col())
	}
}

func TestCellTooLong(t *testing.T) {

	re := readErr(t, strings.Repeat("9", 200)+"\n")
	if re.Kind() != CellTooLong {
		t.Errorf("expected CellTooLong, got %v", re.Kind())
	}
	if re.Cell() != "" {
		t.Errorf("expected the overlong cell content to be discarded, got %q", re.Cell())
	}
	if re.Row() != 0 || re.Col() != 0 {
		t.Errorf("expected row 0, column 0, got row %d, column %d", re.Row(), re.Col())
	}
}

func TestMaxLengthCellAccepted(t *testing.T) {

	// Exactly maxCellLen bytes is still a valid cell.
	cell := "1" + strings.Repeat("0", maxCellLen-1)
	tbl, err := Read(strings.NewReader(cell + "\n"))
	if err != nil {
		t.Fatalf("%v", err)
	}
	if tbl.Len() != 1 || tbl.Column(0).Length() != 1 {
		t.Fatalf("expected a single one-row column")
	}
	if tbl.Column(0).Data[0] != 1e127 {
		t.Errorf("expected 1e127, got %v", tbl.Column(0).Data[0])
	}
}

func TestBlankLinesSkipped(t *testing.T) {

	tbl, err := Read(strings.NewReader("Time\n1\n\n2\n\n \n"))
	if err != nil {
		t.Fatalf("%v", err)
	}

	expected := tableOf(&Column{Name: "Time", Data: []float64{1, 2}})
	if f, j, i := tbl.AllEqual(expected); !f {
		t.Errorf("mismatch at column %d, row %d", j, i)
	}
}

func TestCRLF(t *testing.T) {

	// Carriage returns are whitespace, so CRLF files parse with the
	// default "\n" line separator.
	tbl, err := Read(strings.NewReader("Time, Value\r\n1, 2\r\n3, 4\r\n"))
	if err != nil {
		t.Fatalf("%v", err)
	}

	expected := tableOf(
		&Column{Name: "Time", Data: []float64{1, 3}},
		&Column{Name: "Value", Data: []float64{2, 4}},
	)

	if f, j, i := tbl.AllEqual(expected); !f {
		t.Errorf("mismatch at column %d, row %d", j, i)
	}
}

func TestNoTrailingNewline(t *testing.T) {

	tbl, err := Read(strings.NewReader("Time\n1"))
	if err != nil {
		t.Fatalf("%v", err)
	}
	expected := tableOf(&Column{Name: "Time", Data: []float64{1}})
	if f, j, i := tbl.AllEqual(expected); !f {
		t.Errorf("mismatch at column %d, row %d", j, i)
	}

	// Header only, no newline at all: the column count is still fixed.
	tbl, err = Read(strings.NewReader("Time, Value"))
	if err != nil {
		t.Fatalf("%v", err)
	}
	if tbl.Len() != 2 || tbl.NumRows() != 0 {
		t.Errorf("expected two empty columns, got %d columns, %d rows", tbl.Len(), tbl.NumRows())
	}
}

func TestCustomSeparators(t *testing.T) {

	rdr := NewReader(strings.NewReader("a;b|1;2|3;4|"))
	rdr.Settings.SetValueSeparators(";")
	rdr.Settings.SetLineSeparators("|")

	tbl := NewTable()
	if err := rdr.Read(tbl); err != nil {
		t.Fatalf("%v", err)
	}

	expected := tableOf(
		&Column{Name: "a", Data: []float64{1, 3}},
		&Column{Name: "b", Data: []float64{2, 4}},
	)

	if f, j, i := tbl.AllEqual(expected); !f {
		t.Errorf("mismatch at column %d, row %d", j, i)
	}
}

func TestTableClearedOnRead(t *testing.T) {

	tbl := tableOf(&Column{Name: "old", Data: []float64{9, 9, 9}})

	rdr := NewReader(strings.NewReader("Time\n1\n"))
	if err := rdr.Read(tbl); err != nil {
		t.Fatalf("%v", err)
	}
	if tbl.Len() != 1 || tbl.Column(0).Name != "Time" {
		t.Errorf("expected prior table content to be discarded")
	}
}

func TestTableClearedOnFailure(t *testing.T) {

	tbl := NewTable()
	rdr := NewReader(strings.NewReader("Time, Value\n1\n"))
	if err := rdr.Read(tbl); err == nil {
		t.Fatalf("expected a read error")
	}
	if tbl.Len() != 0 {
		t.Errorf("expected an empty table after a failed read, got %d columns", tbl.Len())
	}
}

func TestSecondReadExhausted(t *testing.T) {

	rdr := NewReader(strings.NewReader("1\n"))
	tbl := NewTable()
	if err := rdr.Read(tbl); err != nil {
		t.Fatalf("%v", err)
	}

	err := rdr.Read(tbl)
	if err == nil {
		t.Fatalf("expected the second read of an exhausted stream to fail")
	}
	if re := err.(*ReadError); re.Kind() != UnexpectedEOF {
		t.Errorf("expected UnexpectedEOF, got %v", re.Kind())
	}
}

type failReader struct{}

func (failReader) Read(p []byte) (int, error) {
	return 0, errors.New("simulated stream failure")
}

// partialReader yields its data and then fails.
type partialReader struct {
	data string
	pos  int
}

func (r *partialReader) Read(p []byte) (int, error) {
	if r.pos < len(r.data) {
		n := copy(p, r.data[r.pos:])
		r.pos += n
		return n, nil
	}
	return 0, errors.New("simulated stream failure")
}

func TestBadStreamAtEntry(t *testing.T) {

	_, err := Read(failReader{})
	if err == nil {
		t.Fatalf("expected a read error")
	}
	re := err.(*ReadError)
	if re.Kind() != BadStream {
		t.Errorf("expected BadStream, got %v", re.Kind())
	}
	if re.Row() != 0 || re.Col() != 0 {
		t.Errorf("expected row 0, column 0, got row %d, column %d", re.Row(), re.Col())
	}
}

func TestBadStreamMidData(t *testing.T) {

	_, err := Read(&partialReader{data: "1, 2\n3"})
	if err == nil {
		t.Fatalf("expected a read error")
	}
	re := err.(*ReadError)
	if re.Kind() != BadStream {
		t.Errorf("expected BadStream, got %v", re.Kind())
	}
	if re.Row() != 1 {
		t.Errorf("expected the failure row to be 1, got %d", re.Row())
	}
}

func TestTextDecoder(t *testing.T) {

	// Latin-1 input with a non-ASCII byte in a header name.
	raw := []byte{'S', 0xe9, ',', 'V', '\n', '1', ',', '2', '\n'}

	rdr := NewReader(strings.NewReader(string(raw)))
	rdr.TextDecoder = charmap.ISO8859_1.NewDecoder()

	tbl := NewTable()
	if err := rdr.Read(tbl); err != nil {
		t.Fatalf("%v", err)
	}
	if tbl.Column(0).Name != "Sé" {
		t.Errorf("expected decoded name %q, got %q", "Sé", tbl.Column(0).Name)
	}
}

func TestEqualColumnLengths(t *testing.T) {

	// Every successful parse yields rectangular data.
	tbl, err := Read(strings.NewReader("a, b, c\n1, 2, 3\n4, 5, 6\n7, 8, 9\n"))
	if err != nil {
		t.Fatalf("%v", err)
	}
	for j := 0; j < tbl.Len(); j++ {
		if tbl.Column(j).Length() != 3 {
			t.Errorf("column %d has length %d, expected 3", j, tbl.Column(j).Length())
		}
	}
	if tbl.NumRows() != 3 {
		t.Errorf("expected 3 rows, got %d", tbl.NumRows())
	}
}
