package numcsv

import (
	"bufio"
	"io"
	"strconv"
)

// A Writer serializes a Table to delimited text.  The first byte of
// each configured separator and quote set is used for output.
type Writer struct {

	// Settings controls separators, quotes, and header handling.
	Settings Settings

	dst *bufio.Writer
}

// NewWriter returns a Writer that writes to w with default settings.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		Settings: DefaultSettings(),
		dst:      bufio.NewWriter(w),
	}
}

// Write writes the table.  An empty table writes nothing.  Only as
// many rows as the shortest column has values are written, so a table
// whose columns were mutated to unequal lengths after parsing is
// truncated rather than rejected.
//
// With automatic header handling, a header row is written when at
// least one column has a non-empty name.  An unnamed column is then
// written as its zero-based index, always wrapped in the first quote
// byte so it cannot be mistaken for a real name.
//
// Floats are written in their shortest exact decimal form, so reading
// the output back yields numerically identical data.
func (w *Writer) Write(tbl *Table) error {

	if tbl.Len() == 0 {
		return nil
	}

	set := &w.Settings
	valueSep := set.valueSeps[0]
	lineSep := set.lineSeps[0]
	quote := set.quotes[0]

	headerType := set.headerType
	if headerType == HeaderAuto {
		headerType = HeaderNone
		for j := 0; j < tbl.Len(); j++ {
			if tbl.Column(j).Name != "" {
				headerType = HeaderFirstRow
				break
			}
		}
	}

	if headerType == HeaderFirstRow {
		for j := 0; j < tbl.Len(); j++ {
			if j > 0 {
				w.dst.WriteByte(valueSep)
			}
			if set.autoQuotes {
				w.dst.WriteByte(quote)
			}
			if name := tbl.Column(j).Name; name != "" {
				w.dst.WriteString(name)
			} else {
				if !set.autoQuotes {
					w.dst.WriteByte(quote)
				}
				w.dst.WriteString(strconv.Itoa(j))
				if !set.autoQuotes {
					w.dst.WriteByte(quote)
				}
			}
			if set.autoQuotes {
				w.dst.WriteByte(quote)
			}
		}
		w.dst.WriteByte(lineSep)
	}

	nrows := tbl.NumRows()
	for i := 0; i < nrows; i++ {
		for j := 0; j < tbl.Len(); j++ {
			if j > 0 {
				w.dst.WriteByte(valueSep)
			}
			w.dst.WriteString(strconv.FormatFloat(tbl.Column(j).Data[i], 'g', -1, 64))
		}
		w.dst.WriteByte(lineSep)
	}

	return w.dst.Flush()
}
