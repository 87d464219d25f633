package numcsv

import "bytes"

// HeaderType selects how the first row of the input is interpreted.
type HeaderType int

const (
	// HeaderAuto decides from the first non-whitespace byte of the
	// input: a digit, '+', or '-' means the first row is data, any
	// other byte means it is a named header row.
	HeaderAuto HeaderType = iota

	// HeaderNone treats the first row as data; columns get empty names.
	HeaderNone

	// HeaderFirstRow treats the first row as column names.
	HeaderFirstRow
)

// maxSeparators is the capacity of each separator and quote set.
// Longer assignments are silently truncated.
const maxSeparators = 7

// Settings configures a Reader or Writer.  A Settings value is only
// read, never modified, during a call; it can be adjusted between
// calls through the setters.  Use DefaultSettings as the starting
// point, since the separator sets must not be empty.
//
// When reading, every byte of a set is recognized.  When writing, the
// first byte of each set is used.
type Settings struct {
	headerType HeaderType
	valueSeps  []byte
	lineSeps   []byte
	quotes     []byte
	autoQuotes bool
}

// DefaultSettings returns the default configuration: automatic header
// detection, value separators ",;\t", line separator "\n", quotes
// "\"'", and automatic quoting enabled.
func DefaultSettings() Settings {
	return Settings{
		headerType: HeaderAuto,
		valueSeps:  []byte{',', ';', '\t'},
		lineSeps:   []byte{'\n'},
		quotes:     []byte{'"', '\''},
		autoQuotes: true,
	}
}

// SetHeaderType sets how the first row is interpreted.
func (s *Settings) SetHeaderType(h HeaderType) {
	s.headerType = h
}

// HeaderType returns the current header handling.
func (s *Settings) HeaderType() HeaderType {
	return s.headerType
}

// SetValueSeparators sets the bytes that separate cells within a row.
// An empty argument is rejected and the prior separators are kept.  At
// most maxSeparators bytes are stored.
func (s *Settings) SetValueSeparators(seps string) {
	if len(seps) == 0 {
		return
	}
	s.valueSeps = capSet(seps)
}

// ValueSeparators returns the current value separator set.
func (s *Settings) ValueSeparators() string {
	return string(s.valueSeps)
}

// SetLineSeparators sets the bytes that separate rows.  An empty
// argument is rejected and the prior separators are kept.  At most
// maxSeparators bytes are stored.
func (s *Settings) SetLineSeparators(seps string) {
	if len(seps) == 0 {
		return
	}
	s.lineSeps = capSet(seps)
}

// LineSeparators returns the current line separator set.
func (s *Settings) LineSeparators() string {
	return string(s.lineSeps)
}

// SetQuotes sets the quote bytes.  An empty argument is rejected and
// the prior quotes are kept.  At most maxSeparators bytes are stored.
func (s *Settings) SetQuotes(quotes string) {
	if len(quotes) == 0 {
		return
	}
	s.quotes = capSet(quotes)
}

// Quotes returns the current quote set.
func (s *Settings) Quotes() string {
	return string(s.quotes)
}

// SetAutoQuotes controls automatic quote handling: trimming quotes
// from header names when reading, and wrapping names in quotes when
// writing.
func (s *Settings) SetAutoQuotes(b bool) {
	s.autoQuotes = b
}

// AutoQuotes reports whether automatic quote handling is enabled.
func (s *Settings) AutoQuotes() bool {
	return s.autoQuotes
}

func capSet(v string) []byte {
	if len(v) > maxSeparators {
		v = v[:maxSeparators]
	}
	return []byte(v)
}

func (s *Settings) isValueSep(b byte) bool {
	return bytes.IndexByte(s.valueSeps, b) >= 0
}

func (s *Settings) isLineSep(b byte) bool {
	return bytes.IndexByte(s.lineSeps, b) >= 0
}

func (s *Settings) isQuote(b byte) bool {
	return bytes.IndexByte(s.quotes, b) >= 0
}
