package numcsv

// A Table is an ordered collection of Columns.  It can represent a
// whole parsed data set.  The table exclusively owns its columns; a
// Reader mutates them in place while parsing.
type Table struct {
	columns []*Column
}

// NewTable returns a new, empty Table.
func NewTable() *Table {
	return &Table{}
}

// Len returns the number of columns in the table.
func (t *Table) Len() int {
	return len(t.columns)
}

// Column returns the column at position j.
func (t *Table) Column(j int) *Column {
	return t.columns[j]
}

// Append adds a column at the end of the table.
func (t *Table) Append(c *Column) {
	t.columns = append(t.columns, c)
}

// Insert inserts a column at position j, shifting later columns up.
func (t *Table) Insert(j int, c *Column) {
	t.columns = append(t.columns, nil)
	copy(t.columns[j+1:], t.columns[j:])
	t.columns[j] = c
}

// Remove removes the column at position j, shifting later columns down.
func (t *Table) Remove(j int) {
	copy(t.columns[j:], t.columns[j+1:])
	t.columns[len(t.columns)-1] = nil
	t.columns = t.columns[:len(t.columns)-1]
}

// Find returns the first column whose name is exactly name, or nil if
// no column matches.
func (t *Table) Find(name string) *Column {
	for _, c := range t.columns {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// FindIndex returns the position of the first column whose name is
// exactly name, or -1 if no column matches.
func (t *Table) FindIndex(name string) int {
	for j, c := range t.columns {
		if c.Name == name {
			return j
		}
	}
	return -1
}

// Clear removes all columns from the table.
func (t *Table) Clear() {
	t.columns = t.columns[:0]
}

// NumRows returns the length of the shortest column, which is the
// number of complete rows the table holds.  After a successful read
// all columns have the same length; the lengths can only diverge
// through later mutation by the caller.
func (t *Table) NumRows() int {

	if len(t.columns) == 0 {
		return 0
	}

	m := len(t.columns[0].Data)
	for _, c := range t.columns[1:] {
		if len(c.Data) < m {
			m = len(c.Data)
		}
	}

	return m
}

// AllClose returns (true, 0, 0) if all values in corresponding columns
// of the two tables are within the given tolerance.  If the tables
// have different numbers of columns, it returns (false, -1, -1).
// Otherwise it returns (false, j, i), where j is the first differing
// column and i is the row indicator from Column.AllClose.
func (t *Table) AllClose(other *Table, tol float64) (bool, int, int) {

	if t.Len() != other.Len() {
		return false, -1, -1
	}

	for j := range t.columns {
		if f, i := t.columns[j].AllClose(other.columns[j], tol); !f {
			return false, j, i
		}
	}

	return true, 0, 0
}

// AllEqual is equivalent to AllClose with tol = 0.
func (t *Table) AllEqual(other *Table) (bool, int, int) {
	return t.AllClose(other, 0)
}
