package numcsv

import "math"

// A Column is one named column of a table.
type Column struct {

	// The name used in the header row.  Empty if there is no header.
	Name string

	// The data values, in row order.
	Data []float64
}

// Length returns the number of data values in the column.
func (c *Column) Length() int {
	return len(c.Data)
}

// AllClose returns true, 0 if the column is within tol of the other
// column.  If the names differ, AllClose returns false, -2.  If the
// lengths differ, AllClose returns false, -1.  Otherwise it returns
// false, i, where i is the first row at which the two columns differ
// by more than tol.
func (c *Column) AllClose(other *Column, tol float64) (bool, int) {

	if c.Name != other.Name {
		return false, -2
	}

	if len(c.Data) != len(other.Data) {
		return false, -1
	}

	for i := range c.Data {
		if math.Abs(c.Data[i]-other.Data[i]) > tol {
			return false, i
		}
	}

	return true, 0
}

// AllEqual is equivalent to AllClose with tol = 0.
func (c *Column) AllEqual(other *Column) (bool, int) {
	return c.AllClose(other, 0)
}
