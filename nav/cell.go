package nav

import "strconv"

// Cell identifies one grid tile. X is the column, Y is the row; rows grow
// downward, matching the order tile data is stored in.
type Cell struct {
	X int
	Y int
}

// Manhattan returns the sum of absolute coordinate differences.
func (c Cell) Manhattan(o Cell) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

// Adjacent reports whether o is one of c's four axis neighbors.
func (c Cell) Adjacent(o Cell) bool {
	return c.Manhattan(o) == 1
}

func (c Cell) String() string {
	return "(" + strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y) + ")"
}

// Path is an ordered sequence of cells from a start cell to a goal cell,
// both inclusive.
type Path []Cell

// IndexOf returns the position of c in the path, or -1.
func (p Path) IndexOf(c Cell) int {
	for i, pc := range p {
		if pc == c {
			return i
		}
	}
	return -1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
