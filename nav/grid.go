package nav

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrMapDataMissing = errors.New("nav: map data missing")
	ErrNoPathFound    = errors.New("nav: no path found")
	ErrTargetMissing  = errors.New("nav: target entity missing")
	ErrInvalidGrid    = errors.New("nav: invalid grid")
)

// ObstacleSet is the set of blocked cells for one level.
type ObstacleSet map[Cell]struct{}

func NewObstacleSet(cells ...Cell) ObstacleSet {
	s := make(ObstacleSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

func (s ObstacleSet) Contains(c Cell) bool {
	_, ok := s[c]
	return ok
}

func (s ObstacleSet) Len() int {
	return len(s)
}

// Cells returns the blocked cells ordered by row, then column.
func (s ObstacleSet) Cells() []Cell {
	out := make([]Cell, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Grid bounds an obstacle set to a level's width and height in cells. The
// bounds are what make an unreachable search terminate.
type Grid struct {
	Width     int
	Height    int
	Obstacles ObstacleSet
}

func NewGrid(width, height int, obstacles ObstacleSet) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidGrid, width, height)
	}
	if obstacles == nil {
		obstacles = ObstacleSet{}
	}
	return &Grid{Width: width, Height: height, Obstacles: obstacles}, nil
}

func (g *Grid) InBounds(c Cell) bool {
	if g == nil {
		return false
	}
	return c.X >= 0 && c.Y >= 0 && c.X < g.Width && c.Y < g.Height
}

// Blocked reports whether c is outside the grid or an obstacle.
func (g *Grid) Blocked(c Cell) bool {
	return !g.InBounds(c) || g.Obstacles.Contains(c)
}

// Successors appends the open axis neighbors of c to dst in the fixed order
// left, right, up, down.
func (g *Grid) Successors(dst []Cell, c Cell) []Cell {
	for _, n := range [4]Cell{
		{X: c.X - 1, Y: c.Y},
		{X: c.X + 1, Y: c.Y},
		{X: c.X, Y: c.Y - 1},
		{X: c.X, Y: c.Y + 1},
	} {
		if g.Blocked(n) {
			continue
		}
		dst = append(dst, n)
	}
	return dst
}
