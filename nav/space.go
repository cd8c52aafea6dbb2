package nav

import "math"

// Vec is a world-space 2D vector.
type Vec struct {
	X float64
	Y float64
}

func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec) Dist(o Vec) float64 {
	return v.Sub(o).Len()
}

func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector in v's direction, or the zero vector when
// v has no length.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l == 0 || math.IsNaN(l) {
		return Vec{}
	}
	return Vec{X: v.X / l, Y: v.Y / l}
}

// GridSpace converts between world positions and cells for one level.
//
// When YUp is set the world Y axis points up while cell rows grow downward,
// so the row is flipped with row = Rows - rawRow - 1. The same flip is used
// in both directions.
type GridSpace struct {
	OriginX  float64
	OriginY  float64
	TileSize float64
	Rows     int
	YUp      bool
}

// CellOf returns the cell containing world position p.
func (s GridSpace) CellOf(p Vec) Cell {
	ts := s.tileSize()
	col := int(math.Floor((p.X - s.OriginX) / ts))
	rawRow := int(math.Floor((p.Y - s.OriginY) / ts))
	return Cell{X: col, Y: s.flipRow(rawRow)}
}

// CenterOf returns the world position of the center of c.
func (s GridSpace) CenterOf(c Cell) Vec {
	ts := s.tileSize()
	rawRow := s.flipRow(c.Y)
	return Vec{
		X: s.OriginX + (float64(c.X)+0.5)*ts,
		Y: s.OriginY + (float64(rawRow)+0.5)*ts,
	}
}

func (s GridSpace) flipRow(row int) int {
	if !s.YUp {
		return row
	}
	return s.Rows - row - 1
}

func (s GridSpace) tileSize() float64 {
	if s.TileSize <= 0 {
		return DefaultTileSize
	}
	return s.TileSize
}
