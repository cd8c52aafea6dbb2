package levels

import (
	"errors"
	"fmt"

	"github.com/milk9111/npcnav/nav"
)

var ErrLevelNotFound = errors.New("levels: level not found")

const (
	EntityPlayer = "Player"
	EntityEnemy  = "Enemy"
)

// Project is a set of levels laid out in one world space.
type Project struct {
	Levels []Level `json:"levels"`
}

// Level is a rectangle of the world with its tile layers and spawn points.
// Pixel coordinates inside a level are top-down; world Y points up.
type Level struct {
	Identifier string           `json:"identifier"`
	IID        string           `json:"iid"`
	WorldX     float64          `json:"world_x"`
	WorldY     float64          `json:"world_y"`
	PxWid      int              `json:"px_wid"`
	PxHei      int              `json:"px_hei"`
	GridSize   int              `json:"grid_size"`
	Layers     []Layer          `json:"layers"`
	Entities   []EntityInstance `json:"entities"`
}

type Layer struct {
	Identifier string `json:"identifier"`
	Type       string `json:"type"`
	Tiles      []Tile `json:"tiles"`
}

type Tile struct {
	PX [2]int `json:"px"`
}

type EntityInstance struct {
	Identifier string         `json:"identifier"`
	PX         [2]float64     `json:"px"`
	Fields     map[string]any `json:"fields,omitempty"`
}

// Field returns a string field of the instance, or def.
func (e EntityInstance) Field(name, def string) string {
	if s, ok := e.Fields[name].(string); ok && s != "" {
		return s
	}
	return def
}

func (p *Project) Level(id string) (*Level, error) {
	if p != nil {
		for i := range p.Levels {
			if p.Levels[i].Identifier == id {
				return &p.Levels[i], nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrLevelNotFound, id)
}

// LevelAt returns the first level strictly containing pos.
func (p *Project) LevelAt(pos nav.Vec) (*Level, bool) {
	if p == nil {
		return nil, false
	}
	for i := range p.Levels {
		if p.Levels[i].Contains(pos) {
			return &p.Levels[i], true
		}
	}
	return nil, false
}

func (l *Level) TileSize() int {
	if l.GridSize <= 0 {
		return nav.DefaultTileSize
	}
	return l.GridSize
}

func (l *Level) Cols() int {
	return l.PxWid / l.TileSize()
}

func (l *Level) Rows() int {
	return l.PxHei / l.TileSize()
}

// Contains reports whether pos lies strictly inside the level bounds.
func (l *Level) Contains(pos nav.Vec) bool {
	return pos.X > l.WorldX && pos.X < l.WorldX+float64(l.PxWid) &&
		pos.Y > l.WorldY && pos.Y < l.WorldY+float64(l.PxHei)
}

// Space maps world positions to the level's top-down cells.
func (l *Level) Space() nav.GridSpace {
	return nav.GridSpace{
		OriginX:  l.WorldX,
		OriginY:  l.WorldY,
		TileSize: float64(l.TileSize()),
		Rows:     l.Rows(),
		YUp:      true,
	}
}

// WorldPos converts a top-down pixel position inside the level to world
// space.
func (l *Level) WorldPos(px [2]float64) nav.Vec {
	return nav.Vec{
		X: l.WorldX + px[0],
		Y: l.WorldY + float64(l.PxHei) - px[1],
	}
}

func (l *Level) TileLayers() []nav.TileLayer {
	out := make([]nav.TileLayer, 0, len(l.Layers))
	for _, layer := range l.Layers {
		tl := nav.TileLayer{Identifier: layer.Identifier, Tiles: make([]nav.Tile, 0, len(layer.Tiles))}
		for _, t := range layer.Tiles {
			tl.Tiles = append(tl.Tiles, nav.Tile{PX: t.PX[0], PY: t.PX[1]})
		}
		out = append(out, tl)
	}
	return out
}

// Grid extracts the obstacle grid from the Walls layer. Levels without that
// layer fail with nav.ErrMapDataMissing.
func (l *Level) Grid() (*nav.Grid, error) {
	obs, err := nav.ExtractObstacles(l.TileLayers(), nav.WallsLayer, l.TileSize())
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", l.Identifier, err)
	}
	g, err := nav.NewGrid(l.Cols(), l.Rows(), obs)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", l.Identifier, err)
	}
	return g, nil
}

// EntitiesOf returns the instances with the given identifier.
func (l *Level) EntitiesOf(identifier string) []EntityInstance {
	var out []EntityInstance
	for _, e := range l.Entities {
		if e.Identifier == identifier {
			out = append(out, e)
		}
	}
	return out
}
