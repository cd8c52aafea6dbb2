package nav

import "fmt"

const (
	// WallsLayer is the tile layer whose tiles block movement.
	WallsLayer = "Walls"
	// DefaultTileSize is the level tile size in world units.
	DefaultTileSize = 16
)

// Tile is one placed tile, addressed by its pixel coordinate inside the
// level (top-down).
type Tile struct {
	PX int
	PY int
}

// TileLayer is a named layer of tiles from the level collaborator.
type TileLayer struct {
	Identifier string
	Tiles      []Tile
}

// ExtractObstacles derives the obstacle set from the layer called name by
// dividing each tile's pixel coordinate by tileSize. Several layers with the
// same name are merged. A missing layer fails with ErrMapDataMissing.
func ExtractObstacles(layers []TileLayer, name string, tileSize int) (ObstacleSet, error) {
	if tileSize <= 0 {
		return nil, fmt.Errorf("%w: tile size %d", ErrInvalidGrid, tileSize)
	}

	var (
		out   ObstacleSet
		found bool
	)
	for _, layer := range layers {
		if layer.Identifier != name {
			continue
		}
		if !found {
			out = make(ObstacleSet, len(layer.Tiles))
			found = true
		}
		for _, t := range layer.Tiles {
			out[Cell{X: floorDiv(t.PX, tileSize), Y: floorDiv(t.PY, tileSize)}] = struct{}{}
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: layer %q", ErrMapDataMissing, name)
	}
	return out, nil
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
