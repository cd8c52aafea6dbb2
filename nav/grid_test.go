package nav

import (
	"errors"
	"testing"
)

func TestNewGridRejectsEmptyBounds(t *testing.T) {
	if _, err := NewGrid(0, 3, nil); !errors.Is(err, ErrInvalidGrid) {
		t.Fatalf("expected ErrInvalidGrid, got %v", err)
	}
}

func TestSuccessorsOrderAndFiltering(t *testing.T) {
	g, err := NewGrid(3, 3, NewObstacleSet(Cell{1, 0}))
	if err != nil {
		t.Fatal(err)
	}

	got := g.Successors(nil, Cell{1, 1})
	want := []Cell{{0, 1}, {2, 1}, {1, 2}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	corner := g.Successors(nil, Cell{0, 0})
	if len(corner) != 1 || corner[0] != (Cell{0, 1}) {
		t.Fatalf("corner successors %v", corner)
	}
}

func TestExtractObstacles(t *testing.T) {
	layers := []TileLayer{
		{Identifier: "Floor", Tiles: []Tile{{PX: 0, PY: 0}}},
		{Identifier: WallsLayer, Tiles: []Tile{{PX: 0, PY: 0}, {PX: 16, PY: 32}, {PX: 47, PY: 15}}},
	}

	got, err := ExtractObstacles(layers, WallsLayer, 16)
	if err != nil {
		t.Fatalf("ExtractObstacles: %v", err)
	}
	for _, c := range []Cell{{0, 0}, {1, 2}, {2, 0}} {
		if !got.Contains(c) {
			t.Fatalf("expected %v in %v", c, got.Cells())
		}
	}
	if got.Len() != 3 {
		t.Fatalf("expected 3 obstacles, got %d", got.Len())
	}
}

func TestExtractObstaclesMergesDuplicateLayers(t *testing.T) {
	layers := []TileLayer{
		{Identifier: WallsLayer, Tiles: []Tile{{PX: 0, PY: 0}}},
		{Identifier: WallsLayer, Tiles: []Tile{{PX: 16, PY: 0}}},
	}
	got, err := ExtractObstacles(layers, WallsLayer, 16)
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 2 {
		t.Fatalf("expected merged layers, got %v", got.Cells())
	}
}

func TestExtractObstaclesErrors(t *testing.T) {
	cases := []struct {
		name     string
		layers   []TileLayer
		tileSize int
		want     error
	}{
		{"missing_layer", []TileLayer{{Identifier: "Floor"}}, 16, ErrMapDataMissing},
		{"no_layers", nil, 16, ErrMapDataMissing},
		{"bad_tile_size", []TileLayer{{Identifier: WallsLayer}}, 0, ErrInvalidGrid},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := ExtractObstacles(c.layers, WallsLayer, c.tileSize); !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}
}

func TestExtractObstaclesEmptyWallsLayer(t *testing.T) {
	got, err := ExtractObstacles([]TileLayer{{Identifier: WallsLayer}}, WallsLayer, 16)
	if err != nil {
		t.Fatalf("empty walls layer should not fail: %v", err)
	}
	if got.Len() != 0 {
		t.Fatalf("expected no obstacles, got %v", got.Cells())
	}
}
