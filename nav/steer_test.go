package nav

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestNextWaypoint(t *testing.T) {
	path := Path{{0, 0}, {0, 1}, {0, 2}}
	cases := []struct {
		name    string
		current Cell
		want    Cell
		ok      bool
	}{
		{"from_start", Cell{0, 0}, Cell{0, 1}, true},
		{"middle", Cell{0, 1}, Cell{0, 2}, true},
		{"at_goal", Cell{0, 2}, Cell{}, false},
		{"off_path_uses_first", Cell{5, 5}, Cell{0, 0}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := NextWaypoint(path, c.current)
			if ok != c.ok || got != c.want {
				t.Fatalf("got %v ok=%v, want %v ok=%v", got, ok, c.want, c.ok)
			}
		})
	}
	if _, ok := NextWaypoint(nil, Cell{}); ok {
		t.Fatalf("empty path has no waypoint")
	}
}

func TestPathComplete(t *testing.T) {
	if !PathComplete(Path{{1, 1}}, Cell{1, 1}) {
		t.Fatalf("single-cell path should be complete")
	}
	if PathComplete(Path{{1, 1}, {1, 2}}, Cell{1, 1}) {
		t.Fatalf("path with a remaining step is not complete")
	}
	if !PathComplete(Path{{1, 1}, {1, 2}}, Cell{1, 2}) {
		t.Fatalf("standing on the last cell is complete")
	}
	if PathComplete(nil, Cell{}) {
		t.Fatalf("missing path is never complete")
	}
}

func TestSteerZeroDistance(t *testing.T) {
	got := Steer(Vec{X: 4, Y: 4}, Vec{X: 4, Y: 4}, 100, 1.0/60)
	if got != (Vec{}) || math.IsNaN(got.X) || math.IsNaN(got.Y) {
		t.Fatalf("expected exact zero vector, got %v", got)
	}
}

func TestSteerNeverExceedsStep(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		from := Vec{X: rng.Float64()*200 - 100, Y: rng.Float64()*200 - 100}
		to := Vec{X: rng.Float64()*200 - 100, Y: rng.Float64()*200 - 100}
		speed := rng.Float64() * 300
		dt := rng.Float64() / 30
		got := Steer(from, to, speed, dt)
		if got.Len() > speed*dt {
			t.Fatalf("delta %v (len %v) exceeds %v", got, got.Len(), speed*dt)
		}
	}
}

func TestSteerDegenerateInputs(t *testing.T) {
	cases := []struct {
		name  string
		speed float64
		dt    float64
	}{
		{"zero_speed", 0, 1},
		{"zero_dt", 10, 0},
		{"negative_dt", 10, -1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Steer(Vec{}, Vec{X: 1}, c.speed, c.dt); got != (Vec{}) {
				t.Fatalf("expected zero, got %v", got)
			}
		})
	}
}

func TestSteerAlongPathScenario(t *testing.T) {
	g, err := NewGrid(5, 5, nil)
	if err != nil {
		t.Fatal(err)
	}
	space := GridSpace{TileSize: 1, Rows: 5}
	const speed, dt = 2.0, 0.1

	res, err := SteerAlongPath(SteerRequest{
		Grid:     g,
		Space:    space,
		Position: space.CenterOf(Cell{0, 0}),
		Goal:     Cell{0, 1},
		Speed:    speed,
		Dt:       dt,
	})
	if err != nil {
		t.Fatalf("SteerAlongPath: %v", err)
	}
	if len(res.Path) != 2 || res.Path[0] != (Cell{0, 0}) || res.Path[1] != (Cell{0, 1}) {
		t.Fatalf("path %v", res.Path)
	}
	if !res.HasWaypoint || res.Waypoint != (Cell{0, 1}) {
		t.Fatalf("waypoint %v ok=%v", res.Waypoint, res.HasWaypoint)
	}
	if math.Abs(res.Delta.X) > 1e-12 || math.Abs(res.Delta.Y-speed*dt) > 1e-12 {
		t.Fatalf("delta %v, want (0,%v)", res.Delta, speed*dt)
	}
}

func TestSteerAlongPathYUpFlipsDirection(t *testing.T) {
	g, err := NewGrid(5, 5, nil)
	if err != nil {
		t.Fatal(err)
	}
	space := GridSpace{TileSize: 1, Rows: 5, YUp: true}

	res, err := SteerAlongPath(SteerRequest{
		Grid:     g,
		Space:    space,
		Position: space.CenterOf(Cell{0, 0}),
		Goal:     Cell{0, 1},
		Speed:    1,
		Dt:       1,
	})
	if err != nil {
		t.Fatal(err)
	}
	// the next row is lower in a Y-up world
	if math.Abs(res.Delta.Y+1) > 1e-12 || math.Abs(res.Delta.X) > 1e-12 {
		t.Fatalf("delta %v, want (0,-1)", res.Delta)
	}
}

func TestSteerAlongPathNoRoute(t *testing.T) {
	g, err := NewGrid(5, 5, NewObstacleSet(Cell{1, 0}, Cell{0, 1}))
	if err != nil {
		t.Fatal(err)
	}
	space := GridSpace{TileSize: 1, Rows: 5}
	res, err := SteerAlongPath(SteerRequest{
		Grid:     g,
		Space:    space,
		Position: space.CenterOf(Cell{3, 3}),
		Goal:     Cell{0, 0},
		Speed:    1,
		Dt:       1,
	})
	if !errors.Is(err, ErrNoPathFound) {
		t.Fatalf("expected ErrNoPathFound, got %v", err)
	}
	if res.Delta != (Vec{}) {
		t.Fatalf("expected zero delta, got %v", res.Delta)
	}
}

func TestSteerAlongPathAtGoal(t *testing.T) {
	g, err := NewGrid(3, 3, nil)
	if err != nil {
		t.Fatal(err)
	}
	space := GridSpace{TileSize: 16, Rows: 3}
	res, err := SteerAlongPath(SteerRequest{
		Grid:     g,
		Space:    space,
		Position: Vec{X: 20, Y: 20},
		Goal:     Cell{1, 1},
		Speed:    50,
		Dt:       0.1,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.HasWaypoint || res.Delta != (Vec{}) {
		t.Fatalf("agent on goal should not move: %+v", res)
	}
}
