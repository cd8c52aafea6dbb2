package nav

// NextWaypoint returns the cell after current in path. When current is not on
// the path the first cell is used instead. ok is false when current is the
// last cell, i.e. the agent already stands on the goal.
func NextWaypoint(path Path, current Cell) (Cell, bool) {
	if len(path) == 0 {
		return Cell{}, false
	}
	idx := path.IndexOf(current)
	if idx < 0 {
		return path[0], true
	}
	if idx+1 >= len(path) {
		return Cell{}, false
	}
	return path[idx+1], true
}

// PathComplete reports whether nothing is left of path once the prefix up to
// and including current is trimmed. A single-cell path is complete.
func PathComplete(path Path, current Cell) bool {
	if len(path) == 0 {
		return false
	}
	idx := path.IndexOf(current)
	if idx < 0 {
		idx = 0
	}
	return idx+1 >= len(path)
}

// Steer returns a movement delta from from toward to with magnitude
// speed*dt. A zero distance yields the zero vector.
func Steer(from, to Vec, speed, dt float64) Vec {
	if speed <= 0 || dt <= 0 {
		return Vec{}
	}
	d := to.Sub(from)
	dist := d.Len()
	if dist == 0 {
		return Vec{}
	}
	step := speed * dt
	out := d.Scale(step / dist)
	if l := out.Len(); l > step {
		out = out.Scale(step / l)
	}
	return out
}

// SteerRequest is one agent's steering input for a tick.
type SteerRequest struct {
	Grid     *Grid
	Space    GridSpace
	Position Vec
	// Cell is the agent's cell when the caller already knows it. Without
	// HasCell it is derived from Position.
	Cell     Cell
	HasCell  bool
	Goal     Cell
	Speed    float64
	Dt       float64
}

// SteerResult carries the emitted delta along with the path it came from.
type SteerResult struct {
	Delta       Vec
	Path        Path
	Waypoint    Cell
	HasWaypoint bool
}

// SteerAlongPath plans from the agent's cell to req.Goal and steers toward
// the world-space center of the next waypoint. When no route exists it
// returns ErrNoPathFound with a zero delta.
func SteerAlongPath(req SteerRequest) (SteerResult, error) {
	current := req.Cell
	if !req.HasCell {
		current = req.Space.CellOf(req.Position)
	}
	path, ok := FindPath(req.Grid, current, req.Goal)
	if !ok {
		return SteerResult{}, ErrNoPathFound
	}

	res := SteerResult{Path: path}
	waypoint, ok := NextWaypoint(path, current)
	if !ok {
		return res, nil
	}
	res.Waypoint = waypoint
	res.HasWaypoint = true
	res.Delta = Steer(req.Position, req.Space.CenterOf(waypoint), req.Speed, req.Dt)
	return res, nil
}
