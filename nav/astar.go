package nav

import "container/heap"

// FindPath runs A* from start to goal over the 4-connected grid with unit
// edge cost and a Manhattan heuristic. The returned path is shortest in cell
// count and includes both endpoints. ok is false when no route exists or
// either endpoint is blocked.
//
// Ties on f are broken by lower heuristic, then by insertion order, so equal
// inputs always yield the same path.
func FindPath(g *Grid, start, goal Cell) (Path, bool) {
	if g == nil || g.Blocked(start) || g.Blocked(goal) {
		return nil, false
	}

	open := &openSet{}
	heap.Init(open)

	gScore := map[Cell]int{start: 0}
	cameFrom := map[Cell]Cell{}
	closed := map[Cell]bool{}

	var seq int
	heap.Push(open, &openItem{cell: start, g: 0, h: start.Manhattan(goal), seq: seq})

	succ := make([]Cell, 0, 4)
	for open.Len() > 0 {
		current := heap.Pop(open).(*openItem)
		cur := current.cell
		if closed[cur] {
			continue
		}
		if cur == goal {
			return reconstructPath(cameFrom, start, goal), true
		}
		closed[cur] = true

		succ = g.Successors(succ[:0], cur)
		for _, n := range succ {
			if closed[n] {
				continue
			}
			tentative := gScore[cur] + 1
			if prev, seen := gScore[n]; seen && tentative >= prev {
				continue
			}
			gScore[n] = tentative
			cameFrom[n] = cur
			seq++
			heap.Push(open, &openItem{cell: n, g: tentative, h: n.Manhattan(goal), seq: seq})
		}
	}

	return nil, false
}

func reconstructPath(cameFrom map[Cell]Cell, start, goal Cell) Path {
	path := make(Path, 0, start.Manhattan(goal)+1)
	cur := goal
	for {
		path = append(path, cur)
		if cur == start {
			break
		}
		cur = cameFrom[cur]
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

type openItem struct {
	cell  Cell
	g     int
	h     int
	seq   int
	index int
}

func (o *openItem) f() int { return o.g + o.h }

type openSet []*openItem

func (o openSet) Len() int { return len(o) }
func (o openSet) Less(i, j int) bool {
	if fi, fj := o[i].f(), o[j].f(); fi != fj {
		return fi < fj
	}
	if o[i].h != o[j].h {
		return o[i].h < o[j].h
	}
	return o[i].seq < o[j].seq
}
func (o openSet) Swap(i, j int) {
	o[i], o[j] = o[j], o[i]
	o[i].index = i
	o[j].index = j
}
func (o *openSet) Push(x any) {
	item := x.(*openItem)
	item.index = len(*o)
	*o = append(*o, item)
}
func (o *openSet) Pop() any {
	old := *o
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*o = old[:n-1]
	return item
}
