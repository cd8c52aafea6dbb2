package system

import (
	"github.com/milk9111/npcnav/ecs"
	"github.com/milk9111/npcnav/ecs/component"
	"github.com/milk9111/npcnav/nav"
)

// GridCoordSystem refreshes the cell of every positioned entity on the active
// level.
type GridCoordSystem struct{}

func NewGridCoordSystem() *GridCoordSystem {
	return &GridCoordSystem{}
}

func (s *GridCoordSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	lvl := activeLevel(w)
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.GridCoordsComponent.Kind(), func(e ecs.Entity, t *component.Transform, gc *component.GridCoords) {
		if !lvl.Ready() || !onLevel(w, e, lvl.ID) {
			*gc = component.GridCoords{}
			return
		}
		refreshCoords(gc, lvl, t.Vec())
	})
}

func refreshCoords(gc *component.GridCoords, lvl *component.ActiveLevel, pos nav.Vec) {
	gc.Cell = lvl.Space.CellOf(pos)
	gc.Valid = lvl.Grid.InBounds(gc.Cell)
	gc.Level = lvl.ID
	gc.From = pos
}

// cellOf returns the cell of e at pos on lvl, reading the GridCoords cache
// when it matches and refreshing it when it does not.
func cellOf(w *ecs.World, e ecs.Entity, lvl *component.ActiveLevel, pos nav.Vec) nav.Cell {
	gc, ok := ecs.Get(w, e, component.GridCoordsComponent.Kind())
	if !ok {
		return lvl.Space.CellOf(pos)
	}
	if gc.Level != lvl.ID || gc.From != pos {
		refreshCoords(gc, lvl, pos)
	}
	return gc.Cell
}
