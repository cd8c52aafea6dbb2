package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/npcnav/ai"
	"github.com/milk9111/npcnav/ecs/system"
	"github.com/milk9111/npcnav/nav"
	"github.com/milk9111/npcnav/sim"
	"golang.org/x/image/colornames"
)

const (
	screenWidth  = 640
	screenHeight = 512
	viewScale    = 2.0
	maxLogLines  = 6
)

// Game is a debug viewer: arrow keys or WASD move the followed player, K
// removes it, P toggles path overlays.
type Game struct {
	sim       *sim.Simulation
	showPaths bool
	lines     []string
}

func NewGame(s *sim.Simulation) *Game {
	return &Game{sim: s, showPaths: true}
}

func (g *Game) Update() error {
	var dir nav.Vec
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dir.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dir.X++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dir.Y++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dir.Y--
	}
	v := dir.Normalize().Scale(g.sim.PlayerSpeed())
	g.sim.SetTargetVelocity(v.X, v.Y)

	if inpututil.IsKeyJustPressed(ebiten.KeyK) {
		g.sim.RemovePlayer()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.showPaths = !g.showPaths
	}

	for _, evt := range g.sim.Tick(1 / float64(ebiten.TPS())) {
		switch data := evt.Data.(type) {
		case system.BehaviorChanged:
			g.logLine(fmt.Sprintf("%d: agent %s %s -> %s (%s)", data.Tick, data.Entity, data.From, data.To, data.Reason))
		case system.LevelChanged:
			if data.Err != nil {
				g.logLine(fmt.Sprintf("level %s: %v", data.To, data.Err))
			} else {
				g.logLine("level " + data.To)
			}
		}
	}
	return nil
}

func (g *Game) logLine(s string) {
	g.lines = append(g.lines, s)
	if len(g.lines) > maxLogLines {
		g.lines = g.lines[len(g.lines)-maxLogLines:]
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)

	id, grid, space, ok := g.sim.ActiveGrid()
	if ok {
		g.drawGrid(screen, grid, space)
		g.drawAgents(screen, id, space)
		if pos, alive := g.sim.Player(); alive {
			x, y := toScreen(space, pos)
			vector.FillCircle(screen, x, y, 5*viewScale, colornames.Deepskyblue, true)
		}
	}

	hud := fmt.Sprintf("level: %s  tick: %d  FPS: %.1f\n%s", id, g.sim.Ticks(), ebiten.ActualFPS(), strings.Join(g.lines, "\n"))
	ebitenutil.DebugPrint(screen, hud)
}

func (g *Game) drawGrid(screen *ebiten.Image, grid *nav.Grid, space nav.GridSpace) {
	ts := float32(space.TileSize * viewScale)
	for _, c := range grid.Obstacles.Cells() {
		vector.FillRect(screen, float32(c.X)*ts, float32(c.Y)*ts, ts, ts, colornames.Slategray, false)
	}
}

func (g *Game) drawAgents(screen *ebiten.Image, levelID string, space nav.GridSpace) {
	ts := float32(space.TileSize * viewScale)
	for _, a := range g.sim.Agents() {
		if a.Level != levelID {
			continue
		}
		vector.StrokeRect(screen, float32(a.Anchor.X)*ts, float32(a.Anchor.Y)*ts, ts, ts, 1, colornames.Gold, false)

		if g.showPaths && len(a.Path) > 1 {
			for i := 1; i < len(a.Path); i++ {
				x0, y0 := toScreen(space, space.CenterOf(a.Path[i-1]))
				x1, y1 := toScreen(space, space.CenterOf(a.Path[i]))
				vector.StrokeLine(screen, x0, y0, x1, y1, 2, colornames.Lightgrey, true)
			}
		}

		x, y := toScreen(space, a.Position)
		vector.FillCircle(screen, x, y, 5*viewScale, stateColor(a.State), true)
		if a.NoRoute {
			vector.StrokeCircle(screen, x, y, 7*viewScale, 1, colornames.Red, true)
		}
	}
}

func stateColor(k ai.Kind) color.Color {
	switch k {
	case ai.KindFollow:
		return colornames.Crimson
	case ai.KindReturning:
		return colornames.Orange
	default:
		return colornames.Gray
	}
}

// toScreen maps a world position into the active level's view, flipping Y so
// that the top row of tiles is drawn first.
func toScreen(space nav.GridSpace, p nav.Vec) (float32, float32) {
	height := float64(space.Rows) * space.TileSize
	x := (p.X - space.OriginX) * viewScale
	y := (space.OriginY + height - p.Y) * viewScale
	return float32(x), float32(y)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
