package sim

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/milk9111/npcnav/ai"
	"github.com/milk9111/npcnav/ecs"
	"github.com/milk9111/npcnav/ecs/component"
	"github.com/milk9111/npcnav/ecs/entity"
	"github.com/milk9111/npcnav/ecs/system"
	"github.com/milk9111/npcnav/levels"
	"github.com/milk9111/npcnav/nav"
)

var ErrNoPlayerSpawn = errors.New("sim: project has no player spawn")

// Options configures a Simulation. The zero value runs without collisions
// and without hot reload.
type Options struct {
	Logger *slog.Logger
	// Physics routes movement through the Chipmunk space so walls block it.
	Physics bool
	// Prefabs, when set, is polled every tick for changed prefab files.
	Prefabs system.PrefabSource
}

// Simulation owns a world built from a level project and steps it.
type Simulation struct {
	world   *ecs.World
	sched   *ecs.Scheduler
	clock   *component.Clock
	player  ecs.Entity
	project *levels.Project
	log     *slog.Logger
}

// New spawns the player and every enemy of project and wires the systems in
// tick order.
func New(project *levels.Project, opts Options) (*Simulation, error) {
	if project == nil {
		return nil, fmt.Errorf("sim: project is nil")
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	w := ecs.NewWorld()
	if opts.Physics {
		w.SetPhysicsWorld(ecs.NewPhysicsWorld())
	}
	clock := &component.Clock{}
	if err := ecs.Add(w, ecs.CreateEntity(w), component.ClockComponent.Kind(), clock); err != nil {
		return nil, fmt.Errorf("sim: add clock: %w", err)
	}

	s := &Simulation{world: w, clock: clock, project: project, log: log}
	if err := s.spawn(); err != nil {
		return nil, err
	}

	var mover ecs.System = system.NewMovementSystem()
	if opts.Physics {
		mover = system.NewPhysicsSystem()
	}
	s.sched = ecs.NewScheduler(
		system.NewClockSystem(),
		system.NewPrefabReloadSystem(opts.Prefabs, log),
		system.NewLevelSelectionSystem(project, log),
		system.NewGridCoordSystem(),
		system.NewAISystem(log),
		system.NewSteeringSystem(log),
		system.NewVelocitySystem(),
		mover,
	)
	log.Debug("sim: systems", "order", s.sched.Names())
	return s, nil
}

func (s *Simulation) spawn() error {
	var (
		playerLevel *levels.Level
		playerSpawn levels.EntityInstance
	)
	for i := range s.project.Levels {
		lvl := &s.project.Levels[i]
		if players := lvl.EntitiesOf(levels.EntityPlayer); len(players) > 0 {
			playerLevel, playerSpawn = lvl, players[0]
			break
		}
	}
	if playerLevel == nil {
		return ErrNoPlayerSpawn
	}

	player, err := entity.NewPlayer(s.world, entity.Spawn{
		Prefab:   playerSpawn.Field("prefab", ""),
		Position: playerLevel.WorldPos(playerSpawn.PX),
		LevelID:  playerLevel.Identifier,
		Space:    playerLevel.Space(),
	})
	if err != nil {
		return fmt.Errorf("sim: %w", err)
	}
	s.player = player

	for i := range s.project.Levels {
		lvl := &s.project.Levels[i]
		for _, inst := range lvl.EntitiesOf(levels.EntityEnemy) {
			e, err := entity.NewEnemy(s.world, entity.Spawn{
				Prefab:   inst.Field("prefab", ""),
				Position: lvl.WorldPos(inst.PX),
				LevelID:  lvl.Identifier,
				Space:    lvl.Space(),
			}, player)
			if err != nil {
				return fmt.Errorf("sim: level %s: %w", lvl.Identifier, err)
			}
			s.log.Debug("sim: spawned enemy", "entity", e, "level", lvl.Identifier)
		}
	}
	return nil
}

// Tick advances the world by dt seconds and returns the events it produced.
func (s *Simulation) Tick(dt float64) []ecs.Event {
	s.clock.Delta = dt
	s.sched.Update(s.world)
	return s.world.Events().Drain()
}

func (s *Simulation) World() *ecs.World {
	return s.world
}

func (s *Simulation) Ticks() uint64 {
	return s.clock.Tick
}

// PlayerEntity returns the followed entity. It may be stale after
// RemovePlayer.
func (s *Simulation) PlayerEntity() ecs.Entity {
	return s.player
}

// Player returns the player position. ok is false once it was removed.
func (s *Simulation) Player() (nav.Vec, bool) {
	t, ok := ecs.Get(s.world, s.player, component.TransformComponent.Kind())
	if !ok {
		return nav.Vec{}, false
	}
	return t.Vec(), true
}

// PlayerSpeed is the top speed from the player prefab.
func (s *Simulation) PlayerSpeed() float64 {
	if m, ok := ecs.Get(s.world, s.player, component.MoverComponent.Kind()); ok {
		return m.Speed
	}
	return 0
}

// SetTargetVelocity sets the player velocity in world units per second.
func (s *Simulation) SetTargetVelocity(vx, vy float64) {
	if v, ok := ecs.Get(s.world, s.player, component.VelocityComponent.Kind()); ok {
		v.X, v.Y = vx, vy
	}
}

// RemovePlayer despawns the followed entity. Agents drop to Idle on their
// next tick.
func (s *Simulation) RemovePlayer() bool {
	return ecs.DestroyEntity(s.world, s.player)
}

// ActiveGrid returns the obstacle grid of the level the player is in.
func (s *Simulation) ActiveGrid() (string, *nav.Grid, nav.GridSpace, bool) {
	_, lvl, ok := ecs.First(s.world, component.ActiveLevelComponent.Kind())
	if !ok || !lvl.Ready() {
		if ok {
			return lvl.ID, nil, lvl.Space, false
		}
		return "", nil, nav.GridSpace{}, false
	}
	return lvl.ID, lvl.Grid, lvl.Space, true
}

// AgentView is a read-only snapshot of one agent.
type AgentView struct {
	Entity   ecs.Entity
	Level    string
	Position nav.Vec
	Anchor   nav.Cell
	State    ai.Kind
	Delta    nav.Vec
	Path     nav.Path
	NoRoute  bool
}

func (s *Simulation) Agents() []AgentView {
	var out []AgentView
	ecs.ForEach2(s.world, component.AIStateComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, st *component.AIState, t *component.Transform) {
		view := AgentView{Entity: e, Position: t.Vec(), State: st.Kind()}
		if lm, ok := ecs.Get(s.world, e, component.LevelMemberComponent.Kind()); ok {
			view.Level = lm.LevelID
		}
		if a, ok := ecs.Get(s.world, e, component.AnchorComponent.Kind()); ok {
			view.Anchor = a.Cell
		}
		if mv, ok := ecs.Get(s.world, e, component.MovementComponent.Kind()); ok {
			view.Delta = mv.Delta
			view.Path = append(nav.Path(nil), mv.Path...)
			view.NoRoute = mv.NoRoute
		}
		out = append(out, view)
	})
	return out
}
