package entity

import (
	"fmt"
	"sort"

	"github.com/milk9111/npcnav/ai"
	"github.com/milk9111/npcnav/ecs"
	"github.com/milk9111/npcnav/ecs/component"
	"github.com/milk9111/npcnav/prefabs"
)

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag": addPlayerTag,
	"ai_tag":     addAITag,
	"transform":  addTransform,
	"pursuer":    addPursuer,
	"mover":      addMover,
	"body":       addBody,
}

var componentBuildOrder = []string{
	"player_tag",
	"ai_tag",
	"transform",
	"pursuer",
	"mover",
	"body",
}

// BuildEntity creates an entity from the components listed in a prefab.
// On any failure the half-built entity is destroyed.
func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, names[0])
	}

	return e, nil
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addAITag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.AITagComponent.Kind(), &component.AITag{})
}

type transformSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: spec.X, Y: spec.Y})
}

func addPursuer(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PursuerComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode pursuer spec: %w", err)
	}
	p, err := NewPursuer(ctx.PrefabPath, spec)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.PursuerComponent.Kind(), p)
}

// NewPursuer turns a decoded pursuer spec into a component, compiling its
// trigger tree.
func NewPursuer(prefab string, spec prefabs.PursuerComponentSpec) (*component.Pursuer, error) {
	spec = spec.WithDefaults()
	trigger, err := ai.CompileCondition(spec.Trigger)
	if err != nil {
		return nil, fmt.Errorf("compile trigger: %w", err)
	}
	return &component.Pursuer{
		Prefab:      prefab,
		FollowSpeed: spec.FollowSpeed,
		ReturnSpeed: spec.ReturnSpeed,
		FollowRange: spec.FollowRange,
		Trigger:     trigger,
	}, nil
}

func addMover(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.MoverComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode mover spec: %w", err)
	}
	spec = spec.WithDefaults()
	return ecs.Add(w, e, component.MoverComponent.Kind(), &component.Mover{Speed: spec.Speed})
}

func addBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.BodyComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode body spec: %w", err)
	}
	spec = spec.WithDefaults()
	return ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{Radius: spec.Radius})
}
