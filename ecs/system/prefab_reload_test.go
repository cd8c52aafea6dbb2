package system

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/npcnav/ai"
	"github.com/milk9111/npcnav/ecs"
	"github.com/milk9111/npcnav/ecs/component"
	"github.com/milk9111/npcnav/nav"
	"github.com/milk9111/npcnav/prefabs"
)

type stubSource struct {
	batches [][]string
}

func (s *stubSource) Poll() []string {
	if len(s.batches) == 0 {
		return nil
	}
	out := s.batches[0]
	s.batches = s.batches[1:]
	return out
}

func TestPrefabReloadSystem(t *testing.T) {
	dir := t.TempDir()
	old := prefabs.Dir
	prefabs.Dir = dir
	t.Cleanup(func() { prefabs.Dir = old })

	spec := "name: brute\ncomponents:\n  pursuer:\n    follow_speed: 9\n    follow_range: 1.5\n"
	if err := os.WriteFile(filepath.Join(dir, "brute.yaml"), []byte(spec), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("name: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	h := newHarness(t, 10, 10)
	target := h.spawnTarget(t, nav.Vec{X: 1.5, Y: 0.5})
	brute := h.spawnAgent(t, agentOpts{target: target, state: ai.Follow{Target: uint64(target), Speed: 2}})
	other := h.spawnAgent(t, agentOpts{target: target})
	bp, _ := ecs.Get(h.w, brute, component.PursuerComponent.Kind())
	bp.Prefab = "brute.yaml"
	op, _ := ecs.Get(h.w, other, component.PursuerComponent.Kind())
	op.Prefab = "enemy.yaml"

	src := &stubSource{batches: [][]string{{"broken.yaml", "brute.yaml"}}}
	sys := NewPrefabReloadSystem(src, nil)
	sys.Update(h.w)
	sys.Update(h.w)

	if bp.FollowSpeed != 9 || bp.ReturnSpeed != 9 || bp.FollowRange != 1.5 {
		t.Fatalf("brute not retuned: %+v", bp)
	}
	if bp.Trigger == nil {
		t.Fatalf("trigger should be compiled on reload")
	}
	if f, ok := h.state(t, brute).(ai.Follow); !ok || f.Speed != 9 {
		t.Fatalf("follow speed should track the new tuning, got %#v", h.state(t, brute))
	}
	if op.FollowSpeed != 2 {
		t.Fatalf("agents of other prefabs must keep their tuning: %+v", op)
	}
}
