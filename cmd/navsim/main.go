package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/milk9111/npcnav/ecs/system"
	"github.com/milk9111/npcnav/levels"
	"github.com/milk9111/npcnav/nav"
	"github.com/milk9111/npcnav/prefabs"
	"github.com/milk9111/npcnav/sim"
)

// segment drives the player in one direction for a number of ticks.
type segment struct {
	dir   string
	ticks int
}

var directions = map[string]nav.Vec{
	"left":  {X: -1},
	"right": {X: 1},
	"up":    {Y: 1},
	"down":  {Y: -1},
	"stop":  {},
}

func parseRoute(s string) ([]segment, error) {
	var out []segment
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, count, ok := strings.Cut(part, ":")
		if !ok {
			count = "1"
		}
		n, err := strconv.Atoi(count)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("route %q: bad tick count", part)
		}
		if _, known := directions[name]; !known && name != "despawn" {
			return nil, fmt.Errorf("route %q: unknown direction", part)
		}
		out = append(out, segment{dir: name, ticks: n})
	}
	return out, nil
}

func main() {
	levelPath := flag.String("level", levels.DefaultProject, "level project (disk path or embedded name)")
	route := flag.String("route", "right:90,stop:60,left:120,stop:180,despawn", "player route as dir:ticks segments (left, right, up, down, stop, despawn)")
	ticks := flag.Int("ticks", 0, "stop after this many ticks (0 runs the whole route)")
	tps := flag.Int("tps", 60, "ticks per simulated second")
	physics := flag.Bool("physics", true, "block movement with wall collisions")
	watch := flag.Bool("watch", false, "hot reload prefabs from the prefabs/ directory")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg := config{
		level:   *levelPath,
		route:   *route,
		ticks:   *ticks,
		tps:     *tps,
		physics: *physics,
		watch:   *watch,
	}
	if err := run(logger, cfg); err != nil {
		log.Fatal(err)
	}
}

type config struct {
	level   string
	route   string
	ticks   int
	tps     int
	physics bool
	watch   bool
}

// run owns the prefab watcher, so every failure returns through it and the
// watcher is closed before the process exits.
func run(logger *slog.Logger, cfg config) error {
	if cfg.tps <= 0 {
		return fmt.Errorf("tps must be positive, got %d", cfg.tps)
	}
	segments, err := parseRoute(cfg.route)
	if err != nil {
		return err
	}

	project, err := levels.Load(cfg.level)
	if err != nil {
		return err
	}

	opts := sim.Options{Logger: logger, Physics: cfg.physics}
	if cfg.watch {
		watcher, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			return fmt.Errorf("watch prefabs: %w", err)
		}
		defer watcher.Close()
		opts.Prefabs = watcher
	}

	s, err := sim.New(project, opts)
	if err != nil {
		return err
	}

	dt := 1 / float64(cfg.tps)
	speed := s.PlayerSpeed()
	total := 0
	for _, seg := range segments {
		if seg.dir == "despawn" {
			s.SetTargetVelocity(0, 0)
			if s.RemovePlayer() {
				logger.Info("navsim: player removed", "tick", s.Ticks())
			}
		} else {
			v := directions[seg.dir].Scale(speed)
			s.SetTargetVelocity(v.X, v.Y)
		}
		for i := 0; i < seg.ticks; i++ {
			if cfg.ticks > 0 && total >= cfg.ticks {
				break
			}
			for _, evt := range s.Tick(dt) {
				logEvent(logger, evt.Data)
			}
			total++
		}
	}

	for _, a := range s.Agents() {
		fmt.Printf("agent %s level=%s state=%s pos=(%.1f,%.1f) anchor=%s\n",
			a.Entity, a.Level, a.State, a.Position.X, a.Position.Y, a.Anchor)
	}
	return nil
}

func logEvent(logger *slog.Logger, data any) {
	switch d := data.(type) {
	case system.BehaviorChanged:
		logger.Info("navsim: transition", "tick", d.Tick, "entity", d.Entity, "from", d.From, "to", d.To, "reason", d.Reason)
	case system.LevelChanged:
		if d.Err != nil {
			logger.Warn("navsim: level unusable", "level", d.To, "error", d.Err)
			return
		}
		logger.Info("navsim: level", "from", d.From, "to", d.To)
	}
}
