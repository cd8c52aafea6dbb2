package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/npcnav/levels"
	"github.com/milk9111/npcnav/prefabs"
	"github.com/milk9111/npcnav/sim"
)

func main() {
	levelPath := flag.String("level", levels.DefaultProject, "level project (disk path or embedded name)")
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

	if err := run(logger, *levelPath, *physics, *watch); err != nil {
		log.Fatal(err)
	}
}

// run owns every resource that needs closing, so errors return through it
// instead of exiting past its defers.
func run(logger *slog.Logger, levelPath string, physics, watch bool) error {
	project, err := levels.Load(levelPath)
	if err != nil {
		return err
	}

	opts := sim.Options{Logger: logger, Physics: physics}
	if watch {
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

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("npcnav")

	return ebiten.RunGame(NewGame(s))
}
