package main

import (
	"embed"
	"flag"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/coinhop/internal/application/game"
	"github.com/younwookim/coinhop/internal/application/replay"
	"github.com/younwookim/coinhop/internal/application/scene/playing"
	"github.com/younwookim/coinhop/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Replay a recording without a window (e.g., -replay replay.json)")
	traceFlag := flag.String("trace", "", "Write a per-frame CSV trace of the replay")
	levelFlag := flag.String("level", "", "Stage name under configs/stages, a stage file, or \"default\"")
	configDir := flag.String("configdir", "", "Load configs from this directory and reload them on change")
	flag.Parse()

	loader, err := newLoader(*configDir)
	if err != nil {
		log.Fatalf("Failed to open configs: %v", err)
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		levelName := *levelFlag
		if levelName == "" {
			levelName = data.Stage
		}
		levelCfg, err := resolveLevel(loader, levelName)
		if err != nil {
			log.Fatalf("Failed to load stage: %v", err)
		}
		if err := replayToFile(cfg, levelCfg, data, *traceFlag); err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		return
	}

	levelCfg, err := resolveLevel(loader, *levelFlag)
	if err != nil {
		log.Fatalf("Failed to load stage: %v", err)
	}

	opts := playing.Options{RecordPath: *recordFlag}
	if *configDir != "" {
		watcher, err := config.NewWatcher(watchDirs(*configDir)...)
		if err != nil {
			log.Printf("Hot reload disabled: %v", err)
		} else {
			defer func() { _ = watcher.Close() }()
			opts.Changes = watcher.Poll
			opts.Reload = func() (*config.GameConfig, *config.LevelConfig, error) {
				cfg, err := loader.LoadAll()
				if err != nil {
					return nil, nil, err
				}
				levelCfg, err := resolveLevel(loader, *levelFlag)
				if err != nil {
					return nil, nil, err
				}
				return cfg, levelCfg, nil
			}
			log.Printf("Watching %s for changes", *configDir)
		}
	}

	scene, err := playing.New(cfg, levelCfg, opts)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	display := cfg.Physics.Display
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight, display.Framerate)

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Coin Hop")
	ebiten.SetTPS(display.Framerate)

	// Run game
	err = ebiten.RunGame(g)
	g.Close()
	if err != nil {
		log.Fatal(err)
	}
}

// newLoader returns a loader over dir, or over the embedded configs if dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// resolveLevel maps the -level flag to a stage.
// "" and "default" select the built-in level; names with an extension are
// files relative to the config dir; anything else is looked up in stages/.
func resolveLevel(loader *config.Loader, name string) (*config.LevelConfig, error) {
	switch {
	case name == "" || name == "default":
		return config.DefaultLevel(), nil
	case path.Ext(name) != "":
		return loader.LoadLevelFile(filepath.ToSlash(name))
	default:
		return loader.LoadLevel(name)
	}
}

func watchDirs(configDir string) []string {
	dirs := []string{configDir}
	stages := filepath.Join(configDir, "stages")
	if info, err := os.Stat(stages); err == nil && info.IsDir() {
		dirs = append(dirs, stages)
	}
	return dirs
}
