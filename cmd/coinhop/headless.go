package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/younwookim/coinhop/internal/application/replay"
	"github.com/younwookim/coinhop/internal/application/system"
	"github.com/younwookim/coinhop/internal/application/trace"
	"github.com/younwookim/coinhop/internal/infrastructure/config"
)

// headlessResult is the outcome of a replayed round
type headlessResult struct {
	Frames  int
	Outcome system.StepResult
	Summary trace.Summary
}

// runHeadless replays recorded input against a fresh world until the
// recording ends or the round is over. traceOut may be nil.
func runHeadless(cfg *config.GameConfig, levelCfg *config.LevelConfig, data *replay.ReplayData, traceOut io.Writer) (headlessResult, error) {
	level, err := system.LoadLevel(levelCfg, cfg)
	if err != nil {
		return headlessResult{}, err
	}
	player := system.NewPlayerAt(level, cfg.Entities.Player)
	world := system.NewWorld(level, player, system.NewPlayerController(cfg.Physics))

	framerate := cfg.Physics.Display.Framerate
	if framerate <= 0 {
		framerate = 60
	}
	dt := 1.0 / float64(framerate)

	var tw *trace.Writer
	if traceOut != nil {
		tw = trace.NewWriter(traceOut, 256)
	}

	var records []trace.Record
	var res system.StepResult
	replayer := replay.NewReplayer(*data)
	for {
		input, ok := replayer.GetInput()
		if !ok {
			break
		}

		res = world.Step(dt, input)

		rec := trace.Capture(world)
		records = append(records, rec)
		if tw != nil {
			if err := tw.Write(rec); err != nil {
				return headlessResult{}, err
			}
		}

		if res.GameOver || res.LevelComplete {
			break
		}
	}

	if tw != nil {
		if err := tw.Flush(); err != nil {
			return headlessResult{}, err
		}
	}

	return headlessResult{
		Frames:  world.Frame,
		Outcome: res,
		Summary: trace.Summarize(records),
	}, nil
}

// replayToFile runs a headless replay, optionally tracing to tracePath, and logs the outcome
func replayToFile(cfg *config.GameConfig, levelCfg *config.LevelConfig, data *replay.ReplayData, tracePath string) error {
	var out io.Writer
	if tracePath != "" {
		f, err := os.Create(tracePath)
		if err != nil {
			return fmt.Errorf("failed to create trace: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	result, err := runHeadless(cfg, levelCfg, data, out)
	if err != nil {
		return err
	}

	outcome := "recording ended"
	switch {
	case result.Outcome.GameOver:
		outcome = "game over"
	case result.Outcome.LevelComplete:
		outcome = "level complete"
	}
	log.Printf("Replay of %s: %s after %d frames", levelCfg.ID, outcome, result.Frames)
	log.Printf("Summary: %s", result.Summary)
	if tracePath != "" {
		log.Printf("Trace written: %s", tracePath)
	}
	return nil
}
