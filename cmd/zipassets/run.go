package main

import (
	"errors"

	"github.com/choria-io/fisk"

	"github.com/gregoryfmartin/zipassets/internal/app"
	"github.com/gregoryfmartin/zipassets/render"
)

type runCommand struct {
	archive     string
	frames      int
	snapshot    string
	sprite      string
	index       int
	metricsFile string
}

func registerRunCommand(cli *fisk.Application) {
	cmd := &runCommand{}

	run := cli.Command("run", "Loads an archive and draws a texture off screen, until interrupted unless --frames is set").Default().Action(cmd.runAction)
	run.Arg("archive", "Archive to load").StringVar(&cmd.archive)
	run.Flag("frames", "Close the window after this many frames, 0 runs until interrupted").Default("-1").IntVar(&cmd.frames)
	run.Flag("snapshot", "Save the last frame as a PNG").PlaceHolder("PATH").StringVar(&cmd.snapshot)
	run.Flag("sprite", "Name of the texture to draw").StringVar(&cmd.sprite)
	run.Flag("index", "0-based index of the texture to draw").Default("-1").IntVar(&cmd.index)
	run.Flag("metrics-file", "Write Prometheus metrics to this file on exit").PlaceHolder("PATH").StringVar(&cmd.metricsFile)
}

func (c *runCommand) runAction(_ *fisk.ParseContext) (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if c.archive != "" {
		cfg.Archive = c.archive
	}
	if c.frames >= 0 {
		cfg.Window.Frames = c.frames
	}
	if c.snapshot != "" {
		cfg.Window.Snapshot = c.snapshot
	}
	if c.sprite != "" {
		cfg.Sprite.Name = c.sprite
	}
	if c.index >= 0 {
		cfg.Sprite.Name = ""
		cfg.Sprite.Index = c.index
	}
	if c.metricsFile != "" {
		cfg.MetricsFile = c.metricsFile
	}

	err = cfg.Validate()
	if err != nil {
		return err
	}

	log := cfg.NewLogger()

	win, err := render.NewHeadless(cfg.WindowConfig(),
		render.WithMaxFrames(cfg.Window.Frames),
		render.WithSnapshot(cfg.Window.Snapshot),
		render.WithLogger(log))
	if err != nil {
		return err
	}

	if cfg.RunsUntilInterrupted() {
		log.Info("Rendering until interrupted, press Ctrl-C to stop or set --frames")
	}

	a, err := app.New(cfg, win, app.WithLogger(log))
	if err != nil {
		return errors.Join(err, win.Destroy())
	}
	defer func() {
		err = errors.Join(err, a.Close())
	}()

	return a.Run(ctx)
}
