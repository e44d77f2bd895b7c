package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/choria-io/fisk"
)

var (
	ctx     context.Context
	debug   bool
	cfgFile string
	Version = "development"
)

func main() {
	app := fisk.New("zipassets", "Loads textures from zip archives")
	app.Version(Version)

	app.Flag("debug", "Enable debug logging").UnNegatableBoolVar(&debug)
	app.Flag("config", "Configuration file to use").PlaceHolder("FILE").StringVar(&cfgFile)

	registerRunCommand(app)
	registerLsCommand(app)
	registerVerifyCommand(app)

	ctx, _ = signal.NotifyContext(context.Background(), os.Interrupt)

	app.MustParseWithUsage(os.Args[1:])
}
