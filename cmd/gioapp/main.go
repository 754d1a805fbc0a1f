package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/esimov/gioapp"
	"github.com/esimov/gioapp/utils"
	"golang.org/x/term"
)

const HelpBanner = `
┌─┐┬┌─┐┌─┐┌─┐┌─┐
│ ┬││ │├─┤├─┘├─┘
└─┘┴└─┘┴ ┴┴  ┴

Application loop for Gio with persistent windows.
    Version: %s

`

// Version indicates the current build version.
var Version string

var (
	// Flags
	configFile    = flag.String("config", "", "YAML configuration file")
	tickDuration  = flag.Duration("tick", 0, "Minimum time between two updates")
	fpsUpdateTime = flag.Duration("fps", 0, "Frame rate measurement window")
	title         = flag.String("title", "", "Window title")
	width         = flag.Int("width", 0, "Window width")
	height        = flag.Int("height", 0, "Window height")
	verbose       = flag.Bool("v", false, "Verbose logging")
)

func main() {
	log.SetFlags(0)
	deco := utils.Decorator{Enabled: term.IsTerminal(int(os.Stderr.Fd()))}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := gioapp.DefaultConfig()
	if *configFile != "" {
		var err error
		cfg, err = gioapp.LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("%s %s",
				deco.Text("Failed to load the configuration:", utils.ErrorMessage),
				deco.Text(err.Error(), utils.DefaultMessage),
			)
		}
	}
	applyFlags(&cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatal(deco.Text(err.Error(), utils.ErrorMessage))
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	cfg.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	fmt.Fprintf(os.Stderr, "%s %s\n",
		deco.Text("⚡ GIOAPP", utils.StatusMessage),
		deco.Text(fmt.Sprintf("opening %q (%dx%d), press Esc to quit", cfg.Window.Title, cfg.Window.Width, cfg.Window.Height), utils.DefaultMessage),
	)

	gioapp.Run(newDemo(cfg.Logger, time.Now()), cfg)
}

// applyFlags overrides the configuration with the flags set on the command line.
func applyFlags(cfg *gioapp.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tick":
			cfg.TickDuration = *tickDuration
		case "fps":
			cfg.FPSUpdateTime = *fpsUpdateTime
		case "title":
			cfg.Window.Title = *title
		case "width":
			cfg.Window.Width = *width
		case "height":
			cfg.Window.Height = *height
		}
	})
}
