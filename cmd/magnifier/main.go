package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/magnifier/audio"
	"github.com/lixenwraith/magnifier/config"
	"github.com/lixenwraith/magnifier/engine"
	"github.com/lixenwraith/magnifier/glyph"
	"github.com/lixenwraith/magnifier/input"
	"github.com/lixenwraith/magnifier/lens"
	"github.com/lixenwraith/magnifier/parameter"
	"github.com/lixenwraith/magnifier/render"
	"github.com/lixenwraith/magnifier/render/renderer"
	"github.com/lixenwraith/magnifier/terminal"
	"github.com/lixenwraith/magnifier/vmath"
)

var (
	configFlag      = flag.String("config", "", "TOML config file")
	headingFlag     = flag.String("heading", "", "Heading file: .html markup or plain text")
	themeFlag       = flag.String("theme", "", "CSS theme with :root custom properties")
	colorModeFlag   = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
	touchFlag       = flag.Bool("touch", false, "Touch mode: press, drag and release drive the lens")
	soundFlag       = flag.Bool("sound", false, "Click on every glyph change")
	debugFlag       = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	writeConfigFlag = flag.Bool("write-config", false, "Print the effective config as TOML and exit")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the loop crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mMAGNIFIER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: magnifier [flags] [heading text]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		reportFatal(os.Stderr, err, logFile)
		os.Exit(1)
	}
}

// flagSet reports whether name was given on the command line
func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	// Command line wins over the config file
	if flagSet("touch") {
		cfg.Input.Touch = *touchFlag
	}
	if flagSet("sound") {
		cfg.Audio.Enabled = *soundFlag
	}

	if *writeConfigFlag {
		return cfg.Write(os.Stdout)
	}

	heading, err := loadHeading(cfg, flag.Args(), *headingFlag)
	if err != nil {
		return err
	}
	th, err := loadTheme(*themeFlag)
	if err != nil {
		return err
	}
	colorMode, err := terminal.ParseColorMode(*colorModeFlag)
	if err != nil {
		return err
	}

	screen, err := terminal.New(colorMode)
	if err != nil {
		if errors.Is(err, terminal.ErrNotTerminal) {
			return fmt.Errorf("%w: run magnifier in an interactive terminal", err)
		}
		return err
	}
	defer screen.Close()
	log.Printf("screen ready, color mode %s", colorMode)

	clock := engine.NewTimeProvider()
	sched := engine.NewScheduler(clock)

	surface := glyph.NewSurface()
	index := glyph.NewIndex(surface, glyph.Options{
		MinHeight: 2*int(cfg.Lens.RadiusY) + 1,
		LineGap:   1,
		Touch:     cfg.Input.Touch,
	})
	w, h := screen.Size()
	index.Segment(heading, vmath.Area{Width: w, Height: h})
	start := clock.Now()
	log.Printf("heading %q from %s, %d units", heading.Text(), heading.Source, len(index.Units()))

	ctrl, err := lens.NewController(cfg.LensConfig(), sched, surface, index, screen)
	if err != nil {
		return err
	}

	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(cfg.Audio.Volume)
		if err := sm.Initialize(); err != nil {
			// Non-fatal, the lens runs silently
			log.Printf("audio initialization failed: %v", err)
		} else {
			ctrl.SetObserver(sm.GlyphChanged)
			defer sm.Cleanup()
		}
	}

	adapter, err := input.NewAdapter(ctrl, sched, input.Options{
		Touch:          cfg.Input.Touch,
		ResizeDebounce: cfg.Input.ResizeDebounce,
		Suspender:      screen,
		OnResize: func(int, int) {
			screen.Sync()
		},
	})
	if err != nil {
		return err
	}

	pal := render.NewPalette(th)
	orchestrator := render.NewRenderOrchestrator(screen.Screen, pal.Background)
	orchestrator.Register(renderer.NewHeadingRenderer(index, pal), render.PriorityHeading)
	orchestrator.Register(renderer.NewLensRenderer(ctrl, pal), render.PriorityLens)
	orchestrator.Register(renderer.NewContentRenderer(ctrl, pal), render.PriorityContent)

	eventChan := make(chan tcell.Event, parameter.EventChannelSize)
	// Input polling uses raw goroutine as it interacts directly with terminal
	go func() {
		defer func() {
			if r := recover(); r != nil {
				terminal.EmergencyReset(os.Stdout)
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			// Screen finalized
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(parameter.FrameInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			if mev, isMouse := ev.(*tcell.EventMouse); isMouse {
				screen.TrackPointer(mev.Position())
			}
			if !adapter.HandleEvent(ev) {
				log.Printf("quit after %d frames", sched.FrameCount())
				return nil
			}

		case <-frameTicker.C:
			// Timers and lens updates first, so the frame draws the latest hit test
			sched.RunFrame()
			now := clock.Now()
			ctrl.Presenter().Step(now)

			sw, sh := screen.Size()
			orchestrator.RenderFrame(render.RenderContext{
				Now:          now,
				Start:        start,
				Focused:      adapter.Focused(),
				ScreenWidth:  sw,
				ScreenHeight: sh,
			})
		}
	}
}
