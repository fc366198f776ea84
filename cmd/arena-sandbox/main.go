package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/arena/audio"
	"github.com/lixenwraith/arena/content"
	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/engine"
	"github.com/lixenwraith/arena/event"
	"github.com/lixenwraith/arena/input"
	"github.com/lixenwraith/arena/parameter"
	"github.com/lixenwraith/arena/render"
	"github.com/lixenwraith/arena/service"
	"github.com/lixenwraith/arena/system"
)

var (
	debugFlag   = flag.Bool("debug", false, "Write logs to logs/arena.log")
	traceFlag   = flag.String("trace", "", "Log dispatched events: 'all' or a comma-separated list of event names")
	contentFlag = flag.String("content", content.DefaultDir, "Directory of YAML content overriding the built-in abilities")
	muteFlag    = flag.Bool("mute", false, "Start with sound muted")
	holdFlag    = flag.Int("hold", 6, "Ticks a key stays held after its last repeat")
	metricsFlag = flag.Bool("metrics", true, "Show the status metrics column")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	contentSvc := content.NewService(*contentFlag)
	audioCfg := audio.LoadConfig()
	cues := audio.NewCuePlayer(audioCfg)
	if *muteFlag {
		cues.SetMuted(true)
	}

	hub := service.NewHub()
	for _, svc := range []service.Service{contentSvc, cues} {
		if err := hub.Register(svc); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}
	if err := hub.InitAll(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	catalog := contentSvc.Catalog()
	cfg, err := system.ArenaFromContent(catalog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid arena layout: %v\n", err)
		os.Exit(1)
	}
	arena := system.NewArena(catalog, cfg)
	world := arena.World

	trace, err := parseTrace(*traceFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if trace != nil {
		world.Observe(event.SinkFunc(func(ev event.GameEvent) {
			if trace[ev.Type] {
				log.Printf("[%d] %s %+v", ev.Frame, event.GetEventName(ev.Type), ev.Payload)
			}
		}))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashCleanup(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	defer screen.Fini()

	if err := hub.StartAll(); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start services: %v\n", err)
		os.Exit(1)
	}
	defer hub.StopAll()
	world.Observe(cues)

	// Key events arrive on the poll goroutine, samples are taken on the scheduler goroutine
	var sampleMu sync.Mutex
	sampler := input.NewSampler(input.DefaultKeyTable(), cfg.Players, *holdFlag)
	sample := func() {
		sampleMu.Lock()
		defer sampleMu.Unlock()
		for i := range world.Resources.Input.Players {
			world.Resources.Input.Players[i] = sampler.Sample(i)
		}
	}

	scheduler, ticks := engine.NewClockScheduler(world, parameter.TickInterval, sample)
	scheduler.Start()
	defer scheduler.Stop()

	orchestrator := render.NewOrchestrator(screen)
	orchestrator.Register(render.NewFieldRenderer(), render.PriorityField)
	orchestrator.Register(render.NewEntitiesRenderer(), render.PriorityEntities)
	status := render.NewStatusRenderer()
	status.ShowMetrics = *metricsFlag
	orchestrator.Register(status, render.PriorityUI)

	events := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	dirty := true
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				dirty = true
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return
				}
				if ev.Key() != tcell.KeyRune {
					continue
				}
				sampleMu.Lock()
				intent := sampler.Key(ev.Rune())
				sampleMu.Unlock()

				switch intent {
				case input.IntentQuit:
					return
				case input.IntentPause:
					paused := scheduler.TogglePause()
					log.Printf("Paused: %v", paused)
				case input.IntentToggleMute:
					cues.ToggleMute()
				case input.IntentReset:
					scheduler.RequestReset()
				}
				dirty = true
			}

		case <-ticks:
			dirty = true

		case <-frameTicker.C:
			if dirty {
				orchestrator.RenderFrame(world, scheduler.IsPaused(), cues.IsMuted())
				dirty = false
			}
		}
	}
}

// parseTrace resolves the -trace flag into a set of event types, nil when tracing is off
func parseTrace(spec string) (map[event.EventType]bool, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, nil
	}
	names := strings.Split(spec, ",")
	if spec == "all" {
		names = event.EventNames()
	}

	set := make(map[event.EventType]bool, len(names))
	for _, name := range names {
		et, ok := event.GetEventType(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("unknown event %q, known: %s", name, strings.Join(event.EventNames(), ", "))
		}
		set[et] = true
	}
	return set, nil
}
