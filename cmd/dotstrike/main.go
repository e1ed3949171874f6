package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/dotstrike/audio"
	"github.com/lixenwraith/dotstrike/config"
	"github.com/lixenwraith/dotstrike/constants"
	"github.com/lixenwraith/dotstrike/core"
	"github.com/lixenwraith/dotstrike/engine"
	"github.com/lixenwraith/dotstrike/event"
	"github.com/lixenwraith/dotstrike/httpapi"
	"github.com/lixenwraith/dotstrike/input"
	"github.com/lixenwraith/dotstrike/render"
	"github.com/lixenwraith/dotstrike/status"
	"github.com/lixenwraith/dotstrike/store"
)

var (
	configFlag     = flag.String("config", "", "Path to a YAML config file")
	difficultyFlag = flag.Int("difficulty", 0, "Difficulty 1-10")
	seedFlag       = flag.Int64("seed", 0, "Random seed (0 = time based)")
	debugFlag      = flag.Bool("debug", false, "Write logs to the log directory")
	httpFlag       = flag.String("http", "", "Serve the scoreboard API on this address")
	storeFlag      = flag.String("store", "", "Score store backend: memory, file, sqlite")
	storePathFlag  = flag.String("store-path", "", "Score store file path")
)

func main() {
	// Panic Recovery: terminal is restored through the crash reset hook
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	level, _ := cfg.LogLevel()
	logger, logFile := setupLogging(cfg.Log.Debug, cfg.Log.Dir, level)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg, logger); err != nil {
		logger.Error().Err(err).Msg("exit with error")
		fmt.Fprintf(os.Stderr, "dotstrike: %v\n", err)
		os.Exit(1)
	}
}

// applyFlags overrides configuration with explicitly set command-line flags
func applyFlags(cfg *config.Config) error {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "difficulty":
			cfg.Difficulty = *difficultyFlag
		case "seed":
			cfg.Seed = *seedFlag
		case "debug":
			cfg.Log.Debug = *debugFlag
		case "http":
			cfg.HTTP.Addr = *httpFlag
		case "store":
			cfg.Store.Backend = *storeFlag
		case "store-path":
			cfg.Store.Path = *storePathFlag
		}
	})
	return cfg.Validate()
}

func run(cfg *config.Config, logger zerolog.Logger) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info().Int64("seed", seed).Int("difficulty", cfg.Difficulty).Str("store", cfg.Store.Backend).Msg("starting")

	// Scores
	st, err := store.Open(cfg.Store.Backend, cfg.Store.Path, logger)
	if err != nil {
		return fmt.Errorf("open score store: %w", err)
	}
	defer st.Close()
	scores := store.NewScoreboard(st, logger)

	// Terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashReset(screen.Fini)
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseButtonEvents)
	screen.HideCursor()
	screen.Clear()

	clock := engine.NewMonotonicTimeProvider()
	sched := engine.NewLoopScheduler(clock)
	router := event.NewRouter()
	metrics := status.NewRegistry()

	renderer := render.NewTerminalRenderer(screen, clock, rand.New(rand.NewSource(seed+1)))
	router.Register(renderer)

	// Audio is optional; the game runs silently when the device cannot be opened
	audioCfg, err := cfg.AudioSettings()
	if err != nil {
		logger.Warn().Err(err).Msg("audio settings")
	}
	sounds := audio.NewSoundManager(audioCfg, logger)
	if err := sounds.Initialize(); err != nil {
		logger.Warn().Err(err).Msg("audio unavailable, continuing without sound")
	} else {
		defer sounds.Cleanup()
	}
	if sounds.Initialized() {
		router.Register(sounds)
	}
	renderer.SetAudioState(sounds.Initialized(), sounds.Muted())

	area, prompt := renderer.Resize()
	game := engine.NewGame(engine.GameConfig{
		Area:       area,
		Difficulty: cfg.Difficulty,
		Rand:       rand.New(rand.NewSource(seed)),
		Logger:     logger,
		Metrics:    metrics,
	}, sched, clock, router, scores)
	game.SetBoxLocator(renderer)
	game.Resize(area, prompt)

	ctx := context.Background()
	initCtx, cancel := context.WithTimeout(ctx, constants.PersistTimeout)
	game.Init(initCtx)
	cancel()

	// Scoreboard API
	var api *httpapi.Server
	if cfg.HTTP.Addr != "" {
		api = httpapi.New(scores, metrics, logger)
		core.Go(func() {
			if err := api.Start(cfg.HTTP.Addr); err != nil {
				logger.Error().Err(err).Msg("scoreboard API stopped")
			}
		})
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			defer cancel()
			_ = api.Shutdown(shutdownCtx)
		}()
	}

	// Input polling; PollEvent returns nil after Fini
	events := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	machine := input.NewMachine(nil)
	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
			intent := machine.Process(ev)
			if intent == nil {
				continue
			}
			if !dispatch(intent, game, renderer, sounds) {
				logger.Info().Int64("frames", sched.FrameNumber()).Msg("quit")
				return nil
			}

		case <-frameTicker.C:
			sched.Advance()
			router.SetFrame(sched.FrameNumber() + 1)
			sched.RunFrame()
			metrics.Ints.Get(status.KeyFrames).Store(sched.FrameNumber())
			renderer.RenderFrame()
		}
	}
}

// dispatch applies one intent; false means quit
func dispatch(intent *input.Intent, game *engine.Game, renderer *render.TerminalRenderer, sounds *audio.SoundManager) bool {
	switch intent.Type {
	case input.IntentQuit:
		return false
	case input.IntentStart:
		game.Start()
	case input.IntentEnd:
		game.End()
	case input.IntentPause:
		game.TogglePause()
	case input.IntentDifficultyUp:
		game.SetDifficulty(game.Difficulty() + 1)
	case input.IntentDifficultyDown:
		game.SetDifficulty(game.Difficulty() - 1)
	case input.IntentDifficultySet:
		game.SetDifficulty(intent.Value)
	case input.IntentClick:
		game.Click(renderer.PointerAt(intent.X, intent.Y))
	case input.IntentToggleMute:
		if sounds.Initialized() {
			sounds.ToggleMute()
		}
		renderer.SetAudioState(sounds.Initialized(), sounds.Muted())
	case input.IntentResize:
		area, prompt := renderer.Resize()
		game.Resize(area, prompt)
	}
	return true
}
