package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/energy-calculator/app"
	"github.com/lixenwraith/energy-calculator/audio"
	"github.com/lixenwraith/energy-calculator/config"
	"github.com/lixenwraith/energy-calculator/constants"
	"github.com/lixenwraith/energy-calculator/locale"
)

// cliFlags holds the command-line settings
type cliFlags struct {
	set     *flag.FlagSet
	config  string
	locale  string
	policy  string
	sound   bool
	debug   bool
	version bool
}

func newCLIFlags(fs *flag.FlagSet) *cliFlags {
	f := &cliFlags{set: fs}
	fs.StringVar(&f.config, "config", "", "Path to YAML config file (default $"+config.EnvConfigPath+")")
	fs.StringVar(&f.locale, "locale", "", "UI locale, e.g. en-US, de-DE (default from environment)")
	fs.StringVar(&f.policy, "policy", "", "Evaluation policy: bonus-first, dice-first")
	fs.BoolVar(&f.sound, "sound", false, "Enable audio cues")
	fs.BoolVar(&f.debug, "debug", false, "Write debug log to the log directory")
	fs.BoolVar(&f.version, "version", false, "Print version and exit")
	return f
}

func main() {
	flags := newCLIFlags(flag.CommandLine)
	flag.Parse()

	if flags.version {
		fmt.Printf("%s %s\n", constants.AppName, constants.Version)
		return
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	logDir = cfg.LogDir
	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("starting %s %s: policy=%s locale=%q sound=%v", constants.AppName, constants.Version, cfg.Policy, cfg.Locale, cfg.Sound)

	bundle := locale.MustLoadEmbedded()
	loc := bundle.Match(cfg.LocalePreferences()...)
	log.Printf("locale resolved to %s", loc)

	var player audio.Player = audio.Silent{}
	if cfg.Sound {
		sm := audio.NewSoundManager(cfg.Volume)
		if err := sm.Initialize(); err != nil {
			log.Printf("audio initialization failed: %v (continuing without audio)", err)
		} else {
			player = sm
			defer sm.Cleanup()
		}
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
	screen.EnableMouse()

	// Panic recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mENERGY-CALCULATOR CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	state := app.New(app.Options{
		Bundle:  bundle,
		Locale:  loc,
		Policy:  cfg.EvalPolicy(),
		Player:  player,
		Version: constants.Version,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, screen, state); err != nil && ctx.Err() == nil {
		log.Printf("run: %v", err)
	}
	log.Printf("exiting")
}

// loadConfig layers explicitly set flags over config.Load
func loadConfig(f *cliFlags) (config.Config, error) {
	cfg, err := config.Load(f.config)
	if err != nil {
		return config.Config{}, err
	}

	f.set.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "locale":
			cfg.Locale = f.locale
		case "policy":
			cfg.Policy = f.policy
		case "sound":
			cfg.Sound = f.sound
		case "debug":
			cfg.Debug = f.debug
		}
	})

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
