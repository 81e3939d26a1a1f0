package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"strconv"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/lixenwraith/backdrop/app"
	"github.com/lixenwraith/backdrop/config"
	"github.com/lixenwraith/backdrop/terminal"
)

var (
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("141"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Underline(true)
)

var (
	configFlag   = flag.String("config", config.DefaultPath, "TOML configuration file")
	surfaceFlag  = flag.String("surface", "", "Surface: terminal, window, snapshot")
	fpsFlag      = flag.Int("fps", 0, "Frames per second (1-240)")
	seedFlag     = flag.Int64("seed", 0, "Scene seed, 0 seeds from the clock")
	dprFlag      = flag.Float64("dpr", 0, "Terminal supersampling pixel ratio")
	ambienceFlag = flag.Bool("ambience", false, "Play the ambient drone")
	outputFlag   = flag.String("o", "", "Snapshot output PNG")
	framesFlag   = flag.Int("frames", 0, "Snapshot frames to simulate")
	sizeFlag     = flag.String("size", "", "Snapshot size WxH")
	debugFlag    = flag.Bool("debug", false, "Write debug log to logs/")
)

// term is kept for the crash handler
var term terminal.Terminal

func main() {
	os.Exit(run())
}

// run returns the process exit code
func run() (code int) {
	// Panic Recovery: restore the terminal before printing the stack
	defer func() {
		if r := recover(); r != nil {
			if term != nil {
				term.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n%s\n", errStyle.Render(fmt.Sprintf("BACKDROP CRASHED: %v", r)))
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			code = 1
		}
	}()

	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		return report(err)
	}
	return execute(cfg)
}

// execute opens the debug log, runs the selected surface and closes the log before returning
func execute(cfg config.Config) int {
	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	switch cfg.Surface {
	case config.SurfaceSnapshot:
		path, err := app.RunSnapshot(cfg)
		if err != nil {
			return report(err)
		}
		fmt.Println(okStyle.Render("snapshot written") + " " + pathStyle.Render(path))

	case config.SurfaceWindow:
		if err := app.RunWindow(cfg); err != nil {
			return report(err)
		}

	default:
		if err := runTerminal(cfg); err != nil {
			return report(err)
		}
	}
	return 0
}

func runTerminal(cfg config.Config) error {
	t, err := terminal.New()
	if err != nil {
		return err
	}
	if err := t.Init(); err != nil {
		return err
	}
	term = t
	// Normal exit terminal cleanup
	defer t.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return app.RunTerminal(ctx, t, cfg)
}

// loadConfig layers explicitly set flags over the file and environment
func loadConfig() (config.Config, error) {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg, err := config.Load(*configFlag, set["config"])
	if err != nil {
		return cfg, err
	}

	if set["surface"] {
		cfg.Surface = *surfaceFlag
	}
	if set["fps"] {
		cfg.FPS = *fpsFlag
	}
	if set["seed"] {
		cfg.Seed = *seedFlag
	}
	if set["dpr"] {
		cfg.DevicePixelRatio = *dprFlag
	}
	if set["ambience"] {
		cfg.Ambience = *ambienceFlag
	}
	if set["debug"] {
		cfg.Debug = *debugFlag
	}
	if set["o"] {
		cfg.Snapshot.Output = *outputFlag
	}
	if set["frames"] {
		cfg.Snapshot.Frames = *framesFlag
	}
	if set["size"] {
		w, h, err := parseSize(*sizeFlag)
		if err != nil {
			return cfg, err
		}
		cfg.Snapshot.Width, cfg.Snapshot.Height = w, h
	}
	return cfg, cfg.Validate()
}

// parseSize reads "WxH"
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q: want WxH: %w", s, config.ErrInvalid)
	}
	w, errW := strconv.Atoi(ws)
	h, errH := strconv.Atoi(hs)
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("size %q: want positive WxH: %w", s, config.ErrInvalid)
	}
	return w, h, nil
}

// report prints err to stderr, records it in the debug log and returns the failure exit code
func report(err error) int {
	log.Printf("backdrop: %v", err)
	fmt.Fprintln(os.Stderr, errStyle.Render("backdrop:")+" "+err.Error())
	fmt.Fprintln(os.Stderr, dimStyle.Render("run with -h for usage"))
	return 1
}
