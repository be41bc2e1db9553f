package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/tinytelemetry/sidenav/internal/httpserver"
	"github.com/tinytelemetry/sidenav/internal/sidenav"
	"github.com/tinytelemetry/sidenav/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	var configPath string
	var httpAddr string
	var noTUI bool
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/sidenav/config.yml)")
	flag.StringVar(&httpAddr, "http", "", "also serve the navigation as HTML on this address")
	flag.BoolVar(&noTUI, "no-tui", false, "do not start the terminal UI (requires -http)")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("sidenav\n")
		fmt.Printf("  Version:    %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
		fmt.Printf("  Go version: %s\n", goVersion)
		return
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if httpAddr != "" {
		cfg.HTTPEnabled = true
		cfg.HTTPAddr = httpAddr
	}

	closeLog := configureRuntimeLogger(cfg.LogFile)
	err = run(cfg, noTUI)
	closeLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run starts the configured hosts and waits until the TUI exits or a
// signal arrives. Each host owns its own widget.
func run(cfg appConfig, noTUI bool) error {
	if noTUI && !cfg.HTTPEnabled {
		return errors.New("nothing to run: -no-tui needs -http or http-enabled in the config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	if cfg.HTTPEnabled {
		srv := httpserver.NewServer(cfg.HTTPAddr, sidenav.Default())
		if err := srv.Start(); err != nil {
			return fmt.Errorf("starting http host on %s: %w", cfg.HTTPAddr, err)
		}
		if noTUI {
			fmt.Printf("Serving side navigation on http://%s (Ctrl+C to stop)\n", cfg.HTTPAddr)
		}
		g.Go(func() error {
			<-gctx.Done()
			return srv.Stop()
		})
	}

	if !noTUI {
		g.Go(func() error {
			// Quitting the TUI shuts everything else down.
			defer stop()
			return runTUI(gctx, cfg)
		})
	}

	if err := g.Wait(); err != nil {
		log.Printf("sidenav: exited with error: %v", err)
		return err
	}
	return nil
}

func runTUI(ctx context.Context, cfg appConfig) error {
	theme, err := tui.ThemeByName(cfg.Skin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using default)\n", err)
	}

	m := tui.NewNavigationModel(sidenav.Default(), tui.Options{
		SidebarWidth:       cfg.SidebarWidth,
		Theme:              theme,
		ReverseScrollWheel: cfg.ReverseScrollWheel,
	})
	app := tui.NewApp(tui.NewNavigationPage(m))

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(app, opts...)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("TUI requires a real terminal (use -no-tui -http ADDR to serve HTML only)")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

// configureRuntimeLogger points the standard logger at logPath so log
// output never lands on the terminal the TUI is drawing.
func configureRuntimeLogger(logPath string) func() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if logPath == "" {
		log.SetOutput(os.Stderr)
		return func() {}
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.SetOutput(os.Stderr)
		return func() {}
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.SetOutput(os.Stderr)
		return func() {}
	}

	log.SetOutput(f)
	return func() {
		_ = f.Close()
	}
}
