// Command modhost is a development host for compiled mods. It stands in
// for the game client: it loads a mod, backs the client services with a
// scripted game state, and drives a short lifecycle session so mod authors
// can see their output without launching the game. With MOD_WATCH=true the
// session reruns whenever the wasm file changes.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/fsnotify/fsnotify"

	"github.com/ugaris/modkit/host"
	"github.com/ugaris/modkit/hostfuncs"
)

type config struct {
	ModPath      string   `env:"MOD_PATH" envDefault:"demomod.wasm"`
	ManifestPath string   `env:"MOD_MANIFEST"`
	Frames       int      `env:"DEMO_FRAMES" envDefault:"3"`
	Commands     []string `env:"DEMO_COMMANDS" envSeparator:"," envDefault:"#hello,#stats,#overlay"`
	Watch        bool     `env:"MOD_WATCH"`
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		slog.Error("failed to parse environment", "error", err)
		os.Exit(1)
	}
	if len(os.Args) > 1 {
		cfg.ModPath = os.Args[1]
	}

	if cfg.ManifestPath != "" {
		raw, err := os.ReadFile(cfg.ManifestPath)
		if err != nil {
			slog.Error("failed to read manifest", "path", cfg.ManifestPath, "error", err)
			os.Exit(1)
		}
		manifest, err := host.NewLoader().LoadManifest(raw)
		if err != nil {
			slog.Error("invalid manifest", "error", err)
			os.Exit(1)
		}
		slog.Info("manifest loaded", "name", manifest.Name,
			"version", manifest.Version, "commands", manifest.Commands)
	}

	if err := runSession(cfg); err != nil {
		slog.Error("session failed", "error", err)
		os.Exit(1)
	}

	if cfg.Watch {
		if err := watchAndRerun(cfg); err != nil {
			slog.Error("watch failed", "error", err)
			os.Exit(1)
		}
	}
}

// runSession loads the mod and plays one scripted client session against
// it: version, init, gamestart, the configured commands, a few frames with
// a tick each, then exit.
func runSession(cfg config) error {
	ctx := context.Background()

	wasmBytes, err := os.ReadFile(cfg.ModPath)
	if err != nil {
		return err
	}

	svc := newDemoGameService()
	registry, err := hostfuncs.NewRegistry(
		hostfuncs.WithMiddleware(hostfuncs.PanicRecoveryMiddleware()),
		hostfuncs.WithBundle(hostfuncs.GameBundle(svc)),
	)
	if err != nil {
		return err
	}

	executor, err := host.NewExecutor(ctx, host.WithHostFunctions(registry))
	if err != nil {
		return err
	}
	defer executor.Close(ctx)

	mod, err := executor.LoadMod(ctx, wasmBytes)
	if err != nil {
		return err
	}

	version, err := mod.Version(ctx)
	if err != nil {
		return err
	}
	slog.Info("mod loaded", "version", version)

	if err := mod.Init(ctx); err != nil {
		return err
	}
	if err := mod.GameStart(ctx); err != nil {
		return err
	}

	for _, cmd := range cfg.Commands {
		consumed, err := mod.ClientCommand(ctx, cmd)
		if err != nil {
			return err
		}
		slog.Info("command dispatched", "cmd", cmd, "consumed", consumed)
	}

	for i := 0; i < cfg.Frames; i++ {
		if err := mod.Tick(ctx); err != nil {
			return err
		}
		if err := mod.Frame(ctx); err != nil {
			return err
		}
		svc.advance()
	}

	return mod.Exit(ctx)
}

// watchAndRerun replays the session whenever the mod binary is rewritten.
func watchAndRerun(cfg config) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(cfg.ModPath); err != nil {
		return err
	}
	slog.Info("watching mod for changes", "path", cfg.ModPath)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				slog.Info("mod changed, rerunning session", "event", event.Op.String())
				if err := runSession(cfg); err != nil {
					slog.Error("session failed", "error", err)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watcher error", "error", err)
		}
	}
}
