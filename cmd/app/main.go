package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tindwyr/crafthall/internal/bootstrap"
	"github.com/tindwyr/crafthall/internal/catalog"
	"github.com/tindwyr/crafthall/internal/config"
	"github.com/tindwyr/crafthall/internal/crafting"
	"github.com/tindwyr/crafthall/internal/event"
	"github.com/tindwyr/crafthall/internal/guild"
	"github.com/tindwyr/crafthall/internal/handler"
	"github.com/tindwyr/crafthall/internal/inventory"
	"github.com/tindwyr/crafthall/internal/persistence"
	"github.com/tindwyr/crafthall/internal/persistence/postgres"
	"github.com/tindwyr/crafthall/internal/recipebook"
	"github.com/tindwyr/crafthall/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	initLogger(cfg)

	recipes, err := catalog.LoadRecipeCatalog(cfg.RecipesPath())
	if err != nil {
		return err
	}
	skills, err := catalog.LoadSkillCatalog(cfg.SkillsPath())
	if err != nil {
		return err
	}
	slog.Info("Catalogs loaded", "recipes", recipes.Count(), "skills", len(skills.All()))

	bus := event.NewMemoryBus()
	bag := inventory.NewService(recipes, bus)
	book := recipebook.NewService(recipes, bus)
	crafter := crafting.NewService(recipes, skills, bus)
	guildSvc := guild.NewService(recipes, bag, bus)

	ctx := context.Background()

	var (
		store  persistence.Store
		pinger handler.Pinger
	)
	if cfg.UsePostgres() {
		pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer pool.Close()

		pgStore, err := postgres.NewStore(ctx, pool)
		if err != nil {
			return err
		}
		store = pgStore
		pinger = pool
	} else {
		store = persistence.NewFileStore(cfg.SavePath)
	}

	mgr := persistence.NewManager(store, recipes, bag, book)
	if err := mgr.Load(ctx); err != nil {
		return err
	}

	bootstrap.RegisterGameHandlers(bus, bag, book)
	bootstrap.RegisterAutosave(bus, mgr)

	srv := server.NewServer(server.Options{
		Port:    cfg.Port,
		APIKey:  cfg.APIKey,
		Recipes: recipes,
		Skills:  skills,
		Crafter: crafter,
		Bag:     bag,
		Book:    book,
		Guild:   guildSvc,
		Pinger:  pinger,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}

	// Final save so nothing since the last autosave is lost
	if err := mgr.Save(ctx); err != nil {
		slog.Error("Final save failed", "error", err)
	}
	return nil
}
