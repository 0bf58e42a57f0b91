package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"golang.org/x/time/rate"

	"github.com/meridian-sim/tradewinds/internal/adapters/catalog"
	"github.com/meridian-sim/tradewinds/internal/adapters/persistence"
	"github.com/meridian-sim/tradewinds/internal/application/common"
	economyapp "github.com/meridian-sim/tradewinds/internal/application/economy"
	"github.com/meridian-sim/tradewinds/internal/domain/economy"
	"github.com/meridian-sim/tradewinds/internal/domain/shared"
	"github.com/meridian-sim/tradewinds/internal/infrastructure/config"
	"github.com/meridian-sim/tradewinds/internal/infrastructure/database"
	"github.com/meridian-sim/tradewinds/internal/infrastructure/pidfile"
)

func main() {
	configPath := flag.String("config", "", "Path to config file (empty = search default paths)")
	flag.Parse()

	fmt.Println("Tradewinds Daemon v0.1.0")
	fmt.Println("========================")

	fmt.Println("Loading configuration...")
	cfg := config.MustLoadConfig(*configPath)

	fmt.Printf("Acquiring PID file lock: %s\n", cfg.Daemon.PIDFile)
	pf := pidfile.New(cfg.Daemon.PIDFile)
	if err := pf.Acquire(); err != nil {
		log.Fatalf("Failed to acquire PID file lock: %v", err)
	}
	defer func() {
		if err := pf.Release(); err != nil {
			log.Printf("Warning: failed to release PID file: %v", err)
		}
	}()
	fmt.Println("PID file lock acquired")

	if err := run(cfg); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run(cfg *config.Config) error {
	// 1. Setup database connection
	fmt.Printf("Connecting to %s database...\n", cfg.Database.Type)
	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	fmt.Println("Database connected")

	// 2. Load the world definition documents
	fmt.Printf("Loading commodity catalogue from %s...\n", cfg.Simulation.CatalogPath)
	cat, err := catalog.LoadCatalog(cfg.Simulation.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalogue: %w", err)
	}
	fmt.Printf("Catalogue loaded (%d commodities, %d priced)\n", cat.Len(), len(cat.Priced()))

	fmt.Printf("Loading universe from %s...\n", cfg.Simulation.UniversePath)
	universe, err := catalog.LoadUniverse(cfg.Simulation.UniversePath, cat)
	if err != nil {
		return fmt.Errorf("failed to load universe: %w", err)
	}
	fmt.Printf("Universe loaded (%d systems)\n", len(universe.Systems()))

	// 3. Derive the price fields and solve the trade network
	econ := economy.New(universe, cat, nil)
	if err := econ.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize economy: %w", err)
	}
	fmt.Println("Economy initialized")

	// 4. Restore persisted observations
	repo := persistence.NewObservationRepository(db, shared.NewRealClock())
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := repo.LoadState(ctx, econ); err != nil {
		return fmt.Errorf("failed to restore observations: %w", err)
	}
	snap, err := repo.LatestSnapshot(ctx)
	switch {
	case err != nil:
		log.Printf("Warning: failed to read latest snapshot, starting at game time 0: %v", err)
	case snap != nil:
		econ.Advance(snap.GameTime - int64(econ.Now()))
		fmt.Printf("Observations restored (game time %d)\n", snap.GameTime)
	default:
		fmt.Println("No prior snapshot, starting at game time 0")
	}

	// 5. Register command and query handlers
	med := common.NewMediator()
	if err := economyapp.RegisterHandlers(med, econ); err != nil {
		return fmt.Errorf("failed to register handlers: %w", err)
	}

	fmt.Println("\n✓ Daemon is running")
	fmt.Println("Press Ctrl+C to stop")

	// 6. Run the simulation loop until a shutdown signal arrives
	if err := tick(ctx, cfg, econ, repo); err != nil {
		return err
	}

	// Final snapshot so no observations are lost on shutdown
	saveCtx, cancel := context.WithTimeout(context.Background(), cfg.Simulation.TickInterval)
	defer cancel()
	if err := repo.SaveState(saveCtx, econ); err != nil {
		return fmt.Errorf("failed to save final snapshot: %w", err)
	}

	fmt.Println("\nDaemon stopped")
	return nil
}

// tick advances the economy at the configured wall-clock pace, snapshotting
// observations every SnapshotEvery ticks.
func tick(ctx context.Context, cfg *config.Config, econ *economy.Economy, repo *persistence.ObservationRepositoryGORM) error {
	limiter := rate.NewLimiter(rate.Every(cfg.Simulation.TickInterval), 1)
	ticks := 0

	for {
		if err := limiter.Wait(ctx); err != nil {
			// Context cancelled, shut down cleanly
			return nil
		}

		econ.Tick(cfg.Simulation.TimeStep)
		ticks++

		if ticks%cfg.Simulation.SnapshotEvery == 0 {
			if err := repo.SaveState(ctx, econ); err != nil {
				log.Printf("Warning: snapshot failed at game time %d: %v", econ.Now(), err)
			}
		}
	}
}
