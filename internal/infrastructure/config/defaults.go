package config

import "time"

// SetDefaults applies default values for any missing configuration
func SetDefaults(cfg *Config) {
	// Database defaults: local sqlite file, no server required
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Type == "sqlite" && cfg.Database.Path == "" {
		cfg.Database.Path = "tradewinds.db"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 25
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 5
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// Simulation defaults
	if cfg.Simulation.CatalogPath == "" {
		cfg.Simulation.CatalogPath = "data/commodities.yaml"
	}
	if cfg.Simulation.UniversePath == "" {
		cfg.Simulation.UniversePath = "data/universe.yaml"
	}
	if cfg.Simulation.TickInterval == 0 {
		cfg.Simulation.TickInterval = time.Second
	}
	if cfg.Simulation.TimeStep == 0 {
		// One tick is a tenth of a standard time period.
		cfg.Simulation.TimeStep = 1e6
	}
	if cfg.Simulation.SnapshotEvery == 0 {
		cfg.Simulation.SnapshotEvery = 300
	}

	// Daemon defaults
	if cfg.Daemon.PIDFile == "" {
		cfg.Daemon.PIDFile = "/tmp/tradewinds-daemon.pid"
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}
}
