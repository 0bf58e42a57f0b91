package config

import "time"

// SimulationConfig holds the simulation loop and world data configuration
type SimulationConfig struct {
	// Paths to the world definition documents
	CatalogPath  string `mapstructure:"catalog_path" validate:"required"`
	UniversePath string `mapstructure:"universe_path" validate:"required"`

	// TickInterval is the wall-clock pacing of the simulation loop
	TickInterval time.Duration `mapstructure:"tick_interval" validate:"required"`

	// TimeStep is how many raw simulated time units each tick advances
	TimeStep int64 `mapstructure:"time_step" validate:"min=1"`

	// SnapshotEvery is how many ticks pass between observation snapshots
	SnapshotEvery int `mapstructure:"snapshot_every" validate:"min=1"`
}

// DaemonConfig holds daemon process configuration
type DaemonConfig struct {
	// PIDFile path for single-instance enforcement
	PIDFile string `mapstructure:"pid_file" validate:"required"`
}
