package persistence

import "time"

// ObservationModel represents the observations table: one row per
// (system, planet, commodity) the player has actually seen. Rows are written
// only when count > 0, keeping the snapshot sparse.
type ObservationModel struct {
	SystemName    string  `gorm:"column:system_name;primaryKey"`
	PlanetName    string  `gorm:"column:planet_name;primaryKey"`
	CommodityName string  `gorm:"column:commodity_name;primaryKey"`
	Sum           float64 `gorm:"column:sum;not null"`
	Sum2          float64 `gorm:"column:sum2;not null"`
	Count         int64   `gorm:"column:cnt;not null"`
	UpdatedAt     int64   `gorm:"column:updated_at;not null"` // simulated time, raw units
}

func (ObservationModel) TableName() string {
	return "observations"
}

// LastPurchaseModel represents the last_purchases table: commodities with a
// non-zero last purchase price.
type LastPurchaseModel struct {
	CommodityName string `gorm:"column:commodity_name;primaryKey"`
	Price         int64  `gorm:"column:price;not null"`
}

func (LastPurchaseModel) TableName() string {
	return "last_purchases"
}

// SaveSnapshotModel represents the save_snapshots table: one row per save,
// identifying the snapshot and the simulated time it was taken at.
type SaveSnapshotModel struct {
	ID        string    `gorm:"column:id;primaryKey"` // UUID
	GameTime  int64     `gorm:"column:game_time;not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

func (SaveSnapshotModel) TableName() string {
	return "save_snapshots"
}
