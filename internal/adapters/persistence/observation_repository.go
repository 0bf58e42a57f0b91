package persistence

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meridian-sim/tradewinds/internal/domain/economy"
	"github.com/meridian-sim/tradewinds/internal/domain/shared"
)

// ObservationRepositoryGORM persists the player's observed economy state
// using GORM. Each save replaces the previous snapshot in one transaction.
type ObservationRepositoryGORM struct {
	db    *gorm.DB
	clock shared.Clock
}

// NewObservationRepository creates a new GORM-based observation repository
func NewObservationRepository(db *gorm.DB, clock shared.Clock) *ObservationRepositoryGORM {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &ObservationRepositoryGORM{db: db, clock: clock}
}

// SaveState writes the sparse observation snapshot: only (asset, good) pairs
// the player has seen, only commodities with a recorded purchase.
func (r *ObservationRepositoryGORM) SaveState(ctx context.Context, econ *economy.Economy) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range []interface{}{&ObservationModel{}, &LastPurchaseModel{}, &SaveSnapshotModel{}} {
			if err := tx.Where("1 = 1").Delete(m).Error; err != nil {
				return fmt.Errorf("failed to clear previous snapshot: %w", err)
			}
		}

		snapshot := SaveSnapshotModel{
			ID:        uuid.NewString(),
			GameTime:  int64(econ.Now()),
			CreatedAt: r.clock.Now(),
		}
		if err := tx.Create(&snapshot).Error; err != nil {
			return fmt.Errorf("failed to write snapshot row: %w", err)
		}

		var rows []ObservationModel
		for _, sys := range econ.Universe().Systems() {
			for _, p := range sys.Planets {
				for _, c := range p.Commodities {
					f, ok := econ.Field(p, c)
					if !ok || f.Count == 0 {
						continue
					}
					rows = append(rows, ObservationModel{
						SystemName:    sys.Name,
						PlanetName:    p.Name,
						CommodityName: c.Name,
						Sum:           f.Sum,
						Sum2:          f.Sum2,
						Count:         f.Count,
						UpdatedAt:     int64(f.UpdatedAt),
					})
				}
			}
		}
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return fmt.Errorf("failed to write observations: %w", err)
			}
		}

		var purchases []LastPurchaseModel
		for _, c := range econ.Catalog().All() {
			if c.LastPurchasePrice > 0 {
				purchases = append(purchases, LastPurchaseModel{
					CommodityName: c.Name,
					Price:         c.LastPurchasePrice,
				})
			}
		}
		if len(purchases) > 0 {
			if err := tx.Create(&purchases).Error; err != nil {
				return fmt.Errorf("failed to write last purchases: %w", err)
			}
		}

		return nil
	})
}

// LoadState resets all observation state, then applies the rows present in
// the snapshot. Rows naming unknown systems, assets, or goods are reported
// and skipped; absent entries stay zero.
func (r *ObservationRepositoryGORM) LoadState(ctx context.Context, econ *economy.Economy) error {
	econ.ResetAllObservations()

	var rows []ObservationModel
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return fmt.Errorf("failed to read observations: %w", err)
	}
	for _, row := range rows {
		err := econ.RestoreObservation(
			row.SystemName, row.PlanetName, row.CommodityName,
			row.Sum, row.Sum2, row.Count, shared.GameTime(row.UpdatedAt),
		)
		if err != nil {
			log.Printf("persistence: skipping observation row: %v", err)
		}
	}

	var purchases []LastPurchaseModel
	if err := r.db.WithContext(ctx).Find(&purchases).Error; err != nil {
		return fmt.Errorf("failed to read last purchases: %w", err)
	}
	for _, row := range purchases {
		c, err := econ.Catalog().Get(row.CommodityName)
		if err != nil {
			log.Printf("persistence: skipping last purchase row: %v", err)
			continue
		}
		c.LastPurchasePrice = row.Price
	}

	return nil
}

// LatestSnapshot returns the stored snapshot row, or nil when no save exists
func (r *ObservationRepositoryGORM) LatestSnapshot(ctx context.Context) (*SaveSnapshotModel, error) {
	var snapshot SaveSnapshotModel
	err := r.db.WithContext(ctx).Order("created_at DESC").First(&snapshot).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot row: %w", err)
	}
	return &snapshot, nil
}
