package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-sim/tradewinds/internal/adapters/persistence"
	"github.com/meridian-sim/tradewinds/internal/domain/shared"
	"github.com/meridian-sim/tradewinds/test/helpers"
)

func TestObservationRepository_RoundTrip(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewObservationRepository(db, nil)

	econ := helpers.NewTestEconomy(t)
	econ.Tick(5_000_000)

	alpha, _ := econ.Universe().FindSystem("Alpha")
	haven, _ := alpha.FindPlanet("Haven")
	food, _ := econ.Catalog().Get("Food")

	econ.RecordVisit(haven)
	food.LastPurchasePrice = 432

	wantMean, wantStd, ok := econ.PlanetAverage(food, haven)
	require.True(t, ok)

	// Act - Save, wipe in-memory state, Load
	require.NoError(t, repo.SaveState(context.Background(), econ))
	econ.ResetAllObservations()
	require.NoError(t, repo.LoadState(context.Background(), econ))

	// Assert
	mean, std, ok := econ.PlanetAverage(food, haven)
	require.True(t, ok)
	assert.Equal(t, wantMean, mean)
	assert.Equal(t, wantStd, std)
	assert.Equal(t, int64(432), food.LastPurchasePrice)
}

func TestObservationRepository_UnseenPairsAreNotPersisted(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewObservationRepository(db, nil)

	econ := helpers.NewTestEconomy(t)
	econ.Tick(5_000_000)

	alpha, _ := econ.Universe().FindSystem("Alpha")
	haven, _ := alpha.FindPlanet("Haven")
	food, _ := econ.Catalog().Get("Food")
	econ.RecordObservation(haven, food, econ.Now())

	require.NoError(t, repo.SaveState(context.Background(), econ))

	var count int64
	require.NoError(t, db.Model(&persistence.ObservationModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "only the observed pair gets a row")
}

func TestObservationRepository_SaveReplacesPreviousSnapshot(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewObservationRepository(db, nil)

	econ := helpers.NewTestEconomy(t)
	econ.Tick(5_000_000)

	alpha, _ := econ.Universe().FindSystem("Alpha")
	haven, _ := alpha.FindPlanet("Haven")
	econ.RecordVisit(haven)
	require.NoError(t, repo.SaveState(context.Background(), econ))

	// Second save with fewer observations must not leave stale rows behind
	econ.ResetAllObservations()
	require.NoError(t, repo.SaveState(context.Background(), econ))

	var count int64
	require.NoError(t, db.Model(&persistence.ObservationModel{}).Count(&count).Error)
	assert.Zero(t, count)

	var snapshots int64
	require.NoError(t, db.Model(&persistence.SaveSnapshotModel{}).Count(&snapshots).Error)
	assert.EqualValues(t, 1, snapshots)
}

func TestObservationRepository_LoadSkipsUnknownRows(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewObservationRepository(db, nil)

	// A row naming a system missing from the loaded universe, as after a
	// world edit between saves
	require.NoError(t, db.Create(&persistence.ObservationModel{
		SystemName: "Ghost", PlanetName: "Echo", CommodityName: "Food",
		Sum: 100, Sum2: 10000, Count: 1, UpdatedAt: 5_000_000,
	}).Error)

	econ := helpers.NewTestEconomy(t)
	require.NoError(t, repo.LoadState(context.Background(), econ))

	food, _ := econ.Catalog().Get("Food")
	_, _, ok := econ.GalaxyAverage(food)
	assert.False(t, ok)
}

func TestObservationRepository_LatestSnapshot(t *testing.T) {
	db := helpers.NewTestDB(t)
	clock := shared.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	repo := persistence.NewObservationRepository(db, clock)

	// No save yet
	snap, err := repo.LatestSnapshot(context.Background())
	require.NoError(t, err)
	assert.Nil(t, snap)

	econ := helpers.NewTestEconomy(t)
	econ.Tick(42_000_000)
	require.NoError(t, repo.SaveState(context.Background(), econ))

	snap, err = repo.LatestSnapshot(context.Background())
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.EqualValues(t, 42_000_000, snap.GameTime)
	assert.NotEmpty(t, snap.ID)
	assert.True(t, snap.CreatedAt.Equal(clock.CurrentTime))
}
