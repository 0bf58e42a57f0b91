package economyapp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-sim/tradewinds/internal/application/common"
	economyapp "github.com/meridian-sim/tradewinds/internal/application/economy"
	"github.com/meridian-sim/tradewinds/internal/application/economy/commands"
	"github.com/meridian-sim/tradewinds/internal/application/economy/queries"
	"github.com/meridian-sim/tradewinds/test/helpers"
)

func newMediator(t *testing.T) common.Mediator {
	t.Helper()
	econ := helpers.NewTestEconomy(t)
	econ.Tick(5_000_000)

	med := common.NewMediator()
	require.NoError(t, economyapp.RegisterHandlers(med, econ))
	return med
}

func TestGetPriceQuery(t *testing.T) {
	med := newMediator(t)

	resp, err := med.Send(context.Background(), &queries.GetPriceQuery{
		System: "Alpha", Planet: "Haven", Commodity: "Food",
	})
	require.NoError(t, err)

	price := resp.(*queries.GetPriceResponse)
	assert.True(t, price.Found)
	assert.Greater(t, price.Price, int64(0))
}

func TestGetPriceQuery_UnpricedGoodIsANeutralMiss(t *testing.T) {
	med := newMediator(t)

	resp, err := med.Send(context.Background(), &queries.GetPriceQuery{
		System: "Alpha", Planet: "Haven", Commodity: "Salvage",
	})
	require.NoError(t, err)

	price := resp.(*queries.GetPriceResponse)
	assert.False(t, price.Found)
	assert.Zero(t, price.Price)
}

func TestGetPriceQuery_UnknownNamesFail(t *testing.T) {
	med := newMediator(t)

	_, err := med.Send(context.Background(), &queries.GetPriceQuery{
		System: "Nowhere", Planet: "Haven", Commodity: "Food",
	})
	assert.Error(t, err)

	_, err = med.Send(context.Background(), &queries.GetPriceQuery{
		System: "Alpha", Planet: "Haven", Commodity: "Unobtainium",
	})
	assert.Error(t, err)
}

func TestGetPriceAtTimeQuery_IsDeterministic(t *testing.T) {
	med := newMediator(t)

	q := &queries.GetPriceAtTimeQuery{
		System: "Alpha", Planet: "Haven", Commodity: "Food", Time: 42_000_000,
	}
	first, err := med.Send(context.Background(), q)
	require.NoError(t, err)
	second, err := med.Send(context.Background(), q)
	require.NoError(t, err)

	assert.Equal(t, first.(*queries.GetPriceResponse).Price, second.(*queries.GetPriceResponse).Price)
}

func TestRecordObservationCommand_FeedsAverages(t *testing.T) {
	med := newMediator(t)

	// Before any observation the averages report nothing
	resp, err := med.Send(context.Background(), &queries.PlanetAverageQuery{
		System: "Alpha", Planet: "Haven", Commodity: "Food",
	})
	require.NoError(t, err)
	assert.False(t, resp.(*queries.AverageResponse).Found)

	_, err = med.Send(context.Background(), &commands.RecordObservationCommand{
		System: "Alpha", Planet: "Haven", Commodity: "Food",
	})
	require.NoError(t, err)

	resp, err = med.Send(context.Background(), &queries.PlanetAverageQuery{
		System: "Alpha", Planet: "Haven", Commodity: "Food",
	})
	require.NoError(t, err)

	avg := resp.(*queries.AverageResponse)
	assert.True(t, avg.Found)
	assert.Greater(t, avg.Mean, int64(0))
	assert.Zero(t, avg.StdDev)
}

func TestRecordObservationCommand_EmptyCommodityRecordsVisit(t *testing.T) {
	med := newMediator(t)

	_, err := med.Send(context.Background(), &commands.RecordObservationCommand{
		System: "Beta", Planet: "Drift",
	})
	require.NoError(t, err)

	for _, good := range []string{"Food", "Ore"} {
		resp, err := med.Send(context.Background(), &queries.PlanetAverageQuery{
			System: "Beta", Planet: "Drift", Commodity: good,
		})
		require.NoError(t, err)
		assert.True(t, resp.(*queries.AverageResponse).Found, good)
	}
}

func TestResetObservationsCommand(t *testing.T) {
	med := newMediator(t)

	_, err := med.Send(context.Background(), &commands.RecordObservationCommand{
		System: "Alpha", Planet: "Haven", Commodity: "Food",
	})
	require.NoError(t, err)

	_, err = med.Send(context.Background(), &commands.ResetObservationsCommand{})
	require.NoError(t, err)

	resp, err := med.Send(context.Background(), &queries.GalaxyAverageQuery{Commodity: "Food"})
	require.NoError(t, err)
	assert.False(t, resp.(*queries.AverageResponse).Found)
}

func TestQueueRefreshCommand(t *testing.T) {
	med := newMediator(t)

	resp, err := med.Send(context.Background(), &commands.QueueRefreshCommand{})
	require.NoError(t, err)
	assert.IsType(t, &commands.EconomyCommandResponse{}, resp)
}
