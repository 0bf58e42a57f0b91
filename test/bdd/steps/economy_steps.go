package steps

import (
	"context"
	"errors"
	"fmt"

	"github.com/cucumber/godog"
	"gorm.io/gorm"

	"github.com/meridian-sim/tradewinds/internal/adapters/persistence"
	"github.com/meridian-sim/tradewinds/internal/domain/commodity"
	"github.com/meridian-sim/tradewinds/internal/domain/economy"
	"github.com/meridian-sim/tradewinds/internal/domain/galaxy"
	"github.com/meridian-sim/tradewinds/internal/domain/shared"
	"github.com/meridian-sim/tradewinds/internal/infrastructure/database"
)

type economyContext struct {
	economy *economy.Economy

	db   *gorm.DB
	repo *persistence.ObservationRepositoryGORM

	prices   []int64
	priceErr error
}

func (ec *economyContext) reset() {
	ec.economy = nil
	if ec.db != nil {
		database.Close(ec.db)
	}
	ec.db = nil
	ec.repo = nil
	ec.prices = nil
	ec.priceErr = nil
}

// World setup steps

func (ec *economyContext) theStandardTestGalaxyIsLoaded() error {
	cat := commodity.NewCatalog()

	food := commodity.New("Food", 500,
		map[string]float64{"agri": 1.2},
		map[string]float64{"Consortium": 0.9},
	)
	food.PopulationMod = -0.1
	ore := commodity.New("Ore", 800, nil, nil)
	ore.PopulationMod = 0.2
	salvage := commodity.New("Salvage", 0, nil, nil)

	for _, c := range []*commodity.Commodity{food, ore, salvage} {
		if err := cat.Add(c); err != nil {
			return err
		}
	}

	u := galaxy.NewUniverse()
	u.Standings.DeclareEnemies("Consortium", "Syndicate")

	alpha := &galaxy.StarSystem{Name: "Alpha", Radius: 15000, Faction: "Consortium"}
	beta := &galaxy.StarSystem{
		Name:             "Beta",
		Radius:           22000,
		NebulaDensity:    200,
		NebulaVolatility: 25,
		Interference:     300,
		Faction:          "Syndicate",
	}
	for _, s := range []*galaxy.StarSystem{alpha, beta} {
		if err := u.AddSystem(s); err != nil {
			return err
		}
	}
	alpha.AddPlanet(&galaxy.Planet{
		Name: "Haven", Class: "agri", Population: 2_000_000,
		PresenceRange: 10, Faction: "Consortium", Commodities: cat.All(),
	})
	beta.AddPlanet(&galaxy.Planet{
		Name: "Drift", Class: "industrial", Population: 450_000_000,
		PresenceRange: 4, Faction: "Syndicate", Commodities: cat.All(),
	})
	if err := u.AddJump(alpha, beta); err != nil {
		return err
	}

	ec.economy = economy.New(u, cat, nil)
	return ec.economy.Initialize()
}

func (ec *economyContext) theSimulationHasAdvancedToTime(t int64) error {
	ec.economy.Tick(t - int64(ec.economy.Now()))
	return nil
}

func (ec *economyContext) resolvePair(system, planet, good string) (*galaxy.Planet, *commodity.Commodity, error) {
	sys, err := ec.economy.Universe().FindSystem(system)
	if err != nil {
		return nil, nil, err
	}
	p, err := sys.FindPlanet(planet)
	if err != nil {
		return nil, nil, err
	}
	c, err := ec.economy.Catalog().Get(good)
	if err != nil {
		return nil, nil, err
	}
	return p, c, nil
}

// Price evaluation steps

func (ec *economyContext) iEvaluateThePriceAtTime(good, planet, system string, t int64) error {
	p, c, err := ec.resolvePair(system, planet, good)
	if err != nil {
		return err
	}
	price, err := ec.economy.PriceAtTime(c, p, shared.GameTime(t))
	if err != nil {
		return err
	}
	ec.prices = append(ec.prices, price)
	return nil
}

func (ec *economyContext) iRequestThePrice(good, planet, system string) error {
	p, c, err := ec.resolvePair(system, planet, good)
	if err != nil {
		ec.priceErr = err
		return nil
	}
	_, ec.priceErr = ec.economy.PriceNow(c, p)
	return nil
}

func (ec *economyContext) bothEvaluationsShouldYieldTheSamePrice() error {
	if len(ec.prices) < 2 {
		return fmt.Errorf("expected two evaluations, got %d", len(ec.prices))
	}
	if ec.prices[0] != ec.prices[1] {
		return fmt.Errorf("prices differ: %d vs %d", ec.prices[0], ec.prices[1])
	}
	return nil
}

func (ec *economyContext) theEvaluatedPriceShouldBePositive() error {
	if len(ec.prices) == 0 {
		return fmt.Errorf("no price evaluated")
	}
	last := ec.prices[len(ec.prices)-1]
	if last <= 0 {
		return fmt.Errorf("expected a positive price, got %d", last)
	}
	return nil
}

func (ec *economyContext) thePriceRequestShouldReportNotTracked() error {
	var miss *economy.ErrPriceNotTracked
	if !errors.As(ec.priceErr, &miss) {
		return fmt.Errorf("expected a not-tracked error, got %v", ec.priceErr)
	}
	return nil
}

func (ec *economyContext) thePriceRequestShouldFail() error {
	if ec.priceErr == nil {
		return fmt.Errorf("expected the price request to fail")
	}
	return nil
}

// Observation steps

func (ec *economyContext) thePlayerVisits(planet, system string) error {
	sys, err := ec.economy.Universe().FindSystem(system)
	if err != nil {
		return err
	}
	p, err := sys.FindPlanet(planet)
	if err != nil {
		return err
	}
	ec.economy.RecordVisit(p)
	return nil
}

func (ec *economyContext) thePlayerObserves(good, planet, system string) error {
	p, c, err := ec.resolvePair(system, planet, good)
	if err != nil {
		return err
	}
	ec.economy.RecordObservation(p, c, ec.economy.Now())
	return nil
}

func (ec *economyContext) observedStatisticsAvailability(good, planet, system, expectation string) error {
	p, c, err := ec.resolvePair(system, planet, good)
	if err != nil {
		return err
	}
	_, _, ok := ec.economy.PlanetAverage(c, p)
	want := expectation == "be"
	if ok != want {
		return fmt.Errorf("statistics for %s at %s: available=%v, expected %v", good, planet, ok, want)
	}
	return nil
}

func (ec *economyContext) theObservationCountShouldBe(good, planet, system string, want int64) error {
	p, c, err := ec.resolvePair(system, planet, good)
	if err != nil {
		return err
	}
	f, ok := ec.economy.Field(p, c)
	if !ok {
		return fmt.Errorf("%s is not tracked at %s", good, planet)
	}
	if f.Count != want {
		return fmt.Errorf("observation count is %d, expected %d", f.Count, want)
	}
	return nil
}

func (ec *economyContext) galaxyStatisticsAvailability(good, expectation string) error {
	c, err := ec.economy.Catalog().Get(good)
	if err != nil {
		return err
	}
	_, _, ok := ec.economy.GalaxyAverage(c)
	want := expectation == "be"
	if ok != want {
		return fmt.Errorf("galaxy statistics for %s: available=%v, expected %v", good, ok, want)
	}
	return nil
}

func (ec *economyContext) allObservationsAreReset() error {
	ec.economy.ResetAllObservations()
	return nil
}

// Persistence steps

func (ec *economyContext) ensureRepository() error {
	if ec.repo != nil {
		return nil
	}
	db, err := database.NewTestConnection()
	if err != nil {
		return err
	}
	ec.db = db
	ec.repo = persistence.NewObservationRepository(db, nil)
	return nil
}

func (ec *economyContext) theEconomyStateIsSaved() error {
	if err := ec.ensureRepository(); err != nil {
		return err
	}
	return ec.repo.SaveState(context.Background(), ec.economy)
}

func (ec *economyContext) theEconomyStateIsRestored() error {
	if err := ec.ensureRepository(); err != nil {
		return err
	}
	return ec.repo.LoadState(context.Background(), ec.economy)
}

// InitializeEconomyScenario registers the economy step definitions
func InitializeEconomyScenario(sc *godog.ScenarioContext) {
	ec := &economyContext{}

	sc.Before(func(ctx context.Context, scenario *godog.Scenario) (context.Context, error) {
		ec.reset()
		return ctx, nil
	})

	sc.Step(`^the standard test galaxy is loaded$`, ec.theStandardTestGalaxyIsLoaded)
	sc.Step(`^the simulation has advanced to time (\d+)$`, ec.theSimulationHasAdvancedToTime)

	sc.Step(`^I evaluate the price of "([^"]*)" at "([^"]*)" in "([^"]*)" at time (\d+)$`, ec.iEvaluateThePriceAtTime)
	sc.Step(`^I request the price of "([^"]*)" at "([^"]*)" in "([^"]*)"$`, ec.iRequestThePrice)
	sc.Step(`^both evaluations should yield the same price$`, ec.bothEvaluationsShouldYieldTheSamePrice)
	sc.Step(`^the evaluated price should be positive$`, ec.theEvaluatedPriceShouldBePositive)
	sc.Step(`^the price request should report the pair as not tracked$`, ec.thePriceRequestShouldReportNotTracked)
	sc.Step(`^the price request should fail$`, ec.thePriceRequestShouldFail)

	sc.Step(`^the player visits "([^"]*)" in "([^"]*)"$`, ec.thePlayerVisits)
	sc.Step(`^the player observes "([^"]*)" at "([^"]*)" in "([^"]*)"$`, ec.thePlayerObserves)
	sc.Step(`^the observed statistics for "([^"]*)" at "([^"]*)" in "([^"]*)" should (be|not be) available$`, ec.observedStatisticsAvailability)
	sc.Step(`^the observation count for "([^"]*)" at "([^"]*)" in "([^"]*)" should be (\d+)$`, ec.theObservationCountShouldBe)
	sc.Step(`^the galaxy statistics for "([^"]*)" should (be|not be) available$`, ec.galaxyStatisticsAvailability)
	sc.Step(`^all observations are reset$`, ec.allObservationsAreReset)

	sc.Step(`^the economy state is saved$`, ec.theEconomyStateIsSaved)
	sc.Step(`^the economy state is restored$`, ec.theEconomyStateIsRestored)
}
