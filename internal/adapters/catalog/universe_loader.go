package catalog

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/meridian-sim/tradewinds/internal/domain/commodity"
	"github.com/meridian-sim/tradewinds/internal/domain/galaxy"
)

// LoadUniverse reads the universe document and resolves its commodity
// references against the catalogue. Systems are registered before jump routes
// so forward references work; unknown jump targets and unknown commodities
// are reported and skipped.
func LoadUniverse(path string, cat *commodity.Catalog) (*galaxy.Universe, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read universe: %w", err)
	}

	var doc universeDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("universe %s is not valid YAML: %w", path, err)
	}

	u := galaxy.NewUniverse()

	for _, f := range doc.Factions {
		if err := validate.Struct(f); err != nil {
			log.Printf("universe: skipping faction: %v", err)
			continue
		}
		for _, ally := range f.Allies {
			u.Standings.DeclareAllies(f.Name, ally)
		}
		for _, enemy := range f.Enemies {
			u.Standings.DeclareEnemies(f.Name, enemy)
		}
	}

	for i, sd := range doc.Systems {
		if err := validate.Struct(sd); err != nil {
			log.Printf("universe: skipping system entry %d: %v", i, err)
			continue
		}
		sys := &galaxy.StarSystem{
			Name:             sd.Name,
			Radius:           sd.Radius,
			NebulaDensity:    sd.NebulaDensity,
			NebulaVolatility: sd.NebulaVolatility,
			Interference:     sd.Interference,
			Faction:          sd.Faction,
		}
		if err := u.AddSystem(sys); err != nil {
			log.Printf("universe: skipping system entry %d: %v", i, err)
			continue
		}
		for _, pd := range sd.Planets {
			if err := validate.Struct(pd); err != nil {
				log.Printf("universe: skipping planet in %q: %v", sd.Name, err)
				continue
			}
			p := &galaxy.Planet{
				Name:          pd.Name,
				Class:         pd.Class,
				Population:    pd.Population,
				PresenceRange: pd.PresenceRange,
				Faction:       pd.Faction,
			}
			for _, name := range pd.Commodities {
				c, err := cat.Get(name)
				if err != nil {
					log.Printf("universe: planet %q: %v", pd.Name, err)
					continue
				}
				p.Commodities = append(p.Commodities, c)
			}
			sys.AddPlanet(p)
		}
	}

	// Second pass: routes, now that every system has an index.
	for _, sd := range doc.Systems {
		from, err := u.FindSystem(sd.Name)
		if err != nil {
			continue // entry was skipped above
		}
		for _, target := range sd.Jumps {
			to, err := u.FindSystem(target)
			if err != nil {
				log.Printf("universe: system %q: jump target %q unknown", sd.Name, target)
				continue
			}
			if err := u.AddJump(from, to); err != nil {
				log.Printf("universe: system %q: %v", sd.Name, err)
			}
		}
	}

	log.Printf("universe: loaded %d systems", u.Len())
	return u, nil
}
