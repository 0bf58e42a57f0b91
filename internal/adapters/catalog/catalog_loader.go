package catalog

import (
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/meridian-sim/tradewinds/internal/domain/commodity"
)

var validate = validator.New()

// LoadCatalog reads the commodity catalogue document. A malformed root is an
// error; a malformed entry is reported and skipped so one bad good never
// corrupts the rest. A catalogue with zero priced goods is valid.
func LoadCatalog(path string) (*commodity.Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var doc catalogDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("catalog %s is not valid YAML: %w", path, err)
	}

	cat := commodity.NewCatalog()
	for i, entry := range doc.Commodities {
		if err := validate.Struct(entry); err != nil {
			log.Printf("catalog: skipping entry %d: %v", i, err)
			continue
		}

		c := commodity.New(entry.Name, entry.Price, entry.PlanetMods, entry.FactionMods)
		c.Description = entry.Description
		c.PopulationMod = entry.PopulationMod
		if entry.Period > 0 {
			c.Period = entry.Period
		}

		if err := cat.Add(c); err != nil {
			log.Printf("catalog: skipping entry %d: %v", i, err)
		}
	}

	log.Printf("catalog: loaded %d commodities (%d priced)", cat.Len(), len(cat.Priced()))
	return cat, nil
}
