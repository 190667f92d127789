package refdata

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog is the process-wide immutable reference state. It is built once at
// startup; per-request computation reads it without locking.
type Catalog struct {
	regions     map[string]RegionProfile
	cities      map[string]CityProfile
	targets     map[string]RelocationTarget
	percentiles map[string][]PercentileBand
}

// NewCatalog returns a catalog populated with the built-in tables.
func NewCatalog() *Catalog {
	return &Catalog{
		regions:     defaultRegions(),
		cities:      defaultCities(),
		targets:     defaultTargets(),
		percentiles: defaultPercentiles(),
	}
}

// Overlay is the YAML shape of an optional reference-data overlay file.
// Entries add to or replace the built-in tables by identifier.
type Overlay struct {
	Cities  []CityProfile      `yaml:"cities"`
	Targets []RelocationTarget `yaml:"targets"`
}

// NewCatalogFromOverlay builds a catalog and applies the overlay file at
// path. A missing path is not an error; a malformed file is.
func NewCatalogFromOverlay(path string) (*Catalog, error) {
	catalog := NewCatalog()
	if path == "" {
		return catalog, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return catalog, nil
		}
		return nil, fmt.Errorf("failed to read reference-data overlay: %w", err)
	}

	var overlay Overlay
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("failed to parse reference-data overlay: %w", err)
	}

	for _, city := range overlay.Cities {
		id := strings.ToLower(strings.TrimSpace(city.ID))
		if id == "" {
			return nil, fmt.Errorf("overlay city with empty id")
		}
		if _, ok := catalog.regions[strings.ToLower(city.Region)]; !ok {
			return nil, fmt.Errorf("overlay city %s references unknown region %s", city.ID, city.Region)
		}
		city.ID = id
		city.Region = strings.ToLower(city.Region)
		catalog.cities[id] = city
	}

	for _, target := range overlay.Targets {
		id := strings.ToLower(strings.TrimSpace(target.ID))
		if id == "" {
			return nil, fmt.Errorf("overlay relocation target with empty id")
		}
		target.ID = id
		catalog.targets[id] = target
	}

	return catalog, nil
}

// Validate checks cross-table invariants: every city must belong to a known
// region. The built-in tables satisfy this by construction; overlays are
// checked at load, so Validate exists for callers composing catalogs by hand
// in tests.
func (c *Catalog) Validate() error {
	for id, city := range c.cities {
		if _, ok := c.regions[city.Region]; !ok {
			return fmt.Errorf("city %s references unknown region %s", id, city.Region)
		}
	}
	return nil
}
