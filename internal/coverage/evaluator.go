package coverage

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/golang/geo/r2"
	"github.com/jengzang/handover-backend-go/internal/models"
	"github.com/jengzang/handover-backend-go/internal/spatial"
)

var (
	// ErrNoSites is returned when the evaluator has nothing to compare against
	ErrNoSites = errors.New("at least one site is required")
	// ErrBandOrder is returned when band thresholds are not strictly ascending
	ErrBandOrder = errors.New("band thresholds must be strictly ascending")
	// ErrInvalidSite is returned for sites without an id or with unsorted rings
	ErrInvalidSite = errors.New("invalid site")
)

// DefaultOutsideLabel is used beyond the last band threshold
const DefaultOutsideLabel = "Outside coverage: no usable signal from any site"

// DefaultBands returns the thresholds of the teaching scene
func DefaultBands() []models.BandThreshold {
	return []models.BandThreshold{
		{Name: "excellent", MaxDistance: 60, Label: "Excellent signal: close to the site"},
		{Name: "good", MaxDistance: 120, Label: "Good signal: inside the main coverage area"},
		{Name: "fair", MaxDistance: 180, Label: "Weak signal: cell edge, handover likely"},
	}
}

// Evaluator finds the nearest site for a position and classifies its band
type Evaluator struct {
	sites   []models.Site
	bands   []models.BandThreshold
	outside string
}

// NewEvaluator validates sites and bands and builds an evaluator.
// An empty outside label falls back to DefaultOutsideLabel.
func NewEvaluator(sites []models.Site, bands []models.BandThreshold, outside string) (*Evaluator, error) {
	if len(sites) == 0 {
		return nil, ErrNoSites
	}
	seen := make(map[string]bool, len(sites))
	for _, s := range sites {
		if err := ValidateSite(s); err != nil {
			return nil, err
		}
		if seen[s.ID] {
			return nil, fmt.Errorf("%w: duplicate id %s", ErrInvalidSite, s.ID)
		}
		seen[s.ID] = true
	}
	for i := 1; i < len(bands); i++ {
		if !(bands[i].MaxDistance > bands[i-1].MaxDistance) {
			return nil, fmt.Errorf("%w: %q (%v) after %q (%v)", ErrBandOrder,
				bands[i].Name, bands[i].MaxDistance, bands[i-1].Name, bands[i-1].MaxDistance)
		}
	}
	if outside == "" {
		outside = DefaultOutsideLabel
	}

	return &Evaluator{
		sites:   append([]models.Site(nil), sites...),
		bands:   append([]models.BandThreshold(nil), bands...),
		outside: outside,
	}, nil
}

// ValidateSite checks the site id and that ring radii are positive and ascending
func ValidateSite(s models.Site) error {
	if s.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidSite)
	}
	for i, r := range s.Rings {
		if r <= 0 || math.IsNaN(r) {
			return fmt.Errorf("%w: %s ring %d has radius %v", ErrInvalidSite, s.ID, i, r)
		}
		if i > 0 && r <= s.Rings[i-1] {
			return fmt.Errorf("%w: %s rings are not ascending", ErrInvalidSite, s.ID)
		}
	}
	return nil
}

// Sites returns the configured sites in scan order
func (e *Evaluator) Sites() []models.Site {
	return append([]models.Site(nil), e.sites...)
}

// Evaluate finds the nearest site to p by linear scan. Ties keep the site
// listed first.
func (e *Evaluator) Evaluate(p r2.Point) models.CoverageResult {
	nearest := 0
	best := math.Inf(1)
	for i, s := range e.sites {
		if d := spatial.Distance(p, s.Position.Vec()); d < best {
			best = d
			nearest = i
		}
	}

	site := e.sites[nearest]
	band := e.Classify(best)
	sector := SectorIndex(site, p)

	return models.CoverageResult{
		Site:        site,
		Distance:    best,
		Band:        band,
		SectorIndex: sector,
		Lines:       explain(site, best, band, sector),
	}
}

// Classify maps a distance to its band. Thresholds are inclusive.
func (e *Evaluator) Classify(distance float64) models.Band {
	for i, b := range e.bands {
		if distance <= b.MaxDistance {
			return models.Band{Level: i, Name: b.Name, Label: b.Label}
		}
	}
	return models.Band{Level: len(e.bands), Name: "outside", Label: e.outside}
}

// Ranked returns every site with its distance from p, nearest first.
// Equal distances keep scan order.
func (e *Evaluator) Ranked(p r2.Point) []models.SiteDistance {
	ranked := make([]models.SiteDistance, 0, len(e.sites))
	for _, s := range e.sites {
		ranked = append(ranked, models.SiteDistance{
			SiteID:   s.ID,
			Name:     s.Name,
			Distance: spatial.Distance(p, s.Position.Vec()),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Distance < ranked[j].Distance
	})
	return ranked
}

// SectorIndex returns the index of the first sector of site containing the
// bearing to p, or -1. Omnidirectional sites and a position exactly on the
// site also yield -1.
func SectorIndex(site models.Site, p r2.Point) int {
	origin := site.Position.Vec()
	if len(site.Sectors) == 0 || spatial.Distance(origin, p) == 0 {
		return -1
	}
	bearing := spatial.Bearing(origin, p)
	for i, sec := range site.Sectors {
		if spatial.AngleWithin(bearing, sec.Start, sec.End) {
			return i
		}
	}
	return -1
}

func explain(site models.Site, distance float64, band models.Band, sector int) []string {
	lines := []string{
		fmt.Sprintf("Nearest site: %s", site.Name),
		fmt.Sprintf("Distance to %s: %.1f px", site.Name, distance),
		fmt.Sprintf("Coverage: %s", band.Label),
	}
	if sector >= 0 {
		lines = append(lines, fmt.Sprintf("Served by sector %d of %s", sector+1, site.Name))
	}
	return lines
}
