package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/golang/geo/s1"
	"github.com/jengzang/handover-backend-go/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed default_scenario.yaml
var defaultScenario []byte

// ErrInvalidScenario is returned for scenario files that cannot describe a scene
var ErrInvalidScenario = errors.New("invalid scenario")

// ScenarioFile is the YAML layout of a scenario
type ScenarioFile struct {
	Canvas struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"canvas"`
	Sites        []SiteConfig   `yaml:"sites"`
	Path         []models.Point `yaml:"path"`
	Bands        []BandConfig   `yaml:"bands"`
	OutsideLabel string         `yaml:"outside_label"`
}

// SiteConfig describes one site; sector angles are in degrees
type SiteConfig struct {
	ID         string       `yaml:"id"`
	Name       string       `yaml:"name"`
	Color      string       `yaml:"color"`
	Position   models.Point `yaml:"position"`
	Rings      []float64    `yaml:"rings"`
	SectorsDeg [][2]float64 `yaml:"sectors_deg"`
}

// BandConfig describes one coverage band threshold
type BandConfig struct {
	Name        string  `yaml:"name"`
	MaxDistance float64 `yaml:"max_distance"`
	Label       string  `yaml:"label"`
}

// DefaultScene returns the embedded teaching scene
func DefaultScene() (models.Scene, error) {
	return ParseScenario(defaultScenario)
}

// LoadScene reads a scenario file; an empty path yields the default scene
func LoadScene(path string) (models.Scene, error) {
	if path == "" {
		return DefaultScene()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Scene{}, fmt.Errorf("failed to read scenario %s: %w", path, err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes YAML into a scene. Geometry is validated later by
// the path and coverage constructors; this only checks the structure.
func ParseScenario(data []byte) (models.Scene, error) {
	var f ScenarioFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return models.Scene{}, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}

	if f.Canvas.Width <= 0 || f.Canvas.Height <= 0 {
		return models.Scene{}, fmt.Errorf("%w: canvas size %dx%d", ErrInvalidScenario, f.Canvas.Width, f.Canvas.Height)
	}
	if len(f.Sites) == 0 {
		return models.Scene{}, fmt.Errorf("%w: no sites", ErrInvalidScenario)
	}
	if len(f.Path) == 0 {
		return models.Scene{}, fmt.Errorf("%w: no path waypoints", ErrInvalidScenario)
	}

	scene := models.Scene{
		Canvas:    models.Canvas{Width: f.Canvas.Width, Height: f.Canvas.Height},
		Waypoints: f.Path,
		Outside:   f.OutsideLabel,
	}
	for _, sc := range f.Sites {
		site := models.Site{
			ID:       sc.ID,
			Name:     sc.Name,
			Color:    sc.Color,
			Position: sc.Position,
			Rings:    sc.Rings,
		}
		if site.Name == "" {
			site.Name = sc.ID
		}
		for _, deg := range sc.SectorsDeg {
			site.Sectors = append(site.Sectors, models.Sector{
				Start: s1.Angle(deg[0] * math.Pi / 180),
				End:   s1.Angle(deg[1] * math.Pi / 180),
			})
		}
		scene.Sites = append(scene.Sites, site)
	}
	for _, b := range f.Bands {
		scene.Bands = append(scene.Bands, models.BandThreshold{
			Name:        b.Name,
			MaxDistance: b.MaxDistance,
			Label:       b.Label,
		})
	}
	return scene, nil
}
