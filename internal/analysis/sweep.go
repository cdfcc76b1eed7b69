package analysis

import (
	"fmt"
	"math"

	"github.com/jengzang/handover-backend-go/internal/coverage"
	"github.com/jengzang/handover-backend-go/internal/models"
	"github.com/jengzang/handover-backend-go/internal/spatial"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// TransitionKind tells what changed between two consecutive samples
type TransitionKind string

const (
	TransitionHandover TransitionKind = "handover" // Serving site changed
	TransitionBand     TransitionKind = "band"     // Same site, different band
)

// Transition is a change detected while walking the corridor
type Transition struct {
	Kind     TransitionKind `json:"kind"`
	Progress float64        `json:"progress"` // First sample after the change
	From     string         `json:"from"`
	To       string         `json:"to"`
}

// ServingSegment is a run of samples served by the same site
type ServingSegment struct {
	SiteID       string  `json:"site_id"`
	FromProgress float64 `json:"from_progress"`
	ToProgress   float64 `json:"to_progress"`
	Samples      int     `json:"samples"`
	MinDistance  float64 `json:"min_distance"`
	MeanDistance float64 `json:"mean_distance"`
	MaxDistance  float64 `json:"max_distance"`
	WorstBand    string  `json:"worst_band"`
}

// SweepReport summarizes coverage along the whole corridor
type SweepReport struct {
	Step        float64          `json:"step"`
	Samples     int              `json:"samples"`
	Segments    []ServingSegment `json:"segments"`
	Transitions []Transition     `json:"transitions"`
	Handovers   int              `json:"handovers"`
	OutsideFrac float64          `json:"outside_fraction"` // Share of samples beyond the last band
}

// Sweep walks the path from progress 0 to 100 in step increments, evaluating
// coverage at every sample, and groups consecutive samples by serving site.
// The final sample is always taken at exactly 100.
func Sweep(path *spatial.Path, eval *coverage.Evaluator, step float64) (*SweepReport, error) {
	if !(step > 0) || step > 100 {
		return nil, fmt.Errorf("step must be in (0, 100], got %v", step)
	}

	var progresses []float64
	for i := 0; float64(i)*step < 100; i++ {
		progresses = append(progresses, float64(i)*step)
	}
	progresses = append(progresses, 100)

	report := &SweepReport{Step: step, Samples: len(progresses)}
	outsideLevel := eval.Classify(math.Inf(1)).Level

	var (
		current   *ServingSegment
		distances []float64
		worst     models.Band
		prev      models.CoverageResult
		outside   int
	)
	flush := func() {
		if current == nil {
			return
		}
		current.Samples = len(distances)
		current.MinDistance = floats.Min(distances)
		current.MaxDistance = floats.Max(distances)
		current.MeanDistance = stat.Mean(distances, nil)
		current.WorstBand = worst.Name
		report.Segments = append(report.Segments, *current)
	}

	for i, progress := range progresses {
		res := eval.Evaluate(path.PositionAlongPath(progress))
		if res.Band.Level == outsideLevel {
			outside++
		}

		switch {
		case i == 0:
		case res.Site.ID != prev.Site.ID:
			report.Transitions = append(report.Transitions, Transition{
				Kind: TransitionHandover, Progress: progress, From: prev.Site.ID, To: res.Site.ID,
			})
			report.Handovers++
		case res.Band.Level != prev.Band.Level:
			report.Transitions = append(report.Transitions, Transition{
				Kind: TransitionBand, Progress: progress, From: prev.Band.Name, To: res.Band.Name,
			})
		}

		if current == nil || res.Site.ID != current.SiteID {
			flush()
			current = &ServingSegment{SiteID: res.Site.ID, FromProgress: progress}
			distances = distances[:0]
			worst = res.Band
		}
		current.ToProgress = progress
		distances = append(distances, res.Distance)
		if res.Band.Level > worst.Level {
			worst = res.Band
		}
		prev = res
	}
	flush()

	report.OutsideFrac = float64(outside) / float64(len(progresses))
	return report, nil
}
