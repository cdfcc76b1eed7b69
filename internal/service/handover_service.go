package service

import (
	"fmt"

	"github.com/golang/geo/r2"
	"github.com/jengzang/handover-backend-go/internal/a3"
	"github.com/jengzang/handover-backend-go/internal/analysis"
	"github.com/jengzang/handover-backend-go/internal/coverage"
	"github.com/jengzang/handover-backend-go/internal/models"
	"github.com/jengzang/handover-backend-go/internal/observability"
	"github.com/jengzang/handover-backend-go/internal/spatial"
)

// HandoverService owns the scene and answers every recomputation request.
// It is read-only after construction and safe for concurrent use.
type HandoverService struct {
	scene     models.Scene
	path      *spatial.Path
	evaluator *coverage.Evaluator
	metrics   *observability.Collector
}

// NewHandoverService builds the path and the evaluator for scene.
// Scenes without bands use coverage.DefaultBands.
func NewHandoverService(scene models.Scene, metrics *observability.Collector) (*HandoverService, error) {
	waypoints := make([]r2.Point, 0, len(scene.Waypoints))
	for _, w := range scene.Waypoints {
		waypoints = append(waypoints, w.Vec())
	}
	path, err := spatial.NewPath(waypoints)
	if err != nil {
		return nil, fmt.Errorf("failed to build path: %w", err)
	}

	if len(scene.Bands) == 0 {
		scene.Bands = coverage.DefaultBands()
	}
	evaluator, err := coverage.NewEvaluator(scene.Sites, scene.Bands, scene.Outside)
	if err != nil {
		return nil, fmt.Errorf("failed to build coverage evaluator: %w", err)
	}
	if scene.Outside == "" {
		scene.Outside = coverage.DefaultOutsideLabel
	}

	return &HandoverService{
		scene:     scene,
		path:      path,
		evaluator: evaluator,
		metrics:   metrics,
	}, nil
}

// Scene returns the static scene description
func (s *HandoverService) Scene() models.Scene {
	return s.scene
}

// Path returns the sampled corridor
func (s *HandoverService) Path() *spatial.Path {
	return s.path
}

// Position samples the corridor at progress and evaluates coverage there.
// The hint names the runner-up site when there is more than one.
func (s *HandoverService) Position(progress float64) models.PositionResult {
	progress = spatial.ClampProgress(progress)
	pos := s.path.PositionAlongPath(progress)
	cov := s.evaluate(pos)
	ranking := s.evaluator.Ranked(pos)

	result := models.PositionResult{
		Progress:  progress,
		ArcLength: s.path.ArcLengthAt(progress),
		Total:     s.path.TotalLength(),
		Position:  models.PointFromVec(pos),
		Coverage:  cov,
		Ranking:   ranking,
	}
	if len(ranking) > 1 {
		result.Hint = &models.HandoverHint{
			Candidate: ranking[1],
			Margin:    ranking[1].Distance - ranking[0].Distance,
		}
	}
	return result
}

// Probe evaluates coverage at an arbitrary canvas point
func (s *HandoverService) Probe(p models.Point) models.ProbeResult {
	v := p.Vec()
	return models.ProbeResult{
		Position:       p,
		Coverage:       s.evaluate(v),
		DistanceToPath: s.path.DistanceTo(v),
	}
}

// A3 evaluates the A3 entering condition
func (s *HandoverService) A3(in models.A3Input) models.A3Result {
	result := a3.Evaluate(in)
	s.metrics.ObserveA3(result.ConditionMet)
	return result
}

// Sweep walks the whole corridor and reports serving segments and transitions
func (s *HandoverService) Sweep(step float64) (*analysis.SweepReport, error) {
	return analysis.Sweep(s.path, s.evaluator, step)
}

func (s *HandoverService) evaluate(p r2.Point) models.CoverageResult {
	result := s.evaluator.Evaluate(p)
	s.metrics.ObserveCoverage(result.Site.ID, result.Band.Name)
	return result
}
