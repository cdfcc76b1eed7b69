package models

// BandThreshold maps a maximum distance (inclusive) to a coverage band
type BandThreshold struct {
	Name        string  `json:"name"`
	MaxDistance float64 `json:"max_distance"`
	Label       string  `json:"label"`
}

// Band is the classified coverage band.
// Level 0 is the best band; higher levels are farther from the site.
type Band struct {
	Level int    `json:"level"`
	Name  string `json:"name"`
	Label string `json:"label"`
}

// CoverageResult is the outcome of a coverage query for one position
type CoverageResult struct {
	Site        Site     `json:"site"`
	Distance    float64  `json:"distance"`
	Band        Band     `json:"band"`
	SectorIndex int      `json:"sector_index"` // -1 when no sector of the site contains the position
	Lines       []string `json:"lines"`
}

// SiteDistance pairs a site with its distance from a query position
type SiteDistance struct {
	SiteID   string  `json:"site_id"`
	Name     string  `json:"name"`
	Distance float64 `json:"distance"`
}

// HandoverHint describes the best alternative to the serving site
type HandoverHint struct {
	Candidate SiteDistance `json:"candidate"`
	Margin    float64      `json:"margin"` // Candidate distance minus serving distance
}

// PositionResult is the response for a progress update along the corridor
type PositionResult struct {
	Progress  float64        `json:"progress"`
	ArcLength float64        `json:"arc_length"`
	Total     float64        `json:"total_length"`
	Position  Point          `json:"position"`
	Coverage  CoverageResult `json:"coverage"`
	Ranking   []SiteDistance `json:"ranking"`
	Hint      *HandoverHint  `json:"hint,omitempty"`
}

// ProbeResult is the response for a coverage query at an arbitrary point
type ProbeResult struct {
	Position       Point          `json:"position"`
	Coverage       CoverageResult `json:"coverage"`
	DistanceToPath float64        `json:"distance_to_path"`
}
