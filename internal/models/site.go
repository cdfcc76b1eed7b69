package models

import (
	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"
)

// Point is a canvas coordinate in pixels, x to the right and y downward
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Vec converts the point to an r2 vector
func (p Point) Vec() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

// PointFromVec converts an r2 vector back to a Point
func PointFromVec(v r2.Point) Point {
	return Point{X: v.X, Y: v.Y}
}

// Sector is an angular slice of a site's coverage.
// Angles are radians measured from the +x axis, clockwise on screen.
type Sector struct {
	Start s1.Angle `json:"start"`
	End   s1.Angle `json:"end"`
}

// Site represents a base station with its coverage rings and sectors
type Site struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Color    string    `json:"color"`
	Position Point     `json:"position"`
	Rings    []float64 `json:"rings"`   // Ascending radii in pixels
	Sectors  []Sector  `json:"sectors"` // Empty means omnidirectional
}

// Canvas is the drawing surface size in pixels
type Canvas struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Scene is the static teaching scenario: sites, corridor and bands
type Scene struct {
	Canvas    Canvas          `json:"canvas"`
	Sites     []Site          `json:"sites"`
	Waypoints []Point         `json:"waypoints"`
	Bands     []BandThreshold `json:"bands"`
	Outside   string          `json:"outside_label"`
}
