package models

import (
	"errors"
	"fmt"
	"math"
)

// ProgressFilter represents the query parameters of a position request
type ProgressFilter struct {
	Progress float64 `form:"progress,default=0" binding:"min=0,max=100"` // Percent of the corridor
}

// ProbeFilter represents the query parameters of a coverage probe
type ProbeFilter struct {
	X float64 `form:"x"`
	Y float64 `form:"y"`
}

// RenderFilter represents the query parameters of the scene renderers
type RenderFilter struct {
	Progress float64 `form:"progress,default=0" binding:"min=0,max=100"`
	Width    int     `form:"width,default=800" binding:"min=100,max=4000"`
	Height   int     `form:"height,default=400" binding:"min=100,max=4000"`
}

// SweepFilter represents the query parameters of a corridor sweep
type SweepFilter struct {
	Step float64 `form:"step,default=1" binding:"gte=0.1,lte=100"` // Progress increment
}

// ErrNonFinite is returned for NaN or infinite query values
var ErrNonFinite = errors.New("value must be a finite number")

// Validate rejects NaN progress, which passes the min/max binding
func (f ProgressFilter) Validate() error {
	return finite("progress", f.Progress)
}

// Validate rejects NaN progress
func (f RenderFilter) Validate() error {
	return finite("progress", f.Progress)
}

// Validate rejects non-finite coordinates
func (f ProbeFilter) Validate() error {
	if err := finite("x", f.X); err != nil {
		return err
	}
	return finite("y", f.Y)
}

func finite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s=%v", ErrNonFinite, name, v)
	}
	return nil
}
