package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFiniteValidation(t *testing.T) {
	t.Parallel()
	nan, inf := math.NaN(), math.Inf(1)

	assert.NoError(t, ProbeFilter{X: 10, Y: -5}.Validate())
	assert.ErrorIs(t, ProbeFilter{X: nan}.Validate(), ErrNonFinite)
	assert.ErrorIs(t, ProbeFilter{Y: -inf}.Validate(), ErrNonFinite)

	assert.NoError(t, ProgressFilter{Progress: 42}.Validate())
	assert.ErrorIs(t, ProgressFilter{Progress: nan}.Validate(), ErrNonFinite)
	assert.ErrorIs(t, RenderFilter{Progress: nan}.Validate(), ErrNonFinite)

	assert.NoError(t, DefaultA3Input().Validate())
	in := DefaultA3Input()
	in.Target = inf
	assert.ErrorIs(t, in.Validate(), ErrNonFinite)
	in = DefaultA3Input()
	in.CellOffset = nan
	assert.ErrorIs(t, in.Validate(), ErrNonFinite)
}
