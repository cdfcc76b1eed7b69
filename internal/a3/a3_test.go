package a3

import (
	"testing"

	"github.com/jengzang/handover-backend-go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	t.Parallel()

	t.Run("equal sides do not trigger", func(t *testing.T) {
		res := Evaluate(models.A3Input{
			Target:     -90,
			Source:     -95,
			A3Offset:   30,
			Hysteresis: 20,
		})
		assert.InDelta(t, 5, res.LHS, 1e-9)
		assert.InDelta(t, 5, res.RHS, 1e-9)
		assert.InDelta(t, 0, res.Difference, 1e-9)
		assert.False(t, res.ConditionMet)
	})

	t.Run("stronger neighbour triggers", func(t *testing.T) {
		in := models.DefaultA3Input()
		in.Target = -88
		res := Evaluate(in)
		assert.InDelta(t, 7, res.LHS, 1e-9)
		assert.InDelta(t, 2, res.Difference, 1e-9)
		assert.True(t, res.ConditionMet)
	})

	t.Run("all offsets add up and cell offset subtracts", func(t *testing.T) {
		res := Evaluate(models.A3Input{
			Target:     -80,
			Source:     -90,
			A3Offset:   10,
			FreqOffset: 20,
			QCIOffset:  30,
			Hysteresis: 40,
			CellOffset: 3,
		})
		assert.InDelta(t, 10, res.LHS, 1e-9)
		assert.InDelta(t, 7, res.RHS, 1e-9)
		assert.InDelta(t, 3, res.Difference, 1e-9)
		assert.True(t, res.ConditionMet)
	})

	t.Run("explains the result", func(t *testing.T) {
		res := Evaluate(models.DefaultA3Input())
		require.Len(t, res.Lines, 4)
		assert.Equal(t, "Neighbour - Serving = -90.00 - (-95.00) = 5.00 dB", res.Lines[0])
		assert.Equal(t, "Offsets = (30 + 0 + 0 + 20)/10 - 0.00 = 5.00 dB", res.Lines[1])
		assert.Equal(t, "Difference = 0.00 dB", res.Lines[2])
		assert.Contains(t, res.Lines[3], "NOT met")
		assert.Equal(t, models.DefaultA3Input(), res.Input)
	})
}
