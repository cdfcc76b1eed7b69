// Package a3 evaluates the LTE A3 entering condition as taught on the form:
// the neighbour must beat the serving cell by the summed offsets.
package a3

import (
	"fmt"

	"github.com/jengzang/handover-backend-go/internal/models"
)

// Evaluate computes lhs = target - source and
// rhs = (a3Offset + freqOffset + qciOffset + hysteresis)/10 - cellOffset.
// The condition is met when lhs - rhs is strictly positive.
func Evaluate(in models.A3Input) models.A3Result {
	lhs := in.Target - in.Source
	rhs := (in.A3Offset+in.FreqOffset+in.QCIOffset+in.Hysteresis)/10 - in.CellOffset
	diff := lhs - rhs
	met := diff > 0

	return models.A3Result{
		Input:        in,
		LHS:          lhs,
		RHS:          rhs,
		Difference:   diff,
		ConditionMet: met,
		Lines:        explain(in, lhs, rhs, diff, met),
	}
}

func explain(in models.A3Input, lhs, rhs, diff float64, met bool) []string {
	verdict := "A3 condition NOT met: the UE stays on the serving cell"
	if met {
		verdict = "A3 condition met: the UE reports the neighbour and handover can start"
	}
	return []string{
		fmt.Sprintf("Neighbour - Serving = %.2f - (%.2f) = %.2f dB", in.Target, in.Source, lhs),
		fmt.Sprintf("Offsets = (%.0f + %.0f + %.0f + %.0f)/10 - %.2f = %.2f dB",
			in.A3Offset, in.FreqOffset, in.QCIOffset, in.Hysteresis, in.CellOffset, rhs),
		fmt.Sprintf("Difference = %.2f dB", diff),
		verdict,
	}
}
