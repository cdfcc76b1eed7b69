package models

// A3Input holds the form terms of the A3 entering condition.
// Offsets and hysteresis are in 0.1 dB steps as configured on the cell.
type A3Input struct {
	Target     float64 `form:"target,default=-90" json:"target"`       // Neighbour RSRP (dBm)
	Source     float64 `form:"source,default=-95" json:"source"`       // Serving RSRP (dBm)
	A3Offset   float64 `form:"a3Offset,default=30" json:"a3Offset"`    // 0.1 dB
	FreqOffset float64 `form:"freqOffset,default=0" json:"freqOffset"` // 0.1 dB
	QCIOffset  float64 `form:"qciOffset,default=0" json:"qciOffset"`   // 0.1 dB
	Hysteresis float64 `form:"hysteresis,default=20" json:"hysteresis"` // 0.1 dB
	CellOffset float64 `form:"cellOffset,default=0" json:"cellOffset"` // dB, subtracted
}

// DefaultA3Input returns the values the teaching form starts with
func DefaultA3Input() A3Input {
	return A3Input{
		Target:     -90,
		Source:     -95,
		A3Offset:   30,
		Hysteresis: 20,
	}
}

// A3Result is the evaluated A3 condition
type A3Result struct {
	Input        A3Input  `json:"input"`
	LHS          float64  `json:"lhs"`
	RHS          float64  `json:"rhs"`
	Difference   float64  `json:"difference"`
	ConditionMet bool     `json:"condition_met"`
	Lines        []string `json:"lines"`
}

// Validate rejects NaN or infinite terms
func (in A3Input) Validate() error {
	terms := []struct {
		name  string
		value float64
	}{
		{"target", in.Target},
		{"source", in.Source},
		{"a3Offset", in.A3Offset},
		{"freqOffset", in.FreqOffset},
		{"qciOffset", in.QCIOffset},
		{"hysteresis", in.Hysteresis},
		{"cellOffset", in.CellOffset},
	}
	for _, t := range terms {
		if err := finite(t.name, t.value); err != nil {
			return err
		}
	}
	return nil
}
