package ddct

import (
	"math"

	"github.com/gonum/stat"
)

// Result is the reporting-ready record for one biological replicate: the
// primer means, dct, ddct, relative concentration, and the group's mean
// relative concentration. Relative concentration follows the exact doubling
// model, 2^(-ddct), with no amplification-efficiency correction.
type Result struct {
	Group            string
	Replicate        string
	ReferenceMeanCt  float64
	TargetMeanCt     float64
	DCt              float64
	DDCt             float64
	RelConc          float64
	GroupMeanRelConc float64
}

// Concentrations converts each ddct to a linear relative concentration and
// joins every replicate with its group's mean. Input order is preserved.
func Concentrations(ddcts []DeltaDeltaCt) []Result {
	out := make([]Result, 0, len(ddcts))
	byGroup := make(map[string][]float64)

	for _, d := range ddcts {
		rel := math.Exp2(-d.DDCt)
		byGroup[d.ID.Group] = append(byGroup[d.ID.Group], rel)

		out = append(out, Result{
			Group:           d.ID.Group,
			Replicate:       d.ID.Replicate,
			ReferenceMeanCt: d.ReferenceMeanCt,
			TargetMeanCt:    d.TargetMeanCt,
			DCt:             d.DCt,
			DDCt:            d.DDCt,
			RelConc:         rel,
		})
	}

	for i, r := range out {
		out[i].GroupMeanRelConc = stat.Mean(byGroup[r.Group], nil)
	}

	return out
}
