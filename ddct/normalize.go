package ddct

import (
	"fmt"
	"sort"

	"github.com/gonum/stat"
)

// GroupDeltaCt is the mean dct across one treatment group's biological
// replicates.
type GroupDeltaCt struct {
	Group   string
	MeanDCt float64
}

// DeltaDeltaCt is a replicate's dct normalized against the control group's
// mean dct. Control-group replicates are normalized too, so their ddct
// scatters around zero by construction.
type DeltaDeltaCt struct {
	ID              SampleIdentity
	ReferenceMeanCt float64
	TargetMeanCt    float64
	DCt             float64
	DDCt            float64
}

// ControlGroupNotFoundError reports a configured control group with no
// replicates in the dataset.
type ControlGroupNotFoundError struct {
	Group string
}

func (e ControlGroupNotFoundError) Error() string {
	return fmt.Sprintf("control group %q not present in the data", e.Group)
}

// GroupMeans computes the per-group mean dct, sorted by group name.
func GroupMeans(deltas []DeltaCt) []GroupDeltaCt {
	byGroup := make(map[string][]float64)
	for _, d := range deltas {
		byGroup[d.ID.Group] = append(byGroup[d.ID.Group], d.DCt)
	}

	groups := make([]string, 0, len(byGroup))
	for group := range byGroup {
		groups = append(groups, group)
	}
	sort.Strings(groups)

	out := make([]GroupDeltaCt, 0, len(groups))
	for _, group := range groups {
		out = append(out, GroupDeltaCt{Group: group, MeanDCt: stat.Mean(byGroup[group], nil)})
	}

	return out
}

// Normalize computes ddct = controlMeanDCt - dct for every replicate,
// control group included.
func Normalize(deltas []DeltaCt, controlGroup string) ([]DeltaDeltaCt, error) {
	var controlMean float64
	found := false
	for _, g := range GroupMeans(deltas) {
		if g.Group == controlGroup {
			controlMean = g.MeanDCt
			found = true
			break
		}
	}
	if !found {
		return nil, ControlGroupNotFoundError{Group: controlGroup}
	}

	out := make([]DeltaDeltaCt, 0, len(deltas))
	for _, d := range deltas {
		out = append(out, DeltaDeltaCt{
			ID:              d.ID,
			ReferenceMeanCt: d.ReferenceMeanCt,
			TargetMeanCt:    d.TargetMeanCt,
			DCt:             d.DCt,
			DDCt:            controlMean - d.DCt,
		})
	}

	return out, nil
}
