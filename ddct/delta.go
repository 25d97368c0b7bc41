package ddct

import (
	"fmt"

	"github.com/quantbio/relqpcr/plate"
)

// DeltaCt is reference minus target mean Ct for one biological replicate.
// Higher dct means more target template relative to the reference gene.
type DeltaCt struct {
	ID              SampleIdentity
	ReferenceMeanCt float64
	TargetMeanCt    float64
	DCt             float64
}

// IncompletePairingError reports a (group, replicate) with a mean Ct for only
// one of the two primers. An implicit outer join would drop the key and hide
// the missing data.
type IncompletePairingError struct {
	ID      SampleIdentity
	Missing plate.PrimerTarget
}

func (e IncompletePairingError) Error() string {
	return fmt.Sprintf("group %q replicate %q: no %s mean Ct to pair with", e.ID.Group, e.ID.Replicate, e.Missing)
}

// PairDeltas inner-joins each replicate's reference and target means on
// (group, replicate) and computes dct = reference - target. Both sides are
// required for every key on either side. Output is sorted by identity.
func PairDeltas(means []MeanCt) ([]DeltaCt, error) {
	reference := make(map[SampleIdentity]MeanCt)
	target := make(map[SampleIdentity]MeanCt)

	for _, m := range means {
		switch m.Primer {
		case plate.Reference:
			reference[m.ID] = m
		case plate.Target:
			target[m.ID] = m
		default:
			return nil, fmt.Errorf("group %q replicate %q: unknown primer %v", m.ID.Group, m.ID.Replicate, m.Primer)
		}
	}

	for id := range reference {
		if _, exists := target[id]; !exists {
			return nil, IncompletePairingError{ID: id, Missing: plate.Target}
		}
	}

	ids := make([]SampleIdentity, 0, len(target))
	for id := range target {
		ids = append(ids, id)
	}
	sortIdentities(ids)

	out := make([]DeltaCt, 0, len(ids))
	for _, id := range ids {
		ref, exists := reference[id]
		if !exists {
			return nil, IncompletePairingError{ID: id, Missing: plate.Reference}
		}

		tgt := target[id]
		out = append(out, DeltaCt{
			ID:              id,
			ReferenceMeanCt: ref.MeanCt,
			TargetMeanCt:    tgt.MeanCt,
			DCt:             ref.MeanCt - tgt.MeanCt,
		})
	}

	return out, nil
}
