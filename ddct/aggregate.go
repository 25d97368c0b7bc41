package ddct

import (
	"fmt"
	"sort"

	"github.com/gonum/stat"
	"github.com/quantbio/relqpcr/plate"
)

// UndeterminedPolicy decides what an undetermined technical replicate does to
// its key's mean.
type UndeterminedPolicy int

const (
	// UndeterminedSkip leaves undetermined wells out of the replicate mean.
	UndeterminedSkip UndeterminedPolicy = iota

	// UndeterminedFail aborts the run on any undetermined well.
	UndeterminedFail
)

// MeanCt is the technical-replicate mean for one (group, replicate, primer).
type MeanCt struct {
	ID     SampleIdentity
	Primer plate.PrimerTarget
	MeanCt float64
}

// NoAmplificationError reports a key whose every technical replicate came
// back undetermined, so no mean exists for it.
type NoAmplificationError struct {
	ID     SampleIdentity
	Primer plate.PrimerTarget
}

func (e NoAmplificationError) Error() string {
	return fmt.Sprintf("group %q replicate %q primer %s: every technical replicate is undetermined", e.ID.Group, e.ID.Replicate, e.Primer)
}

type aggregateKey struct {
	ID     SampleIdentity
	Primer plate.PrimerTarget
}

func sortAggregateKeys(keys []aggregateKey) {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].ID.Group != keys[j].ID.Group {
			return keys[i].ID.Group < keys[j].ID.Group
		}
		if keys[i].ID.Replicate != keys[j].ID.Replicate {
			return keys[i].ID.Replicate < keys[j].ID.Replicate
		}
		return keys[i].Primer < keys[j].Primer
	})
}

// Aggregate averages technical replicates into one MeanCt per observed
// (group, replicate, primer). Output is sorted by key so that repeated runs
// over the same wells are bit-identical regardless of map iteration order.
func Aggregate(samples []SampleMeasurement, policy UndeterminedPolicy) ([]MeanCt, error) {
	cts := make(map[aggregateKey][]float64)

	// Keys with at least one well, determined or not. A key that appears
	// only with undetermined wells must surface as an error, not vanish.
	seen := make(map[aggregateKey]struct{})

	for _, s := range samples {
		key := aggregateKey{ID: s.ID, Primer: s.Primer}
		seen[key] = struct{}{}

		if !s.Ct.Valid {
			if policy == UndeterminedFail {
				return nil, fmt.Errorf("group %q replicate %q primer %s: undetermined Ct with fail policy in effect", s.ID.Group, s.ID.Replicate, s.Primer)
			}
			continue
		}

		cts[key] = append(cts[key], s.Ct.Float64)
	}

	keys := make([]aggregateKey, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sortAggregateKeys(keys)

	out := make([]MeanCt, 0, len(keys))
	for _, key := range keys {
		values, exists := cts[key]
		if !exists {
			return nil, NoAmplificationError{ID: key.ID, Primer: key.Primer}
		}

		// Summation order must not depend on well order, or reordering the
		// input could flip the last bit of a mean.
		sort.Float64s(values)

		out = append(out, MeanCt{ID: key.ID, Primer: key.Primer, MeanCt: stat.Mean(values, nil)})
	}

	return out, nil
}
