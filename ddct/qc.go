package ddct

import (
	"fmt"
	"sort"
	"strings"

	"github.com/montanaflynn/stats"
)

// SampleFlags collects advisory QC flags, keyed by "group-replicate-primer".
// map[key] => set of flags
type SampleFlags map[string]flagSet

func (s SampleFlags) AddFlag(key, flag string) {
	set, exists := s[key]
	if !exists {
		set = make(flagSet)
	}
	set[flag] = struct{}{}
	s[key] = set
}

type flagSet map[string]struct{}

func (fs flagSet) String() string {
	if len(fs) == 0 {
		return ""
	}

	sb := make([]string, 0, len(fs))
	for v := range fs {
		sb = append(sb, v)
	}

	sort.Strings(sb)

	return strings.Join(sb, "|")
}

// FlagDispersion flags keys whose technical-replicate Ct standard deviation
// sits more than nSD standard deviations above the plate-wide mean
// dispersion. Advisory only: nothing here filters or alters pipeline data,
// since a flagged replicate may still be biologically real.
func FlagDispersion(samples []SampleMeasurement, nSD float64) (SampleFlags, error) {
	byKey := make(map[aggregateKey][]float64)
	for _, s := range samples {
		if !s.Ct.Valid {
			continue
		}
		key := aggregateKey{ID: s.ID, Primer: s.Primer}
		byKey[key] = append(byKey[key], s.Ct.Float64)
	}

	keys := make([]aggregateKey, 0, len(byKey))
	for key := range byKey {
		keys = append(keys, key)
	}
	sortAggregateKeys(keys)

	flagged := make([]aggregateKey, 0, len(keys))
	dispersions := make([]float64, 0, len(keys))
	for _, key := range keys {
		if len(byKey[key]) < 2 {
			continue
		}

		sd, err := stats.StandardDeviation(byKey[key])
		if err != nil {
			return nil, err
		}

		flagged = append(flagged, key)
		dispersions = append(dispersions, sd)
	}

	out := SampleFlags{}
	if len(dispersions) == 0 {
		return out, nil
	}

	m, err := stats.Mean(dispersions)
	if err != nil {
		return nil, err
	}

	sd, err := stats.StandardDeviation(dispersions)
	if err != nil {
		return nil, err
	}

	for i, key := range flagged {
		if dispersions[i] > m+nSD*sd {
			out.AddFlag(fmt.Sprintf("%s-%s-%s", key.ID.Group, key.ID.Replicate, key.Primer), "CtDispersion")
		}
	}

	return out, nil
}
