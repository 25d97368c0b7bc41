package ddct

import (
	"fmt"
	"sort"
	"strings"

	"github.com/quantbio/relqpcr/plate"
)

// SampleIdentity is the biological identity encoded in a sample label:
// treatment group and biological replicate, e.g. "RNAi1-2" → {RNAi1, 2}.
type SampleIdentity struct {
	Group     string
	Replicate string
}

// SampleMeasurement is one technical-replicate well attributed to a decoded
// sample identity and primer.
type SampleMeasurement struct {
	ID     SampleIdentity
	Primer plate.PrimerTarget
	Ct     plate.Ct
}

// MalformedLabelError reports a sample label that does not decode into
// exactly (group, replicate).
type MalformedLabelError struct {
	Label string
}

func (e MalformedLabelError) Error() string {
	return fmt.Sprintf("sample label %q: expected exactly one delimiter separating group and replicate", e.Label)
}

// DecodeLabel splits a sample label into its identity on delim. The label
// must contain exactly one delimiter with non-empty text on both sides;
// anything else is ambiguous and refused rather than guessed at.
func DecodeLabel(label, delim string) (SampleIdentity, error) {
	parts := strings.Split(label, delim)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return SampleIdentity{}, MalformedLabelError{Label: label}
	}

	return SampleIdentity{Group: parts[0], Replicate: parts[1]}, nil
}

// Decode drops sentinel-labeled wells (empty wells, no-template controls) and
// resolves the remaining labels into sample identities. Order-preserving.
func Decode(tagged []plate.TaggedMeasurement, cfg Config) ([]SampleMeasurement, error) {
	excluded := make(map[string]struct{}, len(cfg.Exclude))
	for _, label := range cfg.Exclude {
		excluded[label] = struct{}{}
	}

	out := make([]SampleMeasurement, 0, len(tagged))
	for _, m := range tagged {
		if _, skip := excluded[m.SampleLabel]; skip {
			continue
		}

		id, err := DecodeLabel(m.SampleLabel, cfg.Delimiter)
		if err != nil {
			return nil, err
		}

		out = append(out, SampleMeasurement{ID: id, Primer: m.Primer, Ct: m.Ct})
	}

	return out, nil
}

func sortIdentities(ids []SampleIdentity) {
	sort.Slice(ids, func(i, j int) bool {
		if ids[i].Group != ids[j].Group {
			return ids[i].Group < ids[j].Group
		}
		return ids[i].Replicate < ids[j].Replicate
	})
}
