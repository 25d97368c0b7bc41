package ddct

import (
	"github.com/carbocation/pfx"
	"github.com/quantbio/relqpcr/plate"
)

// Config carries the experiment-level settings the pipeline must never infer
// from the data: the label delimiter, the sentinel labels for wells carrying
// no sample identity (empty wells, no-template controls), the control group
// every replicate is normalized against, and the undetermined-Ct policy.
type Config struct {
	Delimiter    string
	Exclude      []string
	ControlGroup string
	Undetermined UndeterminedPolicy
}

// DefaultConfig returns the conventional settings: labels like "RNAi1-2",
// empty and "NTC" wells excluded, undetermined wells left out of means.
func DefaultConfig(controlGroup string) Config {
	return Config{
		Delimiter:    "-",
		Exclude:      []string{"", "NTC"},
		ControlGroup: controlGroup,
	}
}

// Run executes the full pipeline on row-tagged measurements: decode sample
// labels, average technical replicates, pair reference and target means,
// normalize against the control group, and convert to relative
// concentrations. Each stage either produces a complete output or fails the
// run outright; a silently dropped record would corrupt every join and mean
// downstream of it.
func Run(tagged []plate.TaggedMeasurement, cfg Config) ([]Result, error) {
	samples, err := Decode(tagged, cfg)
	if err != nil {
		return nil, pfx.Err(err)
	}

	means, err := Aggregate(samples, cfg.Undetermined)
	if err != nil {
		return nil, pfx.Err(err)
	}

	deltas, err := PairDeltas(means)
	if err != nil {
		return nil, pfx.Err(err)
	}

	ddcts, err := Normalize(deltas, cfg.ControlGroup)
	if err != nil {
		return nil, pfx.Err(err)
	}

	return Concentrations(ddcts), nil
}
