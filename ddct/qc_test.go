package ddct

import (
	"testing"

	"github.com/quantbio/relqpcr/plate"
)

func TestFlagDispersion(t *testing.T) {
	var samples []SampleMeasurement

	// Five tight triplets and one with a wild well.
	for _, group := range []string{"a", "b", "c", "d", "e"} {
		samples = append(samples,
			sampleOf(group, "1", plate.Reference, plate.CtFrom(20)),
			sampleOf(group, "1", plate.Reference, plate.CtFrom(20)),
		)
	}
	samples = append(samples,
		sampleOf("f", "1", plate.Reference, plate.CtFrom(20)),
		sampleOf("f", "1", plate.Reference, plate.CtFrom(30)),
	)

	flags, err := FlagDispersion(samples, 1.0)
	if err != nil {
		t.Fatal(err)
	}

	if len(flags) != 1 {
		t.Fatalf("expected exactly one flagged key, got %+v", flags)
	}

	set, exists := flags["f-1-reference"]
	if !exists {
		t.Fatalf("expected f-1-reference to be flagged, got %+v", flags)
	}

	if set.String() != "CtDispersion" {
		t.Fatalf("unexpected flags: %q", set.String())
	}
}

func TestFlagDispersionIgnoresUndeterminedAndSingletons(t *testing.T) {
	samples := []SampleMeasurement{
		sampleOf("a", "1", plate.Reference, plate.CtFrom(20)),
		sampleOf("b", "1", plate.Reference, plate.Undetermined()),
		sampleOf("b", "1", plate.Reference, plate.Undetermined()),
	}

	flags, err := FlagDispersion(samples, 1.0)
	if err != nil {
		t.Fatal(err)
	}

	if len(flags) != 0 {
		t.Fatalf("expected no flags, got %+v", flags)
	}
}
