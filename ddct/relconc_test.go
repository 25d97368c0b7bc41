package ddct

import (
	"math"
	"testing"
)

func ddctOf(group, replicate string, ddct float64) DeltaDeltaCt {
	return DeltaDeltaCt{ID: SampleIdentity{Group: group, Replicate: replicate}, DDCt: ddct}
}

func TestConcentrationsDoublingModel(t *testing.T) {
	for _, v := range []struct {
		ddct    float64
		relConc float64
	}{
		{0.0, 1.0}, // control-equivalent baseline
		{2.0, 0.25},
		{-1.0, 2.0},
		{1.0, 0.5},
	} {
		results := Concentrations([]DeltaDeltaCt{ddctOf("g", "1", v.ddct)})
		if got := results[0].RelConc; got != v.relConc {
			t.Errorf("ddct %f: expected rel_conc %f, got %f", v.ddct, v.relConc, got)
		}
	}
}

func TestConcentrationsGroupMeans(t *testing.T) {
	results := Concentrations([]DeltaDeltaCt{
		ddctOf("Control", "1", 0.0),
		ddctOf("Control", "2", 0.0),
		ddctOf("RNAi1", "1", 2.0),
		ddctOf("RNAi1", "2", 1.0),
	})

	if len(results) != 4 {
		t.Fatalf("expected 4 replicate rows, got %+v", results)
	}

	for _, r := range results[:2] {
		if r.GroupMeanRelConc != 1.0 {
			t.Fatalf("control group mean: %+v", r)
		}
	}

	expected := (0.25 + 0.5) / 2.0
	for _, r := range results[2:] {
		if math.Abs(r.GroupMeanRelConc-expected) > 1e-15 {
			t.Fatalf("treated group mean: expected %f, got %+v", expected, r)
		}
	}
}
