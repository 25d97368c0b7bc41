package ddct

import (
	"math"
	"reflect"
	"testing"

	"github.com/quantbio/relqpcr/plate"
)

// triplicatePlate builds the canonical small experiment: 8 rows by 3
// columns, rows A-D loaded with the reference primer and E-H with the
// target primer, each row holding one biological replicate in triplicate.
func triplicatePlate(t *testing.T) []plate.TaggedMeasurement {
	t.Helper()

	layout, err := plate.ParseLayout("A-D=reference,E-H=target")
	if err != nil {
		t.Fatal(err)
	}

	labels := map[string]string{
		"A": "Control-1", "B": "Control-2", "C": "RNAi1-1", "D": "RNAi1-2",
		"E": "Control-1", "F": "Control-2", "G": "RNAi1-1", "H": "RNAi1-2",
	}

	// Triplicate Cts centered exactly on the row mean.
	centers := map[string]float64{
		"A": 20, "B": 20, "C": 20, "D": 20,
		"E": 25, "F": 25, "G": 27, "H": 27,
	}
	offsets := []float64{-0.5, 0, 0.5}

	var measurements []plate.WellMeasurement
	for _, row := range []string{"A", "B", "C", "D", "E", "F", "G", "H"} {
		for col := 1; col <= 3; col++ {
			measurements = append(measurements, plate.WellMeasurement{
				Well:        plate.Well{Row: row, Column: col},
				SampleLabel: labels[row],
				Ct:          plate.CtFrom(centers[row] + offsets[col-1]),
			})
		}
	}

	// A no-template control well; it must never reach any mean.
	measurements = append(measurements, plate.WellMeasurement{
		Well:        plate.Well{Row: "A", Column: 12},
		SampleLabel: "NTC",
		Ct:          plate.Undetermined(),
	})

	tagged, err := layout.Assign(measurements)
	if err != nil {
		t.Fatal(err)
	}

	return tagged
}

func TestRunRoundTrip(t *testing.T) {
	tagged := triplicatePlate(t)

	results, err := Run(tagged, DefaultConfig("Control"))
	if err != nil {
		t.Fatal(err)
	}

	if len(results) != 4 {
		t.Fatalf("expected 4 biological replicates, got %+v", results)
	}

	for i, expected := range []Result{
		{Group: "Control", Replicate: "1", ReferenceMeanCt: 20, TargetMeanCt: 25, DCt: -5, DDCt: 0, RelConc: 1, GroupMeanRelConc: 1},
		{Group: "Control", Replicate: "2", ReferenceMeanCt: 20, TargetMeanCt: 25, DCt: -5, DDCt: 0, RelConc: 1, GroupMeanRelConc: 1},
		{Group: "RNAi1", Replicate: "1", ReferenceMeanCt: 20, TargetMeanCt: 27, DCt: -7, DDCt: 2, RelConc: 0.25, GroupMeanRelConc: 0.25},
		{Group: "RNAi1", Replicate: "2", ReferenceMeanCt: 20, TargetMeanCt: 27, DCt: -7, DDCt: 2, RelConc: 0.25, GroupMeanRelConc: 0.25},
	} {
		got := results[i]
		if got.Group != expected.Group || got.Replicate != expected.Replicate {
			t.Fatalf("row %d: expected %s-%s, got %+v", i, expected.Group, expected.Replicate, got)
		}

		for _, v := range []struct {
			name     string
			got      float64
			expected float64
		}{
			{"reference_mean_ct", got.ReferenceMeanCt, expected.ReferenceMeanCt},
			{"target_mean_ct", got.TargetMeanCt, expected.TargetMeanCt},
			{"dct", got.DCt, expected.DCt},
			{"ddct", got.DDCt, expected.DDCt},
			{"rel_conc", got.RelConc, expected.RelConc},
			{"group_mean_rel_conc", got.GroupMeanRelConc, expected.GroupMeanRelConc},
		} {
			if math.Abs(v.got-v.expected) > 1e-12 {
				t.Fatalf("row %d %s: expected %f, got %f", i, v.name, v.expected, v.got)
			}
		}
	}
}

func TestRunNTCNeverReachesOutput(t *testing.T) {
	results, err := Run(triplicatePlate(t), DefaultConfig("Control"))
	if err != nil {
		t.Fatal(err)
	}

	for _, r := range results {
		if r.Group == "NTC" || r.Replicate == "NTC" {
			t.Fatalf("NTC leaked into the output: %+v", r)
		}
	}
}

func TestRunIsIdempotent(t *testing.T) {
	tagged := triplicatePlate(t)
	cfg := DefaultConfig("Control")

	first, err := Run(tagged, cfg)
	if err != nil {
		t.Fatal(err)
	}

	second, err := Run(tagged, cfg)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("reruns over identical input differ:\n%+v\n%+v", first, second)
	}
}

func TestRunControlGroupRequired(t *testing.T) {
	_, err := Run(triplicatePlate(t), DefaultConfig("Mock"))
	if err == nil {
		t.Fatal("expected an error for a control group absent from the data")
	}
}
