// relqpcr computes relative gene expression from a qPCR per-well results
// table using the delta-delta-Ct method.
package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/quantbio/relqpcr/ddct"
	"github.com/quantbio/relqpcr/plate"
)

func main() {
	var input, layoutSpec, control, delim, exclude, undetermined string
	var qcSD float64

	flag.StringVar(&input, "input", "", "Path to the per-well results table (CSV with Well, Sample Name, CT columns; any vendor metadata preamble already stripped)")
	flag.StringVar(&layoutSpec, "layout", "", "Row-to-primer assignment, e.g. A-D=reference,E-H=target")
	flag.StringVar(&control, "control", "", "Treatment group every replicate is normalized against")
	flag.StringVar(&delim, "delim", "-", "Delimiter separating group and replicate in sample labels")
	flag.StringVar(&exclude, "exclude", ",NTC", "Comma-separated sample labels of wells carrying no sample identity")
	flag.StringVar(&undetermined, "undetermined", "skip", "Policy for Undetermined wells: skip (leave out of replicate means) or fail")
	flag.Float64Var(&qcSD, "qc-sd", 3.0, "Flag keys whose technical-replicate Ct SD exceeds this many SDs of the plate-wide mean dispersion; <= 0 disables")

	flag.Parse()

	if input == "" {
		log.Fatalln("Please provide -input")
	}

	if layoutSpec == "" {
		log.Fatalln("Please provide -layout")
	}

	if control == "" {
		log.Fatalln("Please provide -control")
	}

	log.Println("Launched relqpcr")

	if err := run(input, layoutSpec, control, delim, exclude, undetermined, qcSD); err != nil {
		log.Fatalln(err)
	}
}

func run(input, layoutSpec, control, delim, exclude, undetermined string, qcSD float64) error {
	layout, err := plate.ParseLayout(layoutSpec)
	if err != nil {
		return err
	}

	cfg := ddct.Config{
		Delimiter:    delim,
		Exclude:      strings.Split(exclude, ","),
		ControlGroup: control,
	}

	switch undetermined {
	case "skip":
		cfg.Undetermined = ddct.UndeterminedSkip
	case "fail":
		cfg.Undetermined = ddct.UndeterminedFail
	default:
		return fmt.Errorf("unknown -undetermined policy %q (valid: skip, fail)", undetermined)
	}

	measurements, err := loadWellTable(input)
	if err != nil {
		return err
	}
	log.Println("Loaded", len(measurements), "wells from", input)

	tagged, err := layout.Assign(measurements)
	if err != nil {
		return err
	}

	if qcSD > 0 {
		if err := reportQC(tagged, cfg, qcSD); err != nil {
			return err
		}
	}

	results, err := ddct.Run(tagged, cfg)
	if err != nil {
		return err
	}

	fmt.Println(strings.Join([]string{
		"group",
		"replicate",
		"reference_mean_ct",
		"target_mean_ct",
		"dct",
		"ddct",
		"rel_conc",
		"group_mean_rel_conc"},
		"\t"))

	for _, v := range results {
		fmt.Printf("%s\t%s\t%f\t%f\t%f\t%f\t%f\t%f\n",
			v.Group,
			v.Replicate,
			v.ReferenceMeanCt,
			v.TargetMeanCt,
			v.DCt,
			v.DDCt,
			v.RelConc,
			v.GroupMeanRelConc,
		)
	}

	return nil
}

func reportQC(tagged []plate.TaggedMeasurement, cfg ddct.Config, qcSD float64) error {
	samples, err := ddct.Decode(tagged, cfg)
	if err != nil {
		return err
	}

	flags, err := ddct.FlagDispersion(samples, qcSD)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(flags))
	for key := range flags {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		log.Println("QC:", key, flags[key])
	}
	log.Println(len(flags), "keys flagged by QC")

	return nil
}
