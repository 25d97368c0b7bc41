package plate

import (
	"fmt"
	"strings"

	"github.com/carbocation/pfx"
)

// PrimerTarget tags a plate row with the primer loaded across it: the
// housekeeping reference gene or the gene of interest.
type PrimerTarget int

const (
	Reference PrimerTarget = iota
	Target
)

func (p PrimerTarget) String() string {
	switch p {
	case Reference:
		return "reference"
	case Target:
		return "target"
	}

	return fmt.Sprintf("PrimerTarget(%d)", int(p))
}

// Layout maps each plate row label to its primer. It is experiment
// configuration supplied by the caller, never inferred from the data.
type Layout map[string]PrimerTarget

// UnmappedRowError reports a well whose row has no primer assignment.
type UnmappedRowError struct {
	Well Well
}

func (e UnmappedRowError) Error() string {
	return fmt.Sprintf("well %s: row %q has no primer assignment", e.Well, e.Well.Row)
}

// Assign tags each measurement with the primer for its row, preserving input
// order. The first well on an unmapped row fails the whole call; a partially
// tagged plate would silently corrupt the downstream joins.
func (l Layout) Assign(measurements []WellMeasurement) ([]TaggedMeasurement, error) {
	out := make([]TaggedMeasurement, 0, len(measurements))

	for _, m := range measurements {
		primer, exists := l[m.Well.Row]
		if !exists {
			return nil, UnmappedRowError{Well: m.Well}
		}

		out = append(out, TaggedMeasurement{WellMeasurement: m, Primer: primer})
	}

	return out, nil
}

// ParseLayout builds a Layout from a compact assignment string such as
// "A-D=reference,E-H=target". Each clause assigns one row label, or an
// inclusive range of single-letter rows, to a primer name.
func ParseLayout(spec string) (Layout, error) {
	out := make(Layout)

	for _, clause := range strings.Split(spec, ",") {
		parts := strings.SplitN(clause, "=", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, pfx.Err(fmt.Errorf("layout clause %q: expected ROW=PRIMER or ROW-ROW=PRIMER", clause))
		}

		var primer PrimerTarget
		switch strings.ToLower(strings.TrimSpace(parts[1])) {
		case "reference", "ref":
			primer = Reference
		case "target":
			primer = Target
		default:
			return nil, pfx.Err(fmt.Errorf("layout clause %q: unknown primer %q (valid: reference, target)", clause, parts[1]))
		}

		rows := strings.TrimSpace(parts[0])
		if from, to, isRange := strings.Cut(rows, "-"); isRange {
			if len(from) != 1 || len(to) != 1 || from[0] > to[0] {
				return nil, pfx.Err(fmt.Errorf("layout clause %q: bad row range %q", clause, rows))
			}
			for r := from[0]; r <= to[0]; r++ {
				out[string(r)] = primer
			}
		} else {
			out[rows] = primer
		}
	}

	return out, nil
}
