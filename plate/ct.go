package plate

import (
	"strconv"
	"strings"

	"gopkg.in/guregu/null.v3"
)

// Ct is one cycle-threshold measurement. Wells with no amplification come out
// of the instrument as the literal string "Undetermined"; those are carried
// as a null value rather than NaN or a magic sentinel number.
type Ct struct {
	null.Float
}

// CtFrom returns a determined Ct.
func CtFrom(v float64) Ct {
	return Ct{null.FloatFrom(v)}
}

// Undetermined returns the Ct of a well with no amplification.
func Undetermined() Ct {
	return Ct{}
}

// ParseCt normalizes the instrument's Ct column at the loader boundary.
// Anything that does not parse as a number is treated as undetermined.
func ParseCt(s string) Ct {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return Undetermined()
	}

	return CtFrom(v)
}
