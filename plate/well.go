package plate

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Well identifies a physical plate position such as "A1" or "H12". Row is the
// leading letter of the instrument's well label and Column is the integer
// remainder. No plate geometry (96-well, 384-well) is assumed anywhere.
type Well struct {
	Row    string
	Column int
}

func (w Well) String() string {
	return fmt.Sprintf("%s%d", w.Row, w.Column)
}

// ParseWell splits a combined well label at the first character boundary.
func ParseWell(label string) (Well, error) {
	_, size := utf8.DecodeRuneInString(label)
	if size == 0 || size == len(label) {
		return Well{}, fmt.Errorf("well label %q: expected a row letter followed by a column number", label)
	}

	col, err := strconv.Atoi(label[size:])
	if err != nil {
		return Well{}, fmt.Errorf("well label %q: column %q is not an integer", label, label[size:])
	}
	if col < 1 {
		return Well{}, fmt.Errorf("well label %q: column must be positive", label)
	}

	return Well{Row: label[:size], Column: col}, nil
}
