package model

import (
	"strings"

	"github.com/pkg/errors"
)

// Mode is the optimization direction.
type Mode int

const (
	Maximize Mode = iota
	Minimize
)

func (m Mode) String() string {
	if m == Minimize {
		return "min"
	}
	return "max"
}

// ParseMode accepts "max"/"maximize" and "min"/"minimize".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "max", "maximize":
		return Maximize, nil
	case "min", "minimize":
		return Minimize, nil
	}
	return Maximize, errors.Errorf("unknown optimization mode %q", s)
}

// Sign is +1 for Maximize and -1 for Minimize.
func (m Mode) Sign() float64 {
	if m == Minimize {
		return -1
	}
	return 1
}

// Optimal reports whether an objective-row entry v satisfies the
// optimality test for this mode.
func (m Mode) Optimal(v, tol float64) bool {
	if m == Minimize {
		return v <= tol
	}
	return v >= -tol
}

// Better reports whether objective-row entry a is a stronger entering
// candidate than b (more negative for Maximize, more positive for Minimize).
func (m Mode) Better(a, b float64) bool {
	if m == Minimize {
		return a > b
	}
	return a < b
}

// Relation is the relational tag of a constraint row.
type Relation int

const (
	LessEq Relation = iota
	GreaterEq
	Equal
)

func (r Relation) String() string {
	switch r {
	case GreaterEq:
		return ">="
	case Equal:
		return "="
	}
	return "<="
}

// Flip returns the relation obtained by multiplying the row by -1.
func (r Relation) Flip() Relation {
	switch r {
	case LessEq:
		return GreaterEq
	case GreaterEq:
		return LessEq
	}
	return r
}
