package flow

import "fmt"

// Status represents the definite assignment state of a variable at a program point
type Status int

const (
	// Unassigned means no path reaching the point writes the variable
	Unassigned Status = iota
	// PotentiallyAssigned means some, but not all, paths write the variable
	PotentiallyAssigned
	// DefinitelyAssigned means every path reaching the point writes the variable
	DefinitelyAssigned
	// Unreachable marks a point no path reaches
	Unreachable
)

// String returns status name
func (s Status) String() string {
	switch s {
	case Unassigned:
		return "Unassigned"
	case PotentiallyAssigned:
		return "PotentiallyAssigned"
	case DefinitelyAssigned:
		return "DefinitelyAssigned"
	case Unreachable:
		return "Unreachable"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Join merges the states of two paths meeting at one point
func Join(a, b Status) Status {
	switch {
	case a == Unreachable:
		return b
	case b == Unreachable:
		return a
	case a == b:
		return a
	}
	return PotentiallyAssigned
}

// assign returns the state after a write
func assign(s Status) Status {
	if s == Unreachable {
		return Unreachable
	}
	return DefinitelyAssigned
}
