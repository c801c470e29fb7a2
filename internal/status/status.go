// Package status defines the error kinds surfaced at the pipeline boundary
// (spec.md §7). Grounded on detour.Status (arl-go-detour's status.go): a
// small bitmask distinguishing failure from non-failure outcomes, with an
// Error() implementation so a Status can be returned and wrapped like any
// other error.
package status

import "fmt"

// Status represents the high-level outcome of a pipeline-boundary
// operation. Unlike the teacher's detour.Status, only the detail bits that
// spec.md §7 actually names are defined.
type Status uint32

const (
	// Failure marks a Status as an aborting error.
	Failure Status = 1 << 31
	// Success marks a non-error outcome. EmptyResult carries this bit: a
	// zero-candidate or all-rejected run is not a failure (spec.md §7).
	Success Status = 1 << 30

	detailMask = 0x0ffffff

	// InvalidInput: a malformed config (unparsable YAML, an unknown key,
	// an even neighborhood), an observer outside the DEM, or an empty road
	// network (spec.md §7). Config values outside their declared bounds
	// are reported as OutOfRange instead.
	InvalidInput = Failure | (1 << 0)
	// OutOfRange: a numeric input fell outside a declared bound, surfaced
	// distinctly from other invalid-input cases so callers can report
	// which field failed.
	OutOfRange = Failure | (1 << 1)
	// EmptyResult: zero candidates survived extraction, or all were
	// rejected by drivability. Not a failure — callers receive an empty
	// list, not an error.
	EmptyResult = Success | (1 << 2)
)

// Error implements the error interface so a Status can be returned directly
// or wrapped with fmt.Errorf("%w", ...).
func (s Status) Error() string {
	switch s {
	case InvalidInput:
		return "invalid input"
	case OutOfRange:
		return "value out of declared range"
	case EmptyResult:
		return "empty result"
	default:
		if s&Failure != 0 {
			return fmt.Sprintf("unspecified failure 0x%x", uint32(s))
		}
		return "success"
	}
}

// Failed reports whether s carries the Failure bit.
func Failed(s Status) bool { return s&Failure != 0 }

// Succeeded reports whether s carries the Success bit.
func Succeeded(s Status) bool { return s&Success != 0 }

// Is supports errors.Is(err, status.InvalidInput) against a wrapped Status.
func (s Status) Is(target error) bool {
	t, ok := target.(Status)
	if !ok {
		return false
	}
	return s == t
}
