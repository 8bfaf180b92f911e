package paths

import "fmt"

// SetupError is returned when a Find request is malformed: start or end
// overlaps off-limits, two "other" groups overlap, or an "other" group is
// adjacent to the start group. It is raised eagerly, before any search
// runs, and is never a signal about the puzzle itself - only about how the
// caller built the request.
type SetupError struct {
	Reason string
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("path setup: %s", e.Reason)
}

// NotFoundError is returned when a well-formed request nonetheless has no
// path: the end group is unreachable from the start group without
// crossing off-limits cells, or every discovered path exceeds MaxLength.
type NotFoundError struct {
	Reason string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no path found: %s", e.Reason)
}
