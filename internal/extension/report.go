package extension

// Phase names one of the two lifecycle phases.
type Phase string

const (
	PhaseLink Phase = "link"
	PhaseLoad Phase = "load"
)

// Outcome records the result of driving one extension through one phase.
type Outcome struct {
	Extension string
	Phase     Phase
	// Err is the suppressed failure, if any. The batch operations never
	// re-raise it; inspect the report instead.
	Err error
	// Skipped is true when the manager's linked flag short-circuited the
	// call.
	Skipped bool
}

// OK reports whether the phase completed without error.
func (o Outcome) OK() bool { return o.Err == nil }

// Report is the ordered collection of outcomes from a batch link or load
// sweep.
type Report []Outcome

// Failed returns the outcomes that carry an error.
func (r Report) Failed() Report {
	var failed Report
	for _, o := range r {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}
	return failed
}
