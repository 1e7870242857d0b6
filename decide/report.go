package decide

import (
	"fmt"

	"go.uber.org/multierr"
)

// CheckResult records one §4.7 check's verdict: its name, whether it
// passed, and a counterexample word when it didn't.
type CheckResult struct {
	Name           string
	Passed         bool
	Counterexample []string
}

// Report aggregates every A-check or T-check run during one CEGAR
// iteration. Unlike a single decide call — which returns its own error
// immediately — Report keeps going across checks, accumulating every
// independent failure with multierr instead of stopping at the first.
type Report struct {
	Results []CheckResult
	errs    []error
}

// Add records one check's outcome. A non-nil err is folded into the
// report's aggregate error (see Err) rather than propagated directly;
// Add always returns so the caller can run the remaining checks.
func (r *Report) Add(name string, passed bool, cex []string, err error) {
	r.Results = append(r.Results, CheckResult{Name: name, Passed: passed, Counterexample: cex})
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("decide: %s: %w", name, err))
	}
}

// AllPassed reports whether every recorded check passed and none erred.
func (r *Report) AllPassed() bool {
	if len(r.errs) != 0 {
		return false
	}
	for _, res := range r.Results {
		if !res.Passed {
			return false
		}
	}
	return true
}

// Failures returns the names of every check that did not pass.
func (r *Report) Failures() []string {
	var out []string
	for _, res := range r.Results {
		if !res.Passed {
			out = append(out, res.Name)
		}
	}
	return out
}

// Err combines every error recorded by Add into one multierr value, nil
// if none were recorded.
func (r *Report) Err() error {
	return multierr.Combine(r.errs...)
}
