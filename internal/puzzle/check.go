package puzzle

// CheckResult is the outcome of running one example against one part.
type CheckResult struct {
	Day     int
	Part    int
	Example string
	Want    string
	Got     string
	Err     error
}

func (c CheckResult) OK() bool {
	return c.Err == nil && c.Got == c.Want
}

// Check runs the registered examples for day, or for every day when day
// is 0. Parts without an expected answer are skipped.
func (r *Registry) Check(day int) []CheckResult {
	var entries []Entry
	if day == 0 {
		entries = r.Days()
	} else if e, ok := r.entries[day]; ok {
		entries = []Entry{e}
	}

	var results []CheckResult
	for _, e := range entries {
		for _, ex := range e.Examples {
			for part := 1; part <= 2; part++ {
				want := ex.Want(part)
				if want == "" {
					continue
				}
				got, err := e.Part(part)(ex.Input)
				results = append(results, CheckResult{
					Day:     e.Day,
					Part:    part,
					Example: ex.Name,
					Want:    want,
					Got:     got,
					Err:     err,
				})
			}
		}
	}
	return results
}
