package types

// Outcome is the single terminal result of a run. On failure Code is
// always empty.
type Outcome struct {
	Code        string
	Destination string
	Err         error
}

// OK reports whether the run succeeded
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Message returns the human readable failure message, or "" on success
func (o Outcome) Message() string {
	if o.Err == nil {
		return ""
	}
	return o.Err.Error()
}

// Failed builds a failure outcome
func Failed(err error) Outcome {
	return Outcome{Err: err}
}

// Completed builds a success outcome
func Completed(code, destination string) Outcome {
	return Outcome{Code: code, Destination: destination}
}
