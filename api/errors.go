package api

import "fmt"

// TransportError reports a non-2xx response from the backend. The
// caller owns the failure policy: a failed assessment fetch is fatal
// for the session, a failed lead submission may be retried by the user.
type TransportError struct {
	Op         string
	StatusCode int
	Status     string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: backend returned %s", e.Op, e.Status)
}

// InvalidAssessmentError indicates the fetched assessment payload does
// not match the published wire contract.
type InvalidAssessmentError struct {
	Err error
}

func (e *InvalidAssessmentError) Error() string {
	return fmt.Sprintf("invalid assessment payload: %v", e.Err)
}

func (e *InvalidAssessmentError) Unwrap() error { return e.Err }
