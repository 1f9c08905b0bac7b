// Package budgeterror defines the typed errors of the ledger's boundaries.
package budgeterror

import "fmt"

// DocumentError reports a structural problem in an imported or loaded ledger
// document. An import that produces a DocumentError leaves the ledger
// untouched.
type DocumentError struct {
	Field  string
	Reason string
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("invalid ledger document: %s: %s", e.Field, e.Reason)
}

// ResponseError reports an unusable response from the AI advisory service.
// Always recoverable: the response is discarded and nothing reaches the
// ledger.
type ResponseError struct {
	Feature string
	Reason  string
	Err     error
}

func (e *ResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: unusable response: %s: %v", e.Feature, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: unusable response: %s", e.Feature, e.Reason)
}

func (e *ResponseError) Unwrap() error {
	return e.Err
}

// InputError reports rejected user input at a command boundary, before any
// store operation runs.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
