package soar

import (
	"errors"
	"fmt"
)

const (
	// StatusFailed is the Status value of every failure envelope
	StatusFailed = "Failed"

	msgNoActiveInstance  = "No active instance found."
	msgMissingIdentifier = "Instance found but identifier is missing."
)

// Failure is a non-fatal invocation failure. Message is the exact text
// reported to the caller; Err, when set, is the underlying cause.
type Failure struct {
	Message string
	Err     error
}

func (f *Failure) Error() string {
	return f.Message
}

func (f *Failure) Unwrap() error {
	return f.Err
}

func failf(cause error, format string, args ...interface{}) *Failure {
	return &Failure{Message: fmt.Sprintf(format, args...), Err: cause}
}

// Envelope flattens an invocation error into the two-key result callers
// expect: {"Status": "Failed", "Message": "..."}
func Envelope(err error) map[string]string {
	msg := ""
	var f *Failure
	if errors.As(err, &f) {
		msg = f.Message
	} else if err != nil {
		msg = err.Error()
	}
	return map[string]string{
		"Status":  StatusFailed,
		"Message": msg,
	}
}
