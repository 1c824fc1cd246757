package cssom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import "fmt"

// Severity grades a diagnostic.
type Severity int8

const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "warning"
}

// Diagnostic is a human-readable report of a parse problem, located by
// source line and column (1-based).
type Diagnostic struct {
	Severity Severity
	Line     int
	Column   int
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s at %d:%d", d.Severity, d.Message, d.Line, d.Column)
}
