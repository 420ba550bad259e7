package nuspell

import "fmt"

// Diagnostic is one warning emitted during a load. Warnings never abort
// Load; they are routed to a DiagnosticSink and the parser continues with
// its best recoverable interpretation.
type Diagnostic struct {
	Kind ErrorKind
	File string
	Line int
	Msg  string
}

func (d Diagnostic) String() string {
	if d.Line > 0 {
		return fmt.Sprintf("%s:%d: %s: %s", d.File, d.Line, d.Kind, d.Msg)
	}
	return fmt.Sprintf("%s: %s: %s", d.File, d.Kind, d.Msg)
}

// DiagnosticSink receives warnings as they are produced. Implementations
// must be safe to call from a single goroutine during Load; no concurrent
// calls are made by this package.
type DiagnosticSink interface {
	Warn(d Diagnostic)
}

// tracingSink is the default DiagnosticSink, backed by schuko/tracing the
// same way the rest of this package's own diagnostics are.
type tracingSink struct{}

func (tracingSink) Warn(d Diagnostic) {
	tracer().Infof("warning: %s", d)
}

// DiagnosticSinkFunc adapts a function to a DiagnosticSink.
type DiagnosticSinkFunc func(Diagnostic)

func (f DiagnosticSinkFunc) Warn(d Diagnostic) { f(d) }

// discardSink drops every diagnostic. Useful in tests that only care about
// the resulting snapshot.
type discardSink struct{}

func (discardSink) Warn(Diagnostic) {}
