package indicator

import "fmt"

// Error reports an indicator computation failure: missing input columns or
// a series too short to produce a defined current value. Undefined values
// never leak silently; callers get this error instead.
type Error struct {
	Indicator string
	Reason    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("indicator %s: %s", e.Indicator, e.Reason)
}

func errf(indicator, format string, args ...interface{}) *Error {
	return &Error{Indicator: indicator, Reason: fmt.Sprintf(format, args...)}
}
