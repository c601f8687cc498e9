package flogger

import "strconv"

// CallSite identifies the origin of a log statement. The core treats it as
// an opaque, immutable tag: it is attached to flushed messages and finalized
// records but never inspected. How a call site is resolved (stack
// introspection or otherwise) is the caller's concern.
type CallSite struct {
	Function string
	File     string
	Line     int
}

// IsZero reports whether the call site carries no information.
func (c CallSite) IsZero() bool {
	return c == CallSite{}
}

func (c CallSite) String() string {
	switch {
	case c.File != emptyString:
		return c.File + ":" + strconv.Itoa(c.Line)
	case c.Function != emptyString:
		return c.Function
	default:
		return "<unknown>"
	}
}
