package flogger

import "github.com/rs/zerolog"

// Severity is the importance of a log statement. The value set mirrors the
// classic java.util.logging levels the fluent API exposes; selection logic
// lives outside this core.
type Severity int8

const (
	SeverityFinest Severity = iota
	SeverityFiner
	SeverityFine
	SeverityConfig
	SeverityInfo
	SeverityWarning
	SeveritySevere
)

// String returns the canonical upper-case name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityFinest:
		return "FINEST"
	case SeverityFiner:
		return "FINER"
	case SeverityFine:
		return "FINE"
	case SeverityConfig:
		return "CONFIG"
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeveritySevere:
		return "SEVERE"
	default:
		return "UNKNOWN"
	}
}

// zerologLevel maps a severity onto the nearest zerolog level.
func (s Severity) zerologLevel() zerolog.Level {
	switch s {
	case SeverityFinest, SeverityFiner:
		return zerolog.TraceLevel
	case SeverityFine, SeverityConfig:
		return zerolog.DebugLevel
	case SeverityInfo:
		return zerolog.InfoLevel
	case SeverityWarning:
		return zerolog.WarnLevel
	case SeveritySevere:
		return zerolog.ErrorLevel
	default:
		return zerolog.NoLevel
	}
}
