package flogger

import "github.com/rs/zerolog"

// zerologSink delivers aggregated output through a zerolog.Logger. The
// logger is shared and externally owned; the sink never closes it.
type zerologSink struct {
	logger *zerolog.Logger
}

// NewZerologSink returns a Sink writing through the given logger. Severity
// is mapped onto the nearest zerolog level and the call site is attached as
// a structured field.
func NewZerologSink(logger *zerolog.Logger) Sink {
	return &zerologSink{logger: logger}
}

func (s *zerologSink) Emit(severity Severity, site CallSite, message string) error {
	s.logger.WithLevel(severity.zerologLevel()).
		Str("severity", severity.String()).
		Str("call_site", site.String()).
		Msg(message)
	return nil
}
