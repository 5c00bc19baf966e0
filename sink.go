package seqstore

import "github.com/rs/zerolog"

// Sink receives human-readable progress messages from a store
type Sink interface {
	Narrate(msg string)
}

type SinkFunc func(msg string)

func (f SinkFunc) Narrate(msg string) {
	f(msg)
}

var NopSink Sink = SinkFunc(func(string) {})

type zerologSink struct {
	logger zerolog.Logger
}

// NewZerologSink narrates at debug level through logger
func NewZerologSink(logger zerolog.Logger) Sink {
	return &zerologSink{logger: logger.With().Str("module", "seqstore").Logger()}
}

func (s *zerologSink) Narrate(msg string) {
	s.logger.Debug().Msg(msg)
}
