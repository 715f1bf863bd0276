package random

import (
	"github.com/sirupsen/logrus"
)

// DefaultWarnAfter is the rejection count at which a LoggingSource warns.
// A sphere sample reaches it with probability below 1e-20.
const DefaultWarnAfter = 64

// LoggingSource wraps a Source and logs unusually long rejection runs.
//
// It only observes; the draws seen by the samplers are exactly those of the
// wrapped Source.
type LoggingSource struct {
	Source

	logger    logrus.FieldLogger
	warnAfter int
}

// WithLogger wraps src so that any sample needing warnAfter or more rejected
// candidates is logged as a warning. warnAfter <= 0 selects DefaultWarnAfter.
func WithLogger(src Source, logger logrus.FieldLogger, warnAfter int) *LoggingSource {
	if warnAfter <= 0 {
		warnAfter = DefaultWarnAfter
	}
	return &LoggingSource{Source: src, logger: logger, warnAfter: warnAfter}
}

// ObserveRejections implements Observer.
func (s *LoggingSource) ObserveRejections(shape Shape, rejected int) {
	if s.logger == nil || rejected < s.warnAfter {
		return
	}
	s.logger.WithFields(logrus.Fields{
		"action":   "rejection_sample",
		"shape":    shape.String(),
		"rejected": rejected,
	}).Warn("unusually long rejection run")
}
