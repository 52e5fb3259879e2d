package metrics

// MultiSink fans events out to multiple sinks.
type MultiSink struct {
	Sinks []Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordRun forwards the event to all sinks, returning the first error encountered.
func (m *MultiSink) RecordRun(ev RunEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordRun(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordComparison forwards analyses to sinks implementing ComparisonRecorder.
func (m *MultiSink) RecordComparison(ev ComparisonEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(ComparisonRecorder); ok {
			if err := rec.RecordComparison(ev); err != nil {
				return err
			}
		}
	}
	return nil
}

// Flush flushes every sink implementing Flusher.
func (m *MultiSink) Flush() error {
	for _, s := range m.Sinks {
		if f, ok := s.(Flusher); ok {
			if err := f.Flush(); err != nil {
				return err
			}
		}
	}
	return nil
}
