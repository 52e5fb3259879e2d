package metrics

import (
	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/factory"
	coremetrics "github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/metrics"
)

// init registers built-in metrics sinks.
func init() {
	_ = coremetrics.RegisterSink("nop", func(map[string]any) (coremetrics.Sink, error) {
		return coremetrics.NopSink{}, nil
	})

	_ = coremetrics.RegisterSink("log", func(map[string]any) (coremetrics.Sink, error) {
		return NewLogSink(nil), nil
	})

	_ = coremetrics.RegisterSink("prometheus", func(conf map[string]any) (coremetrics.Sink, error) {
		var c struct {
			Textfile string `json:"textfile"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewPromSink(c.Textfile)
	})
}
