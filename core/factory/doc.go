// Package factory provides a small generic registry used to instantiate modules
// from configuration. Modules are defined by a type string and a map of raw
// settings. Factories decode the settings into typed structs and return the
// concrete implementation.
//
// Example usage:
//
//	reg := factory.NewRegistry[metrics.Sink]()
//	reg.Register("prometheus", func(conf map[string]any) (metrics.Sink, error) {
//	    var c struct{ Textfile string `json:"textfile"` }
//	    if err := factory.Decode(conf, &c); err != nil {
//	        return nil, err
//	    }
//	    return newPromSink(c.Textfile)
//	})
//	s, err := reg.Create(factory.ModuleConfig{Type: "prometheus", Conf: map[string]any{"textfile": "run.prom"}})
package factory
