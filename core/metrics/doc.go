package metrics

// Package metrics defines the sinks that observe selector runs. A RunEvent is
// emitted for every domain run and a ComparisonEvent for every efficiency
// analysis. Sinks are created from configuration through a factory registry;
// concrete implementations such as the Prometheus sink live in infra/metrics
// and register themselves on import. Several configured sinks are combined in
// a MultiSink.
