// Package metrics provides observability hooks for the collections containers.
//
// Containers hold a Recorder and report probe lengths, table expansions and
// backward-shift relocations to it. The default is NoopRecorder, so an
// uninstrumented set pays only an interface call per operation.
//
// To enable metrics, pass a Prometheus-backed recorder when constructing a
// container:
//
//	reg := prometheus.NewRegistry()
//	s := set.New(64, set.WithRecorder(metrics.NewPrometheusRecorder(reg)))
//
// A single PrometheusRecorder may be shared by many sets; its collectors are
// aggregate across all of them.
package metrics
