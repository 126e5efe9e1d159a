package metrics

// Operation enumerates the set operations that report probe counts.
type Operation string

const (
	OpHas    Operation = "has"
	OpPut    Operation = "put"
	OpDelete Operation = "delete"
	OpRehash Operation = "rehash"
)

// Recorder defines observability hooks for hash-table behavior.
type Recorder interface {
	// ObserveProbes records how many slots an operation inspected.
	ObserveProbes(op Operation, n int)
	// IncExpansion records a table resize from one capacity to another.
	IncExpansion(from, to int)
	// ObserveRelocations records how many entries one delete shifted back.
	ObserveRelocations(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveProbes(Operation, int) {}
func (NoopRecorder) IncExpansion(int, int)        {}
func (NoopRecorder) ObserveRelocations(int)       {}
