package fscmp

// Logger provides a pluggable logging interface for fscmp operations.
// Implementations must be safe for concurrent use by multiple goroutines.
type Logger interface {
	// Verbose logs detailed diagnostic information.
	// Only logged when verbose mode is enabled.
	Verbose(format string, args ...interface{})

	// Info logs informational messages about normal operations.
	// Always logged regardless of verbose mode.
	Info(format string, args ...interface{})

	// Error logs error messages.
	// Always logged regardless of verbose mode.
	Error(format string, args ...interface{})
}

// Collector produces the set of comparison keys found in one directory.
type Collector interface {
	Collect(root string) (KeySet, error)
}

// Partitioner groups the collected keys by membership signature.
type Partitioner interface {
	Partition(sets *DirectorySets) *PartitionResult
}
