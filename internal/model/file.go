package model

// DiscoveredFile is a filesystem entry found during a directory scan that is
// eligible for conversion. The slice produced by a scan is discarded and
// rebuilt whenever a new scan runs; inclusion state lives in the selection
// tree, not here.
type DiscoveredFile struct {
	Path   string
	Format Format
	Size   int64
}

// ScanError records a filesystem entry that could not be read during a scan.
// The scan skips the entry and continues.
type ScanError struct {
	Path string
	Err  error
}

func (se ScanError) Error() string {
	return se.Path + ": " + se.Err.Error()
}
