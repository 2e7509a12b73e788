package platform

// Package platform holds small OS-specific helpers: ensuring directories
// exist, resolving the default pictures directory, and revealing files in
// the system file manager.
