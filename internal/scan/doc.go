package scan

// Package scan implements file discovery: walking a directory (optionally
// recursively), filtering entries by image format, and producing the ordered
// DiscoveredFile list the selection tree is built from. Unreadable entries
// are reported and skipped, never fatal.
