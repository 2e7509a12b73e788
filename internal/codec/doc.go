package codec

// Package codec adapts external image libraries behind a per-format registry.
// Each Codec pairs a decoder and an encoder for one Format; the converter
// never reimplements codec logic, it only selects formats and options and
// handles library errors. HEIC support is conditional: it needs libheif and
// is compiled in only under the "heic" build tag.
