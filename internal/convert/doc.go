package convert

// Package convert implements the conversion job runner: it turns checked
// files plus the global options into immutable ConversionRequests, fans them
// out over a bounded worker pool, and reports one ConversionResult per
// request. Jobs are independent, complete in any order, and a failure in one
// never aborts its siblings. Progress reaches the UI through callbacks.
