package model

import (
	"fmt"
	"path/filepath"
	"time"
)

// ConversionRequest holds the fully-resolved parameters for converting one
// file. It is derived from a DiscoveredFile plus the global options at
// submission time and is immutable once created.
type ConversionRequest struct {
	SourcePath   string
	SourceFormat Format
	TargetFormat Format
	OutputPath   string
	HEICQuality  int  // 0..100, applied only when TargetFormat is HEIC
	MaxDimension int  // optional downscale bound in pixels, 0 disables
	ReplaceFile  bool // delete the source after a successful conversion
}

// ConversionJob tracks one request through the worker pool.
type ConversionJob struct {
	ID         string
	Request    ConversionRequest
	Status     JobStatus
	LastError  string // last error message if any
	StartedAt  time.Time
	FinishedAt time.Time
}

// DisplayName returns the source file name without its directory.
func (j *ConversionJob) DisplayName() string {
	return filepath.Base(j.Request.SourcePath)
}

// Outcome classifies how a conversion job ended.
type Outcome string

const (
	OutcomeSuccess   Outcome = "success"
	OutcomeSkipped   Outcome = "skipped"
	OutcomeFailed    Outcome = "failed"
	OutcomeCancelled Outcome = "cancelled"
)

// ConversionResult reports the outcome of one conversion job. Exactly one
// result is produced per submitted request, in any completion order.
type ConversionResult struct {
	SourcePath string
	OutputPath string
	Outcome    Outcome
	Detail     string // error message or skip reason
}

// Failed returns true when the job ended in an error.
func (r ConversionResult) Failed() bool {
	return r.Outcome == OutcomeFailed
}

// BatchSummary aggregates the results of a finished batch.
type BatchSummary struct {
	BatchID    string
	Total      int
	Succeeded  int
	Skipped    int
	Failed     int
	Cancelled  int
	Elapsed    time.Duration
	Results    []ConversionResult
	FinishedAt time.Time
}

// NewBatchSummary tallies results into a summary.
func NewBatchSummary(batchID string, results []ConversionResult, elapsed time.Duration) BatchSummary {
	summary := BatchSummary{
		BatchID:    batchID,
		Total:      len(results),
		Elapsed:    elapsed,
		Results:    results,
		FinishedAt: time.Now(),
	}
	for _, result := range results {
		switch result.Outcome {
		case OutcomeSuccess:
			summary.Succeeded++
		case OutcomeSkipped:
			summary.Skipped++
		case OutcomeFailed:
			summary.Failed++
		case OutcomeCancelled:
			summary.Cancelled++
		}
	}
	return summary
}

// String returns a single-line description suitable for the log pane.
func (bs BatchSummary) String() string {
	return fmt.Sprintf("%d converted, %d skipped, %d failed, %d cancelled (of %d)",
		bs.Succeeded, bs.Skipped, bs.Failed, bs.Cancelled, bs.Total)
}
