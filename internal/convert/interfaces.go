package convert

import (
	"github.com/imgforge/img-converter/internal/model"
)

// Converter defines the interface for the conversion job runner.
type Converter interface {
	SetUpdateCallback(func(*model.ConversionJob))
	SetBatchDoneCallback(func(model.BatchSummary))

	// StartBatch runs the requests on a background worker pool and
	// returns the batch ID. Only one batch runs at a time.
	StartBatch(requests []model.ConversionRequest, workers int) (string, error)

	// Run executes the requests synchronously and returns one result per
	// request.
	Run(requests []model.ConversionRequest, workers int) []model.ConversionResult

	// Cancel requests cooperative cancellation; jobs not yet started are
	// marked cancelled.
	Cancel()

	IsRunning() bool
	Jobs() []*model.ConversionJob
}
