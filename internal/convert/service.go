package convert

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nfnt/resize"

	"github.com/imgforge/img-converter/internal/codec"
	"github.com/imgforge/img-converter/internal/model"
)

// Worker pool bounds
const (
	MinWorkers = 1
	MaxWorkers = 16
)

const (
	jobIDPrefix   = "job-"
	batchIDPrefix = "batch-"

	outputDirPermissions = 0o755
)

// Service runs conversion batches over a bounded worker pool.
type Service struct {
	jobs      map[string]*model.ConversionJob
	jobsMutex sync.RWMutex
	running   bool
	cancelled bool
	onUpdate  func(*model.ConversionJob)   // callback for per-job UI updates
	onDone    func(model.BatchSummary)     // callback when a batch finishes
}

// NewService creates a new conversion service
func NewService() *Service {
	return &Service{
		jobs: make(map[string]*model.ConversionJob),
	}
}

// SetUpdateCallback sets the callback function for job updates
func (s *Service) SetUpdateCallback(callback func(*model.ConversionJob)) {
	s.onUpdate = callback
}

// SetBatchDoneCallback sets the callback invoked with the batch summary
// after every job has finished.
func (s *Service) SetBatchDoneCallback(callback func(model.BatchSummary)) {
	s.onDone = callback
}

// IsRunning reports whether a batch is currently executing.
func (s *Service) IsRunning() bool {
	s.jobsMutex.RLock()
	defer s.jobsMutex.RUnlock()
	return s.running
}

// Cancel requests cooperative cancellation of the running batch. Jobs that
// have not started yet finish as cancelled; the job in flight completes.
func (s *Service) Cancel() {
	s.jobsMutex.Lock()
	s.cancelled = true
	s.jobsMutex.Unlock()
	log.Printf("Conversion batch cancellation requested")
}

// Jobs returns all jobs from the current or last batch.
func (s *Service) Jobs() []*model.ConversionJob {
	s.jobsMutex.RLock()
	defer s.jobsMutex.RUnlock()

	jobs := make([]*model.ConversionJob, 0, len(s.jobs))
	for _, job := range s.jobs {
		jobs = append(jobs, job)
	}
	return jobs
}

// StartBatch runs the requests on a background worker pool. The batch
// summary is delivered through the batch-done callback; per-job progress
// through the update callback.
func (s *Service) StartBatch(requests []model.ConversionRequest, workers int) (string, error) {
	s.jobsMutex.Lock()
	if s.running {
		s.jobsMutex.Unlock()
		return "", fmt.Errorf("a conversion batch is already running")
	}
	s.running = true
	s.cancelled = false
	s.jobs = make(map[string]*model.ConversionJob)
	s.jobsMutex.Unlock()

	batchID := generateBatchID()
	started := time.Now()
	log.Printf("Starting batch %s: %d files, %d workers", batchID, len(requests), workers)

	go func() {
		results := s.run(requests, workers)

		s.jobsMutex.Lock()
		s.running = false
		s.jobsMutex.Unlock()

		summary := model.NewBatchSummary(batchID, results, time.Since(started))
		log.Printf("Batch %s finished: %s", batchID, summary)
		if s.onDone != nil {
			s.onDone(summary)
		}
	}()

	return batchID, nil
}

// Run executes the requests synchronously and returns one result per
// request. Results arrive in completion order, not submission order.
func (s *Service) Run(requests []model.ConversionRequest, workers int) []model.ConversionResult {
	s.jobsMutex.Lock()
	s.running = true
	s.cancelled = false
	s.jobs = make(map[string]*model.ConversionJob)
	s.jobsMutex.Unlock()

	results := s.run(requests, workers)

	s.jobsMutex.Lock()
	s.running = false
	s.jobsMutex.Unlock()
	return results
}

// run fans the requests out over the worker pool and waits for every job.
func (s *Service) run(requests []model.ConversionRequest, workers int) []model.ConversionResult {
	if workers < MinWorkers {
		workers = MinWorkers
	}
	if workers > MaxWorkers {
		workers = MaxWorkers
	}

	jobs := make([]*model.ConversionJob, 0, len(requests))
	s.jobsMutex.Lock()
	for _, request := range requests {
		job := &model.ConversionJob{
			ID:      generateJobID(),
			Request: request,
			Status:  model.JobStatusPending,
		}
		s.jobs[job.ID] = job
		jobs = append(jobs, job)
	}
	s.jobsMutex.Unlock()

	jobCh := make(chan *model.ConversionJob)
	resultCh := make(chan model.ConversionResult, len(jobs))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobCh {
				resultCh <- s.executeJob(job)
			}
		}()
	}

	for _, job := range jobs {
		jobCh <- job
	}
	close(jobCh)
	wg.Wait()
	close(resultCh)

	results := make([]model.ConversionResult, 0, len(jobs))
	for result := range resultCh {
		results = append(results, result)
	}
	return results
}

// executeJob converts one file and returns its result. Every failure is
// captured in the result; nothing here aborts sibling jobs.
func (s *Service) executeJob(job *model.ConversionJob) model.ConversionResult {
	request := job.Request

	if s.isCancelled() {
		return s.finishJob(job, model.JobStatusCancelled, model.ConversionResult{
			SourcePath: request.SourcePath,
			Outcome:    model.OutcomeCancelled,
			Detail:     "batch cancelled",
		})
	}

	s.jobsMutex.Lock()
	job.Status = model.JobStatusRunning
	job.StartedAt = time.Now()
	s.jobsMutex.Unlock()
	s.notifyUpdate(job)

	log.Printf("Converting %s to %s", request.SourcePath, request.OutputPath)

	if _, err := os.Stat(request.SourcePath); os.IsNotExist(err) {
		return s.finishJob(job, model.JobStatusSkipped, model.ConversionResult{
			SourcePath: request.SourcePath,
			Outcome:    model.OutcomeSkipped,
			Detail:     "source file no longer exists",
		})
	}

	if request.SourceFormat == request.TargetFormat {
		return s.finishJob(job, model.JobStatusSkipped, model.ConversionResult{
			SourcePath: request.SourcePath,
			Outcome:    model.OutcomeSkipped,
			Detail:     "already in " + request.TargetFormat.String() + " format",
		})
	}

	outputPath, err := s.convert(request)
	if err != nil {
		log.Printf("Conversion failed for %s: %v", request.SourcePath, err)
		s.jobsMutex.Lock()
		job.LastError = err.Error()
		s.jobsMutex.Unlock()
		return s.finishJob(job, model.JobStatusError, model.ConversionResult{
			SourcePath: request.SourcePath,
			Outcome:    model.OutcomeFailed,
			Detail:     err.Error(),
		})
	}

	if request.ReplaceFile {
		if err := os.Remove(request.SourcePath); err != nil {
			log.Printf("Failed to remove original %s: %v", request.SourcePath, err)
		}
	}

	return s.finishJob(job, model.JobStatusCompleted, model.ConversionResult{
		SourcePath: request.SourcePath,
		OutputPath: outputPath,
		Outcome:    model.OutcomeSuccess,
	})
}

// convert performs decode, optional downscale, and encode for one request.
func (s *Service) convert(request model.ConversionRequest) (string, error) {
	decoder, err := codec.For(request.SourceFormat)
	if err != nil {
		return "", err
	}
	if !decoder.Available() {
		return "", fmt.Errorf("no decoder for %s in this build", request.SourceFormat)
	}

	encoder, err := codec.For(request.TargetFormat)
	if err != nil {
		return "", err
	}
	if !encoder.Available() {
		return "", fmt.Errorf("no encoder for %s in this build", request.TargetFormat)
	}

	img, err := decoder.DecodeFile(request.SourcePath)
	if err != nil {
		return "", err
	}

	if request.MaxDimension > 0 {
		bound := uint(request.MaxDimension)
		img = resize.Thumbnail(bound, bound, img, resize.Lanczos3)
	}

	if err := os.MkdirAll(filepath.Dir(request.OutputPath), outputDirPermissions); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	opts := codec.EncodeOptions{}
	if request.TargetFormat == model.FormatHEIC {
		opts.Quality = request.HEICQuality
	}

	if err := encoder.EncodeFile(request.OutputPath, img, opts); err != nil {
		return "", err
	}
	return request.OutputPath, nil
}

// finishJob records the terminal status and emits the final update.
func (s *Service) finishJob(job *model.ConversionJob, status model.JobStatus, result model.ConversionResult) model.ConversionResult {
	s.jobsMutex.Lock()
	job.Status = status
	job.FinishedAt = time.Now()
	s.jobsMutex.Unlock()

	s.notifyUpdate(job)
	return result
}

func (s *Service) isCancelled() bool {
	s.jobsMutex.RLock()
	defer s.jobsMutex.RUnlock()
	return s.cancelled
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(job *model.ConversionJob) {
	if s.onUpdate != nil {
		s.onUpdate(job)
	}
}

// generateJobID generates a unique job ID using UUID v7 for better
// uniqueness and time ordering
func generateJobID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(jobIDPrefix+"%d", time.Now().UnixNano())
	}
	return jobIDPrefix + id.String()
}

// generateBatchID generates a unique batch ID
func generateBatchID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(batchIDPrefix+"%d", time.Now().UnixNano())
	}
	return batchIDPrefix + id.String()
}
