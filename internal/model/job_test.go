package model

import (
	"testing"
	"time"
)

func TestConversionJob_DisplayName(t *testing.T) {
	tests := []struct {
		source   string
		expected string
	}{
		{"/home/user/Pictures/photo.png", "photo.png"},
		{"photo.png", "photo.png"},
		{"a/b/c/scan.tiff", "scan.tiff"},
	}

	for _, test := range tests {
		job := &ConversionJob{Request: ConversionRequest{SourcePath: test.source}}
		result := job.DisplayName()
		if result != test.expected {
			t.Errorf("DisplayName() with source '%s' = '%s', expected '%s'",
				test.source, result, test.expected)
		}
	}
}

func TestNewBatchSummary(t *testing.T) {
	results := []ConversionResult{
		{SourcePath: "a.png", Outcome: OutcomeSuccess},
		{SourcePath: "b.png", Outcome: OutcomeSuccess},
		{SourcePath: "c.png", Outcome: OutcomeSkipped},
		{SourcePath: "d.png", Outcome: OutcomeFailed, Detail: "decode failed"},
		{SourcePath: "e.png", Outcome: OutcomeCancelled},
	}

	summary := NewBatchSummary("batch-1", results, 2*time.Second)

	if summary.Total != 5 {
		t.Errorf("Expected total 5, got %d", summary.Total)
	}
	if summary.Succeeded != 2 {
		t.Errorf("Expected 2 succeeded, got %d", summary.Succeeded)
	}
	if summary.Skipped != 1 {
		t.Errorf("Expected 1 skipped, got %d", summary.Skipped)
	}
	if summary.Failed != 1 {
		t.Errorf("Expected 1 failed, got %d", summary.Failed)
	}
	if summary.Cancelled != 1 {
		t.Errorf("Expected 1 cancelled, got %d", summary.Cancelled)
	}
	if summary.BatchID != "batch-1" {
		t.Errorf("Expected batch ID 'batch-1', got '%s'", summary.BatchID)
	}

	expected := "2 converted, 1 skipped, 1 failed, 1 cancelled (of 5)"
	if summary.String() != expected {
		t.Errorf("String() = '%s', expected '%s'", summary.String(), expected)
	}
}

func TestConversionResult_Failed(t *testing.T) {
	tests := []struct {
		outcome  Outcome
		expected bool
	}{
		{OutcomeSuccess, false},
		{OutcomeSkipped, false},
		{OutcomeFailed, true},
		{OutcomeCancelled, false},
	}

	for _, test := range tests {
		result := ConversionResult{Outcome: test.outcome}
		if result.Failed() != test.expected {
			t.Errorf("Failed() with outcome %s = %v, expected %v",
				test.outcome, result.Failed(), test.expected)
		}
	}
}
