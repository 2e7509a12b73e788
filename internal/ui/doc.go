package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the scan and conversion services and renders the
// file selection tree, conversion options, progress, and settings.
