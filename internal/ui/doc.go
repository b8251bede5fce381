package ui

// Package ui contains the Fyne-based desktop user interface. It wires the
// input form, the preview surface and the save action to the generation
// session and reports every outcome on a single status line. All UI strings
// are localized via Localization.
