// Package ui contains the Fyne-based desktop user interface for the application.
// It feeds the URL list to the batch controller, renders run events on the UI
// goroutine and edits settings. All UI strings are localized via Localization.
package ui
