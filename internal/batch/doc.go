package batch

// Package batch sequences a list of download requests on a single background
// worker. The worker owns the run counters and reports progress, per-item
// outcomes, cancellation and the final summary as events on a channel consumed
// by exactly one front-end goroutine.
