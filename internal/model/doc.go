package model

// Package model defines the data records shared by the batch worker and the
// front-ends: per-item status, outcome variants, run state and summaries.
// Values are produced by the worker and handed over to the display side by
// copy, never shared.
