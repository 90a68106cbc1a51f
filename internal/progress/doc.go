package progress

// Package progress normalizes raw progress events emitted by the external
// download operation into a percentage and a single human-readable status line.
// Everything here is a pure function; callers own the display.
