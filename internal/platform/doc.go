package platform

// Package platform contains OS integration and external tooling glue:
// filesystem helpers, bundled ffmpeg discovery, disk space checks and
// playlist expansion via the ytdlp library.
