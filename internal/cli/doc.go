// Package cli is the yt-batch command line. Without arguments it opens the
// desktop window; "run" downloads a URL list in the terminal.
package cli
