package download

// Package download implements the external download operation on top of yt-dlp
// (via github.com/lrstanley/go-ytdlp). One call downloads one URL, translating
// yt-dlp progress updates into progress events and yt-dlp failures into errors
// that carry a failure reason.
