package download

import (
	"path/filepath"
)

// Quality presets for downloads
type QualityPreset string

const (
	QualityBest   QualityPreset = "best"
	QualityMedium QualityPreset = "medium"
	QualityAudio  QualityPreset = "audio"
)

// Default values
const (
	DefaultFilenameTemplate = "%(title)s.%(ext)s"
	DefaultFormat           = "bestvideo+bestaudio/best"
	DefaultMergeFormat      = "mp4"
)

var qualityFormats = map[QualityPreset]string{
	QualityBest:   DefaultFormat,
	QualityMedium: "bestvideo[height<=720]+bestaudio/best[height<=720]",
	QualityAudio:  "bestaudio/best",
}

// FormatForQuality returns the yt-dlp format selector for a preset.
// Unknown presets fall back to the best quality selector.
func FormatForQuality(preset QualityPreset) string {
	if f, ok := qualityFormats[preset]; ok {
		return f
	}
	return DefaultFormat
}

// QualityPresets returns the available presets in display order
func QualityPresets() []QualityPreset {
	return []QualityPreset{QualityBest, QualityMedium, QualityAudio}
}

// Options configures a single yt-dlp invocation
type Options struct {
	OutputDir        string
	FilenameTemplate string
	Format           string
	MergeFormat      string
	FFmpegPath       string // empty means yt-dlp looks ffmpeg up on PATH
	NoPlaylist       bool
}

// DefaultOptions returns options for downloading into dir
func DefaultOptions(dir string) Options {
	return Options{
		OutputDir:        dir,
		FilenameTemplate: DefaultFilenameTemplate,
		Format:           DefaultFormat,
		MergeFormat:      DefaultMergeFormat,
		NoPlaylist:       true,
	}
}

// withDefaults fills empty fields with their defaults
func (o Options) withDefaults() Options {
	if o.FilenameTemplate == "" {
		o.FilenameTemplate = DefaultFilenameTemplate
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if o.MergeFormat == "" {
		o.MergeFormat = DefaultMergeFormat
	}
	return o
}

// OutputTemplate returns the full yt-dlp output template
func (o Options) OutputTemplate() string {
	o = o.withDefaults()
	if o.OutputDir == "" {
		return o.FilenameTemplate
	}
	return filepath.Join(o.OutputDir, o.FilenameTemplate)
}
