package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/yt-batch/internal/download"
	"github.com/ytget/yt-batch/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir        = "download_directory"
	KeyQualityPreset      = "quality_preset"
	KeyMergeFormat        = "merge_format"
	KeyFilenameTemplate   = "filename_template"
	KeyFFmpegPath         = "ffmpeg_path"
	KeyLanguage           = "app_language"
	KeyExpandPlaylists    = "expand_playlists"
	KeyOpenFolderOnFinish = "open_folder_on_finish"
)

// Default values
const (
	DefaultQualityPreset      = download.QualityBest
	DefaultMergeFormat        = download.DefaultMergeFormat
	DefaultFilenameTemplate   = download.DefaultFilenameTemplate
	DefaultLanguage           = "system"
	DefaultExpandPlaylists    = false
	DefaultOpenFolderOnFinish = false
)

// MergeFormats lists the containers yt-dlp can merge into
var MergeFormats = []string{"mp4", "mkv", "webm"}

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		defaultDir := platform.DefaultOutputDir()
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetQualityPreset returns the configured quality preset
func (s *Settings) GetQualityPreset() download.QualityPreset {
	preset := s.app.Preferences().String(KeyQualityPreset)
	if preset == "" {
		s.SetQualityPreset(DefaultQualityPreset)
		return DefaultQualityPreset
	}
	return download.QualityPreset(preset)
}

// SetQualityPreset sets the quality preset
func (s *Settings) SetQualityPreset(preset download.QualityPreset) {
	s.app.Preferences().SetString(KeyQualityPreset, string(preset))
}

// GetMergeFormat returns the container streams are merged into
func (s *Settings) GetMergeFormat() string {
	return s.app.Preferences().StringWithFallback(KeyMergeFormat, DefaultMergeFormat)
}

// SetMergeFormat sets the merge container; unknown formats reset to the default
func (s *Settings) SetMergeFormat(format string) {
	for _, f := range MergeFormats {
		if f == format {
			s.app.Preferences().SetString(KeyMergeFormat, format)
			return
		}
	}
	s.app.Preferences().SetString(KeyMergeFormat, DefaultMergeFormat)
}

// GetFilenameTemplate returns the filename template
func (s *Settings) GetFilenameTemplate() string {
	template := s.app.Preferences().String(KeyFilenameTemplate)
	if template == "" {
		s.SetFilenameTemplate(DefaultFilenameTemplate)
		return DefaultFilenameTemplate
	}
	return template
}

// SetFilenameTemplate sets the filename template
func (s *Settings) SetFilenameTemplate(template string) {
	if template == "" {
		template = DefaultFilenameTemplate
	}
	s.app.Preferences().SetString(KeyFilenameTemplate, template)
}

// GetFFmpegPath returns the user override for the ffmpeg location, empty when unset
func (s *Settings) GetFFmpegPath() string {
	return s.app.Preferences().String(KeyFFmpegPath)
}

// SetFFmpegPath sets the ffmpeg location override
func (s *Settings) SetFFmpegPath(path string) {
	s.app.Preferences().SetString(KeyFFmpegPath, path)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetExpandPlaylists returns whether playlist URLs are expanded into videos
func (s *Settings) GetExpandPlaylists() bool {
	return s.app.Preferences().BoolWithFallback(KeyExpandPlaylists, DefaultExpandPlaylists)
}

// SetExpandPlaylists sets whether playlist URLs are expanded into videos
func (s *Settings) SetExpandPlaylists(expand bool) {
	s.app.Preferences().SetBool(KeyExpandPlaylists, expand)
}

// GetOpenFolderOnFinish returns whether the output folder opens after a batch
func (s *Settings) GetOpenFolderOnFinish() bool {
	return s.app.Preferences().BoolWithFallback(KeyOpenFolderOnFinish, DefaultOpenFolderOnFinish)
}

// SetOpenFolderOnFinish sets whether the output folder opens after a batch
func (s *Settings) SetOpenFolderOnFinish(open bool) {
	s.app.Preferences().SetBool(KeyOpenFolderOnFinish, open)
}

// GetQualityPresetOptions returns available quality preset options
func (s *Settings) GetQualityPresetOptions() []download.QualityPreset {
	return download.QualityPresets()
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// DownloadOptions builds download options from the stored settings.
// bundledFFmpeg is used when no override is configured.
func (s *Settings) DownloadOptions(bundledFFmpeg string) download.Options {
	ffmpeg := s.GetFFmpegPath()
	if ffmpeg == "" {
		ffmpeg = bundledFFmpeg
	}
	return download.Options{
		OutputDir:        s.GetDownloadDirectory(),
		FilenameTemplate: s.GetFilenameTemplate(),
		Format:           download.FormatForQuality(s.GetQualityPreset()),
		MergeFormat:      s.GetMergeFormat(),
		FFmpegPath:       ffmpeg,
		NoPlaylist:       true,
	}
}
