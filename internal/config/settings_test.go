package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/yt-batch/internal/download"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestDownloadDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetDownloadDirectory()
	if dir == "" {
		t.Error("Download directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/downloads"
	settings.SetDownloadDirectory(customDir)

	retrievedDir := settings.GetDownloadDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected download directory %s, got %s", customDir, retrievedDir)
	}
}

func TestQualityPreset(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	preset := settings.GetQualityPreset()
	if preset != DefaultQualityPreset {
		t.Errorf("Expected default quality preset %s, got %s", DefaultQualityPreset, preset)
	}

	// Test setting custom value
	settings.SetQualityPreset(download.QualityAudio)

	retrievedPreset := settings.GetQualityPreset()
	if retrievedPreset != download.QualityAudio {
		t.Errorf("Expected quality preset %s, got %s", download.QualityAudio, retrievedPreset)
	}
}

func TestMergeFormat(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetMergeFormat(); got != DefaultMergeFormat {
		t.Errorf("Expected default merge format %s, got %s", DefaultMergeFormat, got)
	}

	settings.SetMergeFormat("mkv")
	if got := settings.GetMergeFormat(); got != "mkv" {
		t.Errorf("Expected merge format mkv, got %s", got)
	}

	// Unknown containers fall back to the default
	settings.SetMergeFormat("avi")
	if got := settings.GetMergeFormat(); got != DefaultMergeFormat {
		t.Errorf("Expected merge format to reset to %s, got %s", DefaultMergeFormat, got)
	}
}

func TestFilenameTemplate(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	template := settings.GetFilenameTemplate()
	if template != DefaultFilenameTemplate {
		t.Errorf("Expected default filename template %s, got %s", DefaultFilenameTemplate, template)
	}

	// Test setting custom value
	customTemplate := "%(uploader)s - %(title)s.%(ext)s"
	settings.SetFilenameTemplate(customTemplate)

	retrievedTemplate := settings.GetFilenameTemplate()
	if retrievedTemplate != customTemplate {
		t.Errorf("Expected filename template %s, got %s", customTemplate, retrievedTemplate)
	}

	settings.SetFilenameTemplate("")
	if got := settings.GetFilenameTemplate(); got != DefaultFilenameTemplate {
		t.Errorf("Expected empty template to reset to default, got %s", got)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("ru")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "ru" {
		t.Errorf("Expected language ru, got %s", retrievedLang)
	}
}

func TestToggles(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetExpandPlaylists() != DefaultExpandPlaylists {
		t.Error("Expected default expand playlists setting")
	}
	if settings.GetOpenFolderOnFinish() != DefaultOpenFolderOnFinish {
		t.Error("Expected default open folder setting")
	}

	settings.SetExpandPlaylists(true)
	settings.SetOpenFolderOnFinish(true)

	if !settings.GetExpandPlaylists() {
		t.Error("Expected expand playlists to be enabled")
	}
	if !settings.GetOpenFolderOnFinish() {
		t.Error("Expected open folder on finish to be enabled")
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()
	for _, lang := range []string{"system", "en", "ru", "pt"} {
		if _, ok := options[lang]; !ok {
			t.Errorf("Expected language option %s", lang)
		}
	}
}

func TestDownloadOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	settings.SetDownloadDirectory("/videos")
	settings.SetQualityPreset(download.QualityMedium)
	settings.SetMergeFormat("webm")

	opts := settings.DownloadOptions("/bundle/ffmpeg")
	if opts.OutputDir != "/videos" {
		t.Errorf("Expected output dir /videos, got %s", opts.OutputDir)
	}
	if opts.Format != download.FormatForQuality(download.QualityMedium) {
		t.Errorf("Expected medium format, got %s", opts.Format)
	}
	if opts.MergeFormat != "webm" {
		t.Errorf("Expected merge format webm, got %s", opts.MergeFormat)
	}
	if opts.FFmpegPath != "/bundle/ffmpeg" {
		t.Errorf("Expected bundled ffmpeg path, got %s", opts.FFmpegPath)
	}
	if !opts.NoPlaylist {
		t.Error("Expected single video downloads")
	}

	// A configured override wins over the bundled binary
	settings.SetFFmpegPath("/usr/local/bin/ffmpeg")
	if got := settings.DownloadOptions("/bundle/ffmpeg").FFmpegPath; got != "/usr/local/bin/ffmpeg" {
		t.Errorf("Expected ffmpeg override, got %s", got)
	}
}
