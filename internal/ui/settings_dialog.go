package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-batch/internal/config"
	"github.com/ytget/yt-batch/internal/download"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	downloadDirEntry *widget.Entry
	qualitySelect    *widget.Select
	mergeSelect      *widget.Select
	filenameEntry    *widget.Entry
	ffmpegEntry      *widget.Entry
	expandCheck      *widget.Check
	openFolderCheck  *widget.Check
	languageSelect   *widget.Select
}

// ShowSettingsDialog creates and shows the settings dialog. onSaved runs after
// the settings are stored.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	sd := NewSettingsDialog(settings, localization, window)
	sd.onSaved = onSaved
	sd.Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) text(key string) string {
	return sd.localization.GetText(key)
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.downloadDirEntry = widget.NewEntry()
	sd.downloadDirEntry.SetPlaceHolder("Download directory path")

	browseDirBtn := widget.NewButton(sd.text(KeyBrowse), sd.onBrowseDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.downloadDirEntry)

	qualityOptions := []string{}
	for _, preset := range sd.settings.GetQualityPresetOptions() {
		qualityOptions = append(qualityOptions, string(preset))
	}
	sd.qualitySelect = widget.NewSelect(qualityOptions, nil)

	sd.mergeSelect = widget.NewSelect(config.MergeFormats, nil)

	sd.filenameEntry = widget.NewEntry()
	sd.filenameEntry.SetPlaceHolder(config.DefaultFilenameTemplate)

	sd.ffmpegEntry = widget.NewEntry()
	sd.ffmpegEntry.SetPlaceHolder("/usr/local/bin/ffmpeg")

	sd.expandCheck = widget.NewCheck(sd.text(KeyExpandPlaylists), nil)
	sd.openFolderCheck = widget.NewCheck(sd.text(KeyOpenFolderOnFinish), nil)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = "Select language"

	form := container.NewVBox(
		widget.NewLabel(sd.text(KeyDownloadSettings)),
		widget.NewSeparator(),

		widget.NewLabel(sd.text(KeyDownloadDirectory)+":"),
		downloadDirRow,

		widget.NewLabel(sd.text(KeyQualityPreset)+":"),
		sd.qualitySelect,

		widget.NewLabel(sd.text(KeyMergeFormat)+":"),
		sd.mergeSelect,

		widget.NewLabel(sd.text(KeyFilenameTemplate)+":"),
		sd.filenameEntry,

		widget.NewLabel(sd.text(KeyFFmpegPath)+":"),
		sd.ffmpegEntry,

		sd.expandCheck,
		sd.openFolderCheck,

		widget.NewSeparator(),
		widget.NewLabel(sd.text(KeyInterfaceSettings)),
		widget.NewSeparator(),

		widget.NewLabel(sd.text(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.text(KeySettings),
		sd.text(KeySave),
		sd.text(KeyCancel),
		container.NewVScroll(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.qualitySelect.SetSelected(string(sd.settings.GetQualityPreset()))
	sd.mergeSelect.SetSelected(sd.settings.GetMergeFormat())
	sd.filenameEntry.SetText(sd.settings.GetFilenameTemplate())
	sd.ffmpegEntry.SetText(sd.settings.GetFFmpegPath())
	sd.expandCheck.SetChecked(sd.settings.GetExpandPlaylists())
	sd.openFolderCheck.SetChecked(sd.settings.GetOpenFolderOnFinish())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.downloadDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.save()

	if sd.onSaved != nil {
		sd.onSaved()
	}
	dialog.ShowInformation(sd.text(KeySettings), sd.text(KeySettingsSaved), sd.window)
}

// save stores the form values. Empty fields keep the current setting, except
// the ffmpeg path where empty clears the override.
func (sd *SettingsDialog) save() {
	if dir := sd.downloadDirEntry.Text; dir != "" {
		sd.settings.SetDownloadDirectory(dir)
	}
	if sd.qualitySelect.Selected != "" {
		sd.settings.SetQualityPreset(download.QualityPreset(sd.qualitySelect.Selected))
	}
	if sd.mergeSelect.Selected != "" {
		sd.settings.SetMergeFormat(sd.mergeSelect.Selected)
	}
	if sd.filenameEntry.Text != "" {
		sd.settings.SetFilenameTemplate(sd.filenameEntry.Text)
	}
	sd.settings.SetFFmpegPath(sd.ffmpegEntry.Text)
	sd.settings.SetExpandPlaylists(sd.expandCheck.Checked)
	sd.settings.SetOpenFolderOnFinish(sd.openFolderCheck.Checked)
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
}
