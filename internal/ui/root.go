package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ytget/yt-batch/internal/batch"
	"github.com/ytget/yt-batch/internal/config"
	"github.com/ytget/yt-batch/internal/download"
	"github.com/ytget/yt-batch/internal/logging"
	"github.com/ytget/yt-batch/internal/platform"
	"github.com/ytget/yt-batch/internal/progress"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	downloadSvc  download.Downloader
	controller   *batch.Controller
	ffmpegPath   string
	logger       zerolog.Logger

	// Cancelled when the window closes; aborts the in-flight download
	ctx    context.Context
	cancel context.CancelFunc

	urlEntry      *widget.Entry
	downloadBtn   *widget.Button
	cancelBtn     *widget.Button
	openFolderBtn *widget.Button
	progressBar   *widget.ProgressBar
	statusLabel   *widget.Label
	folderLabel   *widget.Label
	logTitle      *widget.Label
	logEntry      *widget.Entry

	// Owned by the UI goroutine
	logLines  []string
	running   bool
	outputDir string
}

// NewRootUI creates and initializes the main UI. ffmpegPath is the bundled
// ffmpeg location used when no override is configured.
func NewRootUI(window fyne.Window, app fyne.App, downloadSvc download.Downloader, ffmpegPath string) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ctx, cancel := context.WithCancel(context.Background())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		downloadSvc:  downloadSvc,
		ffmpegPath:   ffmpegPath,
		logger:       logging.For("ui"),
		ctx:          ctx,
		cancel:       cancel,
		outputDir:    settings.GetDownloadDirectory(),
	}

	expander := &playlistToggle{settings: settings, expander: platform.NewPlaylistExpander()}
	ui.controller = batch.NewController(downloadSvc, batch.WithExpander(expander))

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.SetCloseIntercept(ui.onClose)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.urlEntry = widget.NewMultiLineEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURLs))
	ui.urlEntry.SetMinRowsVisible(URLEntryRows)
	ui.urlEntry.Wrapping = fyne.TextWrapOff

	ui.downloadBtn = widget.NewButton(ui.localization.GetText(KeyDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance

	ui.cancelBtn = widget.NewButton(ui.localization.GetText(KeyCancel), ui.onCancelClick)
	ui.cancelBtn.Disable()

	ui.openFolderBtn = widget.NewButton(IconFolder+" "+ui.localization.GetText(KeyOpenFolder), ui.onOpenFolder)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.progressBar = widget.NewProgressBar()

	ui.statusLabel = widget.NewLabel(ui.localization.GetText(KeyReady))
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis

	ui.folderLabel = widget.NewLabel("")
	ui.folderLabel.Truncation = fyne.TextTruncateEllipsis
	ui.setOutputDir(ui.outputDir)

	ui.logTitle = widget.NewLabel(ui.localization.GetText(KeyLog))
	ui.logTitle.TextStyle = fyne.TextStyle{Bold: true}

	ui.logEntry = widget.NewMultiLineEntry()
	ui.logEntry.Wrapping = fyne.TextWrapWord
	ui.logEntry.Disable()

	var header fyne.CanvasObject = container.NewHBox(layout.NewSpacer(), settingsBtn)
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
		logoImage.FillMode = canvas.ImageFillContain
		header = container.NewHBox(logoImage, layout.NewSpacer(), settingsBtn)
	}

	controls := container.NewHBox(ui.downloadBtn, ui.cancelBtn, layout.NewSpacer(), ui.openFolderBtn)

	top := container.NewVBox(
		header,
		ui.urlEntry,
		controls,
		ui.progressBar,
		ui.statusLabel,
		ui.folderLabel,
		widget.NewSeparator(),
		ui.logTitle,
	)

	ui.window.SetContent(container.NewBorder(top, nil, nil, nil, ui.logEntry))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	openFolderItem := fyne.NewMenuItem(ui.localization.GetText(KeyOpenFolder), ui.onOpenFolder)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem, openFolderItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURLs))
	ui.downloadBtn.SetText(ui.localization.GetText(KeyDownload))
	ui.cancelBtn.SetText(ui.localization.GetText(KeyCancel))
	ui.openFolderBtn.SetText(IconFolder + " " + ui.localization.GetText(KeyOpenFolder))
	ui.logTitle.SetText(ui.localization.GetText(KeyLog))
	ui.setOutputDir(ui.outputDir)

	if !ui.running {
		ui.statusLabel.SetText(ui.localization.GetText(KeyReady))
	}
}

// onDownloadClick starts a batch for the URLs in the input box
func (ui *RootUI) onDownloadClick() {
	requests := batch.ParseRequests(ui.urlEntry.Text)
	if len(requests) == 0 {
		ui.showError(errors.New(ui.localization.GetText(KeyPleaseEnterURL)))
		return
	}

	opts := ui.settings.DownloadOptions(ui.ffmpegPath)
	if opts.FFmpegPath != "" && !platform.FileExists(opts.FFmpegPath) {
		// Let yt-dlp find ffmpeg on PATH
		ui.logger.Warn().Str("path", opts.FFmpegPath).Msg("ffmpeg not found, falling back to PATH")
		opts.FFmpegPath = ""
	}
	if err := platform.CreateDirectoryIfNotExists(opts.OutputDir); err != nil {
		ui.showError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorCreatingDir), err))
		return
	}
	ui.downloadSvc.SetOptions(opts)
	ui.setOutputDir(opts.OutputDir)

	run, err := ui.controller.Start(ui.ctx, requests)
	switch {
	case errors.Is(err, batch.ErrNoRequests):
		ui.showError(errors.New(ui.localization.GetText(KeyPleaseEnterURL)))
		return
	case errors.Is(err, batch.ErrBatchInProgress):
		ui.showError(errors.New(ui.localization.GetText(KeyBatchInProgress)))
		return
	case err != nil:
		ui.showError(err)
		return
	}

	ui.clearLog()
	ui.checkFreeSpace(opts.OutputDir)
	ui.setRunning(true)

	go ui.consume(run)
}

// onCancelClick stops the batch once the current download ends
func (ui *RootUI) onCancelClick() {
	if ui.controller.Cancel() {
		ui.statusLabel.SetText(ui.localization.GetText(KeyCancelling))
		ui.cancelBtn.Disable()
	}
}

// onClose aborts any running batch before the window closes
func (ui *RootUI) onClose() {
	ui.controller.Cancel()
	ui.cancel()
	ui.window.Close()
}

// consume forwards run events to the UI goroutine until the run ends
func (ui *RootUI) consume(run *batch.Run) {
	for e := range run.Events() {
		fyne.Do(func() {
			ui.handleEvent(e)
		})
	}
}

// handleEvent applies one run event to the widgets. It must run on the UI goroutine.
func (ui *RootUI) handleEvent(e batch.Event) {
	if line := batch.LogLine(e); line != "" {
		ui.appendLog(line)
	}

	switch e.Kind {
	case batch.EventBatchStarted:
		ui.progressBar.SetValue(0)
		ui.statusLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyStarting), e.Total))
	case batch.EventItemStarted:
		ui.progressBar.SetValue(0)
		ui.statusLabel.SetText(itemLabel(e, e.URL))
	case batch.EventProgress:
		ui.progressBar.SetValue(e.Progress.Percent / 100)
		ui.statusLabel.SetText(itemLabel(e, e.Progress.Line))
	case batch.EventItemDone:
		ui.resetProgress()
	case batch.EventCancelled:
		ui.resetProgress()
		ui.statusLabel.SetText(ui.localization.GetText(KeyCancelled))
		// Put back what was not attempted so Download resumes the batch
		ui.urlEntry.SetText(strings.Join(e.Remaining, "\n"))
		ui.setRunning(false)
	case batch.EventFinished:
		ui.resetProgress()
		ui.setRunning(false)
		ui.onFinished(e)
	}
}

func (ui *RootUI) onFinished(e batch.Event) {
	title := ui.localization.GetText(KeyAllDone)
	message := fmt.Sprintf("Success: %d Failed: %d", e.Summary.Success, e.Summary.Failed)

	ui.app.SendNotification(fyne.NewNotification(title, message))
	dialog.ShowInformation(title, message, ui.window)

	if ui.settings.GetOpenFolderOnFinish() && e.Summary.Success > 0 {
		ui.onOpenFolder()
	}
}

// checkFreeSpace logs a warning when the output volume is almost full
func (ui *RootUI) checkFreeSpace(dir string) {
	free, err := platform.CheckFreeSpace(dir, platform.MinFreeSpace)
	if err == nil {
		return
	}
	ui.logger.Warn().Err(err).Msg("disk space preflight")
	if free > 0 {
		ui.appendLog(fmt.Sprintf("%s: %s", ui.localization.GetText(KeyLowDiskSpace), progress.FormatBytes(float64(free))))
	}
}

// onOpenFolder reveals the output directory in the file manager
func (ui *RootUI) onOpenFolder() {
	if err := platform.OpenDirectory(ui.outputDir); err != nil {
		ui.logger.Error().Err(err).Str("dir", ui.outputDir).Msg("failed to open folder")
		ui.showError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFolder), err))
	}
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.setOutputDir(ui.settings.GetDownloadDirectory())
		if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
			ui.onLanguageChange(lang)
		}
	})
}

func (ui *RootUI) setRunning(running bool) {
	ui.running = running
	if running {
		ui.downloadBtn.Disable()
		ui.urlEntry.Disable()
		ui.cancelBtn.Enable()
		return
	}
	ui.downloadBtn.Enable()
	ui.urlEntry.Enable()
	ui.cancelBtn.Disable()
}

func (ui *RootUI) resetProgress() {
	ui.progressBar.SetValue(0)
	ui.statusLabel.SetText(ui.localization.GetText(KeyReady))
}

func (ui *RootUI) setOutputDir(dir string) {
	ui.outputDir = dir
	ui.folderLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeySavedTo), dir))
}

func (ui *RootUI) appendLog(line string) {
	ui.logLines = append(ui.logLines, line)
	if len(ui.logLines) > MaxLogLines {
		ui.logLines = ui.logLines[len(ui.logLines)-MaxLogLines:]
	}
	text := strings.Join(ui.logLines, "\n")
	ui.logEntry.SetText(text)
	ui.logEntry.CursorRow = strings.Count(text, "\n")
}

func (ui *RootUI) clearLog() {
	ui.logLines = nil
	ui.logEntry.SetText("")
}

func (ui *RootUI) showError(err error) {
	dialog.ShowError(err, ui.window)
}

// itemLabel prefixes text with the item position, e.g. "[2/5] ..."
func itemLabel(e batch.Event, text string) string {
	return fmt.Sprintf("[%d/%d] %s", e.Index+1, e.Total, text)
}

// playlistToggle expands playlist URLs only while the setting is enabled
type playlistToggle struct {
	settings *config.Settings
	expander batch.Expander
}

func (p *playlistToggle) Expand(ctx context.Context, url string) ([]string, error) {
	if !p.settings.GetExpandPlaylists() {
		return []string{url}, nil
	}
	return p.expander.Expand(ctx, url)
}

