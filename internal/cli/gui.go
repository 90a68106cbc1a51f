package cli

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/ytget/yt-batch/internal/config"
	"github.com/ytget/yt-batch/internal/download"
	"github.com/ytget/yt-batch/internal/logging"
	"github.com/ytget/yt-batch/internal/platform"
	"github.com/ytget/yt-batch/internal/ui"
)

const (
	AppID   = "com.ytget.yt-batch"
	AppName = "YT Batch Downloader"

	WindowWidth  = 800
	WindowHeight = 600
)

func newGUICmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the desktop window",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runGUI(version)
		},
	}
}

func runGUI(version string) {
	logger := logging.For("app")
	logger.Info().Str("version", version).Msg("starting")

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Resolved once; the settings override wins when set
	ffmpegPath := platform.ResolveFFmpegPath()

	settings := config.NewSettings(myApp)
	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		logger.Warn().Err(err).Str("dir", downloadsDir).Msg("failed to ensure downloads dir")
	}

	downloadSvc := download.NewService(settings.DownloadOptions(ffmpegPath))
	ui.NewRootUI(myWindow, myApp, downloadSvc, ffmpegPath)

	myWindow.ShowAndRun()
}
