package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ytget/yt-batch/internal/batch"
	"github.com/ytget/yt-batch/internal/config"
	"github.com/ytget/yt-batch/internal/download"
	"github.com/ytget/yt-batch/internal/model"
	"github.com/ytget/yt-batch/internal/platform"
	"github.com/ytget/yt-batch/internal/progress"
)

type runOptions struct {
	file             string
	output           string
	quality          string
	mergeFormat      string
	filenameTemplate string
	ffmpeg           string
	expandPlaylists  bool
}

func newRunCmd() *cobra.Command {
	opts := runOptions{}

	cmd := &cobra.Command{
		Use:   "run [URL...] [OPTIONS]",
		Short: "Download URLs one after another without opening a window",
		Long: "Download URLs one after another without opening a window.\n" +
			"Ctrl+C stops after the current download; press it again to abort.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			requests, err := collectRequests(args, opts.file)
			if err != nil {
				return err
			}
			return runBatch(cmd.Context(), requests, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Read URLs from a text file (one per line) or a YAML file (urls: [...])")
	cmd.Flags().StringVarP(&opts.output, "output", "o", platform.DefaultOutputDir(), "Output directory")
	cmd.Flags().StringVarP(&opts.quality, "quality", "q", string(config.DefaultQualityPreset), "Quality preset (best, medium, audio)")
	cmd.Flags().StringVar(&opts.mergeFormat, "merge-format", config.DefaultMergeFormat, "Container for merged streams (mp4, mkv, webm)")
	cmd.Flags().StringVar(&opts.filenameTemplate, "template", config.DefaultFilenameTemplate, "yt-dlp filename template")
	cmd.Flags().StringVar(&opts.ffmpeg, "ffmpeg", "", "Path to the ffmpeg executable (defaults to the bundled one, then PATH)")
	cmd.Flags().BoolVarP(&opts.expandPlaylists, "expand-playlists", "p", false, "Expand playlist links into their videos")
	return cmd
}

// downloadOptions turns flags into download options
func (o runOptions) downloadOptions() download.Options {
	ffmpeg := o.ffmpeg
	if ffmpeg == "" {
		ffmpeg = platform.ResolveFFmpegPath()
	}
	if !platform.FileExists(ffmpeg) {
		ffmpeg = ""
	}

	return download.Options{
		OutputDir:        o.output,
		FilenameTemplate: o.filenameTemplate,
		Format:           download.FormatForQuality(download.QualityPreset(o.quality)),
		MergeFormat:      o.mergeFormat,
		FFmpegPath:       ffmpeg,
		NoPlaylist:       true,
	}
}

func runBatch(ctx context.Context, requests []string, opts runOptions) error {
	if !debug {
		// Keep the terminal for the rendered progress
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
	if len(requests) == 0 {
		return batch.ErrNoRequests
	}

	dlOpts := opts.downloadOptions()
	if err := platform.CreateDirectoryIfNotExists(dlOpts.OutputDir); err != nil {
		return err
	}
	if free, err := platform.CheckFreeSpace(dlOpts.OutputDir, platform.MinFreeSpace); err != nil && free > 0 {
		PrintWarning(fmt.Sprintf("%s Low disk space in %s: %s free", symbols["warning"], dlOpts.OutputDir, progress.FormatBytes(float64(free))))
	}

	svc := download.NewService(dlOpts)
	if err := svc.EnsureTool(ctx); err != nil {
		return err
	}

	var controllerOpts []batch.Option
	if opts.expandPlaylists {
		controllerOpts = append(controllerOpts, batch.WithExpander(platform.NewPlaylistExpander()))
	}
	controller := batch.NewController(svc, controllerOpts...)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	run, err := controller.Start(ctx, requests)
	if err != nil {
		return err
	}

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go handleSignals(sigCh, run, cancel)

	r := newStdoutRenderer()
	for e := range run.Events() {
		r.Handle(e)
	}

	return runResult(run.Wait())
}

// runResult maps a run summary to the command result
func runResult(summary model.Summary) error {
	if summary.HasFailures() {
		return errIncomplete
	}
	return nil
}

// handleSignals cancels the run after the current item on the first signal
// and aborts the in-flight download on the second.
func handleSignals(sigCh <-chan os.Signal, run *batch.Run, abort context.CancelFunc) {
	select {
	case <-sigCh:
	case <-run.Done():
		return
	}
	run.Cancel()
	fmt.Println()
	PrintWarning(symbols["warning"] + " Stopping after the current download, press Ctrl+C again to abort")

	select {
	case <-sigCh:
		abort()
	case <-run.Done():
	}
}
