package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/ytget/yt-batch/internal/logging"
)

var debug bool

// errIncomplete marks a run that ended with failures or was cancelled; the
// summary has already been printed.
var errIncomplete = errors.New("batch incomplete")

func newRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "yt-batch",
		Short:         "Download a list of videos one after another with yt-dlp",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Init(debug)
		},
		Run: func(cmd *cobra.Command, args []string) {
			runGUI(version)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newGUICmd(version))
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newVersionCmd(version))
	return rootCmd
}

// Execute runs the command line. Without a subcommand it opens the window.
func Execute(version string) {
	if err := newRootCmd(version).Execute(); err != nil {
		if !errors.Is(err, errIncomplete) {
			PrintError(err.Error())
		}
		os.Exit(1)
	}
}
