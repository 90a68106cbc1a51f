package platform

import (
	"os"
	"path/filepath"
	"runtime"
)

// FFmpeg executable names
const (
	FFmpegBinary        = "ffmpeg"
	FFmpegBinaryWindows = "ffmpeg.exe"
)

// macOS app bundles keep auxiliary binaries in Contents/Resources
const bundleResourcesDir = "../Resources"

// FFmpegBinaryName returns the ffmpeg executable name for the current OS
func FFmpegBinaryName() string {
	if runtime.GOOS == OSWindows {
		return FFmpegBinaryWindows
	}
	return FFmpegBinary
}

// ResolveFFmpegPath picks the ffmpeg executable shipped with the application.
// When the program runs from a packaged bundle (ffmpeg sits next to the
// executable, or in the Resources folder of a macOS app bundle) the bundled
// path is returned; otherwise the path relative to the working directory.
func ResolveFFmpegPath() string {
	exe, err := os.Executable()
	if err != nil {
		exe = ""
	}
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return resolveFFmpegPath(exe, wd, FFmpegBinaryName())
}

func resolveFFmpegPath(exe, wd, name string) string {
	if exe != "" {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		exeDir := filepath.Dir(exe)
		for _, dir := range []string{exeDir, filepath.Join(exeDir, bundleResourcesDir)} {
			candidate := filepath.Join(dir, name)
			if isFile(candidate) {
				return filepath.Clean(candidate)
			}
		}
	}
	return filepath.Join(wd, name)
}

// FileExists reports whether path names an existing regular file
func FileExists(path string) bool {
	return isFile(path)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
