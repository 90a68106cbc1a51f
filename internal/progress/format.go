package progress

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	byteStep       = 1024.0
	unknownValue   = "?"
	MergingMessage = "Merging streams..."
)

var byteUnits = []string{"B", "KiB", "MiB", "GiB"}

// Format converts a raw event into the display pair.
// Downloading events render as "<pct>% of ~ <total> at <speed>/s ETA <eta>"
// with an optional "(frag i/n)" suffix; finished events render the merge
// message; anything else yields an empty display.
func Format(e Event) Display {
	switch e.Status {
	case StatusDownloading:
		return formatDownloading(e)
	case StatusFinished:
		return Display{Percent: 100, Line: MergingMessage}
	default:
		return Display{}
	}
}

func formatDownloading(e Event) Display {
	total := e.TotalBytes
	if total == nil {
		total = e.TotalEstimate
	}

	percentText := cleanPercent(e.PercentText)
	if percentText == "" && e.DownloadedBytes != nil && total != nil && *total > 0 {
		percentText = strconv.FormatFloat(*e.DownloadedBytes / *total * 100, 'f', 1, 64)
	}
	if percentText == "" {
		percentText = "0"
	}

	// A missing speed reads as zero, unlike a missing total
	speed := 0.0
	if e.Speed != nil {
		speed = *e.Speed
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s%% of ~ %s at %s/s ETA %s",
		percentText, formatOptionalBytes(total), FormatBytes(speed), FormatETA(e.ETA))
	if e.FragmentIndex > 0 {
		count := unknownValue
		if e.FragmentCount > 0 {
			count = strconv.Itoa(e.FragmentCount)
		}
		fmt.Fprintf(&b, " (frag %d/%s)", e.FragmentIndex, count)
	}

	return Display{Percent: ParsePercent(percentText), Line: b.String()}
}

// FormatBytes renders a byte count in binary units with two decimals
func FormatBytes(n float64) string {
	for _, unit := range byteUnits {
		if n < byteStep {
			return fmt.Sprintf("%.2f%s", n, unit)
		}
		n /= byteStep
	}
	return fmt.Sprintf("%.2fTiB", n)
}

func formatOptionalBytes(n *float64) string {
	if n == nil {
		return unknownValue
	}
	return FormatBytes(*n)
}

// FormatETA renders seconds as "<m>m <s>s", or "?" when unknown
func FormatETA(sec *int) string {
	if sec == nil || *sec < 0 {
		return unknownValue
	}
	return fmt.Sprintf("%dm %ds", *sec/60, *sec%60)
}

// ParsePercent parses strings like " 42.5% " into a value clamped to 0..100.
// Unparseable input yields 0.
func ParsePercent(s string) float64 {
	v, err := strconv.ParseFloat(cleanPercent(s), 64)
	if err != nil || math.IsNaN(v) {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func cleanPercent(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "%", ""))
}
