package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/ytget/yt-batch/internal/batch"
	"github.com/ytget/yt-batch/internal/model"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))             // green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))             // red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))            // yellow
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))            // blue
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))            // cyan
	streamStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))           // grey
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")) // purple
)

var symbols = map[string]string{
	"pass":    "✓",
	"fail":    "✗",
	"warning": "!",
	"pending": "◉",
	"bullet":  "•",
	"hline":   "━",
}

const (
	defaultTerminalWidth = 80
	maxBarWidth          = 30
)

func PrintError(text string) {
	fmt.Fprintln(os.Stderr, errorStyle.Render(text))
}
func PrintWarning(text string) {
	fmt.Println(warningStyle.Render(text))
}
func PrintInfo(text string) {
	fmt.Println(infoStyle.Render(text))
}

// progressBar renders percent (0..100) as a bar of the given width
func progressBar(percent float64, width int) string {
	if width <= 0 {
		width = maxBarWidth
	}
	percent = max(0, min(percent, 100))
	filled := max(0, min(int(percent/100*float64(width)), width))

	bar := symbols["bullet"]
	bar += strings.Repeat(symbols["hline"], filled)
	bar += strings.Repeat(" ", width-filled)
	bar += symbols["bullet"]
	return bar
}

func terminalWidth(f *os.File) int {
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultTerminalWidth
	}
	return width
}

// truncate shortens s to at most n runes
func truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	if n == 1 {
		return string(runes[:1])
	}
	return string(runes[:n-1]) + "…"
}

// renderer prints run events. On a terminal, progress is drawn on a single
// line that is rewritten in place; otherwise progress events are skipped.
type renderer struct {
	w        io.Writer
	tty      bool
	width    int
	inflight bool
}

func newRenderer(w io.Writer, tty bool, width int) *renderer {
	if width <= 0 {
		width = defaultTerminalWidth
	}
	return &renderer{w: w, tty: tty, width: width}
}

// newStdoutRenderer sizes the renderer from the terminal attached to stdout
func newStdoutRenderer() *renderer {
	tty := term.IsTerminal(int(os.Stdout.Fd()))
	return newRenderer(os.Stdout, tty, terminalWidth(os.Stdout))
}

func (r *renderer) Handle(e batch.Event) {
	if e.Kind == batch.EventProgress {
		r.progress(e)
		return
	}
	r.clearLine()

	line := batch.LogLine(e)
	switch e.Kind {
	case batch.EventBatchStarted:
		r.println(headerStyle.Render(fmt.Sprintf("%s Downloading %d item(s)", symbols["pending"], e.Total)))
	case batch.EventItemStarted:
		r.println(pendingStyle.Render(position(e)) + " " + line)
	case batch.EventItemDone, batch.EventCancelled:
		r.println(statusLine(e.Status, line))
	case batch.EventFinished:
		r.println(headerStyle.Render(line))
	}
}

func (r *renderer) progress(e batch.Event) {
	if !r.tty {
		return
	}
	barWidth := min(maxBarWidth, r.width/3)
	text := fmt.Sprintf("%s %s %s", position(e), progressBar(e.Progress.Percent, barWidth), e.Progress.Line)
	fmt.Fprint(r.w, "\r\033[K"+streamStyle.Render(truncate(text, r.width-1)))
	r.inflight = true
}

// clearLine removes the in-place progress line before regular output
func (r *renderer) clearLine() {
	if r.inflight {
		fmt.Fprint(r.w, "\r\033[K")
		r.inflight = false
	}
}

func (r *renderer) println(s string) {
	fmt.Fprintln(r.w, s)
}

// statusLine styles a finished line by the item status it reports
func statusLine(status model.ItemStatus, line string) string {
	switch status {
	case model.ItemStatusCompleted:
		return successStyle.Render(symbols["pass"] + " " + line)
	case model.ItemStatusFailed:
		return errorStyle.Render(symbols["fail"] + " " + line)
	case model.ItemStatusSkipped:
		return warningStyle.Render(symbols["warning"] + " " + line)
	default:
		return line
	}
}

func position(e batch.Event) string {
	return fmt.Sprintf("[%d/%d]", e.Index+1, e.Total)
}
