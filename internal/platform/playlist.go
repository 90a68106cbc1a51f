package platform

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ytget/ytdlp/v2"
)

// Timeout constants
const (
	DefaultPlaylistTimeout = 60 * time.Second
)

// URL parameters
const (
	PlaylistParam = "list"
)

// URL templates
const (
	YouTubeVideoURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// PlaylistItem is one video of a playlist
type PlaylistItem struct {
	VideoID string
	Title   string
}

type playlistFetcher func(ctx context.Context, playlistID string) ([]PlaylistItem, error)

// PlaylistExpander turns playlist URLs into the watch URLs of their videos
type PlaylistExpander struct {
	timeout time.Duration
	fetch   playlistFetcher
}

// NewPlaylistExpander creates an expander backed by the ytdlp library
func NewPlaylistExpander() *PlaylistExpander {
	return &PlaylistExpander{
		timeout: DefaultPlaylistTimeout,
		fetch:   fetchPlaylistItems,
	}
}

// SetTimeout sets the timeout for a single playlist lookup
func (p *PlaylistExpander) SetTimeout(timeout time.Duration) {
	p.timeout = timeout
}

// Expand returns the video URLs of a playlist URL. URLs without a playlist
// parameter are returned unchanged.
func (p *PlaylistExpander) Expand(ctx context.Context, rawURL string) ([]string, error) {
	playlistID := ExtractPlaylistID(rawURL)
	if playlistID == "" {
		return []string{rawURL}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	items, err := p.fetch(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("playlist %s is empty", playlistID)
	}

	urls := make([]string, 0, len(items))
	for _, it := range items {
		if it.VideoID == "" {
			continue
		}
		urls = append(urls, fmt.Sprintf(YouTubeVideoURLTemplate, it.VideoID))
	}
	return urls, nil
}

// ExtractPlaylistID returns the value of the list= query parameter, if any
func ExtractPlaylistID(rawURL string) string {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	return parsed.Query().Get(PlaylistParam)
}

func fetchPlaylistItems(ctx context.Context, playlistID string) ([]PlaylistItem, error) {
	d := ytdlp.New()
	items, err := d.GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, err
	}

	result := make([]PlaylistItem, 0, len(items))
	for _, it := range items {
		result = append(result, PlaylistItem{VideoID: it.VideoID, Title: it.Title})
	}
	return result, nil
}
