package source

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const (
	defaultOEmbedURL    = "https://www.youtube.com/oembed"
	defaultTimedTextURL = "https://video.google.com/timedtext"
	defaultLang         = "en"
	defaultTimeout      = 30 * time.Second
)

// videoIDPattern matches the canonical 11-character YouTube video id.
var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// ParseVideoID extracts the video id from the URL shapes YouTube serves
// (watch, short youtu.be, embed, shorts) or accepts a bare id.
func ParseVideoID(raw string) (string, error) {
	if videoIDPattern.MatchString(raw) {
		return raw, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid video url %q: %w", raw, err)
	}

	host := strings.TrimPrefix(u.Hostname(), "www.")
	var id string
	switch host {
	case "youtube.com", "m.youtube.com", "youtube-nocookie.com":
		switch {
		case u.Path == "/watch":
			id = u.Query().Get("v")
		case strings.HasPrefix(u.Path, "/embed/"):
			id = strings.TrimPrefix(u.Path, "/embed/")
		case strings.HasPrefix(u.Path, "/shorts/"):
			id = strings.TrimPrefix(u.Path, "/shorts/")
		}
	case "youtu.be":
		id = strings.TrimPrefix(u.Path, "/")
	}

	if !videoIDPattern.MatchString(id) {
		return "", fmt.Errorf("could not extract video id from %q", raw)
	}
	return id, nil
}

// YouTubeOptions configure the YouTube source.
type YouTubeOptions struct {
	// HTTPClient performs the requests; defaults to a client with Timeout.
	HTTPClient *http.Client
	// OEmbedURL overrides the metadata endpoint (tests).
	OEmbedURL string
	// TimedTextURL overrides the transcript endpoint (tests).
	TimedTextURL string
	// Lang selects the caption language, default "en".
	Lang string
	// Timeout bounds each request when no HTTPClient is supplied.
	Timeout time.Duration
}

// YouTube fetches metadata via the public oEmbed endpoint and transcripts via
// the timedtext caption endpoint. It implements VideoSource.
type YouTube struct {
	client       *http.Client
	oembedURL    string
	timedTextURL string
	lang         string
}

// NewYouTube creates a YouTube source with optional overrides.
func NewYouTube(optFns ...func(o *YouTubeOptions)) *YouTube {
	opts := YouTubeOptions{
		OEmbedURL:    defaultOEmbedURL,
		TimedTextURL: defaultTimedTextURL,
		Lang:         defaultLang,
		Timeout:      defaultTimeout,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: opts.Timeout}
	}
	return &YouTube{
		client:       opts.HTTPClient,
		oembedURL:    opts.OEmbedURL,
		timedTextURL: opts.TimedTextURL,
		lang:         opts.Lang,
	}
}

// FetchMetadata implements VideoSource using the oEmbed endpoint.
func (y *YouTube) FetchMetadata(ctx context.Context, videoID string) (*VideoMetadata, error) {
	endpoint := fmt.Sprintf("%s?url=%s&format=json",
		y.oembedURL,
		url.QueryEscape("https://www.youtube.com/watch?v="+videoID),
	)

	body, err := y.get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch metadata for %s: %w", videoID, err)
	}

	var md VideoMetadata
	if err := json.Unmarshal(body, &md); err != nil {
		return nil, fmt.Errorf("decode metadata for %s: %w", videoID, err)
	}
	md.ID = videoID

	return &md, nil
}

// timedTextDoc mirrors the caption XML served by the timedtext endpoint.
type timedTextDoc struct {
	XMLName xml.Name `xml:"transcript"`
	Texts   []struct {
		Value string `xml:",chardata"`
	} `xml:"text"`
}

// FetchTranscript implements VideoSource using the timedtext endpoint.
func (y *YouTube) FetchTranscript(ctx context.Context, videoID string) (string, error) {
	endpoint := fmt.Sprintf("%s?lang=%s&v=%s", y.timedTextURL, url.QueryEscape(y.lang), url.QueryEscape(videoID))

	body, err := y.get(ctx, endpoint)
	if err != nil {
		return "", fmt.Errorf("fetch transcript for %s: %w", videoID, err)
	}
	if len(body) == 0 {
		return "", ErrNoTranscript
	}

	var doc timedTextDoc
	if err := xml.Unmarshal(body, &doc); err != nil {
		return "", fmt.Errorf("decode transcript for %s: %w", videoID, err)
	}
	if len(doc.Texts) == 0 {
		return "", ErrNoTranscript
	}

	parts := make([]string, 0, len(doc.Texts))
	for _, t := range doc.Texts {
		// Caption text is frequently double-escaped (&amp;#39; etc.).
		cleaned := strings.TrimSpace(html.UnescapeString(t.Value))
		if cleaned != "" {
			parts = append(parts, cleaned)
		}
	}
	if len(parts) == 0 {
		return "", ErrNoTranscript
	}

	return strings.Join(parts, " "), nil
}

func (y *YouTube) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := y.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}
