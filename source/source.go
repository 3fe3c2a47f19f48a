// Package source defines the input collaborator supplying video metadata and
// transcripts to the pipeline, plus a YouTube-backed implementation. The
// pipeline only depends on the VideoSource interface; alternative providers
// can be wired in via the façade options.
package source

import (
	"context"
	"errors"
)

// ErrNoTranscript is returned when a video has no retrievable transcript.
var ErrNoTranscript = errors.New("no transcript available")

// VideoMetadata describes a video as reported by its provider.
type VideoMetadata struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author_name"`
	Provider string `json:"provider_name"`
}

// VideoSource supplies metadata and transcripts for a video identifier.
// Implementations own their timeout policy; a timeout surfaces as an ordinary
// error to the calling step.
type VideoSource interface {
	// FetchMetadata returns descriptive metadata for the video.
	FetchMetadata(ctx context.Context, videoID string) (*VideoMetadata, error)

	// FetchTranscript returns the full transcript text for the video, or
	// ErrNoTranscript when none exists.
	FetchTranscript(ctx context.Context, videoID string) (string, error)
}
