package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVideoID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "watch url", input: "https://www.youtube.com/watch?v=dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{name: "short url", input: "https://youtu.be/dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{name: "embed url", input: "https://www.youtube.com/embed/dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{name: "shorts url", input: "https://youtube.com/shorts/dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{name: "bare id", input: "dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{name: "mobile url", input: "https://m.youtube.com/watch?v=dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{name: "wrong host", input: "https://vimeo.com/12345", wantErr: true},
		{name: "missing id", input: "https://www.youtube.com/watch", wantErr: true},
		{name: "garbage", input: "not a url at all!!", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVideoID(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestYouTube_FetchMetadata(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Query().Get("url"), "dQw4w9WgXcQ")
		_, _ = w.Write([]byte(`{"title":"Test Video","author_name":"Tester","provider_name":"YouTube"}`))
	}))
	defer srv.Close()

	yt := NewYouTube(func(o *YouTubeOptions) { o.OEmbedURL = srv.URL })

	md, err := yt.FetchMetadata(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "Test Video", md.Title)
	assert.Equal(t, "Tester", md.Author)
	assert.Equal(t, "dQw4w9WgXcQ", md.ID)
}

func TestYouTube_FetchTranscript(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "en", r.URL.Query().Get("lang"))
		_, _ = w.Write([]byte(`<?xml version="1.0" encoding="utf-8"?><transcript><text start="0" dur="2">hello</text><text start="2" dur="2">it&amp;#39;s a test</text></transcript>`))
	}))
	defer srv.Close()

	yt := NewYouTube(func(o *YouTubeOptions) { o.TimedTextURL = srv.URL })

	transcript, err := yt.FetchTranscript(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "hello it's a test", transcript)
}

func TestYouTube_FetchTranscript_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(""))
	}))
	defer srv.Close()

	yt := NewYouTube(func(o *YouTubeOptions) { o.TimedTextURL = srv.URL })

	_, err := yt.FetchTranscript(context.Background(), "dQw4w9WgXcQ")
	assert.ErrorIs(t, err, ErrNoTranscript)
}

func TestYouTube_FetchMetadata_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	yt := NewYouTube(func(o *YouTubeOptions) { o.OEmbedURL = srv.URL })

	_, err := yt.FetchMetadata(context.Background(), "dQw4w9WgXcQ")
	assert.Error(t, err)
}
