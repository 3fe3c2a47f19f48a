package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/videodigest/core"
	"github.com/hupe1980/videodigest/source"
)

func sampleInput() Input {
	return Input{
		Metadata: &source.VideoMetadata{ID: "vid", Title: "Go Concurrency", Author: "Gopher"},
		Topics:   []string{"Goroutines", "Channels", "Select"},
		QAByTopic: map[string][]core.QAPair{
			"Goroutines": {{Question: "What is a goroutine?", Answer: "A lightweight thread."}},
			"Channels":   {{Question: "What is a channel?", Answer: "A typed conduit."}},
		},
		ExplanationByTopic: map[string]string{
			"Goroutines": "Goroutines run functions concurrently.",
			"Channels":   "Channels pass values between goroutines.",
		},
		TopicErrors: map[string]string{
			"Select": "generation timed out",
		},
	}
}

func TestBuild_PageSetAndOrder(t *testing.T) {
	pages := Build(sampleInput())

	require.Len(t, pages, 3) // index + 2 successful topics
	assert.Equal(t, "index.md", pages[0].Name)
	assert.Equal(t, "topic_01.md", pages[1].Name)
	assert.Equal(t, "topic_02.md", pages[2].Name)
	assert.Equal(t, "Goroutines", pages[1].Title)
}

func TestBuild_IndexContent(t *testing.T) {
	pages := Build(sampleInput())
	index := pages[0].Markdown

	assert.Contains(t, index, "# Go Concurrency")
	assert.Contains(t, index, "By Gopher")
	assert.Contains(t, index, "[Goroutines](topic_01.md)")
	assert.Contains(t, index, "Select *(unavailable)*")
	assert.Contains(t, index, "generation timed out")
}

func TestBuild_TopicPageContent(t *testing.T) {
	pages := Build(sampleInput())
	page := pages[1].Markdown

	assert.Contains(t, page, "# Goroutines")
	assert.Contains(t, page, "Goroutines run functions concurrently.")
	assert.Contains(t, page, "### What is a goroutine?")
	assert.Contains(t, page, "A lightweight thread.")
}

func TestConvertPages_NavigationLinks(t *testing.T) {
	htmlPages, err := ConvertPages(Build(sampleInput()))
	require.NoError(t, err)
	require.Len(t, htmlPages, 3)

	index := htmlPages[0]
	assert.Equal(t, "index.html", index.Name)
	assert.NotContains(t, index.HTML, "Previous")
	assert.Contains(t, index.HTML, `href="topic_01.html">Next`)

	middle := htmlPages[1].HTML
	assert.Contains(t, middle, `href="index.html">&larr; Previous`)
	assert.Contains(t, middle, `href="index.html">Index`)
	assert.Contains(t, middle, `href="topic_02.html">Next`)

	last := htmlPages[2].HTML
	assert.NotContains(t, last, "Next &rarr;")
}

func TestConvertPages_RendersMarkdown(t *testing.T) {
	htmlPages, err := ConvertPages(Build(sampleInput()))
	require.NoError(t, err)

	assert.Contains(t, htmlPages[1].HTML, "<h1>Goroutines</h1>")
	assert.Contains(t, htmlPages[1].HTML, "<h3>What is a goroutine?</h3>")
	assert.Contains(t, htmlPages[0].HTML, "<title>Go Concurrency</title>")
}

func TestConvertMermaidBlocks(t *testing.T) {
	in := `<pre><code class="language-mermaid">graph TD;
    A--&gt;B;
    B--&gt;&quot;C&quot;;
</code></pre>`
	out := convertMermaidBlocks(in)

	assert.True(t, strings.HasPrefix(out, `<div class="mermaid">`))
	assert.Contains(t, out, `A-->B;`)
	assert.Contains(t, out, `B-->"C";`)
	assert.NotContains(t, out, "<pre>")
}
