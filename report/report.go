// Package report renders the pipeline's merged per-topic content into a
// browsable report: one markdown page per topic plus an index, optionally
// converted into standalone HTML documents with navigation.
package report

import (
	"fmt"
	"strings"

	"github.com/hupe1980/videodigest/core"
	"github.com/hupe1980/videodigest/source"
)

// Page is a single rendered report page.
type Page struct {
	Name     string // file-style name, e.g. "index.md"
	Title    string
	Markdown string
}

// Input carries everything the builder needs. Topics drives the page order;
// topics missing from the content mappings are listed as failed.
type Input struct {
	Metadata           *source.VideoMetadata
	Topics             []string
	QAByTopic          map[string][]core.QAPair
	ExplanationByTopic map[string]string
	TopicErrors        map[string]string
}

// Build renders the index page followed by one page per successful topic, in
// original topic order.
func Build(in Input) []Page {
	pages := make([]Page, 0, len(in.Topics)+1)
	pages = append(pages, buildIndex(in))

	for i, topic := range in.Topics {
		if _, ok := in.ExplanationByTopic[topic]; !ok {
			continue
		}
		pages = append(pages, buildTopicPage(in, topic, i+1))
	}

	return pages
}

func buildIndex(in Input) Page {
	var b strings.Builder

	title := "Video Digest"
	if in.Metadata != nil && in.Metadata.Title != "" {
		title = in.Metadata.Title
	}

	fmt.Fprintf(&b, "# %s\n\n", title)
	if in.Metadata != nil && in.Metadata.Author != "" {
		fmt.Fprintf(&b, "By %s\n\n", in.Metadata.Author)
	}

	b.WriteString("## Topics\n\n")
	for i, topic := range in.Topics {
		if _, ok := in.ExplanationByTopic[topic]; ok {
			fmt.Fprintf(&b, "%d. [%s](%s)\n", i+1, topic, pageName(i+1, "md"))
		} else {
			fmt.Fprintf(&b, "%d. %s *(unavailable)*\n", i+1, topic)
		}
	}

	if len(in.TopicErrors) > 0 {
		b.WriteString("\n## Failed topics\n\n")
		for _, topic := range in.Topics {
			if detail, ok := in.TopicErrors[topic]; ok {
				fmt.Fprintf(&b, "- **%s**: %s\n", topic, detail)
			}
		}
	}

	return Page{Name: "index.md", Title: title, Markdown: b.String()}
}

func buildTopicPage(in Input, topic string, ordinal int) Page {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", topic)

	if expl, ok := in.ExplanationByTopic[topic]; ok {
		b.WriteString("## Explained simply\n\n")
		b.WriteString(strings.TrimSpace(expl))
		b.WriteString("\n\n")
	}

	if pairs := in.QAByTopic[topic]; len(pairs) > 0 {
		b.WriteString("## Questions\n\n")
		for _, qa := range pairs {
			fmt.Fprintf(&b, "### %s\n\n%s\n\n", qa.Question, qa.Answer)
		}
	}

	return Page{Name: pageName(ordinal, "md"), Title: topic, Markdown: b.String()}
}

func pageName(ordinal int, ext string) string {
	return fmt.Sprintf("topic_%02d.%s", ordinal, ext)
}
