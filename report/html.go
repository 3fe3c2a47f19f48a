package report

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// mermaidBlockPattern matches fenced mermaid code blocks after markdown
// conversion so they can be handed to mermaid.js instead of rendered as code.
var mermaidBlockPattern = regexp.MustCompile(`(?s)<pre><code class="language-mermaid">(.*?)</code></pre>`)

const pageCSS = `    <style>
        body {
            font-family: Arial, sans-serif;
            line-height: 1.6;
            max-width: 900px;
            margin: 0 auto;
            padding: 20px;
        }
        pre {
            background-color: #f5f5f5;
            padding: 15px;
            border-radius: 5px;
            overflow-x: auto;
        }
        code {
            background-color: #f5f5f5;
            padding: 2px 5px;
            border-radius: 3px;
        }
        .navigation {
            display: flex;
            justify-content: space-between;
            margin: 20px 0;
            padding: 10px;
            background-color: #f5f5f5;
            border-radius: 5px;
        }
        .nav-link {
            text-decoration: none;
            color: #0366d6;
        }
        .nav-link:hover {
            text-decoration: underline;
        }
        .mermaid {
            text-align: center;
            margin: 20px 0;
        }
    </style>`

const mermaidScript = `    <script src="https://cdn.jsdelivr.net/npm/mermaid@10/dist/mermaid.min.js"></script>
    <script>
        document.addEventListener('DOMContentLoaded', function() {
            mermaid.initialize({ startOnLoad: true, theme: 'default', securityLevel: 'loose' });
        });
    </script>`

// HTMLPage is a standalone HTML document produced from one markdown page.
type HTMLPage struct {
	Name string // e.g. "index.html"
	HTML string
}

// markdown is the shared converter; fenced code and tables match the source
// material the builder emits.
var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

// ConvertPages converts the markdown pages into linked HTML documents. Pages
// get prev/index/next navigation in slice order, with the first page treated
// as the index.
func ConvertPages(pages []Page) ([]HTMLPage, error) {
	out := make([]HTMLPage, 0, len(pages))
	for i, page := range pages {
		html, err := convertPage(pages, i)
		if err != nil {
			return nil, fmt.Errorf("convert page %s: %w", page.Name, err)
		}
		out = append(out, HTMLPage{Name: htmlName(page.Name), HTML: html})
	}
	return out, nil
}

func convertPage(pages []Page, i int) (string, error) {
	page := pages[i]

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(page.Markdown), &buf); err != nil {
		return "", err
	}

	body := convertMermaidBlocks(buf.String())
	nav := buildNavigation(pages, i)

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("    <meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "    <title>%s</title>\n", page.Title)
	b.WriteString(pageCSS + "\n")
	b.WriteString(mermaidScript + "\n")
	b.WriteString("</head>\n<body>\n")
	b.WriteString(nav)
	b.WriteString(body)
	b.WriteString(nav)
	b.WriteString("</body>\n</html>\n")

	return b.String(), nil
}

// convertMermaidBlocks rewrites rendered mermaid code blocks into divs that
// mermaid.js picks up, undoing the HTML entity escaping applied to code.
func convertMermaidBlocks(html string) string {
	return mermaidBlockPattern.ReplaceAllStringFunc(html, func(match string) string {
		content := mermaidBlockPattern.FindStringSubmatch(match)[1]
		content = strings.ReplaceAll(content, "&quot;", `"`)
		content = strings.ReplaceAll(content, "&gt;", ">")
		content = strings.ReplaceAll(content, "&lt;", "<")
		content = strings.ReplaceAll(content, "&amp;", "&")
		return "<div class=\"mermaid\">\n" + content + "\n</div>"
	})
}

func buildNavigation(pages []Page, i int) string {
	var prev, index, next string
	if i > 0 {
		prev = fmt.Sprintf(`<a class="nav-link" href="%s">&larr; Previous</a>`, htmlName(pages[i-1].Name))
	}
	if pages[i].Name != "index.md" {
		index = `<a class="nav-link" href="index.html">Index</a>`
	}
	if i < len(pages)-1 {
		next = fmt.Sprintf(`<a class="nav-link" href="%s">Next &rarr;</a>`, htmlName(pages[i+1].Name))
	}
	return fmt.Sprintf("<div class=\"navigation\">\n    %s\n    %s\n    %s\n</div>\n", prev, index, next)
}

func htmlName(mdName string) string {
	return strings.TrimSuffix(mdName, ".md") + ".html"
}
