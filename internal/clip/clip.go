// Package clip fetches a web page, isolates its main content, and turns it
// into a markdown note ready for processing.
package clip

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"

	"github.com/camillescott/cryptic/internal/note"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "cryptic/1.0 (+https://github.com/camillescott/cryptic)"
)

// noiseSelectors are elements removed before extraction. None of them
// carry content the summarizer can use.
var noiseSelectors = []string{
	"script", "style", "noscript",
	"nav", "footer", "header",
	"iframe", "svg", "canvas",
	"form", "button", "input", "select", "textarea",
	".sidebar", ".menu", ".navigation", ".ads", ".advertisement",
}

// Page is a fetched web page reduced to its title and main content.
type Page struct {
	URL      string
	Title    string
	Markdown string
}

// Clipper fetches pages over HTTP and extracts their readable content.
type Clipper struct {
	client *http.Client
}

// New creates a Clipper with a request timeout suited to slow pages.
func New() *Clipper {
	return &Clipper{client: &http.Client{Timeout: defaultTimeout}}
}

// Clip fetches the URL and returns its main content as markdown.
func (c *Clipper) Clip(ctx context.Context, pageURL string) (*Page, error) {
	html, err := c.fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	title, fragment, err := extract(html)
	if err != nil {
		return nil, fmt.Errorf("extracting content from %s: %w", pageURL, err)
	}
	markdown, err := htmltomarkdown.ConvertString(fragment)
	if err != nil {
		return nil, fmt.Errorf("converting %s to markdown: %w", pageURL, err)
	}
	return &Page{
		URL:      pageURL,
		Title:    title,
		Markdown: strings.TrimSpace(markdown),
	}, nil
}

func (c *Clipper) fetch(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status %d for %s", resp.StatusCode, pageURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}
	return string(body), nil
}

// extract removes noise elements and returns the page title plus the best
// content container, preferring <main>, then <article>, then <body>.
func extract(html string) (title, fragment string, err error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", "", fmt.Errorf("parsing HTML: %w", err)
	}

	title = strings.TrimSpace(doc.Find("title").First().Text())

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	var content *goquery.Selection
	for _, tag := range []string{"main", "article", "body"} {
		sel := doc.Find(tag)
		if sel.Length() > 0 {
			content = sel.First()
			break
		}
	}
	if content == nil {
		return "", "", fmt.Errorf("no content container found")
	}

	fragment, err = goquery.OuterHtml(content)
	if err != nil {
		return "", "", fmt.Errorf("serializing content: %w", err)
	}
	return title, fragment, nil
}

// Note wraps the page in a frontmatter note at the given path, carrying
// the source URL and clip date so the processing step can trace it back.
func (p *Page) Note(path string) *note.Note {
	n := &note.Note{
		Path: path,
		Metadata: map[string]any{
			"source":  p.URL,
			"clipped": time.Now().Format(time.DateOnly),
			"tags":    []string{},
		},
		Content: p.Markdown,
	}
	if p.Title != "" {
		n.SetTitle(p.Title)
	}
	return n
}

// Filename derives a slug filename for the page from its title, falling
// back to the URL host when the page has no usable title.
func (p *Page) Filename() string {
	slug := note.NormalizeTag(p.Title)
	if slug == "" {
		if u, err := url.Parse(p.URL); err == nil && u.Host != "" {
			slug = note.NormalizeTag(u.Host)
		}
	}
	if slug == "" {
		slug = "clipped-page"
	}
	return slug + ".md"
}
