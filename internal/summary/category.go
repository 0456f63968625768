package summary

import "fmt"

// Category classifies a clipped web page. The model picks one of these for
// every summarized note, and the note's frontmatter stores it verbatim.
type Category string

const (
	CategoryArticle    Category = "article"
	CategoryPaper      Category = "paper"
	CategoryEvent      Category = "event"
	CategoryWebapp     Category = "webapp"
	CategoryDiscussion Category = "discussion"
	CategorySoftware   Category = "software"
	CategoryFinancial  Category = "financial"
	CategoryProduct    Category = "product"
	CategoryStore      Category = "store"
	CategoryMedia      Category = "media"
	CategoryReference  Category = "reference"
	CategoryOther      Category = "other"
)

// categoryHelp doubles as the schema description for the category field, so
// the model sees the same definitions a human reader would.
const categoryHelp = `The category of the page, given its content and code. Categories are:
article: news articles, opinion pieces, analysis pieces
paper: scientific publications and preprints
event: pages describing some event, like a music festival or conference
webapp: interactive applications and calculators
discussion: forum threads, issues, question answer pages
software: software repositories such as github or gitlab repos, or pages for software and libraries, including software documentation sites
financial: banking, investment, cryptocurrency
product: pages for specific products
store: online storefronts, as opposed to specific product pages
media: multimedia pages: youtube videos, music links, art and visual media, books
reference: general knowledge articles, encyclopedia articles, informational
other: pages that don't fit any of the other categories well`

// Categories lists every recognized page category, in schema order.
func Categories() []Category {
	return []Category{
		CategoryArticle,
		CategoryPaper,
		CategoryEvent,
		CategoryWebapp,
		CategoryDiscussion,
		CategorySoftware,
		CategoryFinancial,
		CategoryProduct,
		CategoryStore,
		CategoryMedia,
		CategoryReference,
		CategoryOther,
	}
}

// CategoryStrings returns the categories as plain strings, e.g. for flag
// choices.
func CategoryStrings() []string {
	cats := Categories()
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = string(c)
	}
	return out
}

// Valid reports whether c is a recognized category.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory converts a string into a Category, rejecting unknown values.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category: %s", s)
	}
	return c, nil
}

// MediaType narrows the media category down to the kind of work.
type MediaType string

const (
	MediaFilm        MediaType = "film"
	MediaMusic       MediaType = "music"
	MediaVisual      MediaType = "visual"
	MediaInteractive MediaType = "interactive"
	MediaBook        MediaType = "book"
	MediaWritten     MediaType = "written"
)

const mediaTypeHelp = `film: movies, cinema, tv shows
music: music and music videos
visual: illustration, photography, and so on
interactive: games, interactive demos, etc
book: physical and digital books
written: poetry, short stories, etc`

// MediaTypes lists every recognized media type, in schema order.
func MediaTypes() []MediaType {
	return []MediaType{
		MediaFilm,
		MediaMusic,
		MediaVisual,
		MediaInteractive,
		MediaBook,
		MediaWritten,
	}
}
