package summary

import "fmt"

// NoteInfo is the category-specific payload of a note summary. The set of
// variants is closed: each implementation below stands for one category
// literal on the wire, and consumers dispatch with a type switch over the
// concrete types rather than inspecting the literal again.
type NoteInfo interface {
	noteInfo()
}

// PaperInfo describes a scientific publication or preprint.
type PaperInfo struct {
	Summary     string   `json:"summary"`
	Title       string   `json:"title"`
	Authors     []string `json:"authors"`
	Journal     string   `json:"journal"`
	Abstract    string   `json:"abstract"`
	DOI         string   `json:"doi"`
	Takeaways   []string `json:"takeaways"`
	Foundations string   `json:"foundations"`
}

// ArticleInfo describes a news article, opinion piece, or analysis piece.
type ArticleInfo struct {
	Summary     string   `json:"summary"`
	Takeaways   []string `json:"takeaways"`
	Foundations string   `json:"foundations"`
}

// EventInfo describes a page for an event such as a festival or conference.
type EventInfo struct {
	Summary   string `json:"summary"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ProductInfo describes a page for one specific product.
type ProductInfo struct {
	Summary string `json:"summary"`
	Name    string `json:"name"`
	Price   string `json:"price"`
}

// DiscussionInfo describes a forum thread, issue, or question-answer page.
type DiscussionInfo struct {
	Summary    string   `json:"summary"`
	Topic      string   `json:"topic"`
	Viewpoints []string `json:"viewpoints"`
	Solution   string   `json:"solution"`
}

// MediaInfo describes a multimedia page: video, music, art, books.
type MediaInfo struct {
	Summary   string    `json:"summary"`
	Artist    string    `json:"artist"`
	MediaType MediaType `json:"media_type"`
}

// SoftwareInfo describes a software repository or documentation site.
type SoftwareInfo struct {
	Summary  string `json:"summary"`
	Language string `json:"language"`
}

// ReferenceInfo describes a general-knowledge or encyclopedia page.
type ReferenceInfo struct {
	Summary string `json:"summary"`
}

func (*PaperInfo) noteInfo()      {}
func (*ArticleInfo) noteInfo()    {}
func (*EventInfo) noteInfo()      {}
func (*ProductInfo) noteInfo()    {}
func (*DiscussionInfo) noteInfo() {}
func (*MediaInfo) noteInfo()      {}
func (*SoftwareInfo) noteInfo()   {}
func (*ReferenceInfo) noteInfo()  {}

// InfoCategory returns the category literal a variant stands for on the
// wire.
func InfoCategory(info NoteInfo) Category {
	switch info.(type) {
	case *PaperInfo:
		return CategoryPaper
	case *ArticleInfo:
		return CategoryArticle
	case *EventInfo:
		return CategoryEvent
	case *ProductInfo:
		return CategoryProduct
	case *DiscussionInfo:
		return CategoryDiscussion
	case *MediaInfo:
		return CategoryMedia
	case *SoftwareInfo:
		return CategorySoftware
	case *ReferenceInfo:
		return CategoryReference
	default:
		panic(fmt.Sprintf("summary: unhandled info variant %T", info))
	}
}

// InfoSummary returns the variant's free-text summary paragraph.
func InfoSummary(info NoteInfo) string {
	switch i := info.(type) {
	case *PaperInfo:
		return i.Summary
	case *ArticleInfo:
		return i.Summary
	case *EventInfo:
		return i.Summary
	case *ProductInfo:
		return i.Summary
	case *DiscussionInfo:
		return i.Summary
	case *MediaInfo:
		return i.Summary
	case *SoftwareInfo:
		return i.Summary
	case *ReferenceInfo:
		return i.Summary
	default:
		panic(fmt.Sprintf("summary: unhandled info variant %T", info))
	}
}

// newInfo returns the zero variant registered for a category literal, or
// nil when the category carries no structured payload of its own.
func newInfo(c Category) NoteInfo {
	switch c {
	case CategoryPaper:
		return &PaperInfo{}
	case CategoryArticle:
		return &ArticleInfo{}
	case CategoryEvent:
		return &EventInfo{}
	case CategoryProduct:
		return &ProductInfo{}
	case CategoryDiscussion:
		return &DiscussionInfo{}
	case CategoryMedia:
		return &MediaInfo{}
	case CategorySoftware:
		return &SoftwareInfo{}
	case CategoryReference:
		return &ReferenceInfo{}
	default:
		return nil
	}
}
