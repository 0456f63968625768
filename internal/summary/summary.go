// Package summary defines the structured response a model returns for a
// clipped web page: an overall category, a tag list, and a category-specific
// info payload modeled as a closed variant set.
package summary

import (
	"encoding/json"
	"fmt"
)

// NoteSummary is the full structured extraction for one page.
type NoteSummary struct {
	Category Category `json:"category"`
	Tags     []string `json:"tags"`
	Info     NoteInfo `json:"info"`
}

// UnmarshalJSON decodes the envelope and then picks the info variant from
// the payload's own category literal. The envelope category and the info
// literal may disagree for categories without a variant of their own
// (webapp, financial, store, other), so the literal is authoritative for
// the payload shape.
func (s *NoteSummary) UnmarshalJSON(data []byte) error {
	var raw struct {
		Category Category        `json:"category"`
		Tags     []string        `json:"tags"`
		Info     json.RawMessage `json:"info"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.Info) == 0 || string(raw.Info) == "null" {
		return fmt.Errorf("summary: response has no info payload")
	}
	info, err := unmarshalInfo(raw.Info)
	if err != nil {
		return err
	}
	s.Category = raw.Category
	s.Tags = raw.Tags
	s.Info = info
	return nil
}

func unmarshalInfo(data []byte) (NoteInfo, error) {
	var tag struct {
		Category Category `json:"category"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return nil, fmt.Errorf("summary: reading info category: %w", err)
	}
	info := newInfo(tag.Category)
	if info == nil {
		return nil, fmt.Errorf("summary: no info variant for category %q", tag.Category)
	}
	if err := json.Unmarshal(data, info); err != nil {
		return nil, fmt.Errorf("summary: decoding %s info: %w", tag.Category, err)
	}
	return info, nil
}
