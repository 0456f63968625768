package summary

// SchemaName labels the response schema in provider requests that want a
// named schema, e.g. OpenAI's json_schema response format.
const SchemaName = "note_summary"

const (
	pageSummaryDesc = "50 words or less focusing on the core functionality and content."
	takeawaysDesc   = "3 most important takeaways, not more than 30 words per takeaway."
	foundationsDesc = "50 words or less describing foundational work the article is built upon, " +
		"with author names and Markdown links to those works if possible."
	tagsDesc = `Relevant tags focusing on key topics, preferring single words over phrases. ` +
		`Focus on the big picture. If you must use a multiword tag, separate the words with "-", ` +
		`like: word1-word2. 4 to 7 total. All lowercase.`
	infoDesc = "Additional information on the page, depending on its category"
)

// Schema returns the JSON schema a summary response must satisfy. Every
// property is required and additional properties are rejected, which is
// what strict structured-output modes expect.
func Schema() map[string]any {
	variants := make([]any, 0, len(Categories()))
	for _, c := range Categories() {
		if v := infoSchema(c); v != nil {
			variants = append(variants, v)
		}
	}
	return envelopeSchema(schemaEnum(CategoryStrings(), categoryHelp), map[string]any{
		"anyOf":       variants,
		"description": infoDesc,
	})
}

// SchemaForCategory returns the summary schema with the category pinned,
// used when the caller forces a category instead of letting the model
// choose. Categories with their own info variant also pin the payload
// shape; the rest keep the full variant set.
func SchemaForCategory(c Category) map[string]any {
	info := infoSchema(c)
	if info == nil {
		full := Schema()
		props := full["properties"].(map[string]any)
		props["category"] = schemaEnum([]string{string(c)}, categoryHelp)
		return full
	}
	return envelopeSchema(schemaEnum([]string{string(c)}, categoryHelp), info)
}

func envelopeSchema(category, info map[string]any) map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"category": category,
			"tags":     schemaStringArray(tagsDesc),
			"info":     info,
		},
		"required":             []string{"category", "tags", "info"},
		"additionalProperties": false,
	}
}

// infoSchema returns the payload schema for one category, or nil for the
// categories that carry no structured payload of their own.
func infoSchema(c Category) map[string]any {
	switch c {
	case CategoryPaper:
		return variantSchema(c, []string{
			"summary", "title", "authors", "journal", "abstract", "doi", "takeaways", "foundations",
		}, map[string]any{
			"summary":     schemaString(pageSummaryDesc),
			"title":       schemaString(""),
			"authors":     schemaStringArray(""),
			"journal":     schemaString("The name of the journal."),
			"abstract":    schemaString("The entire abstract of the paper."),
			"doi":         schemaString("format: doi.org/[remainder of DOI]"),
			"takeaways":   schemaStringArray(takeawaysDesc),
			"foundations": schemaString(foundationsDesc),
		})
	case CategoryArticle:
		return variantSchema(c, []string{"summary", "takeaways", "foundations"}, map[string]any{
			"summary":     schemaString(pageSummaryDesc),
			"takeaways":   schemaStringArray(takeawaysDesc),
			"foundations": schemaString(foundationsDesc),
		})
	case CategoryEvent:
		return variantSchema(c, []string{"summary", "start_date", "end_date"}, map[string]any{
			"summary":    schemaString(pageSummaryDesc),
			"start_date": schemaString("format: YYYY-MM-DD"),
			"end_date":   schemaString("format: YYYY-MM-DD"),
		})
	case CategoryProduct:
		return variantSchema(c, []string{"summary", "name", "price"}, map[string]any{
			"summary": schemaString(pageSummaryDesc),
			"name":    schemaString("Concise product name, 10 words or less"),
			"price":   schemaString("format: $dollars.cents"),
		})
	case CategoryDiscussion:
		return variantSchema(c, []string{"summary", "topic", "viewpoints", "solution"}, map[string]any{
			"summary":    schemaString(pageSummaryDesc),
			"topic":      schemaString("Concise summary of the topic of the discussion in 20 words or less"),
			"viewpoints": schemaStringArray("Concise summary of up to 3 viewpoints in the discussion, 20 words or less each"),
			"solution":   schemaString("Concise summary of the proposed solution to the problem, 20 words or less"),
		})
	case CategoryMedia:
		types := make([]string, 0, len(MediaTypes()))
		for _, m := range MediaTypes() {
			types = append(types, string(m))
		}
		return variantSchema(c, []string{"summary", "artist", "media_type"}, map[string]any{
			"summary":    schemaString(pageSummaryDesc),
			"artist":     schemaString("Band, director, creator, or author"),
			"media_type": schemaEnum(types, mediaTypeHelp),
		})
	case CategorySoftware:
		return variantSchema(c, []string{"summary", "language"}, map[string]any{
			"summary":  schemaString(pageSummaryDesc),
			"language": schemaString("Primary language it's written in, or Unknown"),
		})
	case CategoryReference:
		return variantSchema(c, []string{"summary"}, map[string]any{
			"summary": schemaString(pageSummaryDesc),
		})
	default:
		return nil
	}
}

// variantSchema wraps one payload's properties with the category literal
// that discriminates it on the wire.
func variantSchema(c Category, required []string, props map[string]any) map[string]any {
	props["category"] = schemaEnum([]string{string(c)}, "")
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             append([]string{"category"}, required...),
		"additionalProperties": false,
	}
}

func schemaString(desc string) map[string]any {
	s := map[string]any{"type": "string"}
	if desc != "" {
		s["description"] = desc
	}
	return s
}

func schemaStringArray(desc string) map[string]any {
	s := map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string"},
	}
	if desc != "" {
		s["description"] = desc
	}
	return s
}

func schemaEnum(values []string, desc string) map[string]any {
	s := map[string]any{
		"type": "string",
		"enum": values,
	}
	if desc != "" {
		s["description"] = desc
	}
	return s
}
