package segment

import "github.com/Samrudhp/EduSummaryV2/internal/outline"

const (
	// MinSectionChars is the content a heading needs to become a section.
	MinSectionChars = 100

	maxTitleChars   = 100
	maxPreviewChars = 250
	ellipsis        = "..."
)

// Build cuts lines at each heading. Headings whose content does not exceed
// MinSectionChars produce no section. It returns the sections and the
// number of headings dropped.
func Build(headings []Candidate, lines []Line) ([]outline.Section, int) {
	if len(headings) < 2 {
		return nil, 0
	}

	var sections []outline.Section
	dropped := 0
	for i, h := range headings {
		end := len(lines)
		if i+1 < len(headings) {
			end = headings[i+1].LineIndex
		}

		content := joinText(lines[h.LineIndex+1 : end])
		if runeLen(content) <= MinSectionChars {
			dropped++
			continue
		}

		sections = append(sections, outline.Section{
			ID:         outline.SectionID(len(sections)),
			Title:      truncate(h.Title, maxTitleChars),
			Preview:    preview(content),
			Content:    content,
			Type:       h.Type,
			Confidence: h.Score,
		})
	}
	return sections, dropped
}

func preview(content string) string {
	if runeLen(content) > maxPreviewChars {
		return truncate(content, maxPreviewChars) + ellipsis
	}
	return content
}
