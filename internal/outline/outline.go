// Package outline holds the records produced by segmentation and chunking.
package outline

import "fmt"

// HeadingType tags how a section boundary was recognised.
type HeadingType string

const (
	TypeAcademic         HeadingType = "academic_section"
	TypeNumbered         HeadingType = "numbered_section"
	TypeDotted           HeadingType = "dotted_number"
	TypeAllCaps          HeadingType = "all_caps"
	TypeTitleCase        HeadingType = "title_case"
	TypeShortCapitalized HeadingType = "short_capitalized"
	TypeContentBased     HeadingType = "content_based"
)

// Section is a titled, contiguous span of document content.
type Section struct {
	ID         string      `json:"id" yaml:"id"`
	Title      string      `json:"title" yaml:"title"`
	Preview    string      `json:"preview" yaml:"preview"`
	Content    string      `json:"content" yaml:"content"`
	Type       HeadingType `json:"type" yaml:"type"`
	Confidence int         `json:"confidence" yaml:"confidence"`
}

// Info is the short form of a section used in listings.
type Info struct {
	ID      string `json:"id" yaml:"id"`
	Title   string `json:"title" yaml:"title"`
	Preview string `json:"preview" yaml:"preview"`
}

// Info returns the listing form of s.
func (s Section) Info() Info {
	return Info{ID: s.ID, Title: s.Title, Preview: s.Preview}
}

// Chunk is a bounded, possibly overlapping slice of a section's content.
type Chunk struct {
	ChunkID      int    `json:"chunk_id" yaml:"chunk_id"`
	Text         string `json:"text" yaml:"text"`
	CharCount    int    `json:"char_count" yaml:"char_count"`
	SectionID    string `json:"section_id" yaml:"section_id"`
	SectionTitle string `json:"section_title" yaml:"section_title"`
	OverlapWords int    `json:"overlap_words" yaml:"overlap_words"` // leading words repeated from the previous chunk
}

// SectionID formats the sequential id of the n-th section (zero-based).
func SectionID(n int) string {
	return fmt.Sprintf("section_%d", n)
}
