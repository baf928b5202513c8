// ABOUTME: Metadata record produced by the extraction pipeline
// ABOUTME: Fields fill on a first-writer-wins basis across extraction strategies

package domain

// Metadata is the normalized record extracted for a resolved identifier.
// Any subset of fields may be empty; a partial record is still a valid result.
type Metadata struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Author      string   `json:"author"`
	PublishDate string   `json:"publishDate"`
	Thumbnail   string   `json:"thumbnail"`
	Tags        []string `json:"tags"`
}

// FillTitle sets the title only if it has not been set yet.
func (m *Metadata) FillTitle(v string) {
	if m.Title == "" && v != "" {
		m.Title = v
	}
}

// FillDescription sets the description only if it has not been set yet.
func (m *Metadata) FillDescription(v string) {
	if m.Description == "" && v != "" {
		m.Description = v
	}
}

// FillAuthor sets the author only if it has not been set yet.
func (m *Metadata) FillAuthor(v string) {
	if m.Author == "" && v != "" {
		m.Author = v
	}
}

// FillPublishDate sets the publish date only if it has not been set yet.
func (m *Metadata) FillPublishDate(v string) {
	if m.PublishDate == "" && v != "" {
		m.PublishDate = v
	}
}

// FillThumbnail sets the thumbnail URL only if it has not been set yet.
func (m *Metadata) FillThumbnail(v string) {
	if m.Thumbnail == "" && v != "" {
		m.Thumbnail = v
	}
}

// FillTags sets the tag list only if no tags have been collected yet.
func (m *Metadata) FillTags(tags []string) {
	if len(m.Tags) == 0 && len(tags) > 0 {
		m.Tags = tags
	}
}

// Merge fills every empty field of m from other. Fields already set on m
// are never overwritten.
func (m *Metadata) Merge(other *Metadata) {
	if other == nil {
		return
	}
	m.FillTitle(other.Title)
	m.FillDescription(other.Description)
	m.FillAuthor(other.Author)
	m.FillPublishDate(other.PublishDate)
	m.FillThumbnail(other.Thumbnail)
	m.FillTags(other.Tags)
}

// Complete reports whether every field has been filled. Used by extraction
// loops to stop trying further candidate pages.
func (m *Metadata) Complete() bool {
	return m.Title != "" && m.Description != "" && m.Author != "" &&
		m.PublishDate != "" && m.Thumbnail != "" && len(m.Tags) > 0
}
