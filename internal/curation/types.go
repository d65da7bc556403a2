package curation

// SourceType classifies a tracked content source.
type SourceType string

// Valid source types.
const (
	SourceTypeBlog       SourceType = "blog"
	SourceTypeArticle    SourceType = "article"
	SourceTypeNewsletter SourceType = "newsletter"
)

// IsValid reports whether t is a known source type.
func (t SourceType) IsValid() bool {
	switch t {
	case SourceTypeBlog, SourceTypeArticle, SourceTypeNewsletter:
		return true
	}
	return false
}

// ContentType classifies a piece of drafted content.
type ContentType string

// Valid content types.
const (
	ContentTypeArticle  ContentType = "article"
	ContentTypeLinkedIn ContentType = "linkedin"
	ContentTypeXPost    ContentType = "x_post"
)

// IsValid reports whether t is a known content type.
func (t ContentType) IsValid() bool {
	switch t {
	case ContentTypeArticle, ContentTypeLinkedIn, ContentTypeXPost:
		return true
	}
	return false
}

// ContentStatus is the lifecycle state of a piece of content.
type ContentStatus string

// Valid content statuses. Content is always created as draft; the transition
// to done is not enforced server-side.
const (
	ContentStatusDraft ContentStatus = "draft"
	ContentStatusDone  ContentStatus = "done"
)

// IsValid reports whether s is a known content status.
func (s ContentStatus) IsValid() bool {
	return s == ContentStatusDraft || s == ContentStatusDone
}

// Source is a tracked origin of content: a blog feed, a single article, or a
// newsletter sender. No two sources share the same (identifier, type) pair.
type Source struct {
	ID         string     `json:"id"`
	Type       SourceType `json:"type"`
	Identifier string     `json:"identifier"` // URL for blog/article, sender email for newsletter
	Title      string     `json:"title"`
	AddedAt    string     `json:"addedAt"`
	// LastScannedAt is set only by successful mail ingestion against this source.
	LastScannedAt string `json:"lastScannedAt,omitempty"`
}

// Inspiration is a candidate idea harvested from a source. The URL is unique
// across the collection; records are immutable once created.
type Inspiration struct {
	ID          string `json:"id"`
	SourceID    string `json:"sourceId"` // weak reference, not enforced
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Score       int    `json:"score"` // relevance score 1-10
	AddedAt     string `json:"addedAt"`
}

// Content is a drafted or finished piece of writing derived from one or more
// inspirations.
type Content struct {
	ID             string        `json:"id"`
	Type           ContentType   `json:"type"`
	Title          string        `json:"title"`
	Body           string        `json:"body"`
	Status         ContentStatus `json:"status"`
	InspirationIDs []string      `json:"inspirationIds"` // weak references, not enforced
	UserPrompt     string        `json:"userPrompt"`
	CreatedAt      string        `json:"createdAt"`
	UpdatedAt      string        `json:"updatedAt"`
}

// AddStatus reports the outcome of an add operation. Duplicate is a
// successful idempotent outcome, not an error.
type AddStatus string

// Add outcomes.
const (
	StatusAdded     AddStatus = "added"
	StatusDuplicate AddStatus = "duplicate"
)

// RemoveStatus reports the outcome of a remove operation.
type RemoveStatus string

// Remove outcomes.
const (
	StatusRemoved  RemoveStatus = "removed"
	StatusNotFound RemoveStatus = "not_found"
)

// UpdateAction reports which combination of fields a content update changed.
type UpdateAction string

// Update outcomes. ActionNoOp is returned when neither body nor status was
// provided; nothing is written in that case.
const (
	ActionBodyUpdated   UpdateAction = "body_updated"
	ActionStatusChanged UpdateAction = "status_changed"
	ActionBoth          UpdateAction = "both"
	ActionNotFound      UpdateAction = "not_found"
	ActionNoOp          UpdateAction = "no_op"
)
