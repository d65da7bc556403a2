package gmail

// Credentials holds the OAuth2 material needed to act on a Gmail account.
// The refresh token must carry the gmail.readonly scope.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// Complete reports whether all three credential fields are present.
func (c Credentials) Complete() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.RefreshToken != ""
}

// EmailSummary is the digest of one fetched message: headers, snippet, and the
// article links extracted from the body.
type EmailSummary struct {
	MessageID string   `json:"messageId"`
	Subject   string   `json:"subject"`
	From      string   `json:"from"`
	Date      string   `json:"date"`
	Snippet   string   `json:"snippet"`
	Links     []string `json:"links"`
}

// FetchOptions bounds a fetch. SinceDate is an RFC 3339 timestamp or a plain
// YYYY-MM-DD date; empty means no lower bound. MaxResults 0 falls back to
// DefaultMaxResults and is capped at MaxResultsCap.
type FetchOptions struct {
	SinceDate  string
	MaxResults int64
}

// Fetch bounds.
const (
	DefaultMaxResults int64 = 10
	MaxResultsCap     int64 = 50
)
