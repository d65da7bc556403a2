package gmail

import (
	"encoding/base64"
	"fmt"
	"time"

	gmail "google.golang.org/api/gmail/v1"
)

// FetchFromSender retrieves recent messages from the given sender address and
// digests each one into an EmailSummary. A failure loading any single message
// fails the whole fetch; the tool boundary reports it as a structured error.
func (c *Client) FetchFromSender(sender string, opts FetchOptions) ([]EmailSummary, error) {
	max := opts.MaxResults
	if max <= 0 {
		max = DefaultMaxResults
	}
	if max > MaxResultsCap {
		max = MaxResultsCap
	}

	stubs, err := c.ListMessages(BuildSenderQuery(sender, opts.SinceDate), max)
	if err != nil {
		return nil, err
	}

	summaries := make([]EmailSummary, 0, len(stubs))
	for _, stub := range stubs {
		msg, err := c.GetMessage(stub.Id)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch message %s: %w", stub.Id, err)
		}
		summaries = append(summaries, Summarize(msg))
	}
	return summaries, nil
}

// BuildSenderQuery builds the Gmail search query for messages from the given
// sender, optionally bounded by a start date. sinceDate accepts RFC 3339 or a
// plain YYYY-MM-DD date; an unparseable date is ignored rather than rejected.
func BuildSenderQuery(sender, sinceDate string) string {
	q := fmt.Sprintf("from:%s", sender)
	if sinceDate == "" {
		return q
	}

	t, err := time.Parse(time.RFC3339, sinceDate)
	if err != nil {
		t, err = time.Parse("2006-01-02", sinceDate)
	}
	if err != nil {
		return q
	}
	return fmt.Sprintf("%s after:%s", q, t.Format("2006/01/02"))
}

// Summarize digests a full message into its headers, snippet and body links.
func Summarize(msg *gmail.Message) EmailSummary {
	body := bodyText(msg.Payload)
	return EmailSummary{
		MessageID: msg.Id,
		Subject:   HeaderValue(msg, "Subject"),
		From:      HeaderValue(msg, "From"),
		Date:      HeaderValue(msg, "Date"),
		Snippet:   msg.Snippet,
		Links:     ExtractLinks(body),
	}
}

// HeaderValue returns the value of the named header, or "" if absent.
func HeaderValue(msg *gmail.Message, name string) string {
	if msg.Payload == nil {
		return ""
	}
	for _, h := range msg.Payload.Headers {
		if h.Name == name {
			return h.Value
		}
	}
	return ""
}

// bodyText extracts the message body from a part tree. A part carrying
// inline data wins outright; otherwise HTML children are preferred over
// plain text because newsletters carry their links in the HTML variant,
// and nested multiparts are searched depth first.
func bodyText(part *gmail.MessagePart) string {
	if part == nil {
		return ""
	}
	if part.Body != nil && part.Body.Data != "" {
		return decodeBody(part.Body.Data)
	}
	if body := childBody(part, "text/html"); body != "" {
		return body
	}
	if body := childBody(part, "text/plain"); body != "" {
		return body
	}
	for _, p := range part.Parts {
		if body := bodyText(p); body != "" {
			return body
		}
	}
	return ""
}

// childBody returns the decoded inline body of the first direct child with
// the given MIME type.
func childBody(part *gmail.MessagePart, mimeType string) string {
	for _, p := range part.Parts {
		if p.MimeType == mimeType && p.Body != nil && p.Body.Data != "" {
			return decodeBody(p.Body.Data)
		}
	}
	return ""
}

// decodeBody decodes a Gmail body payload. The API uses base64url, but some
// senders produce standard base64, so fall back before giving up.
func decodeBody(data string) string {
	decoded, err := base64.URLEncoding.DecodeString(data)
	if err != nil {
		decoded, err = base64.StdEncoding.DecodeString(data)
		if err != nil {
			return ""
		}
	}
	return string(decoded)
}
