package gmail

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// ErrMissingCredentials is returned when any of the three OAuth2 credential
// fields is absent.
var ErrMissingCredentials = errors.New("gmail credentials not configured")

// Client wraps the Gmail Users service for read-only newsletter access.
type Client struct {
	svc *gmail.UsersService
}

// NewClient creates a Gmail client that authenticates with the given OAuth2
// refresh token. The access token is minted lazily and refreshed by the token
// source, so a long-lived client stays valid.
func NewClient(ctx context.Context, creds Credentials) (*Client, error) {
	if !creds.Complete() {
		return nil, ErrMissingCredentials
	}

	conf := &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{gmail.GmailReadonlyScope},
	}
	ts := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: creds.RefreshToken})

	svc, err := gmail.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gmail service: %w", err)
	}

	return &Client{svc: svc.Users}, nil
}

// ListMessages lists message stubs matching the query, up to maxResults.
// The stubs carry only ids; use GetMessage for the full payload.
func (c *Client) ListMessages(q string, maxResults int64) ([]*gmail.Message, error) {
	res, err := c.svc.Messages.List("me").Q(q).MaxResults(maxResults).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return res.Messages, nil
}

// GetMessage retrieves a full message including its MIME part tree.
func (c *Client) GetMessage(id string) (*gmail.Message, error) {
	msg, err := c.svc.Messages.Get("me", id).Format("full").Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get message %s: %w", id, err)
	}
	return msg, nil
}
