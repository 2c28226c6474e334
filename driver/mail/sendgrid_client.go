// Package mail wraps the SendGrid API for transactional delivery and
// marketing-contact upserts.
package mail

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

const apiHost = "https://api.sendgrid.com"

type DriverError struct {
	Op  string
	Err string
}

func (e *DriverError) Error() string {
	return e.Op + ": " + e.Err
}

// Message is one outbound email at the driver boundary.
type Message struct {
	FromName  string
	From      string
	ToName    string
	To        string
	Subject   string
	PlainText string
	HTML      string
	ReplyTo   string
}

type Client struct {
	apiKey string
	send   *sendgrid.Client
}

func NewClient(apiKey string) *Client {
	sendgrid.DefaultClient.HTTPClient.Timeout = 10 * time.Second
	return &Client{
		apiKey: apiKey,
		send:   sendgrid.NewSendClient(apiKey),
	}
}

// Send delivers one transactional email. A non-2xx response counts as a
// failed send.
func (c *Client) Send(ctx context.Context, msg Message) error {
	m := sgmail.NewSingleEmail(
		sgmail.NewEmail(msg.FromName, msg.From),
		msg.Subject,
		sgmail.NewEmail(msg.ToName, msg.To),
		msg.PlainText,
		msg.HTML,
	)
	if msg.ReplyTo != "" {
		m.SetReplyTo(sgmail.NewEmail("", msg.ReplyTo))
	}

	resp, err := c.send.SendWithContext(ctx, m)
	if err != nil {
		return &DriverError{Op: "Send", Err: err.Error()}
	}
	if resp.StatusCode >= 400 {
		return &DriverError{
			Op:  "Send",
			Err: fmt.Sprintf("unexpected status %d", resp.StatusCode),
		}
	}
	return nil
}

// UpsertMarketingContact adds or updates one contact on a marketing list.
func (c *Client) UpsertMarketingContact(ctx context.Context, listID, email string) error {
	body, err := json.Marshal(map[string]any{
		"contacts": []map[string]any{{"email": email}},
		"list_ids": []string{listID},
	})
	if err != nil {
		return &DriverError{Op: "UpsertMarketingContact", Err: err.Error()}
	}

	request := sendgrid.GetRequest(c.apiKey, "/v3/marketing/contacts", apiHost)
	request.Method = rest.Put
	request.Body = body

	resp, err := sendgrid.MakeRequestWithContext(ctx, request)
	if err != nil {
		return &DriverError{Op: "UpsertMarketingContact", Err: err.Error()}
	}
	if resp.StatusCode >= 400 {
		return &DriverError{
			Op:  "UpsertMarketingContact",
			Err: fmt.Sprintf("unexpected status %d", resp.StatusCode),
		}
	}
	return nil
}
