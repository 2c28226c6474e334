package gateway

import (
	"context"

	"edubrief/domain"
	"edubrief/driver/mail"
)

// MailDriver is the driver-level mail interface this gateway adapts.
type MailDriver interface {
	Send(ctx context.Context, msg mail.Message) error
	UpsertMarketingContact(ctx context.Context, listID, email string) error
}

// MailGateway sends domain mail messages through the mail driver with a
// fixed sender identity, folding failures into domain.UpstreamError.
type MailGateway struct {
	driver   MailDriver
	from     string
	fromName string
}

func NewMailGateway(driver MailDriver, from, fromName string) *MailGateway {
	return &MailGateway{
		driver:   driver,
		from:     from,
		fromName: fromName,
	}
}

func (g *MailGateway) Send(ctx context.Context, msg domain.MailMessage) error {
	err := g.driver.Send(ctx, mail.Message{
		FromName:  g.fromName,
		From:      g.from,
		ToName:    msg.ToName,
		To:        msg.To,
		Subject:   msg.Subject,
		PlainText: msg.PlainText,
		HTML:      msg.HTML,
		ReplyTo:   msg.ReplyTo,
	})
	if err != nil {
		return &domain.UpstreamError{Service: "email", Op: "Send", Err: err.Error()}
	}
	return nil
}

func (g *MailGateway) UpsertMarketingContact(ctx context.Context, listID, email string) error {
	if err := g.driver.UpsertMarketingContact(ctx, listID, email); err != nil {
		return &domain.UpstreamError{Service: "email", Op: "UpsertMarketingContact", Err: err.Error()}
	}
	return nil
}
