package usecase

import (
	"context"

	"edubrief/domain"
	"edubrief/logger"
	"edubrief/port"
	appOtel "edubrief/utils/otel"
)

// SubscribeNewsletterUsecase validates a signup, optionally upserts the
// contact into the marketing list and sends the welcome email. Sequential
// and all-or-nothing, like the contact flow.
type SubscribeNewsletterUsecase struct {
	mailer port.Mailer
	listID string
}

func NewSubscribeNewsletterUsecase(mailer port.Mailer, listID string) *SubscribeNewsletterUsecase {
	return &SubscribeNewsletterUsecase{
		mailer: mailer,
		listID: listID,
	}
}

func (u *SubscribeNewsletterUsecase) Execute(ctx context.Context, req domain.SubscriptionRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	// List membership is optional: without a configured list id the
	// subscription is only acknowledged by the welcome email.
	if u.listID != "" {
		if err := u.mailer.UpsertMarketingContact(ctx, u.listID, req.Email); err != nil {
			logger.Logger.Error("marketing list upsert failed", "err", err)
			return err
		}
	}

	if err := u.mailer.Send(ctx, welcomeMessage(req.Email)); err != nil {
		logger.Logger.Error("welcome email failed", "err", err)
		return err
	}

	appOtel.RecordSubmission(ctx, "subscribe")
	logger.Logger.Info("newsletter subscription completed")
	return nil
}

func welcomeMessage(email string) domain.MailMessage {
	plain := "Thank you for subscribing to the EduBrief newsletter!\n\n" +
		"You'll now receive updates on new courses, blog posts, and educational resources.\n\n" +
		"If you didn't sign up for this newsletter, please disregard this email.\n\n" +
		"Best regards,\nThe EduBrief Team\n"

	html := "<h1>Welcome to the EduBrief Newsletter!</h1>" +
		"<p>Thank you for subscribing to the EduBrief newsletter!</p>" +
		"<p>You'll now receive updates on:</p>" +
		"<ul>" +
		"<li>New courses and learning paths</li>" +
		"<li>Insightful blog posts from our instructors</li>" +
		"<li>Educational tips and resources</li>" +
		"<li>Special promotions and events</li>" +
		"</ul>" +
		"<p>If you didn't sign up for this newsletter, please disregard this email.</p>" +
		"<p>Best regards,<br>The EduBrief Team</p>"

	return domain.MailMessage{
		To:        email,
		Subject:   "Welcome to the EduBrief Newsletter!",
		PlainText: plain,
		HTML:      html,
	}
}
