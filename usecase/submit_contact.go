package usecase

import (
	"context"
	"fmt"
	"strings"

	"edubrief/domain"
	"edubrief/logger"
	"edubrief/port"
	appOtel "edubrief/utils/otel"

	"github.com/google/uuid"
)

// SubmitContactUsecase validates a contact submission, verifies its
// bot-challenge token and delivers the admin notification plus the
// submitter confirmation. The chain is all-or-nothing: a failed admin
// send fails the request and the confirmation is never attempted.
type SubmitContactUsecase struct {
	verifier   port.BotVerifier
	mailer     port.Mailer
	adminEmail string
}

func NewSubmitContactUsecase(verifier port.BotVerifier, mailer port.Mailer, adminEmail string) *SubmitContactUsecase {
	return &SubmitContactUsecase{
		verifier:   verifier,
		mailer:     mailer,
		adminEmail: adminEmail,
	}
}

func (u *SubmitContactUsecase) Execute(ctx context.Context, sub domain.ContactSubmission, remoteIP string) error {
	if err := sub.Validate(); err != nil {
		return err
	}

	if err := u.verifier.Verify(ctx, sub.TurnstileToken, remoteIP); err != nil {
		return err
	}

	// Reference id ties the two sends together in the logs. The payload
	// itself is never persisted.
	ref := uuid.NewString()

	if err := u.mailer.Send(ctx, adminNotification(sub, u.adminEmail)); err != nil {
		logger.Logger.Error("contact notification failed", "ref", ref, "err", err)
		return err
	}

	if err := u.mailer.Send(ctx, contactConfirmation(sub)); err != nil {
		logger.Logger.Error("contact confirmation failed", "ref", ref, "err", err)
		return err
	}

	appOtel.RecordSubmission(ctx, "contact")
	logger.Logger.Info("contact submission delivered", "ref", ref)
	return nil
}

func adminNotification(sub domain.ContactSubmission, adminEmail string) domain.MailMessage {
	subject := "[EduBrief Contact Form] New Message"
	if sub.Subject != "" {
		subject = "[EduBrief Contact Form] " + sub.Subject
	}

	displaySubject := sub.Subject
	if displaySubject == "" {
		displaySubject = "N/A"
	}

	plain := fmt.Sprintf("Name: %s\nEmail: %s\nSubject: %s\n\nMessage:\n%s\n",
		sub.Name, sub.Email, displaySubject, sub.Message)

	html := fmt.Sprintf(
		"<h2>New Contact Form Submission</h2>"+
			"<p><strong>Name:</strong> %s</p>"+
			"<p><strong>Email:</strong> %s</p>"+
			"<p><strong>Subject:</strong> %s</p>"+
			"<p><strong>Message:</strong></p><p>%s</p>",
		sub.Name, sub.Email, displaySubject,
		strings.ReplaceAll(sub.Message, "\n", "<br>"))

	return domain.MailMessage{
		To:        adminEmail,
		Subject:   subject,
		PlainText: plain,
		HTML:      html,
		ReplyTo:   sub.Email,
	}
}

func contactConfirmation(sub domain.ContactSubmission) domain.MailMessage {
	displaySubject := sub.Subject
	if displaySubject == "" {
		displaySubject = "N/A"
	}

	plain := fmt.Sprintf("Dear %s,\n\n"+
		"Thank you for reaching out to us at EduBrief. We've received your message "+
		"and will get back to you as soon as possible.\n\n"+
		"For your reference, here's a copy of your message:\n\n"+
		"Subject: %s\n\n%s\n\nBest regards,\nThe EduBrief Team\n",
		sub.Name, displaySubject, sub.Message)

	html := fmt.Sprintf(
		"<h2>Thank you for contacting EduBrief</h2>"+
			"<p>Dear %s,</p>"+
			"<p>Thank you for reaching out to us at EduBrief. We've received your message "+
			"and will get back to you as soon as possible.</p>"+
			"<p>For your reference, here's a copy of your message:</p>"+
			"<p><strong>Subject:</strong> %s</p>"+
			"<p><strong>Message:</strong></p><p>%s</p>"+
			"<br><p>Best regards,<br>The EduBrief Team</p>",
		sub.Name, displaySubject,
		strings.ReplaceAll(sub.Message, "\n", "<br>"))

	return domain.MailMessage{
		To:        sub.Email,
		ToName:    sub.Name,
		Subject:   "Thank you for contacting EduBrief",
		PlainText: plain,
		HTML:      html,
	}
}
