package port

import (
	"context"

	"edubrief/domain"
)

// Mailer delivers transactional email and maintains the marketing
// contact list.
type Mailer interface {
	Send(ctx context.Context, msg domain.MailMessage) error
	UpsertMarketingContact(ctx context.Context, listID, email string) error
}
