package domain

import "regexp"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactSubmission is a transient contact-form payload. It is forwarded
// to the mail service and discarded, never persisted.
type ContactSubmission struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Subject        string `json:"subject"`
	Message        string `json:"message"`
	TurnstileToken string `json:"turnstileToken"`
}

// Validate checks required-field presence. It runs before the bot token
// is verified and before any mail is sent.
func (s ContactSubmission) Validate() error {
	switch {
	case s.Name == "":
		return &ValidationError{Field: "name", Msg: "missing required field"}
	case s.Email == "":
		return &ValidationError{Field: "email", Msg: "missing required field"}
	case s.Message == "":
		return &ValidationError{Field: "message", Msg: "missing required field"}
	}
	return nil
}

// SubscriptionRequest is a transient newsletter signup payload.
type SubscriptionRequest struct {
	Email string `json:"email"`
}

func (s SubscriptionRequest) Validate() error {
	if s.Email == "" {
		return &ValidationError{Field: "email", Msg: "email is required"}
	}
	if !emailPattern.MatchString(s.Email) {
		return &ValidationError{Field: "email", Msg: "invalid email format"}
	}
	return nil
}

// MailMessage is one outbound transactional email.
type MailMessage struct {
	To        string
	ToName    string
	Subject   string
	PlainText string
	HTML      string
	ReplyTo   string
}
