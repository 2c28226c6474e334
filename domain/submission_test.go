package domain

import (
	"errors"
	"testing"
)

func TestContactSubmission_Validate(t *testing.T) {
	tests := []struct {
		name      string
		sub       ContactSubmission
		wantErr   bool
		wantField string
	}{
		{
			name: "valid submission",
			sub: ContactSubmission{
				Name:    "Ada",
				Email:   "ada@example.com",
				Message: "Hello",
			},
			wantErr: false,
		},
		{
			name: "subject is optional",
			sub: ContactSubmission{
				Name:    "Ada",
				Email:   "ada@example.com",
				Subject: "",
				Message: "Hello",
			},
			wantErr: false,
		},
		{
			name:      "missing name",
			sub:       ContactSubmission{Email: "ada@example.com", Message: "Hello"},
			wantErr:   true,
			wantField: "name",
		},
		{
			name:      "missing email",
			sub:       ContactSubmission{Name: "Ada", Message: "Hello"},
			wantErr:   true,
			wantField: "email",
		},
		{
			name:      "missing message",
			sub:       ContactSubmission{Name: "Ada", Email: "ada@example.com"},
			wantErr:   true,
			wantField: "message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sub.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Validate() error type = %T, want *ValidationError", err)
			}
			if ve.Field != tt.wantField {
				t.Errorf("Validate() field = %q, want %q", ve.Field, tt.wantField)
			}
		})
	}
}

func TestSubscriptionRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid email", "reader@example.com", false},
		{"valid email with subdomain", "reader@mail.example.co.uk", false},
		{"empty email", "", true},
		{"not an email", "not-an-email", true},
		{"missing domain", "reader@", true},
		{"missing local part", "@example.com", true},
		{"whitespace in address", "rea der@example.com", true},
		{"missing tld", "reader@example", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SubscriptionRequest{Email: tt.email}.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q) error = %v, wantErr %v", tt.email, err, tt.wantErr)
			}
		})
	}
}
