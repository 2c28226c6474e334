package config

import (
	"os"
	"path/filepath"
	"testing"
)

var managedEnv = []string{
	"CMS_GRAPHQL_URL",
	"SEARCH_HOST", "SEARCH_PORT", "SEARCH_PROTOCOL", "SEARCH_API_KEY",
	"SENDGRID_API_KEY", "SENDGRID_API_KEY_FILE",
	"CONTACT_EMAIL", "FROM_EMAIL", "SENDGRID_LIST_ID",
	"TURNSTILE_SECRET_KEY",
	"HTTP_ADDR",
}

func clearEnv() {
	for _, key := range managedEnv {
		os.Unsetenv(key)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		wantErr bool
	}{
		{
			name: "valid configuration",
			envVars: map[string]string{
				"CMS_GRAPHQL_URL":      "https://cms.example.com/graphql",
				"SEARCH_HOST":          "localhost",
				"SENDGRID_API_KEY":     "SG.key",
				"TURNSTILE_SECRET_KEY": "secret",
			},
			wantErr: false,
		},
		{
			name: "missing required env var",
			envVars: map[string]string{
				"CMS_GRAPHQL_URL": "https://cms.example.com/graphql",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv()

			for k, v := range tt.envVars {
				os.Setenv(k, v)
			}
			defer clearEnv()

			if tt.wantErr {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("Load() should have panicked but didn't")
					}
				}()
			}

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}

			if !tt.wantErr {
				if cfg.Search.Port != "7700" {
					t.Errorf("Search.Port = %s, want default 7700", cfg.Search.Port)
				}
				if cfg.Search.URL() != "http://localhost:7700" {
					t.Errorf("Search.URL() = %s", cfg.Search.URL())
				}
				if cfg.Mail.FromEmail != "noreply@edubrief.com" {
					t.Errorf("Mail.FromEmail = %s", cfg.Mail.FromEmail)
				}
				if cfg.HTTP.Addr != ":8080" {
					t.Errorf("HTTP.Addr = %s", cfg.HTTP.Addr)
				}
			}
		})
	}
}

func TestLoad_FileIndirection(t *testing.T) {
	clearEnv()
	defer clearEnv()

	keyFile := filepath.Join(t.TempDir(), "sendgrid_key")
	if err := os.WriteFile(keyFile, []byte("SG.from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	os.Setenv("CMS_GRAPHQL_URL", "https://cms.example.com/graphql")
	os.Setenv("SEARCH_HOST", "localhost")
	os.Setenv("TURNSTILE_SECRET_KEY", "secret")
	os.Setenv("SENDGRID_API_KEY_FILE", keyFile)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Mail.APIKey != "SG.from-file" {
		t.Errorf("Mail.APIKey = %q, want trimmed file content", cfg.Mail.APIKey)
	}
}
