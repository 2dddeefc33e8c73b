package config

import (
	"errors"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{
			"valid",
			StructuredConfig{App: App{TokenSignKey: "secret", TokenDuration: time.Hour}},
			nil,
		},
		{
			"no sign key",
			StructuredConfig{App: App{TokenDuration: time.Hour}},
			ErrNoTokenSignKey,
		},
		{
			"zero duration",
			StructuredConfig{App: App{TokenSignKey: "secret"}},
			ErrInvalidTokenDuration,
		},
		{
			"negative duration",
			StructuredConfig{App: App{TokenSignKey: "secret", TokenDuration: -time.Hour}},
			ErrInvalidTokenDuration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// mergo fills only empty fields, so the first source carrying a value wins.
func TestConfigBuilder_PriorityAndDefaults(t *testing.T) {
	builder := newConfigBuilder()
	builder.configs = append(builder.configs, &StructuredConfig{
		App: App{TokenSignKey: "from-first-source", TokenDuration: time.Minute},
	})
	builder.configs = append(builder.configs, &StructuredConfig{
		App:    App{TokenSignKey: "from-second-source"},
		Server: Server{HTTPAddress: "10.0.0.1:8080"},
	})
	builder = builder.withDefaults()

	cfg, err := builder.build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.App.TokenSignKey != "from-first-source" {
		t.Errorf("expected first source to win, got %q", cfg.App.TokenSignKey)
	}
	if cfg.Server.HTTPAddress != "10.0.0.1:8080" {
		t.Errorf("expected explicit address to beat the default, got %q", cfg.Server.HTTPAddress)
	}
	if cfg.App.TokenIssuer != "go-biz-reviews" {
		t.Errorf("expected default issuer to fill the gap, got %q", cfg.App.TokenIssuer)
	}
	if cfg.Server.RequestTimeout != 30*time.Second {
		t.Errorf("expected default request timeout, got %v", cfg.Server.RequestTimeout)
	}
}
