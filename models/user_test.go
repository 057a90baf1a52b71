package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr string
	}{
		{
			name: "valid",
			req:  RegisterRequest{Name: "Alice", Email: "a@x.com", Password: "longpassword"},
		},
		{
			name: "name trimmed to valid",
			req:  RegisterRequest{Name: "  Alice  ", Email: "a@x.com", Password: "longpassword"},
		},
		{
			name:    "empty name",
			req:     RegisterRequest{Name: "", Email: "a@x.com", Password: "longpassword"},
			wantErr: "name is required",
		},
		{
			name:    "whitespace only name",
			req:     RegisterRequest{Name: "   ", Email: "a@x.com", Password: "longpassword"},
			wantErr: "name is required",
		},
		{
			name:    "name over 100 chars",
			req:     RegisterRequest{Name: strings.Repeat("a", 101), Email: "a@x.com", Password: "longpassword"},
			wantErr: "name must be at most 100 characters",
		},
		{
			name:    "empty email",
			req:     RegisterRequest{Name: "Alice", Email: "", Password: "longpassword"},
			wantErr: "email is required",
		},
		{
			name:    "email without at sign",
			req:     RegisterRequest{Name: "Alice", Email: "not-an-email", Password: "longpassword"},
			wantErr: "email must be valid",
		},
		{
			name:    "email without domain dot",
			req:     RegisterRequest{Name: "Alice", Email: "a@localhost", Password: "longpassword"},
			wantErr: "email must be valid",
		},
		{
			name:    "password 7 chars",
			req:     RegisterRequest{Name: "Alice", Email: "a@x.com", Password: "1234567"},
			wantErr: "password must be at least 8 characters",
		},
		{
			name: "password exactly 8 chars",
			req:  RegisterRequest{Name: "Alice", Email: "a@x.com", Password: "12345678"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		req   LoginRequest
		valid bool
	}{
		{"valid", LoginRequest{Email: "a@x.com", Password: "longpassword"}, true},
		{"empty email", LoginRequest{Email: "", Password: "longpassword"}, false},
		{"short password", LoginRequest{Email: "a@x.com", Password: "short"}, false},
		{"both invalid", LoginRequest{Email: "", Password: ""}, false},
		// Login'de email şekil kontrolü yoktur — eşleşmeyen email store'da bulunamaz
		{"malformed email passes shape check", LoginRequest{Email: "not-an-email", Password: "longpassword"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, "email should be valid and password should have minimum 8 characters", err.Error())
		})
	}
}

func TestIdentityOf(t *testing.T) {
	t.Parallel()

	user := &User{ID: "u1", Name: "Alice", Email: "a@x.com", PasswordHash: "secret"}
	identity := IdentityOf(user)

	assert.Equal(t, Identity{ID: "u1", Name: "Alice", Email: "a@x.com"}, identity)
}
