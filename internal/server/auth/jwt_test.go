package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/folderforge/folderforge/internal/common"
)

func TestGenerateAndVerify_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	in := &Identity{UID: "user-123", Email: "u@example.com", Role: "admin"}

	tok, err := GenerateToken(in, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	got, err := VerifyToken(tok, secret)
	if err != nil {
		t.Fatalf("VerifyToken error: %v", err)
	}
	if got.UID != in.UID {
		t.Fatalf("uid mismatch: got %q want %q", got.UID, in.UID)
	}
	if !got.IsAdmin() {
		t.Fatalf("expected admin identity")
	}
}

func TestVerifyToken_AdminClaimShapes(t *testing.T) {
	t.Parallel()

	secret := []byte("s")

	tests := []struct {
		name  string
		in    *Identity
		admin bool
	}{
		{"role string admin", &Identity{UID: "u1", Role: "admin"}, true},
		{"boolean admin flag", &Identity{UID: "u2", Admin: true}, true},
		{"plain role", &Identity{UID: "u3", Role: "free"}, false},
		{"no role at all", &Identity{UID: "u4"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, err := GenerateToken(tt.in, secret, time.Hour)
			if err != nil {
				t.Fatalf("GenerateToken error: %v", err)
			}
			got, err := VerifyToken(tok, secret)
			if err != nil {
				t.Fatalf("VerifyToken error: %v", err)
			}
			if got.IsAdmin() != tt.admin {
				t.Fatalf("IsAdmin: got %v want %v", got.IsAdmin(), tt.admin)
			}
		})
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken(&Identity{UID: "u1"}, []byte("secret"), -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = VerifyToken(tok, []byte("secret"))
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken(&Identity{UID: "u2"}, []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = VerifyToken(tok, []byte("wrong-secret"))
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestExtractBearer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"missing header", "", "", true},
		{"no prefix", "abc.def.ghi", "", true},
		{"wrong scheme", "Basic abc", "", true},
		{"prefix only", "Bearer ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearer(tt.header)
			if tt.wantErr {
				if !errors.Is(err, common.ErrorInvalidAuthheaderFormat) {
					t.Fatalf("expected common.ErrorInvalidAuthheaderFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractBearer error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("token mismatch: got %q want %q", got, tt.want)
			}
		})
	}
}
