package auth

import (
	"testing"
	"time"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer(testSigningKey, time.Hour)

	tokenStr, err := issuer.Issue("carol@example.com")
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	claims, err := ParseToken(tokenStr, testSigningKey)
	if err != nil {
		t.Fatalf("ParseToken() error: %v", err)
	}
	if claims.Email != "carol@example.com" {
		t.Errorf("expected email carol@example.com, got %q", claims.Email)
	}
	if claims.Subject != "carol@example.com" {
		t.Errorf("expected subject carol@example.com, got %q", claims.Subject)
	}
	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if ttl != time.Hour {
		t.Errorf("expected 1h lifetime, got %s", ttl)
	}
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer := NewTokenIssuer(testSigningKey, time.Hour)
	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	tokenStr, err := issuer.Issue("carol@example.com")
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}
	if _, err := ParseToken(tokenStr, testSigningKey); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestParseToken_WrongKey(t *testing.T) {
	tokenStr, err := NewTokenIssuer([]byte("key-a"), time.Hour).Issue("dave@example.com")
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}
	if _, err := ParseToken(tokenStr, []byte("key-b")); err == nil {
		t.Error("expected error for token signed with another key")
	}
}
