package helpers

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndParse(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)

	token, exp, err := m.Generate(42)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if time.Until(exp) <= 0 {
		t.Fatal("expiry is not in the future")
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected user id 42, got %d", claims.UserID)
	}
}

func TestParseExpired(t *testing.T) {
	m := NewJWTManager("secret", -time.Minute)
	token, _, err := m.Generate(1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	_, err = m.Parse(token)
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParseWrongSecret(t *testing.T) {
	issuer := NewJWTManager("secret-a", time.Hour)
	verifier := NewJWTManager("secret-b", time.Hour)

	token, _, err := issuer.Generate(1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := verifier.Parse(token); err == nil {
		t.Fatal("expected signature verification to fail")
	}
}

func TestParseGarbage(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	if _, err := m.Parse("not.a.token"); err == nil {
		t.Fatal("expected parse to fail")
	}
}
