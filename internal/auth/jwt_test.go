package auth

import (
	"testing"
	"time"
)

func TestIssueAndParse(t *testing.T) {
	token, err := Issue("7", "a@b.c", "admin", "club-portal", "secret", time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims, err := Parse(token, "secret", "club-portal")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.Subject != "7" {
		t.Errorf("expected subject 7, got %s", claims.Subject)
	}
	if claims.Role != "admin" {
		t.Errorf("expected role admin, got %s", claims.Role)
	}
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	token, err := Issue("1", "a@b.c", "member", "other", "secret", time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := Parse(token, "secret", "club-portal"); err == nil {
		t.Error("expected issuer mismatch error")
	}
}

func TestExpiresAt(t *testing.T) {
	token, err := Issue("1", "a@b.c", "member", "club-portal", "secret", time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	exp, ok := ExpiresAt(token)
	if !ok {
		t.Fatal("expected expiry on issued token")
	}
	if time.Until(exp) < 55*time.Minute {
		t.Errorf("expiry too soon: %s", exp)
	}
}

func TestExpiresAtOpaqueToken(t *testing.T) {
	if _, ok := ExpiresAt("not-a-jwt-at-all"); ok {
		t.Error("expected no expiry for an opaque token")
	}
}
