package util

import (
	"testing"
	"time"

	"kidslearn_backend/internal/model"
)

func TestJWTRoundTrip(t *testing.T) {
	secret := "0123456789abcdef0123456789abcdef"
	claims := &Claims{
		UserID:     7,
		ChildID:    3,
		Role:       model.Kid,
		FamilyCode: "ABCD2345",
	}

	token, err := GenerateJWT(claims, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	parsed, err := ParseJWT(token, secret)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if parsed.UserID != 7 || parsed.ChildID != 3 || parsed.Role != model.Kid || parsed.FamilyCode != "ABCD2345" {
		t.Fatalf("claims mismatch: %+v", parsed)
	}
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT(&Claims{UserID: 1, Role: model.Parent}, "0123456789abcdef0123456789abcdef", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	if _, err := ParseJWT(token, "another-secret-another-secret-xx"); err == nil {
		t.Fatal("expected parse failure with wrong secret")
	}
}

func TestJWTRejectsExpired(t *testing.T) {
	secret := "0123456789abcdef0123456789abcdef"
	token, err := GenerateJWT(&Claims{UserID: 1, Role: model.Parent}, secret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	if _, err := ParseJWT(token, secret); err == nil {
		t.Fatal("expected parse failure for expired token")
	}
}
