package auth

import "testing"

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret-pass")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "secret-pass" {
		t.Fatalf("expected password to be hashed, got plaintext")
	}
	if !CheckPasswordHash("secret-pass", hash) {
		t.Fatalf("expected correct password to verify")
	}
	if CheckPasswordHash("wrong-pass", hash) {
		t.Fatalf("expected wrong password to fail verification")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken(secret, "user-1", "alice", true)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := ValidateToken(secret, token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.UserID != "user-1" || claims.Username != "alice" || !claims.IsAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	if _, err := ValidateToken([]byte("other-secret"), token); err == nil {
		t.Fatalf("expected token signed with a different secret to be rejected")
	}
	if _, err := ValidateToken(secret, "not-a-token"); err == nil {
		t.Fatalf("expected garbage token to be rejected")
	}
}

func TestSafeNextTarget(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "/"},
		{"/profile", "/profile"},
		{"/messages/bob", "/messages/bob"},
		{"/login?next=/profile", "/login?next=/profile"},
		{"http://evil.example", "/"},
		{"https://evil.example/path", "/"},
		{"//evil.example", "/"},
		{"javascript:alert(1)", "/"},
		{"profile", "/"},
	}

	for _, tc := range cases {
		if got := SafeNextTarget(tc.in); got != tc.want {
			t.Fatalf("SafeNextTarget(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
