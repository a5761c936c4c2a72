package demo

import (
	"context"
	"testing"

	"petcare-marketplace/internal/config"
)

func TestVerifier(t *testing.T) {
	v := NewVerifier(config.DemoConfig{Email: "demo@example.com", Password: "123456"})
	ctx := context.Background()

	cases := []struct {
		email, password string
		want            bool
	}{
		{"demo@example.com", "123456", true},
		{"demo@example.com", "wrong", false},
		{"DEMO@example.com", "123456", false},
		{"", "", false},
	}
	for _, c := range cases {
		if got := v.Verify(ctx, c.email, c.password); got != c.want {
			t.Fatalf("Verify(%q, %q) = %v, want %v", c.email, c.password, got, c.want)
		}
	}
}

func TestVerifier_EmptyConfigRejectsEverything(t *testing.T) {
	v := NewVerifier(config.DemoConfig{})
	if v.Verify(context.Background(), "", "") {
		t.Fatalf("empty config must not accept empty credentials")
	}
}
