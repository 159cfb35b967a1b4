package auth

import (
	"context"
	"testing"
)

func TestWithAuthRoundTrip(t *testing.T) {
	ac := AuthContext{UserID: 7, Email: "ana@example.com", Role: "admin"}
	ctx := WithAuth(context.Background(), ac)

	got, ok := FromContext(ctx)
	if !ok {
		t.Fatal("expected AuthContext in context")
	}
	if got != ac {
		t.Errorf("got = %+v, want %+v", got, ac)
	}
}

func TestFromContextEmpty(t *testing.T) {
	if _, ok := FromContext(context.Background()); ok {
		t.Error("expected no AuthContext in empty context")
	}
}

func TestUserEmail(t *testing.T) {
	ctx := WithAuth(context.Background(), AuthContext{Email: "ana@example.com"})
	if got := UserEmail(ctx); got != "ana@example.com" {
		t.Errorf("email = %q, want ana@example.com", got)
	}
	if got := UserEmail(context.Background()); got != "" {
		t.Errorf("email = %q, want empty", got)
	}
}

func TestIsAdmin(t *testing.T) {
	if !IsAdmin(WithAuth(context.Background(), AuthContext{Role: "admin"})) {
		t.Error("admin role should be admin")
	}
	if IsAdmin(WithAuth(context.Background(), AuthContext{Role: "user"})) {
		t.Error("user role should not be admin")
	}
	if IsAdmin(context.Background()) {
		t.Error("anonymous context should not be admin")
	}
}
