package models

import "testing"

func TestRefreshTokenList(t *testing.T) {
	user := User{}

	if got := user.RefreshTokenList(); len(got) != 0 {
		t.Errorf("fresh user holds %d tokens", len(got))
	}
	if user.HasRefreshToken("anything") {
		t.Error("fresh user reported an active token")
	}

	user.AppendRefreshToken("tok-a")
	user.AppendRefreshToken("tok-b")

	if !user.HasRefreshToken("tok-a") || !user.HasRefreshToken("tok-b") {
		t.Error("appended tokens not found in the list")
	}
	if len(user.RefreshTokenList()) != 2 {
		t.Errorf("list holds %d tokens, want 2", len(user.RefreshTokenList()))
	}
}

func TestRemoveRefreshToken(t *testing.T) {
	user := User{}
	user.AppendRefreshToken("tok-a")
	user.AppendRefreshToken("tok-b")

	user.RemoveRefreshToken("tok-a")

	if user.HasRefreshToken("tok-a") {
		t.Error("removed token still reported active")
	}
	if !user.HasRefreshToken("tok-b") {
		t.Error("removal dropped an unrelated token")
	}

	// Removing a token that was never issued is a no-op
	user.RemoveRefreshToken("tok-x")
	if !user.HasRefreshToken("tok-b") {
		t.Error("removing an unknown token emptied the list")
	}
}
