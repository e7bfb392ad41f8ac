package domain

import (
	"strings"
	"testing"
	"unicode"
)

func TestDeriveUsername(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"Satoshi 2024", "satoshi_2024"},
		{"crypto_whale", "crypto_whale"},
		{"FOREX Queen", "forex_queen"},
		{"tab\tseparated", "tab_separated"},
		{"", ""},
	}
	for _, c := range cases {
		got := DeriveUsername(c.raw)
		if got != c.want {
			t.Errorf("DeriveUsername(%q) = %q, want %q", c.raw, got, c.want)
		}
	}
}

func TestDeriveUsernameInvariants(t *testing.T) {
	inputs := []string{"Satoshi 2024", "A B C", "MiXeD  CaSe", "plain"}
	for _, raw := range inputs {
		got := DeriveUsername(raw)
		if got != strings.ToLower(got) {
			t.Errorf("DeriveUsername(%q) = %q, not lowercase", raw, got)
		}
		for _, r := range got {
			if unicode.IsSpace(r) {
				t.Errorf("DeriveUsername(%q) = %q, contains whitespace", raw, got)
			}
		}
	}
}

func TestNewUser(t *testing.T) {
	u := NewUser("Satoshi 2024", "", "a@b.com")

	if u.ID == "" {
		t.Error("NewUser left ID empty")
	}
	if u.Username != "satoshi_2024" {
		t.Errorf("Username = %q, want %q", u.Username, "satoshi_2024")
	}
	if u.Email != "a@b.com" {
		t.Errorf("Email = %q, want %q", u.Email, "a@b.com")
	}
	// Display name falls back to the raw username.
	if u.DisplayName != "Satoshi 2024" {
		t.Errorf("DisplayName = %q, want raw username fallback", u.DisplayName)
	}
	if u.IsPro {
		t.Error("new user should not be pro")
	}
	if u.Followers < 0 || u.Following < 0 {
		t.Errorf("negative counters: followers=%d following=%d", u.Followers, u.Following)
	}
	if !strings.Contains(u.Avatar, "satoshi_2024") {
		t.Errorf("Avatar = %q, want seed derived from username", u.Avatar)
	}
}

func TestNewPostSnapshotsAuthor(t *testing.T) {
	author := NewUser("crypto_whale", "Whale", "w@example.com")
	p := NewPost(author, "BTC looks strong", nil)

	if p.ID == "" {
		t.Error("NewPost left ID empty")
	}
	if p.UserID != author.ID || p.Username != author.Username || p.UserAvatar != author.Avatar {
		t.Error("post did not snapshot author fields")
	}
	if p.Likes != 0 || p.Comments != 0 {
		t.Errorf("counters not zero-initialized: likes=%d comments=%d", p.Likes, p.Comments)
	}
	if p.Tags == nil || len(p.Tags) != 0 {
		t.Errorf("Tags = %v, want empty non-nil slice", p.Tags)
	}
	if p.Timestamp <= 0 {
		t.Errorf("Timestamp = %d, want positive Unix ms", p.Timestamp)
	}

	// Mutating the author afterwards must not change the post.
	author.Avatar = "https://example.com/other"
	if p.UserAvatar == author.Avatar {
		t.Error("post holds a live reference to the author avatar")
	}
}

func TestNewMessage(t *testing.T) {
	m := NewMessage(AISenderID, "hello", true)
	if m.SenderID != AISenderID || !m.IsAI {
		t.Errorf("message sender = %q isAI=%v, want ai sentinel", m.SenderID, m.IsAI)
	}
	if m.ID == "" || m.Timestamp <= 0 {
		t.Errorf("message missing id or timestamp: %+v", m)
	}
}
