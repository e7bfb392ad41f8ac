// Package domain defines the core data types shared across the tradepulse
// client: users, posts, chat messages, and market assets.
package domain

import (
	"strings"
	"unicode"

	"tradepulse/internal/util"
)

// MediaKind identifies the kind of media attached to a post.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// Direction is the side of a trade call.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// AISenderID is the sentinel sender id for assistant-authored chat messages.
const AISenderID = "ai"

// User is a community member. Exactly one user is "current" at a time; the
// session store owns that slot.
type User struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Avatar      string `json:"avatar"`
	Bio         string `json:"bio"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	IsPro       bool   `json:"isPro"`
}

// Media is an embeddable attachment, carried as a data URI so no remote
// storage is involved.
type Media struct {
	URL  string    `json:"url"`
	Kind MediaKind `json:"kind"`
}

// Prediction is a structured trade call attached to a post.
type Prediction struct {
	Asset      string    `json:"asset"`
	Direction  Direction `json:"direction"`
	EntryPrice float64   `json:"entryPrice"`
}

// Post is a feed entry. Author fields are a snapshot taken at creation time,
// not a live reference to the user record.
type Post struct {
	ID         string      `json:"id"`
	UserID     string      `json:"userId"`
	Username   string      `json:"username"`
	UserAvatar string      `json:"userAvatar"`
	Content    string      `json:"content"`
	Media      *Media      `json:"media,omitempty"`
	Timestamp  int64       `json:"timestamp"` // Unix ms
	Likes      int         `json:"likes"`
	Comments   int         `json:"comments"`
	Tags       []string    `json:"tags"`
	Prediction *Prediction `json:"prediction,omitempty"`
}

// Message is a single chat transcript entry. Messages are append-only and
// ordered by insertion; timestamps are for display.
type Message struct {
	ID        string `json:"id"`
	SenderID  string `json:"senderId"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"` // Unix ms
	IsAI      bool   `json:"isAi"`
}

// PricePoint is one sample in an asset's short display history.
type PricePoint struct {
	Time  string  `json:"time"`
	Value float64 `json:"value"`
}

// MarketAsset is a display-only market ticker with a synthetic price history.
type MarketAsset struct {
	Symbol  string       `json:"symbol"`
	Name    string       `json:"name"`
	Price   float64      `json:"price"`
	Change  float64      `json:"change"` // percent
	History []PricePoint `json:"history"`
}

// Match is an upcoming sports fixture with betting odds, shown on the
// markets view.
type Match struct {
	League string    `json:"league"`
	Title  string    `json:"title"`
	Starts string    `json:"starts"`
	Odds   []float64 `json:"odds"`
}

// DeriveUsername normalises raw username input: lowercased, with each
// whitespace character replaced by an underscore. Derivation happens once at
// registration; the stored username is never re-derived.
func DeriveUsername(raw string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return unicode.ToLower(r)
	}, raw)
}

// NewUser synthesizes a fresh member record from auth-form input. The
// display name falls back to the raw username when absent. New members start
// with zero counters and no pro badge.
func NewUser(username, displayName, email string) User {
	if displayName == "" {
		displayName = username
	}
	return User{
		ID:          util.NewID(),
		Username:    DeriveUsername(username),
		Email:       email,
		DisplayName: displayName,
		Avatar:      "https://picsum.photos/seed/" + DeriveUsername(username) + "/200",
		Bio:         "New TradePulse member 🚀",
		Followers:   0,
		Following:   0,
		IsPro:       false,
	}
}

// NewPost builds a post authored by user, snapshotting the author fields.
// A post must have non-empty content or a media attachment; callers enforce
// that before constructing one.
func NewPost(author User, content string, media *Media) Post {
	return Post{
		ID:         util.NewID(),
		UserID:     author.ID,
		Username:   author.Username,
		UserAvatar: author.Avatar,
		Content:    content,
		Media:      media,
		Timestamp:  util.NowMilli(),
		Likes:      0,
		Comments:   0,
		Tags:       []string{},
	}
}

// NewMessage builds a chat message from the given sender.
func NewMessage(senderID, text string, isAI bool) Message {
	return Message{
		ID:        util.NewID(),
		SenderID:  senderID,
		Text:      text,
		Timestamp: util.NowMilli(),
		IsAI:      isAI,
	}
}
