// Package feed holds the in-memory ordered collection of community posts.
// Posts are created at the head of the sequence and never edited or deleted.
package feed

import (
	"errors"
	"strings"
	"sync"

	"tradepulse/internal/domain"
	"tradepulse/internal/util"
)

// ErrEmptyPost is returned when a submission has neither content nor media.
// Callers treat it as a silently rejected submission, not a failure.
var ErrEmptyPost = errors.New("feed: post needs content or media")

// Store is the feed's ordered post sequence, most-recent-first. All methods
// are safe for concurrent use; reads return snapshot copies.
type Store struct {
	mu    sync.RWMutex
	posts []domain.Post
}

// NewStore creates an empty feed store.
func NewStore() *Store {
	return &Store{}
}

// NewSeededStore creates a feed store pre-populated with the community's
// demo posts.
func NewSeededStore() *Store {
	s := NewStore()
	s.posts = seedPosts()
	return s
}

// CreatePost validates the submission, builds a post snapshot from the
// author, and inserts it at the head of the feed. A submission with
// whitespace-only content and no media returns ErrEmptyPost and mutates
// nothing.
func (s *Store) CreatePost(author domain.User, content string, media *domain.Media) (domain.Post, error) {
	if strings.TrimSpace(content) == "" && media == nil {
		return domain.Post{}, ErrEmptyPost
	}

	p := domain.NewPost(author, content, media)

	s.mu.Lock()
	s.posts = append([]domain.Post{p}, s.posts...)
	s.mu.Unlock()

	return p, nil
}

// Posts returns a snapshot copy of the feed, most-recent-first. Repeated
// calls are stable absent new creations.
func (s *Store) Posts() []domain.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// Len returns the number of posts in the feed.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts)
}

// seedPosts builds the demo feed content shown to every fresh session.
func seedPosts() []domain.Post {
	now := util.NowMilli()
	return []domain.Post{
		{
			ID:         "seed-1",
			UserID:     "user_1",
			Username:   "crypto_whale",
			UserAvatar: "https://picsum.photos/seed/whale/200",
			Content:    "BTC consolidation looks healthy. Expecting a breakout above $68k soon. HODL tight! 🚀",
			Media:      &domain.Media{URL: "https://picsum.photos/seed/btc_chart/800/450", Kind: domain.MediaImage},
			Timestamp:  now - 3600_000,
			Likes:      452,
			Comments:   24,
			Tags:       []string{"BTC", "Crypto", "Bullish"},
			Prediction: &domain.Prediction{Asset: "BTC", Direction: domain.DirectionUp, EntryPrice: 67200},
		},
		{
			ID:         "seed-2",
			UserID:     "user_2",
			Username:   "forex_queen",
			UserAvatar: "https://picsum.photos/seed/sarah/200",
			Content:    "Watching the EUR/USD pair closely after the ECB announcement. Volatility is rising. Stay disciplined.",
			Media:      &domain.Media{URL: "https://picsum.photos/seed/forex/800/450", Kind: domain.MediaImage},
			Timestamp:  now - 7200_000,
			Likes:      128,
			Comments:   12,
			Tags:       []string{"Forex", "EURUSD", "Macro"},
		},
	}
}
