package feed

import (
	"errors"
	"fmt"
	"testing"

	"tradepulse/internal/domain"
)

func testAuthor() domain.User {
	return domain.User{
		ID:       "user_test",
		Username: "tester",
		Avatar:   "https://picsum.photos/seed/tester/200",
	}
}

func TestCreatePostRejectsEmpty(t *testing.T) {
	s := NewStore()

	cases := []struct {
		content string
		media   *domain.Media
	}{
		{"", nil},
		{"   ", nil},
		{"\n\t", nil},
	}
	for _, c := range cases {
		if _, err := s.CreatePost(testAuthor(), c.content, c.media); !errors.Is(err, ErrEmptyPost) {
			t.Errorf("CreatePost(%q, nil) error = %v, want ErrEmptyPost", c.content, err)
		}
	}
	if s.Len() != 0 {
		t.Errorf("rejected submissions mutated the feed: len = %d", s.Len())
	}
}

func TestCreatePostMediaOnly(t *testing.T) {
	s := NewStore()

	media := &domain.Media{URL: "data:image/png;base64,AAAA", Kind: domain.MediaImage}
	p, err := s.CreatePost(testAuthor(), "", media)
	if err != nil {
		t.Fatalf("CreatePost with media only: %v", err)
	}
	if p.Media == nil || p.Media.Kind != domain.MediaImage {
		t.Errorf("post media = %+v, want image attachment", p.Media)
	}
}

func TestCreatePostInsertsAtHead(t *testing.T) {
	s := NewStore()

	p, err := s.CreatePost(testAuthor(), "hello", nil)
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	posts := s.Posts()
	if len(posts) != 1 {
		t.Fatalf("feed len = %d, want 1", len(posts))
	}
	if posts[0].ID != p.ID {
		t.Errorf("head post id = %q, want %q", posts[0].ID, p.ID)
	}
	if posts[0].Likes != 0 || posts[0].Comments != 0 {
		t.Errorf("counters = %d/%d, want 0/0", posts[0].Likes, posts[0].Comments)
	}
}

func TestPostsReverseCreationOrder(t *testing.T) {
	s := NewStore()

	const n = 10
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		p, err := s.CreatePost(testAuthor(), fmt.Sprintf("post %d", i), nil)
		if err != nil {
			t.Fatalf("CreatePost %d: %v", i, err)
		}
		ids = append(ids, p.ID)
	}

	posts := s.Posts()
	if len(posts) != n {
		t.Fatalf("feed len = %d, want %d", len(posts), n)
	}
	for i := 0; i < n; i++ {
		want := ids[n-1-i]
		if posts[i].ID != want {
			t.Errorf("posts[%d].ID = %q, want %q (strict reverse creation order)", i, posts[i].ID, want)
		}
	}
}

func TestPostsStableAndSnapshotted(t *testing.T) {
	s := NewSeededStore()

	first := s.Posts()
	second := s.Posts()
	if len(first) != len(second) {
		t.Fatalf("repeated Posts() lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("repeated Posts() order differs at %d", i)
		}
	}

	// Mutating a returned snapshot must not affect the store.
	first[0].Content = "tampered"
	if s.Posts()[0].Content == "tampered" {
		t.Error("Posts() returned a live reference into the store")
	}
}

func TestSeededStoreContent(t *testing.T) {
	s := NewSeededStore()

	posts := s.Posts()
	if len(posts) != 2 {
		t.Fatalf("seeded feed len = %d, want 2", len(posts))
	}
	if posts[0].Username != "crypto_whale" {
		t.Errorf("first seed author = %q, want crypto_whale", posts[0].Username)
	}
	if posts[0].Prediction == nil || posts[0].Prediction.Direction != domain.DirectionUp {
		t.Errorf("first seed prediction = %+v, want up call on BTC", posts[0].Prediction)
	}
	if posts[0].Timestamp <= posts[1].Timestamp {
		t.Error("seed posts not most-recent-first")
	}

	// New posts land ahead of the seeds.
	p, err := s.CreatePost(testAuthor(), "fresh signal", nil)
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if got := s.Posts()[0].ID; got != p.ID {
		t.Errorf("head after create = %q, want %q", got, p.ID)
	}
}
