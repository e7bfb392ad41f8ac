// Package chat holds the assistant conversation transcript and its
// submission state machine: Idle until a message is sent, AwaitingResponse
// while exactly one collaborator request is outstanding, Idle again once the
// reply (or its fallback) is appended.
package chat

import (
	"errors"
	"log/slog"
	"strings"
	"sync"

	"tradepulse/internal/domain"
)

// Fallback is appended in place of an empty or failed collaborator reply.
const Fallback = "I'm having trouble connecting to the markets. Please try again."

// Greeting opens every transcript.
const Greeting = "Hello! I am your TradePulse AI Assistant. Ask me anything about the markets, trade strategies, or current price trends. How can I help you profit today?"

var (
	// ErrEmptyMessage rejects whitespace-only submissions.
	ErrEmptyMessage = errors.New("chat: empty message")

	// ErrBusy rejects submissions while a request is outstanding.
	ErrBusy = errors.New("chat: request already outstanding")
)

// Session is an append-only chat transcript with at most one outstanding
// collaborator request. Methods are safe for concurrent use.
type Session struct {
	mu       sync.RWMutex
	userID   string
	messages []domain.Message
	awaiting bool
	log      *slog.Logger
}

// NewSession creates a transcript for the given user, seeded with the
// assistant greeting.
func NewSession(userID string, log *slog.Logger) *Session {
	return &Session{
		userID:   userID,
		messages: []domain.Message{domain.NewMessage(domain.AISenderID, Greeting, true)},
		log:      log,
	}
}

// Send appends a user message and transitions to AwaitingResponse. The
// trimmed-empty and already-outstanding cases are rejected with no state
// change. The caller dispatches the collaborator request and reports its
// outcome via Resolve.
func (s *Session) Send(text string) (domain.Message, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Message{}, ErrEmptyMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.awaiting {
		return domain.Message{}, ErrBusy
	}

	msg := domain.NewMessage(s.userID, text, false)
	s.messages = append(s.messages, msg)
	s.awaiting = true
	return msg, nil
}

// Resolve completes the outstanding request, appending the assistant reply
// and returning to Idle. A failed or empty reply is substituted with the
// fixed fallback; the error itself is only logged.
func (s *Session) Resolve(text string, err error) domain.Message {
	if err != nil {
		s.log.Warn("assistant reply failed", "error", err)
		text = ""
	}
	if text == "" {
		text = Fallback
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := domain.NewMessage(domain.AISenderID, text, true)
	s.messages = append(s.messages, msg)
	s.awaiting = false
	return msg
}

// Busy reports whether a collaborator request is outstanding.
func (s *Session) Busy() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.awaiting
}

// Messages returns a snapshot copy of the transcript in insertion order.
func (s *Session) Messages() []domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Message, len(s.messages))
	copy(out, s.messages)
	return out
}
