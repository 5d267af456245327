package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Role identifies the author of a history entry.
type Role string

// Conversation roles.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Capitalised returns the role with its first letter upper-cased, as used
// when rendering history into a prompt ("User: ...", "Assistant: ...").
func (r Role) Capitalised() string {
	s := string(r)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Entry is a single message in a conversation.
type Entry struct {
	Role    Role
	Content string
}

// NoPreviousQuestion is the sentinel answer when history holds no user turn.
const NoPreviousQuestion = "No previous question found."

// metaQueryPhrase triggers the history short-circuit in the orchestrator.
const metaQueryPhrase = "last question"

// Session is an append-only conversation history. It is caller-managed and
// never persisted; a single writer (the orchestrator) mutates it.
type Session struct {
	// ID uniquely identifies the session.
	ID string

	entries []Entry
}

// NewSession creates an empty conversation session.
func NewSession() *Session {
	return &Session{ID: uuid.New().String()}
}

// Append adds an entry to the end of the history.
func (s *Session) Append(e Entry) {
	s.entries = append(s.entries, e)
}

// Entries returns the history in insertion order.
func (s *Session) Entries() []Entry {
	return s.entries
}

// Len returns the number of entries.
func (s *Session) Len() int {
	return len(s.entries)
}

// LastUserQuestion scans from the most recent entry backwards and returns
// the content of the last entry with role "user". The question currently
// being answered is excluded simply because it has not been appended yet.
// Returns NoPreviousQuestion when no user entry exists.
func (s *Session) LastUserQuestion() string {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].Role == RoleUser {
			return s.entries[i].Content
		}
	}
	return NoPreviousQuestion
}

// Format renders the history for prompt assembly, one entry per line as
// "<Role>: <content>" with the role capitalised, in insertion order.
func (s *Session) Format() string {
	lines := make([]string, len(s.entries))
	for i, e := range s.entries {
		lines[i] = e.Role.Capitalised() + ": " + e.Content
	}
	return strings.Join(lines, "\n")
}

// IsMetaQuery reports whether the query text asks about the conversation
// itself rather than the indexed content. Matching is case-insensitive.
func IsMetaQuery(queryText string) bool {
	return strings.Contains(strings.ToLower(queryText), metaQueryPhrase)
}
