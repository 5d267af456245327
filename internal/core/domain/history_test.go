package domain

import "testing"

func TestNewSession(t *testing.T) {
	s := NewSession()
	if s.ID == "" {
		t.Error("expected non-empty session ID")
	}
	if s.Len() != 0 {
		t.Errorf("expected empty session, got %d entries", s.Len())
	}
}

func TestSession_Append(t *testing.T) {
	s := NewSession()
	s.Append(Entry{Role: RoleUser, Content: "What is X?"})
	s.Append(Entry{Role: RoleAssistant, Content: "X is..."})

	entries := s.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Role != RoleUser || entries[1].Role != RoleAssistant {
		t.Error("entries out of insertion order")
	}
}

func TestSession_LastUserQuestion(t *testing.T) {
	t.Run("empty history", func(t *testing.T) {
		s := NewSession()
		if got := s.LastUserQuestion(); got != NoPreviousQuestion {
			t.Errorf("expected sentinel, got %q", got)
		}
	})

	t.Run("single exchange", func(t *testing.T) {
		s := NewSession()
		s.Append(Entry{Role: RoleUser, Content: "What is X?"})
		s.Append(Entry{Role: RoleAssistant, Content: "X is..."})

		if got := s.LastUserQuestion(); got != "What is X?" {
			t.Errorf("expected last user question, got %q", got)
		}
	})

	t.Run("returns most recent user entry", func(t *testing.T) {
		s := NewSession()
		s.Append(Entry{Role: RoleUser, Content: "first"})
		s.Append(Entry{Role: RoleAssistant, Content: "a"})
		s.Append(Entry{Role: RoleUser, Content: "second"})
		s.Append(Entry{Role: RoleAssistant, Content: "b"})

		if got := s.LastUserQuestion(); got != "second" {
			t.Errorf("expected %q, got %q", "second", got)
		}
	})

	t.Run("assistant-only history", func(t *testing.T) {
		s := NewSession()
		s.Append(Entry{Role: RoleAssistant, Content: "hello"})

		if got := s.LastUserQuestion(); got != NoPreviousQuestion {
			t.Errorf("expected sentinel, got %q", got)
		}
	})
}

func TestSession_Format(t *testing.T) {
	t.Run("empty history", func(t *testing.T) {
		s := NewSession()
		if got := s.Format(); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})

	t.Run("capitalised roles, newline joined", func(t *testing.T) {
		s := NewSession()
		s.Append(Entry{Role: RoleUser, Content: "What is X?"})
		s.Append(Entry{Role: RoleAssistant, Content: "X is..."})

		want := "User: What is X?\nAssistant: X is..."
		if got := s.Format(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})
}

func TestIsMetaQuery(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"What was my last question?", true},
		{"WHAT WAS MY LAST QUESTION", true},
		{"tell me about the last question I asked", true},
		{"What was decided in the meeting?", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsMetaQuery(tt.query); got != tt.want {
			t.Errorf("IsMetaQuery(%q) = %t, want %t", tt.query, got, tt.want)
		}
	}
}

func TestRole_Capitalised(t *testing.T) {
	if got := RoleUser.Capitalised(); got != "User" {
		t.Errorf("expected 'User', got %q", got)
	}
	if got := RoleAssistant.Capitalised(); got != "Assistant" {
		t.Errorf("expected 'Assistant', got %q", got)
	}
}
