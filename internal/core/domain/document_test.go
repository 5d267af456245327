package domain

import "testing"

func TestChunkID(t *testing.T) {
	if got := ChunkID("doc1", 0); got != "doc1:0" {
		t.Errorf("expected 'doc1:0', got %q", got)
	}
	if got := ChunkID("data/transcript.txt", 12); got != "data/transcript.txt:12" {
		t.Errorf("unexpected id %q", got)
	}
}

func TestSplitChunkID(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		source, index, err := SplitChunkID(ChunkID("data/transcript.txt", 7))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if source != "data/transcript.txt" {
			t.Errorf("expected source 'data/transcript.txt', got %q", source)
		}
		if index != 7 {
			t.Errorf("expected index 7, got %d", index)
		}
	})

	t.Run("source containing colons", func(t *testing.T) {
		source, index, err := SplitChunkID("C:/meetings/standup.txt:3")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if source != "C:/meetings/standup.txt" {
			t.Errorf("unexpected source %q", source)
		}
		if index != 3 {
			t.Errorf("expected index 3, got %d", index)
		}
	})

	t.Run("malformed id", func(t *testing.T) {
		if _, _, err := SplitChunkID("no-separator"); err == nil {
			t.Error("expected error for id without separator")
		}
		if _, _, err := SplitChunkID("doc:notanumber"); err == nil {
			t.Error("expected error for non-numeric index")
		}
	})
}

func TestLanguage_IsValid(t *testing.T) {
	if !LanguagePT.IsValid() || !LanguageEN.IsValid() {
		t.Error("expected pt and en to be valid")
	}
	if Language("fr").IsValid() {
		t.Error("expected fr to be invalid")
	}
}
