package language

import (
	"errors"
	"strings"
	"testing"

	"github.com/acta-labs/acta-cli/internal/core/domain"
)

func TestDetect_TooShort(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"whitespace only", "    \n\t   "},
		{"ten characters", "ten chars."},
		{"nineteen characters", "exactly nineteen ch"},
		// 15 runes but 30 bytes; length is measured in characters.
		{"fifteen multibyte characters", strings.Repeat("ã", 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Detect(tt.text)
			if !errors.Is(err, domain.ErrTranscriptTooShort) {
				t.Errorf("expected ErrTranscriptTooShort, got %v", err)
			}
			if !domain.IsInputError(err) {
				t.Error("short transcript should classify as input error")
			}
		})
	}
}

func TestDetect_English(t *testing.T) {
	text := "Good morning everyone, let us go through the action items from the previous meeting before we start."
	lang, err := Detect(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lang != domain.LanguageEN {
		t.Errorf("expected en, got %s", lang)
	}
}

func TestDetect_Portuguese(t *testing.T) {
	text := "Bom dia a todos, vamos rever os pontos de ação da reunião anterior antes de começarmos a discussão de hoje."
	lang, err := Detect(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lang != domain.LanguagePT {
		t.Errorf("expected pt, got %s", lang)
	}
}

func TestDetect_NonPortugueseFallsBackToEnglish(t *testing.T) {
	// Spanish is close to Portuguese but must still map to the en templates.
	text := "Buenos días a todos, vamos a revisar los puntos pendientes de la reunión anterior antes de empezar."
	lang, err := Detect(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lang != domain.LanguageEN {
		t.Errorf("expected en for non-Portuguese text, got %s", lang)
	}
}
