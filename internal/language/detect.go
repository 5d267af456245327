// Package language detects the transcript language for prompt selection.
package language

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/abadojack/whatlanggo"

	"github.com/acta-labs/acta-cli/internal/core/domain"
)

// Detect determines the prompt language for the given transcript text.
// Portuguese maps to pt; every other detected language falls back to en.
// Text below domain.MinTranscriptLength characters is rejected before
// detection is attempted, and an unreliable detection is surfaced as an
// input error rather than silently defaulting.
func Detect(text string) (domain.Language, error) {
	trimmed := strings.TrimSpace(text)
	if n := utf8.RuneCountInString(trimmed); n < domain.MinTranscriptLength {
		return "", fmt.Errorf("%w (%d characters)", domain.ErrTranscriptTooShort, n)
	}

	info := whatlanggo.Detect(trimmed)
	if info.Lang == -1 {
		return "", domain.ErrLanguageDetection
	}

	if info.Lang == whatlanggo.Por {
		return domain.LanguagePT, nil
	}
	return domain.LanguageEN, nil
}
