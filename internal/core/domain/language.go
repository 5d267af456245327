package domain

// Language selects which prompt template variant is rendered.
type Language string

// Supported prompt languages.
const (
	// LanguagePT is Portuguese.
	LanguagePT Language = "pt"

	// LanguageEN is English, the fallback for everything non-Portuguese.
	LanguageEN Language = "en"
)

// IsValid returns true if the language is recognised.
func (l Language) IsValid() bool {
	switch l {
	case LanguagePT, LanguageEN:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (l Language) String() string {
	return string(l)
}
