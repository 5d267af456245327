package services

import (
	"strings"
	"testing"

	"github.com/acta-labs/acta-cli/internal/core/domain"
)

func TestAnswerPrompt(t *testing.T) {
	t.Run("english", func(t *testing.T) {
		p := AnswerPrompt(domain.LanguageEN, "User: hi", "some context", "a question")
		if !containsAll(p, "Conversation History:\nUser: hi", "Context:\nsome context", "Question:\na question", "Answer:") {
			t.Errorf("prompt missing sections:\n%s", p)
		}
	})

	t.Run("portuguese", func(t *testing.T) {
		p := AnswerPrompt(domain.LanguagePT, "", "contexto", "pergunta")
		if !containsAll(p, "Histórico da Conversa:", "Contexto:\ncontexto", "Pergunta:\npergunta", "Resposta:") {
			t.Errorf("prompt missing sections:\n%s", p)
		}
	})

	t.Run("unknown language falls back to english", func(t *testing.T) {
		p := AnswerPrompt(domain.Language("fr"), "", "", "q")
		if !strings.Contains(p, "Question:") {
			t.Error("expected English fallback template")
		}
	})
}

func TestSummaryPrompt(t *testing.T) {
	t.Run("with context", func(t *testing.T) {
		p := SummaryPrompt(domain.LanguageEN, "Quarterly planning call", "the transcript")
		if !containsAll(p, "Context: Quarterly planning call", "the transcript", "Please summarize") {
			t.Errorf("prompt missing sections:\n%s", p)
		}
	})

	t.Run("empty context placeholder", func(t *testing.T) {
		p := SummaryPrompt(domain.LanguageEN, "", "text")
		if !strings.Contains(p, noContextEN) {
			t.Error("expected English no-context placeholder")
		}

		p = SummaryPrompt(domain.LanguagePT, "", "texto")
		if !strings.Contains(p, noContextPT) {
			t.Error("expected Portuguese no-context placeholder")
		}
	})

	t.Run("portuguese template", func(t *testing.T) {
		p := SummaryPrompt(domain.LanguagePT, "ctx", "texto")
		if !containsAll(p, "transcrição", "Contexto: ctx") {
			t.Errorf("expected Portuguese summary template:\n%s", p)
		}
	})
}
