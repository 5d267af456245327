package services

import (
	"fmt"

	"github.com/acta-labs/acta-cli/internal/core/domain"
)

// answerTemplateEN is the English question-answering template.
// Substitution points: formatted history, retrieved context, question.
const answerTemplateEN = `You are an assistant who answers the user's question based on the provided context and the conversation history. Use the context and the conversation history to provide a concise and accurate answer to the user's question. Do not include the context, the history, or any extraneous information in your response.

Conversation History:
%s

Context:
%s

Question:
%s

Answer:
`

// answerTemplatePT is the Portuguese question-answering template.
const answerTemplatePT = `Você é um assistente que responde à pergunta do usuário com base no contexto fornecido e no histórico da conversa. Use o contexto e o histórico da conversa para dar uma resposta concisa e precisa à pergunta do usuário. Não inclua o contexto, o histórico ou qualquer informação irrelevante na sua resposta.

Histórico da Conversa:
%s

Contexto:
%s

Pergunta:
%s

Resposta:
`

// summaryTemplateEN asks for a meeting summary with optional caller context.
const summaryTemplateEN = `You are given a transcript from a meeting, along with some optional context.

Context: %s

The transcript is as follows:

%s

Please summarize the transcript.`

// summaryTemplatePT is the Portuguese summary template.
const summaryTemplatePT = `Você recebeu uma transcrição de uma reunião, juntamente com um contexto opcional.

Contexto: %s

A transcrição é a seguinte:

%s

Por favor, resuma a transcrição.`

// noContextEN/PT fill the context slot of the summary prompt when the
// caller provided none.
const (
	noContextEN = "No additional context provided."
	noContextPT = "Nenhum contexto adicional fornecido."
)

// answerTemplates maps each supported language to its QA template.
var answerTemplates = map[domain.Language]string{
	domain.LanguageEN: answerTemplateEN,
	domain.LanguagePT: answerTemplatePT,
}

// summaryTemplates maps each supported language to its summary template.
var summaryTemplates = map[domain.Language]string{
	domain.LanguageEN: summaryTemplateEN,
	domain.LanguagePT: summaryTemplatePT,
}

// AnswerPrompt renders the question-answering prompt for the given
// language. Unknown languages fall back to English.
func AnswerPrompt(lang domain.Language, history, context, question string) string {
	tmpl, ok := answerTemplates[lang]
	if !ok {
		tmpl = answerTemplateEN
	}
	return fmt.Sprintf(tmpl, history, context, question)
}

// SummaryPrompt renders the meeting-summary prompt for the given language.
// An empty meetingContext is replaced by a per-language placeholder.
func SummaryPrompt(lang domain.Language, meetingContext, transcript string) string {
	tmpl, ok := summaryTemplates[lang]
	if !ok {
		tmpl = summaryTemplateEN
	}

	if meetingContext == "" {
		if lang == domain.LanguagePT {
			meetingContext = noContextPT
		} else {
			meetingContext = noContextEN
		}
	}

	return fmt.Sprintf(tmpl, meetingContext, transcript)
}
