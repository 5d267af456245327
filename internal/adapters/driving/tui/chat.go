// Package tui provides the interactive chat interface, built on Bubbletea
// following the Elm architecture. One conversation session lives for the
// duration of the program, so follow-up and meta questions work against
// the accumulated history.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/acta-labs/acta-cli/internal/core/domain"
	"github.com/acta-labs/acta-cli/internal/core/ports/driving"
)

// answerReceived carries a completed query response into Update.
type answerReceived struct {
	response domain.QueryResponse
	err      error
}

// styles holds the lipgloss styles for the chat view.
type chatStyles struct {
	Title     lipgloss.Style
	Question  lipgloss.Style
	Answer    lipgloss.Style
	Sources   lipgloss.Style
	Error     lipgloss.Style
	Waiting   lipgloss.Style
	InputArea lipgloss.Style
}

func defaultChatStyles() chatStyles {
	return chatStyles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		Question:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#06B6D4")),
		Answer:    lipgloss.NewStyle().Foreground(lipgloss.Color("#CDD6F4")),
		Sources:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")),
		Waiting:   lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF")),
		InputArea: lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderTop(true).BorderForeground(lipgloss.Color("#45475A")),
	}
}

// Chat is the chat model. It implements tea.Model.
type Chat struct {
	query   driving.QueryService
	session *domain.Session
	ctx     context.Context

	styles   chatStyles
	input    textinput.Model
	viewport viewport.Model

	// transcriptLines is the rendered conversation so far.
	transcriptLines []string

	waiting bool
	err     error

	width  int
	height int
	ready  bool
}

// Ensure Chat implements tea.Model.
var _ tea.Model = (*Chat)(nil)

// NewChat creates the chat model over the given query service.
func NewChat(query driving.QueryService) *Chat {
	input := textinput.New()
	input.Placeholder = "Ask about the meeting..."
	input.Focus()
	input.CharLimit = 500

	return &Chat{
		query:   query,
		session: domain.NewSession(),
		ctx:     context.Background(),
		styles:  defaultChatStyles(),
		input:   input,
		width:   80,
		height:  24,
	}
}

// WithContext sets the context used for queries.
func (c *Chat) WithContext(ctx context.Context) *Chat {
	c.ctx = ctx
	return c
}

// Session exposes the conversation session, mainly for tests.
func (c *Chat) Session() *domain.Session {
	return c.session
}

// Init initialises the model.
func (c *Chat) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (c *Chat) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width
		c.height = msg.Height
		c.resize()
		c.ready = true
		return c, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return c, tea.Quit

		case tea.KeyEnter:
			return c, c.submit()
		}

	case answerReceived:
		c.waiting = false
		if msg.err != nil {
			c.err = msg.err
			c.transcriptLines = append(c.transcriptLines,
				c.styles.Error.Render("Error: "+msg.err.Error()), "")
		} else {
			c.err = nil
			c.transcriptLines = append(c.transcriptLines,
				c.styles.Answer.Render(msg.response.ResponseText))
			if len(msg.response.Sources) > 0 {
				c.transcriptLines = append(c.transcriptLines,
					c.styles.Sources.Render("Sources: "+strings.Join(msg.response.Sources, ", ")))
			}
			c.transcriptLines = append(c.transcriptLines, "")
		}
		c.refreshViewport()
		return c, nil
	}

	var cmds []tea.Cmd

	var inputCmd tea.Cmd
	c.input, inputCmd = c.input.Update(msg)
	if inputCmd != nil {
		cmds = append(cmds, inputCmd)
	}

	var vpCmd tea.Cmd
	c.viewport, vpCmd = c.viewport.Update(msg)
	if vpCmd != nil {
		cmds = append(cmds, vpCmd)
	}

	return c, tea.Batch(cmds...)
}

// submit sends the typed question to the query service. Questions are not
// accepted while one is already in flight.
func (c *Chat) submit() tea.Cmd {
	if c.waiting {
		return nil
	}

	question := strings.TrimSpace(c.input.Value())
	if question == "" {
		return nil
	}

	c.input.Reset()
	c.waiting = true
	c.transcriptLines = append(c.transcriptLines,
		c.styles.Question.Render("You: "+question))
	c.refreshViewport()

	ctx := c.ctx
	session := c.session
	query := c.query
	return func() tea.Msg {
		response, err := query.Query(ctx, session, question)
		return answerReceived{response: response, err: err}
	}
}

// resize recomputes component dimensions for the current terminal size.
func (c *Chat) resize() {
	inputHeight := 3
	titleHeight := 2
	vpHeight := c.height - inputHeight - titleHeight
	if vpHeight < 1 {
		vpHeight = 1
	}

	c.viewport = viewport.New(c.width, vpHeight)
	c.input.Width = c.width - 4
	c.refreshViewport()
}

// refreshViewport re-renders the transcript and scrolls to the bottom.
func (c *Chat) refreshViewport() {
	c.viewport.SetContent(strings.Join(c.transcriptLines, "\n"))
	c.viewport.GotoBottom()
}

// View renders the chat.
func (c *Chat) View() string {
	if !c.ready {
		return "Starting chat..."
	}

	var b strings.Builder
	b.WriteString(c.styles.Title.Render("Acta - ask about your meeting"))
	b.WriteString("\n\n")
	b.WriteString(c.viewport.View())
	b.WriteString("\n")

	prompt := c.input.View()
	if c.waiting {
		prompt = c.styles.Waiting.Render("Thinking...")
	}
	b.WriteString(c.styles.InputArea.Width(c.width).Render(prompt))

	return b.String()
}
