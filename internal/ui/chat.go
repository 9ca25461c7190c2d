package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/klemjul/tutorchat/internal/format"
	"github.com/klemjul/tutorchat/internal/llm"
)

var renderMarkdown = format.FormatMarkdownWidth

// ReplyMsg delivers the outcome of a completion call to the model.
type ReplyMsg llm.Reply

type ChatTUIModel struct {
	textInput  textinput.Model
	viewport   viewport.Model
	transcript *llm.Transcript
	title      string
	waiting    bool
	diagnostic string
	err        error

	// rendered caches assistant messages by transcript index for renderedWidth.
	rendered      map[int]string
	renderedWidth int

	getBotResponse func(messages []llm.Message) tea.Cmd
}

const (
	CHAT_INPUT_PLACEHOLDER = "Type a message..."
	CHAT_WAITING_RESPONSE  = "> ⏳ Waiting for response..."
	CHAT_ASSISTANT_PREFIX  = "Assistant: "
)

var (
	userStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	botStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	titleStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true)
	inputStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true)
)

type InitialModelOptions struct {
	Title          string
	Transcript     *llm.Transcript
	GetBotResponse func(messages []llm.Message) tea.Cmd
}

func InitialModel(opts InitialModelOptions) ChatTUIModel {
	ti := textinput.New()
	ti.Placeholder = CHAT_INPUT_PLACEHOLDER
	ti.Focus()

	transcript := opts.Transcript
	if transcript == nil {
		transcript = llm.NewTranscript()
	}

	return ChatTUIModel{
		textInput:      ti,
		viewport:       viewport.New(0, 0),
		title:          opts.Title,
		transcript:     transcript,
		getBotResponse: opts.GetBotResponse,
		waiting:        true,
		rendered:       map[int]string{},
	}
}

// Err is the unrecoverable completion error that ended the session, if any.
func (m ChatTUIModel) Err() error { return m.err }

func (m ChatTUIModel) Transcript() *llm.Transcript { return m.transcript }

func (m ChatTUIModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.getBotResponse(m.transcript.Messages()),
		tea.EnableMouseCellMotion,
	)
}

func (m ChatTUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		titleLines := 1
		if msg.Width > 0 {
			titleLines = (len(m.title) / msg.Width) + 1
		}
		m.viewport = viewport.New(msg.Width, msg.Height-(4+titleLines))
		m.updateViewport()

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			switch msg.Button {
			case tea.MouseButtonWheelUp:
				m.viewport.ScrollUp(1)
			case tea.MouseButtonWheelDown:
				m.viewport.ScrollDown(1)
			}
		}

	case ReplyMsg:
		m.waiting = false
		switch msg.Kind {
		case llm.ReplyFatal:
			m.err = msg.Err
			return m, tea.Quit
		case llm.ReplyFallback:
			m.diagnostic = msg.Err.Error()
		default:
			m.diagnostic = ""
		}
		m.transcript.Append(llm.Message{Role: llm.Assistant, Content: msg.Content})
		m.updateViewport()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			cmd = tea.Quit
		case tea.KeyEnter:
			if !m.waiting {
				m.transcript.Append(llm.Message{
					Role:    llm.User,
					Content: m.textInput.Value(),
				})
				m.waiting = true
				m.textInput.SetValue("")
				m.updateViewport()

				cmd = m.getBotResponse(m.transcript.Messages())
			}
		}
	}

	m.textInput, _ = m.textInput.Update(msg)

	if m.waiting {
		m.textInput.Blur()
	} else {
		m.textInput.Focus()
	}

	return m, cmd
}

func (m *ChatTUIModel) updateViewport() {
	displayedMessages := make([]string, 0, m.transcript.Len())
	if m.rendered == nil || m.renderedWidth != m.viewport.Width {
		m.rendered = map[int]string{}
		m.renderedWidth = m.viewport.Width
	}
	for i, msg := range m.transcript.Messages() {
		switch msg.Role {
		case llm.Assistant:
			out, ok := m.rendered[i]
			if !ok {
				out = m.renderAssistant(msg.Content)
				m.rendered[i] = out
			}
			displayedMessages = append(displayedMessages, out)
		case llm.User:
			displayedMessages = append(displayedMessages, userStyle.Render(fmt.Sprintf("> %s", msg.Content)))
		}
	}

	content := strings.Join(displayedMessages, "\n\n")
	m.viewport.SetContent(content)
	m.viewport.GotoBottom()
}

func (m *ChatTUIModel) renderAssistant(content string) string {
	out, err := renderMarkdown(content, m.viewport.Width)
	if err != nil {
		out = content
	}
	return botStyle.Render(CHAT_ASSISTANT_PREFIX + strings.TrimSpace(out))
}

func (m ChatTUIModel) View() string {
	input := m.textInput.View()

	if m.waiting {
		input = CHAT_WAITING_RESPONSE
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Width(m.viewport.Width).Render(m.title),
		m.viewport.View(),
		errStyle.Width(m.viewport.Width).Render(m.diagnostic),
		inputStyle.Width(m.viewport.Width).Render(input),
	)
}
