package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/klemjul/tutorchat/internal/config"
	"github.com/klemjul/tutorchat/internal/format"
	"github.com/klemjul/tutorchat/internal/llm"
	"github.com/klemjul/tutorchat/internal/ui"
)

type CredentialService interface {
	Load(opts config.CredentialOptions) (config.Secret, error)
}

type TUIService interface {
	InitialModel(opts ui.InitialModelOptions) ui.ChatTUIModel
	Run(model ui.ChatTUIModel) (returnModel tea.Model, returnErr error)
}

type LLMService interface {
	NewClient(provider llm.LLMProvider, opts llm.LLMClientOptions) (llm.LLMClient, error)
}

type TextFormatService interface {
	FormatMarkdown(text string) (string, error)
}

type App interface {
	Credentials() CredentialService
	TUI() TUIService
	LLM() LLMService
	Format() TextFormatService
}

type DefaultCredentialService struct{}

type DefaultTUIService struct{}

type DefaultLLMService struct{}

type DefaultTextFormatService struct{}

type DefaultApp struct {
	credentials CredentialService
	tui         TUIService
	llm         LLMService
	format      TextFormatService
}

func (a *DefaultApp) Credentials() CredentialService { return a.credentials }
func (a *DefaultApp) TUI() TUIService                { return a.tui }
func (a *DefaultApp) LLM() LLMService                { return a.llm }
func (a *DefaultApp) Format() TextFormatService      { return a.format }

func (c *DefaultCredentialService) Load(opts config.CredentialOptions) (config.Secret, error) {
	return config.LoadCredential(opts)
}

func (c *DefaultTUIService) InitialModel(opts ui.InitialModelOptions) ui.ChatTUIModel {
	return ui.InitialModel(opts)
}
func (c *DefaultTUIService) Run(model ui.ChatTUIModel) (returnModel tea.Model, returnErr error) {
	return tea.NewProgram(model, tea.WithAltScreen()).Run()
}

func (l *DefaultLLMService) NewClient(provider llm.LLMProvider, opts llm.LLMClientOptions) (llm.LLMClient, error) {
	return llm.NewClient(provider, opts)
}

func (l *DefaultTextFormatService) FormatMarkdown(text string) (string, error) {
	return format.FormatMarkdown(text)
}

func NewDefaultApp() App {
	return &DefaultApp{
		credentials: &DefaultCredentialService{},
		tui:         &DefaultTUIService{},
		llm:         &DefaultLLMService{},
		format:      &DefaultTextFormatService{},
	}
}
