package llm

import (
	"context"
	"fmt"
	"net/url"

	"github.com/klemjul/tutorchat/internal/config"
)

type LLMTokenUsage struct {
	InputTokens  int64
	OutputTokens int64
}

type LLMSendResponse struct {
	Content string
	Usage   LLMTokenUsage
}

// LLMClient sends a full transcript and returns the next assistant message.
// Send errors are either *ServiceError or unclassified.
type LLMClient interface {
	Send(ctx context.Context, messages []Message) (*LLMSendResponse, error)
}

type LLMProvider string

const (
	LLMProviderOpenAI LLMProvider = "openai"
	LLMProviderOllama LLMProvider = "ollama"
)

var LLMProviders = []LLMProvider{LLMProviderOpenAI, LLMProviderOllama}

type LLMClientOptions struct {
	Model       string
	Credential  config.Secret
	Temperature float64
	MaxTokens   int64
}

// CredentialOptions returns how the credential for provider is loaded.
func CredentialOptions(provider LLMProvider, envFile string) (config.CredentialOptions, error) {
	switch provider {
	case LLMProviderOpenAI:
		return config.OpenAICredentialOptions(envFile), nil
	case LLMProviderOllama:
		return config.OllamaCredentialOptions(envFile), nil
	default:
		return config.CredentialOptions{}, fmt.Errorf("%s: invalid provider", provider)
	}
}

// NewClient builds a client without any network I/O.
func NewClient(provider LLMProvider, opts LLMClientOptions) (LLMClient, error) {
	if opts.Temperature == 0 {
		opts.Temperature = config.DEFAULT_TEMPERATURE
	}
	if opts.MaxTokens == 0 {
		opts.MaxTokens = config.DEFAULT_MAX_TOKENS
	}
	switch provider {
	case LLMProviderOpenAI:
		return newOpenAIClient(opts), nil
	case LLMProviderOllama:
		localEndpoint, err := url.Parse(opts.Credential.Reveal())
		if err != nil {
			return nil, fmt.Errorf("%s URL is invalid: %v", config.ENV_OLLAMA_ENDPOINT, err)
		}
		return newOllamaClient(*localEndpoint, opts), nil
	default:
		return nil, fmt.Errorf("%s: invalid provider", provider)
	}
}
