package llm

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ollama/ollama/api"
)

type ollamaChatService interface {
	Chat(ctx context.Context, req *api.ChatRequest, fn api.ChatResponseFunc) error
}

type llmClientOllama struct {
	client      ollamaChatService
	model       string
	temperature float64
	maxTokens   int64
}

func newOllamaClient(localEndpoint url.URL, opts LLMClientOptions) *llmClientOllama {
	return &llmClientOllama{
		client:      api.NewClient(&localEndpoint, http.DefaultClient),
		model:       opts.Model,
		temperature: opts.Temperature,
		maxTokens:   opts.MaxTokens,
	}
}

func (ai *llmClientOllama) Send(ctx context.Context, messages []Message) (*LLMSendResponse, error) {
	stream := false
	var res *LLMSendResponse

	err := ai.client.Chat(ctx, &api.ChatRequest{
		Model:    ai.model,
		Messages: ai.toOllamaMessages(messages),
		Stream:   &stream,
		Options: map[string]any{
			"temperature": ai.temperature,
			"num_predict": ai.maxTokens,
		},
	}, func(resp api.ChatResponse) error {
		res = &LLMSendResponse{
			Content: resp.Message.Content,
			Usage: LLMTokenUsage{
				InputTokens:  int64(resp.PromptEvalCount),
				OutputTokens: int64(resp.EvalCount),
			},
		}
		return nil
	})
	if err != nil {
		return nil, classify(LLMProviderOllama, err)
	}
	if res == nil {
		return nil, ErrEmptyCompletion
	}
	return res, nil
}

func (ai *llmClientOllama) toOllamaMessages(messages []Message) []api.Message {
	ollamaMessages := make([]api.Message, 0, len(messages))
	for _, msg := range messages {
		ollamaMessages = append(ollamaMessages, api.Message{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}
	return ollamaMessages
}
