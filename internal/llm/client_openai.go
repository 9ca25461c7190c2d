package llm

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type openaiChatService interface {
	New(ctx context.Context, body openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
}

type llmClientOpenAi struct {
	client      openaiChatService
	model       string
	temperature float64
	maxTokens   int64
}

func newOpenAIClient(opts LLMClientOptions, reqOpts ...option.RequestOption) *llmClientOpenAi {
	clientOpts := append([]option.RequestOption{
		option.WithAPIKey(opts.Credential.Reveal()),
		option.WithMaxRetries(0),
	}, reqOpts...)
	client := openai.NewClient(clientOpts...)

	return &llmClientOpenAi{
		client:      &client.Chat.Completions,
		model:       opts.Model,
		temperature: opts.Temperature,
		maxTokens:   opts.MaxTokens,
	}
}

func (ai *llmClientOpenAi) toOpenAiMessages(messages []Message) []openai.ChatCompletionMessageParamUnion {
	openAiMessages := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case Assistant:
			openAiMessages = append(openAiMessages, openai.AssistantMessage(msg.Content))
		case System:
			openAiMessages = append(openAiMessages, openai.SystemMessage(msg.Content))
		default:
			openAiMessages = append(openAiMessages, openai.UserMessage(msg.Content))
		}
	}
	return openAiMessages
}

func (ai *llmClientOpenAi) params(messages []Message) openai.ChatCompletionNewParams {
	return openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(ai.model),
		Messages:    ai.toOpenAiMessages(messages),
		Temperature: openai.Float(ai.temperature),
		MaxTokens:   openai.Int(ai.maxTokens),
	}
}

func (ai *llmClientOpenAi) Send(ctx context.Context, messages []Message) (*LLMSendResponse, error) {
	res, err := ai.client.New(ctx, ai.params(messages))
	if err != nil {
		return nil, classify(LLMProviderOpenAI, err)
	}

	if len(res.Choices) == 0 || !res.Choices[0].Message.JSON.Content.Valid() {
		return nil, ErrEmptyCompletion
	}

	return &LLMSendResponse{
		Content: res.Choices[0].Message.Content,
		Usage: LLMTokenUsage{
			InputTokens:  res.Usage.PromptTokens,
			OutputTokens: res.Usage.CompletionTokens,
		},
	}, nil
}
