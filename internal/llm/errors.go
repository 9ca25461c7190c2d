package llm

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/ollama/ollama/api"
	"github.com/openai/openai-go"
)

var ErrEmptyCompletion = errors.New("completion response has no content")

// ServiceError is a failure reported by, or reaching, the completion endpoint.
// It is the only failure the conversation recovers from.
type ServiceError struct {
	Provider LLMProvider
	Err      error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s API error: %v", e.Provider, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// UnclassifiedError is any other failure of a completion call.
type UnclassifiedError struct {
	Err error
}

func (e *UnclassifiedError) Error() string {
	return fmt.Sprintf("unexpected completion failure: %v", e.Err)
}

func (e *UnclassifiedError) Unwrap() error { return e.Err }

// classify wraps err as a *ServiceError when it comes from the remote API or
// from the endpoint being unreachable. Other errors are returned unchanged.
func classify(provider LLMProvider, err error) error {
	if err == nil {
		return nil
	}
	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var openaiErr *openai.Error
	var statusErr api.StatusError
	var urlErr *url.Error
	switch {
	case errors.As(err, &openaiErr),
		errors.As(err, &statusErr),
		errors.As(err, &urlErr):
		return &ServiceError{Provider: provider, Err: err}
	}
	return err
}
