package llm

import (
	"context"
	"errors"

	"github.com/klemjul/tutorchat/internal/config"
)

type ReplyKind int

const (
	// ReplyOK carries the model's content.
	ReplyOK ReplyKind = iota
	// ReplyFallback carries FALLBACK_REPLY; Err holds the service error to report.
	ReplyFallback
	// ReplyFatal means the conversation cannot continue; Err is an *UnclassifiedError.
	ReplyFatal
)

func (k ReplyKind) String() string {
	switch k {
	case ReplyOK:
		return "ok"
	case ReplyFallback:
		return "fallback"
	case ReplyFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

type Reply struct {
	Kind    ReplyKind
	Content string
	Err     error
}

// GetReply sends the whole transcript and turns the outcome into a Reply.
// Service errors never escape: they become the fallback reply.
func GetReply(ctx context.Context, client LLMClient, messages []Message) Reply {
	res, err := client.Send(ctx, messages)
	if err != nil {
		var serviceErr *ServiceError
		if errors.As(err, &serviceErr) {
			return Reply{Kind: ReplyFallback, Content: config.FALLBACK_REPLY, Err: serviceErr}
		}
		return Reply{Kind: ReplyFatal, Err: &UnclassifiedError{Err: err}}
	}
	if res == nil {
		return Reply{Kind: ReplyFatal, Err: &UnclassifiedError{Err: ErrEmptyCompletion}}
	}
	return Reply{Kind: ReplyOK, Content: res.Content}
}
