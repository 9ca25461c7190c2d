// Package chat drives the line-based conversation between the operator and
// the completion service.
package chat

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klemjul/tutorchat/internal/llm"
	"github.com/klemjul/tutorchat/internal/logger"
)

type State int

const (
	StateSeeded State = iota
	StateAwaitingReply
	StateAwaitingUserInput
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateSeeded:
		return "seeded"
	case StateAwaitingReply:
		return "awaiting_reply"
	case StateAwaitingUserInput:
		return "awaiting_user_input"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

const (
	AssistantPrefix = "Assistant: "
	UserPrompt      = "You: "
)

type LoopOptions struct {
	In     io.Reader
	Out    io.Writer
	Logger logger.Logger
	// Render transforms a reply for display only; the transcript keeps the raw text.
	Render func(string) (string, error)
}

// Loop owns the transcript and alternates between one completion call and
// one line of operator input. It never has more than one call in flight.
type Loop struct {
	client     llm.LLMClient
	transcript *llm.Transcript
	in         *bufio.Reader
	out        io.Writer
	logger     logger.Logger
	render     func(string) (string, error)
	state      State
	turns      int
}

func NewLoop(client llm.LLMClient, transcript *llm.Transcript, opts LoopOptions) *Loop {
	if transcript == nil {
		transcript = NewTranscript()
	}
	in := opts.In
	if in == nil {
		in = strings.NewReader("")
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	log := opts.Logger
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Loop{
		client:     client,
		transcript: transcript,
		in:         bufio.NewReader(in),
		out:        out,
		logger:     log,
		render:     opts.Render,
		state:      StateSeeded,
	}
}

func (l *Loop) State() State { return l.state }

// Turns is the number of completed reply/input exchanges.
func (l *Loop) Turns() int { return l.turns }

func (l *Loop) Transcript() *llm.Transcript { return l.transcript }

// Run loops until a reply fails in an unclassified way, input ends or ctx is
// done. Reaching the end of input is not an error.
func (l *Loop) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			l.state = StateTerminated
			return err
		}

		l.state = StateAwaitingReply
		messages := l.transcript.Messages()
		l.logger.Debug("requesting completion", map[string]any{
			"turn":             l.turns + 1,
			"messages":         len(messages),
			"estimated_tokens": llm.RoughEstimateTranscriptTokens(messages),
		})

		reply := llm.GetReply(ctx, l.client, messages)
		switch reply.Kind {
		case llm.ReplyFatal:
			l.state = StateTerminated
			return reply.Err
		case llm.ReplyFallback:
			l.logger.Error("completion service error", map[string]any{"error": reply.Err.Error()})
		}

		if err := l.printReply(reply.Content); err != nil {
			l.state = StateTerminated
			return err
		}
		l.transcript.Append(llm.Message{Role: llm.Assistant, Content: reply.Content})

		l.state = StateAwaitingUserInput
		line, err := l.readLine()
		if errors.Is(err, io.EOF) {
			l.state = StateTerminated
			_, _ = fmt.Fprintln(l.out)
			return nil
		}
		if err != nil {
			l.state = StateTerminated
			return fmt.Errorf("read input: %w", err)
		}
		l.transcript.Append(llm.Message{Role: llm.User, Content: line})
		l.turns++
	}
}

func (l *Loop) printReply(content string) error {
	display := content
	if l.render != nil {
		rendered, err := l.render(content)
		if err != nil {
			return fmt.Errorf("failed to format response: %w", err)
		}
		display = strings.TrimSpace(rendered)
	}
	_, err := fmt.Fprintf(l.out, "%s%s\n", AssistantPrefix, display)
	return err
}

// readLine prompts and reads one full line of any length. A final line
// without a newline is returned before io.EOF is reported.
func (l *Loop) readLine() (string, error) {
	if _, err := fmt.Fprint(l.out, UserPrompt); err != nil {
		return "", err
	}
	line, err := l.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
