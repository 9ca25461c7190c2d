package chat

import "github.com/klemjul/tutorchat/internal/llm"

const (
	SeedSystemPrompt = "Absolutely, let's dive into Docker! Docker is a powerful tool used for containerization, allowing you to package your applications and all their dependencies into a standardized unit for software development."
	SeedUserPrompt   = "I'm a software engineer and I need to learn about Docker. Act as a Docker expert and teach me Docker from scratch, including exercises and evaluations."
)

// SeedMessages returns the two messages every session starts with.
func SeedMessages() []llm.Message {
	return []llm.Message{
		{Role: llm.System, Content: SeedSystemPrompt},
		{Role: llm.User, Content: SeedUserPrompt},
	}
}

// NewTranscript returns a transcript holding only the seed messages.
func NewTranscript() *llm.Transcript {
	return llm.NewTranscript(SeedMessages()...)
}
