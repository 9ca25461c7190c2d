package llm

type MessageRole string

const (
	Assistant MessageRole = "assistant"
	User      MessageRole = "user"
	System    MessageRole = "system"
)

// Message is one conversational turn. Messages are values and are never
// edited once appended to a Transcript.
type Message struct {
	Role    MessageRole
	Content string
}
