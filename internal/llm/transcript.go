package llm

// Transcript is an append-only, ordered conversation history.
// It has no size limit and is not safe for concurrent use.
type Transcript struct {
	messages []Message
}

func NewTranscript(seed ...Message) *Transcript {
	return &Transcript{messages: append([]Message(nil), seed...)}
}

func (t *Transcript) Append(msg Message) {
	t.messages = append(t.messages, msg)
}

// Messages returns a copy of the history in conversation order.
func (t *Transcript) Messages() []Message {
	return append([]Message(nil), t.messages...)
}

func (t *Transcript) Len() int {
	return len(t.messages)
}
